// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package battle

// HandCap is the maximum number of cards the hand can hold; draws beyond
// this overflow straight into discard.
const HandCap = 10

// Piles holds the four card piles a battle tracks for the player: draw,
// hand, discard, exhaust. The draw pile's top is index len-1 (the last
// element); shuffling and drawing both operate from that end so a draw is a
// cheap slice-shrink rather than a front-removal.
type Piles struct {
	Draw    []*CardInstance
	Hand    []*CardInstance
	Discard []*CardInstance
	Exhaust []*CardInstance
}

// CardInstance is a specific copy of a Card as it exists in a pile: the
// immutable card data plus any per-instance state (currently none, but kept
// distinct from Card so future per-copy state — e.g. upgrades applied
// mid-run — has somewhere to live without touching the shared Card value).
type CardInstance struct {
	Card *Card
}

// NewPiles creates a Piles with deck placed in the draw pile, unshuffled.
func NewPiles(deck []*Card) *Piles {
	draw := make([]*CardInstance, len(deck))
	for i, c := range deck {
		draw[i] = &CardInstance{Card: c}
	}
	return &Piles{Draw: draw}
}

// Shuffle randomizes pile in place using Fisher-Yates driven by intn, which
// must return a uniform index in [0, n).
func Shuffle(pile []*CardInstance, intn func(n int) int) {
	for i := len(pile) - 1; i > 0; i-- {
		j := intn(i + 1)
		pile[i], pile[j] = pile[j], pile[i]
	}
}

// DrawOne pops the top card of the draw pile, shuffling discard into draw
// first if draw is empty. Returns nil if both piles are empty.
func (p *Piles) DrawOne(intn func(n int) int) *CardInstance {
	if len(p.Draw) == 0 {
		if len(p.Discard) == 0 {
			return nil
		}
		p.Draw, p.Discard = p.Discard, nil
		Shuffle(p.Draw, intn)
	}

	last := len(p.Draw) - 1
	card := p.Draw[last]
	p.Draw = p.Draw[:last]
	return card
}

// DrawResult describes one card produced by Draw, enough for the caller to
// decide which events to post (CardDrawn always; hand-overflow still counts
// as drawn even though it lands in discard).
type DrawResult struct {
	Card       *CardInstance
	Overflowed bool
}

// Draw draws up to n cards, placing each into hand unless the hand is
// already at HandCap, in which case it overflows straight to discard. It
// stops early if both draw and discard run out.
func (p *Piles) Draw(n int, intn func(n int) int) []DrawResult {
	results := make([]DrawResult, 0, n)
	for i := 0; i < n; i++ {
		card := p.DrawOne(intn)
		if card == nil {
			break
		}
		if len(p.Hand) >= HandCap {
			p.Discard = append(p.Discard, card)
			results = append(results, DrawResult{Card: card, Overflowed: true})
			continue
		}
		p.Hand = append(p.Hand, card)
		results = append(results, DrawResult{Card: card})
	}
	return results
}

// PlayCardFromHand removes and returns the card at hand index i.
func (p *Piles) PlayCardFromHand(i int) (*CardInstance, bool) {
	if i < 0 || i >= len(p.Hand) {
		return nil, false
	}
	card := p.Hand[i]
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return card, true
}

// ExhaustCardFromHand removes the card at hand index i and appends it to
// exhaust.
func (p *Piles) ExhaustCardFromHand(i int) (*CardInstance, bool) {
	card, ok := p.PlayCardFromHand(i)
	if !ok {
		return nil, false
	}
	p.Exhaust = append(p.Exhaust, card)
	return card, true
}

// AddCardToHand appends an instance of card to hand, or to discard if the
// hand is already at HandCap. Returns whether it landed in hand.
func (p *Piles) AddCardToHand(card *Card) bool {
	inst := &CardInstance{Card: card}
	if len(p.Hand) >= HandCap {
		p.Discard = append(p.Discard, inst)
		return false
	}
	p.Hand = append(p.Hand, inst)
	return true
}

// AddCardToDiscard appends an instance of card to discard.
func (p *Piles) AddCardToDiscard(card *Card) {
	p.Discard = append(p.Discard, &CardInstance{Card: card})
}

// AddCardToTopOfDraw appends an instance of card to the top of draw (the
// end of the slice, per the top-is-last convention).
func (p *Piles) AddCardToTopOfDraw(card *Card) {
	p.Draw = append(p.Draw, &CardInstance{Card: card})
}

// DiscardHand moves every card in hand to discard, except ethereal cards,
// which go to exhaust instead. Returns the ethereal cards that were
// exhausted, for CardExhausted event posting.
func (p *Piles) DiscardHand() []*CardInstance {
	var exhausted []*CardInstance
	remaining := p.Hand
	p.Hand = nil
	for _, card := range remaining {
		if card.Card.Ethereal {
			p.Exhaust = append(p.Exhaust, card)
			exhausted = append(exhausted, card)
		} else {
			p.Discard = append(p.Discard, card)
		}
	}
	return exhausted
}

// HandSize returns the number of cards currently in hand.
func (p *Piles) HandSize() int { return len(p.Hand) }

// CountInAllPiles returns the total number of card instances across draw,
// hand, discard, and exhaust, used by P1's "exactly one pile" invariant
// check in tests.
func (p *Piles) CountInAllPiles() int {
	return len(p.Draw) + len(p.Hand) + len(p.Discard) + len(p.Exhaust)
}
