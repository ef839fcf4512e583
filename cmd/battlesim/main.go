// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Command battlesim runs one seeded battle from a YAML encounter file,
// auto-playing the player's turns with a greedy heuristic (play the first
// card action LegalActions offers that succeeds, in the order offered, and
// end the turn once none can be played) and printing a turn-by-turn log
// until the battle resolves.
//
// No CLI framework or structured logger appears anywhere across the
// reference corpus, so this entrypoint is deliberately small: stdlib flag
// for arguments and fmt for output, the same as any one-off driver in that
// corpus would look like.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/castlekeep/spireforge/battle"
	"github.com/castlekeep/spireforge/content/cards"
	"github.com/castlekeep/spireforge/content/enemies"
	"github.com/castlekeep/spireforge/events"
)

// encounterConfig is the on-disk shape of a battle setup: the player's
// starting deck and the roster of enemies to fight, by content name.
type encounterConfig struct {
	PlayerHP  int      `yaml:"player_hp"`
	Ascension int      `yaml:"ascension"`
	Deck      []string `yaml:"deck"`
	Enemies   []string `yaml:"enemies"`
}

func defaultConfig() encounterConfig {
	return encounterConfig{
		PlayerHP:  80,
		Ascension: 0,
		Enemies:   []string{"gremlin_wizard", "blue_slaver"},
	}
}

func loadConfig(path string) (encounterConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading encounter file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing encounter file: %w", err)
	}
	return cfg, nil
}

func buildEnemy(name string, ascensionHP int) (*battle.Combatant, battle.EnemyAI, func(battle.Target) battle.Listener) {
	switch name {
	case "gremlin_wizard":
		c, ai := enemies.GremlinWizard(ascensionHP)
		return c, ai, nil
	case "blue_slaver":
		c, ai := enemies.BlueSlaver(ascensionHP)
		return c, ai, nil
	case "acid_slime_s":
		return enemies.AcidSlimeS(ascensionHP)
	default:
		return nil, nil, nil
	}
}

func main() {
	seed := flag.Uint64("seed", 1, "RNG seed for a deterministic replay")
	configPath := flag.String("config", "", "path to a YAML encounter file (default: built-in sample)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	deck := make([]*battle.Card, 0)
	if len(cfg.Deck) == 0 {
		deck = cards.StarterDeck()
	} else {
		// Loaded through cards.Load rather than ByName directly so a typo
		// in the config's deck list is a load-time error instead of a
		// silently shorter deck.
		loaderBus := events.NewBus()
		for _, name := range cfg.Deck {
			ctx, err := cards.Load(loaderBus, name)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			deck = append(deck, ctx.Data())
		}
	}

	builder := battle.NewBattleBuilder().
		WithHP(cfg.PlayerHP, cfg.PlayerHP).
		WithDeck(deck...).
		WithAscension(cfg.Ascension).
		WithSeed(*seed).
		WithCardFactory(cards.ByName)

	for _, name := range cfg.Enemies {
		c, ai, listenerFactory := buildEnemy(name, enemyHP(name, cfg.Ascension))
		if c == nil {
			fmt.Fprintf(os.Stderr, "unknown enemy %q, skipping\n", name)
			continue
		}
		if listenerFactory != nil {
			builder.AddEnemy(c, ai, listenerFactory)
		} else {
			builder.AddEnemy(c, ai)
		}
	}

	b := builder.Build()
	runToCompletion(b)
}

// enemyHP returns a fixed HP for each enemy name, higher at ascension 7 and
// above for the Gremlin Wizard and Blue Slaver; it does not roll within a
// range.
func enemyHP(name string, ascension int) int {
	a7 := ascension >= 7
	switch name {
	case "gremlin_wizard":
		if a7 {
			return 24
		}
		return 23
	case "blue_slaver":
		if a7 {
			return 50
		}
		return 48
	case "acid_slime_s":
		return 13
	default:
		return 10
	}
}

// runToCompletion auto-plays the player's turns greedily and lets the
// battle's own EnemyAI resolve enemy turns, printing state after every
// action until the battle reaches victory or defeat.
func runToCompletion(b *battle.Battle) {
	for !b.Won && !b.Lost {
		printState(b)

		switch b.State {
		case battle.StateAwaitingSelection:
			// No selection-driven cards are in the sample decks by
			// default; resolving index 0 is a reasonable default for any
			// config that does include one.
			b.ResolveSelection(0)
		case battle.StatePlayerTurn:
			actions := b.LegalActions()
			played := false
			for _, action := range actions {
				if action.Kind != battle.ActionPlayCard {
					continue
				}
				if err := b.PlayCard(action.PlayCardIndex, action.Target); err == nil {
					played = true
					break
				}
			}
			if !played {
				if err := b.EndTurn(); err != nil {
					fmt.Fprintln(os.Stderr, err)
					return
				}
			}
		default:
			return
		}
	}

	printState(b)
	if b.Won {
		fmt.Println("victory")
	} else {
		fmt.Println("defeat")
	}
}

func printState(b *battle.Battle) {
	fmt.Printf("round %d turn %d: player HP %d/%d block %d energy %d\n",
		b.Round, b.Turn, b.Player.HP, b.Player.MaxHP, b.Player.Block, b.Player.Energy)
	for i, slot := range b.Enemies {
		if !slot.Combatant.IsAlive() {
			continue
		}
		fmt.Printf("  enemy[%d] %s HP %d/%d block %d intent %s\n",
			i, slot.Combatant.Name, slot.Combatant.HP, slot.Combatant.MaxHP, slot.Combatant.Block, slot.Intent.Name)
	}
}
