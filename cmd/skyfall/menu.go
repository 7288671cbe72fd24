package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/akarneev/skyfall/internal/core"
	"github.com/akarneev/skyfall/internal/games/skyfall"
	"github.com/akarneev/skyfall/internal/platform/tui"
	"github.com/akarneev/skyfall/internal/registry"
	"github.com/akarneev/skyfall/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the title menu",
	Long: `Start the interactive title menu. After a game ends you return
to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  skyfall menu
  skyfall menu --fps 30
  skyfall menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	skyfall.SetConfigPath(flagConfig)
	skyfall.SetDifficultyPreset(flagDifficulty)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, sessions will not be saved", "err", err)
		store = nil
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			log.Error("menu failed", "err", err)
			break
		}

		// Carry any size changes forward
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuChoicePlay:
			game, err := registry.Create("skyfall")
			if err != nil {
				log.Error("cannot create game", "err", err)
				continue
			}

			// Fresh seed for every run started from the menu
			cfg.Seed = resolveSeed()

			if err := tui.Run(game, store, cfg); err != nil {
				log.Error("game loop failed", "err", err)
			}

		case tui.MenuChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				log.Error("scoreboard failed", "err", sbErr)
			}
			if !goBack {
				if store != nil {
					store.Close()
				}
				return
			}

		default:
			if store != nil {
				store.Close()
			}
			return
		}
	}

	if store != nil {
		store.Close()
	}
}
