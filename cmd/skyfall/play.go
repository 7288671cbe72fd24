package main

import (
	"crypto/rand"
	"encoding/binary"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akarneev/skyfall/internal/core"
	"github.com/akarneev/skyfall/internal/games/skyfall"
	"github.com/akarneev/skyfall/internal/platform/tui"
	"github.com/akarneev/skyfall/internal/registry"
	"github.com/akarneev/skyfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game immediately, skipping the title menu.

Controls:
  Arrows/WASD - Move the crosshair
  Space       - Fire an interceptor
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  skyfall play
  skyfall play --difficulty easy
  skyfall play --config ./my-skyfall.yaml
  skyfall play --seed 12345`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// resolveSeed returns the explicit --seed value, or a fresh random one.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		log.Fatal("cannot read entropy for RNG seed", "err", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])) //#nosec G115 -- any bit pattern is a valid seed
}

// terminalSize returns the current terminal dimensions, with a sane
// fallback when stdout is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	skyfall.SetConfigPath(flagConfig)
	skyfall.SetDifficultyPreset(flagDifficulty)

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     resolveSeed(),
	}
	log.Debug("starting game", "seed", cfg.Seed, "fps", cfg.TickRate, "size", width*height)

	game, err := registry.Create("skyfall")
	if err != nil {
		log.Fatal("cannot create game", "err", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database, sessions will not be saved", "err", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		log.Fatal("game loop failed", "err", runErr)
	}
}
