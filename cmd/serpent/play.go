package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-serpent/internal/config"
	"github.com/vovakirdan/tui-serpent/internal/core"
	"github.com/vovakirdan/tui-serpent/internal/modes"
	"github.com/vovakirdan/tui-serpent/internal/platform/tui"
	"github.com/vovakirdan/tui-serpent/internal/storage"
)

var (
	flagConfig     string
	flagMode       string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round. Without --mode, an interactive picker is shown.

Controls:
  WASD/Arrows - Steer
  P           - Pause
  R           - Restart (after game over)
  Esc         - Back to menu (paused or game over)
  Q/Ctrl+C    - Quit

Difficulty presets: easy, medium, hard, extreme. Easy turns off boundary
death, so the snake wraps around the board edges.

Examples:
  serpent play
  serpent play --mode classic
  serpent play --mode maze --difficulty hard
  serpent play --mode timetrial --config ./my-serpent.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode (see 'serpent modes')")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, medium, hard, extreme")
}

func runPlay(cmd *cobra.Command, args []string) {
	file, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size early for the mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	modeID := flagMode
	difficulty := flagDifficulty

	if modeID != "" && !modes.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'serpent modes' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	// Pick interactively when either choice is missing
	for modeID == "" || difficulty == "" {
		result, selErr := tui.RunSelector(file, runtime)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		if result.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, runtime.ScreenW, runtime.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to the picker
			}
		}
		if result.Quit || result.Selection == nil {
			// User backed out
			if store != nil {
				store.Close()
			}
			return
		}
		if modeID == "" {
			modeID = result.Selection.ModeID
		}
		if difficulty == "" {
			difficulty = result.Selection.Difficulty
		}
	}

	runErr := tui.Run(file, modeID, difficulty, store, runtime)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
