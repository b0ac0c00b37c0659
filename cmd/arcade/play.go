package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/racer"
	"github.com/vovakirdan/retro-arcade/internal/games/rapidfire"
	"github.com/vovakirdan/retro-arcade/internal/games/swing"
	"github.com/vovakirdan/retro-arcade/internal/platform/tui"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagCourse     string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD - Steer, throttle and brake / move / run
  Space       - Jump
  F/X         - Fire
  P/Esc       - Pause
  R           - Restart (after game over)
  B           - Back (when paused or after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Courses (racer only):
  Without --course a course picker is shown.

Examples:
  arcade play racer
  arcade play racer --course Oval
  arcade play rapidfire --difficulty hard
  arcade play swing --difficulty fixed
  arcade play racer --config ./my-racer.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagCourse, "course", "", "Racer course: "+strings.Join(racer.CourseNames(), ", "))
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// prepareGame applies the config and difficulty flags, creates the game and
// picks its course. It returns a nil game if the user backed out of the
// course picker.
func prepareGame(gameID string, cfg core.RuntimeConfig, course string) (registry.Game, error) {
	// Set config path and difficulty for games before creation
	switch gameID {
	case "racer":
		racer.SetConfigPath(flagConfig)
		racer.SetDifficultyPreset(flagDifficulty)
	case "rapidfire":
		rapidfire.SetConfigPath(flagConfig)
		rapidfire.SetDifficultyPreset(flagDifficulty)
	case "swing":
		swing.SetConfigPath(flagConfig)
		swing.SetDifficultyPreset(flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}

	sel, ok := game.(registry.CourseSelector)
	if !ok {
		return game, nil
	}

	if course != "" {
		idx, found := racer.CourseIndex(course)
		if !found {
			return nil, fmt.Errorf("unknown course %q (have %s)", course, strings.Join(sel.Courses(), ", "))
		}
		if err := sel.SetCourse(idx); err != nil {
			return nil, err
		}
		return game, nil
	}

	chosen, err := tui.RunCourseSelector(game, cfg)
	if err != nil || !chosen {
		return nil, err
	}
	return game, nil
}

// openStore opens the scores database, logging and returning nil on failure.
// Games still run without storage.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	logger, closeLog := newLogger()
	defer closeLog()

	cfg := terminalConfig()

	game, err := prepareGame(gameID, cfg, flagCourse)
	if err != nil {
		logger.Error("could not start game", "game", gameID, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	// User pressed back or quit in the course picker
	if game == nil {
		return
	}

	store := openStore(logger)

	runErr := tui.Run(game, store, cfg, logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game exited with error", "game", gameID, "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
