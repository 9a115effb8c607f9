package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var flagEndless bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing 2048. Progress is saved after every move and restored
the next time you play with the same --profile.

Controls:
  Arrows/WASD/hjkl  - Slide tiles
  U/Ctrl+Z          - Undo the last move
  C                 - Keep playing after reaching 2048
  R/Ctrl+R          - Start a new game
  P                 - Pause
  Esc/B             - Leave the game
  Q/Ctrl+C          - Quit

Difficulty options (asked interactively when not given):
  easy   - Fewer 4s spawn
  normal - One spawned tile in ten is a 4
  hard   - Frequent 4s (one in four)

Examples:
  t2048 play
  t2048 play --endless
  t2048 play 2048_endless --difficulty hard
  t2048 play --config ./my-rules.yaml --profile alice`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play without a winning tile")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "2048"
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagEndless {
		gameID = "2048_endless"
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 't2048 list' to see available games", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	cfg := runtimeConfig()
	rules := rulesConf

	if flagDifficulty == "" {
		preset, err := tui.RunDifficultySelector(game.Title(), config.DifficultyNormal, cfg)
		if err != nil {
			return err
		}
		// User pressed back or quit
		if preset == nil {
			return nil
		}
		config.ApplyT2048Preset(&rules, *preset)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	useFileLogger()

	opts := tui.Options{
		Logger: logger,
		Config: cfg,
		Rules:  ptr(rules.ToRules()),
	}
	if store != nil {
		opts.Scores = store
		if rules.Persistence.Autosave {
			opts.Saves = store
		}
	}

	if _, err := tui.Run(game, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func ptr(r t2048.Rules) *t2048.Rules {
	return &r
}
