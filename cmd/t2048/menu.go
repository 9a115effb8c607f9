package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a variant picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant, then pick
a difficulty. Leaving a game with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - High scores
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --fps 30
  t2048 menu --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	useFileLogger()

	cfg := runtimeConfig()
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	for {
		menuResult, err := tui.RunMenu(cfg, highScorer(store))
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue // Back to menu
			}
			return nil // User quit from scoreboard
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			logger.Error("cannot create game", "game", menuResult.GameID, "error", err)
			continue
		}

		chosen, err := tui.RunDifficultySelector(game.Title(), preset, cfg)
		if err != nil {
			return err
		}
		if chosen == nil {
			continue
		}
		preset = *chosen

		rules := rulesConf
		config.ApplyT2048Preset(&rules, preset)

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

		// Fresh seed for each game
		if flagSeed == 0 {
			opts.Config.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, opts)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}

// highScorer returns a lookup backed by store, or nil without one.
func highScorer(store *storage.Store) tui.HighScorer {
	if store == nil {
		return nil
	}
	return func(gameID string) int {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		high, err := store.HighScore(ctx, gameID)
		if err != nil {
			logger.Debug("cannot load high score", "game", gameID, "error", err)
			return 0
		}
		return high
	}
}
