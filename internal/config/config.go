// Package config provides YAML-based rules loading, difficulty presets and
// environment-driven server settings for the 2048 platform.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Rules       T2048Rules       `yaml:"rules"`
	Persistence T2048Persistence `yaml:"persistence"`
}

// T2048Rules defines the board rules.
type T2048Rules struct {
	WinTile       int     `yaml:"win_tile"`
	SpawnFourProb float64 `yaml:"spawn_four_prob"`
}

// T2048Persistence defines where progress is kept.
type T2048Persistence struct {
	SaveKey  string `yaml:"save_key"`
	BestKey  string `yaml:"best_key"`
	Autosave bool   `yaml:"autosave"`
}

// Validate checks that the rules describe a playable game.
func (c T2048Config) Validate() error {
	var errs []error

	if w := c.Rules.WinTile; w < 4 || w&(w-1) != 0 {
		errs = append(errs, fmt.Errorf("rules.win_tile must be a power of two >= 4, got %d", w))
	}
	if p := c.Rules.SpawnFourProb; p < 0 || p > 1 {
		errs = append(errs, fmt.Errorf("rules.spawn_four_prob must be within [0, 1], got %g", p))
	}
	if c.Persistence.SaveKey == "" || c.Persistence.BestKey == "" {
		errs = append(errs, errors.New("persistence keys must not be empty"))
	}
	if c.Persistence.SaveKey != "" && c.Persistence.SaveKey == c.Persistence.BestKey {
		errs = append(errs, errors.New("persistence.save_key and persistence.best_key must differ"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid 2048 config: %w", err)
	}
	return nil
}

// ToRules converts the YAML rules to session rules.
func (c T2048Config) ToRules() t2048.Rules {
	return t2048.Rules{
		WinTile:  c.Rules.WinTile,
		FourProb: c.Rules.SpawnFourProb,
	}
}

// SaveKeys returns the configured storage keys.
func (c T2048Config) SaveKeys() t2048.SaveKeys {
	return t2048.SaveKeys{
		Game: c.Persistence.SaveKey,
		Best: c.Persistence.BestKey,
	}
}

// Apply installs the rules and keys for every game created afterwards.
func (c T2048Config) Apply() {
	t2048.SetRules(c.ToRules())
	t2048.SetSaveKeys(c.SaveKeys())
}
