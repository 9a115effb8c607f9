package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the default 2048 configuration.
func DefaultT2048Config() T2048Config {
	rules := t2048.DefaultRules()
	keys := t2048.DefaultSaveKeys()

	return T2048Config{
		Rules: T2048Rules{
			WinTile:       rules.WinTile,
			SpawnFourProb: rules.FourProb,
		},
		Persistence: T2048Persistence{
			SaveKey:  keys.Game,
			BestKey:  keys.Best,
			Autosave: true,
		},
	}
}

// DefaultT2048YAML returns the embedded default config file.
func DefaultT2048YAML() []byte {
	return defaultT2048YAML
}
