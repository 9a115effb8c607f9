package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var flagShowDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective rules",
	Long: `Print the rules YAML after --config and --difficulty are applied.
Redirect it to ~/.t2048/configs/t2048.yaml to start customizing.

Examples:
  t2048 config
  t2048 config --difficulty hard
  t2048 config --default > ~/.t2048/configs/t2048.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefault, "default", false, "Print the built-in default file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagShowDefault {
		_, err := os.Stdout.Write(config.DefaultT2048YAML())
		return err
	}

	data, err := config.MarshalT2048(rulesConf)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
