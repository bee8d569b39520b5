package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tinyhero/internal/config"
)

var flagConfigDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a run would use, as YAML.

Search order: --config path, ~/.tinyhero/config.yaml,
./configs/tinyhero.yaml, then the built-in defaults.

Examples:
  tinyhero config
  tinyhero config --default > ~/.tinyhero/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefault, "default", false, "Print the built-in default file")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefault {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Printf("# source: %s\n", src)
	_, err = os.Stdout.Write(out)
	return err
}
