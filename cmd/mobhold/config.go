package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mobhold/internal/config"
	"github.com/vovakirdan/mobhold/internal/games/mobhold"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect game configuration",
	Long: `Print or check the Mobhold configuration.

Configs are searched in order: --config, ~/.mobhold/configs/mobhold.yaml,
./configs/mobhold.yaml, then the built-in default.`,
}

var configDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the resolved configuration as YAML",
	Long: `Print the configuration the game would use, with the difficulty
preset applied. Redirect it to a file to start a custom config.

Examples:
  mobhold config dump
  mobhold config dump --difficulty hard > hard.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfigDump,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Check a configuration file",
	Long: `Parse and validate a config file, or the resolved configuration
when no path is given.

Examples:
  mobhold config validate ./my-mobhold.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfigValidate,
}

func init() {
	configCmd.AddCommand(configDumpCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigDump(cmd *cobra.Command, args []string) {
	cfg, err := mobhold.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}

func runConfigValidate(cmd *cobra.Command, args []string) {
	path := flagConfig
	if len(args) == 1 {
		path = args[0]
	}

	cfg, err := config.LoadMobhold(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	source := path
	if source == "" {
		source = "resolved configuration"
	}
	fmt.Printf("%s: ok (%d weapons, %d scrolls, %d monsters, %d phases, %d thresholds)\n",
		source, len(cfg.Weapons), len(cfg.Scrolls), len(cfg.Monsters), len(cfg.Phases), len(cfg.Upgrades.Thresholds))
}
