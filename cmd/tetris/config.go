package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var flagCurve bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way 'play' does and prints it as YAML.

Search order: --config, ~/.tetris/configs/tetris.yaml, ./configs/tetris.yaml,
then the built-in defaults. The --difficulty preset is applied before printing.

Examples:
  tetris config
  tetris config --difficulty easy --curve
  tetris config > ~/.tetris/configs/tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagCurve, "curve", false, "Also print the gravity interval per level")
}

func runConfig(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, string(data))

	if flagCurve {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "# level  interval")
		for i, d := range config.NewGravityCurve(cfg.Gravity).Table() {
			fmt.Fprintf(out, "# %5d  %s\n", i+1, d)
		}
	}
	return nil
}
