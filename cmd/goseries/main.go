// Command goseries expands symbolic expressions into truncated power series.
//
//	goseries expand '{"type":"func","name":"sin","arg":{"type":"sym","name":"x"}}' --prec 5
//	goseries batch jobs.json
//	goseries serve --config goseries.toml
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/njchilds90/goseries/internal/config"
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	colorMode  string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "goseries",
		Short:         "Truncated power series of symbolic expressions",
		Long:          `goseries expands expressions given as JSON trees into power series around 0 with exact rational and symbolic coefficients.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch strings.ToLower(a.colorMode) {
			case "on":
				color.NoColor = false
			case "off":
				color.NoColor = true
			case "auto":
			default:
				return fmt.Errorf("unsupported color mode %q (must be auto, on or off)", a.colorMode)
			}
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a goseries.toml file")
	root.PersistentFlags().StringVar(&a.colorMode, "color", "auto", "colorize output (auto|on|off)")

	root.AddCommand(newExpandCmd(a))
	root.AddCommand(newBatchCmd(a))
	root.AddCommand(newDecodeCmd())
	root.AddCommand(newServeCmd(a))
	root.AddCommand(newVersionCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorColor.Sprint("error: ")+err.Error())
		os.Exit(1)
	}
}
