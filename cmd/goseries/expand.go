package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/njchilds90/goseries/series"
	"github.com/njchilds90/goseries/symbolic"
)

type expandOptions struct {
	varName string
	prec    int
	format  string
	table   bool
}

func newExpandCmd(a *app) *cobra.Command {
	opts := &expandOptions{}
	cmd := &cobra.Command{
		Use:   "expand EXPR",
		Short: "Expand one expression",
		Long: `Expand one expression given as a JSON tree. EXPR is the JSON itself,
"-" to read it from stdin, or @file to read it from a file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := checkFormat(opts.format)
			if err != nil {
				return err
			}
			data, err := readInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			e, err := symbolic.ParseJSON(data)
			if err != nil {
				return err
			}
			name, prec := a.cfg.Series.Var, a.cfg.Series.Precision
			if cmd.Flags().Changed("var") {
				name = opts.varName
			}
			if cmd.Flags().Changed("prec") {
				prec = opts.prec
			}
			s, err := series.Expand(e, name, prec)
			if err != nil {
				return fmt.Errorf("cannot expand: %w", err)
			}
			return writeSeries(cmd.OutOrStdout(), s, format, opts.table)
		},
	}
	cmd.Flags().StringVarP(&opts.varName, "var", "v", "x", "expansion variable (default from config)")
	cmd.Flags().IntVarP(&opts.prec, "prec", "p", 6, "drop terms of this degree and above (default from config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "output format (text|latex|json|msgpack)")
	cmd.Flags().BoolVar(&opts.table, "coefficients", false, "list coefficients under text output")
	return cmd
}
