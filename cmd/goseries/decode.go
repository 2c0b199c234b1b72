package main

import (
	"github.com/spf13/cobra"

	"github.com/njchilds90/goseries/series"
)

func newDecodeCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "decode FILE",
		Short: "Print a series saved with --format msgpack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := checkFormat(format)
			if err != nil {
				return err
			}
			path := args[0]
			if path != "-" {
				path = "@" + path
			}
			data, err := readInput(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			var s series.Series
			if err := s.UnmarshalBinary(data); err != nil {
				return err
			}
			return writeSeries(cmd.OutOrStdout(), &s, format, true)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text|latex|json|msgpack)")
	return cmd
}
