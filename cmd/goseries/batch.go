package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/njchilds90/goseries/internal/batch"
	"github.com/njchilds90/goseries/symbolic"
)

// jobEntry is one entry of a batch file.
type jobEntry struct {
	Expr map[string]interface{} `json:"expr"`
	Var  string                 `json:"var"`
	Prec *int                   `json:"prec"`
}

func newBatchCmd(a *app) *cobra.Command {
	var (
		format  string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Expand a JSON array of jobs concurrently",
		Long: `Expand every job of a JSON array such as
  [{"expr": {...}, "var": "x", "prec": 5}, ...]
FILE may be "-" for stdin. Results print in input order; the first failing
job stops the batch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := checkFormat(format)
			if err != nil {
				return err
			}
			if format == formatMsgpack {
				return fmt.Errorf("batch output does not support %s", formatMsgpack)
			}
			path := args[0]
			if path != "-" {
				path = "@" + path
			}
			data, err := readInput(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			var entries []jobEntry
			if err := json.Unmarshal(data, &entries); err != nil {
				return fmt.Errorf("invalid batch file: %w", err)
			}
			jobs := make([]batch.Job, len(entries))
			for i, entry := range entries {
				e, err := symbolic.FromJSON(entry.Expr)
				if err != nil {
					return fmt.Errorf("job %d: %w", i, err)
				}
				jobs[i] = batch.Job{Expr: e, Var: entry.Var, Prec: a.cfg.Series.Precision}
				if jobs[i].Var == "" {
					jobs[i].Var = a.cfg.Series.Var
				}
				if entry.Prec != nil {
					jobs[i].Prec = *entry.Prec
				}
			}

			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Batch.Workers
			}
			out, err := batch.New(workers, nil).Run(cmd.Context(), jobs)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, s := range out {
				if format == formatText {
					fmt.Fprintf(w, "%s ", faintColor.Sprintf("[%d]", i))
				}
				if err := writeSeries(w, s, format, false); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format (text|latex|json)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "concurrent jobs (default from config)")
	return cmd
}
