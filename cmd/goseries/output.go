package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	jsoniter "github.com/json-iterator/go"

	"github.com/njchilds90/goseries/series"
	"github.com/njchilds90/goseries/symbolic"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	seriesColor = color.New(color.FgCyan, color.Bold)
	degreeColor = color.New(color.FgYellow)
	errorColor  = color.New(color.FgRed, color.Bold)
	faintColor  = color.New(color.Faint)
)

const (
	formatText    = "text"
	formatLaTeX   = "latex"
	formatJSON    = "json"
	formatMsgpack = "msgpack"
)

func checkFormat(format string) (string, error) {
	f := strings.ToLower(format)
	switch f {
	case formatText, formatLaTeX, formatJSON, formatMsgpack:
		return f, nil
	}
	return "", fmt.Errorf("unsupported format %q (must be text, latex, json or msgpack)", format)
}

// readInput returns arg itself, or the contents of stdin when arg is "-" or
// the named file when it starts with "@".
func readInput(arg string, stdin io.Reader) ([]byte, error) {
	switch {
	case arg == "-":
		return io.ReadAll(stdin)
	case strings.HasPrefix(arg, "@"):
		return os.ReadFile(arg[1:])
	}
	return []byte(arg), nil
}

// writeSeries renders s in format. Text output lists the coefficients
// below the series when table is set.
func writeSeries(out io.Writer, s *series.Series, format string, table bool) error {
	switch format {
	case formatLaTeX:
		_, err := fmt.Fprintln(out, s.LaTeX())
		return err
	case formatJSON:
		rec, err := s.Record()
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	case formatMsgpack:
		data, err := s.MarshalBinary()
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}
	if _, err := seriesColor.Fprintln(out, s.String()); err != nil {
		return err
	}
	if !table {
		return nil
	}
	for e, c := range s.Polynomial().All() {
		fmt.Fprintf(out, "  %s  %s\n", degreeColor.Sprintf("%4d", e), symbolic.String(c))
	}
	faintColor.Fprintf(out, "  degree %d, precision %d, hash %016x\n", s.Degree(), s.Precision(), s.Hash())
	return nil
}
