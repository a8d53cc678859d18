package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

func getOutputFlag(flags *pflag.FlagSet) (string, error) {
	output, err := flags.GetString(outputFlagName)
	if err != nil {
		return "", err
	}
	switch output {
	case outputTable, outputJSON:
		return output, nil
	}
	return "", fmt.Errorf("unknown output format %q, available values: [ table | json ]", output)
}

// printer renders v as JSON, or as a table through rows when asked for one.
type printer struct {
	out    io.Writer
	format string
}

func newPrinter(cmd *cobra.Command) (*printer, error) {
	format, err := getOutputFlag(cmd.Flags())
	if err != nil {
		return nil, err
	}
	return &printer{out: cmd.OutOrStdout(), format: format}, nil
}

func (p *printer) print(v any, header string, rows func(w io.Writer)) error {
	if p.format == outputJSON {
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, header)
	rows(w)
	return w.Flush()
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
