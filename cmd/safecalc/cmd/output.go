package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cobalamin/safe-int/safeint/calc"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

const (
	outputText  = "text"
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func isOutputFormat(format string) bool {
	switch format {
	case outputText, outputTable, outputJSON, outputYAML:
		return true
	default:
		return false
	}
}

// row is the rendered form of a result. Value is nil when the result is
// Invalid.
type row struct {
	Expression string `json:"expression" yaml:"expression"`
	Value      *int   `json:"value" yaml:"value"`
	Cause      string `json:"cause,omitempty" yaml:"cause,omitempty"`
}

func toRows(results []calc.Result) []row {
	rows := make([]row, len(results))

	for i, r := range results {
		rows[i] = row{Expression: r.Expression}

		if v, ok := r.Value.Get(); ok {
			rows[i].Value = &v
		}

		if r.Cause != nil {
			rows[i].Cause = r.Cause.Error()
		}
	}

	return rows
}

func render(w io.Writer, format string, results []calc.Result) error {
	rows := toRows(results)

	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(rows)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(rows); err != nil {
			return err
		}

		return enc.Close()
	case outputTable:
		return renderTable(w, rows)
	default:
		return renderText(w, rows)
	}
}

func renderText(w io.Writer, rows []row) error {
	for _, r := range rows {
		var err error

		switch {
		case r.Value != nil:
			_, err = fmt.Fprintf(w, "%s = %d\n", r.Expression, *r.Value)
		case r.Cause != "":
			_, err = fmt.Fprintf(w, "%s = Invalid (%s)\n", r.Expression, r.Cause)
		default:
			_, err = fmt.Fprintf(w, "%s = Invalid\n", r.Expression)
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func renderTable(w io.Writer, rows []row) error {
	table := tablewriter.NewWriter(w)
	table.Header("Expression", "Value", "Cause")

	for _, r := range rows {
		value := "Invalid"
		if r.Value != nil {
			value = fmt.Sprint(*r.Value)
		}

		if err := table.Append([]string{r.Expression, value, r.Cause}); err != nil {
			return err
		}
	}

	return table.Render()
}
