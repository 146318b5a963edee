package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/querie/pkg/core"
)

// Output formats of the exec command.
const (
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatCSV      = "csv"
	FormatMarkdown = "md"
	FormatYAML     = "yaml"
)

// Formats returns the accepted output formats.
func Formats() []string {
	return []string{FormatTable, FormatJSON, FormatCSV, FormatMarkdown, FormatYAML}
}

// IsFormat reports whether f names an output format. "markdown" is accepted
// as an alias of md.
func IsFormat(f string) bool {
	return f == "markdown" || slices.Contains(Formats(), f)
}

func renderResultSet(w io.Writer, set core.ResultSet, format string) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, set)
	case FormatCSV:
		return renderCSV(w, set)
	case FormatMarkdown, "markdown":
		return renderMarkdown(w, set)
	case FormatYAML:
		return renderYAML(w, set)
	default:
		return renderTable(w, set)
	}
}

func renderTable(w io.Writer, set core.ResultSet) error {
	if set.Len() == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	style := table.StyleLight
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)

	cols := set.Columns()
	headerRow := make(table.Row, len(cols))
	for i, col := range cols {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)

	// Right-align numeric columns, judged by the first row.
	configs := make([]table.ColumnConfig, 0, len(cols))
	for i, cell := range set.Rows[0] {
		if cell.Kind == core.KindNumber {
			configs = append(configs, table.ColumnConfig{Number: i + 1, Align: text.AlignRight})
		}
	}
	t.SetColumnConfigs(configs)

	for _, values := range set.Values() {
		row := make(table.Row, len(values))
		for i, v := range values {
			row[i] = v
		}
		t.AppendRow(row)
	}

	t.Render()
	if set.Len() == 1 {
		_, _ = fmt.Fprintln(w, "(1 row)")
	} else {
		_, _ = fmt.Fprintf(w, "(%d rows)\n", set.Len())
	}
	return nil
}

// typedValue converts a cell back to a JSON/YAML scalar according to its kind.
// An empty non-text value (NULL) becomes nil; empty text stays "".
func typedValue(c core.Cell) any {
	if c.Value == "" {
		if c.Kind == core.KindText {
			return ""
		}
		return nil
	}
	switch c.Kind {
	case core.KindNumber:
		if _, err := strconv.ParseFloat(c.Value, 64); err == nil {
			return json.Number(c.Value)
		}
	case core.KindBoolean:
		if b, err := strconv.ParseBool(c.Value); err == nil {
			return b
		}
	}
	return c.Value
}

// objectKeys returns unique keys for cols. Repeated names get a numeric
// suffix: two "?column?" columns become "?column?" and "?column?_2".
func objectKeys(cols []string) []string {
	keys := make([]string, len(cols))
	used := make(map[string]bool, len(cols))
	for _, col := range cols {
		used[col] = true
	}
	seen := make(map[string]int, len(cols))
	for i, col := range cols {
		seen[col]++
		if seen[col] == 1 {
			keys[i] = col
			continue
		}
		n := seen[col]
		key := fmt.Sprintf("%s_%d", col, n)
		for used[key] {
			n++
			key = fmt.Sprintf("%s_%d", col, n)
		}
		used[key] = true
		keys[i] = key
	}
	return keys
}

func renderJSON(w io.Writer, set core.ResultSet) error {
	keys := objectKeys(set.Columns())
	results := make([]map[string]any, 0, set.Len())
	for _, row := range set.Rows {
		obj := make(map[string]any, len(row))
		for i, cell := range row {
			obj[keys[i]] = typedValue(cell)
		}
		results = append(results, obj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

func renderCSV(w io.Writer, set core.ResultSet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(set.Columns()); err != nil {
		return err
	}
	if err := cw.WriteAll(set.Values()); err != nil {
		return err
	}
	return cw.Error()
}

func renderMarkdown(w io.Writer, set core.ResultSet) error {
	if set.Len() == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	cols := set.Columns()
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(cols, " | "))
	seps := make([]string, len(cols))
	for i := range seps {
		seps[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))

	for _, values := range set.Values() {
		escaped := make([]string, len(values))
		for i, v := range values {
			escaped[i] = strings.ReplaceAll(v, "|", `\|`)
		}
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(escaped, " | "))
	}
	return nil
}

// renderYAML writes one mapping per row, keeping column order.
func renderYAML(w io.Writer, set core.ResultSet) error {
	keys := objectKeys(set.Columns())
	doc := &yaml.Node{Kind: yaml.SequenceNode}
	for _, row := range set.Rows {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for i, cell := range row {
			value := &yaml.Node{}
			if err := value.Encode(yamlValue(cell)); err != nil {
				return err
			}
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: keys[i]},
				value,
			)
		}
		doc.Content = append(doc.Content, m)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

func yamlValue(c core.Cell) any {
	switch v := typedValue(c).(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	default:
		return v
	}
}
