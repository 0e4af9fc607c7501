package base

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/nvisy/nvisy-sdk-go/internal/config"
)

// Table is the human-readable rendering of a result.
type Table struct {
	Header []string
	Rows   [][]string
}

// Output writes v in the format chosen by Client. Machine formats encode
// v itself; the table format prints t.
func (c *Command) Output(v any, t Table) error {
	switch c.output {
	case config.OutputJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		c.UI.Output(string(b))
	case config.OutputYAML:
		b, err := toYAML(v)
		if err != nil {
			return err
		}
		c.UI.Output(strings.TrimRight(string(b), "\n"))
	default:
		c.UI.Output(renderTable(t))
	}
	return nil
}

// toYAML goes through JSON so that field names match the API.
func toYAML(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("error encoding YAML: %w", err)
	}
	var generic any
	if err := json.Unmarshal(b, &generic); err != nil {
		return nil, fmt.Errorf("error encoding YAML: %w", err)
	}
	out, err := yaml.Marshal(generic)
	if err != nil {
		return nil, fmt.Errorf("error encoding YAML: %w", err)
	}
	return out, nil
}

func renderTable(t Table) string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	if len(t.Header) > 0 {
		fmt.Fprintln(w, strings.Join(t.Header, "\t"))
	}
	for _, row := range t.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
	return strings.TrimRight(b.String(), "\n")
}
