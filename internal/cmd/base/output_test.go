package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvisy/nvisy-sdk-go/internal/config"
)

type outputItem struct {
	ID   string   `json:"id"`
	Name string   `json:"displayName"`
	Tags []string `json:"tags"`
}

func TestCommand_Output(t *testing.T) {
	item := outputItem{ID: "ws-1", Name: "Legal", Tags: []string{"a", "b"}}
	tbl := Table{
		Header: []string{"ID", "NAME"},
		Rows:   [][]string{{"ws-1", "Legal"}, {"ws-22", "Finance"}},
	}

	cases := []struct {
		output string
		want   string
	}{
		{
			output: config.OutputTable,
			want: "ID     NAME\n" +
				"ws-1   Legal\n" +
				"ws-22  Finance\n",
		},
		{
			output: config.OutputJSON,
			want: "{\n" +
				"  \"id\": \"ws-1\",\n" +
				"  \"displayName\": \"Legal\",\n" +
				"  \"tags\": [\n" +
				"    \"a\",\n" +
				"    \"b\"\n" +
				"  ]\n" +
				"}\n",
		},
		{
			output: config.OutputYAML,
			want: "displayName: Legal\n" +
				"id: ws-1\n" +
				"tags:\n" +
				"    - a\n" +
				"    - b\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.output, func(t *testing.T) {
			c, ui := newTestCommand()
			c.output = tc.output

			require.NoError(t, c.Output(item, tbl))
			assert.Equal(t, tc.want, ui.OutputWriter.String())
		})
	}
}

func TestCommand_OutputEncodingError(t *testing.T) {
	c, _ := newTestCommand()
	c.output = config.OutputJSON

	err := c.Output(map[string]any{"bad": make(chan int)}, Table{})
	assert.ErrorContains(t, err, "error encoding JSON")
}
