package document

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/mitchellh/cli"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage documents and their versions"
}

func (c *Command) Help() string {
	return `Usage: nvisy document <subcommand> [options] [args]

  This command groups subcommands for document content and version
  history.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

func table(docs ...models.Document) base.Table {
	t := base.Table{Header: []string{"ID", "NAME", "TYPE", "SIZE", "WORKSPACE", "UPDATED"}}
	for _, d := range docs {
		t.Rows = append(t.Rows, []string{
			d.ID,
			d.Name,
			string(d.DocumentType),
			strconv.FormatInt(d.Size, 10),
			d.WorkspaceID,
			d.UpdatedAt.String(),
		})
	}
	return t
}

// parseArgs parses flags and checks the positional argument count.
func parseArgs(c *base.Command, f *base.FlagSet, args []string, n int, usage string) bool {
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return false
	}
	if f.NArg() != n {
		c.UI.Error(usage)
		return false
	}
	return true
}

func newFlagSet(c *base.Command, name string) *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet(name, flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}
