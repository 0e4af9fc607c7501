package workspace

import (
	"strings"

	"github.com/mitchellh/cli"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage workspaces"
}

func (c *Command) Help() string {
	return `Usage: nvisy workspace <subcommand> [options] [args]

  This command groups subcommands for creating, inspecting and deleting
  workspaces.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

func table(workspaces ...models.Workspace) base.Table {
	t := base.Table{Header: []string{"ID", "NAME", "ROLE", "TAGS", "CREATED"}}
	for _, ws := range workspaces {
		t.Rows = append(t.Rows, []string{
			ws.WorkspaceID.String(),
			ws.DisplayName,
			string(ws.MemberRole),
			strings.Join(ws.Tags, ","),
			ws.CreatedAt.String(),
		})
	}
	return t
}
