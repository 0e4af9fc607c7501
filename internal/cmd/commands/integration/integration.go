package integration

import (
	"strconv"

	"github.com/mitchellh/cli"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage workspace integrations"
}

func (c *Command) Help() string {
	return `Usage: nvisy integration <subcommand> [options] [args]

  This command groups subcommands for the third-party integrations of a
  workspace.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

func table(items ...models.Integration) base.Table {
	t := base.Table{Header: []string{"ID", "NAME", "TYPE", "ACTIVE", "SYNC", "LAST SYNC"}}
	for _, i := range items {
		sync, last := "-", "-"
		if i.SyncStatus != nil {
			sync = string(*i.SyncStatus)
		}
		if i.LastSyncAt != nil {
			last = i.LastSyncAt.String()
		}
		t.Rows = append(t.Rows, []string{
			i.IntegrationID.String(),
			i.IntegrationName,
			string(i.IntegrationType),
			strconv.FormatBool(i.IsActive),
			sync,
			last,
		})
	}
	return t
}
