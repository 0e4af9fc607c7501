package workspace

import (
	"flag"
	"fmt"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

type ListCommand struct {
	*base.Command

	flagLimit int
	flagAfter string
}

func (c *ListCommand) Synopsis() string {
	return "List workspaces"
}

func (c *ListCommand) Help() string {
	return `Usage: nvisy workspace list [options]

  This command lists one page of the workspaces visible to the caller.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("workspace list", flag.ContinueOnError))
	c.ClientFlags(f)

	f.IntVar(&c.flagLimit, "limit", 0, "Maximum number of workspaces to return.")
	f.StringVar(&c.flagAfter, "after", "", "Cursor returned by a previous page.")

	return f
}

func (c *ListCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	page, err := client.ListWorkspaces(ctx, &models.ListWorkspacesOptions{
		CursorOptions: models.CursorOptions{After: c.flagAfter, Limit: c.flagLimit},
	})
	if err != nil {
		return c.Fail("error listing workspaces", err)
	}

	if err := c.Output(page, table(page.Items...)); err != nil {
		return c.Fail("error writing output", err)
	}
	if page.More() {
		c.UI.Info(fmt.Sprintf("More results available with -after=%s", page.NextCursor))
	}
	return 0
}
