package integration

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
	return "List the integrations of a workspace"
}

func (c *ListCommand) Help() string {
	return `Usage: nvisy integration list [options] <workspace-id>` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("integration list", flag.ContinueOnError))
	c.ClientFlags(f)

	f.IntVar(&c.flagLimit, "limit", 0, "Maximum number of integrations to return.")
	f.StringVar(&c.flagAfter, "after", "", "Cursor returned by a previous page.")

	return f
}

func (c *ListCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("exactly one workspace ID is required")
		return 1
	}
	wsID, err := base.ParseUUID(f.Arg(0))
	if err != nil {
		return c.Fail("error parsing arguments", err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	page, err := client.ListIntegrations(ctx, wsID, &models.ListIntegrationsOptions{
		After: c.flagAfter,
		Limit: c.flagLimit,
	})
	if err != nil {
		return c.Fail("error listing integrations", err)
	}

	if err := c.Output(page, table(page.Items...)); err != nil {
		return c.Fail("error writing output", err)
	}
	if page.More() {
		c.UI.Info(fmt.Sprintf("More results available with -after=%s", page.NextCursor))
	}
	return 0
}
