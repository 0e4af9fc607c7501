package integration

import (
	"flag"
	"fmt"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
)

type SyncCommand struct {
	*base.Command
}

func (c *SyncCommand) Synopsis() string {
	return "Start a sync for an integration"
}

func (c *SyncCommand) Help() string {
	return `Usage: nvisy integration sync [options] <integration-id>

  This command asks the server to start synchronizing the integration.
  The sync runs asynchronously; use "nvisy integration get" to follow it.` +
		c.Flags().Help()
}

func (c *SyncCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("integration sync", flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}

func (c *SyncCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("exactly one integration ID is required")
		return 1
	}
	id, err := base.ParseUUID(f.Arg(0))
	if err != nil {
		return c.Fail("error parsing arguments", err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	integration, err := client.SyncIntegration(ctx, id)
	if err != nil {
		return c.Fail("error syncing integration", err)
	}
	if err := c.Output(integration, table(*integration)); err != nil {
		return c.Fail("error writing output", err)
	}
	return 0
}
