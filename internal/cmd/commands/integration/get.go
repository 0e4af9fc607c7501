package integration

import (
	"flag"
	"fmt"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
)

type GetCommand struct {
	*base.Command
}

func (c *GetCommand) Synopsis() string {
	return "Show an integration"
}

func (c *GetCommand) Help() string {
	return `Usage: nvisy integration get [options] <integration-id>` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("integration get", flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}

func (c *GetCommand) Run(args []string) int {
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

	integration, err := client.GetIntegration(ctx, id)
	if err != nil {
		return c.Fail("error getting integration", err)
	}
	if err := c.Output(integration, table(*integration)); err != nil {
		return c.Fail("error writing output", err)
	}
	return 0
}
