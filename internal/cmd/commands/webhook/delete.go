package webhook

import (
	"flag"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
)

type DeleteCommand struct {
	*base.Command
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete webhooks"
}

func (c *DeleteCommand) Help() string {
	return `Usage: nvisy webhook delete [options] <webhook-id>...` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("webhook delete", flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() == 0 {
		c.UI.Error("at least one webhook ID is required")
		return 1
	}
	ids, err := base.ParseUUIDs(f.Args())
	if err != nil {
		return c.Fail("error parsing arguments", err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	var result *multierror.Error
	for _, id := range ids {
		if err := client.DeleteWebhook(ctx, id); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", id, err))
			continue
		}
		c.UI.Output(fmt.Sprintf("Deleted webhook %s", id))
	}
	if err := result.ErrorOrNil(); err != nil {
		return c.Fail("error deleting webhooks", err)
	}
	return 0
}
