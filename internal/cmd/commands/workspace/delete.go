package workspace

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
	return "Delete one or more workspaces"
}

func (c *DeleteCommand) Help() string {
	return `Usage: nvisy workspace delete [options] <workspace-id>...

  This command deletes every given workspace. A failure does not stop the
  remaining deletions; all failures are reported at the end.` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("workspace delete", flag.ContinueOnError))
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
		c.UI.Error("at least one workspace ID is required")
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
		if err := client.DeleteWorkspace(ctx, id); err != nil {
			result = multierror.Append(result,
				fmt.Errorf("workspace %s: %w", id, err))
			continue
		}
		c.Log.Debug("deleted workspace", "workspace_id", id)
		c.UI.Output(fmt.Sprintf("Deleted workspace %s", id))
	}

	if err := result.ErrorOrNil(); err != nil {
		return c.Fail("error deleting workspaces", err)
	}
	return 0
}
