package file

import (
	"flag"
	"fmt"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
)

type DeleteCommand struct {
	*base.Command
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete files from a workspace"
}

func (c *DeleteCommand) Help() string {
	return `Usage: nvisy file delete [options] <workspace-id> <file-id>...

  This command deletes the given files in a single batch request.` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("file delete", flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}

func (c *DeleteCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() < 2 {
		c.UI.Error("a workspace ID and at least one file ID are required")
		return 1
	}
	ids, err := base.ParseUUIDs(f.Args())
	if err != nil {
		return c.Fail("error parsing arguments", err)
	}
	wsID, fileIDs := ids[0], ids[1:]

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	if len(fileIDs) == 1 {
		err = client.DeleteFile(ctx, fileIDs[0])
	} else {
		err = client.DeleteFilesBatch(ctx, wsID, fileIDs)
	}
	if err != nil {
		return c.Fail("error deleting files", err)
	}
	c.UI.Output(fmt.Sprintf("Deleted %d file(s)", len(fileIDs)))
	return 0
}
