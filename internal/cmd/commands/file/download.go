package file

import (
	"flag"
	"fmt"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
)

type DownloadCommand struct {
	*base.Command
}

func (c *DownloadCommand) Synopsis() string {
	return "Download a file"
}

func (c *DownloadCommand) Help() string {
	return `Usage: nvisy file download [options] <file-id> <path>` +
		c.Flags().Help()
}

func (c *DownloadCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("file download", flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}

func (c *DownloadCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 2 {
		c.UI.Error("a file ID and a destination path are required")
		return 1
	}
	fileID, err := base.ParseUUID(f.Arg(0))
	if err != nil {
		return c.Fail("error parsing arguments", err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	if err := client.DownloadFileToPath(ctx, fileID, f.Arg(1)); err != nil {
		return c.Fail("error downloading file", err)
	}
	c.UI.Output(fmt.Sprintf("Downloaded %s to %s", fileID, f.Arg(1)))
	return 0
}
