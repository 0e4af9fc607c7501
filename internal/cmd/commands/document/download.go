package document

import (
	"fmt"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
)

type DownloadCommand struct {
	*base.Command
}

func (c *DownloadCommand) Synopsis() string {
	return "Download document content"
}

func (c *DownloadCommand) Help() string {
	return `Usage: nvisy document download [options] <document-id> <path>` +
		c.Flags().Help()
}

func (c *DownloadCommand) Flags() *base.FlagSet {
	return newFlagSet(c.Command, "document download")
}

func (c *DownloadCommand) Run(args []string) int {
	f := c.Flags()
	if !parseArgs(c.Command, f, args, 2, "a document ID and a destination path are required") {
		return 1
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	if err := client.DownloadDocument(ctx, f.Arg(0), f.Arg(1)); err != nil {
		return c.Fail("error downloading document", err)
	}
	c.UI.Output(fmt.Sprintf("Downloaded %s to %s", f.Arg(0), f.Arg(1)))
	return 0
}
