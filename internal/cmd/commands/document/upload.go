package document

import (
	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
)

type UploadCommand struct {
	*base.Command
}

func (c *UploadCommand) Synopsis() string {
	return "Replace document content from a local file"
}

func (c *UploadCommand) Help() string {
	return `Usage: nvisy document upload [options] <document-id> <path>

  This command uploads the file as the new current version.` +
		c.Flags().Help()
}

func (c *UploadCommand) Flags() *base.FlagSet {
	return newFlagSet(c.Command, "document upload")
}

func (c *UploadCommand) Run(args []string) int {
	f := c.Flags()
	if !parseArgs(c.Command, f, args, 2, "a document ID and a path are required") {
		return 1
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	doc, err := client.UploadDocument(ctx, f.Arg(0), f.Arg(1))
	if err != nil {
		return c.Fail("error uploading document", err)
	}
	if err := c.Output(doc, table(*doc)); err != nil {
		return c.Fail("error writing output", err)
	}
	return 0
}
