package document

import (
	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
)

type GetCommand struct {
	*base.Command
}

func (c *GetCommand) Synopsis() string {
	return "Show document metadata"
}

func (c *GetCommand) Help() string {
	return `Usage: nvisy document get [options] <document-id>` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	return newFlagSet(c.Command, "document get")
}

func (c *GetCommand) Run(args []string) int {
	f := c.Flags()
	if !parseArgs(c.Command, f, args, 1, "exactly one document ID is required") {
		return 1
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	doc, err := client.GetDocument(ctx, f.Arg(0))
	if err != nil {
		return c.Fail("error getting document", err)
	}
	if err := c.Output(doc, table(*doc)); err != nil {
		return c.Fail("error writing output", err)
	}
	return 0
}
