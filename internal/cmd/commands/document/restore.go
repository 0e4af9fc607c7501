package document

import (
	"fmt"
	"strconv"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
)

type RestoreCommand struct {
	*base.Command
}

func (c *RestoreCommand) Synopsis() string {
	return "Restore a previous document version"
}

func (c *RestoreCommand) Help() string {
	return `Usage: nvisy document restore [options] <document-id> <version>` +
		c.Flags().Help()
}

func (c *RestoreCommand) Flags() *base.FlagSet {
	return newFlagSet(c.Command, "document restore")
}

func (c *RestoreCommand) Run(args []string) int {
	f := c.Flags()
	if !parseArgs(c.Command, f, args, 2, "a document ID and a version number are required") {
		return 1
	}
	version, err := strconv.ParseUint(f.Arg(1), 10, 32)
	if err != nil {
		return c.Fail("error parsing version", err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	doc, err := client.RestoreDocumentVersion(ctx, f.Arg(0), uint32(version))
	if err != nil {
		return c.Fail("error restoring version", err)
	}
	c.UI.Info(fmt.Sprintf("Restored version %d", version))
	if err := c.Output(doc, table(*doc)); err != nil {
		return c.Fail("error writing output", err)
	}
	return 0
}
