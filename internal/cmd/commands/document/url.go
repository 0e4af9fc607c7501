package document

import (
	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
)

type URLCommand struct {
	*base.Command

	flagOpen bool
}

func (c *URLCommand) Synopsis() string {
	return "Print a signed download URL"
}

func (c *URLCommand) Help() string {
	return `Usage: nvisy document url [options] <document-id>

  This command prints a short-lived signed URL for the document content.` +
		c.Flags().Help()
}

func (c *URLCommand) Flags() *base.FlagSet {
	f := newFlagSet(c.Command, "document url")
	f.BoolVar(&c.flagOpen, "open", false, "Open the URL in the default browser.")
	return f
}

func (c *URLCommand) Run(args []string) int {
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

	url, err := client.DocumentDownloadURL(ctx, f.Arg(0))
	if err != nil {
		return c.Fail("error getting download URL", err)
	}
	c.UI.Output(url)

	if c.flagOpen {
		if err := c.OpenURL(url); err != nil {
			return c.Fail("error opening browser", err)
		}
	}
	return 0
}
