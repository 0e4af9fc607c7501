package file

import (
	"flag"
	"fmt"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

type ListCommand struct {
	*base.Command

	flagFormats []string
	flagSearch  string
	flagLimit   int
	flagAfter   string
}

func (c *ListCommand) Synopsis() string {
	return "List the files of a workspace"
}

func (c *ListCommand) Help() string {
	return `Usage: nvisy file list [options] <workspace-id>` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("file list", flag.ContinueOnError))
	c.ClientFlags(f)

	f.StringSliceVar(&c.flagFormats, "format", "Only list files of this format (pdf, docx, csv, ...). May be repeated.")
	f.StringVar(&c.flagSearch, "search", "", "Only list files whose name contains this text.")
	f.IntVar(&c.flagLimit, "limit", 0, "Maximum number of files to return.")
	f.StringVar(&c.flagAfter, "after", "", "Cursor returned by a previous page.")

	return f
}

func (c *ListCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("exactly one workspace ID is required")
		return 1
	}
	wsID, err := base.ParseUUID(f.Arg(0))
	if err != nil {
		return c.Fail("error parsing arguments", err)
	}

	opts := &models.ListFilesOptions{
		CursorOptions: models.CursorOptions{After: c.flagAfter, Limit: c.flagLimit},
		Search:        c.flagSearch,
	}
	for _, format := range c.flagFormats {
		opts.Formats = append(opts.Formats, models.FileFormat(base.NormalizeEnum(format)))
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	page, err := client.ListFiles(ctx, wsID, opts)
	if err != nil {
		return c.Fail("error listing files", err)
	}
	if err := c.Output(page, table(page.Items...)); err != nil {
		return c.Fail("error writing output", err)
	}
	if page.More() {
		c.UI.Info(fmt.Sprintf("More results available with -after=%s", page.NextCursor))
	}
	return 0
}
