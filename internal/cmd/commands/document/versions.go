package document

import (
	"fmt"
	"strconv"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

type VersionsCommand struct {
	*base.Command

	flagPage    int
	flagPerPage int
}

func (c *VersionsCommand) Synopsis() string {
	return "List the versions of a document"
}

func (c *VersionsCommand) Help() string {
	return `Usage: nvisy document versions [options] <document-id>` +
		c.Flags().Help()
}

func (c *VersionsCommand) Flags() *base.FlagSet {
	f := newFlagSet(c.Command, "document versions")
	f.IntVar(&c.flagPage, "page", 1, "Page number, starting at 1.")
	f.IntVar(&c.flagPerPage, "per-page", 20, "Versions per page.")
	return f
}

func (c *VersionsCommand) Run(args []string) int {
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

	page := models.Page(c.flagPage, c.flagPerPage)
	resp, err := client.ListDocumentVersions(ctx, f.Arg(0), &page)
	if err != nil {
		return c.Fail("error listing versions", err)
	}

	t := base.Table{Header: []string{"VERSION", "SIZE", "CREATED BY", "CREATED"}}
	for _, v := range resp.Data {
		t.Rows = append(t.Rows, []string{
			strconv.FormatUint(uint64(v.Version), 10),
			strconv.FormatInt(v.Size, 10),
			v.CreatedBy,
			v.CreatedAt.String(),
		})
	}
	if err := c.Output(resp, t); err != nil {
		return c.Fail("error writing output", err)
	}
	if resp.HasMore() {
		c.UI.Info(fmt.Sprintf("More versions available with -page=%d", c.flagPage+1))
	}
	return 0
}
