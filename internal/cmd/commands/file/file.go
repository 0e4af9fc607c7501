package file

import (
	"strconv"

	"github.com/mitchellh/cli"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage workspace files"
}

func (c *Command) Help() string {
	return `Usage: nvisy file <subcommand> [options] [args]

  This command groups subcommands for uploading, downloading and deleting
  the files stored in a workspace.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

func table(files ...models.File) base.Table {
	t := base.Table{Header: []string{"ID", "NAME", "FORMAT", "SIZE", "STATUS", "UPDATED"}}
	for _, f := range files {
		t.Rows = append(t.Rows, []string{
			f.FileID.String(),
			f.DisplayName,
			string(f.FileFormat),
			strconv.FormatInt(f.FileSize, 10),
			string(f.Status),
			f.UpdatedAt.String(),
		})
	}
	return t
}
