package file

import (
	"flag"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

type UploadCommand struct {
	*base.Command
}

func (c *UploadCommand) Synopsis() string {
	return "Upload local files to a workspace"
}

func (c *UploadCommand) Help() string {
	return `Usage: nvisy file upload [options] <workspace-id> <path>...

  This command uploads each path as a separate file named after its base
  name. A failed upload does not stop the remaining ones.` +
		c.Flags().Help()
}

func (c *UploadCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("file upload", flag.ContinueOnError))
	c.ClientFlags(f)
	return f
}

func (c *UploadCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() < 2 {
		c.UI.Error("a workspace ID and at least one path are required")
		return 1
	}
	wsID, err := base.ParseUUID(f.Arg(0))
	if err != nil {
		return c.Fail("error parsing arguments", err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	var (
		uploaded []models.File
		result   *multierror.Error
	)
	for _, path := range f.Args()[1:] {
		file, err := client.UploadFileFromPath(ctx, wsID, path)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))
			continue
		}
		c.Log.Debug("uploaded file", "path", path, "file_id", file.FileID)
		uploaded = append(uploaded, *file)
	}

	if len(uploaded) > 0 {
		if err := c.Output(uploaded, table(uploaded...)); err != nil {
			return c.Fail("error writing output", err)
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return c.Fail("error uploading files", err)
	}
	return 0
}
