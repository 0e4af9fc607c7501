package file

import (
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

type ArchiveCommand struct {
	*base.Command

	flagFormat string
	flagOut    string
}

func (c *ArchiveCommand) Synopsis() string {
	return "Download several files as one archive"
}

func (c *ArchiveCommand) Help() string {
	return `Usage: nvisy file archive [options] <workspace-id> [file-id...]

  This command downloads the given files, or every file of the workspace
  when none are given, as a single archive.` +
		c.Flags().Help()
}

func (c *ArchiveCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("file archive", flag.ContinueOnError))
	c.ClientFlags(f)

	f.StringVar(&c.flagFormat, "format", string(models.ArchiveFormatZip), "Archive format: zip or tar.gz.")
	f.StringVar(&c.flagOut, "out", "", "Destination path. Defaults to <workspace-id>.<format>.")

	return f
}

func (c *ArchiveCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() < 1 {
		c.UI.Error("a workspace ID is required")
		return 1
	}
	ids, err := base.ParseUUIDs(f.Args())
	if err != nil {
		return c.Fail("error parsing arguments", err)
	}
	wsID, fileIDs := ids[0], ids[1:]

	format := models.ArchiveFormat(strings.ToLower(c.flagFormat))
	if format != models.ArchiveFormatZip && format != models.ArchiveFormatTarGz {
		c.UI.Error(fmt.Sprintf("unsupported archive format %q", c.flagFormat))
		return 1
	}
	out := c.flagOut
	if out == "" {
		out = wsID.String() + "." + format.Extension()
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	data, err := client.DownloadFilesBatch(ctx, wsID, fileIDs, format)
	if err != nil {
		return c.Fail("error downloading archive", err)
	}
	if err := afero.WriteFile(c.Fs, out, data, 0o644); err != nil {
		return c.Fail("error writing archive", err)
	}
	c.UI.Output(fmt.Sprintf("Wrote %d bytes to %s", len(data), out))
	return 0
}
