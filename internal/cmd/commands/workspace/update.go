package workspace

import (
	"flag"
	"fmt"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

type UpdateCommand struct {
	*base.Command

	flagName        string
	flagDescription string
	flagTags        []string
}

func (c *UpdateCommand) Synopsis() string {
	return "Update a workspace"
}

func (c *UpdateCommand) Help() string {
	return `Usage: nvisy workspace update [options] <workspace-id>

  This command changes only the attributes given as flags.` +
		c.Flags().Help()
}

func (c *UpdateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("workspace update", flag.ContinueOnError))
	c.ClientFlags(f)

	f.StringVar(&c.flagName, "name", "", "New display name.")
	f.StringVar(&c.flagDescription, "description", "", "New description.")
	f.StringSliceVar(&c.flagTags, "tag", "Replacement tag list. May be repeated.")

	return f
}

func (c *UpdateCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("exactly one workspace ID is required")
		return 1
	}
	id, err := base.ParseUUID(f.Arg(0))
	if err != nil {
		return c.Fail("error parsing arguments", err)
	}

	var req models.UpdateWorkspace
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			req.DisplayName = &c.flagName
		case "description":
			req.Description = &c.flagDescription
		case "tag":
			req.Tags = &c.flagTags
		}
	})
	if req == (models.UpdateWorkspace{}) {
		c.UI.Error("nothing to update")
		return 1
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	ws, err := client.UpdateWorkspace(ctx, id, req)
	if err != nil {
		return c.Fail("error updating workspace", err)
	}
	if err := c.Output(ws, table(*ws)); err != nil {
		return c.Fail("error writing output", err)
	}
	return 0
}
