package workspace

import (
	"flag"
	"fmt"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

type CreateCommand struct {
	*base.Command

	flagName            string
	flagDescription     string
	flagTags            []string
	flagDisableComments bool
	flagRequireApproval bool
}

func (c *CreateCommand) Synopsis() string {
	return "Create a workspace"
}

func (c *CreateCommand) Help() string {
	return `Usage: nvisy workspace create -name=<name> [options]

  This command creates a workspace owned by the caller.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("workspace create", flag.ContinueOnError))
	c.ClientFlags(f)

	f.StringVar(&c.flagName, "name", "", "(Required) Display name.")
	f.StringVar(&c.flagDescription, "description", "", "Description.")
	f.StringSliceVar(&c.flagTags, "tag", "Tag to attach. May be repeated.")
	f.BoolVar(&c.flagDisableComments, "disable-comments", false, "Create with comments disabled.")
	f.BoolVar(&c.flagRequireApproval, "require-approval", false, "Require approval for changes.")

	return f
}

func (c *CreateCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	req := models.NewCreateWorkspace(c.flagName)
	req.Tags = c.flagTags
	req.EnableComments = !c.flagDisableComments
	req.RequireApproval = c.flagRequireApproval
	if c.flagDescription != "" {
		req.Description = &c.flagDescription
	}
	if err := req.Validate(); err != nil {
		return c.Fail("invalid workspace", err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	ws, err := client.CreateWorkspace(ctx, req)
	if err != nil {
		return c.Fail("error creating workspace", err)
	}
	if err := c.Output(ws, table(*ws)); err != nil {
		return c.Fail("error writing output", err)
	}
	return 0
}
