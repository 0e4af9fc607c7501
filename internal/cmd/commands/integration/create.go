package integration

import (
	"flag"
	"fmt"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

type CreateCommand struct {
	*base.Command

	flagName        string
	flagType        string
	flagDescription string
	flagCredentials string
	flagMetadata    string
	flagInactive    bool
}

func (c *CreateCommand) Synopsis() string {
	return "Create an integration"
}

func (c *CreateCommand) Help() string {
	return `Usage: nvisy integration create -name=<name> -type=<type> [options] <workspace-id>

  This command registers a third-party integration in the workspace.
  Credentials and metadata are passed through as raw JSON documents.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("integration create", flag.ContinueOnError))
	c.ClientFlags(f)

	f.StringVar(&c.flagName, "name", "", "(Required) Integration name.")
	f.StringVar(&c.flagType, "type", "",
		"(Required) One of storage, communication, business, analytics, "+
			"automation, custom or industry.")
	f.StringVar(&c.flagDescription, "description", "", "Description.")
	f.StringVar(&c.flagCredentials, "credentials", "", "Credentials as a JSON object.")
	f.StringVar(&c.flagMetadata, "metadata", "", "Metadata as a JSON object.")
	f.BoolVar(&c.flagInactive, "inactive", false, "Create the integration disabled.")

	return f
}

func (c *CreateCommand) Run(args []string) int {
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

	req := models.CreateIntegration{
		IntegrationName: c.flagName,
		Description:     c.flagDescription,
		IntegrationType: models.IntegrationType(base.NormalizeEnum(c.flagType)),
	}
	if c.flagCredentials != "" {
		if req.Credentials, err = models.ParseJSON(c.flagCredentials); err != nil {
			return c.Fail("error parsing -credentials", err)
		}
	}
	if c.flagMetadata != "" {
		if req.Metadata, err = models.ParseJSON(c.flagMetadata); err != nil {
			return c.Fail("error parsing -metadata", err)
		}
	}
	if c.flagInactive {
		active := false
		req.IsActive = &active
	}
	if err := req.Validate(); err != nil {
		return c.Fail("invalid integration", err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	integration, err := client.CreateIntegration(ctx, wsID, req)
	if err != nil {
		return c.Fail("error creating integration", err)
	}
	if err := c.Output(integration, table(*integration)); err != nil {
		return c.Fail("error writing output", err)
	}
	return 0
}
