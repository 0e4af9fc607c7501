package webhook

import (
	"flag"
	"fmt"
	"strings"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

type CreateCommand struct {
	*base.Command

	flagName        string
	flagURL         string
	flagDescription string
	flagEvents      []string
	flagHeaders     []string
	flagPaused      bool
}

func (c *CreateCommand) Synopsis() string {
	return "Create a webhook"
}

func (c *CreateCommand) Help() string {
	return `Usage: nvisy webhook create -name=<name> -url=<url> -event=<event> [options] <workspace-id>

  This command registers a webhook that receives the selected workspace
  events. Event names may be given as document_created, document-created
  or DocumentCreated.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("webhook create", flag.ContinueOnError))
	c.ClientFlags(f)

	f.StringVar(&c.flagName, "name", "", "(Required) Display name.")
	f.StringVar(&c.flagURL, "url", "", "(Required) Delivery URL.")
	f.StringVar(&c.flagDescription, "description", "", "Description.")
	f.StringSliceVar(&c.flagEvents, "event", "(Required) Event to subscribe to. May be repeated.")
	f.StringSliceVar(&c.flagHeaders, "header", "Delivery header as Name=Value. May be repeated.")
	f.BoolVar(&c.flagPaused, "paused", false, "Create the webhook paused.")

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

	req := models.CreateWebhook{
		DisplayName: c.flagName,
		Description: c.flagDescription,
		URL:         c.flagURL,
	}
	for _, e := range c.flagEvents {
		req.Events = append(req.Events, models.WebhookEvent(base.NormalizeEnum(e)))
	}
	if len(c.flagHeaders) > 0 {
		req.Headers = make(map[string]string, len(c.flagHeaders))
		for _, h := range c.flagHeaders {
			name, value, ok := strings.Cut(h, "=")
			if !ok || strings.TrimSpace(name) == "" {
				c.UI.Error(fmt.Sprintf("invalid header %q, expected Name=Value", h))
				return 1
			}
			req.Headers[strings.TrimSpace(name)] = value
		}
	}
	if c.flagPaused {
		status := models.WebhookStatusPaused
		req.Status = &status
	}
	if err := req.Validate(); err != nil {
		return c.Fail("invalid webhook", err)
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	hook, err := client.CreateWebhook(ctx, wsID, req)
	if err != nil {
		return c.Fail("error creating webhook", err)
	}
	if err := c.Output(hook, table(*hook)); err != nil {
		return c.Fail("error writing output", err)
	}
	return 0
}
