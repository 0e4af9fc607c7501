package webhook

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

type TestCommand struct {
	*base.Command

	flagPayload string
}

func (c *TestCommand) Synopsis() string {
	return "Send a test delivery to a webhook"
}

func (c *TestCommand) Help() string {
	return `Usage: nvisy webhook test [options] <webhook-id>

  This command asks the server to deliver a test event to the webhook and
  reports the receiver's response.` +
		c.Flags().Help()
}

func (c *TestCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("webhook test", flag.ContinueOnError))
	c.ClientFlags(f)

	f.StringVar(&c.flagPayload, "payload", "", "Custom JSON payload to deliver.")

	return f
}

func (c *TestCommand) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if f.NArg() != 1 {
		c.UI.Error("exactly one webhook ID is required")
		return 1
	}
	id, err := base.ParseUUID(f.Arg(0))
	if err != nil {
		return c.Fail("error parsing arguments", err)
	}

	var req *models.TestWebhook
	if c.flagPayload != "" {
		payload, err := models.ParseJSON(c.flagPayload)
		if err != nil {
			return c.Fail("error parsing -payload", err)
		}
		req = &models.TestWebhook{Payload: payload}
	}

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	result, err := client.TestWebhook(ctx, id, req)
	if err != nil {
		return c.Fail("error testing webhook", err)
	}

	t := base.Table{
		Header: []string{"STATUS", "RESPONSE TIME (ms)"},
		Rows: [][]string{{
			strconv.Itoa(result.StatusCode),
			strconv.FormatInt(result.ResponseTimeMs, 10),
		}},
	}
	if err := c.Output(result, t); err != nil {
		return c.Fail("error writing output", err)
	}
	return 0
}
