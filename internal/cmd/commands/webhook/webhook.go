package webhook

import (
	"strings"

	"github.com/mitchellh/cli"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage workspace webhooks"
}

func (c *Command) Help() string {
	return `Usage: nvisy webhook <subcommand> [options] [args]

  This command groups subcommands for webhooks that receive workspace
  events.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

func table(hooks ...models.Webhook) base.Table {
	t := base.Table{Header: []string{"ID", "NAME", "URL", "STATUS", "EVENTS", "LAST TRIGGERED"}}
	for _, h := range hooks {
		events := make([]string, len(h.Events))
		for i, e := range h.Events {
			events[i] = string(e)
		}
		last := "-"
		if h.LastTriggeredAt != nil {
			last = h.LastTriggeredAt.String()
		}
		t.Rows = append(t.Rows, []string{
			h.WebhookID.String(),
			h.DisplayName,
			h.URL,
			string(h.Status),
			strings.Join(events, ","),
			last,
		})
	}
	return t
}
