package health

import (
	"flag"
	"fmt"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

type Command struct {
	*base.Command

	flagCheckTimeout int
	flagUseCache     bool
}

func (c *Command) Synopsis() string {
	return "Check the health of the API"
}

func (c *Command) Help() string {
	return `Usage: nvisy health [options]

  This command reports the health of the Nvisy API. It exits with a
  non-zero status when the service is not healthy.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("health", flag.ContinueOnError))
	c.ClientFlags(f)

	f.IntVar(&c.flagCheckTimeout, "check-timeout-ms", 0,
		"Server-side check timeout in milliseconds.")
	f.BoolVar(&c.flagUseCache, "use-cache", false,
		"Allow the server to answer from its last check.")

	return f
}

func (c *Command) Run(args []string) int {
	f := c.Flags()
	if err := f.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	var opts *models.CheckHealth
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "check-timeout-ms":
			if opts == nil {
				opts = &models.CheckHealth{}
			}
			if c.flagCheckTimeout > 0 {
				opts.Timeout = &c.flagCheckTimeout
			}
		case "use-cache":
			if opts == nil {
				opts = &models.CheckHealth{}
			}
			opts.UseCache = &c.flagUseCache
		}
	})

	client, err := c.Client()
	if err != nil {
		return c.Fail("error creating client", err)
	}
	ctx, cancel := c.Context()
	defer cancel()

	status, err := client.Health(ctx, opts)
	if err != nil {
		return c.Fail("error checking health", err)
	}

	t := base.Table{
		Header: []string{"STATUS", "VERSION", "CHECKED"},
		Rows:   [][]string{{string(status.Status), status.Version, status.CheckedAt.String()}},
	}
	if err := c.Output(status, t); err != nil {
		return c.Fail("error writing output", err)
	}
	if !status.IsHealthy() {
		return 2
	}
	return 0
}
