package version

import (
	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version"
}

func (c *Command) Help() string {
	return "Usage: nvisy version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.String())
	return 0
}
