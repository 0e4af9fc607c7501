package cmd

import (
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
)

func TestCommandFactories(t *testing.T) {
	b := base.NewCommand(hclog.NewNullLogger(), cli.NewMockUi())
	factories := commandFactories(b)

	for _, group := range []string{"workspace", "document", "file", "integration", "webhook"} {
		require.Contains(t, factories, group)
	}

	for name, factory := range factories {
		t.Run(name, func(t *testing.T) {
			c, err := factory()
			require.NoError(t, err)
			assert.NotEmpty(t, c.Synopsis())
			assert.True(t, strings.HasPrefix(c.Help(), "Usage: nvisy "+name),
				"help for %q: %s", name, c.Help())

			// Every subcommand belongs to a registered group.
			if group, _, ok := strings.Cut(name, " "); ok {
				assert.Contains(t, factories, group)
			}
		})
	}
}

func TestGroupCommandsShowHelp(t *testing.T) {
	b := base.NewCommand(hclog.NewNullLogger(), cli.NewMockUi())
	factories := commandFactories(b)

	for _, group := range []string{"workspace", "document", "file", "integration", "webhook"} {
		c, err := factories[group]()
		require.NoError(t, err)
		assert.Equal(t, cli.RunResultHelp, c.Run(nil), group)
	}
}
