package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/cmdtest"
	versioncmd "github.com/nvisy/nvisy-sdk-go/internal/cmd/commands/version"
	"github.com/nvisy/nvisy-sdk-go/internal/version"
)

func TestCommand(t *testing.T) {
	env := cmdtest.New(t)
	c := &versioncmd.Command{Command: env.Command}

	assert.Equal(t, 0, c.Run(nil))
	assert.Equal(t, version.String()+"\n", env.Stdout())
	assert.Empty(t, env.API.Requests())
}
