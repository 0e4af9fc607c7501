package base

import (
	"flag"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvisy/nvisy-sdk-go/internal/config"
	"github.com/nvisy/nvisy-sdk-go/pkg/nvisy"
)

func newTestCommand(environ ...string) (*Command, *cli.MockUi) {
	ui := cli.NewMockUi()
	return &Command{
		Log:     hclog.NewNullLogger(),
		UI:      ui,
		Fs:      afero.NewMemMapFs(),
		Environ: environ,
	}, ui
}

func parseClientFlags(t *testing.T, c *Command, args ...string) {
	t.Helper()
	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	c.ClientFlags(f)
	require.NoError(t, f.Parse(args))
}

func TestCommand_ClientRequiresAPIKey(t *testing.T) {
	c, _ := newTestCommand()
	parseClientFlags(t, c)

	_, err := c.Client()
	assert.ErrorContains(t, err, "an API key is required")
}

func TestCommand_ClientFromEnvironment(t *testing.T) {
	c, _ := newTestCommand(
		"NVISY_API_KEY=nv_env_key",
		"NVISY_BASE_URL=https://env.nvisy.test/",
		"NVISY_TIMEOUT=45",
		"NVISY_OUTPUT=json",
	)
	parseClientFlags(t, c)

	client, err := c.Client()
	require.NoError(t, err)

	cfg := client.Config()
	assert.Equal(t, "nv_env_key", cfg.APIKey())
	assert.Equal(t, "https://env.nvisy.test/", cfg.BaseURL())
	assert.Equal(t, 45*time.Second, cfg.Timeout())
	assert.Equal(t, "nvisy-cli/"+nvisy.Version, cfg.UserAgent())
	assert.Equal(t, config.OutputJSON, c.output)
}

func TestCommand_ClientFlagsOverrideConfig(t *testing.T) {
	c, _ := newTestCommand(
		"NVISY_API_KEY=nv_env_key",
		"NVISY_CONFIG=/etc/nvisy.hcl",
	)
	require.NoError(t, afero.WriteFile(c.Fs, "/etc/nvisy.hcl", []byte(`
base_url = "https://file.nvisy.test"
timeout  = "10s"
output   = "yaml"
`), 0o644))
	parseClientFlags(t, c,
		"-api-key", "nv_flag_key",
		"-timeout", "2m",
		"-output", "table",
	)

	client, err := c.Client()
	require.NoError(t, err)

	cfg := client.Config()
	assert.Equal(t, "nv_flag_key", cfg.APIKey())
	assert.Equal(t, "https://file.nvisy.test", cfg.BaseURL())
	assert.Equal(t, 2*time.Minute, cfg.Timeout())
	assert.Equal(t, config.OutputTable, c.output)
}

func TestCommand_ClientErrors(t *testing.T) {
	cases := []struct {
		name    string
		environ []string
		args    []string
		wantErr string
	}{
		{
			name:    "unknown output flag",
			environ: []string{"NVISY_API_KEY=k"},
			args:    []string{"-output", "xml"},
			wantErr: `unknown output format "xml"`,
		},
		{
			name:    "invalid base url",
			environ: []string{"NVISY_API_KEY=k"},
			args:    []string{"-base-url", "ftp://nvisy.test"},
			wantErr: "must start with http:// or https://",
		},
		{
			name:    "missing config file",
			environ: []string{"NVISY_API_KEY=k"},
			args:    []string{"-config", "/missing.hcl"},
			wantErr: "error reading config file",
		},
		{
			name:    "invalid log level",
			environ: []string{"NVISY_API_KEY=k", "NVISY_LOG_LEVEL=loud"},
			wantErr: "invalid configuration",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestCommand(tc.environ...)
			parseClientFlags(t, c, tc.args...)

			_, err := c.Client()
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestCommand_Fail(t *testing.T) {
	c, ui := newTestCommand()
	code := c.Fail("error getting workspace", assert.AnError)
	assert.Equal(t, 1, code)
	assert.Equal(t, "error getting workspace: "+assert.AnError.Error()+"\n", ui.ErrorWriter.String())
}
