// Package base holds the state and helpers shared by every CLI command.
package base

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/iancoleman/strcase"
	"github.com/mitchellh/cli"
	"github.com/pkg/browser"
	"github.com/spf13/afero"

	"github.com/nvisy/nvisy-sdk-go/internal/config"
	"github.com/nvisy/nvisy-sdk-go/pkg/nvisy"
)

// Command is embedded by every CLI command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// Fs backs the config file and local file arguments.
	Fs afero.Fs
	// Environ is the process environment in os.Environ form.
	Environ []string
	// OpenURL opens a URL in the user's browser.
	OpenURL func(url string) error

	flagConfig  string
	flagAPIKey  string
	flagBaseURL string
	flagTimeout time.Duration
	flagOutput  string

	output string
}

// NewCommand returns a Command bound to the real filesystem and
// environment.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log:     log,
		UI:      ui,
		Fs:      afero.NewOsFs(),
		Environ: os.Environ(),
		OpenURL: browser.OpenURL,
	}
}

// ClientFlags registers the connection and output flags on f.
func (c *Command) ClientFlags(f *FlagSet) {
	f.StringVar(
		&c.flagConfig, "config", "",
		"[NVISY_CONFIG] Path to an HCL config file.",
	)
	f.StringVar(
		&c.flagAPIKey, "api-key", "",
		"[NVISY_API_KEY] API key used as bearer token.",
	)
	f.StringVar(
		&c.flagBaseURL, "base-url", "",
		"[NVISY_BASE_URL] API endpoint. Defaults to "+nvisy.DefaultBaseURL+".",
	)
	f.DurationVar(
		&c.flagTimeout, "timeout", 0,
		"[NVISY_TIMEOUT] Per-request timeout. Defaults to 30s.",
	)
	f.StringVar(
		&c.flagOutput, "output", "",
		"[NVISY_OUTPUT] Output format: table, json or yaml.",
	)
}

// Client resolves configuration from file, environment and flags and
// returns a ready client.
func (c *Command) Client() (*nvisy.Client, error) {
	cfg, err := config.Load(c.Fs, c.flagConfig, c.Environ)
	if err != nil {
		return nil, err
	}

	if cfg.LogLevel != "" {
		c.Log.SetLevel(hclog.LevelFromString(cfg.LogLevel))
	}

	c.output = config.OutputTable
	if cfg.Output != "" {
		c.output = cfg.Output
	}
	if c.flagOutput != "" {
		switch c.flagOutput {
		case config.OutputTable, config.OutputJSON, config.OutputYAML:
			c.output = c.flagOutput
		default:
			return nil, fmt.Errorf("unknown output format %q", c.flagOutput)
		}
	}

	apiKey := cfg.APIKey
	if c.flagAPIKey != "" {
		apiKey = c.flagAPIKey
	}
	if apiKey == "" {
		return nil, fmt.Errorf("an API key is required (-api-key or NVISY_API_KEY)")
	}

	opts := []nvisy.ConfigOption{
		nvisy.WithLogger(c.Log),
		nvisy.WithFs(c.Fs),
		nvisy.WithUserAgent("nvisy-cli/" + nvisy.Version),
	}
	switch {
	case c.flagBaseURL != "":
		opts = append(opts, nvisy.WithBaseURL(c.flagBaseURL))
	case cfg.BaseURL != "":
		opts = append(opts, nvisy.WithBaseURL(cfg.BaseURL))
	}
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	if c.flagTimeout != 0 {
		timeout = c.flagTimeout
	}
	if timeout != 0 {
		opts = append(opts, nvisy.WithTimeout(timeout))
	}

	nvisyCfg, err := nvisy.NewConfig(apiKey, opts...)
	if err != nil {
		return nil, err
	}
	c.Log.Debug("using configuration", nvisyCfg.LogArgs()...)

	return nvisy.NewClient(nvisyCfg)
}

// Context returns a context cancelled on interrupt.
func (c *Command) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// Fail reports err and returns the exit code for failed commands.
func (c *Command) Fail(format string, err error) int {
	c.UI.Error(fmt.Sprintf(format+": %v", err))
	return 1
}

// NormalizeEnum maps kebab-case, camelCase and PascalCase spellings of an
// API enum value onto its snake_case wire form.
func NormalizeEnum(s string) string {
	return strcase.ToSnake(strings.TrimSpace(s))
}
