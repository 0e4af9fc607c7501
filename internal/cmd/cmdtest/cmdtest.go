// Package cmdtest wires CLI commands to an in-process fake API for tests.
package cmdtest

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/base"
	"github.com/nvisy/nvisy-sdk-go/internal/fakeapi"
	"github.com/nvisy/nvisy-sdk-go/pkg/nvisy"
)

// APIKey is accepted by the fake API started by New.
const APIKey = "nv_test_0123456789"

// Env holds the pieces a command test inspects.
type Env struct {
	Command *base.Command
	UI      *cli.MockUi
	Fs      afero.Fs
	API     *fakeapi.Server
	URL     string

	// Opened records the URLs passed to Command.OpenURL.
	Opened []string
}

// New starts a fake API and returns a command environment pointing at it
// through NVISY_* variables. Local files live in an in-memory filesystem.
func New(t *testing.T) *Env {
	t.Helper()

	api := fakeapi.New(APIKey)
	srv := api.Start()
	t.Cleanup(srv.Close)

	env := &Env{
		UI:  cli.NewMockUi(),
		Fs:  afero.NewMemMapFs(),
		API: api,
		URL: srv.URL,
	}
	env.Command = &base.Command{
		Log: hclog.NewNullLogger(),
		UI:  env.UI,
		Fs:  env.Fs,
		Environ: []string{
			"NVISY_API_KEY=" + APIKey,
			"NVISY_BASE_URL=" + srv.URL,
		},
		OpenURL: func(url string) error {
			env.Opened = append(env.Opened, url)
			return nil
		},
	}
	return env
}

// Stdout returns everything written through UI.Output and UI.Info.
func (e *Env) Stdout() string {
	return e.UI.OutputWriter.String()
}

// Stderr returns everything written through UI.Error and UI.Warn.
func (e *Env) Stderr() string {
	return e.UI.ErrorWriter.String()
}

// Client returns an SDK client for seeding the fake API.
func (e *Env) Client(t *testing.T) *nvisy.Client {
	t.Helper()
	cfg, err := nvisy.NewConfig(APIKey, nvisy.WithBaseURL(e.URL))
	require.NoError(t, err)
	client, err := nvisy.NewClient(cfg)
	require.NoError(t, err)
	return client
}
