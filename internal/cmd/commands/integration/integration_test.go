package integration_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/cmdtest"
	"github.com/nvisy/nvisy-sdk-go/internal/cmd/commands/integration"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

func setup(t *testing.T) (*cmdtest.Env, uuid.UUID) {
	t.Helper()
	env := cmdtest.New(t)
	ws, err := env.Client(t).CreateWorkspace(context.Background(), models.NewCreateWorkspace("Integrations"))
	require.NoError(t, err)
	return env, ws.WorkspaceID
}

func TestCreateCommand(t *testing.T) {
	env, wsID := setup(t)

	c := &integration.CreateCommand{Command: env.Command}
	code := c.Run([]string{
		"-output", "json",
		"-name", "Drive",
		"-type", "Storage",
		"-credentials", `{"token":"secret"}`,
		"-inactive",
		wsID.String(),
	})
	require.Equal(t, 0, code, env.Stderr())

	var sent map[string]any
	require.NoError(t, json.Unmarshal(env.API.LastRequest().Body, &sent))
	assert.Equal(t, "storage", sent["integrationType"])
	assert.Equal(t, map[string]any{"token": "secret"}, sent["credentials"])
	assert.Equal(t, false, sent["isActive"])
	assert.NotContains(t, sent, "metadata")

	var got models.Integration
	require.NoError(t, json.Unmarshal([]byte(env.Stdout()), &got))
	assert.Equal(t, "Drive", got.IntegrationName)
	assert.False(t, got.IsActive)
}

func TestCreateCommand_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "unknown type",
			args:    []string{"-name", "X", "-type", "mainframe"},
			wantErr: "invalid integration",
		},
		{
			name:    "missing name",
			args:    []string{"-type", "custom"},
			wantErr: "invalid integration",
		},
		{
			name:    "bad credentials",
			args:    []string{"-name", "X", "-type", "custom", "-credentials", "{"},
			wantErr: "error parsing -credentials",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env, wsID := setup(t)
			c := &integration.CreateCommand{Command: env.Command}

			code := c.Run(append(tc.args, wsID.String()))
			assert.Equal(t, 1, code)
			assert.Contains(t, env.Stderr(), tc.wantErr)
			assert.Len(t, env.API.Requests(), 1)
		})
	}
}

func TestListGetSyncDeleteCommands(t *testing.T) {
	env, wsID := setup(t)
	client := env.Client(t)
	in, err := client.CreateIntegration(context.Background(), wsID, models.CreateIntegration{
		IntegrationName: "Slack",
		IntegrationType: models.IntegrationTypeCommunication,
	})
	require.NoError(t, err)
	id := in.IntegrationID.String()

	list := &integration.ListCommand{Command: env.Command}
	require.Equal(t, 0, list.Run([]string{wsID.String()}), env.Stderr())
	assert.Contains(t, env.Stdout(), "Slack")
	assert.Contains(t, env.Stdout(), "communication")

	sync := &integration.SyncCommand{Command: env.Command}
	require.Equal(t, 0, sync.Run([]string{id}), env.Stderr())
	assert.Equal(t, "POST", env.API.LastRequest().Method)
	assert.Contains(t, env.Stdout(), string(models.IntegrationStatusRunning))

	get := &integration.GetCommand{Command: env.Command}
	require.Equal(t, 0, get.Run([]string{"-output", "yaml", id}), env.Stderr())
	assert.Contains(t, env.Stdout(), "syncStatus: running")

	del := &integration.DeleteCommand{Command: env.Command}
	require.Equal(t, 0, del.Run([]string{id}), env.Stderr())
	assert.Contains(t, env.Stdout(), "Deleted integration "+id)

	_, err = client.GetIntegration(context.Background(), in.IntegrationID)
	assert.Error(t, err)
}
