package workspace_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/cmdtest"
	"github.com/nvisy/nvisy-sdk-go/internal/cmd/commands/workspace"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

func TestCreateCommand(t *testing.T) {
	env := cmdtest.New(t)
	c := &workspace.CreateCommand{Command: env.Command}

	code := c.Run([]string{
		"-output", "json",
		"-name", "Legal",
		"-description", "Contracts",
		"-tag", "legal,contracts",
		"-require-approval",
	})
	require.Equal(t, 0, code, env.Stderr())

	var ws models.Workspace
	require.NoError(t, json.Unmarshal([]byte(env.Stdout()), &ws))
	assert.Equal(t, "Legal", ws.DisplayName)
	assert.Equal(t, []string{"legal", "contracts"}, ws.Tags)
	assert.True(t, ws.RequireApproval)
	assert.True(t, ws.EnableComments)
}

func TestCreateCommand_InvalidRequestIsNotSent(t *testing.T) {
	env := cmdtest.New(t)
	c := &workspace.CreateCommand{Command: env.Command}

	code := c.Run([]string{"-description", "no name"})
	assert.Equal(t, 1, code)
	assert.Contains(t, env.Stderr(), "invalid workspace")
	assert.Empty(t, env.API.Requests())
}

func TestListCommand(t *testing.T) {
	env := cmdtest.New(t)
	client := env.Client(t)
	ctx := context.Background()
	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		_, err := client.CreateWorkspace(ctx, models.NewCreateWorkspace(name))
		require.NoError(t, err)
	}

	c := &workspace.ListCommand{Command: env.Command}
	code := c.Run([]string{"-limit", "2"})
	require.Equal(t, 0, code, env.Stderr())

	out := env.Stdout()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Beta")
	assert.NotContains(t, out, "Gamma")
	assert.Contains(t, out, "More results available with -after=2")
}

func TestGetCommand(t *testing.T) {
	env := cmdtest.New(t)
	ws, err := env.Client(t).CreateWorkspace(context.Background(), models.NewCreateWorkspace("Finance"))
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		c := &workspace.GetCommand{Command: env.Command}
		code := c.Run([]string{ws.WorkspaceID.String()})
		require.Equal(t, 0, code, env.Stderr())
		assert.Contains(t, env.Stdout(), "Finance")
		assert.Contains(t, env.Stdout(), ws.WorkspaceID.String())
	})

	t.Run("not found", func(t *testing.T) {
		env := cmdtest.New(t)
		c := &workspace.GetCommand{Command: env.Command}
		code := c.Run([]string{uuid.NewString()})
		assert.Equal(t, 1, code)
		assert.Contains(t, env.Stderr(), "workspace not found")
	})

	t.Run("bad argument", func(t *testing.T) {
		env := cmdtest.New(t)
		c := &workspace.GetCommand{Command: env.Command}
		assert.Equal(t, 1, c.Run([]string{"not-a-uuid"}))
		assert.Contains(t, env.Stderr(), `invalid ID "not-a-uuid"`)
		assert.Equal(t, 1, c.Run(nil))
	})
}

func TestUpdateCommand(t *testing.T) {
	env := cmdtest.New(t)
	client := env.Client(t)
	ctx := context.Background()
	req := models.NewCreateWorkspace("Draft")
	req.Tags = []string{"old"}
	ws, err := client.CreateWorkspace(ctx, req)
	require.NoError(t, err)

	c := &workspace.UpdateCommand{Command: env.Command}
	code := c.Run([]string{"-name", "Final", ws.WorkspaceID.String()})
	require.Equal(t, 0, code, env.Stderr())

	body := env.API.LastRequest().Body
	assert.JSONEq(t, `{"displayName":"Final"}`, string(body))

	got, err := client.GetWorkspace(ctx, ws.WorkspaceID)
	require.NoError(t, err)
	assert.Equal(t, "Final", got.DisplayName)
	assert.Equal(t, []string{"old"}, got.Tags)
}

func TestUpdateCommand_NothingToUpdate(t *testing.T) {
	env := cmdtest.New(t)
	c := &workspace.UpdateCommand{Command: env.Command}

	code := c.Run([]string{uuid.NewString()})
	assert.Equal(t, 1, code)
	assert.Contains(t, env.Stderr(), "nothing to update")
	assert.Empty(t, env.API.Requests())
}

func TestDeleteCommand(t *testing.T) {
	env := cmdtest.New(t)
	client := env.Client(t)
	ws, err := client.CreateWorkspace(context.Background(), models.NewCreateWorkspace("Scratch"))
	require.NoError(t, err)
	missing := uuid.New()

	c := &workspace.DeleteCommand{Command: env.Command}
	code := c.Run([]string{ws.WorkspaceID.String(), missing.String()})
	assert.Equal(t, 1, code)
	assert.Contains(t, env.Stdout(), "Deleted workspace "+ws.WorkspaceID.String())
	assert.Contains(t, env.Stderr(), missing.String())

	_, err = client.GetWorkspace(context.Background(), ws.WorkspaceID)
	assert.Error(t, err)
}
