package nvisy_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvisy/nvisy-sdk-go/pkg/models"
	"github.com/nvisy/nvisy-sdk-go/pkg/nvisy"
)

func TestWorkspaces_Lifecycle(t *testing.T) {
	ctx := context.Background()
	client, api := newTestClient(t)

	created, err := client.CreateWorkspace(ctx, models.NewCreateWorkspace("Research"))
	require.NoError(t, err)
	assert.Equal(t, "Research", created.DisplayName)
	assert.True(t, created.EnableComments)
	assert.Equal(t, models.WorkspaceRoleOwner, created.MemberRole)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := client.GetWorkspace(ctx, created.WorkspaceID)
	require.NoError(t, err)
	assert.Equal(t, created.WorkspaceID, got.WorkspaceID)
	assert.Equal(t, created.DisplayName, got.DisplayName)

	page, err := client.ListWorkspaces(ctx, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, created.WorkspaceID, page.Items[0].WorkspaceID)
	assert.False(t, page.More())

	name := "Research (archived)"
	tags := []string{"legal", "2024"}
	updated, err := client.UpdateWorkspace(ctx, created.WorkspaceID, models.UpdateWorkspace{
		DisplayName: &name,
		Tags:        &tags,
	})
	require.NoError(t, err)
	assert.Equal(t, name, updated.DisplayName)
	assert.Equal(t, tags, updated.Tags)
	assert.True(t, updated.EnableComments)
	assert.Equal(t, http.MethodPatch, api.LastRequest().Method)

	fetched, err := client.GetWorkspace(ctx, created.WorkspaceID)
	require.NoError(t, err)
	assert.Equal(t, name, fetched.DisplayName)
	assert.Equal(t, created.WorkspaceID, fetched.WorkspaceID)
	assert.Equal(t, tags, fetched.Tags)

	require.NoError(t, client.DeleteWorkspace(ctx, created.WorkspaceID))

	_, err = client.GetWorkspace(ctx, created.WorkspaceID)
	assert.True(t, nvisy.IsNotFound(err))

	err = client.DeleteWorkspace(ctx, created.WorkspaceID)
	assert.True(t, nvisy.IsNotFound(err))
}

func TestWorkspaces_ListPaging(t *testing.T) {
	ctx := context.Background()
	client, api := newTestClient(t)

	for _, name := range []string{"alpha", "beta", "gamma"} {
		_, err := client.CreateWorkspace(ctx, models.NewCreateWorkspace(name))
		require.NoError(t, err)
	}

	opts := &models.ListWorkspacesOptions{CursorOptions: models.CursorOptions{Limit: 2}}
	first, err := client.ListWorkspaces(ctx, opts)
	require.NoError(t, err)
	assert.Len(t, first.Items, 2)
	assert.True(t, first.More())
	require.NotNil(t, first.Total)
	assert.Equal(t, int64(3), *first.Total)
	assert.Equal(t, "limit=2", api.LastRequest().Query)

	opts.After = first.NextCursor
	second, err := client.ListWorkspaces(ctx, opts)
	require.NoError(t, err)
	require.Len(t, second.Items, 1)
	assert.Equal(t, "gamma", second.Items[0].DisplayName)
	assert.False(t, second.More())
}

func TestWorkspaces_NotificationSettings(t *testing.T) {
	ctx := context.Background()
	client, _ := newTestClient(t)

	ws, err := client.CreateWorkspace(ctx, models.NewCreateWorkspace("Notify"))
	require.NoError(t, err)

	settings, err := client.GetNotificationSettings(ctx, ws.WorkspaceID)
	require.NoError(t, err)
	assert.True(t, settings.EmailEnabled)

	off := false
	events := []models.NotificationEvent{models.NotificationFileFailed}
	settings, err = client.UpdateNotificationSettings(ctx, ws.WorkspaceID, models.UpdateNotificationSettings{
		EmailEnabled: &off,
		Events:       &events,
	})
	require.NoError(t, err)
	assert.False(t, settings.EmailEnabled)
	assert.True(t, settings.InAppEnabled)
	assert.Equal(t, events, settings.Events)
}
