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

func TestIntegrations_Lifecycle(t *testing.T) {
	ctx := context.Background()
	client, api := newTestClient(t)
	wsID := newWorkspace(t, client)

	creds, err := models.NewJSON(map[string]string{"token": "xoxb-123"})
	require.NoError(t, err)

	in, err := client.CreateIntegration(ctx, wsID, models.CreateIntegration{
		IntegrationName: "Slack",
		IntegrationType: models.IntegrationTypeCommunication,
		Credentials:     creds,
	})
	require.NoError(t, err)
	assert.True(t, in.IsActive)
	assert.Nil(t, in.SyncStatus)
	assert.Contains(t, string(api.LastRequest().Body), `"credentials":{"token":"xoxb-123"}`)

	page, err := client.ListIntegrations(ctx, wsID, nil)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	synced, err := client.SyncIntegration(ctx, in.IntegrationID)
	require.NoError(t, err)
	require.NotNil(t, synced.SyncStatus)
	assert.Equal(t, models.IntegrationStatusRunning, *synced.SyncStatus)
	assert.NotNil(t, synced.LastSyncAt)
	assert.Equal(t, "/integrations/"+in.IntegrationID.String()+"/sync", api.LastRequest().Path)

	inactive := false
	updated, err := client.UpdateIntegration(ctx, in.IntegrationID, models.UpdateIntegration{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, http.MethodPatch, api.LastRequest().Method)

	got, err := client.GetIntegration(ctx, in.IntegrationID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	require.NoError(t, client.DeleteIntegration(ctx, in.IntegrationID))
	_, err = client.GetIntegration(ctx, in.IntegrationID)
	assert.True(t, nvisy.IsNotFound(err))
}
