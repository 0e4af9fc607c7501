package nvisy

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

// ListIntegrations returns one page of the integrations of a workspace.
func (c *Client) ListIntegrations(ctx context.Context, workspaceID uuid.UUID, opts *models.ListIntegrationsOptions) (*models.IntegrationsPage, error) {
	var page models.IntegrationsPage
	if err := c.send(ctx, http.MethodGet, workspacePath(workspaceID)+"/integrations", cursorValues(opts), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetIntegration retrieves an integration by ID.
func (c *Client) GetIntegration(ctx context.Context, integrationID uuid.UUID) (*models.Integration, error) {
	var in models.Integration
	if err := c.send(ctx, http.MethodGet, integrationPath(integrationID), nil, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// CreateIntegration adds an integration to a workspace.
func (c *Client) CreateIntegration(ctx context.Context, workspaceID uuid.UUID, req models.CreateIntegration) (*models.Integration, error) {
	var in models.Integration
	if err := c.sendJSON(ctx, http.MethodPost, workspacePath(workspaceID)+"/integrations", req, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// UpdateIntegration applies a sparse patch to an integration.
func (c *Client) UpdateIntegration(ctx context.Context, integrationID uuid.UUID, req models.UpdateIntegration) (*models.Integration, error) {
	var in models.Integration
	if err := c.sendJSON(ctx, http.MethodPatch, integrationPath(integrationID), req, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

// DeleteIntegration removes an integration.
func (c *Client) DeleteIntegration(ctx context.Context, integrationID uuid.UUID) error {
	return c.sendDelete(ctx, integrationPath(integrationID))
}

// SyncIntegration starts a sync run and returns the integration with its
// updated sync status.
func (c *Client) SyncIntegration(ctx context.Context, integrationID uuid.UUID) (*models.Integration, error) {
	var in models.Integration
	if err := c.send(ctx, http.MethodPost, integrationPath(integrationID)+"/sync", nil, &in); err != nil {
		return nil, err
	}
	return &in, nil
}

func integrationPath(integrationID uuid.UUID) string {
	return "/integrations/" + integrationID.String()
}
