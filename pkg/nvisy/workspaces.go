package nvisy

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

// ===================================================================
// WorkspacesService Implementation
// ===================================================================
// All methods map onto /workspaces/* endpoints

// ListWorkspaces returns one page of the workspaces visible to the caller.
func (c *Client) ListWorkspaces(ctx context.Context, opts *models.ListWorkspacesOptions) (*models.WorkspacesPage, error) {
	var page models.WorkspacesPage
	if err := c.send(ctx, http.MethodGet, "/workspaces", opts.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetWorkspace retrieves a workspace by ID.
func (c *Client) GetWorkspace(ctx context.Context, workspaceID uuid.UUID) (*models.Workspace, error) {
	var ws models.Workspace
	if err := c.send(ctx, http.MethodGet, workspacePath(workspaceID), nil, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// CreateWorkspace creates a workspace owned by the caller.
func (c *Client) CreateWorkspace(ctx context.Context, req models.CreateWorkspace) (*models.Workspace, error) {
	var ws models.Workspace
	if err := c.sendJSON(ctx, http.MethodPost, "/workspaces", req, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// UpdateWorkspace applies a sparse patch to a workspace.
func (c *Client) UpdateWorkspace(ctx context.Context, workspaceID uuid.UUID, req models.UpdateWorkspace) (*models.Workspace, error) {
	var ws models.Workspace
	if err := c.sendJSON(ctx, http.MethodPatch, workspacePath(workspaceID), req, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// DeleteWorkspace deletes a workspace.
func (c *Client) DeleteWorkspace(ctx context.Context, workspaceID uuid.UUID) error {
	return c.sendDelete(ctx, workspacePath(workspaceID))
}

// GetNotificationSettings returns the caller's notification preferences.
func (c *Client) GetNotificationSettings(ctx context.Context, workspaceID uuid.UUID) (*models.NotificationSettings, error) {
	var settings models.NotificationSettings
	if err := c.send(ctx, http.MethodGet, workspacePath(workspaceID)+"/notifications", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateNotificationSettings patches the caller's notification preferences.
func (c *Client) UpdateNotificationSettings(ctx context.Context, workspaceID uuid.UUID, req models.UpdateNotificationSettings) (*models.NotificationSettings, error) {
	var settings models.NotificationSettings
	if err := c.sendJSON(ctx, http.MethodPatch, workspacePath(workspaceID)+"/notifications", req, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func workspacePath(workspaceID uuid.UUID) string {
	return "/workspaces/" + workspaceID.String()
}
