package nvisy

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

// ListWebhooks returns one page of the webhooks of a workspace.
func (c *Client) ListWebhooks(ctx context.Context, workspaceID uuid.UUID, opts *models.ListWebhooksOptions) (*models.WebhooksPage, error) {
	var page models.WebhooksPage
	if err := c.send(ctx, http.MethodGet, workspacePath(workspaceID)+"/webhooks", cursorValues(opts), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetWebhook retrieves a webhook by ID.
func (c *Client) GetWebhook(ctx context.Context, webhookID uuid.UUID) (*models.Webhook, error) {
	var wh models.Webhook
	if err := c.send(ctx, http.MethodGet, webhookPath(webhookID), nil, &wh); err != nil {
		return nil, err
	}
	return &wh, nil
}

// CreateWebhook subscribes an endpoint to workspace events.
func (c *Client) CreateWebhook(ctx context.Context, workspaceID uuid.UUID, req models.CreateWebhook) (*models.Webhook, error) {
	var wh models.Webhook
	if err := c.sendJSON(ctx, http.MethodPost, workspacePath(workspaceID)+"/webhooks", req, &wh); err != nil {
		return nil, err
	}
	return &wh, nil
}

// UpdateWebhook applies a sparse patch to a webhook.
func (c *Client) UpdateWebhook(ctx context.Context, webhookID uuid.UUID, req models.UpdateWebhook) (*models.Webhook, error) {
	var wh models.Webhook
	if err := c.sendJSON(ctx, http.MethodPatch, webhookPath(webhookID), req, &wh); err != nil {
		return nil, err
	}
	return &wh, nil
}

// DeleteWebhook removes a webhook.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID uuid.UUID) error {
	return c.sendDelete(ctx, webhookPath(webhookID))
}

// TestWebhook triggers a test delivery. The request carries a body only
// when req is non-nil.
func (c *Client) TestWebhook(ctx context.Context, webhookID uuid.UUID, req *models.TestWebhook) (*models.WebhookResult, error) {
	path := webhookPath(webhookID) + "/test"

	var (
		result models.WebhookResult
		err    error
	)
	if req != nil {
		err = c.sendJSON(ctx, http.MethodPost, path, req, &result)
	} else {
		err = c.send(ctx, http.MethodPost, path, nil, &result)
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func webhookPath(webhookID uuid.UUID) string {
	return "/webhooks/" + webhookID.String()
}

func cursorValues(opts *models.CursorOptions) url.Values {
	if opts == nil {
		return nil
	}
	return opts.Values()
}
