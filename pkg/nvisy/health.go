package nvisy

import (
	"context"
	"net/http"

	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

// Health checks API availability. Without options this is a plain GET;
// with options the check parameters are POSTed.
func (c *Client) Health(ctx context.Context, opts *models.CheckHealth) (*models.MonitorStatus, error) {
	var (
		status models.MonitorStatus
		err    error
	)
	if opts != nil {
		err = c.sendJSON(ctx, http.MethodPost, "/health", opts, &status)
	} else {
		err = c.send(ctx, http.MethodGet, "/health", nil, &status)
	}
	if err != nil {
		return nil, err
	}
	return &status, nil
}
