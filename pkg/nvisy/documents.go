package nvisy

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

// ===================================================================
// DocumentsService Implementation
// ===================================================================
// All methods map onto /documents/* endpoints

// ListDocuments returns one window of all documents visible to the caller.
func (c *Client) ListDocuments(ctx context.Context, page *models.Pagination) (*models.PaginatedResponse[models.Document], error) {
	var resp models.PaginatedResponse[models.Document]
	if err := c.send(ctx, http.MethodGet, "/documents", page.Values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListWorkspaceDocuments returns one window of the documents in a workspace.
func (c *Client) ListWorkspaceDocuments(ctx context.Context, workspaceID string, page *models.Pagination) (*models.PaginatedResponse[models.Document], error) {
	path := "/workspaces/" + url.PathEscape(workspaceID) + "/documents"

	var resp models.PaginatedResponse[models.Document]
	if err := c.send(ctx, http.MethodGet, path, page.Values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetDocument retrieves document metadata by ID.
func (c *Client) GetDocument(ctx context.Context, documentID string) (*models.Document, error) {
	var doc models.Document
	if err := c.send(ctx, http.MethodGet, documentPath(documentID), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// CreateDocument registers a new, empty document.
func (c *Client) CreateDocument(ctx context.Context, req models.CreateDocument) (*models.Document, error) {
	var doc models.Document
	if err := c.sendJSON(ctx, http.MethodPost, "/documents", req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// UpdateDocument replaces the mutable metadata of a document.
func (c *Client) UpdateDocument(ctx context.Context, documentID string, req models.UpdateDocument) (*models.Document, error) {
	var doc models.Document
	if err := c.sendJSON(ctx, http.MethodPut, documentPath(documentID), req, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteDocument deletes a document and all of its versions.
func (c *Client) DeleteDocument(ctx context.Context, documentID string) error {
	return c.sendDelete(ctx, documentPath(documentID))
}

// UploadDocument replaces the document content with the file at path, read
// from the configured filesystem.
func (c *Client) UploadDocument(ctx context.Context, documentID, path string) (*models.Document, error) {
	data, err := c.readLocalFile(path)
	if err != nil {
		return nil, err
	}
	return c.UploadDocumentBytes(ctx, documentID, data)
}

// UploadDocumentBytes replaces the document content, creating a new version.
func (c *Client) UploadDocumentBytes(ctx context.Context, documentID string, data []byte) (*models.Document, error) {
	var doc models.Document
	if err := c.sendOctetStream(ctx, http.MethodPut, documentPath(documentID)+"/content", data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// DownloadDocument writes the current document content to path on the
// configured filesystem.
func (c *Client) DownloadDocument(ctx context.Context, documentID, path string) error {
	data, err := c.DownloadDocumentBytes(ctx, documentID)
	if err != nil {
		return err
	}
	return c.writeLocalFile(path, data)
}

// DownloadDocumentBytes returns the current document content.
func (c *Client) DownloadDocumentBytes(ctx context.Context, documentID string) ([]byte, error) {
	return c.sendBytes(ctx, http.MethodGet, documentPath(documentID)+"/content", nil)
}

// DocumentDownloadURL returns a short-lived signed URL for the content.
func (c *Client) DocumentDownloadURL(ctx context.Context, documentID string) (string, error) {
	return c.sendText(ctx, http.MethodGet, documentPath(documentID)+"/url")
}

// ListDocumentVersions returns one window of a document's version history.
func (c *Client) ListDocumentVersions(ctx context.Context, documentID string, page *models.Pagination) (*models.PaginatedResponse[models.DocumentVersion], error) {
	var resp models.PaginatedResponse[models.DocumentVersion]
	if err := c.send(ctx, http.MethodGet, documentPath(documentID)+"/versions", page.Values(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RestoreDocumentVersion makes a previous version current again.
func (c *Client) RestoreDocumentVersion(ctx context.Context, documentID string, version uint32) (*models.Document, error) {
	path := documentPath(documentID) + "/versions/" + strconv.FormatUint(uint64(version), 10) + "/restore"

	var doc models.Document
	if err := c.send(ctx, http.MethodPost, path, nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func documentPath(documentID string) string {
	return "/documents/" + url.PathEscape(documentID)
}
