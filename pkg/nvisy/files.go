package nvisy

import (
	"context"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

// ===================================================================
// FilesService Implementation
// ===================================================================
// Listings and uploads are scoped to /workspaces/{id}/files, single-file
// operations to /files/{id}

// ListFiles returns one page of the files in a workspace.
func (c *Client) ListFiles(ctx context.Context, workspaceID uuid.UUID, opts *models.ListFilesOptions) (*models.FilesPage, error) {
	var page models.FilesPage
	if err := c.send(ctx, http.MethodGet, workspaceFilesPath(workspaceID), opts.Values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetFile retrieves file metadata by ID.
func (c *Client) GetFile(ctx context.Context, fileID uuid.UUID) (*models.File, error) {
	var file models.File
	if err := c.send(ctx, http.MethodGet, filePath(fileID), nil, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// UpdateFile applies a sparse patch to file metadata.
func (c *Client) UpdateFile(ctx context.Context, fileID uuid.UUID, req models.UpdateFile) (*models.File, error) {
	var file models.File
	if err := c.sendJSON(ctx, http.MethodPatch, filePath(fileID), req, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// DeleteFile deletes a single file.
func (c *Client) DeleteFile(ctx context.Context, fileID uuid.UUID) error {
	return c.sendDelete(ctx, filePath(fileID))
}

// DownloadFile returns the file content.
func (c *Client) DownloadFile(ctx context.Context, fileID uuid.UUID) ([]byte, error) {
	return c.sendBytes(ctx, http.MethodGet, filePath(fileID)+"/content", nil)
}

// DownloadFileToPath writes the file content to path on the configured
// filesystem.
func (c *Client) DownloadFileToPath(ctx context.Context, fileID uuid.UUID, path string) error {
	data, err := c.DownloadFile(ctx, fileID)
	if err != nil {
		return err
	}
	return c.writeLocalFile(path, data)
}

// UploadFile uploads data as a new file named name. The API answers with
// the list of created files; the first is returned.
func (c *Client) UploadFile(ctx context.Context, workspaceID uuid.UUID, name string, data []byte) (*models.File, error) {
	path := workspaceFilesPath(workspaceID)

	var files []models.File
	if err := c.sendMultipart(ctx, path, name, data, &files); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, newError(KindAPI, op(http.MethodPost, path), ErrEmptyUpload)
	}
	return &files[0], nil
}

// UploadFileFromPath uploads the file at path, read from the configured
// filesystem, under its base name.
func (c *Client) UploadFileFromPath(ctx context.Context, workspaceID uuid.UUID, path string) (*models.File, error) {
	data, err := c.readLocalFile(path)
	if err != nil {
		return nil, err
	}
	return c.UploadFile(ctx, workspaceID, filepath.Base(path), data)
}

// DeleteFilesBatch deletes several files of a workspace in one request.
func (c *Client) DeleteFilesBatch(ctx context.Context, workspaceID uuid.UUID, fileIDs []uuid.UUID) error {
	body := models.DeleteFiles{FileIDs: nonNilIDs(fileIDs)}
	return c.sendJSON(ctx, http.MethodDelete, workspaceFilesPath(workspaceID)+"/batch", body, nil)
}

// DownloadFilesBatch returns an archive of the given files. An empty fileIDs
// archives every file in the workspace.
func (c *Client) DownloadFilesBatch(ctx context.Context, workspaceID uuid.UUID, fileIDs []uuid.UUID, format models.ArchiveFormat) ([]byte, error) {
	body := models.DownloadFiles{FileIDs: nonNilIDs(fileIDs), Format: format}
	return c.sendBytes(ctx, http.MethodGet, workspaceFilesPath(workspaceID)+"/batch", body)
}

// nonNilIDs makes an empty selection encode as [] rather than null.
func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}

func workspaceFilesPath(workspaceID uuid.UUID) string {
	return workspacePath(workspaceID) + "/files"
}

func filePath(fileID uuid.UUID) string {
	return "/files/" + fileID.String()
}
