package nvisy

import (
	"context"

	"github.com/google/uuid"

	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

// WorkspacesService manages workspaces and per-member notification settings.
type WorkspacesService interface {
	ListWorkspaces(ctx context.Context, opts *models.ListWorkspacesOptions) (*models.WorkspacesPage, error)
	GetWorkspace(ctx context.Context, workspaceID uuid.UUID) (*models.Workspace, error)
	CreateWorkspace(ctx context.Context, req models.CreateWorkspace) (*models.Workspace, error)
	UpdateWorkspace(ctx context.Context, workspaceID uuid.UUID, req models.UpdateWorkspace) (*models.Workspace, error)
	DeleteWorkspace(ctx context.Context, workspaceID uuid.UUID) error
	GetNotificationSettings(ctx context.Context, workspaceID uuid.UUID) (*models.NotificationSettings, error)
	UpdateNotificationSettings(ctx context.Context, workspaceID uuid.UUID, req models.UpdateNotificationSettings) (*models.NotificationSettings, error)
}

// DocumentsService manages documents and their stored versions. Listings
// are offset-paginated.
type DocumentsService interface {
	ListDocuments(ctx context.Context, page *models.Pagination) (*models.PaginatedResponse[models.Document], error)
	ListWorkspaceDocuments(ctx context.Context, workspaceID string, page *models.Pagination) (*models.PaginatedResponse[models.Document], error)
	GetDocument(ctx context.Context, documentID string) (*models.Document, error)
	CreateDocument(ctx context.Context, req models.CreateDocument) (*models.Document, error)
	UpdateDocument(ctx context.Context, documentID string, req models.UpdateDocument) (*models.Document, error)
	DeleteDocument(ctx context.Context, documentID string) error
	UploadDocument(ctx context.Context, documentID, path string) (*models.Document, error)
	UploadDocumentBytes(ctx context.Context, documentID string, data []byte) (*models.Document, error)
	DownloadDocument(ctx context.Context, documentID, path string) error
	DownloadDocumentBytes(ctx context.Context, documentID string) ([]byte, error)
	DocumentDownloadURL(ctx context.Context, documentID string) (string, error)
	ListDocumentVersions(ctx context.Context, documentID string, page *models.Pagination) (*models.PaginatedResponse[models.DocumentVersion], error)
	RestoreDocumentVersion(ctx context.Context, documentID string, version uint32) (*models.Document, error)
}

// FilesService manages files stored in a workspace.
type FilesService interface {
	ListFiles(ctx context.Context, workspaceID uuid.UUID, opts *models.ListFilesOptions) (*models.FilesPage, error)
	GetFile(ctx context.Context, fileID uuid.UUID) (*models.File, error)
	UpdateFile(ctx context.Context, fileID uuid.UUID, req models.UpdateFile) (*models.File, error)
	DeleteFile(ctx context.Context, fileID uuid.UUID) error
	DownloadFile(ctx context.Context, fileID uuid.UUID) ([]byte, error)
	DownloadFileToPath(ctx context.Context, fileID uuid.UUID, path string) error
	UploadFile(ctx context.Context, workspaceID uuid.UUID, name string, data []byte) (*models.File, error)
	UploadFileFromPath(ctx context.Context, workspaceID uuid.UUID, path string) (*models.File, error)
	DeleteFilesBatch(ctx context.Context, workspaceID uuid.UUID, fileIDs []uuid.UUID) error
	DownloadFilesBatch(ctx context.Context, workspaceID uuid.UUID, fileIDs []uuid.UUID, format models.ArchiveFormat) ([]byte, error)
}

// IntegrationsService manages third-party connectors of a workspace.
type IntegrationsService interface {
	ListIntegrations(ctx context.Context, workspaceID uuid.UUID, opts *models.ListIntegrationsOptions) (*models.IntegrationsPage, error)
	GetIntegration(ctx context.Context, integrationID uuid.UUID) (*models.Integration, error)
	CreateIntegration(ctx context.Context, workspaceID uuid.UUID, req models.CreateIntegration) (*models.Integration, error)
	UpdateIntegration(ctx context.Context, integrationID uuid.UUID, req models.UpdateIntegration) (*models.Integration, error)
	DeleteIntegration(ctx context.Context, integrationID uuid.UUID) error
	SyncIntegration(ctx context.Context, integrationID uuid.UUID) (*models.Integration, error)
}

// WebhooksService manages event subscriptions of a workspace.
type WebhooksService interface {
	ListWebhooks(ctx context.Context, workspaceID uuid.UUID, opts *models.ListWebhooksOptions) (*models.WebhooksPage, error)
	GetWebhook(ctx context.Context, webhookID uuid.UUID) (*models.Webhook, error)
	CreateWebhook(ctx context.Context, workspaceID uuid.UUID, req models.CreateWebhook) (*models.Webhook, error)
	UpdateWebhook(ctx context.Context, webhookID uuid.UUID, req models.UpdateWebhook) (*models.Webhook, error)
	DeleteWebhook(ctx context.Context, webhookID uuid.UUID) error
	TestWebhook(ctx context.Context, webhookID uuid.UUID, req *models.TestWebhook) (*models.WebhookResult, error)
}

// HealthService reports API availability.
type HealthService interface {
	Health(ctx context.Context, opts *models.CheckHealth) (*models.MonitorStatus, error)
}
