package models

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// WorkspaceRole is the caller's role within a workspace.
type WorkspaceRole string

const (
	WorkspaceRoleOwner  WorkspaceRole = "owner"
	WorkspaceRoleAdmin  WorkspaceRole = "admin"
	WorkspaceRoleEditor WorkspaceRole = "editor"
	WorkspaceRoleViewer WorkspaceRole = "viewer"
)

// Workspace is a collaboration container for files, integrations and
// webhooks.
type Workspace struct {
	WorkspaceID     uuid.UUID     `json:"workspaceId"`
	DisplayName     string        `json:"displayName"`
	Description     *string       `json:"description,omitempty"`
	Tags            []string      `json:"tags"`
	EnableComments  bool          `json:"enableComments"`
	RequireApproval bool          `json:"requireApproval"`
	MemberRole      WorkspaceRole `json:"memberRole"`
	CreatedBy       uuid.UUID     `json:"createdBy"`
	CreatedAt       Timestamp     `json:"createdAt"`
	UpdatedAt       Timestamp     `json:"updatedAt"`
}

// CreateWorkspace is the request body for creating a workspace.
type CreateWorkspace struct {
	DisplayName     string   `json:"displayName"`
	Description     *string  `json:"description,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	EnableComments  bool     `json:"enableComments"`
	RequireApproval bool     `json:"requireApproval"`
}

// NewCreateWorkspace returns a request with the server defaults: comments
// enabled, approval not required.
func NewCreateWorkspace(displayName string) CreateWorkspace {
	return CreateWorkspace{
		DisplayName:    displayName,
		EnableComments: true,
	}
}

// Validate checks the request before it is sent.
func (c CreateWorkspace) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.DisplayName, validation.Required, validation.Length(1, 255)),
		validation.Field(&c.Tags, validation.Each(validation.Required)),
	)
}

// UpdateWorkspace is a sparse patch; nil fields are left unchanged.
type UpdateWorkspace struct {
	DisplayName     *string   `json:"displayName,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Tags            *[]string `json:"tags,omitempty"`
	EnableComments  *bool     `json:"enableComments,omitempty"`
	RequireApproval *bool     `json:"requireApproval,omitempty"`
}

// WorkspacesPage is a page of workspaces.
type WorkspacesPage = CursorPage[Workspace]

// ListWorkspacesOptions pages a workspace listing.
type ListWorkspacesOptions struct {
	CursorOptions
}

// Values encodes the options as query parameters.
func (o *ListWorkspacesOptions) Values() url.Values {
	if o == nil {
		return url.Values{}
	}
	return o.CursorOptions.Values()
}

// NotificationEvent is an event a member can be notified about.
type NotificationEvent string

const (
	NotificationCommentAdded  NotificationEvent = "comment_added"
	NotificationCommentReply  NotificationEvent = "comment_reply"
	NotificationFileCompleted NotificationEvent = "file_completed"
	NotificationFileFailed    NotificationEvent = "file_failed"
	NotificationMemberJoined  NotificationEvent = "member_joined"
	NotificationMemberLeft    NotificationEvent = "member_left"
)

// NotificationSettings are the caller's notification preferences in a
// workspace.
type NotificationSettings struct {
	EmailEnabled bool                `json:"emailEnabled"`
	InAppEnabled bool                `json:"inAppEnabled"`
	Events       []NotificationEvent `json:"events"`
}

// UpdateNotificationSettings is a sparse patch of NotificationSettings.
type UpdateNotificationSettings struct {
	EmailEnabled *bool                `json:"emailEnabled,omitempty"`
	InAppEnabled *bool                `json:"inAppEnabled,omitempty"`
	Events       *[]NotificationEvent `json:"events,omitempty"`
}
