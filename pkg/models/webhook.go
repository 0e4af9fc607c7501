package models

import (
	"errors"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// WebhookEvent is an event a webhook can subscribe to.
type WebhookEvent string

const (
	WebhookEventDocumentCreated     WebhookEvent = "document_created"
	WebhookEventDocumentUpdated     WebhookEvent = "document_updated"
	WebhookEventDocumentDeleted     WebhookEvent = "document_deleted"
	WebhookEventFileCreated         WebhookEvent = "file_created"
	WebhookEventFileUpdated         WebhookEvent = "file_updated"
	WebhookEventFileDeleted         WebhookEvent = "file_deleted"
	WebhookEventMemberAdded         WebhookEvent = "member_added"
	WebhookEventMemberDeleted       WebhookEvent = "member_deleted"
	WebhookEventMemberUpdated       WebhookEvent = "member_updated"
	WebhookEventIntegrationCreated  WebhookEvent = "integration_created"
	WebhookEventIntegrationUpdated  WebhookEvent = "integration_updated"
	WebhookEventIntegrationDeleted  WebhookEvent = "integration_deleted"
	WebhookEventIntegrationSynced   WebhookEvent = "integration_synced"
	WebhookEventIntegrationDesynced WebhookEvent = "integration_desynced"
)

// WebhookEvents lists every known webhook event.
var WebhookEvents = []WebhookEvent{
	WebhookEventDocumentCreated,
	WebhookEventDocumentUpdated,
	WebhookEventDocumentDeleted,
	WebhookEventFileCreated,
	WebhookEventFileUpdated,
	WebhookEventFileDeleted,
	WebhookEventMemberAdded,
	WebhookEventMemberDeleted,
	WebhookEventMemberUpdated,
	WebhookEventIntegrationCreated,
	WebhookEventIntegrationUpdated,
	WebhookEventIntegrationDeleted,
	WebhookEventIntegrationSynced,
	WebhookEventIntegrationDesynced,
}

// WebhookStatus controls whether deliveries are attempted.
type WebhookStatus string

const (
	WebhookStatusActive   WebhookStatus = "active"
	WebhookStatusPaused   WebhookStatus = "paused"
	WebhookStatusDisabled WebhookStatus = "disabled"
)

// WebhookType distinguishes user-provided webhooks from ones owned by an
// integration.
type WebhookType string

const (
	WebhookTypeProvided    WebhookType = "provided"
	WebhookTypeIntegration WebhookType = "integration"
)

// Webhook is an event subscription delivering to an HTTP endpoint.
type Webhook struct {
	WebhookID       uuid.UUID         `json:"webhookId"`
	WorkspaceID     uuid.UUID         `json:"workspaceId"`
	DisplayName     string            `json:"displayName"`
	Description     string            `json:"description"`
	URL             string            `json:"url"`
	Events          []WebhookEvent    `json:"events"`
	Headers         map[string]string `json:"headers"`
	Status          WebhookStatus     `json:"status"`
	WebhookType     WebhookType       `json:"webhookType"`
	IntegrationID   *uuid.UUID        `json:"integrationId,omitempty"`
	LastTriggeredAt *Timestamp        `json:"lastTriggeredAt,omitempty"`
	CreatedBy       uuid.UUID         `json:"createdBy"`
	CreatedAt       Timestamp         `json:"createdAt"`
	UpdatedAt       Timestamp         `json:"updatedAt"`
}

// WebhooksPage is a page of webhooks.
type WebhooksPage = CursorPage[Webhook]

// ListWebhooksOptions pages a webhook listing.
type ListWebhooksOptions = CursorOptions

// CreateWebhook is the request body for creating a webhook.
type CreateWebhook struct {
	DisplayName string            `json:"displayName"`
	Description string            `json:"description"`
	URL         string            `json:"url"`
	Events      []WebhookEvent    `json:"events"`
	Headers     map[string]string `json:"headers,omitempty"`
	Status      *WebhookStatus    `json:"status,omitempty"`
}

// Validate checks the request before it is sent.
func (c CreateWebhook) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.DisplayName, validation.Required, validation.Length(1, 255)),
		validation.Field(&c.URL, validation.Required, is.URL, validation.By(httpURL)),
		validation.Field(&c.Events, validation.Required, validation.Each(validation.In(webhookEvents()...))),
		validation.Field(&c.Status, validation.NilOrNotEmpty, validation.In(webhookStatuses()...)),
	)
}

// UpdateWebhook is a sparse patch; nil fields are left unchanged.
type UpdateWebhook struct {
	DisplayName *string            `json:"displayName,omitempty"`
	Description *string            `json:"description,omitempty"`
	URL         *string            `json:"url,omitempty"`
	Events      *[]WebhookEvent    `json:"events,omitempty"`
	Headers     *map[string]string `json:"headers,omitempty"`
	Status      *WebhookStatus     `json:"status,omitempty"`
}

// Validate checks the fields that are set.
func (u UpdateWebhook) Validate() error {
	errs := validation.Errors{}
	if u.DisplayName != nil {
		errs["displayName"] = validation.Validate(*u.DisplayName, validation.Required, validation.Length(1, 255))
	}
	if u.URL != nil {
		errs["url"] = validation.Validate(*u.URL, validation.Required, is.URL, validation.By(httpURL))
	}
	if u.Events != nil {
		errs["events"] = validation.Validate(*u.Events, validation.Required, validation.Each(validation.In(webhookEvents()...)))
	}
	if u.Status != nil {
		errs["status"] = validation.Validate(*u.Status, validation.Required, validation.In(webhookStatuses()...))
	}
	return errs.Filter()
}

// TestWebhook carries an optional payload for a test delivery.
type TestWebhook struct {
	Payload JSON `json:"payload,omitempty"`
}

// WebhookResult reports the outcome of a test delivery.
type WebhookResult struct {
	StatusCode     int   `json:"statusCode"`
	ResponseTimeMs int64 `json:"responseTimeMs"`
}

func httpURL(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must use http or https scheme")
	}
	return nil
}

func webhookEvents() []any {
	out := make([]any, len(WebhookEvents))
	for i, e := range WebhookEvents {
		out[i] = e
	}
	return out
}

func webhookStatuses() []any {
	return []any{WebhookStatusActive, WebhookStatusPaused, WebhookStatusDisabled}
}
