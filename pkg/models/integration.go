package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// IntegrationType categorizes a third-party connector.
type IntegrationType string

const (
	IntegrationTypeStorage       IntegrationType = "storage"
	IntegrationTypeCommunication IntegrationType = "communication"
	IntegrationTypeBusiness      IntegrationType = "business"
	IntegrationTypeAnalytics     IntegrationType = "analytics"
	IntegrationTypeAutomation    IntegrationType = "automation"
	IntegrationTypeCustom        IntegrationType = "custom"
	IntegrationTypeIndustry      IntegrationType = "industry"
)

// IntegrationTypes lists every known integration type.
var IntegrationTypes = []IntegrationType{
	IntegrationTypeStorage,
	IntegrationTypeCommunication,
	IntegrationTypeBusiness,
	IntegrationTypeAnalytics,
	IntegrationTypeAutomation,
	IntegrationTypeCustom,
	IntegrationTypeIndustry,
}

// IntegrationStatus is the state of the last sync run.
type IntegrationStatus string

const (
	IntegrationStatusPending   IntegrationStatus = "pending"
	IntegrationStatusRunning   IntegrationStatus = "running"
	IntegrationStatusCancelled IntegrationStatus = "cancelled"
)

// Integration is a configured third-party connector in a workspace.
type Integration struct {
	IntegrationID   uuid.UUID          `json:"integrationId"`
	WorkspaceID     uuid.UUID          `json:"workspaceId"`
	IntegrationName string             `json:"integrationName"`
	Description     string             `json:"description"`
	IntegrationType IntegrationType    `json:"integrationType"`
	IsActive        bool               `json:"isActive"`
	SyncStatus      *IntegrationStatus `json:"syncStatus,omitempty"`
	LastSyncAt      *Timestamp         `json:"lastSyncAt,omitempty"`
	CreatedBy       uuid.UUID          `json:"createdBy"`
	CreatedAt       Timestamp          `json:"createdAt"`
	UpdatedAt       Timestamp          `json:"updatedAt"`
}

// IntegrationsPage is a page of integrations.
type IntegrationsPage = CursorPage[Integration]

// ListIntegrationsOptions pages an integration listing.
type ListIntegrationsOptions = CursorOptions

// CreateIntegration is the request body for creating an integration.
type CreateIntegration struct {
	IntegrationName string          `json:"integrationName"`
	Description     string          `json:"description"`
	IntegrationType IntegrationType `json:"integrationType"`
	Credentials     JSON            `json:"credentials,omitempty"`
	IsActive        *bool           `json:"isActive,omitempty"`
	Metadata        JSON            `json:"metadata,omitempty"`
}

// Validate checks the request before it is sent.
func (c CreateIntegration) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.IntegrationName, validation.Required, validation.Length(1, 255)),
		validation.Field(&c.IntegrationType, validation.Required, validation.In(integrationTypes()...)),
	)
}

// UpdateIntegration is a sparse patch; nil fields are left unchanged.
type UpdateIntegration struct {
	IntegrationName *string          `json:"integrationName,omitempty"`
	Description     *string          `json:"description,omitempty"`
	IntegrationType *IntegrationType `json:"integrationType,omitempty"`
	Credentials     JSON             `json:"credentials,omitempty"`
	IsActive        *bool            `json:"isActive,omitempty"`
	Metadata        JSON             `json:"metadata,omitempty"`
}

func integrationTypes() []any {
	out := make([]any, len(IntegrationTypes))
	for i, t := range IntegrationTypes {
		out[i] = t
	}
	return out
}
