package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateWebhook_Validate(t *testing.T) {
	paused := WebhookStatusPaused
	bogus := WebhookStatus("exploded")

	tests := []struct {
		name     string
		req      CreateWebhook
		wantErr  bool
		errorMsg string
	}{
		{
			name: "valid",
			req: CreateWebhook{
				DisplayName: "CI",
				URL:         "https://hooks.example.com/nvisy",
				Events:      []WebhookEvent{WebhookEventFileCreated},
			},
		},
		{
			name: "valid with status",
			req: CreateWebhook{
				DisplayName: "CI",
				URL:         "https://hooks.example.com:8443/hook",
				Events:      []WebhookEvent{WebhookEventDocumentCreated, WebhookEventMemberAdded},
				Status:      &paused,
			},
		},
		{
			name:     "missing name",
			req:      CreateWebhook{URL: "https://hooks.example.com", Events: []WebhookEvent{WebhookEventFileCreated}},
			wantErr:  true,
			errorMsg: "displayName",
		},
		{
			name:     "non-http scheme",
			req:      CreateWebhook{DisplayName: "CI", URL: "ftp://hooks.example.com", Events: []WebhookEvent{WebhookEventFileCreated}},
			wantErr:  true,
			errorMsg: "url",
		},
		{
			name:     "no events",
			req:      CreateWebhook{DisplayName: "CI", URL: "https://hooks.example.com"},
			wantErr:  true,
			errorMsg: "events",
		},
		{
			name:     "unknown event",
			req:      CreateWebhook{DisplayName: "CI", URL: "https://hooks.example.com", Events: []WebhookEvent{"file_exploded"}},
			wantErr:  true,
			errorMsg: "events",
		},
		{
			name: "unknown status",
			req: CreateWebhook{
				DisplayName: "CI",
				URL:         "https://hooks.example.com",
				Events:      []WebhookEvent{WebhookEventFileCreated},
				Status:      &bogus,
			},
			wantErr:  true,
			errorMsg: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				if assert.Error(t, err) {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestUpdateWebhook_Validate(t *testing.T) {
	assert.NoError(t, UpdateWebhook{}.Validate())

	url := "https://hooks.example.com/v2"
	events := []WebhookEvent{WebhookEventIntegrationSynced}
	assert.NoError(t, UpdateWebhook{URL: &url, Events: &events}.Validate())

	badURL := "mailto:ops@example.com"
	noEvents := []WebhookEvent{}
	err := UpdateWebhook{URL: &badURL, Events: &noEvents}.Validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "url")
		assert.Contains(t, err.Error(), "events")
	}
}
