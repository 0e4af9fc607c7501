package fakeapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

func (s *Server) listWebhooks(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []*models.Webhook
	for _, wh := range s.webhooks {
		if wh.WorkspaceID == id {
			matched = append(matched, wh)
		}
	}
	c.JSON(http.StatusOK, cursorPage(c, matched))
}

func (s *Server) createWebhook(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	var req models.CreateWebhook
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findWorkspace(id) == nil {
		notFound(c, "workspace")
		return
	}
	status := models.WebhookStatusActive
	if req.Status != nil {
		status = *req.Status
	}
	headers := req.Headers
	if headers == nil {
		headers = map[string]string{}
	}
	ts := now()
	wh := &models.Webhook{
		WebhookID:   uuid.New(),
		WorkspaceID: id,
		DisplayName: req.DisplayName,
		Description: req.Description,
		URL:         req.URL,
		Events:      append([]models.WebhookEvent{}, req.Events...),
		Headers:     headers,
		Status:      status,
		WebhookType: models.WebhookTypeProvided,
		CreatedBy:   s.Caller,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
	s.webhooks = append(s.webhooks, wh)
	c.JSON(http.StatusCreated, wh)
}

func (s *Server) getWebhook(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	wh := s.findWebhook(id)
	if wh == nil {
		notFound(c, "webhook")
		return
	}
	c.JSON(http.StatusOK, wh)
}

func (s *Server) updateWebhook(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	var req models.UpdateWebhook
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		badRequest(c, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	wh := s.findWebhook(id)
	if wh == nil {
		notFound(c, "webhook")
		return
	}
	if req.DisplayName != nil {
		wh.DisplayName = *req.DisplayName
	}
	if req.Description != nil {
		wh.Description = *req.Description
	}
	if req.URL != nil {
		wh.URL = *req.URL
	}
	if req.Events != nil {
		wh.Events = append([]models.WebhookEvent{}, (*req.Events)...)
	}
	if req.Headers != nil {
		wh.Headers = *req.Headers
	}
	if req.Status != nil {
		wh.Status = *req.Status
	}
	wh.UpdatedAt = now()
	c.JSON(http.StatusOK, wh)
}

func (s *Server) deleteWebhook(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, wh := range s.webhooks {
		if wh.WebhookID == id {
			s.webhooks = append(s.webhooks[:i], s.webhooks[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	notFound(c, "webhook")
}

// testWebhook reports a successful delivery without contacting the
// endpoint.
func (s *Server) testWebhook(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	wh := s.findWebhook(id)
	if wh == nil {
		notFound(c, "webhook")
		return
	}
	ts := now()
	wh.LastTriggeredAt = &ts
	c.JSON(http.StatusOK, models.WebhookResult{StatusCode: http.StatusOK, ResponseTimeMs: 1})
}

// findWebhook looks up a webhook. Callers hold s.mu.
func (s *Server) findWebhook(id uuid.UUID) *models.Webhook {
	for _, wh := range s.webhooks {
		if wh.WebhookID == id {
			return wh
		}
	}
	return nil
}
