package fakeapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

func (s *Server) listIntegrations(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []*models.Integration
	for _, in := range s.integrations {
		if in.WorkspaceID == id {
			matched = append(matched, in)
		}
	}
	c.JSON(http.StatusOK, cursorPage(c, matched))
}

func (s *Server) createIntegration(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	var req models.CreateIntegration
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
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	ts := now()
	in := &models.Integration{
		IntegrationID:   uuid.New(),
		WorkspaceID:     id,
		IntegrationName: req.IntegrationName,
		Description:     req.Description,
		IntegrationType: req.IntegrationType,
		IsActive:        active,
		CreatedBy:       s.Caller,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
	s.integrations = append(s.integrations, in)
	c.JSON(http.StatusCreated, in)
}

func (s *Server) getIntegration(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	in := s.findIntegration(id)
	if in == nil {
		notFound(c, "integration")
		return
	}
	c.JSON(http.StatusOK, in)
}

func (s *Server) updateIntegration(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	var req models.UpdateIntegration
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	in := s.findIntegration(id)
	if in == nil {
		notFound(c, "integration")
		return
	}
	if req.IntegrationName != nil {
		in.IntegrationName = *req.IntegrationName
	}
	if req.Description != nil {
		in.Description = *req.Description
	}
	if req.IntegrationType != nil {
		in.IntegrationType = *req.IntegrationType
	}
	if req.IsActive != nil {
		in.IsActive = *req.IsActive
	}
	in.UpdatedAt = now()
	c.JSON(http.StatusOK, in)
}

func (s *Server) deleteIntegration(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, in := range s.integrations {
		if in.IntegrationID == id {
			s.integrations = append(s.integrations[:i], s.integrations[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	notFound(c, "integration")
}

func (s *Server) syncIntegration(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	in := s.findIntegration(id)
	if in == nil {
		notFound(c, "integration")
		return
	}
	status := models.IntegrationStatusRunning
	ts := now()
	in.SyncStatus = &status
	in.LastSyncAt = &ts
	c.JSON(http.StatusAccepted, in)
}

// findIntegration looks up an integration. Callers hold s.mu.
func (s *Server) findIntegration(id uuid.UUID) *models.Integration {
	for _, in := range s.integrations {
		if in.IntegrationID == id {
			return in
		}
	}
	return nil
}
