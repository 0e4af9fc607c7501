package fakeapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

func (s *Server) listWorkspaces(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, cursorPage(c, s.workspaces))
}

func (s *Server) createWorkspace(c *gin.Context) {
	var req models.CreateWorkspace
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
	ts := now()
	ws := &models.Workspace{
		WorkspaceID:     uuid.New(),
		DisplayName:     req.DisplayName,
		Description:     req.Description,
		Tags:            append([]string{}, req.Tags...),
		EnableComments:  req.EnableComments,
		RequireApproval: req.RequireApproval,
		MemberRole:      models.WorkspaceRoleOwner,
		CreatedBy:       s.Caller,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
	s.workspaces = append(s.workspaces, ws)
	c.JSON(http.StatusCreated, ws)
}

func (s *Server) getWorkspace(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ws := s.findWorkspace(id)
	if ws == nil {
		notFound(c, "workspace")
		return
	}
	c.JSON(http.StatusOK, ws)
}

func (s *Server) updateWorkspace(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	var req models.UpdateWorkspace
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	ws := s.findWorkspace(id)
	if ws == nil {
		notFound(c, "workspace")
		return
	}
	if req.DisplayName != nil {
		ws.DisplayName = *req.DisplayName
	}
	if req.Description != nil {
		ws.Description = req.Description
	}
	if req.Tags != nil {
		ws.Tags = append([]string{}, (*req.Tags)...)
	}
	if req.EnableComments != nil {
		ws.EnableComments = *req.EnableComments
	}
	if req.RequireApproval != nil {
		ws.RequireApproval = *req.RequireApproval
	}
	ws.UpdatedAt = now()
	c.JSON(http.StatusOK, ws)
}

func (s *Server) deleteWorkspace(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, ws := range s.workspaces {
		if ws.WorkspaceID == id {
			s.workspaces = append(s.workspaces[:i], s.workspaces[i+1:]...)
			delete(s.notifications, id)
			c.Status(http.StatusNoContent)
			return
		}
	}
	notFound(c, "workspace")
}

func (s *Server) getNotifications(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	settings := s.notificationSettings(id)
	if settings == nil {
		notFound(c, "workspace")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (s *Server) updateNotifications(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	var req models.UpdateNotificationSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	settings := s.notificationSettings(id)
	if settings == nil {
		notFound(c, "workspace")
		return
	}
	if req.EmailEnabled != nil {
		settings.EmailEnabled = *req.EmailEnabled
	}
	if req.InAppEnabled != nil {
		settings.InAppEnabled = *req.InAppEnabled
	}
	if req.Events != nil {
		settings.Events = append([]models.NotificationEvent{}, (*req.Events)...)
	}
	c.JSON(http.StatusOK, settings)
}

// notificationSettings returns the settings of a workspace, creating the
// defaults on first access. Callers hold s.mu.
func (s *Server) notificationSettings(id uuid.UUID) *models.NotificationSettings {
	if s.findWorkspace(id) == nil {
		return nil
	}
	settings, ok := s.notifications[id]
	if !ok {
		settings = &models.NotificationSettings{
			EmailEnabled: true,
			InAppEnabled: true,
			Events:       []models.NotificationEvent{},
		}
		s.notifications[id] = settings
	}
	return settings
}

// findWorkspace looks up a workspace. Callers hold s.mu.
func (s *Server) findWorkspace(id uuid.UUID) *models.Workspace {
	for _, ws := range s.workspaces {
		if ws.WorkspaceID == id {
			return ws
		}
	}
	return nil
}
