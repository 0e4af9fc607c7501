// Package fakeapi is an in-memory implementation of the Nvisy HTTP API used
// to exercise the client end to end.
package fakeapi

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

// RecordedRequest is a snapshot of a request received by the Server.
type RecordedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

// Server holds the in-memory state of the fake API.
type Server struct {
	apiKey string
	engine *gin.Engine

	mu            sync.Mutex
	requests      []RecordedRequest
	workspaces    []*models.Workspace
	notifications map[uuid.UUID]*models.NotificationSettings
	files         []*storedFile
	documents     []*storedDocument
	integrations  []*models.Integration
	webhooks      []*models.Webhook

	emptyUploads bool
	// Caller is reported as the creator of new resources.
	Caller uuid.UUID
	// HealthStatus is reported by the health endpoint.
	HealthStatus models.ServiceStatus
}

type storedFile struct {
	meta    models.File
	content []byte
}

type storedDocument struct {
	meta     models.Document
	versions []storedVersion
}

type storedVersion struct {
	meta    models.DocumentVersion
	content []byte
}

// New returns a Server accepting apiKey as bearer token.
func New(apiKey string) *Server {
	gin.SetMode(gin.TestMode)

	s := &Server{
		apiKey:        apiKey,
		engine:        gin.New(),
		notifications: make(map[uuid.UUID]*models.NotificationSettings),
		Caller:        uuid.New(),
		HealthStatus:  models.ServiceStatusHealthy,
	}
	s.routes()
	return s
}

// Start serves the fake API on a loopback listener. Callers close the
// returned server.
func (s *Server) Start() *httptest.Server {
	return httptest.NewServer(s.engine)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

// SetEmptyUploads makes file uploads answer with an empty list.
func (s *Server) SetEmptyUploads(empty bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emptyUploads = empty
}

// Requests returns every request received so far.
func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, or the zero value.
func (s *Server) LastRequest() RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return RecordedRequest{}
	}
	return s.requests[len(s.requests)-1]
}

func (s *Server) routes() {
	r := s.engine
	r.Use(s.record(), s.requireAPIKey())

	r.GET("/health", s.health)
	r.POST("/health", s.health)

	ws := r.Group("/workspaces")
	{
		ws.GET("", s.listWorkspaces)
		ws.POST("", s.createWorkspace)
		ws.GET("/:id", s.getWorkspace)
		ws.PATCH("/:id", s.updateWorkspace)
		ws.DELETE("/:id", s.deleteWorkspace)
		ws.GET("/:id/notifications", s.getNotifications)
		ws.PATCH("/:id/notifications", s.updateNotifications)

		ws.GET("/:id/files", s.listFiles)
		ws.POST("/:id/files", s.uploadFile)
		ws.DELETE("/:id/files/batch", s.deleteFilesBatch)
		ws.GET("/:id/files/batch", s.downloadFilesBatch)

		ws.GET("/:id/documents", s.listWorkspaceDocuments)

		ws.GET("/:id/integrations", s.listIntegrations)
		ws.POST("/:id/integrations", s.createIntegration)

		ws.GET("/:id/webhooks", s.listWebhooks)
		ws.POST("/:id/webhooks", s.createWebhook)
	}

	files := r.Group("/files")
	{
		files.GET("/:id", s.getFile)
		files.PATCH("/:id", s.updateFile)
		files.DELETE("/:id", s.deleteFile)
		files.GET("/:id/content", s.downloadFile)
	}

	docs := r.Group("/documents")
	{
		docs.GET("", s.listDocuments)
		docs.POST("", s.createDocument)
		docs.GET("/:id", s.getDocument)
		docs.PUT("/:id", s.updateDocument)
		docs.DELETE("/:id", s.deleteDocument)
		docs.GET("/:id/content", s.downloadDocument)
		docs.PUT("/:id/content", s.uploadDocument)
		docs.GET("/:id/url", s.documentURL)
		docs.GET("/:id/versions", s.listDocumentVersions)
		docs.POST("/:id/versions/:version/restore", s.restoreDocumentVersion)
	}

	integrations := r.Group("/integrations")
	{
		integrations.GET("/:id", s.getIntegration)
		integrations.PATCH("/:id", s.updateIntegration)
		integrations.DELETE("/:id", s.deleteIntegration)
		integrations.POST("/:id/sync", s.syncIntegration)
	}

	webhooks := r.Group("/webhooks")
	{
		webhooks.GET("/:id", s.getWebhook)
		webhooks.PATCH("/:id", s.updateWebhook)
		webhooks.DELETE("/:id", s.deleteWebhook)
		webhooks.POST("/:id/test", s.testWebhook)
	}
}

func (s *Server) record() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}

		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method: c.Request.Method,
			Path:   c.Request.URL.Path,
			Query:  c.Request.URL.RawQuery,
			Header: c.Request.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()

		c.Next()
	}
}

func (s *Server) requireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "Bearer "+s.apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "invalid api key",
			})
			return
		}
		c.Next()
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, models.MonitorStatus{
		CheckedAt: now(),
		Status:    s.HealthStatus,
		Version:   "fake",
	})
}

var timeNow = func() time.Time { return time.Now().UTC() }

func now() models.Timestamp {
	return models.NewTimestamp(timeNow())
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not_found", "message": what + " not found"})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "message": err.Error()})
}

func uuidParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err)
		return uuid.Nil, false
	}
	return id, true
}

// cursorPage slices items starting at the decimal offset carried by the
// after cursor.
func cursorPage[T any](c *gin.Context, items []*T) models.CursorPage[T] {
	start, _ := strconv.Atoi(c.Query("after"))
	if start < 0 || start > len(items) {
		start = len(items)
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	end := len(items)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	page := models.CursorPage[T]{Items: make([]T, 0, end-start)}
	for _, item := range items[start:end] {
		page.Items = append(page.Items, *item)
	}
	total := int64(len(items))
	page.Total = &total
	if end < len(items) {
		page.NextCursor = strconv.Itoa(end)
		page.HasMore = true
	}
	return page
}

// offsetPage slices items by the offset and limit query parameters.
func offsetPage[T any](c *gin.Context, items []T) models.PaginatedResponse[T] {
	offset, _ := strconv.Atoi(c.Query("offset"))
	if offset < 0 || offset > len(items) {
		offset = len(items)
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	if limit <= 0 {
		limit = 20
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	data := make([]T, end-offset)
	copy(data, items[offset:end])
	return models.PaginatedResponse[T]{
		Data:   data,
		Total:  len(items),
		Offset: offset,
		Limit:  limit,
	}
}
