package fakeapi

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

func (s *Server) listDocuments(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	docs := make([]models.Document, 0, len(s.documents))
	for _, d := range s.documents {
		docs = append(docs, d.meta)
	}
	c.JSON(http.StatusOK, offsetPage(c, docs))
}

func (s *Server) listWorkspaceDocuments(c *gin.Context) {
	workspaceID := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	docs := []models.Document{}
	for _, d := range s.documents {
		if d.meta.WorkspaceID == workspaceID {
			docs = append(docs, d.meta)
		}
	}
	c.JSON(http.StatusOK, offsetPage(c, docs))
}

func (s *Server) createDocument(c *gin.Context) {
	var req models.CreateDocument
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
	d := &storedDocument{meta: models.Document{
		ID:           uuid.NewString(),
		Name:         req.Name,
		DocumentType: req.DocumentType,
		WorkspaceID:  req.WorkspaceID,
		UploadedBy:   s.Caller.String(),
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}}
	s.documents = append(s.documents, d)
	c.JSON(http.StatusCreated, d.meta)
}

func (s *Server) getDocument(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.findDocument(c.Param("id"))
	if d == nil {
		notFound(c, "document")
		return
	}
	c.JSON(http.StatusOK, d.meta)
}

func (s *Server) updateDocument(c *gin.Context) {
	var req models.UpdateDocument
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.findDocument(c.Param("id"))
	if d == nil {
		notFound(c, "document")
		return
	}
	if req.Name != nil {
		d.meta.Name = *req.Name
	}
	if req.WorkspaceID != nil {
		d.meta.WorkspaceID = *req.WorkspaceID
	}
	d.meta.UpdatedAt = now()
	c.JSON(http.StatusOK, d.meta)
}

func (s *Server) deleteDocument(c *gin.Context) {
	id := c.Param("id")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, d := range s.documents {
		if d.meta.ID == id {
			s.documents = append(s.documents[:i], s.documents[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	notFound(c, "document")
}

func (s *Server) uploadDocument(c *gin.Context) {
	content, err := io.ReadAll(c.Request.Body)
	if err != nil {
		badRequest(c, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.findDocument(c.Param("id"))
	if d == nil {
		notFound(c, "document")
		return
	}
	d.addVersion(content, s.Caller.String())
	c.JSON(http.StatusOK, d.meta)
}

func (s *Server) downloadDocument(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.findDocument(c.Param("id"))
	if d == nil {
		notFound(c, "document")
		return
	}
	var content []byte
	if n := len(d.versions); n > 0 {
		content = d.versions[n-1].content
	}
	c.Data(http.StatusOK, "application/octet-stream", content)
}

func (s *Server) documentURL(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.findDocument(c.Param("id"))
	if d == nil {
		notFound(c, "document")
		return
	}
	c.String(http.StatusOK, "https://files.nvisy.test/documents/%s?signature=fake", d.meta.ID)
}

func (s *Server) listDocumentVersions(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.findDocument(c.Param("id"))
	if d == nil {
		notFound(c, "document")
		return
	}
	versions := make([]models.DocumentVersion, 0, len(d.versions))
	for _, v := range d.versions {
		versions = append(versions, v.meta)
	}
	c.JSON(http.StatusOK, offsetPage(c, versions))
}

func (s *Server) restoreDocumentVersion(c *gin.Context) {
	version, err := strconv.ParseUint(c.Param("version"), 10, 32)
	if err != nil {
		badRequest(c, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d := s.findDocument(c.Param("id"))
	if d == nil {
		notFound(c, "document")
		return
	}
	for _, v := range d.versions {
		if v.meta.Version == uint32(version) {
			d.addVersion(v.content, s.Caller.String())
			c.JSON(http.StatusOK, d.meta)
			return
		}
	}
	notFound(c, fmt.Sprintf("version %d", version))
}

// addVersion stores content as the new current version.
func (d *storedDocument) addVersion(content []byte, createdBy string) {
	ts := now()
	d.versions = append(d.versions, storedVersion{
		meta: models.DocumentVersion{
			Version:   uint32(len(d.versions) + 1),
			Size:      int64(len(content)),
			CreatedBy: createdBy,
			CreatedAt: ts,
		},
		content: append([]byte(nil), content...),
	})
	d.meta.Size = int64(len(content))
	d.meta.UpdatedAt = ts
}

// findDocument looks up a document. Callers hold s.mu.
func (s *Server) findDocument(id string) *storedDocument {
	for _, d := range s.documents {
		if d.meta.ID == id {
			return d
		}
	}
	return nil
}
