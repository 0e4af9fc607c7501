package fakeapi

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

func (s *Server) listFiles(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	formats := c.QueryArray("formats")
	search := strings.ToLower(c.Query("search"))

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findWorkspace(id) == nil {
		notFound(c, "workspace")
		return
	}
	var matched []*models.File
	for _, f := range s.files {
		if f.meta.WorkspaceID != id {
			continue
		}
		if len(formats) > 0 && !slices.Contains(formats, string(f.meta.FileFormat)) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(f.meta.DisplayName), search) {
			continue
		}
		matched = append(matched, &f.meta)
	}
	c.JSON(http.StatusOK, cursorPage(c, matched))
}

func (s *Server) uploadFile(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		badRequest(c, err)
		return
	}
	src, err := header.Open()
	if err != nil {
		badRequest(c, err)
		return
	}
	defer src.Close()
	content, err := io.ReadAll(src)
	if err != nil {
		badRequest(c, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findWorkspace(id) == nil {
		notFound(c, "workspace")
		return
	}
	if s.emptyUploads {
		c.JSON(http.StatusCreated, []models.File{})
		return
	}
	ts := now()
	f := &storedFile{
		meta: models.File{
			FileID:      uuid.New(),
			WorkspaceID: id,
			DisplayName: header.Filename,
			FileFormat:  models.FileFormatFromName(header.Filename),
			FileSize:    int64(len(content)),
			Status:      models.FileStatusReady,
			Tags:        []string{},
			UploadedBy:  s.Caller,
			CreatedAt:   ts,
			UpdatedAt:   ts,
		},
		content: content,
	}
	s.files = append(s.files, f)
	c.JSON(http.StatusCreated, []models.File{f.meta})
}

func (s *Server) getFile(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.findFile(id)
	if f == nil {
		notFound(c, "file")
		return
	}
	c.JSON(http.StatusOK, f.meta)
}

func (s *Server) updateFile(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	var req models.UpdateFile
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.findFile(id)
	if f == nil {
		notFound(c, "file")
		return
	}
	if req.DisplayName != nil {
		f.meta.DisplayName = *req.DisplayName
	}
	if req.Tags != nil {
		f.meta.Tags = append([]string{}, (*req.Tags)...)
	}
	f.meta.UpdatedAt = now()
	c.JSON(http.StatusOK, f.meta)
}

func (s *Server) deleteFile(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.removeFile(id) {
		notFound(c, "file")
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) downloadFile(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.findFile(id)
	if f == nil {
		notFound(c, "file")
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", f.content)
}

func (s *Server) deleteFilesBatch(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	var req models.DeleteFiles
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, fileID := range req.FileIDs {
		if f := s.findFile(fileID); f == nil || f.meta.WorkspaceID != id {
			notFound(c, "file "+fileID.String())
			return
		}
	}
	for _, fileID := range req.FileIDs {
		s.removeFile(fileID)
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) downloadFilesBatch(c *gin.Context) {
	id, ok := uuidParam(c)
	if !ok {
		return
	}
	var req models.DownloadFiles
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	s.mu.Lock()
	var selected []*storedFile
	for _, f := range s.files {
		if f.meta.WorkspaceID != id {
			continue
		}
		if len(req.FileIDs) == 0 || slices.Contains(req.FileIDs, f.meta.FileID) {
			selected = append(selected, f)
		}
	}
	s.mu.Unlock()

	archive, err := buildArchive(req.Format, selected)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.Data(http.StatusOK, "application/octet-stream", archive)
}

func buildArchive(format models.ArchiveFormat, files []*storedFile) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case models.ArchiveFormatZip, "":
		zw := zip.NewWriter(&buf)
		for _, f := range files {
			w, err := zw.Create(f.meta.DisplayName)
			if err != nil {
				return nil, err
			}
			if _, err := w.Write(f.content); err != nil {
				return nil, err
			}
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
	case models.ArchiveFormatTarGz:
		gz := gzip.NewWriter(&buf)
		tw := tar.NewWriter(gz)
		for _, f := range files {
			hdr := &tar.Header{Name: f.meta.DisplayName, Mode: 0o644, Size: int64(len(f.content))}
			if err := tw.WriteHeader(hdr); err != nil {
				return nil, err
			}
			if _, err := tw.Write(f.content); err != nil {
				return nil, err
			}
		}
		if err := tw.Close(); err != nil {
			return nil, err
		}
		if err := gz.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("unsupported archive format " + string(format))
	}
	return buf.Bytes(), nil
}

// findFile looks up a file. Callers hold s.mu.
func (s *Server) findFile(id uuid.UUID) *storedFile {
	for _, f := range s.files {
		if f.meta.FileID == id {
			return f
		}
	}
	return nil
}

// removeFile deletes a file. Callers hold s.mu.
func (s *Server) removeFile(id uuid.UUID) bool {
	for i, f := range s.files {
		if f.meta.FileID == id {
			s.files = append(s.files[:i], s.files[i+1:]...)
			return true
		}
	}
	return false
}
