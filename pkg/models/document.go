package models

import (
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DocumentType is the content type of a document.
type DocumentType string

const (
	DocumentTypeDocx  DocumentType = "docx"
	DocumentTypePdf   DocumentType = "pdf"
	DocumentTypeXlsx  DocumentType = "xlsx"
	DocumentTypePptx  DocumentType = "pptx"
	DocumentTypeSvg   DocumentType = "svg"
	DocumentTypeJpeg  DocumentType = "jpeg"
	DocumentTypePng   DocumentType = "png"
	DocumentTypeJSON  DocumentType = "json"
	DocumentTypeXML   DocumentType = "xml"
	DocumentTypeText  DocumentType = "text"
	DocumentTypeOther DocumentType = "other"
)

var documentTypeInfo = map[DocumentType]struct {
	ext  string
	mime string
}{
	DocumentTypeDocx:  {"docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
	DocumentTypePdf:   {"pdf", "application/pdf"},
	DocumentTypeXlsx:  {"xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	DocumentTypePptx:  {"pptx", "application/vnd.openxmlformats-officedocument.presentationml.presentation"},
	DocumentTypeSvg:   {"svg", "image/svg+xml"},
	DocumentTypeJpeg:  {"jpg", "image/jpeg"},
	DocumentTypePng:   {"png", "image/png"},
	DocumentTypeJSON:  {"json", "application/json"},
	DocumentTypeXML:   {"xml", "application/xml"},
	DocumentTypeText:  {"txt", "text/plain"},
	DocumentTypeOther: {"bin", "application/octet-stream"},
}

// Extension returns the canonical file extension, without the dot.
func (t DocumentType) Extension() string {
	if info, ok := documentTypeInfo[t]; ok {
		return info.ext
	}
	return documentTypeInfo[DocumentTypeOther].ext
}

// MimeType returns the MIME type for the document type.
func (t DocumentType) MimeType() string {
	if info, ok := documentTypeInfo[t]; ok {
		return info.mime
	}
	return documentTypeInfo[DocumentTypeOther].mime
}

// DocumentTypeFromExtension maps a file extension (with or without the
// leading dot, any case) to a document type. Unknown extensions map to
// DocumentTypeOther.
func DocumentTypeFromExtension(ext string) DocumentType {
	switch strings.TrimPrefix(strings.ToLower(ext), ".") {
	case "docx", "doc":
		return DocumentTypeDocx
	case "pdf":
		return DocumentTypePdf
	case "xlsx", "xls":
		return DocumentTypeXlsx
	case "pptx", "ppt":
		return DocumentTypePptx
	case "svg", "svgz":
		return DocumentTypeSvg
	case "jpg", "jpeg":
		return DocumentTypeJpeg
	case "png":
		return DocumentTypePng
	case "json":
		return DocumentTypeJSON
	case "xml":
		return DocumentTypeXML
	case "txt", "text":
		return DocumentTypeText
	default:
		return DocumentTypeOther
	}
}

// DocumentTypeFromName maps a file name to a document type by extension.
func DocumentTypeFromName(name string) DocumentType {
	return DocumentTypeFromExtension(filepath.Ext(name))
}

func documentTypes() []any {
	types := make([]any, 0, len(documentTypeInfo))
	for t := range documentTypeInfo {
		types = append(types, t)
	}
	return types
}

// Document is a stored document.
type Document struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	DocumentType DocumentType `json:"type"`
	Size         int64        `json:"size"`
	WorkspaceID  string       `json:"workspace_id"`
	UploadedBy   string       `json:"uploaded_by"`
	CreatedAt    Timestamp    `json:"created_at"`
	UpdatedAt    Timestamp    `json:"updated_at"`
}

// CreateDocument is the request body for creating a document.
type CreateDocument struct {
	Name         string       `json:"name"`
	DocumentType DocumentType `json:"type"`
	WorkspaceID  string       `json:"workspace_id"`
}

// Validate checks the request before it is sent.
func (c CreateDocument) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.DocumentType, validation.Required, validation.In(documentTypes()...)),
		validation.Field(&c.WorkspaceID, validation.Required),
	)
}

// UpdateDocument is a sparse patch; nil fields are left unchanged.
type UpdateDocument struct {
	Name        *string `json:"name,omitempty"`
	WorkspaceID *string `json:"workspace_id,omitempty"`
}

// DocumentVersion is one stored version of a document's content.
type DocumentVersion struct {
	Version   uint32    `json:"version"`
	Size      int64     `json:"size"`
	CreatedBy string    `json:"created_by"`
	CreatedAt Timestamp `json:"created_at"`
}
