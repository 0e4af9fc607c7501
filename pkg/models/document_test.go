package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentTypeFromExtension(t *testing.T) {
	tests := []struct {
		ext  string
		want DocumentType
	}{
		{"pdf", DocumentTypePdf},
		{".PDF", DocumentTypePdf},
		{"doc", DocumentTypeDocx},
		{"docx", DocumentTypeDocx},
		{"xls", DocumentTypeXlsx},
		{"ppt", DocumentTypePptx},
		{"svgz", DocumentTypeSvg},
		{"jpg", DocumentTypeJpeg},
		{"JPEG", DocumentTypeJpeg},
		{"png", DocumentTypePng},
		{"json", DocumentTypeJSON},
		{"xml", DocumentTypeXML},
		{"txt", DocumentTypeText},
		{"", DocumentTypeOther},
		{"exe", DocumentTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			assert.Equal(t, tt.want, DocumentTypeFromExtension(tt.ext))
		})
	}
}

func TestDocumentType_ExtensionAndMimeType(t *testing.T) {
	assert.Equal(t, "jpg", DocumentTypeJpeg.Extension())
	assert.Equal(t, "image/jpeg", DocumentTypeJpeg.MimeType())
	assert.Equal(t, "txt", DocumentTypeText.Extension())
	assert.Equal(t, "application/pdf", DocumentTypePdf.MimeType())

	t.Run("unknown type falls back to other", func(t *testing.T) {
		assert.Equal(t, "bin", DocumentType("hologram").Extension())
		assert.Equal(t, "application/octet-stream", DocumentType("hologram").MimeType())
	})

	t.Run("every extension maps back to its type", func(t *testing.T) {
		for typ := range documentTypeInfo {
			assert.Equal(t, typ, DocumentTypeFromExtension(typ.Extension()), typ)
		}
	})
}

func TestDocumentTypeFromName(t *testing.T) {
	assert.Equal(t, DocumentTypePdf, DocumentTypeFromName("reports/q1.final.pdf"))
	assert.Equal(t, DocumentTypeOther, DocumentTypeFromName("Makefile"))
}

func TestCreateDocument_Validate(t *testing.T) {
	valid := CreateDocument{Name: "q1.pdf", DocumentType: DocumentTypePdf, WorkspaceID: "ws-1"}
	assert.NoError(t, valid.Validate())

	missing := CreateDocument{DocumentType: "hologram"}
	err := missing.Validate()
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "type")
		assert.Contains(t, err.Error(), "workspace_id")
	}
}
