package models

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileFormat is the detected format of an uploaded file.
type FileFormat string

const (
	FileFormatPdf      FileFormat = "pdf"
	FileFormatDocx     FileFormat = "docx"
	FileFormatXlsx     FileFormat = "xlsx"
	FileFormatPptx     FileFormat = "pptx"
	FileFormatTxt      FileFormat = "txt"
	FileFormatMarkdown FileFormat = "markdown"
	FileFormatCsv      FileFormat = "csv"
	FileFormatJSON     FileFormat = "json"
	FileFormatPng      FileFormat = "png"
	FileFormatJpeg     FileFormat = "jpeg"
	FileFormatOther    FileFormat = "other"
)

// FileFormatFromName maps a file name to a format by extension.
func FileFormatFromName(name string) FileFormat {
	switch strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".") {
	case "pdf":
		return FileFormatPdf
	case "docx", "doc":
		return FileFormatDocx
	case "xlsx", "xls":
		return FileFormatXlsx
	case "pptx", "ppt":
		return FileFormatPptx
	case "txt", "text":
		return FileFormatTxt
	case "md", "markdown":
		return FileFormatMarkdown
	case "csv":
		return FileFormatCsv
	case "json":
		return FileFormatJSON
	case "png":
		return FileFormatPng
	case "jpg", "jpeg":
		return FileFormatJpeg
	default:
		return FileFormatOther
	}
}

// FileStatus is the processing state of an uploaded file.
type FileStatus string

const (
	FileStatusPending    FileStatus = "pending"
	FileStatusProcessing FileStatus = "processing"
	FileStatusReady      FileStatus = "ready"
	FileStatusFailed     FileStatus = "failed"
	FileStatusCanceled   FileStatus = "canceled"
)

// ArchiveFormat selects the container for batch downloads.
type ArchiveFormat string

const (
	ArchiveFormatZip   ArchiveFormat = "zip"
	ArchiveFormatTarGz ArchiveFormat = "tar.gz"
)

// Extension returns the file extension for archives of this format.
func (f ArchiveFormat) Extension() string {
	if f == ArchiveFormatTarGz {
		return "tar.gz"
	}
	return "zip"
}

// File is a file stored in a workspace.
type File struct {
	FileID      uuid.UUID  `json:"fileId"`
	WorkspaceID uuid.UUID  `json:"workspaceId"`
	DisplayName string     `json:"displayName"`
	FileFormat  FileFormat `json:"fileFormat"`
	FileSize    int64      `json:"fileSize"`
	Status      FileStatus `json:"status"`
	Tags        []string   `json:"tags,omitempty"`
	UploadedBy  uuid.UUID  `json:"uploadedBy"`
	CreatedAt   Timestamp  `json:"createdAt"`
	UpdatedAt   Timestamp  `json:"updatedAt"`
}

// UpdateFile is a sparse patch; nil fields are left unchanged.
type UpdateFile struct {
	DisplayName *string   `json:"displayName,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
}

// DeleteFiles is the request body for batch deletion.
type DeleteFiles struct {
	FileIDs []uuid.UUID `json:"fileIds"`
}

// DownloadFiles is the request body for batch archive downloads. An empty
// FileIDs selects every file in the workspace.
type DownloadFiles struct {
	FileIDs []uuid.UUID   `json:"fileIds"`
	Format  ArchiveFormat `json:"format"`
}

// FilesPage is a page of files.
type FilesPage = CursorPage[File]

// ListFilesOptions filters a file listing.
type ListFilesOptions struct {
	CursorOptions

	// Formats restricts results to the given formats.
	Formats []FileFormat
	// Search matches against file names.
	Search string
}

// Values encodes the options as query parameters. Formats are sent as a
// repeated parameter.
func (o *ListFilesOptions) Values() url.Values {
	if o == nil {
		return url.Values{}
	}
	v := o.CursorOptions.Values()
	for _, f := range o.Formats {
		v.Add("formats", string(f))
	}
	if o.Search != "" {
		v.Set("search", o.Search)
	}
	return v
}
