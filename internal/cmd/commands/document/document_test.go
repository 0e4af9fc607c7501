package document_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvisy/nvisy-sdk-go/internal/cmd/cmdtest"
	"github.com/nvisy/nvisy-sdk-go/internal/cmd/commands/document"
	"github.com/nvisy/nvisy-sdk-go/pkg/models"
)

func setup(t *testing.T) (*cmdtest.Env, models.Document) {
	t.Helper()
	env := cmdtest.New(t)
	doc, err := env.Client(t).CreateDocument(context.Background(), models.CreateDocument{
		Name:         "Lease.pdf",
		DocumentType: models.DocumentTypePdf,
		WorkspaceID:  "ws-legal",
	})
	require.NoError(t, err)
	return env, *doc
}

func TestGetCommand(t *testing.T) {
	env, doc := setup(t)

	c := &document.GetCommand{Command: env.Command}
	code := c.Run([]string{doc.ID})
	require.Equal(t, 0, code, env.Stderr())
	assert.Contains(t, env.Stdout(), "Lease.pdf")
	assert.Contains(t, env.Stdout(), "ws-legal")

	assert.Equal(t, 1, c.Run(nil))
	assert.Contains(t, env.Stderr(), "exactly one document ID is required")
}

func TestURLCommand(t *testing.T) {
	env, doc := setup(t)
	want := "https://files.nvisy.test/documents/" + doc.ID + "?signature=fake"

	t.Run("print", func(t *testing.T) {
		c := &document.URLCommand{Command: env.Command}
		code := c.Run([]string{doc.ID})
		require.Equal(t, 0, code, env.Stderr())
		assert.Equal(t, want+"\n", env.Stdout())
		assert.Empty(t, env.Opened)
	})

	t.Run("open", func(t *testing.T) {
		c := &document.URLCommand{Command: env.Command}
		code := c.Run([]string{"-open", doc.ID})
		require.Equal(t, 0, code, env.Stderr())
		assert.Equal(t, []string{want}, env.Opened)
	})
}

func TestUploadDownloadCommands(t *testing.T) {
	env, doc := setup(t)
	content := []byte("%PDF-1.7 lease terms")
	require.NoError(t, afero.WriteFile(env.Fs, "/work/lease.pdf", content, 0o644))

	up := &document.UploadCommand{Command: env.Command}
	code := up.Run([]string{doc.ID, "/work/lease.pdf"})
	require.Equal(t, 0, code, env.Stderr())
	assert.Equal(t, "application/octet-stream", env.API.LastRequest().Header.Get("Content-Type"))

	down := &document.DownloadCommand{Command: env.Command}
	code = down.Run([]string{doc.ID, "/copy/lease.pdf"})
	require.Equal(t, 0, code, env.Stderr())

	got, err := afero.ReadFile(env.Fs, "/copy/lease.pdf")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestVersionsAndRestoreCommands(t *testing.T) {
	env, doc := setup(t)
	client := env.Client(t)
	ctx := context.Background()
	for _, body := range []string{"v1", "v2 longer"} {
		_, err := client.UploadDocumentBytes(ctx, doc.ID, []byte(body))
		require.NoError(t, err)
	}

	versions := &document.VersionsCommand{Command: env.Command}
	code := versions.Run([]string{"-per-page", "1", doc.ID})
	require.Equal(t, 0, code, env.Stderr())
	assert.Contains(t, env.Stdout(), "VERSION")
	assert.Contains(t, env.Stdout(), "More versions available with -page=2")
	assert.Contains(t, env.API.LastRequest().Query, "limit=1")

	restore := &document.RestoreCommand{Command: env.Command}
	code = restore.Run([]string{doc.ID, "1"})
	require.Equal(t, 0, code, env.Stderr())
	assert.Equal(t, "/documents/"+doc.ID+"/versions/1/restore", env.API.LastRequest().Path)

	content, err := client.DownloadDocumentBytes(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), content)
}

func TestRestoreCommand_InvalidVersion(t *testing.T) {
	env, doc := setup(t)
	c := &document.RestoreCommand{Command: env.Command}

	code := c.Run([]string{doc.ID, "latest"})
	assert.Equal(t, 1, code)
	assert.Contains(t, env.Stderr(), "error parsing version")
	assert.Len(t, env.API.Requests(), 1)
}
