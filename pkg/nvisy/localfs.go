package nvisy

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	localFileMode = 0o644
	localDirMode  = 0o755
)

// readLocalFile reads path from the configured filesystem.
func (c *Client) readLocalFile(path string) ([]byte, error) {
	data, err := afero.ReadFile(c.config.Fs(), path)
	if err != nil {
		return nil, newError(KindIO, "read "+path, fmt.Errorf("failed to read file: %w", err))
	}
	return data, nil
}

// writeLocalFile writes data to path, creating missing parent directories.
func (c *Client) writeLocalFile(path string, data []byte) error {
	fs := c.config.Fs()
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, localDirMode); err != nil {
			return newError(KindIO, "write "+path, fmt.Errorf("failed to create directory: %w", err))
		}
	}
	if err := afero.WriteFile(fs, path, data, os.FileMode(localFileMode)); err != nil {
		return newError(KindIO, "write "+path, fmt.Errorf("failed to write file: %w", err))
	}
	return nil
}
