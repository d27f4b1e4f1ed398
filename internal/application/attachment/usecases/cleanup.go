package usecases

import (
	"tag/internal/domain/attachment"
	"tag/internal/shared/logger"
)

// FileCleaner removes files written by a request that is being rejected.
type FileCleaner struct {
	files  attachment.FileStore
	logger logger.Interface
}

func NewFileCleaner(files attachment.FileStore, logger logger.Interface) *FileCleaner {
	return &FileCleaner{files: files, logger: logger}
}

// Remove attempts every file independently. Failures are logged and never
// returned, so callers keep reporting their original error.
func (c *FileCleaner) Remove(stored []attachment.StoredFile) {
	for _, f := range stored {
		if err := c.files.Remove(f.Path); err != nil {
			c.logger.Warnw("failed to remove uploaded file", "path", f.Path, "error", err)
		}
	}
}
