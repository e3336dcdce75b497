package service

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/AzharuddinMalik/MAD-ERP/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FileStore saves uploaded site photos under a local directory that is
// served statically at /uploads.
type FileStore struct {
	Dir string
}

// NewFileStore creates the upload directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{Dir: dir}, nil
}

// Save writes an uploaded file under a uuid-prefixed name and returns the
// public URL path.
func (fs *FileStore) Save(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file == nil || file.Size == 0 {
		return "", nil
	}

	filename := uuid.NewString() + "_" + filepath.Base(file.Filename)
	dst := filepath.Join(fs.Dir, filename)

	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.Logger.Error().Err(err).Str("file", file.Filename).Msg("failed to store upload")
		return "", fmt.Errorf("store upload: %w", err)
	}

	utils.Logger.Info().Str("file", filename).Int64("size", file.Size).Msg("stored upload")
	return "/uploads/" + filename, nil
}
