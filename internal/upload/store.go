package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Nishukr/Urban-waste-control/internal/config"
	apperrors "github.com/Nishukr/Urban-waste-control/pkg/util"
)

// extensions maps accepted sniffed content types to file extensions.
// Only JPEG and PNG images are accepted.
var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
}

// Store writes uploaded images to local disk and produces public URLs.
type Store struct {
	dir     string
	baseURL string
	maxSize int64
}

// NewStore builds a store rooted at the configured upload directory.
func NewStore(cfg config.UploadConfig) *Store {
	return &Store{dir: cfg.Dir, baseURL: cfg.BaseURL, maxSize: cfg.MaxSizeBytes}
}

// SaveImage validates and persists an uploaded image, returning the stored
// path relative to the upload directory root and its public URL.
func (s *Store) SaveImage(fileHeader *multipart.FileHeader) (string, string, error) {
	if s.maxSize > 0 && fileHeader.Size > s.maxSize {
		return "", "", apperrors.NewValidationError("image too large", map[string]any{
			"max_bytes": s.maxSize,
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", "", apperrors.NewInternalError(err)
	}
	defer file.Close()

	// Sniff the real content type instead of trusting the client header.
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", "", apperrors.NewInternalError(err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", "", apperrors.NewInternalError(err)
	}

	ext, ok := extensions[http.DetectContentType(buffer[:n])]
	if !ok {
		return "", "", apperrors.NewValidationError("Invalid file type", nil)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", "", apperrors.NewInternalError(err)
	}

	fileName := fmt.Sprintf("%s.%s", uuid.NewString(), ext)
	filePath := filepath.Join(s.dir, fileName)

	dest, err := os.Create(filePath)
	if err != nil {
		return "", "", apperrors.NewInternalError(err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, file); err != nil {
		return "", "", apperrors.NewInternalError(err)
	}

	return filePath, fmt.Sprintf("%s/%s/%s", s.baseURL, s.dir, fileName), nil
}

// PublicURL returns the public URL for a previously stored path.
func (s *Store) PublicURL(storedPath string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, filepath.ToSlash(storedPath))
}
