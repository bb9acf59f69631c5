package upload

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Nishukr/Urban-waste-control/internal/config"
)

var pngBytes = append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 64)...)

func buildFileHeader(t *testing.T, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", "photo.png")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(1 << 20)
	if err != nil {
		t.Fatalf("ReadForm: %v", err)
	}
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["image"][0]
}

func newTestStore(t *testing.T, maxSize int64) *Store {
	t.Helper()
	return NewStore(config.UploadConfig{
		Dir:          filepath.Join(t.TempDir(), "uploads"),
		BaseURL:      "http://localhost:3000",
		MaxSizeBytes: maxSize,
	})
}

func TestStore_SaveImage(t *testing.T) {
	store := newTestStore(t, 1<<20)

	storedPath, url, err := store.SaveImage(buildFileHeader(t, pngBytes))
	if err != nil {
		t.Fatalf("SaveImage: %v", err)
	}
	if !strings.HasSuffix(storedPath, ".png") {
		t.Errorf("stored path %q lacks .png extension", storedPath)
	}
	if !strings.HasPrefix(url, "http://localhost:3000/") {
		t.Errorf("url %q lacks base prefix", url)
	}

	data, err := os.ReadFile(storedPath)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if !bytes.Equal(data, pngBytes) {
		t.Error("stored file content differs from upload")
	}
}

func TestStore_RejectsInvalidFileType(t *testing.T) {
	store := newTestStore(t, 1<<20)

	_, _, err := store.SaveImage(buildFileHeader(t, []byte("definitely not an image")))
	if err == nil {
		t.Fatal("expected error for non-image upload")
	}
}

func TestStore_RejectsOversizedFile(t *testing.T) {
	store := newTestStore(t, 16)

	_, _, err := store.SaveImage(buildFileHeader(t, pngBytes))
	if err == nil {
		t.Fatal("expected error for oversized upload")
	}
}
