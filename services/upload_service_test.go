package services

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jewelfoundation/admin-api/models"
)

func makeFileHeader(t *testing.T, filename, mime, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", mime)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	part.Write([]byte(content))
	writer.Close()

	form, err := multipart.NewReader(&buf, writer.Boundary()).ReadForm(32 << 20)
	if err != nil {
		t.Fatalf("read form: %v", err)
	}
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["image"][0]
}

func localUploadService(dir string) *UploadService {
	return &UploadService{
		client:   &http.Client{Timeout: time.Second},
		localDir: dir,
	}
}

func TestUploadRejectsUnknownKind(t *testing.T) {
	svc := localUploadService(t.TempDir())
	file := makeFileHeader(t, "photo.jpg", "image/jpeg", "fake-jpeg-bytes")

	_, err := svc.Upload(file, models.ImageKind("banner"))
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	_, err = svc.Upload(file, "")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for missing kind, got %v", err)
	}
}

func TestUploadRejectsNonImage(t *testing.T) {
	svc := localUploadService(t.TempDir())
	file := makeFileHeader(t, "notes.txt", "text/plain", "hello")

	_, err := svc.Upload(file, models.ImageKindAvatar)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUploadStoresLocally(t *testing.T) {
	dir := t.TempDir()
	svc := localUploadService(dir)
	file := makeFileHeader(t, "photo.JPG", "image/jpeg", "fake-jpeg-bytes")

	result, err := svc.Upload(file, models.ImageKindProjectBefore)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if result.Type != models.ImageKindProjectBefore {
		t.Fatalf("unexpected kind: %q", result.Type)
	}
	if !strings.Contains(result.URL, "projects/before") {
		t.Fatalf("expected per-kind folder in URL, got %q", result.URL)
	}
	if !strings.HasSuffix(result.URL, ".jpg") {
		t.Fatalf("expected lowercased extension, got %q", result.URL)
	}

	stored := filepath.Join(dir, "projects", "before")
	entries, err := os.ReadDir(stored)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected 1 stored file in %s: %v", stored, err)
	}
	content, _ := os.ReadFile(filepath.Join(stored, entries[0].Name()))
	if string(content) != "fake-jpeg-bytes" {
		t.Fatalf("stored content mismatch: %q", content)
	}
}
