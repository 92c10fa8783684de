package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jewelfoundation/admin-api/config"
	"github.com/jewelfoundation/admin-api/dto"
	"github.com/jewelfoundation/admin-api/models"
)

// MaxUploadSize caps uploaded image files at 5MB, matching the admin forms.
const MaxUploadSize = 5 << 20

// uploadFolders routes each image kind to its folder on the image host.
var uploadFolders = map[models.ImageKind]string{
	models.ImageKindAvatar:        "avatars",
	models.ImageKindProjectBefore: "projects/before",
	models.ImageKindProjectAfter:  "projects/after",
	models.ImageKindPartner:       "partners",
}

// UploadService proxies image files to the configured image host. Without
// IMAGE_HOST_URL it stores files under a local uploads directory instead so
// development works offline.
type UploadService struct {
	client   *http.Client
	hostURL  string
	preset   string
	localDir string
}

// NewUploadService creates an upload service from the environment
func NewUploadService() *UploadService {
	return &UploadService{
		client:   &http.Client{Timeout: 30 * time.Second},
		hostURL:  config.GetEnv("IMAGE_HOST_URL", ""),
		preset:   config.GetEnv("IMAGE_HOST_PRESET", ""),
		localDir: config.GetEnv("UPLOAD_DIR", "uploads"),
	}
}

// Upload validates the file and kind, then forwards the image and returns
// its hosted URL.
func (s *UploadService) Upload(fileHeader *multipart.FileHeader, kind models.ImageKind) (dto.UploadResponse, error) {
	folder, ok := uploadFolders[kind]
	if !ok {
		return dto.UploadResponse{}, fmt.Errorf("%w: invalid or missing image type %q", ErrValidation, kind)
	}
	if fileHeader.Size > MaxUploadSize {
		return dto.UploadResponse{}, fmt.Errorf("%w: file exceeds %d bytes", ErrValidation, MaxUploadSize)
	}
	mime := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(mime, "image/") {
		return dto.UploadResponse{}, fmt.Errorf("%w: invalid file type %q", ErrValidation, mime)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return dto.UploadResponse{}, err
	}
	defer file.Close()

	publicID := uuid.NewString()

	var url string
	if s.hostURL == "" {
		url, err = s.storeLocal(file, folder, publicID, fileHeader.Filename)
	} else {
		url, err = s.forward(file, folder, publicID, fileHeader.Filename, mime)
	}
	if err != nil {
		return dto.UploadResponse{}, err
	}

	return dto.UploadResponse{URL: url, Type: kind}, nil
}

// storeLocal writes the file under the uploads directory and returns a
// path-style URL served by the API itself.
func (s *UploadService) storeLocal(file io.Reader, folder, publicID, filename string) (string, error) {
	dir := filepath.Join(s.localDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := publicID + strings.ToLower(filepath.Ext(filename))
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}

	return "/" + filepath.ToSlash(filepath.Join(s.localDir, folder, name)), nil
}

// forward streams the file to the image host's unsigned upload endpoint and
// returns the hosted URL it reports.
func (s *UploadService) forward(file io.Reader, folder, publicID, filename, mime string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	_ = writer.WriteField("upload_preset", s.preset)
	_ = writer.WriteField("folder", folder)
	_ = writer.WriteField("public_id", publicID)
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.hostURL, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("image host returned %d: %s", resp.StatusCode, msg)
	}

	var result struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.SecureURL != "" {
		return result.SecureURL, nil
	}
	return result.URL, nil
}
