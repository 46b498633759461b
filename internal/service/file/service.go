package file

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/stitchlabs/workshop-backend-go/internal/pkg/storage"
)

// FileService turns the base64 image payloads the legacy frontend sends into
// stored files with public URLs.
type FileService struct {
	storage storage.FileStorage
}

func NewFileService(fileStorage storage.FileStorage) *FileService {
	return &FileService{storage: fileStorage}
}

var extByContentType = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// SaveBase64Image decodes data (raw base64 or a data: URL) and stores it
// under kind/. Returns the public URL of the stored file.
func (s *FileService) SaveBase64Image(ctx context.Context, kind, data string) (string, error) {
	contentType := "image/png"
	payload := data

	// data:image/png;base64,AAAA...
	if strings.HasPrefix(data, "data:") {
		header, rest, found := strings.Cut(data, ",")
		if !found {
			return "", fmt.Errorf("malformed data URL")
		}
		payload = rest
		header = strings.TrimPrefix(header, "data:")
		if ct, _, ok := strings.Cut(header, ";"); ok && ct != "" {
			contentType = ct
		}
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("failed to decode image payload: %w", err)
	}

	ext, ok := extByContentType[contentType]
	if !ok {
		ext = "bin"
	}
	path := fmt.Sprintf("%s/%s.%s", kind, uuid.NewString(), ext)

	stored, err := s.storage.Upload(ctx, bytes.NewReader(raw), path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}

	return s.storage.GetURL(ctx, stored)
}

// Delete removes a previously stored file given its public URL. Unknown URLs
// are ignored so roster deletes never fail on a missing photo.
func (s *FileService) Delete(ctx context.Context, url string) error {
	idx := strings.Index(url, "/uploads/")
	if idx < 0 {
		return nil
	}
	return s.storage.Delete(ctx, url[idx+len("/uploads/"):])
}
