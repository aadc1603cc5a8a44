// file: internals/helpers/oss/photo_service.go
package oss

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PhotoUploader dipakai controller visitor; mock tersedia untuk test.
type PhotoUploader interface {
	UploadVisitorPhoto(ctx context.Context, buildingID uuid.UUID, fh *multipart.FileHeader) (string, error)
}

/* =========================================================
 * Implementasi OSS
 * ========================================================= */

type PhotoService struct {
	OSS *OSSService
}

func NewPhotoServiceFromEnv() (*PhotoService, error) {
	svc, err := NewOSSServiceFromEnv()
	if err != nil {
		return nil, err
	}
	return &PhotoService{OSS: svc}, nil
}

// UploadVisitorPhoto: multipart → webp → OSS, key ber-scope gedung + timestamp.
// ctx diterima untuk kompat interface; SDK OSS v1 belum context-aware.
func (s *PhotoService) UploadVisitorPhoto(ctx context.Context, buildingID uuid.UUID, fh *multipart.FileHeader) (string, error) {
	all, err := readAllGuarded(fh)
	if err != nil {
		return "", err
	}

	data, err := ConvertToWebP(all, defaultWebPOptionsFromEnv())
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "format tidak didukung") {
			return "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Unsupported image format (pakai jpg/png/webp)")
		}
		return "", err
	}

	key := fmt.Sprintf("visitors/%s/%s-%s.webp",
		buildingID.String(),
		time.Now().Format("20060102-150405"),
		uuid.New().String(),
	)
	return s.OSS.putWebP(key, data)
}

/* =========================================================
 * Helpers multipart (dipakai controller)
 * ========================================================= */

func IsMultipart(c *fiber.Ctx) bool {
	ct := strings.ToLower(strings.TrimSpace(c.Get(fiber.HeaderContentType)))
	return strings.HasPrefix(ct, "multipart/form-data")
}

// TryGetImageFile: field "photo" opsional; nil kalau tidak ada
func TryGetImageFile(c *fiber.Ctx) (*multipart.FileHeader, error) {
	if !IsMultipart(c) {
		return nil, nil
	}
	fh, err := c.FormFile("photo")
	if err != nil {
		return nil, nil
	}
	return fh, nil
}

/* =========================================================
 * Mock untuk test
 * ========================================================= */

type MockPhotoService struct {
	LastBuildingID uuid.UUID
	LastFilename   string
	URL            string
	Err            error
}

func (m *MockPhotoService) UploadVisitorPhoto(ctx context.Context, buildingID uuid.UUID, fh *multipart.FileHeader) (string, error) {
	m.LastBuildingID = buildingID
	if fh != nil {
		m.LastFilename = fh.Filename
	}
	if m.Err != nil {
		return "", m.Err
	}
	if m.URL != "" {
		return m.URL, nil
	}
	return "https://cdn.example.com/visitors/mock.webp", nil
}
