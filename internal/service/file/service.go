package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hexahash/attendance-portal-go/internal/pkg/storage"
)

type FileService interface {
	// UploadSelfie stores a punch selfie and returns its storage path.
	UploadSelfie(ctx context.Context, employeeID string, date time.Time, file io.Reader, filename string) (string, error)

	// UploadPhoto stores an employee profile photo.
	UploadPhoto(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error)

	// UploadCompanyLogo stores the company logo.
	UploadCompanyLogo(ctx context.Context, file io.Reader, filename string) (string, error)

	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

var allowedImageExts = []string{".jpg", ".jpeg", ".png"}

func validateImageExt(filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range allowedImageExts {
		if ext == allowed {
			return ext, nil
		}
	}
	return "", fmt.Errorf("invalid file type %s: only jpg, jpeg, png allowed", ext)
}

func contentTypeForExt(ext string) string {
	if ext == ".png" {
		return "image/png"
	}
	return "image/jpeg"
}

func (s *fileServiceImpl) UploadSelfie(ctx context.Context, employeeID string, date time.Time, file io.Reader, filename string) (string, error) {
	ext, err := validateImageExt(filename)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("selfies/%s/%s/%s%s",
		employeeID, date.Format("2006-01-02"), uuid.New().String(), ext)

	storedPath, err := s.storage.Upload(ctx, file, path, contentTypeForExt(ext))
	if err != nil {
		return "", fmt.Errorf("failed to upload selfie: %w", err)
	}

	return storedPath, nil
}

func (s *fileServiceImpl) UploadPhoto(ctx context.Context, employeeID string, file io.Reader, filename string) (string, error) {
	ext, err := validateImageExt(filename)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("photos/%s/%s%s", employeeID, uuid.New().String(), ext)

	storedPath, err := s.storage.Upload(ctx, file, path, contentTypeForExt(ext))
	if err != nil {
		return "", fmt.Errorf("failed to upload photo: %w", err)
	}

	return storedPath, nil
}

func (s *fileServiceImpl) UploadCompanyLogo(ctx context.Context, file io.Reader, filename string) (string, error) {
	ext, err := validateImageExt(filename)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("company/logo-%s%s", uuid.New().String(), ext)

	storedPath, err := s.storage.Upload(ctx, file, path, contentTypeForExt(ext))
	if err != nil {
		return "", fmt.Errorf("failed to upload company logo: %w", err)
	}

	return storedPath, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}
