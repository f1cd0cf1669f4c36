package event

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Sriram31Mech/EventHubPro-1/internal/apperror"
)

// ===========================
// 🎯 Image Storage
// ===========================

const maxImageSize = 5 << 20 // 5 MiB

var allowedImageExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// ImageStore persists uploaded images and hands back the public URL that goes
// into the event row.
type ImageStore interface {
	Save(file *multipart.FileHeader) (string, error)
}

type diskImageStore struct {
	dir string
}

// NewDiskImageStore stores images under dir, served at /uploads/<name>.
func NewDiskImageStore(dir string) (ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &diskImageStore{dir: dir}, nil
}

func (s *diskImageStore) Save(file *multipart.FileHeader) (string, error) {
	if err := validateImage(file); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.NewString() + ext

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// validateImage enforces type and size before anything touches disk.
func validateImage(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	wantType, ok := allowedImageExts[ext]
	if !ok {
		return apperror.NewValidation(map[string]string{
			"image": "only jpeg, jpg and png images are allowed",
		})
	}
	if ct := file.Header.Get("Content-Type"); ct != "" && ct != wantType {
		return apperror.NewValidation(map[string]string{
			"image": "image content type does not match its extension",
		})
	}
	if file.Size > maxImageSize {
		return apperror.NewValidation(map[string]string{
			"image": "image must be at most 5MB",
		})
	}
	return nil
}
