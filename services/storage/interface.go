package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService hosts user-uploaded images and hands back permanent URLs.
type StorageService interface {
	// UploadImage stores a local file under the given folder and returns
	// its hosted URL.
	UploadImage(ctx context.Context, localFilePath, folder string) (string, error)
	// DeleteImage removes a hosted file by its public id.
	DeleteImage(ctx context.Context, publicID string) error
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld *cloudinary.Cloudinary
}

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary) StorageService {
	return &StorageServiceImpl{cld: cld}
}
