package storage

import "context"

// StorageService stores room images and resolves their public URLs.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (publicID string, err error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, publicID string) (string, error)
}
