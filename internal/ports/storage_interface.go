package ports

import (
	"context"
	"photo-drop/internal/model"
	"time"
)

// ObjectStorage : внешнее хранилище байтов файла (S3, MinIO или симуляция)
type ObjectStorage interface {
	Store(ctx context.Context, content []byte, meta model.StorageMetadata) (*model.StoredObject, error)
	PresignGet(ctx context.Context, key string, expire time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}
