package ports

import (
	"context"
	"photo-drop/internal/model"
)

// ExportCache : Redis слой для манифестов экспорта
type ExportCache interface {
	SetManifest(ctx context.Context, manifest *model.ExportManifest) error
	GetManifest(ctx context.Context, id string) (*model.ExportManifest, error)
	DeleteManifest(ctx context.Context, id string) error
}
