package service

import (
	"context"
	"fmt"
	"log"
	"photo-drop/internal/model"
	"photo-drop/internal/ports"
	"photo-drop/internal/util"
	"time"
)

const exportFormatZip = "zip"

type ExportService struct {
	store      ports.EventStore
	storage    ports.ObjectStorage
	cache      ports.ExportCache
	exportTTL  time.Duration
	presignTTL time.Duration
	now        func() time.Time
}

func NewExportService(store ports.EventStore, storage ports.ObjectStorage, cache ports.ExportCache, exportTTL, presignTTL time.Duration) *ExportService {
	return &ExportService{
		store:      store,
		storage:    storage,
		cache:      cache,
		exportTTL:  exportTTL,
		presignTTL: presignTTL,
		now:        time.Now,
	}
}

// Export : собирает манифест из загрузок события со свежими ссылками и увеличивает счётчик скачиваний.
// Упаковку в архив делает внешний потребитель манифеста.
func (s *ExportService) Export(ctx context.Context, eventID string) (*model.ExportManifest, error) {
	event, err := s.store.EventByID(eventID)
	if err != nil {
		return nil, util.LogError("[ExportService] событие не найдено", err)
	}

	uploads := s.store.UploadsForEvent(event.ID)
	now := s.now()

	manifest := &model.ExportManifest{
		ID:        util.GenerateID(),
		EventID:   event.ID,
		Format:    exportFormatZip,
		CreatedAt: now,
		ExpiresAt: now.Add(s.exportTTL),
		Items:     make([]model.ExportItem, 0, len(uploads)),
	}

	for _, upload := range uploads {
		url := upload.DownloadURL
		if s.storage != nil {
			url, err = s.storage.PresignGet(ctx, upload.StoragePath, s.presignTTL)
			if err != nil {
				return nil, util.LogError("[ExportService] не удалось подписать ссылку для "+upload.FileName,
					fmt.Errorf("%w: %v", model.ErrStorage, err))
			}
		}

		manifest.Items = append(manifest.Items, model.ExportItem{
			UploadID:    upload.ID,
			FileName:    upload.FileName,
			FileSize:    upload.FileSize,
			FileType:    upload.FileType,
			StoragePath: upload.StoragePath,
			DownloadURL: url,
		})
		manifest.FileCount++
		manifest.TotalSize += upload.FileSize
	}

	if err := s.cache.SetManifest(ctx, manifest); err != nil {
		return nil, util.LogError("[ExportService] не удалось сохранить манифест", err)
	}

	count, err := s.store.IncrementDownloads(event.ID)
	if err != nil {
		return nil, util.LogError("[ExportService] не удалось обновить счётчик скачиваний", err)
	}

	log.Printf("[ExportService] манифест %s для события %s: файлов %d, скачиваний %d",
		manifest.ID, event.ID, manifest.FileCount, count)
	return manifest, nil
}

// GetManifest : манифест из кэша, после истечения TTL возвращается ErrNotFound
func (s *ExportService) GetManifest(ctx context.Context, id string) (*model.ExportManifest, error) {
	manifest, err := s.cache.GetManifest(ctx, id)
	if err != nil {
		return nil, util.LogError("[ExportService] ошибка чтения манифеста", err)
	}
	if manifest == nil {
		return nil, fmt.Errorf("%w: манифест %s", model.ErrNotFound, id)
	}
	return manifest, nil
}

// RevokeManifest : удаляет манифест до истечения TTL
func (s *ExportService) RevokeManifest(ctx context.Context, id string) error {
	if err := s.cache.DeleteManifest(ctx, id); err != nil {
		return util.LogError("[ExportService] не удалось удалить манифест", err)
	}
	return nil
}
