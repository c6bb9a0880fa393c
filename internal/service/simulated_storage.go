package service

import (
	"context"
	"fmt"
	"photo-drop/internal/model"
	"sync"
	"time"
)

// SimulatedStorage : хранилище без сети, держит байты в памяти и имитирует задержку передачи.
// Задержка прерывается по ctx, поэтому таймаут AdmissionService на неё действует.
type SimulatedStorage struct {
	delay   time.Duration
	baseURL string

	mu      sync.RWMutex
	objects map[string][]byte
}

func NewSimulatedStorage(delay time.Duration, baseURL string) *SimulatedStorage {
	return &SimulatedStorage{
		delay:   delay,
		baseURL: baseURL,
		objects: make(map[string][]byte),
	}
}

func (s *SimulatedStorage) Store(ctx context.Context, content []byte, meta model.StorageMetadata) (*model.StoredObject, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("[SimulatedStorage] передача %s прервана: %w", meta.FileName, ctx.Err())
		case <-timer.C:
		}
	}

	key := objectKey(meta)
	s.mu.Lock()
	s.objects[key] = append([]byte(nil), content...)
	s.mu.Unlock()

	return &model.StoredObject{StoragePath: key, DownloadURL: s.url(key)}, nil
}

func (s *SimulatedStorage) PresignGet(ctx context.Context, key string, expire time.Duration) (string, error) {
	s.mu.RLock()
	_, ok := s.objects[key]
	s.mu.RUnlock()

	if !ok {
		return "", fmt.Errorf("[SimulatedStorage] объект %s не найден", key)
	}
	return s.url(key), nil
}

func (s *SimulatedStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

// Object : содержимое объекта, для отдачи файла и тестов
func (s *SimulatedStorage) Object(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.objects[key]
	return content, ok
}

func (s *SimulatedStorage) url(key string) string {
	return s.baseURL + "/files/" + key
}
