package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"photo-drop/config"
	"photo-drop/internal/model"
	"photo-drop/internal/util"
	"sync"
	"time"
)

type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

func (r *CacheRepository) SetManifest(ctx context.Context, manifest *model.ExportManifest) error {
	data, err := json.Marshal(manifest)
	if err != nil {
		return util.LogError("[CacheRepo] ошибка сериализации манифеста", err)
	}

	cmd := r.client.Client.Set(ctx, r.key(manifest.ID), data, r.ttl)
	if err = cmd.Err(); err != nil {
		return util.LogError("[CacheRepo] ошибка сохранения в Redis", err)
	}
	if cmd.Val() != "OK" {
		return fmt.Errorf("неожиданный ответ Redis: %s", cmd.Val())
	}

	return nil
}

func (r *CacheRepository) GetManifest(ctx context.Context, id string) (*model.ExportManifest, error) {
	val, err := r.client.Client.Get(ctx, r.key(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("[CacheRepo] ошибка получения манифеста из Redis", err)
	}

	var manifest model.ExportManifest
	if err := json.Unmarshal([]byte(val), &manifest); err != nil {
		return nil, util.LogError("[CacheRepo] ошибка десериализации манифеста", err)
	}
	return &manifest, nil
}

func (r *CacheRepository) DeleteManifest(ctx context.Context, id string) error {
	if err := r.client.Client.Del(ctx, r.key(id)).Err(); err != nil {
		return util.LogError("[CacheRepo] ошибка удаления манифеста из Redis", err)
	}
	return nil
}

func (r *CacheRepository) key(id string) string {
	return fmt.Sprintf("export:%s", id)
}

// MemoryCacheRepository : кэш манифестов в памяти процесса, когда Redis не настроен
type MemoryCacheRepository struct {
	mu        sync.Mutex
	ttl       time.Duration
	now       func() time.Time
	manifests map[string]memoryEntry
}

type memoryEntry struct {
	manifest  model.ExportManifest
	expiresAt time.Time
}

func NewMemoryCacheRepository(ttl time.Duration) *MemoryCacheRepository {
	return &MemoryCacheRepository{
		ttl:       ttl,
		now:       time.Now,
		manifests: make(map[string]memoryEntry),
	}
}

func (r *MemoryCacheRepository) SetManifest(ctx context.Context, manifest *model.ExportManifest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.manifests[manifest.ID] = memoryEntry{manifest: *manifest, expiresAt: r.now().Add(r.ttl)}
	return nil
}

func (r *MemoryCacheRepository) GetManifest(ctx context.Context, id string) (*model.ExportManifest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.manifests[id]
	if !ok {
		return nil, nil
	}
	if r.now().After(entry.expiresAt) {
		delete(r.manifests, id)
		return nil, nil
	}
	manifest := entry.manifest
	return &manifest, nil
}

func (r *MemoryCacheRepository) DeleteManifest(ctx context.Context, id string) error {
	r.mu.Lock()
	delete(r.manifests, id)
	r.mu.Unlock()
	return nil
}
