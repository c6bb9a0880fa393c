package service

import (
	"bytes"
	"context"
	"log"
	"photo-drop/config"
	"photo-drop/internal/model"
	"photo-drop/internal/util"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioStorage struct {
	client     *minio.Client
	bucket     string
	presignTTL time.Duration
}

func NewMinioStorage(ctx context.Context, cfg *config.MinioConfig, presignTTL time.Duration) (*MinioStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, util.LogError("[MinioStorage] не удалось подключиться к MinIO", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, util.LogError("[MinioStorage] не удалось проверить бакет", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, util.LogError("[MinioStorage] не удалось создать бакет", err)
		}
		log.Printf("[MinioStorage] бакет %s успешно создан", cfg.Bucket)
	}

	return &MinioStorage{client: client, bucket: cfg.Bucket, presignTTL: presignTTL}, nil
}

func (s *MinioStorage) Store(ctx context.Context, content []byte, meta model.StorageMetadata) (*model.StoredObject, error) {
	key := objectKey(meta)

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(content), int64(len(content)), minio.PutObjectOptions{
		ContentType: meta.ContentType,
	})
	if err != nil {
		return nil, util.LogError("[MinioStorage] не удалось загрузить объект", err)
	}

	url, err := s.PresignGet(ctx, key, s.presignTTL)
	if err != nil {
		return nil, err
	}

	return &model.StoredObject{StoragePath: key, DownloadURL: url}, nil
}

func (s *MinioStorage) PresignGet(ctx context.Context, key string, expire time.Duration) (string, error) {
	url, err := s.client.PresignedGetObject(ctx, s.bucket, key, expire, nil)
	if err != nil {
		return "", util.LogError("[MinioStorage] не удалось сгенерировать presigned GET URL", err)
	}
	return url.String(), nil
}

func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return util.LogError("[MinioStorage] не удалось удалить объект", err)
	}
	return nil
}
