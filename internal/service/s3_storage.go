package service

import (
	"bytes"
	"context"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"log"
	"photo-drop/config"
	"photo-drop/internal/model"
	"photo-drop/internal/util"
	"time"
)

type S3Storage struct {
	client     *s3.Client
	bucket     string
	psClient   *s3.PresignClient
	presignTTL time.Duration
}

func NewS3Storage(ctx context.Context, cfg *config.S3Config, presignTTL time.Duration) (*S3Storage, error) {
	var client *s3.Client

	if cfg.Local {
		client = s3.New(s3.Options{
			Region: cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			),
			BaseEndpoint: aws.String(cfg.Endpoint),
			UsePathStyle: true,
		})

		if err := createBucketIfNotExists(ctx, client, cfg.Bucket); err != nil {
			return nil, util.LogError("[S3Storage] ошибка создания бакета", err)
		}
	} else {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, util.LogError("[S3Storage] ошибка загрузки AWS config", err)
		}
		client = s3.NewFromConfig(awsCfg)
	}

	return &S3Storage{
		client:     client,
		psClient:   s3.NewPresignClient(client),
		bucket:     cfg.Bucket,
		presignTTL: presignTTL,
	}, nil
}

// createBucketIfNotExists создает бакет если он не существует
func createBucketIfNotExists(ctx context.Context, client *s3.Client, bucket string) error {
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})

	if err == nil {
		return nil // Бакет уже существует
	}

	_, err = client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})

	if err != nil {
		return util.LogError("[S3Storage] ошибка создания бакета", err)
	}

	log.Printf("[S3Storage] бакет %s успешно создан", bucket)
	return nil
}

// Store : кладёт файл в бакет и возвращает путь и pre-signed GET URL
func (s *S3Storage) Store(ctx context.Context, content []byte, meta model.StorageMetadata) (*model.StoredObject, error) {
	key := objectKey(meta)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(content),
		ContentType:   aws.String(meta.ContentType),
		ContentLength: aws.Int64(int64(len(content))),
	})
	if err != nil {
		return nil, util.LogError("[S3Storage] не удалось загрузить объект", err)
	}

	url, err := s.PresignGet(ctx, key, s.presignTTL)
	if err != nil {
		return nil, err
	}

	return &model.StoredObject{StoragePath: key, DownloadURL: url}, nil
}

// PresignGet : генерация pre-signed URL для GET
func (s *S3Storage) PresignGet(ctx context.Context, key string, expire time.Duration) (string, error) {
	req, err := s.psClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = expire
	})
	if err != nil {
		return "", util.LogError("[S3Storage] не удалось сгенерировать presigned GET URL", err)
	}

	return req.URL, nil
}

// Delete : удаление объекта
func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return util.LogError("[S3Storage] не удалось удалить объект", err)
	}
	return nil
}

// objectKey : events/<eventID>/<uploadID>-<fileName>
func objectKey(meta model.StorageMetadata) string {
	return fmt.Sprintf("events/%s/%s-%s", meta.EventID, meta.UploadID, meta.FileName)
}
