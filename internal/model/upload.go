package model

import "time"

const UploadSourceWeb = "web"

type Upload struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	FileName    string    `json:"file_name"`
	FileSize    int64     `json:"file_size"`
	FileType    string    `json:"file_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
	GuestEmail  string    `json:"guest_email,omitempty"`
	GuestName   string    `json:"guest_name,omitempty"`
	StoragePath string    `json:"storage_path"`
	DownloadURL string    `json:"download_url,omitempty"`
	Source      string    `json:"source,omitempty"`
}

// FileDescriptor : файл-кандидат, пришедший от гостя
type FileDescriptor struct {
	Name    string
	Type    string
	Size    int64
	Content []byte
}

// StorageMetadata : то, что уходит во внешнее хранилище вместе с байтами файла
type StorageMetadata struct {
	EventID     string
	UploadID    string
	FileName    string
	ContentType string
	Size        int64
}

// StoredObject : ответ хранилища
type StoredObject struct {
	StoragePath string
	DownloadURL string
}

type ExportItem struct {
	UploadID    string `json:"upload_id"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
	FileType    string `json:"file_type"`
	StoragePath string `json:"storage_path"`
	DownloadURL string `json:"download_url"`
}

// ExportManifest : список файлов события, который забирает внешний упаковщик архива
type ExportManifest struct {
	ID        string       `json:"id"`
	EventID   string       `json:"event_id"`
	Format    string       `json:"format"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
	FileCount int          `json:"file_count"`
	TotalSize int64        `json:"total_size"`
	Items     []ExportItem `json:"items"`
}
