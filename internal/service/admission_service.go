package service

import (
	"context"
	"fmt"
	"log"
	"photo-drop/config"
	"photo-drop/internal/model"
	"photo-drop/internal/ports"
	"photo-drop/internal/util"
	"time"
)

type AdmissionService struct {
	store          ports.EventStore
	storage        ports.ObjectStorage
	storageTimeout time.Duration
	now            func() time.Time
}

// NewAdmissionService : storage может быть nil, тогда загрузкам присваивается путь-заглушка
func NewAdmissionService(store ports.EventStore, storage ports.ObjectStorage, storageTimeout time.Duration) *AdmissionService {
	return &AdmissionService{
		store:          store,
		storage:        storage,
		storageTimeout: storageTimeout,
		now:            time.Now,
	}
}

// SubmitBatch : пропускает пачку файлов гостя через проверки и складывает принятые в хранилище.
// Ошибка возвращается только для неизвестного события или сессии, остальные исходы лежат в результате.
func (s *AdmissionService) SubmitBatch(ctx context.Context, eventID string, sessionID string, files []model.FileDescriptor) (*model.AdmissionResult, error) {
	event, err := s.store.EventByID(eventID)
	if err != nil {
		return nil, util.LogError("[AdmissionService] событие не найдено", err)
	}

	guestSession, err := s.store.Session(sessionID)
	if err != nil {
		return nil, util.LogError("[AdmissionService] сессия не найдена", err)
	}
	if guestSession.EventID != event.ID {
		return nil, util.LogError("[AdmissionService] сессия относится к другому событию",
			fmt.Errorf("%w: сессия %s", model.ErrNotFound, sessionID))
	}

	result := &model.AdmissionResult{
		Admitted: []model.Upload{},
		Errors:   []model.FileError{},
	}

	now := s.now()
	switch {
	case !guestSession.Consent.IsGranted():
		result.BatchError = model.BatchErrorConsentRequired
	case !util.IsUploadWindowOpen(event.UploadWindowStart, event.UploadDeadline, now):
		result.BatchError = model.BatchErrorWindowClosed
	case !event.IsActive:
		result.BatchError = model.BatchErrorEventInactive
	}
	if result.Blocked() {
		log.Printf("[AdmissionService] пачка для события %s отклонена: %s", event.ID, result.BatchError)
		return result, nil
	}

	if !guestSession.BeginBatch(now) {
		result.BatchError = model.BatchErrorInFlight
		log.Printf("[AdmissionService] у сессии %s уже есть пачка в работе", sessionID)
		return result, nil
	}
	defer func() {
		guestSession.EndBatch(result.AdmittedCount, s.now())
	}()

	limit := event.MaxFilesPerBatch
	if limit <= 0 {
		limit = config.DefaultMaxFilesPerBatch
	}
	if len(files) > limit {
		result.LimitError = fmt.Sprintf("too many files. Maximum %d files per upload, you selected %d", limit, len(files))
		result.Skipped = len(files) - limit
		files = files[:limit]
	}

	staged := make([]model.FileDescriptor, 0, len(files))
	for _, file := range files {
		validation := util.ValidateFile(file, event.AllowedFileTypes, event.MaxFileSizeMB)
		if !validation.Valid {
			result.Errors = append(result.Errors, model.FileError{
				FileName: file.Name,
				Reason:   validation.Error,
				Kind:     model.FileErrorValidation,
			})
			continue
		}
		staged = append(staged, file)
	}

	guestName, guestEmail := guestSession.Attribution()

	for _, file := range staged {
		upload, err := s.admit(ctx, event, file, guestName, guestEmail)
		if err != nil {
			result.Errors = append(result.Errors, model.FileError{
				FileName: file.Name,
				Reason:   err.Error(),
				Kind:     model.FileErrorStorage,
			})
			continue
		}
		result.Admitted = append(result.Admitted, *upload)
		result.AdmittedCount++
	}

	log.Printf("[AdmissionService] событие %s: принято %d, отклонено %d, пропущено %d",
		event.ID, result.AdmittedCount, len(result.Errors), result.Skipped)
	return result, nil
}

// admit : передаёт файл в хранилище и записывает загрузку в EventStore
func (s *AdmissionService) admit(ctx context.Context, event *model.Event, file model.FileDescriptor, guestName, guestEmail string) (*model.Upload, error) {
	uploadID := util.GenerateID()

	storagePath := fmt.Sprintf("/uploads/%s/%s", event.ID, file.Name)
	downloadURL := ""

	if s.storage != nil {
		storeCtx := ctx
		if s.storageTimeout > 0 {
			var cancel context.CancelFunc
			storeCtx, cancel = context.WithTimeout(ctx, s.storageTimeout)
			defer cancel()
		}

		stored, err := s.storage.Store(storeCtx, file.Content, model.StorageMetadata{
			EventID:     event.ID,
			UploadID:    uploadID,
			FileName:    file.Name,
			ContentType: file.Type,
			Size:        file.Size,
		})
		if err != nil {
			log.Printf("[AdmissionService] ошибка хранилища для %s: %v", file.Name, err)
			return nil, fmt.Errorf("%w: %v", model.ErrStorage, err)
		}
		storagePath = stored.StoragePath
		downloadURL = stored.DownloadURL
	}

	upload := model.Upload{
		ID:          uploadID,
		EventID:     event.ID,
		FileName:    file.Name,
		FileSize:    file.Size,
		FileType:    file.Type,
		UploadedAt:  s.now(),
		GuestEmail:  guestEmail,
		GuestName:   guestName,
		StoragePath: storagePath,
		DownloadURL: downloadURL,
		Source:      model.UploadSourceWeb,
	}

	if err := s.store.AddUpload(upload); err != nil {
		log.Printf("[AdmissionService] не удалось записать загрузку %s: %v", upload.ID, err)
		if s.storage != nil {
			if delErr := s.storage.Delete(ctx, storagePath); delErr != nil {
				log.Printf("[AdmissionService] объект %s остался в хранилище: %v", storagePath, delErr)
			}
		}
		return nil, fmt.Errorf("%w: upload could not be recorded", model.ErrStorage)
	}
	return &upload, nil
}
