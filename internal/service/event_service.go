package service

import (
	"context"
	"fmt"
	"log"
	"photo-drop/config"
	"photo-drop/internal/model"
	"photo-drop/internal/ports"
	"photo-drop/internal/util"
	"strings"
	"time"
)

const deadlineAfterEventWarning = "upload deadline is after the event date"

type EventService struct {
	store   ports.EventStore
	storage ports.ObjectStorage
	policy  config.UploadConfig
	now     func() time.Time
}

func NewEventService(store ports.EventStore, storage ports.ObjectStorage, policy config.UploadConfig) *EventService {
	return &EventService{
		store:   store,
		storage: storage,
		policy:  policy,
		now:     time.Now,
	}
}

// CreateEvent : проверяет форму, подставляет политику загрузки по умолчанию и делает событие текущим.
// Дедлайн позже даты события допустим, но возвращается предупреждение.
func (s *EventService) CreateEvent(ctx context.Context, input model.EventInput) (*model.Event, []string, error) {
	if err := validateEventInput(input); err != nil {
		return nil, nil, util.LogError("[EventService] некорректные данные события", err)
	}

	token, err := util.GenerateUniqueInviteToken(s.store.TokenExists)
	if err != nil {
		return nil, nil, util.LogError("[EventService] не удалось сгенерировать токен приглашения", err)
	}

	now := s.now()
	event := model.Event{
		ID:                util.GenerateEventID(),
		InviteToken:       token,
		Name:              strings.TrimSpace(input.Name),
		OwnerEmail:        strings.TrimSpace(input.OwnerEmail),
		Description:       strings.TrimSpace(input.Description),
		EventDate:         input.EventDate,
		UploadWindowStart: input.UploadWindowStart,
		UploadDeadline:    input.UploadDeadline,
		MaxFileSizeMB:     input.MaxFileSizeMB,
		AllowedFileTypes:  input.AllowedFileTypes,
		MaxFilesPerBatch:  input.MaxFilesPerBatch,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if event.MaxFileSizeMB == 0 {
		event.MaxFileSizeMB = s.policy.MaxFileSizeMB
	}
	if len(event.AllowedFileTypes) == 0 {
		event.AllowedFileTypes = append([]string(nil), s.policy.AllowedFileTypes...)
	}
	if event.MaxFilesPerBatch == 0 {
		event.MaxFilesPerBatch = s.policy.MaxFilesPerBatch
	}

	if err := s.store.AddEvent(event); err != nil {
		return nil, nil, util.LogError("[EventService] не удалось сохранить событие", err)
	}

	log.Printf("[EventService] создано событие %s (%s)", event.ID, event.Name)
	return &event, eventWarnings(event), nil
}

func validateEventInput(input model.EventInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return fmt.Errorf("%w: event name is required", model.ErrValidation)
	case strings.TrimSpace(input.OwnerEmail) == "":
		return fmt.Errorf("%w: owner email is required", model.ErrValidation)
	case !util.ValidateEmail(strings.TrimSpace(input.OwnerEmail)):
		return fmt.Errorf("%w: owner email is invalid", model.ErrValidation)
	case input.EventDate.IsZero():
		return fmt.Errorf("%w: event date is required", model.ErrValidation)
	case input.UploadWindowStart.IsZero():
		return fmt.Errorf("%w: upload window start is required", model.ErrValidation)
	case input.UploadDeadline.IsZero():
		return fmt.Errorf("%w: upload deadline is required", model.ErrValidation)
	case !input.UploadWindowStart.Before(input.UploadDeadline):
		return model.ErrInvalidWindow
	case input.MaxFileSizeMB < 0:
		return fmt.Errorf("%w: max file size must be positive", model.ErrValidation)
	case input.MaxFilesPerBatch < 0:
		return fmt.Errorf("%w: max files per batch must be positive", model.ErrValidation)
	case hasBlankType(input.AllowedFileTypes):
		return fmt.Errorf("%w: allowed file types must not be blank", model.ErrValidation)
	}
	return nil
}

func hasBlankType(types []string) bool {
	for _, t := range types {
		if strings.TrimSpace(t) == "" {
			return true
		}
	}
	return false
}

func eventWarnings(event model.Event) []string {
	warnings := []string{}
	if event.UploadDeadline.After(event.EventDate) {
		warnings = append(warnings, deadlineAfterEventWarning)
	}
	return warnings
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	event, err := s.store.EventByID(id)
	if err != nil {
		return nil, util.LogError("[EventService] событие не найдено", err)
	}
	return event, nil
}

func (s *EventService) ListEvents(ctx context.Context) []model.Event {
	return s.store.Events()
}

func (s *EventService) UpdateEvent(ctx context.Context, id string, patch model.EventPatch) (*model.Event, []string, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, nil, util.LogError("[EventService] некорректное обновление",
			fmt.Errorf("%w: event name is required", model.ErrValidation))
	}
	if patch.MaxFileSizeMB != nil && *patch.MaxFileSizeMB <= 0 {
		return nil, nil, util.LogError("[EventService] некорректное обновление",
			fmt.Errorf("%w: max file size must be positive", model.ErrValidation))
	}
	if patch.MaxFilesPerBatch != nil && *patch.MaxFilesPerBatch <= 0 {
		return nil, nil, util.LogError("[EventService] некорректное обновление",
			fmt.Errorf("%w: max files per batch must be positive", model.ErrValidation))
	}
	// пустой, но не nil список означает попытку очистить типы
	if patch.AllowedFileTypes != nil && (len(patch.AllowedFileTypes) == 0 || hasBlankType(patch.AllowedFileTypes)) {
		return nil, nil, util.LogError("[EventService] некорректное обновление",
			fmt.Errorf("%w: at least one allowed file type is required", model.ErrValidation))
	}

	event, err := s.store.UpdateEvent(id, patch, s.now())
	if err != nil {
		return nil, nil, util.LogError("[EventService] не удалось обновить событие", err)
	}
	return event, eventWarnings(*event), nil
}

// DeleteEvent : удаляет событие вместе с его загрузками, объектами в хранилище и гостевыми сессиями.
// Возвращает число удалённых загрузок.
func (s *EventService) DeleteEvent(ctx context.Context, id string) (int, error) {
	if err := s.store.DeleteEvent(id); err != nil {
		return 0, util.LogError("[EventService] не удалось удалить событие", err)
	}

	removed := s.store.RemoveUploadsForEvent(id)
	for _, upload := range removed {
		s.deleteObject(ctx, upload)
	}
	sessions := s.store.RemoveSessionsForEvent(id)

	log.Printf("[EventService] событие %s удалено: загрузок %d, сессий %d", id, len(removed), sessions)
	return len(removed), nil
}

func (s *EventService) SelectEvent(ctx context.Context, id string) (*model.Event, error) {
	if err := s.store.SetCurrentEvent(id); err != nil {
		return nil, util.LogError("[EventService] не удалось выбрать событие", err)
	}
	return s.store.EventByID(id)
}

func (s *EventService) CurrentEvent(ctx context.Context) (*model.Event, bool) {
	return s.store.CurrentEvent()
}

// ResolveEventByToken : событие по токену приглашения, иначе ErrNotFound
func (s *EventService) ResolveEventByToken(ctx context.Context, token string) (*model.Event, error) {
	event, err := s.store.EventByToken(token)
	if err != nil {
		return nil, util.LogError("[EventService] приглашение не найдено", err)
	}
	return event, nil
}

func (s *EventService) ListUploads(ctx context.Context, eventID string) ([]model.Upload, error) {
	if _, err := s.store.EventByID(eventID); err != nil {
		return nil, util.LogError("[EventService] событие не найдено", err)
	}
	return s.store.UploadsForEvent(eventID), nil
}

func (s *EventService) DeleteUpload(ctx context.Context, eventID string, uploadID string) error {
	upload, err := s.store.RemoveUpload(eventID, uploadID)
	if err != nil {
		return util.LogError("[EventService] не удалось удалить загрузку", err)
	}
	s.deleteObject(ctx, *upload)
	return nil
}

// deleteObject : ошибка хранилища только логируется, запись о загрузке уже удалена
func (s *EventService) deleteObject(ctx context.Context, upload model.Upload) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Delete(ctx, upload.StoragePath); err != nil {
		log.Printf("[EventService] объект %s не удалён из хранилища: %v", upload.StoragePath, err)
	}
}

func (s *EventService) Stats(ctx context.Context, eventID string) (*model.EventStats, error) {
	event, err := s.store.EventByID(eventID)
	if err != nil {
		return nil, util.LogError("[EventService] событие не найдено", err)
	}

	stats := &model.EventStats{
		EventID:        event.ID,
		DownloadsCount: event.DownloadsCount,
	}

	guests := make(map[string]struct{})
	for _, upload := range s.store.UploadsForEvent(eventID) {
		stats.TotalUploads++
		stats.TotalSize += upload.FileSize
		if upload.GuestEmail != "" {
			guests[strings.ToLower(upload.GuestEmail)] = struct{}{}
		}
		if stats.LastUploadAt == nil || upload.UploadedAt.After(*stats.LastUploadAt) {
			uploadedAt := upload.UploadedAt
			stats.LastUploadAt = &uploadedAt
		}
	}
	stats.UniqueGuests = len(guests)

	sessions := s.store.SessionsForEvent(eventID)
	stats.Sessions = len(sessions)
	if len(sessions) > 0 {
		granted := 0
		for _, guestSession := range sessions {
			if guestSession.Consent.IsGranted() {
				granted++
			}
		}
		stats.ConsentRate = float64(granted) / float64(len(sessions))
	}

	return stats, nil
}

// ClearStore : полный сброс процесса, объекты во внешнем хранилище не трогаются
func (s *EventService) ClearStore(ctx context.Context) {
	s.store.Clear()
	log.Println("[EventService] хранилище очищено")
}
