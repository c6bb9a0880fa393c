package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"photo-drop/internal/model"
	"photo-drop/internal/util"
	"strings"
)

// writeServiceError : переводит ошибку сервиса в HTTP статус
func writeServiceError(w http.ResponseWriter, err error) {
	log.Println(err)

	switch {
	case errors.Is(err, model.ErrNotFound):
		util.HandleError(w, model.ErrNotFound.Error(), http.StatusNotFound)
	case errors.Is(err, model.ErrValidation):
		util.HandleError(w, publicMessage(err, model.ErrValidation), http.StatusBadRequest)
	case errors.Is(err, model.ErrInvalidWindow),
		errors.Is(err, model.ErrUnknownConsent),
		errors.Is(err, model.ErrNoCurrentEvent),
		errors.Is(err, model.ErrForeignUpload):
		util.HandleError(w, publicMessage(err, nil), http.StatusBadRequest)
	case errors.Is(err, model.ErrDuplicateEvent):
		util.HandleError(w, model.ErrDuplicateEvent.Error(), http.StatusConflict)
	case errors.Is(err, model.ErrStorage):
		util.HandleError(w, model.ErrStorage.Error(), http.StatusBadGateway)
	default:
		util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}

// publicMessage : отрезает от текста ошибки внутренние префиксы сервисов
func publicMessage(err error, sentinel error) string {
	message := err.Error()
	for _, known := range []error{sentinel, model.ErrInvalidWindow, model.ErrUnknownConsent, model.ErrNoCurrentEvent,
		model.ErrForeignUpload} {
		if known == nil {
			continue
		}
		if idx := strings.Index(message, known.Error()); idx >= 0 {
			return message[idx:]
		}
	}
	return message
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		util.HandleError(w, "invalid request body", http.StatusBadRequest)
		return err
	}
	return nil
}
