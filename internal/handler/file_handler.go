package handler

import (
	"net/http"
	"photo-drop/internal/util"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// ObjectReader : хранилище, которое умеет отдать байты объекта (симуляция)
type ObjectReader interface {
	Object(key string) ([]byte, bool)
}

type FileHandler struct {
	objects ObjectReader
}

func NewFileHandler(objects ObjectReader) *FileHandler {
	return &FileHandler{objects: objects}
}

// ServeFile godoc
// @Summary Файл из симулированного хранилища
// @Tags Files
// @Produce octet-stream
// @Param key path string true "Ключ объекта"
// @Success 200
// @Failure 404 {object} requestresponse.ErrorResponse
// @Router /files/{key} [get]
func (h *FileHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	content, ok := h.objects.Object(chi.URLParam(r, "*"))
	if !ok {
		util.HandleError(w, "файл не найден", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(content))
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}
