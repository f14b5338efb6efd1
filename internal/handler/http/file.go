package http

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/peopledesk/peopledesk-backend/internal/handler/http/response"
	"github.com/peopledesk/peopledesk-backend/internal/service/file"
)

type FileHandler interface {
	ServeUpload(w http.ResponseWriter, r *http.Request)
}

type fileHandlerImpl struct {
	fileService file.FileService
}

func NewFileHandler(fileService file.FileService) FileHandler {
	return &fileHandlerImpl{fileService: fileService}
}

// ServeUpload streams a stored file. Profile photo URLs handed out by the
// API resolve here.
func (h *fileHandlerImpl) ServeUpload(w http.ResponseWriter, r *http.Request) {
	path := chi.URLParam(r, "*")
	if path == "" {
		response.NotFound(w, "File not found")
		return
	}

	f, err := h.fileService.Download(r.Context(), path)
	if err != nil {
		response.NotFound(w, "File not found")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.InternalServerError(w, "Could not read the stored file")
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
