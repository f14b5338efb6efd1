package http

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/peopledesk-backend/internal/pkg/storage"
	"github.com/peopledesk/peopledesk-backend/internal/service/file"
)

func TestServeUpload(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	fileService := file.NewFileService(store)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	url, err := fileService.UploadProfilePhoto(context.Background(), "emp-1", bytes.NewReader(buf.Bytes()), "avatar.png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/photos/emp-1/profile.png", url)

	r := chi.NewRouter()
	r.Get("/uploads/*", NewFileHandler(fileService).ServeUpload)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/photos/emp-1/profile.png", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, buf.Bytes(), rec.Body.Bytes())

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/photos/emp-1/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
