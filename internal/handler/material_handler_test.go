package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/campus-hub-api/internal/repository"
	"github.com/campushub/campus-hub-api/internal/service"
	"github.com/campushub/campus-hub-api/pkg/storage"
)

func newMaterialRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	files, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	svc := service.NewMaterialService(repository.NewMaterialRepository(), files, nil, service.MaterialServiceConfig{
		MaxFileSizeBytes: 1 << 20,
	})
	h := NewMaterialHandler(svc)

	r := gin.New()
	r.GET("/api/materials", h.List)
	r.POST("/api/materials/upload", h.Upload)
	return r
}

func multipartUpload(t *testing.T, fields map[string]string, fileField, fileName, fileContent string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileField != "" {
		part, err := mw.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte(fileContent))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadRequiresFile(t *testing.T) {
	r := newMaterialRouter(t)

	body, contentType := multipartUpload(t, map[string]string{"title": "Notes"}, "", "", "")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/materials/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "file is required", resp["error"])
}

func TestUploadAndList(t *testing.T) {
	r := newMaterialRouter(t)

	body, contentType := multipartUpload(t, map[string]string{"title": "Algebra notes"}, "file", "notes.pdf", "pdf bytes")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/materials/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		OK    bool `json:"ok"`
		Entry struct {
			ID           string `json:"id"`
			Title        string `json:"title"`
			Filename     string `json:"filename"`
			OriginalName string `json:"originalName"`
		} `json:"entry"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Equal(t, "Algebra notes", resp.Entry.Title)
	assert.Equal(t, "notes.pdf", resp.Entry.OriginalName)
	assert.NotEmpty(t, resp.Entry.Filename)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/api/materials", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list []struct {
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Algebra notes", list[0].Title)
}

func TestUploadTitleDefaultsToFilename(t *testing.T) {
	r := newMaterialRouter(t)

	body, contentType := multipartUpload(t, nil, "file", "syllabus.txt", "hello")
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/api/materials/upload", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Entry struct {
			Title string `json:"title"`
		} `json:"entry"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "syllabus.txt", resp.Entry.Title)
}
