package middleware_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"ats-api/config"
	"ats-api/internal/api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadRequest(t *testing.T, field, filename string, size int) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func setupUploadRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	cfg := config.UploadConfig{
		Dir:               dir,
		MaxBytes:          5_000_000,
		AllowedExtensions: []string{".pdf", ".doc", ".docx"},
	}
	router := gin.New()
	router.POST("/upload", middleware.ResumeUpload(cfg), func(c *gin.Context) {
		file, ok := middleware.UploadedResume(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"url": file.URL, "path": file.Path, "size": file.SizeBytes})
	})
	return router, dir
}

func TestResumeUpload_SizeBoundary(t *testing.T) {
	router, dir := setupUploadRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newUploadRequest(t, "resume", "cv.pdf", 5_000_000))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"url":"/uploads/`)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".pdf"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, newUploadRequest(t, "resume", "cv.pdf", 5_000_001))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "File too large")

	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestResumeUpload_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		filename string
		size     int
		wantBody string
	}{
		{name: "Executable regardless of size", field: "resume", filename: "cv.exe", size: 4_000, wantBody: "files are allowed"},
		{name: "No extension", field: "resume", filename: "cv", size: 10, wantBody: "files are allowed"},
		{name: "Wrong field", field: "file", filename: "cv.pdf", size: 10, wantBody: "Resume file is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, dir := setupUploadRouter(t)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, newUploadRequest(t, tt.field, tt.filename, tt.size))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestResumeUpload_ExtensionIsCaseInsensitive(t *testing.T) {
	router, _ := setupUploadRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, newUploadRequest(t, "resume", "CV.DOCX", 100))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `.docx"`)
}
