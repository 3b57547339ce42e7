package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ats-api/config"
	_ "ats-api/docs"
	"ats-api/internal/app"
	"ats-api/internal/auth"
	"ats-api/internal/server"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()
	cfg := &config.Config{
		App:    config.AppConfig{Environment: "test"},
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 0},
		JWT:    config.JWTConfig{Secret: "server-test-secret", Expiration: auth.DefaultTokenTTL},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Upload: config.UploadConfig{Dir: t.TempDir(), MaxBytes: 5_000_000, AllowedExtensions: []string{".pdf"}},
	}
	application, err := app.New(cfg, nil, nil)
	require.NoError(t, err)
	return server.NewServer(application)
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestServer_CORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name       string
		origin     string
		wantAllow  string
		wantStatus int
	}{
		{"allowed origin", "http://localhost:3000", "http://localhost:3000", http.StatusNoContent},
		{"unknown origin", "http://evil.example", "", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/jobs", nil)
			req.Header.Set("Origin", tt.origin)
			req.Header.Set("Access-Control-Request-Method", http.MethodGet)
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantAllow, w.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestServer_ProtectedRouteWithoutToken(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Authorization header required"}`, w.Body.String())
}

func TestServer_SwaggerDoc(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"title": "ATS API"`)
	assert.Contains(t, w.Body.String(), `"/applications/{appId}/status"`)
}
