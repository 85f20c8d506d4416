package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/creasty/defaults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jewelhub/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	require.NoError(t, defaults.Set(cfg))
	dir := t.TempDir()
	cfg.DataFile = filepath.Join(dir, "data.json")
	cfg.SecurityLog = filepath.Join(dir, "security.log")
	cfg.SessionSecret = "test-secret"
	return cfg
}

func TestNewServesHealthAndHome(t *testing.T) {
	a, err := New(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(a.Close)

	w := httptest.NewRecorder()
	a.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	a.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "JewelHub")
}

func TestNewFailsOnUnreachableRedis(t *testing.T) {
	cfg := testConfig(t)
	cfg.RedisAddr = "127.0.0.1:1"

	_, err := New(cfg)
	assert.Error(t, err)
}
