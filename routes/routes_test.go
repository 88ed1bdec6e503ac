// routes_test.go - Tests for route setup, gating and CORS

package routes

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"go-shop-admin/config"
	"go-shop-admin/database"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		DBDriver:    config.DriverSQLite,
		DBPath:      filepath.Join(t.TempDir(), "test.db"),
		FrontendURL: "http://localhost:3000",
		LogLevel:    "error",
		JWTSecret:   "test-secret",
		JWTExpiry:   time.Hour,
	}
	db, err := database.Connect(cfg)
	require.NoError(t, err)

	router := gin.New()
	Setup(router, db, cfg, slog.New(slog.DiscardHandler))
	return router
}

func TestSetupRegistersRoutes(t *testing.T) {
	router := setupRouter(t)

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /health",
		"POST /auth/register",
		"POST /auth/login",
		"GET /products",
		"GET /products/:id",
		"GET /admin/products",
		"POST /admin/products",
		"GET /admin/products/trashed",
		"GET /admin/products/:id",
		"PUT /admin/products/:id",
		"PATCH /admin/products/:id",
		"DELETE /admin/products/:id",
		"POST /admin/products/:id/restore",
		"DELETE /admin/products/:id/force",
		"GET /admin/reviews",
		"POST /admin/reviews",
		"GET /admin/reviews/trashed",
		"GET /admin/reviews/:id",
		"PUT /admin/reviews/:id",
		"PATCH /admin/reviews/:id",
		"DELETE /admin/reviews/:id",
		"POST /admin/reviews/:id/restore",
		"DELETE /admin/reviews/:id/force",
		"GET /admin/users",
		"POST /admin/users",
		"GET /admin/users/:id",
		"PUT /admin/users/:id",
		"PATCH /admin/users/:id",
		"DELETE /admin/users/:id",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
	assert.False(t, registered["GET /admin/users/trashed"])
}

func TestEveryAdminRouteIsGated(t *testing.T) {
	router := setupRouter(t)

	for _, r := range router.Routes() {
		if len(r.Path) < 7 || r.Path[:7] != "/admin/" {
			continue
		}
		req := httptest.NewRequest(r.Method, r.Path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", r.Method, r.Path)
	}
}

func TestCORSPreflight(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/admin/products", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/admin/products", nil)
	req.Header.Set("Origin", "http://evil.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDHeader(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
	assert.NoError(t, err)

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", id)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, id, w.Header().Get("X-Request-ID"))
}
