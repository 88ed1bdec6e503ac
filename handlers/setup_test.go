// setup_test.go - Test helpers: router, database and fixtures

package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-shop-admin/auth"
	"go-shop-admin/config"
	"go-shop-admin/database"
	"go-shop-admin/models"
	"go-shop-admin/routes"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const testPassword = "password123"

// testApp is the full router backed by a fresh sqlite file.
type testApp struct {
	db     *gorm.DB
	router *gin.Engine
	tokens *auth.Tokens
}

func setupTestApp(t *testing.T) *testApp {
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
	routes.Setup(router, db, cfg, slog.New(slog.DiscardHandler))

	return &testApp{db: db, router: router, tokens: auth.NewTokens(cfg.JWTSecret, cfg.JWTExpiry)}
}

// createUser stores a user with testPassword and returns it with a token.
func (a *testApp) createUser(t *testing.T, email string, isAdmin bool) (*models.User, string) {
	t.Helper()
	hash, err := auth.HashPassword(testPassword)
	require.NoError(t, err)

	user := &models.User{Name: "User " + email, Email: email, Password: hash, IsAdmin: isAdmin}
	require.NoError(t, a.db.Create(user).Error)

	token, err := a.tokens.Issue(user.ID)
	require.NoError(t, err)
	return user, token
}

func (a *testApp) createProduct(t *testing.T, name string, price float64) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Price: price}
	require.NoError(t, a.db.Create(product).Error)
	return product
}

func (a *testApp) createReview(t *testing.T, userID, productID uint, rating int) *models.Review {
	t.Helper()
	review := &models.Review{UserID: userID, ProductID: productID, Rating: rating}
	require.NoError(t, a.db.Omit(clause.Associations).Create(review).Error)
	return review
}

// request sends body as JSON; a string body is sent verbatim.
func (a *testApp) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testApp) count(t *testing.T, model any, unscoped bool) int64 {
	t.Helper()
	tx := a.db.Model(model)
	if unscoped {
		tx = tx.Unscoped()
	}
	var n int64
	require.NoError(t, tx.Count(&n).Error)
	return n
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) []any {
	t.Helper()
	data, ok := decodeObject(t, w)["data"].([]any)
	require.True(t, ok, w.Body.String())
	return data
}
