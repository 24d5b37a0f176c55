package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/billforge/billforge-api/internal/domain/entity"
	infraRepo "github.com/billforge/billforge-api/internal/infrastructure/repository"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupIdempotencyRouter(t *testing.T, handler gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.IdempotencyKey{}))

	userID := uuid.New()
	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("user_id", userID) })
	router.Use(Idempotency(IdempotencyConfig{Repo: infraRepo.NewIdempotencyRepository(db)}))
	router.POST("/invoices", handler)
	return router
}

func postWithKey(router *gin.Engine, key string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/invoices", nil)
	req.Header.Set(IdempotencyKeyHeader, key)
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotencyReplaysSuccessfulResponse(t *testing.T) {
	calls := 0
	router := setupIdempotencyRouter(t, func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"call": calls})
	})

	first := postWithKey(router, "double-click")
	assert.Equal(t, http.StatusCreated, first.Code)

	second := postWithKey(router, "double-click")
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, calls)
}

func TestIdempotencyRetriesAfterFailure(t *testing.T) {
	calls := 0
	router := setupIdempotencyRouter(t, func(c *gin.Context) {
		calls++
		if calls == 1 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "database unavailable"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"call": calls})
	})

	first := postWithKey(router, "retry-me")
	assert.Equal(t, http.StatusInternalServerError, first.Code)

	// The failure is not cached, so the same key reaches the handler again.
	second := postWithKey(router, "retry-me")
	assert.Equal(t, http.StatusCreated, second.Code)
	assert.Empty(t, second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, 2, calls)
}

func TestIdempotencyIgnoresRequestsWithoutKey(t *testing.T) {
	calls := 0
	router := setupIdempotencyRouter(t, func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"call": calls})
	})

	for range [2]struct{}{} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/invoices", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)
	}
	assert.Equal(t, 2, calls)
}
