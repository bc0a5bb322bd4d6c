package middleware_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"humancapital-api/internal/delivery/http/middleware"
	"humancapital-api/internal/delivery/http/response"
	"humancapital-api/internal/domain"
	"humancapital-api/pkg/apperror"
	"humancapital-api/pkg/auth"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func do(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func identityRouter(tokens middleware.TokenParser, chain ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append(chain, func(c *gin.Context) {
		identity := middleware.OptionalIdentity(c)
		c.JSON(http.StatusOK, gin.H{"identity": identity})
	})
	r.GET("/t", handlers...)
	return r
}

func TestAuthenticate(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour, "test")
	r := identityRouter(tm, middleware.Authenticate(tm))

	t.Run("Missing token", func(t *testing.T) {
		w := do(r, httptest.NewRequest(http.MethodGet, "/t", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Authorization token required", decode(t, w).Message)
	})

	t.Run("Invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/t", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := do(r, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid or expired token", decode(t, w).Message)
	})

	t.Run("Token from another secret", func(t *testing.T) {
		other, _ := auth.NewTokenManager("other", time.Hour, "test").Issue("u1", "a@b.c", domain.RoleCandidate)
		req := httptest.NewRequest(http.MethodGet, "/t", nil)
		req.Header.Set("Authorization", "Bearer "+other)
		assert.Equal(t, http.StatusUnauthorized, do(r, req).Code)
	})

	t.Run("Valid token", func(t *testing.T) {
		token, err := tm.Issue("u1", "a@b.c", domain.RoleCandidate)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/t", nil)
		req.Header.Set("Authorization", "bearer "+token)
		w := do(r, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"UserID":"u1"`)
	})
}

func TestAuthorize(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour, "test")
	r := identityRouter(tm, middleware.Authenticate(tm), middleware.Authorize(domain.RoleCompany))

	token, _ := tm.Issue("u1", "a@b.c", domain.RoleCandidate)
	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := do(r, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Access denied", decode(t, w).Message)

	token, _ = tm.Issue("u2", "co@b.c", domain.RoleCompany)
	req = httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	assert.Equal(t, http.StatusOK, do(r, req).Code)
}

func TestOptionalAuth(t *testing.T) {
	tm := auth.NewTokenManager("secret", time.Hour, "test")
	r := identityRouter(tm, middleware.OptionalAuth(tm))

	w := do(r, httptest.NewRequest(http.MethodGet, "/t", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"identity":null}`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = do(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"identity":null}`, w.Body.String())
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.ErrorHandler())
	r.GET("/app", func(c *gin.Context) { _ = c.Error(apperror.NotFound("Job not found")) })
	r.GET("/domain", func(c *gin.Context) { _ = c.Error(fmt.Errorf("get: %w", domain.ErrNotFound)) })
	r.GET("/raw", func(c *gin.Context) { _ = c.Error(errors.New("pq: connection reset")) })

	w := do(r, httptest.NewRequest(http.MethodGet, "/app", nil))
	body := decode(t, w)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Job not found", body.Message)
	assert.NotEmpty(t, body.RequestID)
	assert.Equal(t, body.RequestID, w.Header().Get(middleware.RequestIDHeader))

	assert.Equal(t, http.StatusNotFound, do(r, httptest.NewRequest(http.MethodGet, "/domain", nil)).Code)

	w = do(r, httptest.NewRequest(http.MethodGet, "/raw", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "An unexpected error occurred. Please try again later.", decode(t, w).Message)
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestRequestIDReusesValidHeader(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/t", func(c *gin.Context) { c.String(http.StatusOK, response.RequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set(middleware.RequestIDHeader, "0b0c7a6e-6f0e-4f52-9a39-8f4a8c2f1b11")
	assert.Equal(t, "0b0c7a6e-6f0e-4f52-9a39-8f4a8c2f1b11", do(r, req).Body.String())

	req = httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set(middleware.RequestIDHeader, "<script>")
	assert.NotEqual(t, "<script>", do(r, req).Body.String())
}

func TestRateLimitInMemory(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		Limit:     2,
		Window:    time.Minute,
		KeyPrefix: "test:",
		Client:    func() *goredis.Client { return nil },
	}))
	r.GET("/t", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := do(r, httptest.NewRequest(http.MethodGet, "/t", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := do(r, httptest.NewRequest(http.MethodGet, "/t", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	// other clients have their own counter
	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.RemoteAddr = "10.0.0.9:1234"
	assert.Equal(t, http.StatusOK, do(r, req).Code)
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORSMiddleware([]string{"https://humancapital.az/"}, true))
	r.GET("/t", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/t", nil)
	req.Header.Set("Origin", "https://humancapital.az")
	w := do(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://humancapital.az", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/t", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	assert.Equal(t, http.StatusForbidden, do(r, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = do(r, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SecurityHeadersMiddleware(true))
	r.GET("/t", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/t", nil)
	req.Header.Set("Authorization", "Bearer x")
	w := do(r, req)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
}
