package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/firm_enquiries_app/internal/middleware"
	"github.com/SscSPs/firm_enquiries_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "firm-enquiries"
)

func newRouter(buf *bytes.Buffer, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.Use(extra...)
	r.GET("/whoami", func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("handler reached")
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	return r
}

func TestStructuredLoggingMiddleware_SetsRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(&buf)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	requestID := w.Header().Get(middleware.RequestIDHeader)
	assert.NotEmpty(t, requestID)
	assert.Contains(t, buf.String(), `"request_id":"`+requestID+`"`)
	assert.Contains(t, buf.String(), "handler reached")
}

func TestStructuredLoggingMiddleware_KeepsIncomingRequestID(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(&buf)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
}

func TestAuthMiddleware(t *testing.T) {
	validToken, err := utils.IssueAccessToken("user-42", testSecret, testIssuer, time.Hour)
	require.NoError(t, err)
	expiredToken, err := utils.IssueAccessToken("user-42", testSecret, testIssuer, -time.Hour)
	require.NoError(t, err)
	foreignToken, err := utils.IssueAccessToken("user-42", testSecret, "someone-else", time.Hour)
	require.NoError(t, err)
	wrongKeyToken, err := utils.IssueAccessToken("user-42", "other-secret", testIssuer, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantError  string
	}{
		{name: "valid", header: "Bearer " + validToken, wantStatus: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + validToken, wantStatus: http.StatusOK},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized, wantError: "Authorization header required"},
		{name: "bad scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantError: "Authorization header format must be Bearer {token}"},
		{name: "expired", header: "Bearer " + expiredToken, wantStatus: http.StatusUnauthorized, wantError: "Token has expired"},
		{name: "wrong issuer", header: "Bearer " + foreignToken, wantStatus: http.StatusUnauthorized, wantError: "Invalid token"},
		{name: "wrong key", header: "Bearer " + wrongKeyToken, wantStatus: http.StatusUnauthorized, wantError: "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := newRouter(&buf, middleware.AuthMiddleware(testSecret, testIssuer))

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body["error"])
				return
			}
			assert.Equal(t, "user-42", body["userID"])
			assert.Contains(t, buf.String(), `"user_id":"user-42"`)
		})
	}
}

func TestRateLimit_MemoryStore(t *testing.T) {
	limiterInstance, closeFn, err := middleware.NewLimiter("2-M", "")
	require.NoError(t, err)
	defer func() { _ = closeFn() }()

	var buf bytes.Buffer
	r := newRouter(&buf, middleware.RateLimit(limiterInstance))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewLimiter_RejectsBadRate(t *testing.T) {
	_, _, err := middleware.NewLimiter("lots", "")
	assert.Error(t, err)
}
