package middlewares

import (
	"net/http"
	"net/http/httptest"
	"serenia-service/internal/app/config"
	"serenia-service/internal/pkg/constvars"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRequestIDMiddleware(t *testing.T) {
	middlewares := &Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: &config.InternalConfig{},
	}

	t.Run("generates an id when the client sends none", func(t *testing.T) {
		var seenRequestID string
		var seenClientFlag bool
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			seenClientFlag, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/api/v1/questionnaires/PHQ9", nil)
		rr := httptest.NewRecorder()
		middlewares.RequestIDMiddleware(testHandler).ServeHTTP(rr, req)

		assert.True(t, strings.HasPrefix(seenRequestID, constvars.REQUEST_ID_PREFIX), "generated id should carry the service prefix")
		assert.False(t, seenClientFlag)
		assert.Equal(t, seenRequestID, rr.Header().Get(constvars.HeaderRequestID), "request id should be echoed back")
	})

	t.Run("keeps a client-supplied id", func(t *testing.T) {
		var seenRequestID string
		var seenClientFlag bool
		testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seenRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			seenClientFlag, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest("GET", "/api/v1/questionnaires/PHQ9", nil)
		req.Header.Set(constvars.HeaderRequestID, "client-id-42")
		rr := httptest.NewRecorder()
		middlewares.RequestIDMiddleware(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, "client-id-42", seenRequestID)
		assert.True(t, seenClientFlag)
	})
}

func TestErrorHandler(t *testing.T) {
	middlewares := &Middlewares{
		Log:            zap.NewNop(),
		InternalConfig: &config.InternalConfig{},
	}

	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest("GET", "/api/v1/submissions", nil)
	rr := httptest.NewRecorder()
	middlewares.ErrorHandler(panicking).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "\"success\":false")
}
