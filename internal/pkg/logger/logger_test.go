package logger_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitLogger(t *testing.T) {
	for _, env := range []string{"production", "development"} {
		t.Run(env, func(t *testing.T) {
			err := logger.InitLogger(&logger.LogConfig{Level: "debug", Environment: env, ServiceName: "storefront"})

			require.NoError(t, err)
			assert.NotNil(t, logger.GetLogger())
		})
	}
}

func TestFromContext(t *testing.T) {
	global := zap.NewNop()
	logger.SetLogger(global)

	assert.Same(t, global, logger.FromContext(context.Background()))

	scoped := zap.NewExample()
	ctx := logger.WithContext(context.Background(), scoped)
	assert.Same(t, scoped, logger.FromContext(ctx))
}

func TestMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger.SetLogger(zap.New(core))

	e := echo.New()
	e.Use(logger.Middleware())

	var (
		seenID      string
		ctxHasScope bool
	)
	e.GET("/ping", func(c echo.Context) error {
		seenID = logger.RequestID(c)
		ctxHasScope = logger.FromContext(c.Request().Context()) == logger.FromEcho(c)
		return c.String(http.StatusOK, "pong")
	})

	t.Run("should generate request id and log", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, seenID)
		assert.Equal(t, seenID, rec.Header().Get(logger.RequestIDHeader))
		assert.True(t, ctxHasScope)

		entries := logs.FilterMessage("HTTP Request").All()
		require.Len(t, entries, 1)
		assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
		assert.Equal(t, seenID, entries[0].ContextMap()["request_id"])
	})

	t.Run("should keep incoming request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(logger.RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(logger.RequestIDHeader))
		assert.Equal(t, "abc-123", seenID)
	})

	t.Run("should log handled error status", func(t *testing.T) {
		logs.TakeAll()
		rec := httptest.NewRecorder()

		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		entries := logs.FilterMessage("HTTP Request").All()
		require.Len(t, entries, 1)
		assert.Equal(t, int64(http.StatusNotFound), entries[0].ContextMap()["status"])
	})
}
