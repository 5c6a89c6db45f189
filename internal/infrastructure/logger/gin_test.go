package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedEngine(t *testing.T, route func(*gin.Engine)) (*gin.Engine, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.DebugLevel)
	log := zap.New(core)

	engine := gin.New()
	engine.Use(RequestLogger(log), Recovery(log))
	route(engine)
	return engine, logs
}

func TestRequestLogger(t *testing.T) {
	t.Run("successful request logs at info", func(t *testing.T) {
		engine, logs := newObservedEngine(t, func(e *gin.Engine) {
			e.GET("/products", func(c *gin.Context) {
				c.Set("request_id", "req-42")
				c.JSON(http.StatusOK, gin.H{"items": []string{}})
			})
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?page=2", nil))

		require.Equal(t, http.StatusOK, w.Code)
		entries := logs.FilterMessage("request handled").All()
		require.Len(t, entries, 1)

		entry := entries[0]
		assert.Equal(t, zap.InfoLevel, entry.Level)

		fields := entry.ContextMap()
		assert.Equal(t, "req-42", fields["request_id"])
		assert.Equal(t, http.MethodGet, fields["method"])
		assert.Equal(t, "/products", fields["path"])
		assert.Equal(t, int64(http.StatusOK), fields["status"])
		assert.Equal(t, "page=2", fields["query"])
	})

	t.Run("client error logs at warn", func(t *testing.T) {
		engine, logs := newObservedEngine(t, func(e *gin.Engine) {
			e.GET("/sales/:id", func(c *gin.Context) {
				c.JSON(http.StatusNotFound, gin.H{"success": false})
			})
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/sales/nope", nil))

		entries := logs.FilterMessage("request handled").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zap.WarnLevel, entries[0].Level)
	})

	t.Run("server error logs at error", func(t *testing.T) {
		engine, logs := newObservedEngine(t, func(e *gin.Engine) {
			e.GET("/broken", func(c *gin.Context) {
				c.Status(http.StatusInternalServerError)
			})
		})

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broken", nil))

		entries := logs.FilterMessage("request handled").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zap.ErrorLevel, entries[0].Level)
	})
}

func TestRecovery(t *testing.T) {
	engine, logs := newObservedEngine(t, func(e *gin.Engine) {
		e.GET("/panic", func(c *gin.Context) {
			panic("ledger corrupted")
		})
	})

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	entries := logs.FilterMessage("panic recovered").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "ledger corrupted", fields["panic"])
	assert.Equal(t, "/panic", fields["path"])
	assert.NotEmpty(t, fields["stacktrace"])
}
