package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGormLogger(level gormlogger.LogLevel) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return NewGormLogger(zap.New(core), level), logs
}

func tracedQuery(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormLoggerTrace(t *testing.T) {
	ctx := context.Background()

	t.Run("failed query logs at error with the statement", func(t *testing.T) {
		gl, logs := newObservedGormLogger(gormlogger.Error)

		gl.Trace(ctx, time.Now(), tracedQuery("SELECT * FROM products", 0), errors.New("disk I/O error"))

		entries := logs.FilterMessage("query failed").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "SELECT * FROM products", fields["sql"])
		assert.Equal(t, "disk I/O error", fields["error"])
	})

	t.Run("record not found stays silent", func(t *testing.T) {
		gl, logs := newObservedGormLogger(gormlogger.Error)

		gl.Trace(ctx, time.Now(), tracedQuery("SELECT * FROM customers", 0), gormlogger.ErrRecordNotFound)

		assert.Zero(t, logs.Len())
	})

	t.Run("slow query logs at warn", func(t *testing.T) {
		gl, logs := newObservedGormLogger(gormlogger.Warn)

		begin := time.Now().Add(-2 * slowQueryThreshold)
		gl.Trace(ctx, begin, tracedQuery("SELECT * FROM sales", 120), nil)

		entries := logs.FilterMessage("slow query").All()
		require.Len(t, entries, 1)
		assert.Equal(t, int64(120), entries[0].ContextMap()["rows"])
	})

	t.Run("info level traces every statement at debug", func(t *testing.T) {
		gl, logs := newObservedGormLogger(gormlogger.Info)

		gl.Trace(ctx, time.Now(), tracedQuery("SELECT * FROM suppliers", 4), nil)

		entries := logs.FilterMessage("query").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zap.DebugLevel, entries[0].Level)
	})

	t.Run("silent level traces nothing", func(t *testing.T) {
		gl, logs := newObservedGormLogger(gormlogger.Silent)

		gl.Trace(ctx, time.Now(), tracedQuery("SELECT 1", 1), errors.New("boom"))

		assert.Zero(t, logs.Len())
	})

	t.Run("request id from context is attached", func(t *testing.T) {
		gl, logs := newObservedGormLogger(gormlogger.Info)

		reqCtx, _ := WithRequestID(ctx, zap.NewNop(), "req-7")
		gl.Trace(reqCtx, time.Now(), tracedQuery("SELECT 1", 1), nil)

		entries := logs.FilterMessage("query").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "req-7", entries[0].ContextMap()["request_id"])
	})
}

func TestGormLoggerLogMode(t *testing.T) {
	gl, logs := newObservedGormLogger(gormlogger.Silent)

	noisy := gl.LogMode(gormlogger.Info)
	noisy.Info(context.Background(), "migrating %s", "products")

	require.Equal(t, 1, logs.Len())

	// The original keeps its own level.
	gl.Info(context.Background(), "should stay silent")
	assert.Equal(t, 1, logs.Len())
}

func TestGormLevel(t *testing.T) {
	tests := []struct {
		in   string
		want gormlogger.LogLevel
	}{
		{"silent", gormlogger.Silent},
		{"error", gormlogger.Error},
		{"warn", gormlogger.Warn},
		{"warning", gormlogger.Warn},
		{"info", gormlogger.Info},
		{"debug", gormlogger.Info},
		{"", gormlogger.Warn},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GormLevel(tt.in), "level %q", tt.in)
	}
}
