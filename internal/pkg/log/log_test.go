package log_test

import (
	"context"
	"errors"
	"testing"

	log_internal "phoenix-booking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := log_internal.Wrap(otelzap.New(zap.New(core), otelzap.WithMinLevel(zap.DebugLevel)))
	ctx := context.Background()

	t.Run("errors become error fields", func(t *testing.T) {
		logger.Error(ctx, "lookup failed", errors.New("catalog down"))

		entries := logs.TakeAll()
		assert.Len(t, entries, 1)
		assert.Equal(t, "lookup failed", entries[0].Message)
		assert.Equal(t, "catalog down", entries[0].ContextMap()["error"])
	})

	t.Run("other values are numbered", func(t *testing.T) {
		logger.Warn(ctx, "status", 502, "hotel-1")

		entries := logs.TakeAll()
		assert.Len(t, entries, 1)
		assert.EqualValues(t, 502, entries[0].ContextMap()["arg0"])
		assert.Equal(t, "hotel-1", entries[0].ContextMap()["arg1"])
	})
}

func TestWatermillAdapter(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	adapter := log_internal.NewWatermillAdapter(otelzap.New(zap.New(core)))

	adapter.With(watermill.LogFields{"topic": "notifications"}).Info("published", watermill.LogFields{"uuid": "1"})

	entries := logs.TakeAll()
	assert.Len(t, entries, 1)
	assert.Equal(t, "notifications", entries[0].ContextMap()["topic"])
	assert.Equal(t, "1", entries[0].ContextMap()["uuid"])
}
