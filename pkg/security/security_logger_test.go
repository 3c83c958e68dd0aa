package security

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("jane@example.com"))
	assert.Equal(t, "***@b.com", MaskEmail("a@b.com"))
	assert.Equal(t, "***", MaskEmail("ab"))
	assert.Equal(t, HashValue("not-an-email"), MaskEmail("not-an-email"))
}

func TestLogContactEventMasksSubject(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := NewSecurityLogger(zap.New(core), "portfolio-site", "test")

	sl.LogContactEvent(context.Background(), EventRateLimitTriggered, "jane@example.com", map[string]interface{}{"limit": 3})
	sl.LogContactEvent(context.Background(), EventDeliveryFailed, "jane@example.com", nil)

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "j***@example.com", fields["subject_value"])
	assert.Equal(t, `{"limit":3}`, fields["details"])
	assert.Equal(t, "rate_limit_triggered", entries[0].Message)

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}
