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
	assert.Equal(t, "j***@example.com", MaskEmail("john@example.com"))
	assert.Equal(t, "***@example.com", MaskEmail("j@example.com"))
	assert.Equal(t, "***", MaskEmail("ab"))
	assert.Len(t, MaskEmail("no-at-sign"), 16)
}

func TestLogLoginFailedMasksEmail(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	sl := NewSecurityLogger(zap.New(core), "humancapital-api", "test")

	sl.LogLoginFailed(context.Background(), "john@example.com", "10.0.0.1", "curl", "req-1", "invalid_password")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "login_failed", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "j***@example.com", fields["subject_value"])
	assert.Equal(t, "invalid_password", fields["reason"])
	assert.Equal(t, "req-1", fields["request_id"])
}

func TestEventLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := NewSecurityLogger(zap.New(core), "humancapital-api", "test")
	ctx := context.Background()

	sl.LogRegistered(ctx, "u1", "CANDIDATE", "ip", "r")
	sl.LogForbidden(ctx, "u1", "CANDIDATE", "ip", "r", "/api/company/stats")
	sl.LogRateLimitTriggered(ctx, "ip", "ua", "r", "/api/auth/login")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
}

func TestDefaultLoggerBeforeInit(t *testing.T) {
	SetDefaultLogger(nil)
	assert.NotNil(t, DefaultLogger())
}
