package domain

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), LoggerFromContext(context.Background()))
}

func TestContextWithAccount(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), slog.New(slog.NewTextHandler(&buf, nil)))

	assert.Empty(t, AccountFromContext(ctx))

	ctx = ContextWithAccount(ctx, "0xabc")
	assert.Equal(t, "0xabc", AccountFromContext(ctx))

	LoggerFromContext(ctx).InfoContext(ctx, "hello")
	assert.Contains(t, buf.String(), "account=0xabc")
}
