package domain

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

type accountKey struct{}

func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// LoggerFromContext falls back to the default logger when none is attached.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// ContextWithAccount attaches the connected wallet account, tagging the context's logger with it.
func ContextWithAccount(ctx context.Context, account string) context.Context {
	ctx = context.WithValue(ctx, accountKey{}, account)
	return ContextWithLogger(ctx, LoggerFromContext(ctx).With("account", account))
}

// AccountFromContext returns the connected wallet account, or "" when none is attached.
func AccountFromContext(ctx context.Context) string {
	account, _ := ctx.Value(accountKey{}).(string)
	return account
}
