package app

import (
	"context"
	"time"

	"github.com/jbeshir/private-content-feed/internal/lifecycle"
	"github.com/jbeshir/private-content-feed/internal/session"
)

// DefaultLifecycleConfig returns the default bounds of the local decrypted-score cache.
func DefaultLifecycleConfig() lifecycle.Config {
	return lifecycle.Config{
		LocalCacheSize: 1024,
		LocalCacheTTL:  0,
	}
}

// DefaultStatusConfig returns how long finished action statuses stay visible.
func DefaultStatusConfig() session.StatusConfig {
	return session.StatusConfig{
		SuccessDismiss: 2 * time.Second,
		ErrorDismiss:   3 * time.Second,
	}
}

func lifecycleConfigFromEnv(ctx context.Context) lifecycle.Config {
	config := DefaultLifecycleConfig()
	config.LocalCacheSize = GetEnvAsIntOr(ctx, "LOCAL_SCORE_CACHE_SIZE", config.LocalCacheSize)
	config.LocalCacheTTL = GetEnvAsDurationOr(ctx, "LOCAL_SCORE_CACHE_TTL", config.LocalCacheTTL)
	return config
}

func statusConfigFromEnv(ctx context.Context) session.StatusConfig {
	config := DefaultStatusConfig()
	config.SuccessDismiss = GetEnvAsDurationOr(ctx, "STATUS_SUCCESS_DISMISS", config.SuccessDismiss)
	config.ErrorDismiss = GetEnvAsDurationOr(ctx, "STATUS_ERROR_DISMISS", config.ErrorDismiss)
	return config
}
