package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jbeshir/private-content-feed/internal/domain"
)

func MustGetEnvAsString(ctx context.Context, name string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "environment variable missing", "variable_name", name)
		panic(fmt.Sprintf("missing environment variable [%s]", name))
	}

	return s
}

// MustGetEnvAsStrings splits a comma separated variable, dropping empty entries.
func MustGetEnvAsStrings(ctx context.Context, name string) []string {
	var out []string
	for _, s := range strings.Split(MustGetEnvAsString(ctx, name), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func MustGetEnvAsInt(ctx context.Context, name string) int {
	s := MustGetEnvAsString(ctx, name)

	v, err := strconv.Atoi(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as integer",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as integer [%s]: %s", name, s))
	}

	return v
}

func MustGetEnvAsBoolean(ctx context.Context, name string) bool {
	s := MustGetEnvAsString(ctx, name)

	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	default:
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as boolean ('true'/'false')",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as boolean ('true'/'false') [%s]: %s", name, s))
	}
}

func MustGetEnvAsDuration(ctx context.Context, name string) time.Duration {
	s := MustGetEnvAsString(ctx, name)

	duration, err := time.ParseDuration(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as duration",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as duration [%s]: %s", name, s))
	}

	return duration
}

// GetEnvAsIntOr is MustGetEnvAsInt for optional tunables.
func GetEnvAsIntOr(ctx context.Context, name string, fallback int) int {
	if _, exists := os.LookupEnv(name); !exists {
		return fallback
	}
	return MustGetEnvAsInt(ctx, name)
}

// GetEnvAsDurationOr is MustGetEnvAsDuration for optional tunables.
func GetEnvAsDurationOr(ctx context.Context, name string, fallback time.Duration) time.Duration {
	if _, exists := os.LookupEnv(name); !exists {
		return fallback
	}
	return MustGetEnvAsDuration(ctx, name)
}

// GetEnvAsStringOr is MustGetEnvAsString for optional settings.
func GetEnvAsStringOr(ctx context.Context, name, fallback string) string {
	if _, exists := os.LookupEnv(name); !exists {
		return fallback
	}
	return MustGetEnvAsString(ctx, name)
}
