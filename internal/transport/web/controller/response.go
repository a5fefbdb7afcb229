package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jbeshir/private-content-feed/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

// writeError reports a failed action, choosing the status code from the error kind.
func writeError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status := statusForError(err)

	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx, "request failed", "action", action, "error", err)
	} else {
		logger.DebugContext(ctx, "request rejected", "action", action, "error", err)
	}

	writeJSON(w, r, status, errorResponse{Error: domain.StatusMessageForError(action, err)})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrWalletNotConnected):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrSubsystemNotReady):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrInvalidContent), errors.Is(err, domain.ErrUnknownCategory):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrContentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUserRejected):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEncryption), errors.Is(err, domain.ErrDecryption),
		errors.Is(err, domain.ErrRegistryRead), errors.Is(err, domain.ErrRegistryWrite):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
