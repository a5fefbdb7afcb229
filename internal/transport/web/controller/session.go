package controller

import (
	"encoding/json"
	"net/http"

	"github.com/jbeshir/private-content-feed/internal/domain"
)

type SessionGet struct {
	Session SessionConnector
}

func (c SessionGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, c.Session.View())
}

type connectRequest struct {
	Account string `json:"account"`
}

// SessionConnect connects a wallet account, initializing the FHE subsystem and loading content.
type SessionConnect struct {
	Session SessionConnector
}

func (c SessionConnect) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req connectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.DebugContext(ctx, "unable to decode connect request", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := c.Session.Connect(r.Context(), req.Account); err != nil {
		writeError(w, r, "Connection", err)
		return
	}
	writeJSON(w, r, http.StatusOK, c.Session.View())
}

type SessionDisconnect struct {
	Session SessionConnector
}

func (c SessionDisconnect) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.Session.Disconnect(r.Context())
	writeJSON(w, r, http.StatusOK, c.Session.View())
}
