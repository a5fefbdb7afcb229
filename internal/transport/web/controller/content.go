package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jbeshir/private-content-feed/internal/command"
	"github.com/jbeshir/private-content-feed/internal/domain"
)

// ContentList lists loaded items, optionally filtered with ?category=.
type ContentList struct {
	Lister ScoredContentLister
}

func (c ContentList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req command.RecommendContentRequest
	if q := r.URL.Query(); q.Has("category") {
		category, err := domain.ParseCategory(q.Get("category"))
		if err != nil {
			writeError(w, r, "Listing", err)
			return
		}
		req.Category = category
	}

	items, err := c.Lister.Execute(r.Context(), req)
	if err != nil {
		writeError(w, r, "Listing", err)
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, items)
}

type ContentGet struct {
	Lister ScoredContentLister
}

func (c ContentGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["content_id"]

	item, err := c.Lister.One(r.Context(), id)
	if err != nil {
		writeError(w, r, "Lookup", fmt.Errorf("getting content [%s]: %w", id, err))
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, item)
}

type createContentRequest struct {
	Title         string `json:"title"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	InterestScore int    `json:"interest_score"`
}

type ContentCreate struct {
	Creator ContentCreator
}

func (c ContentCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req createContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "Submission", fmt.Errorf("%w: %w", domain.ErrInvalidContent, err))
		return
	}

	res, err := c.Creator.CreateContent(r.Context(), domain.ContentFields{
		Title:         req.Title,
		Category:      domain.Category(req.Category),
		Description:   req.Description,
		InterestScore: req.InterestScore,
	})
	if err != nil {
		writeError(w, r, "Submission", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, res)
}

type decryptResponse struct {
	Value      *int                   `json:"value"`
	Outcome    string                 `json:"outcome,omitempty"`
	Visibility domain.ScoreVisibility `json:"visibility"`
	Hidden     bool                   `json:"hidden"`
}

// ContentDecrypt decrypts an item's score. With ?toggle=true a score already shown locally is hidden.
type ContentDecrypt struct {
	Decrypter ScoreDecrypter
}

func (c ContentDecrypt) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["content_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("content_id", id))

	var toggle bool
	switch r.URL.Query().Get("toggle") {
	case "", boolFalse:
	case boolTrue:
		toggle = true
	default:
		logger.DebugContext(ctx, "invalid toggle", "toggle", r.URL.Query().Get("toggle"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	res, err := c.Decrypter.DecryptScore(ctx, id, toggle)
	if err != nil {
		writeError(w, r.WithContext(ctx), "Decryption", err)
		return
	}

	writeJSON(w, r, http.StatusOK, decryptResponse{
		Value:      res.Value,
		Outcome:    string(res.Outcome),
		Visibility: res.Visibility,
		Hidden:     res.Hidden,
	})
}

type ContentHide struct {
	Hider ScoreHider
}

func (c ContentHide) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["content_id"]

	if err := c.Hider.HideScore(r.Context(), id); err != nil {
		writeError(w, r, "Hide", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type ContentRefresh struct {
	Refresher CatalogRefresher
}

func (c ContentRefresh) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := c.Refresher.Refresh(r.Context()); err != nil {
		writeError(w, r, "Refresh", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
