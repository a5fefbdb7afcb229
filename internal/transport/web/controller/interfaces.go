package controller

import (
	"context"
	"time"

	"github.com/jbeshir/private-content-feed/internal/command"
	"github.com/jbeshir/private-content-feed/internal/domain"
	"github.com/jbeshir/private-content-feed/internal/session"
)

type SessionConnector interface {
	Connect(ctx context.Context, account string) error
	Disconnect(ctx context.Context)
	View() session.View
}

type ContentCreator interface {
	CreateContent(ctx context.Context, fields domain.ContentFields) (command.CreateContentResult, error)
}

type ScoreDecrypter interface {
	DecryptScore(ctx context.Context, id string, toggle bool) (command.DecryptScoreResult, error)
}

type ScoreHider interface {
	HideScore(ctx context.Context, id string) error
}

type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context) error
}

type CatalogSummarizer interface {
	Summary(now time.Time) domain.CatalogSummary
}

// ScoredContentLister lists loaded items with their visibility and recommendation stats.
type ScoredContentLister interface {
	Execute(ctx context.Context, req command.RecommendContentRequest) ([]command.ScoredContent, error)
	One(ctx context.Context, id string) (command.ScoredContent, error)
}
