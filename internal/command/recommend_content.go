package command

import (
	"context"
	"time"

	"github.com/jbeshir/private-content-feed/internal/domain"
)

// ScoredContentSource is the view of the lifecycle manager needed to score a catalog.
type ScoredContentSource interface {
	Items() []domain.ContentItem
	Item(id string) (domain.ContentItem, bool)
	ResolveVisibility(item domain.ContentItem) domain.ScoreVisibility
	LocalScore(id string) *int
}

// ScoredContent is an item together with what this client knows about its score.
type ScoredContent struct {
	Item       domain.ContentItem         `json:"item"`
	Visibility domain.ScoreVisibility     `json:"visibility"`
	Stats      domain.RecommendationStats `json:"stats"`
}

// RecommendContentRequest filters the listing. An empty Category keeps every item.
type RecommendContentRequest struct {
	Category domain.Category
}

// RecommendContent scores the loaded catalog in registry order.
type RecommendContent struct {
	Source ScoredContentSource
	Now    func() time.Time
}

func NewRecommendContent(source ScoredContentSource) *RecommendContent {
	return &RecommendContent{Source: source, Now: time.Now}
}

func (c *RecommendContent) Execute(_ context.Context, req RecommendContentRequest) ([]ScoredContent, error) {
	now := c.Now()

	items := c.Source.Items()
	out := make([]ScoredContent, 0, len(items))
	for _, item := range items {
		if req.Category != "" && item.Category != req.Category {
			continue
		}
		out = append(out, c.score(item, now))
	}
	return out, nil
}

// One scores a single loaded item.
func (c *RecommendContent) One(_ context.Context, id string) (ScoredContent, error) {
	item, ok := c.Source.Item(id)
	if !ok {
		return ScoredContent{}, domain.ErrContentNotFound
	}
	return c.score(item, c.Now()), nil
}

func (c *RecommendContent) score(item domain.ContentItem, now time.Time) ScoredContent {
	return ScoredContent{
		Item:       item,
		Visibility: c.Source.ResolveVisibility(item),
		Stats:      domain.ScoreContent(item, c.Source.LocalScore(item.ID), now),
	}
}
