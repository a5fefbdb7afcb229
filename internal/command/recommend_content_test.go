package command

import (
	"testing"
	"time"

	"github.com/jbeshir/private-content-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	items []domain.ContentItem
	local map[string]int
}

func (s staticSource) Items() []domain.ContentItem { return s.items }

func (s staticSource) Item(id string) (domain.ContentItem, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return domain.ContentItem{}, false
}

func (s staticSource) ResolveVisibility(item domain.ContentItem) domain.ScoreVisibility {
	if item.VerifiedScore != nil {
		return domain.OnChainVerified(*item.VerifiedScore)
	}
	if v, ok := s.local[item.ID]; ok {
		return domain.LocallyDecrypted(v)
	}
	return domain.Unresolved()
}

func (s staticSource) LocalScore(id string) *int {
	if v, ok := s.local[id]; ok {
		return &v
	}
	return nil
}

func TestRecommendContent_Execute(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	verified := 77
	source := staticSource{
		items: []domain.ContentItem{
			{ID: "v", Category: domain.CategoryAI, CreatedAt: now, PublicViews: 10, VerifiedScore: &verified},
			{ID: "l", Category: domain.CategoryTech, CreatedAt: now, PublicViews: 10},
			{ID: "u", Category: domain.CategoryAI, CreatedAt: now},
		},
		local: map[string]int{"l": 80},
	}
	cmd := NewRecommendContent(source)
	cmd.Now = func() time.Time { return now }

	all, err := cmd.Execute(testContext(), RecommendContentRequest{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	assert.Equal(t, domain.OnChainVerified(77), all[0].Visibility)
	assert.Equal(t, domain.ScoreSourceVerified, all[0].Stats.Score.Source)

	assert.Equal(t, domain.LocallyDecrypted(80), all[1].Visibility)
	assert.Equal(t, 80, all[1].Stats.MatchScore)
	assert.Equal(t, 47, all[1].Stats.Relevance)
	assert.Equal(t, 48, all[1].Stats.Popularity)
	assert.Equal(t, 100, all[1].Stats.Freshness)
	assert.Equal(t, 82, all[1].Stats.Diversity)

	assert.Equal(t, domain.Unresolved(), all[2].Visibility)
	assert.Equal(t, domain.ScoreSourceEstimatedDefault, all[2].Stats.Score.Source)

	ai, err := cmd.Execute(testContext(), RecommendContentRequest{Category: domain.CategoryAI})
	require.NoError(t, err)
	require.Len(t, ai, 2)
	assert.Equal(t, "v", ai[0].Item.ID)
	assert.Equal(t, "u", ai[1].Item.ID)
}

func TestRecommendContent_One(t *testing.T) {
	cmd := NewRecommendContent(staticSource{items: []domain.ContentItem{{ID: "a"}}})

	got, err := cmd.One(testContext(), "a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.Item.ID)

	_, err = cmd.One(testContext(), "missing")
	assert.ErrorIs(t, err, domain.ErrContentNotFound)
}
