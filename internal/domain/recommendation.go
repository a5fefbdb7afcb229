package domain

import (
	"math"
	"time"
)

// DefaultInterestScore is the placeholder used when no cleartext is known.
// It is a display convenience, not a signal; stats built on it are marked EstimatedDefault.
const DefaultInterestScore = 50

const (
	freshnessWindowDays = 30.0
	minTimeFactor       = 0.3
	maxTimeFactor       = 1.0
)

// ScoreSource says where the effective interest score came from.
type ScoreSource string

const (
	ScoreSourceVerified         ScoreSource = "verified"
	ScoreSourceLocallyDecrypted ScoreSource = "locally_decrypted"
	ScoreSourceEstimatedDefault ScoreSource = "estimated_default"
)

// EffectiveScore is the interest score used for scoring, tagged with its provenance.
type EffectiveScore struct {
	Value  int         `json:"value"`
	Source ScoreSource `json:"source"`
}

// RecommendationStats are the derived, user-facing relevance metrics. Each is in [0,100].
type RecommendationStats struct {
	MatchScore int            `json:"match_score"`
	Relevance  int            `json:"relevance"`
	Popularity int            `json:"popularity"`
	Freshness  int            `json:"freshness"`
	Diversity  int            `json:"diversity"`
	Score      EffectiveScore `json:"score"`
}

// ResolveEffectiveScore prefers the verified score, then a local cleartext, then the placeholder default.
func ResolveEffectiveScore(item ContentItem, localDecrypted *int) EffectiveScore {
	if item.VerifiedScore != nil {
		return EffectiveScore{Value: *item.VerifiedScore, Source: ScoreSourceVerified}
	}
	if localDecrypted != nil {
		return EffectiveScore{Value: *localDecrypted, Source: ScoreSourceLocallyDecrypted}
	}
	return EffectiveScore{Value: DefaultInterestScore, Source: ScoreSourceEstimatedDefault}
}

// TimeFactor decays linearly from 1.0 at creation to the 0.3 floor at 30 days old.
// Items dated in the future count as brand new.
func TimeFactor(createdAt, now time.Time) float64 {
	ageDays := now.Sub(createdAt).Hours() / 24
	return clampFloat(1-ageDays/freshnessWindowDays, minTimeFactor, maxTimeFactor)
}

// ScoreContent computes the recommendation metrics for an item. It is pure: it never touches state.
//
// Rounding is math.Round (half away from zero) throughout.
//
// Relevance is not normalised by views: anything beyond ~100 views saturates at the clamp.
// The formula is kept as-is.
func ScoreContent(item ContentItem, localDecrypted *int, now time.Time) RecommendationStats {
	score := ResolveEffectiveScore(item, localDecrypted)
	s := float64(score.Value)
	views := float64(item.PublicViews)
	timeFactor := TimeFactor(item.CreatedAt, now)

	return RecommendationStats{
		MatchScore: clampPercent(math.Round(s * timeFactor)),
		Relevance:  clampPercent(math.Round((s*0.7 + views*0.3) * 0.8)),
		Popularity: clampPercent(math.Round(math.Log(views+1) * 20)),
		Freshness:  clampPercent(math.Round(timeFactor * 100)),
		Diversity:  clampPercent(math.Round((100-math.Abs(s-DefaultInterestScore))*0.6 + 40)),
		Score:      score,
	}
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func clampPercent(v float64) int {
	return int(clampFloat(v, 0, 100))
}
