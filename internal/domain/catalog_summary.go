package domain

import "time"

const recentContentWindow = 7 * 24 * time.Hour

// CatalogSummary holds aggregate numbers over the loaded catalog.
type CatalogSummary struct {
	TotalItems    int     `json:"total_items"`
	VerifiedItems int     `json:"verified_items"`
	RecentItems   int     `json:"recent_items"`
	Categories    int     `json:"categories"`
	AverageViews  float64 `json:"average_views"`
}

// SummarizeCatalog aggregates items. Recent means created within the last seven days.
func SummarizeCatalog(items []ContentItem, now time.Time) CatalogSummary {
	summary := CatalogSummary{TotalItems: len(items)}
	if len(items) == 0 {
		return summary
	}

	categories := make(map[Category]struct{})
	var totalViews uint64
	for _, item := range items {
		if item.IsVerified() {
			summary.VerifiedItems++
		}
		if now.Sub(item.CreatedAt) < recentContentWindow {
			summary.RecentItems++
		}
		categories[item.Category] = struct{}{}
		totalViews += item.PublicViews
	}

	summary.Categories = len(categories)
	summary.AverageViews = float64(totalViews) / float64(len(items))
	return summary
}
