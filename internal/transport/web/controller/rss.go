package controller

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/feeds"

	"github.com/jbeshir/private-content-feed/internal/domain"
)

// ContentItemLister reads the catalog straight from the registry.
type ContentItemLister interface {
	ListAll(ctx context.Context) ([]domain.ContentItem, error)
}

// RSS publishes the registry catalog. Scores appear only once verified on-chain.
type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Registry        ContentItemLister
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	feed := &feeds.Feed{
		Title:       "Private Content Feed",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Content items with confidential interest scores",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	items, err := c.Registry.ListAll(r.Context())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list content for feed", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var category domain.Category
	if q := r.URL.Query(); q.Has("category") {
		category, err = domain.ParseCategory(q.Get("category"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	for _, item := range items {
		if category != "" && item.Category != category {
			continue
		}
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          item.ID,
			IsPermaLink: "false",
			Title:       item.Title,
			Link:        &feeds.Link{Href: c.FeedHostname + "/v1/content/" + url.PathEscape(item.ID)},
			Description: feedItemDescription(item),
			Author:      &feeds.Author{Name: item.Creator},
			Created:     item.CreatedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}

func feedItemDescription(item domain.ContentItem) string {
	desc := fmt.Sprintf("%s\n\n[%s] %d views, %d likes", item.Description, item.Category,
		item.PublicViews, item.PublicLikes)
	if item.VerifiedScore != nil {
		desc += fmt.Sprintf(", interest score %d (verified on-chain)", *item.VerifiedScore)
	}
	return desc
}
