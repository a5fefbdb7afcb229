package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jbeshir/private-content-feed/internal/command"
	"github.com/jbeshir/private-content-feed/internal/registry"
	"github.com/jbeshir/private-content-feed/internal/session"
	"github.com/jbeshir/private-content-feed/internal/transport/web/controller"
)

func MakeRouter(
	orchestrator *session.Orchestrator,
	recommend *command.RecommendContent,
	registryClient *registry.Client,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	rssCacheMaxAge time.Duration,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(metricsMiddleware)

	r.Handle("/v1/session", controller.SessionGet{
		Session: orchestrator,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/session/connect", controller.SessionConnect{
		Session: orchestrator,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/session/disconnect", controller.SessionDisconnect{
		Session: orchestrator,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/content", controller.ContentList{
		Lister: recommend,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/content", controller.ContentCreate{
		Creator: orchestrator,
	}).Methods(http.MethodPost)

	// Registered before the {content_id} routes so "refresh" is not taken for an id.
	r.Handle("/v1/content/refresh", controller.ContentRefresh{
		Refresher: orchestrator,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/content/{content_id}", controller.ContentGet{
		Lister: recommend,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/content/{content_id}/decrypt", controller.ContentDecrypt{
		Decrypter: orchestrator,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/content/{content_id}/hide", controller.ContentHide{
		Hider: orchestrator,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/availability", controller.AvailabilityCheck{
		Checker: orchestrator,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/stats", controller.StatsGet{
		Summarizer: orchestrator,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    rssFeedBaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  rssFeedAuthorName,
			FeedAuthorEmail: rssFeedAuthorEmail,
			Registry:        registryClient,
			CacheMaxAge:     rssCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed)
	}

	return r, nil
}
