package controller

import (
	"net/http"
	"time"
)

type AvailabilityCheck struct {
	Checker AvailabilityChecker
}

func (c AvailabilityCheck) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := c.Checker.CheckAvailability(r.Context()); err != nil {
		writeError(w, r, "Availability check", err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]bool{"available": true})
}

// StatsGet serves the catalog summary shown on the dashboard.
type StatsGet struct {
	Summarizer CatalogSummarizer
	Now        func() time.Time
}

func (c StatsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, c.Summarizer.Summary(now()))
}
