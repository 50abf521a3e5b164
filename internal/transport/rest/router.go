package rest

import (
	"net/http"

	"github.com/heartmarshall/doblock-backend/pkg/ctxutil"
)

// NewRouter registers the API and probe routes. metrics may be nil to
// leave /metrics unmounted.
func NewRouter(feeds *FeedHandler, health *HealthHandler, metrics http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	handle(mux, "GET /api/search", http.HandlerFunc(feeds.Search))
	handle(mux, "GET /api/feeds/following", http.HandlerFunc(feeds.FollowingFeeds))
	handle(mux, "GET /api/feeds/recommended", http.HandlerFunc(feeds.RecommendedFeeds))
	handle(mux, "GET /api/feeds/{feedID}", http.HandlerFunc(feeds.GetFeed))

	handle(mux, "GET /live", http.HandlerFunc(health.Live))
	handle(mux, "GET /ready", http.HandlerFunc(health.Ready))
	handle(mux, "GET /health", http.HandlerFunc(health.Health))

	if metrics != nil {
		handle(mux, "GET /metrics", metrics)
	}

	return mux
}

// handle registers h and records the matched pattern for outer middleware.
func handle(mux *http.ServeMux, pattern string, h http.Handler) {
	mux.Handle(pattern, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxutil.SetRoute(r.Context(), r.Pattern)
		h.ServeHTTP(w, r)
	}))
}
