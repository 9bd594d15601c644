// Package server implements the mock provider API: two paginated fixture
// endpoints and an update endpoint that rewrites the fixture files in place.
package server

import (
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/onurerdog4n/mock-provider-api/internal/config"
	"github.com/onurerdog4n/mock-provider-api/internal/fixture"
	"github.com/onurerdog4n/mock-provider-api/pkg/httpx"
)

// Server serves the generated fixture files over HTTP.
type Server struct {
	cfg      *config.Config
	contents *fixture.ContentStore
	feed     *fixture.FeedStore
	mux      *http.ServeMux
	limiter  *RateLimiter
}

// New creates a server for the fixtures under cfg.Mocks.Dir.
func New(cfg *config.Config) *Server {
	s := &Server{
		cfg:      cfg,
		contents: fixture.NewContentStore(filepath.Join(cfg.Mocks.Dir, fixture.JSONFixtureFile)),
		feed:     fixture.NewFeedStore(filepath.Join(cfg.Mocks.Dir, fixture.XMLFixtureFile)),
		mux:      http.NewServeMux(),
		limiter:  NewRateLimiter(cfg.Server.RateLimitPerMinute),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Provider APIs
	s.mux.HandleFunc("GET /provider-1", httpx.Wrap(s.handleProvider1))
	s.mux.HandleFunc("GET /provider-2", httpx.Wrap(s.handleProvider2))
	s.mux.HandleFunc("POST /update-item", httpx.Wrap(s.handleUpdateItem))

	// Operational endpoints
	s.mux.HandleFunc("GET /health", httpx.Wrap(s.handleHealth))
	s.mux.Handle("GET /metrics", promhttp.Handler())
}

// Handler returns the mux wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = CORS(h)
	h = s.limiter.Middleware(h)
	h = Metrics(h)
	h = Logging(h)
	h = RequestID(h)
	return h
}

// ListenAndServe blocks serving the API.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:         ":" + s.cfg.Server.Port,
		Handler:      s.Handler(),
		ReadTimeout:  time.Duration(s.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.Server.WriteTimeout) * time.Second,
	}

	log.Printf("[MOCKAPI] listening on %s (fixtures: %s)", srv.Addr, s.cfg.Mocks.Dir)
	return srv.ListenAndServe()
}
