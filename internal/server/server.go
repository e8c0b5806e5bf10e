package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"steamboost/internal/config"
	"steamboost/internal/console"
	"steamboost/internal/seed"
	"steamboost/internal/store"
)

// Server wraps an http.Server with the console routes.
type Server struct {
	inner *http.Server
}

// New wires the router, the per-IP rate limit and the HTTP server.
func New(cfg *config.Config, con *console.Console) (*Server, error) {
	router, err := NewRouter(cfg, con)
	if err != nil {
		return nil, err
	}

	var handler http.Handler = router
	if cfg.RateLimitPerMinute > 0 {
		handler = httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute)(handler)
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return &Server{inner: httpServer}, nil
}

func (s *Server) Handler() http.Handler {
	return s.inner.Handler
}

func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}

// NewConsole builds the in-memory stores, loads the seed data and returns
// the console configured by cfg.
func NewConsole(cfg *config.Config) (*console.Console, error) {
	data, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}

	users := store.NewUserDirectory(store.NewCredentials(cfg.HashPasswords))
	ledger := store.NewRequestLedger()
	if err := data.Apply(users, ledger); err != nil {
		return nil, fmt.Errorf("apply seed: %w", err)
	}

	return console.New(users, ledger, store.NewActivityLog(), console.Options{
		EnableAuth:      cfg.EnableAuth,
		EnableOwnership: cfg.EnableOwnership,
	}), nil
}
