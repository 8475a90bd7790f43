// Package server exposes the token engine as a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/alexisbeaulieu97/tokensmith/internal/fonts"
	"github.com/alexisbeaulieu97/tokensmith/internal/logger"
	"github.com/alexisbeaulieu97/tokensmith/internal/strategy"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Addr           string
	AllowOrigins   []string
	DefaultContext strategy.Context
	Fonts          fonts.Resolver
	Logger         *logger.Logger
}

// Server owns the HTTP listener.
type Server struct {
	http *http.Server
	log  *logger.Logger
}

// New builds a Server. Callers choose the gin mode before calling New.
func New(opts Options) *Server {
	router := NewRouter(RouterConfig{
		Handler:      NewHandler(opts.Fonts, opts.DefaultContext),
		Logger:       opts.Logger,
		AllowOrigins: opts.AllowOrigins,
	})

	return &Server{
		http: &http.Server{
			Addr:              opts.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: opts.Logger,
	}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.With("addr", s.http.Addr).Info("http server listening")
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	s.log.Info("http server stopped")
	return nil
}
