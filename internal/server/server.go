package server

import (
	"context"
	"net/http"
	"time"

	"github.com/oggyb/ballou-sms/internal/logger"
	"github.com/oggyb/ballou-sms/internal/middleware"
	routes "github.com/oggyb/ballou-sms/internal/router"
)

// Middleware wraps a handler.
type Middleware func(http.Handler) http.Handler

// Chain applies m around h so that m[0] is the outermost layer.
func Chain(h http.Handler, m ...Middleware) http.Handler {
	for i := len(m) - 1; i >= 0; i-- {
		h = m[i](h)
	}
	return h
}

// Server owns the underlying http.Server instance.
type Server struct {
	http *http.Server
}

// New creates a new HTTP server bound to the given address and configured
// with the provided application dependencies and middleware chain.
func New(lg logger.Lite, addr string, deps routes.AppDeps) *Server {
	mux := http.NewServeMux()
	routes.Register(mux, deps)

	root := Chain(
		mux,
		middleware.RequestLogger(lg),
		middleware.Recoverer(lg),
	)

	return &Server{
		http: &http.Server{
			Addr:              addr,
			Handler:           root,
			ReadHeaderTimeout: 5 * time.Second,
			// Sends block on the provider for up to 80s.
			WriteTimeout: 100 * time.Second,
		},
	}
}

// Handler exposes the root handler, middleware included.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start runs the HTTP server and blocks until ListenAndServe returns.
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server, waiting for in-flight
// requests to complete until the given context expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
