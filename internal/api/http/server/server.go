package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shohaib/portfolio-cms/internal/model"
)

const readHeaderTimeout = 10 * time.Second

// HTTPServer runs an http.Handler on a listener from a security layer.
type HTTPServer struct {
	server *http.Server
	addr   string
}

// Option configures the underlying http.Server.
type Option func(*http.Server)

// WithTimeouts sets the read and write deadlines of each request. Zero
// leaves a deadline unset.
func WithTimeouts(read, write time.Duration) Option {
	return func(s *http.Server) {
		s.ReadTimeout = read
		s.WriteTimeout = write
	}
}

// NewHTTPServer creates an HTTPServer for handler on addr.
func NewHTTPServer(handler http.Handler, addr string, opts ...Option) *HTTPServer {
	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	for _, opt := range opts {
		opt(server)
	}
	return &HTTPServer{server: server, addr: addr}
}

// Start blocks serving requests until Stop is called.
func (s *HTTPServer) Start(securityLayer model.SecurityLayer) error {
	listener, err := securityLayer.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// Stop waits for in-flight requests until ctx is done.
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

func (s *HTTPServer) Address() string {
	return s.addr
}
