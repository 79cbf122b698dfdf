package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Default values.
const (
	DefaultShutdownTimeout = 10 * time.Second
	DefaultMaxBodyBytes    = 1 << 20
)

// Processor is the operation the server exposes.
// *processor.Processor satisfies it.
type Processor interface {
	Process(ctx context.Context, raw string) ([]string, error)
}

// Server serves the promptpager HTTP API.
type Server struct {
	engine          *gin.Engine
	proc            Processor
	corsOrigins     []string
	shutdownTimeout time.Duration
	maxBodyBytes    int64
	logger          *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithCORS enables CORS for origins. "*" allows every origin.
func WithCORS(origins ...string) Option {
	return func(s *Server) {
		s.corsOrigins = origins
	}
}

// WithShutdownTimeout bounds how long Run waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

// WithMaxBodyBytes limits the size of request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) {
		s.maxBodyBytes = n
	}
}

// WithLogger sets the logger for access and panic logs.
// Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// New creates a Server around proc with routes and middleware installed.
func New(proc Processor, opts ...Option) *Server {
	s := &Server{
		proc:            proc,
		shutdownTimeout: DefaultShutdownTimeout,
		maxBodyBytes:    DefaultMaxBodyBytes,
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.engine = gin.New()
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.engine.Use(Recovery(s.logger))
	s.engine.Use(RequestID())
	if len(s.corsOrigins) > 0 {
		s.engine.Use(CORS(s.corsOrigins))
	}
	s.engine.Use(AccessLog(s.logger))
	s.engine.Use(Metrics())
}

func (s *Server) setupRoutes() {
	s.engine.GET("/healthz", s.health)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := s.engine.Group("/v1")
	v1.POST("/process", s.process)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
