// Package rest serves the public HTTP API: signup, login, health probes and
// Prometheus metrics.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/eventauth/internal/logging"
	"github.com/dmitrijs2005/eventauth/internal/server/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 15 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
)

type HTTPServer struct {
	address         string
	shutdownTimeout time.Duration
	logger          logging.Logger
	engine          *gin.Engine
	registry        *prometheus.Registry
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, us UserService, rc ReadinessChecker) *HTTPServer {
	logger := l.With("module", "http_server")

	// a dedicated registry keeps the global one clean
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := NewMetrics(registry)

	h := NewHandler(us, rc, logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(cfg.CORSAllowOrigin))
	r.Use(requestLogging(logger))
	r.Use(metrics.Middleware())

	event := r.Group("/event")
	{
		event.POST("/signup", h.Signup)
		event.POST("/login", h.Login)
	}

	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	return &HTTPServer{
		address:         cfg.EndpointAddrHTTP,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
		engine:          r,
		registry:        registry,
	}
}

// Registry returns the Prometheus registry served on /metrics.
func (s *HTTPServer) Registry() *prometheus.Registry {
	return s.registry
}

// Handler returns the configured gin engine.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then drains in-flight requests for up
// to the shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *HTTPServer) serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())
		if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
