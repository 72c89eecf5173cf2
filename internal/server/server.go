// Package server exposes collected metrics over HTTP: JSON endpoints for
// one-shot reads, an SSE endpoint and a WebSocket endpoint for live push,
// and an embedded single-page dashboard.
package server

import (
	"context"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sysglance/sysglance/internal/collector"
	"github.com/sysglance/sysglance/internal/config"
	"github.com/sysglance/sysglance/internal/version"
	"github.com/sysglance/sysglance/web"
)

// Server wires the collector into an HTTP API.
type Server struct {
	cfg       *config.Config
	collector *collector.Collector
	logger    *zap.Logger
	engine    *gin.Engine
}

// New creates a Server around the given collector and config.
// A nil logger disables logging.
func New(cfg *config.Config, col *collector.Collector, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:       cfg,
		collector: col,
		logger:    logger,
	}
	s.engine = s.buildRouter()
	return s
}

// Handler returns the HTTP handler serving all routes.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// HTTPServer returns an http.Server for the configured listen address.
// Request contexts derive from ctx, so cancelling it stops the active push
// streams; Shutdown alone never cancels in-flight requests, and a stream
// pushing on a ticker would otherwise hold it until its deadline.
func (s *Server) HTTPServer(ctx context.Context) *http.Server {
	return &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.engine,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", s.dashboard)

	api := r.Group("/api")
	{
		api.GET("/version", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"version": version.Version,
				"commit":  version.Commit,
				"date":    version.Date,
			})
		})
		api.GET("/specs", s.specs)
		api.GET("/metrics", s.metrics)
		api.GET("/metrics/stream", s.metricsStream)
		api.GET("/metrics/ws", s.metricsWS)
	}

	return r
}

// dashboard serves the embedded single-page UI.
func (s *Server) dashboard(c *gin.Context) {
	page, err := web.Assets.ReadFile("static/index.html")
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
