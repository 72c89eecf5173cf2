package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sysglance/sysglance/internal/models"
	"github.com/sysglance/sysglance/internal/stream"
)

// collectTimeout bounds the collection pass behind a one-shot request.
const collectTimeout = 5 * time.Second

// specs returns the host description. Fields that cannot be determined
// on this host are null, never omitted.
func (s *Server) specs(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), collectTimeout)
	defer cancel()

	c.JSON(http.StatusOK, s.collector.CollectSpecs(ctx))
}

// metrics collects a fresh snapshot for every request. Responses are
// marked uncacheable so pollers always see live values.
func (s *Server) metrics(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), collectTimeout)
	defer cancel()

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, s.collector.CollectMetrics(ctx))
}

// metricsStream pushes snapshots over SSE. Each connection gets its own
// collection loop; the first event is sent immediately, the rest on the
// configured interval, until the request context ends — on client
// disconnect or server shutdown.
func (s *Server) metricsStream(c *gin.Context) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	flush := func() {
		if f, ok := c.Writer.(http.Flusher); ok {
			f.Flush()
		}
	}

	streamer := stream.New(s.collector, s.cfg.Stream.Interval.Duration, s.logger)
	_ = streamer.Run(c.Request.Context(), func(snap models.MetricsSnapshot) error {
		c.SSEvent("metrics", snap)
		flush()
		return nil
	})
}
