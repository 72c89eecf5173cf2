package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/sysglance/sysglance/internal/models"
	"github.com/sysglance/sysglance/internal/stream"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// metricsWS pushes snapshots as JSON text frames over a WebSocket.
// Like the SSE endpoint, every connection runs its own collection loop.
func (s *Server) metricsWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Debug("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	// Read pump: the client sends no data, but reading is what surfaces
	// close frames and dropped connections.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					s.logger.Debug("WebSocket read error", zap.Error(err))
				}
				return
			}
		}
	}()

	streamer := stream.New(s.collector, s.cfg.Stream.Interval.Duration, s.logger)
	_ = streamer.Run(ctx, func(snap models.MetricsSnapshot) error {
		return conn.WriteJSON(snap)
	})
}
