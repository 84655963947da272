package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/gin-gonic/gin"
)

// executionEventsHandler handles GET /api/v1/executions/:id/events. It
// upgrades to WebSocket and relays the execution's event stream until the
// terminal event, then closes. Connecting to an already settled execution
// closes immediately with an empty stream.
func (s *Server) executionEventsHandler(c *gin.Context) {
	if s.bus == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "event streaming not available"})
		return
	}

	executionID := c.Param("id")
	if _, err := s.executions.GetExecution(c.Request.Context(), executionID); err != nil {
		s.abortWithServiceError(c, err)
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		OriginPatterns: s.cfg.AllowedWSOrigins,
	})
	if err != nil {
		// Accept already wrote the handshake failure response.
		s.logger.Warn("WebSocket accept failed", "execution_id", executionID, "error", err)
		return
	}
	defer conn.CloseNow()

	ctx := c.Request.Context()
	for evt := range s.bus.Stream(ctx, executionID) {
		if err := wsjson.Write(ctx, conn, evt); err != nil {
			if ctx.Err() == nil && !errors.Is(err, context.Canceled) {
				s.logger.Warn("WebSocket write failed", "execution_id", executionID, "error", err)
			}
			return
		}
	}

	conn.Close(websocket.StatusNormalClosure, "stream ended")
}
