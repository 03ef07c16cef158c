package handler

import (
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"heritageflavors/internal/infrastructure/ratelimit"
	ws "heritageflavors/internal/infrastructure/websocket"
	"heritageflavors/pkg/errors"
	"heritageflavors/pkg/response"
)

// WebSocketHandler upgrades countdown subscribers onto the tick broadcast.
type WebSocketHandler struct {
	wsManager *ws.Manager
	limiter   *ratelimit.RateLimiter
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // You should restrict this in production
	},
}

func NewWebSocketHandler(wsManager *ws.Manager, limiter *ratelimit.RateLimiter) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager: wsManager,
		limiter:   limiter,
	}
}

func (h *WebSocketHandler) HandleCountdown(c echo.Context) error {
	sid := c.Get("sid").(string)

	if allowed, _ := h.limiter.Allow(sid, "countdown_connect"); !allowed {
		return response.Error(c, errors.TooManyRequests("Too many countdown connections, slow down"))
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		SessionID: sid,
		Conn:      conn,
		Send:      make(chan []byte, 256),
	}

	h.wsManager.Register <- client

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	return nil
}
