package handler

import (
	"net/http"
	"strings"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	ws "altanzam/internal/infrastructure/websocket"
	"altanzam/pkg/errors"
	"altanzam/pkg/logger"
	"altanzam/pkg/response"
)

type WebSocketHandler struct {
	hub      *ws.Hub
	upgrader gorillaws.Upgrader
}

var webSocketHandler *WebSocketHandler

// NewWebSocketHandler allows handshakes from the configured origins; "*"
// allows any.
func NewWebSocketHandler(hub *ws.Hub, allowedOrigins []string) *WebSocketHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return &WebSocketHandler{
		hub: hub,
		upgrader: gorillaws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowed["*"] || allowed[origin]
			},
		},
	}
}

func SetupWebSocketHandler(hub *ws.Hub, allowedOrigins []string) {
	webSocketHandler = NewWebSocketHandler(hub, allowedOrigins)
}

func GetWebSocketHandler() *WebSocketHandler {
	return webSocketHandler
}

// Subscribe upgrades the connection and streams events for the topics in
// the comma separated "topics" query parameter.
func (h *WebSocketHandler) Subscribe(c echo.Context) error {
	session := currentSession(c)
	if !session.Authenticated() {
		return response.Error(c, errors.AuthRequired("Please sign in to continue"))
	}

	var topics []string
	if raw := c.QueryParam("topics"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				topics = append(topics, t)
			}
		}
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed for %s: %v", session.UID, err)
		return nil
	}

	sub, cancel := h.hub.Subscribe(session.UID, topics...)
	ws.Serve(conn, sub, cancel)
	return nil
}
