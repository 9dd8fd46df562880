package websocket

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"

	"altanzam/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	MessageTypePing = "ping"
	MessageTypePong = "pong"
)

// WSMessage is the frame clients send; only ping is understood.
type WSMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp,omitempty"`
}

// Serve pumps a subscription's events to conn until either side closes.
// It blocks and always runs cancel before returning.
func Serve(conn *websocket.Conn, sub *Subscription, cancel func()) {
	defer cancel()

	pongs := make(chan struct{}, 1)
	done := make(chan struct{})
	go readPump(conn, sub.UserID, pongs, done)
	writePump(conn, sub, pongs, done)
}

func readPump(conn *websocket.Conn, userID string, pongs chan<- struct{}, done chan<- struct{}) {
	defer close(done)

	conn.SetReadLimit(4096)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("WebSocket read error for %s: %v", userID, err)
			}
			return
		}

		var msg WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			logger.Debug("WebSocket: ignoring malformed frame from %s", userID)
			continue
		}
		if msg.Type == MessageTypePing {
			select {
			case pongs <- struct{}{}:
			default:
			}
		}
	}
}

func writePump(conn *websocket.Conn, sub *Subscription, pongs <-chan struct{}, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case event, ok := <-sub.Events():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				logger.Warn("WebSocket write error for %s: %v", sub.UserID, err)
				return
			}

		case <-pongs:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			pong := WSMessage{
				Type:      MessageTypePong,
				Data:      map[string]string{"status": "alive"},
				Timestamp: time.Now().Format(time.RFC3339),
			}
			if err := conn.WriteJSON(pong); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-done:
			return
		}
	}
}
