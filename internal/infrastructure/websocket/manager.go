package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"heritageflavors/pkg/logger"
)

// Client represents one connected countdown listener.
type Client struct {
	SessionID string
	Conn      *websocket.Conn
	Send      chan []byte
}

// Manager fans countdown ticks out to all active WebSocket connections.
type Manager struct {
	clients    map[*Client]struct{}
	Register   chan *Client
	Unregister chan *Client
	broadcast  chan []byte
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[*Client]struct{}),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		broadcast:  make(chan []byte, 16),
	}
}

// Start runs the manager's main loop in a goroutine.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client] = struct{}{}
				m.mutex.Unlock()
				logger.Debug("Countdown client registered: session=%s", client.SessionID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client]; ok {
					delete(m.clients, client)
					close(client.Send)
				}
				m.mutex.Unlock()
				logger.Debug("Countdown client unregistered: session=%s", client.SessionID)

			case message := <-m.broadcast:
				m.mutex.Lock()
				for client := range m.clients {
					select {
					case client.Send <- message:
					default:
						close(client.Send)
						delete(m.clients, client)
					}
				}
				m.mutex.Unlock()

			case <-ctx.Done():
				return
			}
		}
	}()
}

// Broadcast queues a message for every connected client.
func (m *Manager) Broadcast(message []byte) {
	m.broadcast <- message
}

// ClientCount returns the number of active connections.
func (m *Manager) ClientCount() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}

// ReadPump drains the connection until the client disconnects. The
// countdown stream is one-way; incoming frames are discarded.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("Countdown connection error: %v", err)
			}
			break
		}
	}
}

// WritePump sends queued ticks to the WebSocket connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Warn("Countdown write error: %v", err)
			return
		}
	}
}
