package ws

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Connection represents a websocket connection held by one user. A user
// may hold several (multiple tabs or devices).
type Connection struct {
	Conn     *websocket.Conn
	Send     chan []byte
	Username string
}

// Delivery is a payload addressed to every open connection of one user.
type Delivery struct {
	Username string
	Payload  []byte
}

// Hub tracks open connections per username and fans deliveries out to
// them. Callers talk to it through the channels.
type Hub struct {
	Register   chan *Connection
	Unregister chan *Connection
	Deliver    chan Delivery

	mu    sync.Mutex
	conns map[string]map[*Connection]bool
}

func NewHub() *Hub {
	h := &Hub{
		Register:   make(chan *Connection),
		Unregister: make(chan *Connection),
		Deliver:    make(chan Delivery, 64),
		conns:      make(map[string]map[*Connection]bool),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.Register:
			h.mu.Lock()
			if h.conns[c.Username] == nil {
				h.conns[c.Username] = make(map[*Connection]bool)
			}
			h.conns[c.Username][c] = true
			h.mu.Unlock()
			logrus.Debugf("ws: %s connected", c.Username)
		case c := <-h.Unregister:
			h.mu.Lock()
			if set, ok := h.conns[c.Username]; ok && set[c] {
				delete(set, c)
				close(c.Send)
				if len(set) == 0 {
					delete(h.conns, c.Username)
				}
			}
			h.mu.Unlock()
			logrus.Debugf("ws: %s disconnected", c.Username)
		case d := <-h.Deliver:
			h.mu.Lock()
			for c := range h.conns[d.Username] {
				select {
				case c.Send <- d.Payload:
				default:
					// send buffer full, drop the connection
					delete(h.conns[d.Username], c)
					close(c.Send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// StartWrite drains the Send channel onto the websocket until either side
// closes.
func (c *Connection) StartWrite() {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
