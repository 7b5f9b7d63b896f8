package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"

	"messagely/internal/middleware"
	"messagely/internal/utils"
	"messagely/internal/ws"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler upgrades GET /ws to a websocket that streams messages
// addressed to the authenticated user. The token rides the token query
// parameter since browsers cannot set headers on the handshake.
type WSHandler struct {
	Hub *ws.Hub
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.Username(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the response
		return
	}

	c := &ws.Connection{
		Conn:     conn,
		Send:     make(chan []byte, 256),
		Username: username,
	}
	h.Hub.Register <- c
	go c.StartWrite()

	// inbound frames are ignored; the read loop only detects disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.Hub.Unregister <- c
	conn.Close()
}
