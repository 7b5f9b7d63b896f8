package message

import (
	"encoding/json"
	"net/http"

	"messagely/internal/middleware"
	"messagely/internal/store"
	"messagely/internal/utils"
	"messagely/internal/ws"
)

type SendHandler struct {
	Messages *store.MessageStore
	Hub      *ws.Hub
}

type SendRequest struct {
	ToUsername string `json:"to_username"`
	Body       string `json:"body"`
}

// ServeHTTP handles POST /messages; the sender is the attached identity.
func (h *SendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	from, ok := middleware.Username(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ToUsername == "" || req.Body == "" {
		utils.Error(w, http.StatusBadRequest, "to_username and body required")
		return
	}

	msg, err := h.Messages.Send(r.Context(), from, req.ToUsername, req.Body)
	if err != nil {
		utils.Fail(w, err)
		return
	}

	// push to the recipient's open websockets, if any
	if h.Hub != nil {
		payload, _ := json.Marshal(map[string]interface{}{
			"type":    "message",
			"message": msg,
		})
		h.Hub.Deliver <- ws.Delivery{Username: msg.ToUsername, Payload: payload}
	}

	utils.JSON(w, http.StatusCreated, msg)
}
