package message

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"messagely/internal/middleware"
	"messagely/internal/store"
	"messagely/internal/utils"
)

type GetHandler struct {
	Messages *store.MessageStore
}

// ServeHTTP handles GET /messages/{id}; only the sender or the recipient
// may view a message.
func (h *GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.Username(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid message id")
		return
	}

	msg, err := h.Messages.Get(r.Context(), id)
	if err != nil {
		utils.Fail(w, err)
		return
	}
	if identity != msg.FromUser.Username && identity != msg.ToUser.Username {
		utils.Error(w, http.StatusForbidden, "Cannot read this message")
		return
	}

	utils.JSON(w, http.StatusOK, msg)
}
