package message

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"messagely/internal/middleware"
	"messagely/internal/store"
	"messagely/internal/utils"
)

type ReadHandler struct {
	Messages *store.MessageStore
}

// ServeHTTP handles POST /messages/{id}/read; the store enforces that
// only the recipient may mark a message read.
func (h *ReadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	msg, err := h.Messages.MarkRead(r.Context(), id, identity)
	if err != nil {
		utils.Fail(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, msg)
}
