package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"messagely/internal/middleware"
	"messagely/internal/store"
	"messagely/internal/utils"
)

// ToHandler lists messages received by a user. Only that user may read
// their own inbox.
type ToHandler struct {
	Messages *store.MessageStore
}

// ServeHTTP handles GET /users/{username}/to
func (h *ToHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.Username(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	username := chi.URLParam(r, "username")
	if identity != username {
		utils.Error(w, http.StatusForbidden, "Cannot read another user's messages")
		return
	}

	msgs, err := h.Messages.To(r.Context(), username)
	if err != nil {
		utils.Fail(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, msgs)
}

// FromHandler lists messages sent by a user. Only that user may read
// their own outbox.
type FromHandler struct {
	Messages *store.MessageStore
}

// ServeHTTP handles GET /users/{username}/from
func (h *FromHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.Username(r)
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	username := chi.URLParam(r, "username")
	if identity != username {
		utils.Error(w, http.StatusForbidden, "Cannot read another user's messages")
		return
	}

	msgs, err := h.Messages.From(r.Context(), username)
	if err != nil {
		utils.Fail(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, msgs)
}
