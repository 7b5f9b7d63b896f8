package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"messagely/internal/middleware"
	"messagely/internal/store"
	"messagely/internal/utils"
)

type GetHandler struct {
	Users *store.UserStore
}

// ServeHTTP handles GET /users/{username}
func (h *GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.Username(r); !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	u, err := h.Users.Get(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		utils.Fail(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, u)
}
