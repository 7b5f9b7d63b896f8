package user

import (
	"net/http"

	"messagely/internal/middleware"
	"messagely/internal/store"
	"messagely/internal/utils"
)

type ListHandler struct {
	Users *store.UserStore
}

// ServeHTTP handles GET /users
func (h *ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.Username(r); !ok {
		utils.Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	users, err := h.Users.All(r.Context())
	if err != nil {
		utils.Fail(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, users)
}
