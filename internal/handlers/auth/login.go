package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"messagely/internal/apperr"
	"messagely/internal/store"
	"messagely/internal/utils"
)

type LoginHandler struct {
	Users     *store.UserStore
	JWTSecret string
	JWTTTLHrs int
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ServeHTTP handles POST /auth/login
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "Username and password required")
		return
	}

	ok, err := h.Users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		// an unknown username reads the same as a bad password
		if errors.Is(err, apperr.ErrNotFound) {
			utils.Error(w, http.StatusUnauthorized, "Invalid username/password")
			return
		}
		utils.Fail(w, err)
		return
	}
	if !ok {
		utils.Error(w, http.StatusUnauthorized, "Invalid username/password")
		return
	}

	if err := h.Users.TouchLogin(r.Context(), req.Username); err != nil {
		utils.Fail(w, err)
		return
	}

	token, err := utils.GenerateJWT(req.Username, h.JWTSecret, h.JWTTTLHrs)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.JSON(w, http.StatusOK, TokenResponse{Token: token})
}
