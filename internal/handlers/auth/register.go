package auth

import (
	"encoding/json"
	"net/http"

	"messagely/internal/store"
	"messagely/internal/utils"
)

type RegisterHandler struct {
	Users     *store.UserStore
	JWTSecret string
	JWTTTLHrs int
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// ServeHTTP handles POST /auth/register
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" || req.FirstName == "" ||
		req.LastName == "" || req.Phone == "" {
		utils.Error(w, http.StatusBadRequest, "All fields are required")
		return
	}

	u, err := h.Users.Register(r.Context(), store.RegisterParams{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		utils.Fail(w, err)
		return
	}

	token, err := utils.GenerateJWT(u.Username, h.JWTSecret, h.JWTTTLHrs)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	utils.JSON(w, http.StatusCreated, TokenResponse{Token: token})
}
