package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"messagely/internal/utils"
)

type HealthHandler struct {
	DB *sql.DB
}

// ServeHTTP handles GET /health; reports degraded when the store does not
// answer a ping in time.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	code := http.StatusOK
	if err := h.DB.PingContext(ctx); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}
	utils.JSON(w, code, map[string]string{"status": status})
}
