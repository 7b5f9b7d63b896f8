package utils

import (
	"encoding/json"
	"net/http"

	"messagely/internal/apperr"
)

// ErrorDetail mirrors the error object clients receive alongside the
// top-level message.
type ErrorDetail struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   ErrorDetail `json:"error"`
	Message string      `json:"message"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the {error, message} body used for every failure response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{
		Error:   ErrorDetail{Status: status, Message: message},
		Message: message,
	})
}

// Fail translates a component error into its HTTP status and error body.
func Fail(w http.ResponseWriter, err error) {
	Error(w, apperr.Status(err), err.Error())
}
