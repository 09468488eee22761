package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody mirrors the REST error envelope so clients see one shape.
type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Message: message}) //nolint:errcheck
}
