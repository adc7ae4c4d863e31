package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogapp/internal/models"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteServiceError maps the error taxonomy onto HTTP statuses. Nothing
// escapes unmapped.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		WriteError(w, "Title and content are required", http.StatusBadRequest)
	case errors.Is(err, models.ErrDuplicateEmail):
		WriteError(w, "Email already registered", http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidCredentials):
		WriteError(w, "Invalid credentials", http.StatusBadRequest)
	case errors.Is(err, models.ErrInvalidToken):
		WriteError(w, "Not authorized, token failed", http.StatusUnauthorized)
	case errors.Is(err, models.ErrInvalidID):
		WriteError(w, "Invalid blog ID", http.StatusBadRequest)
	case errors.Is(err, models.ErrBlogNotFound):
		WriteError(w, "Blog not found", http.StatusNotFound)
	case errors.Is(err, models.ErrUserNotFound):
		WriteError(w, "User not found", http.StatusNotFound)
	case errors.Is(err, models.ErrStoreUnavailable):
		WriteError(w, "Store unavailable, try again", http.StatusServiceUnavailable)
	case errors.Is(err, models.ErrUploadFailed):
		WriteError(w, "Upload failed", http.StatusInternalServerError)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
