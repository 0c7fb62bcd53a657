// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mohamedevweb/services-co/internal/domain"
)

type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// respondWithJSON sends a success envelope around payload.
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	writeJSON(w, code, Envelope{Success: true, Data: payload})
}

// respondWithMessage sends a success envelope carrying only a message.
func respondWithMessage(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, Envelope{Success: true, Message: message})
}

// respondWithError sends a failure envelope with a message.
func respondWithError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, Envelope{Success: false, Error: message})
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// respondWithDomainError maps service sentinels to HTTP statuses. Anything
// unrecognized is a 500 with a generic body.
func respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		respondWithError(w, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, domain.ErrInvalidToken):
		respondWithError(w, http.StatusForbidden, "Invalid token")
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrNoProvidersAvailable):
		respondWithError(w, http.StatusBadRequest, "No providers available")
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProviderNotFound),
		errors.Is(err, domain.ErrOrganizationNotFound),
		errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrPathNotFound),
		errors.Is(err, domain.ErrTaskNotFound),
		errors.Is(err, domain.ErrTranslationNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
