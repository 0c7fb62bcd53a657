// internal/handler/extract.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	chmw "github.com/go-chi/chi/v5/middleware"

	"github.com/mohamedevweb/services-co/internal/service"
)

type ExtractHandler struct {
	extractionService *service.ExtractionService
}

func NewExtractHandler(extractionService *service.ExtractionService) *ExtractHandler {
	return &ExtractHandler{extractionService: extractionService}
}

// ExtractProfile handles POST /ai/presta, returning a structured freelancer
// profile drafted from free text.
func (h *ExtractHandler) ExtractProfile(w http.ResponseWriter, r *http.Request) {
	var input service.ExtractProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.extractionService.ExtractProfile(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Profile extraction error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, output)
}
