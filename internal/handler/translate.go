// internal/handler/translate.go
package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	chmw "github.com/go-chi/chi/v5/middleware"

	"github.com/mohamedevweb/services-co/internal/service"
)

// Uploaded documents are capped at 16 MiB.
const maxDocumentBytes = 16 << 20

type TranslateHandler struct {
	translateService *service.TranslateService
}

func NewTranslateHandler(translateService *service.TranslateService) *TranslateHandler {
	return &TranslateHandler{translateService: translateService}
}

// Create handles POST /translate. The document arrives either as a
// multipart upload under the "file" field or as the raw request body;
// targetLanguage and organizationId ride along as form or query values.
func (h *TranslateHandler) Create(w http.ResponseWriter, r *http.Request) {
	content, targetLanguage, organizationID, err := h.parseRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	translation, err := h.translateService.Create(r.Context(), service.TranslateInput{
		Content:        content,
		TargetLanguage: targetLanguage,
		OrganizationID: organizationID,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "Translation error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, translation)
}

func (h *TranslateHandler) parseRequest(r *http.Request) ([]byte, string, int64, error) {
	var content []byte

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxDocumentBytes); err != nil {
			return nil, "", 0, err
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, "", 0, err
		}
		defer file.Close()
		content, err = io.ReadAll(io.LimitReader(file, maxDocumentBytes))
		if err != nil {
			return nil, "", 0, err
		}
	} else {
		var err error
		content, err = io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
		if err != nil {
			return nil, "", 0, err
		}
		defer r.Body.Close()
	}

	targetLanguage := r.FormValue("targetLanguage")
	if targetLanguage == "" {
		targetLanguage = r.URL.Query().Get("targetLanguage")
	}

	rawID := r.FormValue("organizationId")
	if rawID == "" {
		rawID = r.URL.Query().Get("organizationId")
	}
	organizationID, _ := strconv.ParseInt(rawID, 10, 64)

	return content, targetLanguage, organizationID, nil
}

func (h *TranslateHandler) ListByOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	translations, err := h.translateService.ListByOrganization(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, translations)
}
