// internal/handler/message.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	chmw "github.com/go-chi/chi/v5/middleware"

	"github.com/mohamedevweb/services-co/internal/service"
)

type MessageHandler struct {
	messageService *service.MessageService
}

func NewMessageHandler(messageService *service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Send handles POST /message.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var input service.SendMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	message, err := h.messageService.Send(r.Context(), input)
	if err != nil {
		slog.ErrorContext(r.Context(), "Message send error", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, message)
}

// Conversation handles GET /message/conversation. The thread is addressed
// by id_prestataire and id_organization query parameters.
func (h *MessageHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	providerID, err := strconv.ParseInt(r.URL.Query().Get("id_prestataire"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id_prestataire")
		return
	}
	organizationID, err := strconv.ParseInt(r.URL.Query().Get("id_organization"), 10, 64)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id_organization")
		return
	}

	messages, err := h.messageService.Conversation(r.Context(), providerID, organizationID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, messages)
}
