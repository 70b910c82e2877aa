package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/mascotas/models"
	"github.com/akinalp/mascotas/pkg"
	"github.com/akinalp/mascotas/services"
)

// MessageHandler, /message endpoint'leri. Hepsi auth ister.
type MessageHandler struct {
	messageService services.MessageService
}

func NewMessageHandler(messageService services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Send godoc
// POST /message
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthorized)
		return
	}

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message, err := h.messageService.Send(r.Context(), session.UserID, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, message)
}

// List godoc
// GET /message — gönderilen VE alınan mesajlar, yeniden eskiye.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthorized)
		return
	}

	messages, err := h.messageService.List(r.Context(), session.UserID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, messages)
}

// Get godoc
// GET /message/{messageId} — sadece katılımcılar.
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthorized)
		return
	}

	message, err := h.messageService.Get(r.Context(), session.UserID, r.PathValue("messageId"))
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, message)
}

// Delete godoc
// DELETE /message/{messageId} — sadece gönderen; soft-delete.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, ok := SessionFromContext(r.Context())
	if !ok {
		pkg.Error(w, pkg.ErrUnauthorized)
		return
	}

	if err := h.messageService.Delete(r.Context(), session.UserID, r.PathValue("messageId")); err != nil {
		pkg.Error(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
