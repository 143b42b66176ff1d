package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/izposoja/internal/model"
	"github.com/erazemk/izposoja/internal/store"
)

// MessagesHandler handles chat between two users.
type MessagesHandler struct {
	Store store.Store
}

// ListBetween handles GET /api/messages/{user1Id}/{user2Id}. The order of
// the two users does not matter.
func (h *MessagesHandler) ListBetween(w http.ResponseWriter, r *http.Request) {
	a, ok := pathID(w, r, "user1Id")
	if !ok {
		return
	}
	b, ok := pathID(w, r, "user2Id")
	if !ok {
		return
	}

	msgs, err := h.Store.ListMessagesBetween(r.Context(), a, b)
	if err != nil {
		serverError(w, r, "Failed to list messages", err)
		return
	}
	jsonResponse(w, http.StatusOK, msgs)
}

// Create handles POST /api/messages.
func (h *MessagesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.NewMessage
	if !decodeValid(w, r, &req) {
		return
	}

	msg, err := h.Store.SendMessage(r.Context(), req)
	if err != nil {
		serverError(w, r, "Failed to send message", err)
		return
	}
	jsonResponse(w, http.StatusCreated, msg)
}

// MarkRead handles PATCH /api/messages/read/{senderId}/{receiverId}.
func (h *MessagesHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	senderID, ok := pathID(w, r, "senderId")
	if !ok {
		return
	}
	receiverID, ok := pathID(w, r, "receiverId")
	if !ok {
		return
	}

	n, err := h.Store.MarkMessagesRead(r.Context(), senderID, receiverID)
	if err != nil {
		serverError(w, r, "Failed to mark messages as read", err)
		return
	}

	slog.Info("messages marked read", "sender", senderID, "receiver", receiverID, "count", n)
	w.WriteHeader(http.StatusNoContent)
}
