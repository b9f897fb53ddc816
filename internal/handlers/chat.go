package handlers

import (
	"context"
	"net/http"

	"bpo-website/internal/models"
)

type chatReplier interface {
	Reply(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}

type ChatHandler struct {
	chat chatReplier
}

func NewChatHandler(chat chatReplier) *ChatHandler {
	return &ChatHandler{chat: chat}
}

func (h *ChatHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.chat.Reply(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err, "Failed to process chat message")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
