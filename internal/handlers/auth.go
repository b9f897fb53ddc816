package handlers

import (
	"context"
	"net/http"

	"bpo-website/internal/models"
)

type authenticator interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthTokens, error)
}

type AuthHandler struct {
	auth authenticator
}

func NewAuthHandler(auth authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tokens, err := h.auth.Login(r.Context(), req)
	if err != nil {
		handleServiceError(w, r, err, "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, tokens)
}
