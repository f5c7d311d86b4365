package handler

import (
	"encoding/json"
	"net/http"

	"github.com/xela07ax/mrfashion-backend/internal/domain"
	"github.com/xela07ax/mrfashion-backend/internal/storefront/service"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service *service.AuthService
	logger  *zap.Logger
}

func NewAuthHandler(s *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: s,
		logger:  logger.Named("auth-handler"),
	}
}

// IssueToken обрабатывает POST /authentication.
// Успех — {token}; ошибка подписи (например, не задан секрет) — 500.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req domain.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "email is required")
		return
	}

	resp, err := h.service.IssueToken(r.Context(), &req)
	if err != nil {
		h.logger.Error("token issuance failed", zap.Error(err))
		respondMessage(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	respondJSON(w, http.StatusOK, resp)
}
