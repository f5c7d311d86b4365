package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/xela07ax/mrfashion-backend/internal/domain"
	"go.uber.org/zap"
)

// Единый валидатор для всех DTO на границе API.
// Заменяет разрозненные проверки "а есть ли поле" из исходных хендлеров.
var validate = validator.New(validator.WithRequiredStructEnabled())

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Заголовки уже ушли, ошибку энкодинга отдать клиенту нельзя
	_ = json.NewEncoder(w).Encode(v)
}

// respondMessage — единый конверт {message} для всех ошибочных путей.
func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"message": msg})
}

// respondStoreError маппит ошибку слоя данных в HTTP-ответ:
// ErrNotFound → 404, всё остальное → 500 c generic-сообщением,
// детали только в лог.
func respondStoreError(w http.ResponseWriter, logger *zap.Logger, err error, notFoundMsg string) {
	if errors.Is(err, domain.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, notFoundMsg)
		return
	}
	logger.Error("storage failure", zap.Error(err))
	respondMessage(w, http.StatusInternalServerError, "internal server error")
}
