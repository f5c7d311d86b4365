package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xela07ax/mrfashion-backend/internal/domain"
	"github.com/xela07ax/mrfashion-backend/internal/storefront/service"
	"go.uber.org/zap"
)

type UserHandler struct {
	service *service.UserService
	logger  *zap.Logger
}

func NewUserHandler(s *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		service: s,
		logger:  logger.Named("user-handler"),
	}
}

// Create обрабатывает POST /users — идемпотентное создание по email.
// Повторный вызов возвращает существующую запись с пометкой, оба пути 200.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var u domain.User
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&u); err != nil {
		respondMessage(w, http.StatusBadRequest, "email is required")
		return
	}

	user, created, err := h.service.Register(r.Context(), &u)
	if err != nil {
		respondStoreError(w, h.logger, err, "user not found")
		return
	}

	if !created {
		respondJSON(w, http.StatusOK, struct {
			Message string       `json:"message"`
			User    *domain.User `json:"user"`
		}{Message: "user already exists", User: user})
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// List обрабатывает GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		respondStoreError(w, h.logger, err, "")
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	respondJSON(w, http.StatusOK, users)
}

// GetByEmail обрабатывает GET /user/{email}.
// Отсутствие записи — не ошибка: отдаём null, как исходный эндпоинт.
func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		respondStoreError(w, h.logger, err, "")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// UpdateRole обрабатывает PUT /users/{id}.
// 400 без поля role, 404 если записи нет — запись при этом не трогается.
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req domain.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "role is required")
		return
	}

	result, err := h.service.UpdateRole(r.Context(), id, req.Role)
	if err != nil {
		respondStoreError(w, h.logger, err, "user not found")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Delete обрабатывает DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.Delete(r.Context(), id)
	if err != nil {
		respondStoreError(w, h.logger, err, "user not found")
		return
	}
	respondJSON(w, http.StatusOK, result)
}
