package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xela07ax/mrfashion-backend/internal/domain"
	"github.com/xela07ax/mrfashion-backend/internal/storefront/service"
	"go.uber.org/zap"
)

type WishlistHandler struct {
	service *service.WishlistService
	logger  *zap.Logger
}

func NewWishlistHandler(s *service.WishlistService, logger *zap.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: s,
		logger:  logger.Named("wishlist-handler"),
	}
}

// Add обрабатывает POST /wishlists — идемпотентно по паре (email, product_id).
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	var item domain.WishlistItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&item); err != nil {
		respondMessage(w, http.StatusBadRequest, "email and product_id are required")
		return
	}

	result, created, err := h.service.Add(r.Context(), &item)
	if err != nil {
		respondStoreError(w, h.logger, err, "")
		return
	}

	if !created {
		respondJSON(w, http.StatusOK, struct {
			Message string               `json:"message"`
			Item    *domain.WishlistItem `json:"item"`
		}{Message: "already in wishlist", Item: result})
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// List обрабатывает GET /wishlists/{email}.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	items, err := h.service.List(r.Context(), email)
	if err != nil {
		respondStoreError(w, h.logger, err, "")
		return
	}
	if items == nil {
		items = []domain.WishlistItem{}
	}
	respondJSON(w, http.StatusOK, items)
}

// Delete обрабатывает DELETE /wishlists/{id}.
// Несуществующий идентификатор — 404, коллекция не меняется.
func (h *WishlistHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.Delete(r.Context(), id)
	if err != nil {
		respondStoreError(w, h.logger, err, "wishlist item not found")
		return
	}
	respondJSON(w, http.StatusOK, result)
}
