package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xela07ax/mrfashion-backend/internal/domain"
	"github.com/xela07ax/mrfashion-backend/internal/storefront/service"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service *service.ProductService
	logger  *zap.Logger
}

func NewProductHandler(s *service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: s,
		logger:  logger.Named("product-handler"),
	}
}

// Create обрабатывает POST /products.
// Маршрут стоит за bearer-middleware и role gate ("seller"),
// сюда доходят только продавцы.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&p); err != nil {
		respondMessage(w, http.StatusBadRequest, "missing required product fields")
		return
	}

	result, err := h.service.Create(r.Context(), &p)
	if err != nil {
		respondStoreError(w, h.logger, err, "")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Catalog обрабатывает GET /products?title&category&brand&sort.
// Ответ всегда несёт полные distinct-множества brand/category,
// независимо от активного фильтра.
func (h *ProductHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ProductFilter{
		Title:    q.Get("title"),
		Category: q.Get("category"),
		Brand:    q.Get("brand"),
		Sort:     q.Get("sort"),
	}

	catalog, err := h.service.Catalog(r.Context(), filter)
	if err != nil {
		respondStoreError(w, h.logger, err, "")
		return
	}
	respondJSON(w, http.StatusOK, catalog)
}

// BySeller обрабатывает GET /products/{email}.
func (h *ProductHandler) BySeller(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	products, err := h.service.BySeller(r.Context(), email)
	if err != nil {
		respondStoreError(w, h.logger, err, "")
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

// Update обрабатывает PUT /products/{id}.
// Контракт жёсткий: отсутствие любого из шести полей — 400.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req domain.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondMessage(w, http.StatusBadRequest, "all product fields are required")
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		respondStoreError(w, h.logger, err, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// Delete обрабатывает DELETE /products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.Delete(r.Context(), id)
	if err != nil {
		respondStoreError(w, h.logger, err, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, result)
}
