package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"storefront-be/internal/category"
	"storefront-be/internal/logger"
	"storefront-be/internal/middleware"
	"storefront-be/internal/product"
	"storefront-be/internal/user"

	"go.uber.org/zap"
)

type ProductHandler struct {
	products   product.Service
	categories category.Repository
}

func NewProductHandler(products product.Service, categories category.Repository) *ProductHandler {
	return &ProductHandler{products: products, categories: categories}
}

// List handles GET /products.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.GetAll(r.Context())
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to list products", zap.Error(err))
		writeError(w, "failed to load products", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Categories handles GET /categories.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.GetAll(r.Context())
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to list categories", zap.Error(err))
		writeError(w, "failed to load categories", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// Create handles POST /products (admin only).
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !isAdmin(r) {
		writeError(w, "forbidden", http.StatusForbidden)
		return
	}

	var input product.NewProduct
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	p, err := h.products.Create(r.Context(), input)
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

// Update handles PUT /products/{id} (admin only).
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !isAdmin(r) {
		writeError(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	var p product.Product
	if err := decodeJSON(r, &p); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	p.ID = id

	if err := h.products.Update(r.Context(), p); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			writeError(w, "product not found", http.StatusNotFound)
			return
		}
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// Delete handles DELETE /products/{id} (admin only).
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !isAdmin(r) {
		writeError(w, "forbidden", http.StatusForbidden)
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeError(w, "invalid product id", http.StatusBadRequest)
		return
	}

	if err := h.products.Delete(r.Context(), id); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			writeError(w, "product not found", http.StatusNotFound)
			return
		}
		logger.FromCtx(r.Context()).Error("failed to delete product", zap.Error(err))
		writeError(w, "failed to delete product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func isAdmin(r *http.Request) bool {
	return middleware.RoleFrom(r.Context()) == string(user.RoleAdmin)
}
