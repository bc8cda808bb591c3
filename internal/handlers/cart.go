package handlers

import (
	"errors"
	"net/http"

	"storefront-be/internal/cart"
	"storefront-be/internal/logger"
	"storefront-be/internal/middleware"

	"go.uber.org/zap"
)

type CartHandler struct {
	carts cart.Service
}

func NewCartHandler(carts cart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

type cartLineRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// View handles GET /cart.
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionIDFrom(r.Context())

	c, err := h.carts.Get(r.Context(), sessionID)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to load cart", zap.Error(err))
		writeError(w, "failed to load cart", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

// Add handles POST /cart/add.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req cartLineRequest
	if err := decodeJSON(r, &req); err != nil || req.ProductID <= 0 {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sessionID := middleware.SessionIDFrom(r.Context())

	item, err := h.carts.Add(r.Context(), sessionID, req.ProductID)
	if err != nil {
		h.respondCartError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Update handles POST /cart/update.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req cartLineRequest
	if err := decodeJSON(r, &req); err != nil || req.ProductID <= 0 {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sessionID := middleware.SessionIDFrom(r.Context())

	if err := h.carts.UpdateQuantity(r.Context(), sessionID, req.ProductID, req.Quantity); err != nil {
		h.respondCartError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// Delete handles POST /cart/delete.
func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req cartLineRequest
	if err := decodeJSON(r, &req); err != nil || req.ProductID <= 0 {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sessionID := middleware.SessionIDFrom(r.Context())

	if err := h.carts.Remove(r.Context(), sessionID, req.ProductID); err != nil {
		h.respondCartError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

func (h *CartHandler) respondCartError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, cart.ErrProductNotFound):
		writeError(w, "product not found", http.StatusNotFound)
	case errors.Is(err, cart.ErrLineNotFound):
		writeError(w, "cart line not found", http.StatusNotFound)
	case errors.Is(err, cart.ErrInvalidQuantity):
		writeError(w, "quantity must be at least 1", http.StatusBadRequest)
	case errors.Is(err, cart.ErrInsufficientStock):
		writeError(w, "insufficient stock", http.StatusConflict)
	default:
		logger.FromCtx(r.Context()).Error("cart operation failed", zap.Error(err))
		writeError(w, "cart operation failed", http.StatusInternalServerError)
	}
}
