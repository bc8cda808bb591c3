package handlers

import (
	"errors"
	"net/http"

	"storefront-be/internal/logger"
	"storefront-be/internal/middleware"
	"storefront-be/internal/order"

	"go.uber.org/zap"
)

type OrderHandler struct {
	orders order.Service
}

func NewOrderHandler(orders order.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Place handles POST /order: turns the session's cart into an order.
func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	var input order.CustomerInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	sessionID := middleware.SessionIDFrom(r.Context())

	var userID *int
	if id, ok := middleware.UserIDFrom(r.Context()); ok {
		userID = &id
	}

	o, err := h.orders.PlaceOrder(r.Context(), sessionID, input, userID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyCart):
			writeError(w, "your cart is empty", http.StatusBadRequest)
		case errors.Is(err, order.ErrInvalidCustomer):
			writeError(w, "invalid input, please check your details", http.StatusBadRequest)
		case errors.Is(err, order.ErrInsufficientStock):
			writeError(w, "insufficient stock", http.StatusConflict)
		default:
			logger.FromCtx(r.Context()).Error("order placement failed", zap.Error(err))
			writeError(w, "order failed, please try again", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, o)
}

// Confirmation handles GET /order/confirmation/{orderNumber}.
func (h *OrderHandler) Confirmation(w http.ResponseWriter, r *http.Request) {
	orderNumber := r.PathValue("orderNumber")

	o, err := h.orders.GetByNumber(r.Context(), orderNumber)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			writeError(w, "order not found", http.StatusNotFound)
			return
		}
		logger.FromCtx(r.Context()).Error("failed to load order", zap.Error(err))
		writeError(w, "unable to retrieve order details", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, o)
}

// Cancel handles GET /order/delete/{orderNumber}: restores stock and removes
// the order.
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	orderNumber := r.PathValue("orderNumber")

	if err := h.orders.CancelOrder(r.Context(), orderNumber); err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			writeError(w, "order not found", http.StatusNotFound)
			return
		}
		logger.FromCtx(r.Context()).Error("failed to cancel order", zap.Error(err))
		writeError(w, "failed to delete the order", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "cancelled"})
}

// ListMine handles GET /orders for the authenticated user.
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFrom(r.Context())
	if !ok {
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	orders, err := h.orders.ListByUser(r.Context(), userID)
	if err != nil {
		logger.FromCtx(r.Context()).Error("failed to list orders", zap.Error(err))
		writeError(w, "failed to load orders", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}
