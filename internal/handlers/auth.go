package handlers

import (
	"errors"
	"net/http"

	"storefront-be/internal/logger"
	"storefront-be/internal/user"

	"go.uber.org/zap"
)

type AuthHandler struct {
	users user.Service
}

func NewAuthHandler(users user.Service) *AuthHandler {
	return &AuthHandler{users: users}
}

type authResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input user.RegisterInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, u, err := h.users.Register(r.Context(), input)
	if err != nil {
		if errors.Is(err, user.ErrEmailExists) {
			writeError(w, "email already registered", http.StatusConflict)
			return
		}
		logger.FromCtx(r.Context()).Error("registration failed", zap.Error(err))
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{Token: token, User: u})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, u, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, "invalid email or password", http.StatusUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{Token: token, User: u})
}
