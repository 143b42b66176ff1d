package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/izposoja/internal/auth"
	"github.com/erazemk/izposoja/internal/model"
	"github.com/erazemk/izposoja/internal/store"
)

// UsersHandler handles user endpoints. Passwords never leave the server.
type UsersHandler struct {
	Store store.Store
}

// Get handles GET /api/users/{id}.
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	user, err := h.Store.GetUser(r.Context(), id)
	if err != nil {
		serverError(w, r, "Failed to get user", err)
		return
	}
	if user == nil {
		jsonError(w, http.StatusNotFound, "User not found")
		return
	}

	jsonResponse(w, http.StatusOK, user)
}

// Create handles POST /api/users.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.NewUser
	if !decodeValid(w, r, &req) {
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		serverError(w, r, "Failed to create user", err)
		return
	}
	req.Password = hash

	user, err := h.Store.CreateUser(r.Context(), req)
	if errors.Is(err, store.ErrDuplicateUsername) {
		jsonError(w, http.StatusConflict, "Username already exists")
		return
	}
	if err != nil {
		serverError(w, r, "Failed to create user", err)
		return
	}

	slog.Info("user created", "user", user.Username, "id", user.ID)
	jsonResponse(w, http.StatusCreated, user)
}
