package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/izposoja/internal/model"
	"github.com/erazemk/izposoja/internal/store"
)

// ItemsHandler handles item endpoints.
type ItemsHandler struct {
	Store store.Store
}

// List handles GET /api/items.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.ListItems(r.Context())
	if err != nil {
		serverError(w, r, "Failed to list items", err)
		return
	}
	jsonResponse(w, http.StatusOK, items)
}

// ListByCategory handles GET /api/items/category/{category}.
func (h *ItemsHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	items, err := h.Store.ListItemsByCategory(r.Context(), r.PathValue("category"))
	if err != nil {
		serverError(w, r, "Failed to list items", err)
		return
	}
	jsonResponse(w, http.StatusOK, items)
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.NewItem
	if !decodeValid(w, r, &req) {
		return
	}

	item, err := h.Store.CreateItem(r.Context(), req)
	if err != nil {
		serverError(w, r, "Failed to create item", err)
		return
	}

	slog.Info("item created", "item", item.Name, "id", item.ID)
	jsonResponse(w, http.StatusCreated, item)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.Store.GetItem(r.Context(), id)
	if err != nil {
		serverError(w, r, "Failed to get item", err)
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "Item not found")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}

// Update handles PATCH /api/items/{id}.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var patch model.ItemPatch
	if !decodeValid(w, r, &patch) {
		return
	}

	item, err := h.Store.UpdateItem(r.Context(), id, patch)
	if err != nil {
		serverError(w, r, "Failed to update item", err)
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "Item not found")
		return
	}

	jsonResponse(w, http.StatusOK, item)
}
