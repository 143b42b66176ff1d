package api

import (
	"net/http"

	"github.com/erazemk/izposoja/internal/model"
	"github.com/erazemk/izposoja/internal/store"
)

// SavedItemsHandler handles a user's saved items.
type SavedItemsHandler struct {
	Store store.Store
}

// List handles GET /api/saved-items/{userId}.
func (h *SavedItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	saved, err := h.Store.ListSavedItemsWithItem(r.Context(), userID)
	if err != nil {
		serverError(w, r, "Failed to list saved items", err)
		return
	}
	jsonResponse(w, http.StatusOK, saved)
}

// Create handles POST /api/saved-items.
func (h *SavedItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ItemRef
	if !decodeValid(w, r, &req) {
		return
	}

	saved, err := h.Store.SaveItem(r.Context(), req.UserID, req.ItemID)
	if err != nil {
		serverError(w, r, "Failed to save item", err)
		return
	}
	jsonResponse(w, http.StatusCreated, saved)
}

// Delete handles DELETE /api/saved-items/{userId}/{itemId}. Removing a pair
// that was never saved still succeeds.
func (h *SavedItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, "itemId")
	if !ok {
		return
	}

	if err := h.Store.RemoveSavedItem(r.Context(), userID, itemID); err != nil {
		serverError(w, r, "Failed to remove saved item", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RecentlyViewedHandler handles a user's recently viewed items.
type RecentlyViewedHandler struct {
	Store store.Store
}

// List handles GET /api/recently-viewed/{userId}.
func (h *RecentlyViewedHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	recent, err := h.Store.ListRecentlyViewedWithItem(r.Context(), userID)
	if err != nil {
		serverError(w, r, "Failed to list recently viewed items", err)
		return
	}
	jsonResponse(w, http.StatusOK, recent)
}

// Create handles POST /api/recently-viewed.
func (h *RecentlyViewedHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ItemRef
	if !decodeValid(w, r, &req) {
		return
	}

	viewed, err := h.Store.AddRecentlyViewed(r.Context(), req.UserID, req.ItemID)
	if err != nil {
		serverError(w, r, "Failed to record view", err)
		return
	}
	jsonResponse(w, http.StatusCreated, viewed)
}
