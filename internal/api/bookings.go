package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/izposoja/internal/model"
	"github.com/erazemk/izposoja/internal/store"
)

// BookingsHandler handles booking endpoints.
type BookingsHandler struct {
	Store store.Store
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// Get handles GET /api/bookings/{id}.
func (h *BookingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	booking, err := h.Store.GetBooking(r.Context(), id)
	if err != nil {
		serverError(w, r, "Failed to get booking", err)
		return
	}
	if booking == nil {
		jsonError(w, http.StatusNotFound, "Booking not found")
		return
	}

	jsonResponse(w, http.StatusOK, booking)
}

// ListByUser handles GET /api/bookings/user/{userId}. Each booking carries
// its item.
func (h *BookingsHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	bookings, err := h.Store.ListBookingsWithItemByUser(r.Context(), userID)
	if err != nil {
		serverError(w, r, "Failed to list bookings", err)
		return
	}
	jsonResponse(w, http.StatusOK, bookings)
}

// ListByItem handles GET /api/bookings/item/{itemId}.
func (h *BookingsHandler) ListByItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r, "itemId")
	if !ok {
		return
	}

	bookings, err := h.Store.ListBookingsByItem(r.Context(), itemID)
	if err != nil {
		serverError(w, r, "Failed to list bookings", err)
		return
	}
	jsonResponse(w, http.StatusOK, bookings)
}

// Create handles POST /api/bookings. The item and user must exist.
func (h *BookingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.NewBooking
	if !decodeValid(w, r, &req) {
		return
	}

	item, err := h.Store.GetItem(r.Context(), req.ItemID)
	if err != nil {
		serverError(w, r, "Failed to create booking", err)
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "Item not found")
		return
	}

	user, err := h.Store.GetUser(r.Context(), req.UserID)
	if err != nil {
		serverError(w, r, "Failed to create booking", err)
		return
	}
	if user == nil {
		jsonError(w, http.StatusNotFound, "User not found")
		return
	}

	booking, err := h.Store.CreateBooking(r.Context(), req)
	if err != nil {
		serverError(w, r, "Failed to create booking", err)
		return
	}

	slog.Info("booking created", "id", booking.ID, "item", item.Name, "user", user.Username)
	jsonResponse(w, http.StatusCreated, booking)
}

// UpdateStatus handles PATCH /api/bookings/{id}/status.
func (h *BookingsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Status == "" {
		jsonError(w, http.StatusBadRequest, "Status is required")
		return
	}

	booking, err := h.Store.UpdateBookingStatus(r.Context(), id, req.Status)
	if err != nil {
		serverError(w, r, "Failed to update booking status", err)
		return
	}
	if booking == nil {
		jsonError(w, http.StatusNotFound, "Booking not found")
		return
	}

	slog.Info("booking status changed", "id", booking.ID, "status", booking.Status)
	jsonResponse(w, http.StatusOK, booking)
}
