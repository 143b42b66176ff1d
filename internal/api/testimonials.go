package api

import (
	"net/http"

	"github.com/erazemk/izposoja/internal/model"
	"github.com/erazemk/izposoja/internal/store"
)

// TestimonialsHandler handles item reviews.
type TestimonialsHandler struct {
	Store store.Store
}

// ListByItem handles GET /api/testimonials/{itemId}. Each testimonial
// carries its author.
func (h *TestimonialsHandler) ListByItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r, "itemId")
	if !ok {
		return
	}

	testimonials, err := h.Store.ListTestimonialsWithUserByItem(r.Context(), itemID)
	if err != nil {
		serverError(w, r, "Failed to list testimonials", err)
		return
	}
	jsonResponse(w, http.StatusOK, testimonials)
}

// Create handles POST /api/testimonials.
func (h *TestimonialsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.NewTestimonial
	if !decodeValid(w, r, &req) {
		return
	}

	testimonial, err := h.Store.CreateTestimonial(r.Context(), req)
	if err != nil {
		serverError(w, r, "Failed to create testimonial", err)
		return
	}
	jsonResponse(w, http.StatusCreated, testimonial)
}

// CertificatesHandler handles user training certificates.
type CertificatesHandler struct {
	Store store.Store
}

// ListByUser handles GET /api/certificates/{userId}.
func (h *CertificatesHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(w, r, "userId")
	if !ok {
		return
	}

	certs, err := h.Store.ListCertificatesByUser(r.Context(), userID)
	if err != nil {
		serverError(w, r, "Failed to list certificates", err)
		return
	}
	jsonResponse(w, http.StatusOK, certs)
}

// Create handles POST /api/certificates.
func (h *CertificatesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.NewCertificate
	if !decodeValid(w, r, &req) {
		return
	}

	cert, err := h.Store.CreateCertificate(r.Context(), req)
	if err != nil {
		serverError(w, r, "Failed to create certificate", err)
		return
	}
	jsonResponse(w, http.StatusCreated, cert)
}
