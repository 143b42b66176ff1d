package api

import (
	"net/http"

	"github.com/erazemk/izposoja/internal/store"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(s store.Store) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Store: s}
	usersHandler := &UsersHandler{Store: s}
	itemsHandler := &ItemsHandler{Store: s}
	bookingsHandler := &BookingsHandler{Store: s}
	savedHandler := &SavedItemsHandler{Store: s}
	recentHandler := &RecentlyViewedHandler{Store: s}
	testimonialsHandler := &TestimonialsHandler{Store: s}
	certificatesHandler := &CertificatesHandler{Store: s}
	projectsHandler := &DiyProjectsHandler{Store: s}
	messagesHandler := &MessagesHandler{Store: s}

	// Users.
	mux.HandleFunc("POST /api/login", authHandler.Login)
	mux.HandleFunc("GET /api/users/{id}", usersHandler.Get)
	mux.HandleFunc("POST /api/users", usersHandler.Create)

	// Items.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("PATCH /api/items/{id}", itemsHandler.Update)
	mux.HandleFunc("GET /api/items/category/{category}", itemsHandler.ListByCategory)

	// Bookings.
	mux.HandleFunc("GET /api/bookings/{id}", bookingsHandler.Get)
	mux.HandleFunc("GET /api/bookings/user/{userId}", bookingsHandler.ListByUser)
	mux.HandleFunc("GET /api/bookings/item/{itemId}", bookingsHandler.ListByItem)
	mux.HandleFunc("POST /api/bookings", bookingsHandler.Create)
	mux.HandleFunc("PATCH /api/bookings/{id}/status", bookingsHandler.UpdateStatus)

	// Saved and recently viewed items.
	mux.HandleFunc("GET /api/saved-items/{userId}", savedHandler.List)
	mux.HandleFunc("POST /api/saved-items", savedHandler.Create)
	mux.HandleFunc("DELETE /api/saved-items/{userId}/{itemId}", savedHandler.Delete)
	mux.HandleFunc("GET /api/recently-viewed/{userId}", recentHandler.List)
	mux.HandleFunc("POST /api/recently-viewed", recentHandler.Create)

	// Testimonials and certificates.
	mux.HandleFunc("GET /api/testimonials/{itemId}", testimonialsHandler.ListByItem)
	mux.HandleFunc("POST /api/testimonials", testimonialsHandler.Create)
	mux.HandleFunc("GET /api/certificates/{userId}", certificatesHandler.ListByUser)
	mux.HandleFunc("POST /api/certificates", certificatesHandler.Create)

	// DIY projects.
	mux.HandleFunc("GET /api/diy-projects", projectsHandler.List)
	mux.HandleFunc("GET /api/diy-projects/{id}", projectsHandler.Get)
	mux.HandleFunc("POST /api/diy-projects", projectsHandler.Create)

	// Messages.
	mux.HandleFunc("GET /api/messages/{user1Id}/{user2Id}", messagesHandler.ListBetween)
	mux.HandleFunc("POST /api/messages", messagesHandler.Create)
	mux.HandleFunc("PATCH /api/messages/read/{senderId}/{receiverId}", messagesHandler.MarkRead)

	return RecoverMiddleware(mux)
}
