// Package store holds the entity store: per-entity tables with store-assigned
// identities and timestamps, plus the joined read views the API serves.
//
// Lookups of unknown identities return a nil record and a nil error. The
// error return is reserved for backend failures and ErrDuplicateUsername.
package store

import (
	"context"
	"errors"

	"github.com/erazemk/izposoja/internal/model"
)

// RecentlyViewedLimit is the maximum number of rows returned by the
// recently viewed listings.
const RecentlyViewedLimit = 10

// ErrDuplicateUsername is returned by CreateUser when the username is taken.
var ErrDuplicateUsername = errors.New("username already exists")

// Store is implemented by every storage backend.
type Store interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, u model.NewUser) (*model.User, error)

	GetItem(ctx context.Context, id int64) (*model.Item, error)
	ListItems(ctx context.Context) ([]model.Item, error)
	ListItemsByCategory(ctx context.Context, category string) ([]model.Item, error)
	CreateItem(ctx context.Context, item model.NewItem) (*model.Item, error)
	UpdateItem(ctx context.Context, id int64, patch model.ItemPatch) (*model.Item, error)

	GetBooking(ctx context.Context, id int64) (*model.Booking, error)
	ListBookings(ctx context.Context) ([]model.Booking, error)
	ListBookingsByUser(ctx context.Context, userID int64) ([]model.Booking, error)
	ListBookingsByItem(ctx context.Context, itemID int64) ([]model.Booking, error)
	ListBookingsWithItemByUser(ctx context.Context, userID int64) ([]model.BookingWithItem, error)
	CreateBooking(ctx context.Context, b model.NewBooking) (*model.Booking, error)
	UpdateBooking(ctx context.Context, id int64, patch model.BookingPatch) (*model.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status string) (*model.Booking, error)

	ListSavedItems(ctx context.Context, userID int64) ([]model.SavedItem, error)
	ListSavedItemsWithItem(ctx context.Context, userID int64) ([]model.SavedItemWithItem, error)
	SaveItem(ctx context.Context, userID, itemID int64) (*model.SavedItem, error)
	RemoveSavedItem(ctx context.Context, userID, itemID int64) error

	ListRecentlyViewed(ctx context.Context, userID int64) ([]model.RecentlyViewedItem, error)
	ListRecentlyViewedWithItem(ctx context.Context, userID int64) ([]model.RecentlyViewedWithItem, error)
	AddRecentlyViewed(ctx context.Context, userID, itemID int64) (*model.RecentlyViewedItem, error)

	GetTestimonial(ctx context.Context, id int64) (*model.Testimonial, error)
	ListTestimonials(ctx context.Context) ([]model.Testimonial, error)
	ListTestimonialsByItem(ctx context.Context, itemID int64) ([]model.Testimonial, error)
	ListTestimonialsWithUserByItem(ctx context.Context, itemID int64) ([]model.TestimonialWithUser, error)
	CreateTestimonial(ctx context.Context, t model.NewTestimonial) (*model.Testimonial, error)

	GetCertificate(ctx context.Context, id int64) (*model.Certificate, error)
	ListCertificates(ctx context.Context) ([]model.Certificate, error)
	ListCertificatesByUser(ctx context.Context, userID int64) ([]model.Certificate, error)
	CreateCertificate(ctx context.Context, c model.NewCertificate) (*model.Certificate, error)

	GetDiyProject(ctx context.Context, id int64) (*model.DiyProject, error)
	ListDiyProjects(ctx context.Context) ([]model.DiyProject, error)
	CreateDiyProject(ctx context.Context, p model.NewDiyProject) (*model.DiyProject, error)

	ListMessagesBetween(ctx context.Context, userA, userB int64) ([]model.Message, error)
	SendMessage(ctx context.Context, m model.NewMessage) (*model.Message, error)
	MarkMessagesRead(ctx context.Context, senderID, receiverID int64) (int, error)
}
