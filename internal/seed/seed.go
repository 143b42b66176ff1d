// Package seed loads the sample catalogue shipped with the server.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/erazemk/izposoja/internal/auth"
	"github.com/erazemk/izposoja/internal/model"
	"github.com/erazemk/izposoja/internal/store"
)

//go:embed seed.yaml
var sampleData []byte

// Data is the decoded form of a seed file.
type Data struct {
	Users          []model.NewUser        `yaml:"users"`
	Items          []model.NewItem        `yaml:"items"`
	DiyProjects    []model.NewDiyProject  `yaml:"diyProjects"`
	Testimonials   []model.NewTestimonial `yaml:"testimonials"`
	Certificates   []model.NewCertificate `yaml:"certificates"`
	Bookings       []Booking              `yaml:"bookings"`
	SavedItems     []model.ItemRef        `yaml:"savedItems"`
	RecentlyViewed []model.ItemRef        `yaml:"recentlyViewed"`
}

// Booking is a seeded booking that starts at load time.
type Booking struct {
	ItemID     int64   `yaml:"itemId"`
	UserID     int64   `yaml:"userId"`
	Days       int     `yaml:"days"`
	Status     string  `yaml:"status"`
	TotalPrice int     `yaml:"totalPrice"`
	Location   *string `yaml:"location"`
}

// Parse decodes a seed file.
func Parse(data []byte) (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parsing seed data: %w", err)
	}
	return &d, nil
}

// Load inserts the embedded sample catalogue into s. It does nothing when s
// already has users, so restarting against a persistent database is safe.
func Load(ctx context.Context, s store.Store) error {
	d, err := Parse(sampleData)
	if err != nil {
		return err
	}
	return Apply(ctx, s, d, time.Now())
}

// Apply inserts d into s. Bookings start at now.
func Apply(ctx context.Context, s store.Store, d *Data, now time.Time) error {
	users, err := s.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("checking for existing users: %w", err)
	}
	if len(users) > 0 {
		slog.Info("store already populated, skipping seed data", "users", len(users))
		return nil
	}

	for _, u := range d.Users {
		hash, err := auth.HashPassword(u.Password)
		if err != nil {
			return err
		}
		u.Password = hash
		if _, err := s.CreateUser(ctx, u); err != nil {
			return fmt.Errorf("seeding user %s: %w", u.Username, err)
		}
	}

	for _, item := range d.Items {
		if _, err := s.CreateItem(ctx, item); err != nil {
			return fmt.Errorf("seeding item %s: %w", item.Name, err)
		}
	}

	for _, p := range d.DiyProjects {
		if _, err := s.CreateDiyProject(ctx, p); err != nil {
			return fmt.Errorf("seeding diy project %s: %w", p.Title, err)
		}
	}

	for _, t := range d.Testimonials {
		if _, err := s.CreateTestimonial(ctx, t); err != nil {
			return fmt.Errorf("seeding testimonial: %w", err)
		}
	}

	for _, c := range d.Certificates {
		if _, err := s.CreateCertificate(ctx, c); err != nil {
			return fmt.Errorf("seeding certificate %s: %w", c.Name, err)
		}
	}

	for _, b := range d.Bookings {
		total := b.TotalPrice
		nb := model.NewBooking{
			ItemID:     b.ItemID,
			UserID:     b.UserID,
			StartDate:  model.Date{Time: now},
			EndDate:    model.Date{Time: now.AddDate(0, 0, b.Days)},
			Status:     b.Status,
			TotalPrice: &total,
			Location:   b.Location,
		}
		if _, err := s.CreateBooking(ctx, nb); err != nil {
			return fmt.Errorf("seeding booking: %w", err)
		}
	}

	for _, ref := range d.SavedItems {
		if _, err := s.SaveItem(ctx, ref.UserID, ref.ItemID); err != nil {
			return fmt.Errorf("seeding saved item: %w", err)
		}
	}

	for _, ref := range d.RecentlyViewed {
		if _, err := s.AddRecentlyViewed(ctx, ref.UserID, ref.ItemID); err != nil {
			return fmt.Errorf("seeding recently viewed item: %w", err)
		}
	}

	slog.Info("seed data loaded",
		"users", len(d.Users),
		"items", len(d.Items),
		"diy_projects", len(d.DiyProjects),
		"bookings", len(d.Bookings),
	)
	return nil
}
