// Package storetest is a conformance suite every store.Store backend must pass.
package storetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/izposoja/internal/model"
	"github.com/erazemk/izposoja/internal/store"
)

// Factory returns an empty store whose timestamps come from now.
type Factory func(t *testing.T, now func() time.Time) store.Store

// Run runs the conformance suite against stores built by newStore.
func Run(t *testing.T, newStore Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, s store.Store, clock *Clock)
	}{
		{"IdentitiesIncreaseFromOne", testIdentities},
		{"IdentitiesNotReused", testIdentitiesNotReused},
		{"GetAfterInsert", testGetAfterInsert},
		{"GetUnknownIsAbsent", testGetUnknown},
		{"DuplicateUsername", testDuplicateUsername},
		{"ListItemsByCategory", testItemsByCategory},
		{"UpdateItem", testUpdateItem},
		{"UpdateItemClearsNullable", testUpdateItemClearsNullable},
		{"RecentlyViewedUpsert", testRecentlyViewedUpsert},
		{"RecentlyViewedLimitAndOrder", testRecentlyViewedLimit},
		{"RecentlyViewedTieBreak", testRecentlyViewedTieBreak},
		{"SaveItemTwice", testSaveItemTwice},
		{"MessagesBetween", testMessagesBetween},
		{"MarkMessagesRead", testMarkMessagesRead},
		{"BookingWithMissingItem", testBookingWithMissingItem},
		{"TestimonialsWithUser", testTestimonialsWithUser},
		{"SavedAndRecentWithItem", testSavedAndRecentWithItem},
		{"BookingLifecycle", testBookingLifecycle},
		{"UpdateBooking", testUpdateBooking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := NewClock()
			tt.fn(t, newStore(t, clock.Now), clock)
		})
	}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func newUser(name string) model.NewUser {
	return model.NewUser{Username: name, Password: "secret", FullName: "User " + name}
}

func newItem(name, category string) model.NewItem {
	return model.NewItem{
		Name:            name,
		Description:     name + " for hire",
		Category:        category,
		Image:           "https://example.com/" + name + ".jpg",
		MaxHireDuration: intPtr(7),
		MaxHireQuantity: intPtr(1),
		PricePerDay:     intPtr(20),
		OwnerID:         2,
	}
}

func newBooking(itemID, userID int64, start time.Time) model.NewBooking {
	return model.NewBooking{
		ItemID:     itemID,
		UserID:     userID,
		StartDate:  model.Date{Time: start},
		EndDate:    model.Date{Time: start.Add(72 * time.Hour)},
		Status:     model.BookingStatusActive,
		TotalPrice: intPtr(105),
		Location:   strPtr("Lenton"),
	}
}

func testIdentities(t *testing.T, s store.Store, clock *Clock) {
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		u, err := s.CreateUser(ctx, newUser(fmt.Sprintf("user%d", i)))
		require.NoError(t, err)
		assert.Equal(t, i, u.ID, "user")

		item, err := s.CreateItem(ctx, newItem(fmt.Sprintf("item%d", i), model.CategoryTools))
		require.NoError(t, err)
		assert.Equal(t, i, item.ID, "item")

		b, err := s.CreateBooking(ctx, newBooking(item.ID, u.ID, clock.Now()))
		require.NoError(t, err)
		assert.Equal(t, i, b.ID, "booking")

		tm, err := s.CreateTestimonial(ctx, model.NewTestimonial{ItemID: item.ID, UserID: u.ID, Rating: 5, Comment: "ok"})
		require.NoError(t, err)
		assert.Equal(t, i, tm.ID, "testimonial")

		c, err := s.CreateCertificate(ctx, model.NewCertificate{UserID: u.ID, Name: "Safety Training"})
		require.NoError(t, err)
		assert.Equal(t, i, c.ID, "certificate")

		p, err := s.CreateDiyProject(ctx, model.NewDiyProject{Title: "Shelf", Description: "d", Image: "i", Duration: "1 hr", Type: "project"})
		require.NoError(t, err)
		assert.Equal(t, i, p.ID, "diy project")

		m, err := s.SendMessage(ctx, model.NewMessage{SenderID: 1, ReceiverID: 2, Content: "hi"})
		require.NoError(t, err)
		assert.Equal(t, i, m.ID, "message")

		si, err := s.SaveItem(ctx, u.ID, item.ID)
		require.NoError(t, err)
		assert.Equal(t, i, si.ID, "saved item")

		r, err := s.AddRecentlyViewed(ctx, u.ID, item.ID)
		require.NoError(t, err)
		assert.Equal(t, i, r.ID, "recently viewed")
	}
}

func testIdentitiesNotReused(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()

	first, err := s.SaveItem(ctx, 1, 1)
	require.NoError(t, err)
	require.NoError(t, s.RemoveSavedItem(ctx, 1, 1))

	second, err := s.SaveItem(ctx, 1, 1)
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func testGetAfterInsert(t *testing.T, s store.Store, clock *Clock) {
	ctx := context.Background()

	nu := newUser("john_smith")
	nu.Occupation = strPtr("Accountant")
	u, err := s.CreateUser(ctx, nu)
	require.NoError(t, err)
	got, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.CreatedAt.Equal(clock.Now()))
	assert.Equal(t, nu.User(u.ID, got.CreatedAt), *got)

	ni := newItem("DeWalt Power Drill", model.CategoryTools)
	ni.AdditionalImages = []string{"https://example.com/drill-2.jpg"}
	ni.Specifications = map[string]string{"weight": "2.5 kg", "age": "2 years"}
	ni.SuitableTasks = []string{"Building", "Wood"}
	ni.Suitability = []string{"Beginners"}
	ni.CareInstructions = strPtr("Keep dry")
	ni.SafetyInstructions = strPtr("Wear goggles")
	ni.PricePerWeek = intPtr(150)
	item, err := s.CreateItem(ctx, ni)
	require.NoError(t, err)
	gotItem, err := s.GetItem(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, gotItem)
	assert.Equal(t, ni.Item(item.ID, gotItem.CreatedAt), *gotItem)
	assert.Nil(t, gotItem.TrainingRequired, "unset optional text stays absent")
	assert.Nil(t, gotItem.Rating)
	assert.True(t, gotItem.Available)

	nb := newBooking(item.ID, u.ID, clock.Now().Add(24*time.Hour))
	b, err := s.CreateBooking(ctx, nb)
	require.NoError(t, err)
	gotBooking, err := s.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, gotBooking)
	assert.True(t, gotBooking.StartDate.Equal(nb.StartDate.Time))
	assert.True(t, gotBooking.EndDate.Equal(nb.EndDate.Time))
	assert.Equal(t, nb.Status, gotBooking.Status)
	assert.Equal(t, *nb.TotalPrice, gotBooking.TotalPrice)
	assert.Equal(t, "Lenton", *gotBooking.Location)

	np := model.NewDiyProject{
		Title: "Raised bed", Description: "Garden bed", Image: "bed.jpg", Duration: "1 hr project",
		Difficulty: strPtr("Easy"), ToolsRequired: []string{"Garden Shovel", "Drill"}, Type: "project",
	}
	p, err := s.CreateDiyProject(ctx, np)
	require.NoError(t, err)
	gotProject, err := s.GetDiyProject(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, gotProject)
	assert.Equal(t, np.DiyProject(p.ID, gotProject.CreatedAt), *gotProject)

	tm, err := s.CreateTestimonial(ctx, model.NewTestimonial{ItemID: item.ID, UserID: u.ID, Rating: 4, Comment: "Great tool"})
	require.NoError(t, err)
	gotTestimonial, err := s.GetTestimonial(ctx, tm.ID)
	require.NoError(t, err)
	require.NotNil(t, gotTestimonial)
	assert.Equal(t, 4, gotTestimonial.Rating)
	assert.Equal(t, "Great tool", gotTestimonial.Comment)

	c, err := s.CreateCertificate(ctx, model.NewCertificate{UserID: u.ID, Name: "First Aid"})
	require.NoError(t, err)
	gotCert, err := s.GetCertificate(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, gotCert)
	assert.Equal(t, "First Aid", gotCert.Name)
	assert.True(t, gotCert.IssuedAt.Equal(clock.Now()))
}

func testGetUnknown(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()

	u, err := s.GetUser(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = s.GetUserByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, u)

	item, err := s.GetItem(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, item)

	b, err := s.GetBooking(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, b)

	tm, err := s.GetTestimonial(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, tm)

	c, err := s.GetCertificate(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, c)

	p, err := s.GetDiyProject(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, p)

	updated, err := s.UpdateItem(ctx, 42, model.ItemPatch{Name: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, updated)

	b, err = s.UpdateBookingStatus(ctx, 42, model.BookingStatusCompleted)
	require.NoError(t, err)
	assert.Nil(t, b)

	assert.NoError(t, s.RemoveSavedItem(ctx, 1, 1))
}

func testDuplicateUsername(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()

	_, err := s.CreateUser(ctx, newUser("jane_doe"))
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, newUser("jane_doe"))
	assert.ErrorIs(t, err, store.ErrDuplicateUsername)

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	got, err := s.GetUserByUsername(ctx, "jane_doe")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID)
}

func testItemsByCategory(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()

	for _, ni := range []model.NewItem{
		newItem("Drill", model.CategoryTools),
		newItem("Shovel", model.CategoryGarden),
		newItem("Mower", model.CategoryGarden),
	} {
		_, err := s.CreateItem(ctx, ni)
		require.NoError(t, err)
	}

	garden, err := s.ListItemsByCategory(ctx, model.CategoryGarden)
	require.NoError(t, err)
	require.Len(t, garden, 2)
	assert.Equal(t, "Shovel", garden[0].Name)
	assert.Equal(t, "Mower", garden[1].Name)

	kitchen, err := s.ListItemsByCategory(ctx, model.CategoryKitchen)
	require.NoError(t, err)
	assert.Empty(t, kitchen)

	all, err := s.ListItems(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func testUpdateItem(t *testing.T, s store.Store, clock *Clock) {
	ctx := context.Background()

	item, err := s.CreateItem(ctx, newItem("Lawn Mower", model.CategoryGarden))
	require.NoError(t, err)
	clock.Advance(time.Hour)

	off := false
	tasks := []string{"Lawn care"}
	updated, err := s.UpdateItem(ctx, item.ID, model.ItemPatch{
		PricePerDay:   intPtr(35),
		Available:     &off,
		SuitableTasks: &tasks,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, item.ID, updated.ID)
	assert.True(t, updated.CreatedAt.Equal(item.CreatedAt), "update keeps creation time")
	assert.Equal(t, "Lawn Mower", updated.Name)
	assert.Equal(t, 35, updated.PricePerDay)
	assert.False(t, updated.Available)
	assert.Equal(t, []string{"Lawn care"}, updated.SuitableTasks)

	got, err := s.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)
}

func testUpdateItemClearsNullable(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()

	ni := newItem("Hedge Trimmer", model.CategoryGarden)
	ni.PricePerWeek = intPtr(90)
	ni.SafetyInstructions = strPtr("Wear gloves")
	item, err := s.CreateItem(ctx, ni)
	require.NoError(t, err)

	updated, err := s.UpdateItem(ctx, item.ID, model.ItemPatch{
		PricePerWeek:       model.Null[int](),
		SafetyInstructions: model.Null[string](),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Nil(t, updated.PricePerWeek)
	assert.Nil(t, updated.SafetyInstructions)
	assert.Equal(t, 20, updated.PricePerDay)

	got, err := s.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Nil(t, got.PricePerWeek)
	assert.Nil(t, got.SafetyInstructions)
}

func testRecentlyViewedUpsert(t *testing.T, s store.Store, clock *Clock) {
	ctx := context.Background()

	first, err := s.AddRecentlyViewed(ctx, 1, 3)
	require.NoError(t, err)

	second := clock.Advance(time.Minute)
	again, err := s.AddRecentlyViewed(ctx, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
	assert.True(t, again.ViewedAt.Equal(second))

	rows, err := s.ListRecentlyViewed(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, first.ID, rows[0].ID)
	assert.True(t, rows[0].ViewedAt.Equal(second))

	// A different user viewing the same item gets its own row.
	other, err := s.AddRecentlyViewed(ctx, 2, 3)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func testRecentlyViewedLimit(t *testing.T, s store.Store, clock *Clock) {
	ctx := context.Background()

	for itemID := int64(1); itemID <= 12; itemID++ {
		clock.Advance(time.Second)
		_, err := s.AddRecentlyViewed(ctx, 1, itemID)
		require.NoError(t, err)
	}

	rows, err := s.ListRecentlyViewed(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, store.RecentlyViewedLimit)
	for i, r := range rows {
		assert.Equal(t, int64(12-i), r.ItemID)
		if i > 0 {
			assert.True(t, r.ViewedAt.Before(rows[i-1].ViewedAt), "rows must be newest first")
		}
	}

	// Viewing an old item again moves it to the front without a new row.
	now := clock.Advance(time.Second)
	_, err = s.AddRecentlyViewed(ctx, 1, 1)
	require.NoError(t, err)
	rows, err = s.ListRecentlyViewed(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, store.RecentlyViewedLimit)
	assert.Equal(t, int64(1), rows[0].ItemID)
	assert.Equal(t, int64(1), rows[0].ID)
	assert.True(t, rows[0].ViewedAt.Equal(now))
}

func testRecentlyViewedTieBreak(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()

	for itemID := int64(1); itemID <= 3; itemID++ {
		_, err := s.AddRecentlyViewed(ctx, 1, itemID)
		require.NoError(t, err)
	}

	rows, err := s.ListRecentlyViewed(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{rows[0].ID, rows[1].ID, rows[2].ID})
}

func testSaveItemTwice(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()

	_, err := s.SaveItem(ctx, 1, 5)
	require.NoError(t, err)
	_, err = s.SaveItem(ctx, 1, 5)
	require.NoError(t, err)
	_, err = s.SaveItem(ctx, 1, 6)
	require.NoError(t, err)

	saved, err := s.ListSavedItems(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, saved, 3, "saving the same pair twice keeps both rows")

	require.NoError(t, s.RemoveSavedItem(ctx, 1, 5))
	saved, err = s.ListSavedItems(ctx, 1)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, int64(2), saved[0].ID, "the oldest duplicate is removed first")
	assert.Equal(t, int64(5), saved[0].ItemID)
	assert.Equal(t, int64(6), saved[1].ItemID)

	require.NoError(t, s.RemoveSavedItem(ctx, 1, 99))
	saved, err = s.ListSavedItems(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, saved, 2)
}

func testMessagesBetween(t *testing.T, s store.Store, clock *Clock) {
	ctx := context.Background()

	send := func(from, to int64, content string) {
		clock.Advance(time.Second)
		_, err := s.SendMessage(ctx, model.NewMessage{SenderID: from, ReceiverID: to, Content: content})
		require.NoError(t, err)
	}
	send(1, 2, "Is the drill free on Saturday?")
	send(2, 1, "Yes")
	send(1, 3, "unrelated")
	send(1, 2, "Great, booking now")

	ab, err := s.ListMessagesBetween(ctx, 1, 2)
	require.NoError(t, err)
	ba, err := s.ListMessagesBetween(ctx, 2, 1)
	require.NoError(t, err)

	require.Len(t, ab, 3)
	assert.Equal(t, ab, ba)
	assert.Equal(t, "Is the drill free on Saturday?", ab[0].Content)
	assert.Equal(t, "Yes", ab[1].Content)
	assert.Equal(t, "Great, booking now", ab[2].Content)
	for i := 1; i < len(ab); i++ {
		assert.False(t, ab[i].SentAt.Before(ab[i-1].SentAt), "messages must be oldest first")
	}
	for _, m := range ab {
		assert.False(t, m.IsRead)
	}
}

func testMarkMessagesRead(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()

	for _, m := range []model.NewMessage{
		{SenderID: 1, ReceiverID: 2, Content: "a"},
		{SenderID: 1, ReceiverID: 2, Content: "b"},
		{SenderID: 2, ReceiverID: 1, Content: "c"},
	} {
		_, err := s.SendMessage(ctx, m)
		require.NoError(t, err)
	}

	n, err := s.MarkMessagesRead(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.MarkMessagesRead(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "already read messages are not counted again")

	msgs, err := s.ListMessagesBetween(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	for _, m := range msgs {
		assert.Equal(t, m.SenderID == 1, m.IsRead, "message %d", m.ID)
	}
}

func testBookingWithMissingItem(t *testing.T, s store.Store, clock *Clock) {
	ctx := context.Background()

	item, err := s.CreateItem(ctx, newItem("Hammer Drill", model.CategoryTools))
	require.NoError(t, err)
	_, err = s.CreateBooking(ctx, newBooking(item.ID, 1, clock.Now()))
	require.NoError(t, err)
	_, err = s.CreateBooking(ctx, newBooking(99, 1, clock.Now()))
	require.NoError(t, err)
	_, err = s.CreateBooking(ctx, newBooking(item.ID, 2, clock.Now()))
	require.NoError(t, err)

	rows, err := s.ListBookingsWithItemByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].Item)
	assert.Equal(t, "Hammer Drill", rows[0].Item.Name)
	assert.Equal(t, int64(99), rows[1].ItemID)
	assert.Nil(t, rows[1].Item)

	byItem, err := s.ListBookingsByItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Len(t, byItem, 2)

	all, err := s.ListBookings(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func testTestimonialsWithUser(t *testing.T, s store.Store, _ *Clock) {
	ctx := context.Background()

	u, err := s.CreateUser(ctx, newUser("john_smith"))
	require.NoError(t, err)

	for _, nt := range []model.NewTestimonial{
		{ItemID: 1, UserID: u.ID, Rating: 5, Comment: "Perfect for my DIY project"},
		{ItemID: 1, UserID: 77, Rating: 4, Comment: "Great tool"},
		{ItemID: 2, UserID: u.ID, Rating: 3, Comment: "Fine"},
	} {
		_, err := s.CreateTestimonial(ctx, nt)
		require.NoError(t, err)
	}

	rows, err := s.ListTestimonialsWithUserByItem(ctx, 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].User)
	assert.Equal(t, "john_smith", rows[0].User.Username)
	assert.Nil(t, rows[1].User)

	all, err := s.ListTestimonials(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func testSavedAndRecentWithItem(t *testing.T, s store.Store, clock *Clock) {
	ctx := context.Background()

	item, err := s.CreateItem(ctx, newItem("Garden Shovel", model.CategoryGarden))
	require.NoError(t, err)

	_, err = s.SaveItem(ctx, 1, item.ID)
	require.NoError(t, err)
	_, err = s.SaveItem(ctx, 1, 404)
	require.NoError(t, err)

	saved, err := s.ListSavedItemsWithItem(ctx, 1)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	require.NotNil(t, saved[0].Item)
	assert.Equal(t, "Garden Shovel", saved[0].Item.Name)
	assert.Nil(t, saved[1].Item)

	_, err = s.AddRecentlyViewed(ctx, 1, 404)
	require.NoError(t, err)
	clock.Advance(time.Second)
	_, err = s.AddRecentlyViewed(ctx, 1, item.ID)
	require.NoError(t, err)

	recent, err := s.ListRecentlyViewedWithItem(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.NotNil(t, recent[0].Item)
	assert.Equal(t, item.ID, recent[0].Item.ID)
	assert.Nil(t, recent[1].Item)

	certs, err := s.ListCertificatesByUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, certs)
}

func testBookingLifecycle(t *testing.T, s store.Store, clock *Clock) {
	ctx := context.Background()

	u, err := s.CreateUser(ctx, model.NewUser{Username: "a", Password: "pw", FullName: "A"})
	require.NoError(t, err)
	item, err := s.CreateItem(ctx, newItem("Leaf Blower", model.CategoryGarden))
	require.NoError(t, err)
	b, err := s.CreateBooking(ctx, newBooking(item.ID, u.ID, clock.Now()))
	require.NoError(t, err)

	rows, err := s.ListBookingsWithItemByUser(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Item)
	assert.Equal(t, "Leaf Blower", rows[0].Item.Name)

	clock.Advance(time.Hour)
	updated, err := s.UpdateBookingStatus(ctx, b.ID, model.BookingStatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, updated)

	got, err := s.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.BookingStatusCompleted, got.Status)

	// Everything but the status is unchanged.
	before := *b
	before.Status = model.BookingStatusCompleted
	assert.True(t, got.CreatedAt.Equal(before.CreatedAt))
	assert.True(t, got.StartDate.Equal(before.StartDate))
	assert.True(t, got.EndDate.Equal(before.EndDate))
	got.CreatedAt, got.StartDate, got.EndDate = before.CreatedAt, before.StartDate, before.EndDate
	assert.Equal(t, before, *got)

	// The store does not police transitions.
	got, err = s.UpdateBookingStatus(ctx, b.ID, "returning")
	require.NoError(t, err)
	assert.Equal(t, "returning", got.Status)
}

func testUpdateBooking(t *testing.T, s store.Store, clock *Clock) {
	ctx := context.Background()

	b, err := s.CreateBooking(ctx, newBooking(1, 1, clock.Now()))
	require.NoError(t, err)

	end := b.EndDate.Add(48 * time.Hour)
	updated, err := s.UpdateBooking(ctx, b.ID, model.BookingPatch{
		EndDate:    &model.Date{Time: end},
		TotalPrice: intPtr(175),
		Location:   model.Some("Beeston"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.EndDate.Equal(end))
	assert.True(t, updated.StartDate.Equal(b.StartDate))
	assert.Equal(t, 175, updated.TotalPrice)
	assert.Equal(t, model.BookingStatusActive, updated.Status)
	assert.Equal(t, "Beeston", *updated.Location)

	got, err := s.GetBooking(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.EndDate.Equal(end))
	assert.Equal(t, 175, got.TotalPrice)

	missing, err := s.UpdateBooking(ctx, 99, model.BookingPatch{TotalPrice: intPtr(1)})
	require.NoError(t, err)
	assert.Nil(t, missing)
}
