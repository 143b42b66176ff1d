package model

import (
	"encoding/json"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestNewItemDefaultsAvailable(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	item := NewItem{Name: "Drill", PricePerDay: intPtr(25), MaxHireDuration: intPtr(7), OwnerID: 2}.Item(7, now)
	if !item.Available {
		t.Error("expected item to default to available")
	}
	if item.PricePerDay != 25 || item.MaxHireDuration != 7 || item.MaxHireQuantity != 0 {
		t.Errorf("unexpected numeric fields: %+v", item)
	}
	if item.ID != 7 || !item.CreatedAt.Equal(now) {
		t.Errorf("expected id 7 at %v, got %d at %v", now, item.ID, item.CreatedAt)
	}
	if item.PricePerWeek != nil || item.Rating != nil || item.SafetyInstructions != nil {
		t.Error("expected unset optional fields to be nil")
	}

	off := false
	item = NewItem{Name: "Drill", Available: &off}.Item(1, now)
	if item.Available {
		t.Error("expected explicit available=false to be kept")
	}
}

func TestItemCloneIsDeep(t *testing.T) {
	orig := Item{
		AdditionalImages: []string{"a.jpg"},
		Specifications:   map[string]string{"weight": "2 kg"},
		SuitableTasks:    []string{"Building"},
		PricePerWeek:     intPtr(150),
	}

	c := orig.Clone()
	c.AdditionalImages[0] = "b.jpg"
	c.Specifications["weight"] = "3 kg"
	c.SuitableTasks[0] = "Digging"
	*c.PricePerWeek = 1

	if orig.AdditionalImages[0] != "a.jpg" || orig.Specifications["weight"] != "2 kg" ||
		orig.SuitableTasks[0] != "Building" || *orig.PricePerWeek != 150 {
		t.Errorf("clone shares memory with original: %+v", orig)
	}
}

func TestItemPatchApply(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	item := Item{ID: 3, Name: "Mower", PricePerDay: 35, Available: true, CreatedAt: created}

	off := false
	tasks := []string{"Lawn care"}
	ItemPatch{
		PricePerDay:   intPtr(40),
		Available:     &off,
		SuitableTasks: &tasks,
		Rating:        Some(4),
	}.Apply(&item)

	if item.ID != 3 || !item.CreatedAt.Equal(created) {
		t.Error("patch must not change identity or creation time")
	}
	if item.Name != "Mower" {
		t.Errorf("expected untouched name, got %q", item.Name)
	}
	if item.PricePerDay != 40 || item.Available || *item.Rating != 4 {
		t.Errorf("patch not applied: %+v", item)
	}
	tasks[0] = "changed"
	if item.SuitableTasks[0] != "Lawn care" {
		t.Error("patched slice shares memory with the patch")
	}
}

func TestBookingPatchApply(t *testing.T) {
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	b := Booking{ID: 1, ItemID: 3, UserID: 1, StartDate: start, Status: BookingStatusActive, TotalPrice: 105}

	tests := []struct {
		name  string
		patch BookingPatch
		check func(Booking) bool
	}{
		{"empty", BookingPatch{}, func(got Booking) bool { return got == b }},
		{"status", BookingPatch{Status: strPtr(BookingStatusCompleted)}, func(got Booking) bool {
			return got.Status == BookingStatusCompleted && got.TotalPrice == 105 && got.StartDate.Equal(start)
		}},
		{"arbitrary status", BookingPatch{Status: strPtr("lost-in-transit")}, func(got Booking) bool {
			return got.Status == "lost-in-transit"
		}},
		{"location", BookingPatch{Location: Some("Lenton")}, func(got Booking) bool {
			return got.Location != nil && *got.Location == "Lenton" && got.Status == BookingStatusActive
		}},
	}

	for _, tt := range tests {
		got := b
		tt.patch.Apply(&got)
		if !tt.check(got) {
			t.Errorf("%s: unexpected booking %+v", tt.name, got)
		}
	}
}

func TestItemPatchClearsNullableFields(t *testing.T) {
	item := Item{Name: "Drill", PricePerWeek: intPtr(150), Rating: intPtr(4), CareInstructions: strPtr("Keep dry")}

	var patch ItemPatch
	if err := json.Unmarshal([]byte(`{"rating": null, "pricePerWeek": 175}`), &patch); err != nil {
		t.Fatalf("decoding patch: %v", err)
	}
	patch.Apply(&item)

	if item.Rating != nil {
		t.Errorf("expected rating cleared, got %d", *item.Rating)
	}
	if item.PricePerWeek == nil || *item.PricePerWeek != 175 {
		t.Errorf("expected price per week 175, got %v", item.PricePerWeek)
	}
	if item.CareInstructions == nil || *item.CareInstructions != "Keep dry" {
		t.Error("absent key must leave the field alone")
	}

	ItemPatch{CareInstructions: Null[string]()}.Apply(&item)
	if item.CareInstructions != nil {
		t.Error("expected care instructions cleared")
	}
}

func TestBookingPatchClearsLocation(t *testing.T) {
	b := Booking{ID: 1, Location: strPtr("Lenton")}

	var patch BookingPatch
	if err := json.Unmarshal([]byte(`{"location": null}`), &patch); err != nil {
		t.Fatalf("decoding patch: %v", err)
	}
	patch.Apply(&b)

	if b.Location != nil {
		t.Errorf("expected location cleared, got %q", *b.Location)
	}
}

func TestDateUnmarshal(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{`"2025-05-01"`, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), false},
		{`"2025-05-01T09:30:00Z"`, time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC), false},
		{`"2025-05-01T09:30:00.000Z"`, time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC), false},
		{`"2025-05-01T11:30:00+02:00"`, time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC), false},
		{`"01/05/2025"`, time.Time{}, true},
		{`20250501`, time.Time{}, true},
	}

	for _, tt := range tests {
		var d Date
		err := json.Unmarshal([]byte(tt.in), &d)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if !d.Equal(tt.want) {
			t.Errorf("%s: got %v, want %v", tt.in, d.Time, tt.want)
		}
	}
}

func TestNewBookingFromDateOnlyJSON(t *testing.T) {
	var n NewBooking
	body := `{"itemId": 3, "userId": 1, "startDate": "2025-05-01", "endDate": "2025-05-04", "status": "active", "totalPrice": 105}`
	if err := json.Unmarshal([]byte(body), &n); err != nil {
		t.Fatalf("decoding booking: %v", err)
	}

	b := n.Booking(1, time.Now())
	if got := b.EndDate.Sub(b.StartDate); got != 72*time.Hour {
		t.Errorf("expected a three day booking, got %v", got)
	}
	if b.TotalPrice != 105 {
		t.Errorf("expected total price 105, got %d", b.TotalPrice)
	}
}
