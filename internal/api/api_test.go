package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/erazemk/izposoja/internal/auth"
	"github.com/erazemk/izposoja/internal/model"
	"github.com/erazemk/izposoja/internal/store"
)

func setupTestServer(t *testing.T) (*httptest.Server, store.Store) {
	t.Helper()
	s := store.NewMemory()
	server := httptest.NewServer(LoggingMiddleware(NewRouter(s)))
	t.Cleanup(server.Close)
	return server, s
}

// do sends a JSON request and decodes the response body into out when out
// is not nil.
func do(t *testing.T, method, url string, body, out any) *http.Response {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encoding request: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("building request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decoding %s %s response: %v", method, url, err)
		}
	}
	return resp
}

func intPtr(i int) *int { return &i }

func createTestUser(t *testing.T, s store.Store, username, password string) *model.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatal(err)
	}
	u, err := s.CreateUser(context.Background(), model.NewUser{Username: username, Password: hash, FullName: username})
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func createTestItem(t *testing.T, s store.Store, name, category string) *model.Item {
	t.Helper()
	item, err := s.CreateItem(context.Background(), model.NewItem{
		Name:        name,
		Description: name,
		Category:    category,
		Image:           "https://example.com/" + name + ".jpg",
		PricePerDay:     intPtr(25),
		MaxHireDuration: intPtr(7),
		MaxHireQuantity: intPtr(1),
		OwnerID:         1,
	})
	if err != nil {
		t.Fatal(err)
	}
	return item
}

func TestUsersAPIFlow(t *testing.T) {
	server, s := setupTestServer(t)

	var created map[string]any
	resp := do(t, "POST", server.URL+"/api/users", map[string]string{
		"username": "jane_doe",
		"password": "password123",
		"fullName": "Jane Doe",
	}, &created)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if _, ok := created["password"]; ok {
		t.Error("password must not be returned")
	}

	stored, _ := s.GetUserByUsername(context.Background(), "jane_doe")
	if stored == nil || stored.Password == "password123" {
		t.Fatal("expected a hashed password in the store")
	}

	var got model.User
	resp = do(t, "GET", server.URL+"/api/users/1", nil, &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got.FullName != "Jane Doe" {
		t.Errorf("expected full name 'Jane Doe', got %q", got.FullName)
	}

	resp = do(t, "POST", server.URL+"/api/users", map[string]string{
		"username": "jane_doe",
		"password": "other",
		"fullName": "Someone Else",
	}, nil)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for duplicate username, got %d", resp.StatusCode)
	}

	resp = do(t, "GET", server.URL+"/api/users/99", nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestLoginEndpoint(t *testing.T) {
	server, s := setupTestServer(t)
	createTestUser(t, s, "john_smith", "password123")

	tests := []struct {
		name     string
		body     map[string]string
		expected int
	}{
		{"valid", map[string]string{"username": "john_smith", "password": "password123"}, http.StatusOK},
		{"wrong password", map[string]string{"username": "john_smith", "password": "wrong"}, http.StatusUnauthorized},
		{"unknown user", map[string]string{"username": "nobody", "password": "password123"}, http.StatusUnauthorized},
		{"missing password", map[string]string{"username": "john_smith"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body map[string]any
			resp := do(t, "POST", server.URL+"/api/login", tt.body, &body)
			if resp.StatusCode != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, resp.StatusCode)
			}
			if tt.expected == http.StatusUnauthorized && body["message"] != "Invalid credentials" {
				t.Errorf("unexpected message %v", body["message"])
			}
			if tt.expected == http.StatusOK && body["username"] != "john_smith" {
				t.Errorf("expected user in response, got %v", body)
			}
		})
	}
}

func TestItemsAPIFlow(t *testing.T) {
	server, _ := setupTestServer(t)

	var item model.Item
	resp := do(t, "POST", server.URL+"/api/items", map[string]any{
		"name":        "Lawn Mower",
		"description": "Electric lawn mower",
		"category":    "Garden",
		"image":           "https://example.com/mower.jpg",
		"pricePerDay":     35,
		"pricePerWeek":    200,
		"maxHireDuration": 14,
		"maxHireQuantity": 1,
		"ownerId":         2,
	}, &item)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if !item.Available {
		t.Error("new items should be available")
	}

	var items []model.Item
	do(t, "GET", server.URL+"/api/items/category/Garden", nil, &items)
	if len(items) != 1 {
		t.Errorf("expected 1 garden item, got %d", len(items))
	}
	do(t, "GET", server.URL+"/api/items/category/Kitchen", nil, &items)
	if len(items) != 0 {
		t.Errorf("expected no kitchen items, got %d", len(items))
	}

	var updated model.Item
	resp = do(t, "PATCH", server.URL+"/api/items/1", map[string]any{"available": false}, &updated)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if updated.Available || updated.Name != "Lawn Mower" {
		t.Errorf("unexpected item after patch: %+v", updated)
	}

	resp = do(t, "PATCH", server.URL+"/api/items/1", map[string]any{"pricePerWeek": nil}, &updated)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if updated.PricePerWeek != nil || updated.PricePerDay != 35 {
		t.Errorf("expected explicit null to clear only pricePerWeek, got %+v", updated)
	}

	resp = do(t, "PATCH", server.URL+"/api/items/1", map[string]any{"pricePerWeek": -5}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for negative pricePerWeek, got %d", resp.StatusCode)
	}

	resp = do(t, "PATCH", server.URL+"/api/items/42", map[string]any{"available": false}, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}

	var missing map[string]string
	resp = do(t, "GET", server.URL+"/api/items/42", nil, &missing)
	if resp.StatusCode != http.StatusNotFound || missing["message"] != "Item not found" {
		t.Errorf("expected 404 Item not found, got %d %v", resp.StatusCode, missing)
	}

	resp = do(t, "GET", server.URL+"/api/items/abc", nil, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for non-numeric id, got %d", resp.StatusCode)
	}
}

func TestCreateItemValidation(t *testing.T) {
	server, _ := setupTestServer(t)

	var body validationResponse
	resp := do(t, "POST", server.URL+"/api/items", map[string]any{
		"name":     "Blender",
		"category": "Toys",
	}, &body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if body.Message != "Invalid request" {
		t.Errorf("unexpected message %q", body.Message)
	}

	fields := make(map[string]bool)
	for _, e := range body.Errors {
		fields[e.Field] = true
	}
	for _, want := range []string{"category", "description", "image", "ownerId", "pricePerDay", "maxHireDuration", "maxHireQuantity"} {
		if !fields[want] {
			t.Errorf("expected an error for %s, got %+v", want, body.Errors)
		}
	}
}

func TestCreateItemRequiresNumericFields(t *testing.T) {
	server, _ := setupTestServer(t)

	base := func() map[string]any {
		return map[string]any{
			"name":            "Wheelbarrow",
			"description":     "Steel wheelbarrow",
			"category":        "Garden",
			"image":           "https://example.com/wheelbarrow.jpg",
			"pricePerDay":     0,
			"maxHireDuration": 0,
			"maxHireQuantity": 0,
			"ownerId":         1,
		}
	}

	for _, field := range []string{"pricePerDay", "maxHireDuration", "maxHireQuantity"} {
		t.Run("missing "+field, func(t *testing.T) {
			body := base()
			delete(body, field)

			var resp validationResponse
			r := do(t, "POST", server.URL+"/api/items", body, &resp)
			if r.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", r.StatusCode)
			}
			if len(resp.Errors) != 1 || resp.Errors[0].Field != field {
				t.Errorf("expected a single error for %s, got %+v", field, resp.Errors)
			}
		})
	}

	t.Run("zero values", func(t *testing.T) {
		var item model.Item
		r := do(t, "POST", server.URL+"/api/items", base(), &item)
		if r.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201 for explicit zeros, got %d", r.StatusCode)
		}
		if item.PricePerDay != 0 || item.MaxHireDuration != 0 {
			t.Errorf("unexpected item %+v", item)
		}
	})
}

func TestCreateBookingDateOnly(t *testing.T) {
	server, s := setupTestServer(t)
	user := createTestUser(t, s, "john_smith", "pw")
	item := createTestItem(t, s, "Pressure Washer", model.CategoryGarden)

	var created model.Booking
	resp := do(t, "POST", server.URL+"/api/bookings", map[string]any{
		"itemId":     item.ID,
		"userId":     user.ID,
		"startDate":  "2025-05-01",
		"endDate":    "2025-05-04",
		"status":     "active",
		"totalPrice": 75,
	}, &created)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if want := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC); !created.StartDate.Equal(want) {
		t.Errorf("expected start %v, got %v", want, created.StartDate)
	}
	if got := created.EndDate.Sub(created.StartDate); got != 72*time.Hour {
		t.Errorf("expected a three day booking, got %v", got)
	}

	var body map[string]string
	resp = do(t, "POST", server.URL+"/api/bookings", map[string]any{
		"itemId":     item.ID,
		"userId":     user.ID,
		"startDate":  "01/05/2025",
		"endDate":    "2025-05-04",
		"status":     "active",
		"totalPrice": 75,
	}, &body)
	if resp.StatusCode != http.StatusBadRequest || body["message"] != "Invalid request body" {
		t.Errorf("expected 400 Invalid request body, got %d %v", resp.StatusCode, body)
	}
}

func TestCreateBookingRequiresTotalPrice(t *testing.T) {
	server, s := setupTestServer(t)
	user := createTestUser(t, s, "john_smith", "pw")
	item := createTestItem(t, s, "Ladder", model.CategoryRepairs)

	booking := map[string]any{
		"itemId":    item.ID,
		"userId":    user.ID,
		"startDate": "2025-06-01",
		"endDate":   "2025-06-02",
		"status":    "active",
	}

	var body validationResponse
	resp := do(t, "POST", server.URL+"/api/bookings", booking, &body)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	if len(body.Errors) != 1 || body.Errors[0].Field != "totalPrice" {
		t.Errorf("expected a single totalPrice error, got %+v", body.Errors)
	}

	booking["totalPrice"] = 0
	resp = do(t, "POST", server.URL+"/api/bookings", booking, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("expected 201 for a free booking, got %d", resp.StatusCode)
	}
}

func TestBookingsAPIFlow(t *testing.T) {
	server, s := setupTestServer(t)
	user := createTestUser(t, s, "john_smith", "pw")
	item := createTestItem(t, s, "Drill Machine", model.CategoryTools)

	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	booking := map[string]any{
		"itemId":     item.ID,
		"userId":     user.ID,
		"startDate":  start,
		"endDate":    start.Add(48 * time.Hour),
		"status":     "active",
		"totalPrice": 60,
		"location":   "Lenton",
	}

	var created model.Booking
	resp := do(t, "POST", server.URL+"/api/bookings", booking, &created)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	booking["itemId"] = 99
	var body map[string]string
	resp = do(t, "POST", server.URL+"/api/bookings", booking, &body)
	if resp.StatusCode != http.StatusNotFound || body["message"] != "Item not found" {
		t.Errorf("expected 404 Item not found, got %d %v", resp.StatusCode, body)
	}

	booking["itemId"] = item.ID
	booking["userId"] = 99
	resp = do(t, "POST", server.URL+"/api/bookings", booking, &body)
	if resp.StatusCode != http.StatusNotFound || body["message"] != "User not found" {
		t.Errorf("expected 404 User not found, got %d %v", resp.StatusCode, body)
	}

	var withItem []model.BookingWithItem
	do(t, "GET", server.URL+"/api/bookings/user/1", nil, &withItem)
	if len(withItem) != 1 || withItem[0].Item == nil || withItem[0].Item.Name != "Drill Machine" {
		t.Fatalf("expected one booking with its item, got %+v", withItem)
	}

	var byItem []model.Booking
	do(t, "GET", server.URL+"/api/bookings/item/1", nil, &byItem)
	if len(byItem) != 1 {
		t.Errorf("expected 1 booking for item, got %d", len(byItem))
	}

	resp = do(t, "PATCH", server.URL+"/api/bookings/1/status", map[string]string{}, &body)
	if resp.StatusCode != http.StatusBadRequest || body["message"] != "Status is required" {
		t.Errorf("expected 400 Status is required, got %d %v", resp.StatusCode, body)
	}

	var updated model.Booking
	resp = do(t, "PATCH", server.URL+"/api/bookings/1/status", map[string]string{"status": "completed"}, &updated)
	if resp.StatusCode != http.StatusOK || updated.Status != "completed" {
		t.Errorf("expected completed booking, got %d %+v", resp.StatusCode, updated)
	}
	if updated.TotalPrice != 60 {
		t.Errorf("status update must not touch other fields, got %+v", updated)
	}

	resp = do(t, "PATCH", server.URL+"/api/bookings/9/status", map[string]string{"status": "completed"}, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestSavedAndRecentAPIFlow(t *testing.T) {
	server, s := setupTestServer(t)
	createTestItem(t, s, "Garden Shovel", model.CategoryGarden)
	createTestItem(t, s, "Leaf Blower", model.CategoryGarden)

	ref := map[string]int64{"itemId": 1, "userId": 1}
	resp := do(t, "POST", server.URL+"/api/saved-items", ref, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var saved []model.SavedItemWithItem
	do(t, "GET", server.URL+"/api/saved-items/1", nil, &saved)
	if len(saved) != 1 || saved[0].Item == nil || saved[0].Item.Name != "Garden Shovel" {
		t.Fatalf("unexpected saved items: %+v", saved)
	}

	for _, path := range []string{"/api/saved-items/1/1", "/api/saved-items/1/1"} {
		resp = do(t, "DELETE", server.URL+path, nil, nil)
		if resp.StatusCode != http.StatusNoContent {
			t.Errorf("expected 204, got %d", resp.StatusCode)
		}
	}
	do(t, "GET", server.URL+"/api/saved-items/1", nil, &saved)
	if len(saved) != 0 {
		t.Errorf("expected no saved items, got %d", len(saved))
	}

	for _, itemID := range []int64{1, 2, 1} {
		resp = do(t, "POST", server.URL+"/api/recently-viewed", map[string]int64{"itemId": itemID, "userId": 1}, nil)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}
	}

	var recent []model.RecentlyViewedWithItem
	do(t, "GET", server.URL+"/api/recently-viewed/1", nil, &recent)
	if len(recent) != 2 {
		t.Fatalf("expected 2 recently viewed rows, got %d", len(recent))
	}
	if recent[0].ItemID != 1 {
		t.Errorf("expected the last viewed item first, got %d", recent[0].ItemID)
	}
}

func TestTestimonialsAndCertificates(t *testing.T) {
	server, s := setupTestServer(t)
	createTestUser(t, s, "jane_doe", "pw")
	createTestItem(t, s, "Hammer Drill", model.CategoryTools)

	resp := do(t, "POST", server.URL+"/api/testimonials", map[string]any{
		"itemId": 1, "userId": 1, "rating": 6, "comment": "Too good",
	}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for rating out of range, got %d", resp.StatusCode)
	}

	resp = do(t, "POST", server.URL+"/api/testimonials", map[string]any{
		"itemId": 1, "userId": 1, "rating": 5, "comment": "Great",
	}, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var testimonials []model.TestimonialWithUser
	do(t, "GET", server.URL+"/api/testimonials/1", nil, &testimonials)
	if len(testimonials) != 1 || testimonials[0].User == nil || testimonials[0].User.Username != "jane_doe" {
		t.Errorf("unexpected testimonials: %+v", testimonials)
	}

	resp = do(t, "POST", server.URL+"/api/certificates", map[string]any{"userId": 1, "name": "First Aid"}, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var certs []model.Certificate
	do(t, "GET", server.URL+"/api/certificates/1", nil, &certs)
	if len(certs) != 1 || certs[0].Name != "First Aid" {
		t.Errorf("unexpected certificates: %+v", certs)
	}
}

func TestDiyProjectsAPIFlow(t *testing.T) {
	server, _ := setupTestServer(t)

	resp := do(t, "POST", server.URL+"/api/diy-projects", map[string]any{
		"title":         "Herb planter",
		"description":   "Indoor herb planter",
		"image":         "https://example.com/planter.jpg",
		"duration":      "45 min project",
		"difficulty":    "Easy",
		"toolsRequired": []string{"Drill", "Hand Saw"},
		"type":          "project",
	}, nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var projects []model.DiyProject
	do(t, "GET", server.URL+"/api/diy-projects", nil, &projects)
	if len(projects) != 1 {
		t.Fatalf("expected 1 project, got %d", len(projects))
	}

	var project model.DiyProject
	do(t, "GET", server.URL+"/api/diy-projects/1", nil, &project)
	if len(project.ToolsRequired) != 2 {
		t.Errorf("expected 2 tools, got %v", project.ToolsRequired)
	}

	var body map[string]string
	resp = do(t, "GET", server.URL+"/api/diy-projects/7", nil, &body)
	if resp.StatusCode != http.StatusNotFound || body["message"] != "DIY project not found" {
		t.Errorf("expected 404 DIY project not found, got %d %v", resp.StatusCode, body)
	}
}

func TestMessagesAPIFlow(t *testing.T) {
	server, _ := setupTestServer(t)

	for _, m := range []map[string]any{
		{"senderId": 1, "receiverId": 2, "content": "Is the mower free?"},
		{"senderId": 2, "receiverId": 1, "content": "Yes"},
		{"senderId": 1, "receiverId": 3, "content": "Hello"},
	} {
		resp := do(t, "POST", server.URL+"/api/messages", m, nil)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}
	}

	var msgs []model.Message
	do(t, "GET", server.URL+"/api/messages/2/1", nil, &msgs)
	if len(msgs) != 2 || msgs[0].Content != "Is the mower free?" {
		t.Fatalf("unexpected conversation: %+v", msgs)
	}

	resp := do(t, "PATCH", server.URL+"/api/messages/read/1/2", nil, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	do(t, "GET", server.URL+"/api/messages/1/2", nil, &msgs)
	for _, m := range msgs {
		if m.IsRead != (m.SenderID == 1) {
			t.Errorf("message %d: isRead = %v", m.ID, m.IsRead)
		}
	}
}

// lockedBuffer collects log output written from server goroutines.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestMarkReadIsLogged(t *testing.T) {
	var logs lockedBuffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	server, _ := setupTestServer(t)
	do(t, "POST", server.URL+"/api/messages", map[string]any{"senderId": 1, "receiverId": 2, "content": "Hi"}, nil)

	resp := do(t, "PATCH", server.URL+"/api/messages/read/1/2", nil, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	out := logs.String()
	if !strings.Contains(out, "messages marked read") || !strings.Contains(out, "count=1") {
		t.Errorf("expected mark-read log at the default level, got:\n%s", out)
	}
}

func TestRequestIDHeader(t *testing.T) {
	server, _ := setupTestServer(t)

	resp := do(t, "GET", server.URL+"/api/items", nil, nil)
	if resp.Header.Get(RequestIDHeader) == "" {
		t.Error("expected a generated request id")
	}

	req, _ := http.NewRequest("GET", server.URL+"/api/items", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if got := resp.Header.Get(RequestIDHeader); got != "abc-123" {
		t.Errorf("expected propagated request id, got %q", got)
	}
}

func TestRecoverMiddleware(t *testing.T) {
	h := RecoverMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	var body map[string]string
	json.NewDecoder(rec.Body).Decode(&body)
	if body["message"] != "Internal server error" {
		t.Errorf("unexpected body %v", body)
	}
}
