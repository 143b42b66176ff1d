package store_test

import (
	"context"
	"cmp"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/izposoja/internal/model"
	"github.com/erazemk/izposoja/internal/store"
	"github.com/erazemk/izposoja/internal/store/storetest"
)

func intPtr(i int) *int { return &i }

// tickingClock returns a strictly later time on every call.
type tickingClock struct {
	base  time.Time
	ticks atomic.Int64
}

func (c *tickingClock) Now() time.Time {
	return c.base.Add(time.Duration(c.ticks.Add(1)) * time.Millisecond)
}

func (c *tickingClock) Last() time.Time {
	return c.base.Add(time.Duration(c.ticks.Load()) * time.Millisecond)
}

func TestMemory(t *testing.T) {
	storetest.Run(t, func(t *testing.T, now func() time.Time) store.Store {
		return store.NewMemory(store.WithClock(now))
	})
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	created, err := m.CreateItem(ctx, model.NewItem{
		Name:           "Drill",
		Description:    "d",
		Category:       model.CategoryTools,
		Image:          "i",
		SuitableTasks:  []string{"Building"},
		Specifications: map[string]string{"weight": "2 kg"},
		PricePerDay:    intPtr(10),
		OwnerID:        1,
	})
	require.NoError(t, err)

	created.Name = "changed"
	created.SuitableTasks[0] = "changed"
	created.Specifications["weight"] = "changed"

	got, err := m.GetItem(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Drill", got.Name)
	assert.Equal(t, []string{"Building"}, got.SuitableTasks)
	assert.Equal(t, "2 kg", got.Specifications["weight"])

	list, err := m.ListItems(ctx)
	require.NoError(t, err)
	list[0].SuitableTasks[0] = "changed again"

	got, err = m.GetItem(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Building"}, got.SuitableTasks)
}

func TestMemoryConcurrentWriters(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	const writers, perWriter = 8, 50
	var wg sync.WaitGroup
	for w := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWriter {
				userID := int64(w + 1)
				if _, err := m.SaveItem(ctx, userID, int64(i+1)); err != nil {
					t.Errorf("save item: %v", err)
				}
				if _, err := m.AddRecentlyViewed(ctx, userID, int64(i%5+1)); err != nil {
					t.Errorf("add recently viewed: %v", err)
				}
				if _, err := m.SendMessage(ctx, model.NewMessage{SenderID: userID, ReceiverID: 100, Content: fmt.Sprint(i)}); err != nil {
					t.Errorf("send message: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	seen := make(map[int64]bool)
	for w := range writers {
		saved, err := m.ListSavedItems(ctx, int64(w+1))
		require.NoError(t, err)
		assert.Len(t, saved, perWriter)
		for _, s := range saved {
			assert.False(t, seen[s.ID], "identity %d handed out twice", s.ID)
			seen[s.ID] = true
		}

		recent, err := m.ListRecentlyViewed(ctx, int64(w+1))
		require.NoError(t, err)
		assert.Len(t, recent, 5, "views of the same item collapse into one row")

		msgs, err := m.ListMessagesBetween(ctx, int64(w+1), 100)
		require.NoError(t, err)
		assert.Len(t, msgs, perWriter)
	}
	assert.Len(t, seen, writers*perWriter)
}

func TestMemoryConcurrentViewsKeepLatestTime(t *testing.T) {
	ctx := context.Background()
	clock := &tickingClock{base: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := store.NewMemory(store.WithClock(clock.Now))

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 25 {
				if _, err := m.AddRecentlyViewed(ctx, 1, 3); err != nil {
					t.Errorf("add recently viewed: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	recent, err := m.ListRecentlyViewed(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.True(t, recent[0].ViewedAt.Equal(clock.Last()),
		"viewedAt %v should be the last time handed out, %v", recent[0].ViewedAt, clock.Last())
}

func TestMemoryConcurrentMessagesOrderedByTime(t *testing.T) {
	ctx := context.Background()
	clock := &tickingClock{base: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := store.NewMemory(store.WithClock(clock.Now))

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 25 {
				n := model.NewMessage{SenderID: 1, ReceiverID: 2, Content: fmt.Sprintf("%d-%d", w, i)}
				if _, err := m.SendMessage(ctx, n); err != nil {
					t.Errorf("send message: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	msgs, err := m.ListMessagesBetween(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 200)

	slices.SortFunc(msgs, func(a, b model.Message) int { return cmp.Compare(a.ID, b.ID) })
	for i := 1; i < len(msgs); i++ {
		assert.True(t, msgs[i].SentAt.After(msgs[i-1].SentAt),
			"message %d sent at %v, not after message %d at %v",
			msgs[i].ID, msgs[i].SentAt, msgs[i-1].ID, msgs[i-1].SentAt)
	}
}
