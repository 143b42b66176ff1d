package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erazemk/izposoja/internal/db"
	"github.com/erazemk/izposoja/internal/model"
	"github.com/erazemk/izposoja/internal/store"
	"github.com/erazemk/izposoja/internal/store/sqlite"
	"github.com/erazemk/izposoja/internal/store/storetest"
)

func TestSQLite(t *testing.T) {
	storetest.Run(t, func(t *testing.T, now func() time.Time) store.Store {
		return sqlite.New(db.NewTestDB(t), sqlite.WithClock(now))
	})
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	conn := db.NewTestDB(t)

	first := sqlite.New(conn)
	u, err := first.CreateUser(ctx, model.NewUser{Username: "jane_doe", Password: "hash", FullName: "Jane Doe"})
	require.NoError(t, err)
	_, err = first.AddRecentlyViewed(ctx, u.ID, 3)
	require.NoError(t, err)

	// A second Store over the same database sees the same rows and keeps
	// counting identities where the first left off.
	second := sqlite.New(conn)
	got, err := second.GetUserByUsername(ctx, "jane_doe")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, u.ID, got.ID)

	next, err := second.CreateUser(ctx, model.NewUser{Username: "john_smith", Password: "hash", FullName: "John Smith"})
	require.NoError(t, err)
	assert.Equal(t, u.ID+1, next.ID)

	recent, err := second.ListRecentlyViewed(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}
