// Package sqlite implements store.Store on a SQLite database.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/erazemk/izposoja/internal/store"
)

var _ store.Store = (*Store)(nil)

// Store is a SQLite-backed entity store. The database must already have the
// schema from db.EnsureSchema applied.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the function used to timestamp new and touched records.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns a Store backed by db.
func New(db *sql.DB, opts ...Option) *Store {
	s := &Store{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// timestamp returns the current time in UTC, the zone every stored time uses
// so that DATETIME columns order correctly.
func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func nullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	v := int(ni.Int64)
	return &v
}

// encodeList and encodeMap serialise JSON columns. Nil values are stored as NULL.
func encodeList(v []string) (sql.NullString, error) {
	if v == nil {
		return sql.NullString{}, nil
	}
	return encodeJSON(v)
}

func encodeMap(v map[string]string) (sql.NullString, error) {
	if v == nil {
		return sql.NullString{}, nil
	}
	return encodeJSON(v)
}

func encodeJSON(v any) (sql.NullString, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encoding json column: %w", err)
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func decodeJSON(ns sql.NullString, target any) error {
	if !ns.Valid {
		return nil
	}
	if err := json.Unmarshal([]byte(ns.String), target); err != nil {
		return fmt.Errorf("decoding json column: %w", err)
	}
	return nil
}

// isUniqueConstraintError checks if the error is a SQLite unique constraint violation.
func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
