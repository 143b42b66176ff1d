package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. AUTOINCREMENT keeps identities from
// being reused after a row is deleted. References between tables are plain
// integers; dangling references are allowed.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    username      TEXT NOT NULL UNIQUE,
    password      TEXT NOT NULL,
    full_name     TEXT NOT NULL,
    occupation    TEXT,
    profile_image TEXT,
    created_at    DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
    id                      INTEGER PRIMARY KEY AUTOINCREMENT,
    name                    TEXT NOT NULL,
    description             TEXT NOT NULL,
    category                TEXT NOT NULL,
    image                   TEXT NOT NULL,
    additional_images       TEXT,
    specifications          TEXT,
    suitable_tasks          TEXT,
    suitability             TEXT,
    max_hire_duration       INTEGER NOT NULL,
    max_hire_quantity       INTEGER NOT NULL,
    care_instructions       TEXT,
    training_required       TEXT,
    expert_support_required TEXT,
    safety_instructions     TEXT,
    price_per_day           INTEGER NOT NULL,
    price_per_week          INTEGER,
    owner_id                INTEGER NOT NULL,
    rating                  INTEGER,
    available               BOOLEAN NOT NULL DEFAULT 1,
    created_at              DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_category ON items(category);

CREATE TABLE IF NOT EXISTS bookings (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    item_id     INTEGER NOT NULL,
    user_id     INTEGER NOT NULL,
    start_date  DATETIME NOT NULL,
    end_date    DATETIME NOT NULL,
    status      TEXT NOT NULL,
    total_price INTEGER NOT NULL,
    location    TEXT,
    created_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings(user_id);
CREATE INDEX IF NOT EXISTS idx_bookings_item ON bookings(item_id);

CREATE TABLE IF NOT EXISTS saved_items (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    item_id  INTEGER NOT NULL,
    user_id  INTEGER NOT NULL,
    saved_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_saved_items_user ON saved_items(user_id, item_id);

CREATE TABLE IF NOT EXISTS recently_viewed_items (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    item_id   INTEGER NOT NULL,
    user_id   INTEGER NOT NULL,
    viewed_at DATETIME NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_recently_viewed_pair
    ON recently_viewed_items(user_id, item_id);

CREATE TABLE IF NOT EXISTS testimonials (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    item_id    INTEGER NOT NULL,
    user_id    INTEGER NOT NULL,
    rating     INTEGER NOT NULL,
    comment    TEXT NOT NULL,
    created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_testimonials_item ON testimonials(item_id);

CREATE TABLE IF NOT EXISTS certificates (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id   INTEGER NOT NULL,
    name      TEXT NOT NULL,
    issued_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS diy_projects (
    id             INTEGER PRIMARY KEY AUTOINCREMENT,
    title          TEXT NOT NULL,
    description    TEXT NOT NULL,
    image          TEXT NOT NULL,
    duration       TEXT NOT NULL,
    difficulty     TEXT,
    tools_required TEXT,
    type           TEXT NOT NULL,
    created_at     DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS messages (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    sender_id   INTEGER NOT NULL,
    receiver_id INTEGER NOT NULL,
    content     TEXT NOT NULL,
    sent_at     DATETIME NOT NULL,
    is_read     BOOLEAN NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_messages_pair ON messages(sender_id, receiver_id);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
