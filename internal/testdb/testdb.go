// Package testdb opens throwaway in-memory SQLite databases carrying the
// properties table, for tests.
package testdb

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE properties (
	id                 INTEGER PRIMARY KEY AUTOINCREMENT,
	name               TEXT,
	region             TEXT,
	address            TEXT,
	transaction_type   TEXT,
	price              TEXT,
	price_value        REAL,
	lease_condition    TEXT,
	exclusive_area     TEXT,
	supply_area        TEXT,
	area               TEXT,
	area_value         REAL,
	lat                REAL,
	lng                REAL,
	key_money          REAL,
	maintenance_fee    REAL,
	parking            BOOLEAN,
	elevator           BOOLEAN,
	room_count         INTEGER,
	bathroom_count     INTEGER,
	purpose            TEXT,
	total_floors       INTEGER,
	floor_number       INTEGER,
	building_direction TEXT,
	approval_date      TEXT,
	move_in_date       TEXT,
	type               TEXT NOT NULL DEFAULT '상가',
	images             TEXT,
	created_at         TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at         TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
	is_active          BOOLEAN NOT NULL DEFAULT TRUE
);
`

var seq atomic.Int64

// New returns a fresh database that is closed when the test ends.
func New(t testing.TB) *sqlx.DB {
	t.Helper()

	// Each test gets its own named shared-cache database so that every
	// pooled connection sees the same tables.
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", seq.Add(1))
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}
	return db
}
