package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const (
	defaultPath      = "quotes.db"
	busyTimeoutMilli = 5000
)

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a writable corpus database and makes
// sure the quotes table exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPath
	}

	store, err := open(path, false)
	if err != nil {
		return nil, err
	}
	if err := store.initSchema(context.Background()); err != nil {
		_ = store.db.Close()
		return nil, err
	}
	return store, nil
}

// OpenReadOnly opens an existing corpus database without creating it or
// touching its schema. A file without a quotes table fails on the first
// query.
func OpenReadOnly(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: empty database path")
	}
	return open(path, true)
}

func open(path string, readOnly bool) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn(path, readOnly))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	// Ping forces the connection so a missing read-only file fails here.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func dsn(path string, readOnly bool) string {
	params := url.Values{}
	params.Set("_busy_timeout", fmt.Sprint(busyTimeoutMilli))
	if readOnly {
		params.Set("mode", "ro")
	}
	return "file:" + path + "?" + params.Encode()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
