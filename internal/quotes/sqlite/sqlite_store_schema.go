package sqlite

import (
	"context"
)

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS quotes (
			quote_id INTEGER PRIMARY KEY CHECK (quote_id > 0),
			text TEXT NOT NULL,
			author TEXT NOT NULL,
			tier TEXT NOT NULL CHECK (tier IN ('easy', 'medium', 'hard')),
			-- NULL when the quote has no attribution.
			source TEXT,
			imported_at_unix INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_tier ON quotes(tier);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
