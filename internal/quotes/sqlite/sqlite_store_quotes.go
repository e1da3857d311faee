package sqlite

import (
	"context"
	"database/sql"
	"time"

	"quote-guessr/internal/quotes"
)

// ReplaceQuotes swaps the stored corpus for items in one transaction, so a
// reader never observes a half-imported corpus.
func (s *SQLiteStore) ReplaceQuotes(ctx context.Context, items []quotes.Quote) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM quotes`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(
		ctx,
		`INSERT INTO quotes (quote_id, text, author, tier, source, imported_at_unix)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC().UnixNano()
	for _, item := range items {
		var source sql.NullString
		if item.Source != "" {
			source = sql.NullString{String: item.Source, Valid: true}
		}

		if _, err := stmt.ExecContext(ctx, item.ID, item.Text, item.Author, string(item.Tier), source, now); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadQuotes(ctx context.Context) ([]quotes.Quote, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT quote_id, text, author, tier, source
		 FROM quotes
		 ORDER BY quote_id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]quotes.Quote, 0)
	for rows.Next() {
		var (
			item   quotes.Quote
			tier   string
			source sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.Text, &item.Author, &tier, &source); err != nil {
			return nil, err
		}
		item.Tier = quotes.Tier(tier)
		item.Source = source.String
		items = append(items, item)
	}

	return items, rows.Err()
}

func (s *SQLiteStore) CountQuotes(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quotes`).Scan(&count)
	return count, err
}
