package corpus

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"quote-guessr/internal/quotes"
	"quote-guessr/internal/quotes/sqlite"
)

const sqlitePrefix = "sqlite:"

// LoadError reports a corpus that could not be read or validated. It is
// fatal: a service must not start serving without a corpus.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load quote corpus %q: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type Kind int

const (
	KindFile Kind = iota
	KindHTTP
	KindSQLite
)

// Classify reports how source will be read and the location to read it
// from (the path with any sqlite: prefix removed).
func Classify(source string) (Kind, string) {
	source = strings.TrimSpace(source)
	lower := strings.ToLower(source)

	switch {
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return KindHTTP, source
	case strings.HasPrefix(lower, sqlitePrefix):
		return KindSQLite, strings.TrimPrefix(source[len(sqlitePrefix):], "//")
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite, source
	}
	return KindFile, source
}

// Load reads and validates the corpus named by source: an http(s) URL
// serving a JSON array, a sqlite:<path> database (or a .db/.sqlite path), or
// a local JSON file. client may be nil.
func Load(ctx context.Context, source string, client *http.Client) (*quotes.Repository, error) {
	items, err := Read(ctx, source, client)
	if err != nil {
		return nil, err
	}

	repo, err := quotes.NewRepository(items)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return repo, nil
}

// Read returns the raw records from source without building a repository.
func Read(ctx context.Context, source string, client *http.Client) ([]quotes.Quote, error) {
	if strings.TrimSpace(source) == "" {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("no corpus source configured")}
	}

	var (
		items []quotes.Quote
		err   error
	)
	kind, location := Classify(source)
	switch kind {
	case KindHTTP:
		items, err = Fetch(ctx, client, location)
	case KindSQLite:
		items, err = readSQLite(ctx, location)
	default:
		items, err = readFile(location)
	}
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return items, nil
}

func readFile(path string) ([]quotes.Quote, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return quotes.Decode(file)
}

func readSQLite(ctx context.Context, path string) ([]quotes.Quote, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	// Loading never writes to the source database.
	store, err := sqlite.OpenReadOnly(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	items, err := store.LoadQuotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", quotes.ErrMalformedCorpus, err)
	}
	return items, nil
}
