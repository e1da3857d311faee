package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"quote-guessr/internal/corpus"
	"quote-guessr/internal/quotes/sqlite"
)

func main() {
	source := flag.String("from", "quotes.json", "JSON corpus to import: file path or http(s) URL")
	dbPath := flag.String("db", envOr("QUOTES_DB", "quotes.db"), "SQLite database to write")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// Validate through the repository before touching the database so a bad
	// file never replaces a good corpus.
	repo, err := corpus.Load(ctx, *source, nil)
	if err != nil {
		log.Fatalf("import aborted: %v", err)
	}

	store, err := sqlite.NewSQLiteStore(*dbPath)
	if err != nil {
		log.Fatalf("open %s: %v", *dbPath, err)
	}
	defer store.Close()

	if err := store.ReplaceQuotes(ctx, repo.All()); err != nil {
		log.Fatalf("write %s: %v", *dbPath, err)
	}

	count, err := store.CountQuotes(ctx)
	if err != nil {
		log.Fatalf("count %s: %v", *dbPath, err)
	}
	log.Printf("imported %d quotes into %s", count, *dbPath)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
