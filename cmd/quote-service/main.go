package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quote-guessr/internal/corpus"
	"quote-guessr/internal/httpapi"
	"quote-guessr/internal/quotes"
	"quote-guessr/internal/session"
)

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	addr := flag.String("addr", envOr("ADDR", ":8080"), "HTTP listen address")
	source := flag.String("corpus", envOr("QUOTES_CORPUS", "quotes.json"), "quote corpus: JSON file, http(s) URL, or sqlite:<path>")
	sessionTTL := flag.Duration("session-ttl", session.DefaultTTL, "idle time before a session score is dropped")
	secureCookie := flag.Bool("secure-cookie", false, "mark the session cookie Secure (serve over HTTPS)")
	flag.Parse()

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	repo, err := corpus.Load(loadCtx, *source, &http.Client{Timeout: 20 * time.Second})
	cancelLoad()
	if err != nil {
		log.Fatalf("corpus load failed: %v", err)
	}
	log.Printf("loaded %d quotes by %d authors from %s", repo.Len(), len(repo.AllAuthors()), *source)

	sessions := session.NewStore(*sessionTTL)
	api := httpapi.NewRepositoryAPI(repo, quotes.NewRand(time.Now().UnixNano()), sessions, httpapi.Config{
		SecureCookie: *secureCookie,
	})

	server := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewRouter(api),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sweepSessions(ctx, sessions, time.Hour)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown failed: %v", err)
		}
	}()

	log.Printf("quote-service listening on %s", *addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}

func sweepSessions(ctx context.Context, sessions *session.Store, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := sessions.Sweep(); removed > 0 {
				log.Printf("expired %d idle sessions", removed)
			}
		}
	}
}
