package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"quote-guessr/internal/quotes"
	"quote-guessr/internal/userclient"
)

func main() {
	server := flag.String("server", "http://127.0.0.1:8080", "quote service base URL")
	modeFlag := flag.String("mode", string(quotes.ModeMCEasy), "game mode: mc-easy, mc-hard, type-easy, type-hard")
	rounds := flag.Int("rounds", 0, "stop after this many answers (0 plays until /quit)")
	timeout := flag.Duration("timeout", 5*time.Second, "HTTP timeout")
	flag.Parse()

	mode, err := quotes.ParseMode(*modeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v %q\n", err, *modeFlag)
		os.Exit(2)
	}

	err = userclient.Run(context.Background(), os.Stdin, os.Stdout, userclient.Config{
		ServerURL:   *server,
		Mode:        mode,
		Rounds:      *rounds,
		HTTPTimeout: *timeout,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
