package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"quote-guessr/internal/cli"
	"quote-guessr/internal/corpus"
	"quote-guessr/internal/quotes"
)

func main() {
	source := flag.String("corpus", "quotes.json", "quote corpus: JSON file, http(s) URL, or sqlite:<path>")
	modeFlag := flag.String("mode", string(quotes.ModeMCEasy), "game mode: mc-easy, mc-hard, type-easy, type-hard")
	rounds := flag.Int("rounds", 0, "stop after this many answers (0 plays until /quit)")
	flag.Parse()

	mode, err := quotes.ParseMode(*modeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v %q\n", err, *modeFlag)
		os.Exit(2)
	}

	ctx := context.Background()
	repo, err := corpus.Load(ctx, *source, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	err = cli.Run(ctx, os.Stdin, os.Stdout, repo, cli.Config{
		Mode:   mode,
		Rounds: *rounds,
		Rand:   quotes.NewRand(time.Now().UnixNano()),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
