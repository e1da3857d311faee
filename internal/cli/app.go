package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"quote-guessr/internal/quotes"
	"quote-guessr/internal/session"
)

const maxAttempts = 3

type Result struct {
	Verdict quotes.Verdict
	Score   session.Score
}

// Game is what the terminal loop plays against: the in-process core or a
// remote quote service.
type Game interface {
	NextQuote(ctx context.Context, mode quotes.Mode) (quotes.QuoteView, error)
	Answer(ctx context.Context, quoteID int, answer string, mode quotes.Mode) (Result, error)
	Reset(ctx context.Context) (session.Score, error)
	Score(ctx context.Context) (session.Score, error)
}

type Config struct {
	Mode quotes.Mode
	// Rounds stops the game after that many answered quotes; zero plays
	// until input ends or /quit.
	Rounds int
	Rand   quotes.Rand
}

// Run plays a local game over repo.
func Run(ctx context.Context, in io.Reader, out io.Writer, repo *quotes.Repository, cfg Config) error {
	return Play(ctx, in, out, NewLocalGame(repo, cfg.Rand), cfg)
}

func Play(ctx context.Context, in io.Reader, out io.Writer, game Game, cfg Config) error {
	mode := cfg.Mode
	if !mode.Valid() {
		mode = quotes.ModeMCEasy
	}

	reader := bufio.NewReader(in)
	printHelp(out, mode)

	var (
		score    session.Score
		answered int
	)
	for cfg.Rounds <= 0 || answered < cfg.Rounds {
		if err := ctx.Err(); err != nil {
			return err
		}

		view, err := game.NextQuote(ctx, mode)
		if err != nil {
			return err
		}
		printQuote(out, answered+1, view)

		outcome, err := readAnswer(reader, out, view)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}

		switch outcome.command {
		case commandQuit:
			printFinal(out, score)
			return nil
		case commandReset:
			if score, err = game.Reset(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "Score reset.")
			continue
		case commandScore:
			if score, err = game.Score(ctx); err != nil {
				return err
			}
			printScore(out, score)
			continue
		case commandMode:
			mode = outcome.mode
			fmt.Fprintf(out, "Mode set to %s.\n", mode)
			continue
		case commandSkip:
			fmt.Fprintln(out, "Skipping.")
			continue
		}

		result, err := game.Answer(ctx, view.ID, outcome.answer, mode)
		if err != nil {
			return err
		}
		score = result.Score
		answered++
		printVerdict(out, result)
	}

	printFinal(out, score)
	return nil
}

type command int

const (
	commandAnswer command = iota
	commandQuit
	commandReset
	commandMode
	commandSkip
	commandScore
)

type answerOutcome struct {
	command command
	answer  string
	mode    quotes.Mode
}

func readAnswer(reader *bufio.Reader, out io.Writer, view quotes.QuoteView) (answerOutcome, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		fmt.Fprint(out, "> ")
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return answerOutcome{}, err
		}
		line = strings.TrimRight(line, "\r\n")

		if outcome, ok := parseCommand(line); ok {
			if outcome.command == commandMode && outcome.mode == "" {
				fmt.Fprintf(out, "Unknown mode. Choose one of: %s\n", modeList())
				continue
			}
			return outcome, nil
		}

		if len(view.Options) == 0 {
			if strings.TrimSpace(line) == "" {
				fmt.Fprintln(out, "Please type an author name.")
				continue
			}
			return answerOutcome{answer: line}, nil
		}

		if choice, ok := optionForInput(view.Options, line); ok {
			return answerOutcome{answer: choice}, nil
		}
		if attempt < maxAttempts {
			fmt.Fprintf(out, "Invalid input. Please enter a letter A-%c.\n", 'A'+rune(len(view.Options)-1))
		}
	}

	return answerOutcome{command: commandSkip}, nil
}

func parseCommand(line string) (answerOutcome, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return answerOutcome{}, false
	}

	switch strings.ToLower(fields[0]) {
	case "/quit", "/exit":
		return answerOutcome{command: commandQuit}, true
	case "/reset":
		return answerOutcome{command: commandReset}, true
	case "/skip":
		return answerOutcome{command: commandSkip}, true
	case "/score":
		return answerOutcome{command: commandScore}, true
	case "/mode":
		outcome := answerOutcome{command: commandMode}
		if len(fields) == 2 {
			if mode, err := quotes.ParseMode(fields[1]); err == nil {
				outcome.mode = mode
			}
		}
		return outcome, true
	}
	return answerOutcome{}, false
}

// optionForInput accepts a letter (A, b, ...) or the exact option text.
func optionForInput(options []string, input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	letter := strings.ToUpper(trimmed)
	if len(letter) == 1 {
		idx := int(letter[0] - 'A')
		if idx >= 0 && idx < len(options) {
			return options[idx], true
		}
	}
	for _, option := range options {
		if option == trimmed {
			return option, true
		}
	}
	return "", false
}

func printHelp(out io.Writer, mode quotes.Mode) {
	fmt.Fprintf(out, "quote-guessr (mode %s)\n", mode)
	fmt.Fprintf(out, "Commands: /mode <%s>, /reset, /score, /skip, /quit\n", modeList())
}

func printQuote(out io.Writer, number int, view quotes.QuoteView) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Q%d: \"%s\"\n", number, view.Text)
	if len(view.Options) == 0 {
		fmt.Fprintln(out, "Who said it?")
		return
	}
	fmt.Fprintln(out)
	for idx, option := range view.Options {
		fmt.Fprintf(out, "%c. %s\n", 'A'+rune(idx), option)
	}
}

func printVerdict(out io.Writer, result Result) {
	fmt.Fprintln(out, result.Verdict.Message)
	if result.Verdict.Source != "" {
		fmt.Fprintf(out, "Source: %s\n", result.Verdict.Source)
	}
	printScore(out, result.Score)
}

func printScore(out io.Writer, score session.Score) {
	fmt.Fprintf(out, "Streak: %d (answered %d)\n", score.Current, score.Total)
}

func printFinal(out io.Writer, score session.Score) {
	fmt.Fprintf(out, "\nFinal streak: %d, answered: %d\n", score.Current, score.Total)
}

func modeList() string {
	modes := quotes.Modes()
	names := make([]string, 0, len(modes))
	for _, mode := range modes {
		names = append(names, string(mode))
	}
	return strings.Join(names, "|")
}
