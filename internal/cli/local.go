package cli

import (
	"context"

	"quote-guessr/internal/quotes"
	"quote-guessr/internal/session"
)

// LocalGame plays against the in-process core with a single score tracker.
type LocalGame struct {
	selector  *quotes.Selector
	evaluator *quotes.Evaluator
	tracker   *session.Tracker
}

func NewLocalGame(repo *quotes.Repository, rng quotes.Rand) *LocalGame {
	return &LocalGame{
		selector:  quotes.NewSelector(repo, rng),
		evaluator: quotes.NewEvaluator(repo),
		tracker:   session.NewTracker(),
	}
}

func (g *LocalGame) NextQuote(_ context.Context, mode quotes.Mode) (quotes.QuoteView, error) {
	return g.selector.SelectQuote(mode), nil
}

func (g *LocalGame) Answer(_ context.Context, quoteID int, answer string, mode quotes.Mode) (Result, error) {
	verdict, err := g.evaluator.Evaluate(quoteID, answer, mode)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Verdict: verdict,
		Score:   g.tracker.RecordOutcome(verdict.Correct),
	}, nil
}

func (g *LocalGame) Reset(context.Context) (session.Score, error) {
	return g.tracker.Reset(), nil
}

func (g *LocalGame) Score(context.Context) (session.Score, error) {
	return g.tracker.Snapshot(), nil
}
