package httpapi

import (
	"quote-guessr/internal/quotes"
	"quote-guessr/internal/session"
)

const (
	defaultCookieName  = "quote_session"
	defaultMaxLogBytes = 512
)

type QuoteSelector interface {
	SelectQuote(mode quotes.Mode) quotes.QuoteView
}

type AnswerEvaluator interface {
	Evaluate(quoteID int, answer string, mode quotes.Mode) (quotes.Verdict, error)
}

type Config struct {
	CookieName   string
	SecureCookie bool
	// MaxLogBytes bounds how much of each response body the request log keeps.
	MaxLogBytes int
}

type API struct {
	selector  QuoteSelector
	evaluator AnswerEvaluator
	sessions  *session.Store
	cfg       Config
}

func NewAPI(selector QuoteSelector, evaluator AnswerEvaluator, sessions *session.Store, cfg Config) *API {
	if sessions == nil {
		sessions = session.NewStore(session.DefaultTTL)
	}
	if cfg.CookieName == "" {
		cfg.CookieName = defaultCookieName
	}
	if cfg.MaxLogBytes <= 0 {
		cfg.MaxLogBytes = defaultMaxLogBytes
	}
	return &API{
		selector:  selector,
		evaluator: evaluator,
		sessions:  sessions,
		cfg:       cfg,
	}
}

// NewRepositoryAPI wires the quote core over repo.
func NewRepositoryAPI(repo *quotes.Repository, rng quotes.Rand, sessions *session.Store, cfg Config) *API {
	return NewAPI(quotes.NewSelector(repo, rng), quotes.NewEvaluator(repo), sessions, cfg)
}
