package quotes

import (
	"math/rand"
	"sync"
	"time"
)

const distractorCount = 3

// Rand is the randomness the selector draws from. Intn must return a value
// in [0, n).
type Rand interface {
	Intn(n int) int
}

type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand returns a Rand that is safe to share between goroutines.
func NewRand(seed int64) Rand {
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}

type Selector struct {
	repo *Repository
	rng  Rand
}

func NewSelector(repo *Repository, rng Rand) *Selector {
	if rng == nil {
		rng = NewRand(time.Now().UnixNano())
	}
	return &Selector{
		repo: repo,
		rng:  rng,
	}
}

// SelectQuote draws one quote eligible for mode. Calls are independent, so
// the same quote may be served twice in a row.
func (s *Selector) SelectQuote(mode Mode) QuoteView {
	pool := s.repo.FilterByTiers(mode.Tiers()...)
	if len(pool) == 0 {
		// An empty tier bucket degrades to the whole corpus instead of failing.
		pool = s.repo.All()
	}

	chosen := pool[s.rng.Intn(len(pool))]
	view := QuoteView{
		ID:         chosen.ID,
		Text:       chosen.Text,
		Difficulty: mode,
		Source:     chosen.Source,
	}

	if mode.MultipleChoice() {
		view.Options = s.buildOptions(chosen.Author)
	}
	return view
}

// buildOptions returns the correct author plus up to three distinct
// distractors in random order. Corpora with fewer than four distinct authors
// yield fewer options.
func (s *Selector) buildOptions(correctAuthor string) []string {
	authors := s.repo.AllAuthors()
	candidates := make([]string, 0, len(authors))
	for _, author := range authors {
		if author != correctAuthor {
			candidates = append(candidates, author)
		}
	}

	s.shuffle(candidates)
	if len(candidates) > distractorCount {
		candidates = candidates[:distractorCount]
	}

	options := make([]string, 0, len(candidates)+1)
	options = append(options, candidates...)
	options = append(options, correctAuthor)
	s.shuffle(options)
	return options
}

func (s *Selector) shuffle(items []string) {
	for i := len(items) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
