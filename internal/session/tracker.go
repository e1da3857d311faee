package session

import "sync"

// Score is the per-session streak. Current counts consecutive correct
// answers and drops to zero on any miss; Total counts every evaluated answer
// since the last reset.
type Score struct {
	Current int `json:"score"`
	Total   int `json:"total"`
}

// Tracker owns one session's score. Its mutex serializes concurrent requests
// from the same session so retried submissions cannot lose updates.
type Tracker struct {
	mu    sync.Mutex
	score Score
}

func NewTracker() *Tracker {
	return &Tracker{}
}

func (t *Tracker) RecordOutcome(correct bool) Score {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.score.Total++
	if correct {
		t.score.Current++
	} else {
		t.score.Current = 0
	}
	return t.score
}

func (t *Tracker) Reset() Score {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.score = Score{}
	return t.score
}

func (t *Tracker) Snapshot() Score {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.score
}
