package quotes

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Repository is the read-only quote corpus. It is never mutated after
// NewRepository returns, so concurrent readers need no locking.
type Repository struct {
	quotes  []Quote
	byID    map[int]int
	authors []string
}

// Decode reads a JSON array of quote records. Anything after the array
// other than whitespace is rejected.
func Decode(r io.Reader) ([]Quote, error) {
	dec := json.NewDecoder(r)

	var items []Quote
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCorpus, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after quote array", ErrMalformedCorpus)
	}
	return items, nil
}

func NewRepository(items []Quote) (*Repository, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no quotes", ErrMalformedCorpus)
	}

	repo := &Repository{
		quotes: make([]Quote, 0, len(items)),
		byID:   make(map[int]int, len(items)),
	}
	seenAuthors := make(map[string]struct{})

	for idx, item := range items {
		if err := validateQuote(item); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedCorpus, idx, err)
		}
		if _, dup := repo.byID[item.ID]; dup {
			return nil, fmt.Errorf("%w: record %d: duplicate id %d", ErrMalformedCorpus, idx, item.ID)
		}

		repo.byID[item.ID] = len(repo.quotes)
		repo.quotes = append(repo.quotes, item)

		if _, ok := seenAuthors[item.Author]; !ok {
			seenAuthors[item.Author] = struct{}{}
			repo.authors = append(repo.authors, item.Author)
		}
	}

	return repo, nil
}

func validateQuote(item Quote) error {
	switch {
	case item.ID <= 0:
		return fmt.Errorf("id must be a positive integer, got %d", item.ID)
	case strings.TrimSpace(item.Text) == "":
		return fmt.Errorf("quote %d: text is required", item.ID)
	case strings.TrimSpace(item.Author) == "":
		return fmt.Errorf("quote %d: author is required", item.ID)
	case !item.Tier.Valid():
		return fmt.Errorf("quote %d: unknown difficulty %q", item.ID, item.Tier)
	}
	return nil
}

func (r *Repository) FindByID(id int) (Quote, error) {
	idx, ok := r.byID[id]
	if !ok {
		return Quote{}, ErrQuoteNotFound
	}
	return r.quotes[idx], nil
}

// FilterByTiers returns the quotes whose tier is in tiers, in corpus order.
func (r *Repository) FilterByTiers(tiers ...Tier) []Quote {
	wanted := make(map[Tier]struct{}, len(tiers))
	for _, tier := range tiers {
		wanted[tier] = struct{}{}
	}

	out := make([]Quote, 0)
	for _, item := range r.quotes {
		if _, ok := wanted[item.Tier]; ok {
			out = append(out, item)
		}
	}
	return out
}

// AllAuthors returns each distinct author once, in first-seen corpus order.
func (r *Repository) AllAuthors() []string {
	out := make([]string, len(r.authors))
	copy(out, r.authors)
	return out
}

func (r *Repository) All() []Quote {
	out := make([]Quote, len(r.quotes))
	copy(out, r.quotes)
	return out
}

func (r *Repository) Len() int {
	return len(r.quotes)
}
