package quotes

import (
	"errors"
	"strings"
)

var (
	ErrQuoteNotFound   = errors.New("quote not found")
	ErrInvalidMode     = errors.New("invalid difficulty")
	ErrMalformedCorpus = errors.New("malformed quote corpus")
)

type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

func (t Tier) Valid() bool {
	switch t {
	case TierEasy, TierMedium, TierHard:
		return true
	}
	return false
}

type Mode string

const (
	ModeMCEasy   Mode = "mc-easy"
	ModeMCHard   Mode = "mc-hard"
	ModeTypeEasy Mode = "type-easy"
	ModeTypeHard Mode = "type-hard"
)

type Matching int

const (
	MatchExact Matching = iota
	MatchTrimmed
	MatchFuzzy
)

type modeRules struct {
	tiers          []Tier
	multipleChoice bool
	matching       Matching
}

var rulesByMode = map[Mode]modeRules{
	ModeMCEasy:   {tiers: []Tier{TierEasy}, multipleChoice: true, matching: MatchExact},
	ModeMCHard:   {tiers: []Tier{TierHard}, multipleChoice: true, matching: MatchExact},
	ModeTypeEasy: {tiers: []Tier{TierEasy}, multipleChoice: false, matching: MatchFuzzy},
	ModeTypeHard: {tiers: []Tier{TierMedium, TierHard}, multipleChoice: false, matching: MatchTrimmed},
}

// Modes lists every playable mode in menu order.
func Modes() []Mode {
	return []Mode{ModeMCEasy, ModeMCHard, ModeTypeEasy, ModeTypeHard}
}

func ParseMode(value string) (Mode, error) {
	mode := Mode(strings.TrimSpace(value))
	if !mode.Valid() {
		return "", ErrInvalidMode
	}
	return mode, nil
}

func (m Mode) Valid() bool {
	_, ok := rulesByMode[m]
	return ok
}

// rules resolves an unrecognized mode to the mc-easy mapping. Callers are
// expected to validate with ParseMode first; this path only keeps the core
// total over arbitrary input.
func (m Mode) rules() modeRules {
	if rules, ok := rulesByMode[m]; ok {
		return rules
	}
	return rulesByMode[ModeMCEasy]
}

func (m Mode) Tiers() []Tier {
	tiers := m.rules().tiers
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

func (m Mode) MultipleChoice() bool {
	return m.rules().multipleChoice
}

func (m Mode) Matching() Matching {
	return m.rules().matching
}

type Quote struct {
	ID     int    `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
	Tier   Tier   `json:"difficulty"`
	Source string `json:"source,omitempty"`
}

type QuoteView struct {
	ID         int      `json:"id"`
	Text       string   `json:"text"`
	Difficulty Mode     `json:"difficulty"`
	Source     string   `json:"source,omitempty"`
	Options    []string `json:"options,omitempty"`
}

type Verdict struct {
	Correct       bool   `json:"correct"`
	CorrectAuthor string `json:"correctAuthor"`
	Source        string `json:"source,omitempty"`
	Message       string `json:"message"`
}
