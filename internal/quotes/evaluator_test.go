package quotes

import (
	"errors"
	"testing"
)

func evaluatorFixture(t *testing.T) *Evaluator {
	t.Helper()
	return NewEvaluator(mustRepository(t, []Quote{
		{ID: 1, Text: "The secret of getting ahead is getting started.", Author: "Mark Twain", Tier: TierEasy},
		{ID: 2, Text: "We shall fight on the beaches.", Author: "Winston Churchill", Tier: TierEasy, Source: "Speech, 1940"},
		{ID: 3, Text: "Wonder is the beginning of wisdom.", Author: "Plato", Tier: TierHard},
		{ID: 4, Text: "Know your enemy.", Author: "Sun Tzu", Tier: TierMedium},
		{ID: 5, Text: "Be yourself.", Author: "Oscar Wilde", Tier: TierEasy},
	}))
}

func TestEvaluateMatchingRules(t *testing.T) {
	evaluator := evaluatorFixture(t)

	tests := []struct {
		name        string
		quoteID     int
		answer      string
		mode        Mode
		wantCorrect bool
		wantMessage string
	}{
		{name: "mc exact", quoteID: 1, answer: "Mark Twain", mode: ModeMCEasy, wantCorrect: true, wantMessage: "Correct!"},
		{name: "mc trailing space", quoteID: 1, answer: "Mark Twain ", mode: ModeMCEasy, wantMessage: "Wrong! It was Mark Twain"},
		{name: "mc case", quoteID: 3, answer: "plato", mode: ModeMCHard, wantMessage: "Wrong! It was Plato"},
		{name: "mc hard exact", quoteID: 3, answer: "Plato", mode: ModeMCHard, wantCorrect: true, wantMessage: "Correct!"},
		{name: "type easy lowercase", quoteID: 1, answer: "mark twain", mode: ModeTypeEasy, wantCorrect: true, wantMessage: "Correct!"},
		{name: "type easy punctuation", quoteID: 1, answer: "Mark Twain,", mode: ModeTypeEasy, wantCorrect: true, wantMessage: "Correct!"},
		{name: "type easy two typos", quoteID: 1, answer: "Mrak Twian", mode: ModeTypeEasy, wantMessage: "Close, but no! It was Mark Twain"},
		{name: "type easy one typo", quoteID: 1, answer: "Mark Twian", mode: ModeTypeEasy, wantCorrect: true, wantMessage: "Correct!"},
		{name: "type easy surname with typo", quoteID: 2, answer: "Churchil", mode: ModeTypeEasy, wantCorrect: true, wantMessage: "Correct!"},
		{name: "type easy surname only", quoteID: 1, answer: "twain", mode: ModeTypeEasy, wantCorrect: true, wantMessage: "Correct!"},
		{name: "type easy surname typo", quoteID: 5, answer: "wild", mode: ModeTypeEasy, wantCorrect: true, wantMessage: "Correct!"},
		{name: "type easy short surname typo", quoteID: 4, answer: "Tzi", mode: ModeTypeEasy, wantMessage: "Close, but no! It was Sun Tzu"},
		{name: "type easy wrong", quoteID: 5, answer: "Oscar Peterson", mode: ModeTypeEasy, wantMessage: "Close, but no! It was Oscar Wilde"},
		{name: "type hard trimmed", quoteID: 3, answer: "  Plato\n", mode: ModeTypeHard, wantCorrect: true, wantMessage: "Correct!"},
		{name: "type hard case sensitive", quoteID: 3, answer: "plato ", mode: ModeTypeHard, wantMessage: "Incorrect. The author is Plato"},
		{name: "type hard no punctuation folding", quoteID: 1, answer: "Mark Twain.", mode: ModeTypeHard, wantMessage: "Incorrect. The author is Mark Twain"},
		{name: "unknown mode exact", quoteID: 1, answer: "mark twain", mode: Mode("bogus"), wantMessage: "Wrong! It was Mark Twain"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			verdict, err := evaluator.Evaluate(tc.quoteID, tc.answer, tc.mode)
			if err != nil {
				t.Fatalf("Evaluate failed: %v", err)
			}
			if verdict.Correct != tc.wantCorrect {
				t.Fatalf("correct = %v, want %v", verdict.Correct, tc.wantCorrect)
			}
			if verdict.Message != tc.wantMessage {
				t.Fatalf("message = %q, want %q", verdict.Message, tc.wantMessage)
			}
		})
	}
}

func TestEvaluateAlwaysRevealsAuthorAndSource(t *testing.T) {
	evaluator := evaluatorFixture(t)

	for _, answer := range []string{"Winston Churchill", "nobody"} {
		verdict, err := evaluator.Evaluate(2, answer, ModeMCEasy)
		if err != nil {
			t.Fatalf("Evaluate failed: %v", err)
		}
		if verdict.CorrectAuthor != "Winston Churchill" || verdict.Source != "Speech, 1940" {
			t.Fatalf("verdict missing truth for %q: %+v", answer, verdict)
		}
	}
}

func TestEvaluateUnknownQuote(t *testing.T) {
	evaluator := evaluatorFixture(t)

	_, err := evaluator.Evaluate(999, "Plato", ModeMCEasy)
	if !errors.Is(err, ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	evaluator := evaluatorFixture(t)

	first, err := evaluator.Evaluate(2, "churchhill", ModeTypeEasy)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := evaluator.Evaluate(2, "churchhill", ModeTypeEasy)
		if err != nil {
			t.Fatalf("Evaluate failed: %v", err)
		}
		if again != first {
			t.Fatalf("verdict changed between calls: %+v vs %+v", first, again)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: " Mark Twain, ", want: "mark twain"},
		{input: "J.R.R. Tolkien", want: "jrr tolkien"},
		{input: "Jean-Paul Sartre", want: "jeanpaul sartre"},
		{input: "(Anonymous)", want: "anonymous"},
		{input: "O'Brien", want: "o'brien"},
		{input: "", want: ""},
	}

	for _, tc := range tests {
		if got := NormalizeName(tc.input); got != tc.want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
