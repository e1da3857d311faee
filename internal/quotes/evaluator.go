package quotes

import (
	"strings"
	"unicode/utf8"
)

const (
	messageCorrect = "Correct!"

	fuzzyFullNameTolerance = 2
	fuzzySurnameTolerance  = 1
	minSurnameLength       = 4
)

var punctuationStripper = strings.NewReplacer(
	".", "", ",", "", "/", "", "#", "", "!", "", "$", "", "%", "", "^", "",
	"&", "", "*", "", ";", "", ":", "", "{", "", "}", "", "=", "", "-", "",
	"_", "", "`", "", "~", "", "(", "", ")", "",
)

type Evaluator struct {
	repo *Repository
}

func NewEvaluator(repo *Repository) *Evaluator {
	return &Evaluator{repo: repo}
}

// Evaluate judges answer against the author of quoteID. The verdict always
// carries the true author and source. ErrQuoteNotFound is the only error.
func (e *Evaluator) Evaluate(quoteID int, answer string, mode Mode) (Verdict, error) {
	quote, err := e.repo.FindByID(quoteID)
	if err != nil {
		return Verdict{}, err
	}

	verdict := Verdict{
		CorrectAuthor: quote.Author,
		Source:        quote.Source,
	}

	var wrongMessage string
	switch mode.Matching() {
	case MatchFuzzy:
		verdict.Correct = FuzzyMatch(answer, quote.Author)
		wrongMessage = "Close, but no! It was " + quote.Author
	case MatchTrimmed:
		verdict.Correct = strings.TrimSpace(answer) == strings.TrimSpace(quote.Author)
		wrongMessage = "Incorrect. The author is " + quote.Author
	default:
		// Exact matching also covers unrecognized modes, which resolve to the
		// mc-easy rules. Callers validate modes with ParseMode, so an unknown
		// mode is still judged instead of yielding an empty verdict.
		verdict.Correct = answer == quote.Author
		wrongMessage = "Wrong! It was " + quote.Author
	}

	verdict.Message = wrongMessage
	if verdict.Correct {
		verdict.Message = messageCorrect
	}
	return verdict, nil
}

// FuzzyMatch accepts answers within two edits of the normalized author name,
// or within one edit of the author's surname when the surname is longer than
// three characters.
func FuzzyMatch(answer, author string) bool {
	input := NormalizeName(answer)
	target := NormalizeName(author)

	if Distance(input, target) <= fuzzyFullNameTolerance {
		return true
	}

	fields := strings.Fields(target)
	if len(fields) == 0 {
		return false
	}
	surname := fields[len(fields)-1]
	return utf8.RuneCountInString(surname) >= minSurnameLength &&
		Distance(input, surname) <= fuzzySurnameTolerance
}

// NormalizeName lowercases value, drops common punctuation and trims
// surrounding whitespace.
func NormalizeName(value string) string {
	return strings.TrimSpace(punctuationStripper.Replace(strings.ToLower(value)))
}
