package httpapi

import (
	"net/http"

	"quote-guessr/internal/quotes"
)

func (a *API) HandleQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	if a.selector == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "quote service unavailable"})
		return
	}

	mode, err := quotes.ParseMode(queryValue(r, "difficulty"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, a.selector.SelectQuote(mode))
}

func (a *API) HandleCheck(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	if a.evaluator == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "quote service unavailable"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	defer r.Body.Close()

	input, validationErr := decodeCheckRequest(r)
	if validationErr != nil {
		writeValidationError(w, validationErr)
		return
	}

	verdict, err := a.evaluator.Evaluate(input.quoteID, input.answer, input.mode)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// The session score only moves once a verdict exists.
	score := a.sessionTracker(w, r).RecordOutcome(verdict.Correct)

	writeJSON(w, http.StatusOK, checkResponse{
		Correct:       verdict.Correct,
		CorrectAuthor: verdict.CorrectAuthor,
		Source:        verdict.Source,
		UserScore:     score.Current,
		Total:         score.Total,
		Message:       verdict.Message,
	})
}

func (a *API) HandleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	writeJSON(w, http.StatusOK, a.sessionTracker(w, r).Reset())
}

func (a *API) HandleScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}

	writeJSON(w, http.StatusOK, a.sessionTracker(w, r).Snapshot())
}
