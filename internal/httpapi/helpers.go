package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"quote-guessr/internal/quotes"
	"quote-guessr/internal/session"
)

const maxRequestBodyBytes = 64 << 10

type validationError struct {
	message string
	field   string
}

func (e *validationError) Error() string {
	return e.message
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quotes.ErrQuoteNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Message: "Quote not found"})
	case errors.Is(err, quotes.ErrInvalidMode):
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid or missing difficulty", Field: "difficulty"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
	}
}

func writeValidationError(w http.ResponseWriter, err *validationError) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.message, Field: err.field})
}

type checkInput struct {
	quoteID int
	answer  string
	mode    quotes.Mode
}

func decodeCheckRequest(r *http.Request) (checkInput, *validationError) {
	var request checkRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &typeErr):
			return checkInput{}, &validationError{
				message: "Expected " + typeErr.Type.String() + ", received " + typeErr.Value,
				field:   typeErr.Field,
			}
		case errors.Is(err, io.EOF):
			return checkInput{}, &validationError{message: "Request body is required"}
		default:
			return checkInput{}, &validationError{message: "Invalid JSON body"}
		}
	}

	if request.QuoteID == nil {
		return checkInput{}, &validationError{message: "Required", field: "quoteId"}
	}
	if request.Answer == nil {
		return checkInput{}, &validationError{message: "Required", field: "answer"}
	}
	if request.Difficulty == nil {
		return checkInput{}, &validationError{message: "Required", field: "difficulty"}
	}

	mode, err := quotes.ParseMode(*request.Difficulty)
	if err != nil {
		return checkInput{}, &validationError{message: "Invalid or missing difficulty", field: "difficulty"}
	}

	return checkInput{
		quoteID: *request.QuoteID,
		answer:  *request.Answer,
		mode:    mode,
	}, nil
}

// sessionTracker resolves the caller's session from its cookie, issuing a
// new cookie when the session is missing or expired.
func (a *API) sessionTracker(w http.ResponseWriter, r *http.Request) *session.Tracker {
	var current string
	if cookie, err := r.Cookie(a.cfg.CookieName); err == nil {
		current = cookie.Value
	}

	id, tracker, created := a.sessions.Resolve(current)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     a.cfg.CookieName,
			Value:    id,
			Path:     "/",
			MaxAge:   int(a.sessions.TTL().Seconds()),
			HttpOnly: true,
			Secure:   a.cfg.SecureCookie,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return tracker
}

func writeMethodNotAllowed(w http.ResponseWriter, allowedMethod string) {
	w.Header().Set("Allow", allowedMethod)
	writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Message: "method not allowed"})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func queryValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}
