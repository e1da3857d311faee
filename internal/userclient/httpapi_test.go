package userclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"quote-guessr/internal/quotes"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestDoJSONReturnsServiceUnavailable(t *testing.T) {
	client := NewHTTPClient("http://example.test", &http.Client{
		Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
			return nil, errors.New("dial error")
		}),
	})

	err := client.doJSON(context.Background(), http.MethodGet, "/api/score", nil, nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrServiceUnavailable) {
		t.Fatalf("expected ErrServiceUnavailable wrapper, got %v", err)
	}
}

func TestDoJSONReturnsAPIErrorMessageFromBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(errorResponse{Message: "Required", Field: "answer"})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, server.Client())
	err := client.doJSON(context.Background(), http.MethodPost, "/api/check", checkRequest{}, nil)
	if err == nil {
		t.Fatalf("expected API error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T (%v)", err, err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "Required" || apiErr.Field != "answer" {
		t.Fatalf("unexpected API error: %+v", apiErr)
	}
	if apiErr.Error() != "answer: Required" {
		t.Fatalf("Error() = %q", apiErr.Error())
	}
}

func TestDoJSONFallsBackToStatusText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	err := NewHTTPClient(server.URL, server.Client()).doJSON(context.Background(), http.MethodGet, "/", nil, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "502 Bad Gateway" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNextQuoteBuildsQueryAndParsesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/quote" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("difficulty"); got != "mc-hard" {
			t.Errorf("difficulty = %q, want mc-hard", got)
		}
		_ = json.NewEncoder(w).Encode(quotes.QuoteView{
			ID:         9,
			Text:       "Veni, vidi, vici.",
			Difficulty: quotes.ModeMCHard,
			Options:    []string{"Julius Caesar", "Cicero"},
		})
	}))
	defer server.Close()

	view, err := NewHTTPClient(server.URL+"/", server.Client()).NextQuote(context.Background(), quotes.ModeMCHard)
	if err != nil {
		t.Fatalf("NextQuote failed: %v", err)
	}
	if view.ID != 9 || len(view.Options) != 2 || view.Difficulty != quotes.ModeMCHard {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestAnswerSendsCheckRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request checkRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if request.QuoteID != 4 || request.Answer != "Plato" || request.Difficulty != "type-hard" {
			t.Errorf("unexpected request: %+v", request)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("content type = %q", got)
		}
		_ = json.NewEncoder(w).Encode(checkResponse{
			Correct:       true,
			CorrectAuthor: "Plato",
			UserScore:     3,
			Total:         5,
			Message:       "Correct!",
		})
	}))
	defer server.Close()

	result, err := NewHTTPClient(server.URL, server.Client()).Answer(context.Background(), 4, "Plato", quotes.ModeTypeHard)
	if err != nil {
		t.Fatalf("Answer failed: %v", err)
	}
	if !result.Verdict.Correct || result.Score.Current != 3 || result.Score.Total != 5 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestScoreReadsSessionScore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/score" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"score":2,"total":7}`))
	}))
	defer server.Close()

	score, err := NewHTTPClient(server.URL, server.Client()).Score(context.Background())
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if score.Current != 2 || score.Total != 7 {
		t.Fatalf("unexpected score: %+v", score)
	}
}
