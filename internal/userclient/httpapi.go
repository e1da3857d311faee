package userclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"quote-guessr/internal/cli"
	"quote-guessr/internal/quotes"
	"quote-guessr/internal/session"
)

var ErrServiceUnavailable = errors.New("quote service unavailable")

type APIError struct {
	StatusCode int
	Message    string
	Field      string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// HTTPClient talks to a quote service. The session cookie lives in the
// http.Client's jar, so the client must be built with one for scores to
// carry across requests.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

type checkRequest struct {
	QuoteID    int    `json:"quoteId"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
}

type checkResponse struct {
	Correct       bool   `json:"correct"`
	CorrectAuthor string `json:"correctAuthor"`
	Source        string `json:"source,omitempty"`
	UserScore     int    `json:"userScore"`
	Total         int    `json:"total"`
	Message       string `json:"message"`
}

type errorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	baseURL = strings.TrimSpace(baseURL)
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultServer
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *HTTPClient) NextQuote(ctx context.Context, mode quotes.Mode) (quotes.QuoteView, error) {
	query := url.Values{}
	query.Set("difficulty", string(mode))

	var view quotes.QuoteView
	if err := c.doJSON(ctx, http.MethodGet, "/api/quote?"+query.Encode(), nil, &view); err != nil {
		return quotes.QuoteView{}, err
	}
	return view, nil
}

func (c *HTTPClient) Answer(ctx context.Context, quoteID int, answer string, mode quotes.Mode) (cli.Result, error) {
	request := checkRequest{
		QuoteID:    quoteID,
		Answer:     answer,
		Difficulty: string(mode),
	}

	var payload checkResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/check", request, &payload); err != nil {
		return cli.Result{}, err
	}

	return cli.Result{
		Verdict: quotes.Verdict{
			Correct:       payload.Correct,
			CorrectAuthor: payload.CorrectAuthor,
			Source:        payload.Source,
			Message:       payload.Message,
		},
		Score: session.Score{
			Current: payload.UserScore,
			Total:   payload.Total,
		},
	}, nil
}

func (c *HTTPClient) Reset(ctx context.Context) (session.Score, error) {
	var score session.Score
	if err := c.doJSON(ctx, http.MethodPost, "/api/reset", nil, &score); err != nil {
		return session.Score{}, err
	}
	return score, nil
}

func (c *HTTPClient) Score(ctx context.Context) (session.Score, error) {
	var score session.Score
	if err := c.doJSON(ctx, http.MethodGet, "/api/score", nil, &score); err != nil {
		return session.Score{}, err
	}
	return score, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, requestBody any, responseBody any) error {
	fullURL := c.baseURL + path

	var body io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return err
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIError{StatusCode: response.StatusCode}
		var payload errorResponse
		if err := json.NewDecoder(response.Body).Decode(&payload); err == nil && strings.TrimSpace(payload.Message) != "" {
			apiErr.Message = payload.Message
			apiErr.Field = payload.Field
		}
		if apiErr.Message == "" {
			apiErr.Message = response.Status
		}
		return &apiErr
	}

	if responseBody == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(responseBody)
}
