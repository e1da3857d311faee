package corpus

import (
	"context"
	"fmt"
	"net/http"

	"quote-guessr/internal/quotes"
)

// Fetch downloads a JSON quote array from url.
func Fetch(ctx context.Context, client *http.Client, url string) ([]quotes.Quote, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("corpus server returned status %d", resp.StatusCode)
	}

	return quotes.Decode(resp.Body)
}
