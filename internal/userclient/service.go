package userclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"quote-guessr/internal/cli"
	"quote-guessr/internal/quotes"
)

const (
	defaultServer      = "http://127.0.0.1:8080"
	defaultHTTPTimeout = 5 * time.Second
)

type Config struct {
	ServerURL   string
	Mode        quotes.Mode
	Rounds      int
	HTTPTimeout time.Duration
}

// Run plays against a remote quote service. The score shown is the
// server-side session score.
func Run(ctx context.Context, in io.Reader, out io.Writer, cfg Config) error {
	serverURL := strings.TrimSpace(cfg.ServerURL)
	if serverURL == "" {
		serverURL = defaultServer
	}
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return err
	}
	client := NewHTTPClient(serverURL, &http.Client{Timeout: timeout, Jar: jar})

	fmt.Fprintf(out, "quote-user-service\nserver=%s\n\n", serverURL)
	return cli.Play(ctx, in, out, client, cli.Config{
		Mode:   cfg.Mode,
		Rounds: cfg.Rounds,
	})
}
