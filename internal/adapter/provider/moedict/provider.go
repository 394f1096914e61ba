package moedict

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/meowdict/meowdict/internal/config"
	"github.com/meowdict/meowdict/internal/domain"
)

// notFoundMarker is the title of the HTML page moedict serves for
// unknown keywords.
const notFoundMarker = "<title>404 Not Found</title>"

// Provider fetches and normalizes entries from the moedict.tw API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from the moedict configuration.
func NewProvider(cfg config.MoedictConfig, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "moedict"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL string, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "moedict"),
	}
}

// Lookup fetches the entry for word and normalizes it.
// Returns *domain.NotFoundError when the service has no such keyword,
// a wrapped error on transport or whole-document decode failure.
func (p *Provider) Lookup(ctx context.Context, word string) (*domain.LookupResult, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word) + ".json"

	p.log.DebugContext(ctx, "moedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("moedict: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "moedict request failed", slog.String("word", word), slog.String("error", err.Error()))
		return nil, fmt.Errorf("moedict: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("moedict: read body: %w", err)
	}

	// ~ and ` are emphasis markers in moedict text, not data.
	body := strings.NewReplacer("~", "", "`", "").Replace(string(raw))

	// moedict answers unknown keywords with an HTML 404 page; it must
	// never reach the JSON normalizer.
	if resp.StatusCode == http.StatusNotFound || strings.Contains(body, notFoundMarker) {
		return nil, &domain.NotFoundError{Keyword: word}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("moedict: unexpected status %d", resp.StatusCode)
	}

	if !gjson.Valid(body) || !gjson.Parse(body).IsObject() {
		return nil, fmt.Errorf("moedict: decode json: response for %q is not an object", word)
	}

	result := normalize(word, body)

	p.log.DebugContext(ctx, "moedict response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("entries", len(result.Entries)),
		slog.Bool("has_translations", result.Translations != nil),
	)

	return result, nil
}
