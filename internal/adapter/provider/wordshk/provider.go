// Package wordshk provides Cantonese jyutping readings backed by the
// words.hk character frequency list.
package wordshk

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/meowdict/meowdict/internal/config"
	"github.com/meowdict/meowdict/internal/domain"
)

// Provider downloads the words.hk character list, a JSON object
// mapping each character to its jyutping readings with corpus counts.
type Provider struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider from the jyutping configuration.
func NewProvider(cfg config.JyutpingConfig, logger *slog.Logger) *Provider {
	return &Provider{
		url:        cfg.CharListURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "wordshk"),
	}
}

// NewProviderWithURL creates a Provider with a custom URL (for testing).
func NewProviderWithURL(url string, logger *slog.Logger) *Provider {
	return &Provider{
		url:        url,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logger.With("adapter", "wordshk"),
	}
}

// FetchCharList downloads and parses the character list. The list is
// fetched per command; results are never cached across commands.
func (p *Provider) FetchCharList(ctx context.Context) (*CharList, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("wordshk: create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.log.ErrorContext(ctx, "wordshk request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("wordshk: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wordshk: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("wordshk: read body: %w", err)
	}

	list, err := ParseCharList(body)
	if err != nil {
		return nil, err
	}

	p.log.DebugContext(ctx, "wordshk char list fetched", slog.Int("bytes", len(body)))

	return list, nil
}

// CharList is the parsed character list.
type CharList struct {
	root gjson.Result
}

// ParseCharList parses a raw character list document.
func ParseCharList(body []byte) (*CharList, error) {
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, fmt.Errorf("wordshk: decode json: char list is not an object")
	}
	return &CharList{root: root}, nil
}

// Lookup returns the jyutping readings for each character of word,
// most frequent reading first; ties keep the list's document order.
// Characters unknown to the list get an empty reading slice.
func (c *CharList) Lookup(word string) *domain.JyutpingResult {
	result := &domain.JyutpingResult{Word: word}
	for _, r := range word {
		ch := string(r)
		result.Chars = append(result.Chars, domain.CharReading{
			Char:     ch,
			Readings: c.readings(ch),
		})
	}
	return result
}

func (c *CharList) readings(ch string) []string {
	entry := c.root.Get(escapePath(ch))
	if !entry.IsObject() {
		return nil
	}

	type counted struct {
		reading string
		count   int64
	}
	var all []counted
	entry.ForEach(func(key, value gjson.Result) bool {
		all = append(all, counted{reading: key.String(), count: value.Int()})
		return true
	})
	sort.SliceStable(all, func(i, j int) bool { return all[i].count > all[j].count })

	readings := make([]string, len(all))
	for i, c := range all {
		readings[i] = c.reading
	}
	return readings
}

// escapePath escapes gjson path metacharacters so a raw map key can be
// used as a literal path component.
func escapePath(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '\\', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
