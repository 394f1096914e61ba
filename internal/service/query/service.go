// Package query runs the three console query modes over a list of
// search words and hands results to the presentation layer.
package query

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/meowdict/meowdict/internal/adapter/provider/wordshk"
	"github.com/meowdict/meowdict/internal/domain"
)

type dictProvider interface {
	Lookup(ctx context.Context, word string) (*domain.LookupResult, error)
}

type jyutpingProvider interface {
	FetchCharList(ctx context.Context) (*wordshk.CharList, error)
}

type renderer interface {
	Lookup(res *domain.LookupResult, t2s bool)
	Translations(res *domain.LookupResult, t2s bool)
	Jyutping(res *domain.JyutpingResult, t2s bool)
	Error(err error)
}

// Service implements the dictionary, translation, and jyutping query modes.
type Service struct {
	log      *slog.Logger
	dict     dictProvider
	jyutping jyutpingProvider
	render   renderer
}

// NewService creates a query service.
func NewService(logger *slog.Logger, dict dictProvider, jyutping jyutpingProvider, render renderer) *Service {
	return &Service{
		log:      logger.With("service", "query"),
		dict:     dict,
		jyutping: jyutping,
		render:   render,
	}
}

// Dictionary looks up every word and renders the full results.
// A failure for one word is reported and does not abort the others.
func (s *Service) Dictionary(ctx context.Context, words []string, resultT2S bool) error {
	for i, l := range s.lookupAll(ctx, words) {
		if l.err != nil {
			s.report(ctx, words[i], l.err)
			continue
		}
		s.render.Lookup(l.res, resultT2S)
	}
	return nil
}

// Translation looks up every word and renders only the translation
// sections. A word without translations is reported, not fatal.
func (s *Service) Translation(ctx context.Context, words []string, resultT2S bool) error {
	for i, l := range s.lookupAll(ctx, words) {
		if l.err != nil {
			s.report(ctx, words[i], l.err)
			continue
		}
		if l.res.Translations == nil {
			s.report(ctx, words[i], fmt.Errorf("no translation found: %s", words[i]))
			continue
		}
		s.render.Translations(l.res, resultT2S)
	}
	return nil
}

// Jyutping renders per-character Cantonese readings for every word.
// The character list is fetched once per command; derivation itself
// is local and cannot fail per word.
func (s *Service) Jyutping(ctx context.Context, words []string, resultT2S bool) error {
	if len(words) == 0 {
		return nil
	}
	list, err := s.jyutping.FetchCharList(ctx)
	if err != nil {
		return err
	}
	for _, word := range words {
		s.render.Jyutping(list.Lookup(word), resultT2S)
	}
	return nil
}

type lookup struct {
	res *domain.LookupResult
	err error
}

// lookupAll fetches all words concurrently. The returned slice is
// indexed by word position, so callers present results in the original
// word order regardless of completion order.
func (s *Service) lookupAll(ctx context.Context, words []string) []lookup {
	results := make([]lookup, len(words))
	var g errgroup.Group
	for i, word := range words {
		i, word := i, word
		g.Go(func() error {
			res, err := s.dict.Lookup(ctx, word)
			results[i] = lookup{res: res, err: err}
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors
	return results
}

func (s *Service) report(ctx context.Context, word string, err error) {
	s.log.WarnContext(ctx, "query failed",
		slog.String("word", word),
		slog.String("error", err.Error()),
	)
	s.render.Error(err)
}
