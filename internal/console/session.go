// Package console owns the interactive loop and the command/mode
// state machine that drives the query modes.
package console

import (
	"context"
	"log/slog"
	"strings"

	"github.com/meowdict/meowdict/internal/adapter/opencc"
	"github.com/meowdict/meowdict/internal/domain"
)

type queryRunner interface {
	Dictionary(ctx context.Context, words []string, resultT2S bool) error
	Translation(ctx context.Context, words []string, resultT2S bool) error
	Jyutping(ctx context.Context, words []string, resultT2S bool) error
}

type converter interface {
	Convert(text string, mode opencc.Mode) string
}

type messenger interface {
	Notice(msg string)
	Error(err error)
}

// Session carries the only state that outlives a single command: the
// two persistent conversion modes. It is touched exclusively on the
// command-processing path; commands run one at a time.
type Session struct {
	// InputS2T converts every search word simplified→traditional
	// before dispatch, until unset.
	InputS2T bool
	// ResultT2S converts result strings traditional→simplified at
	// presentation time, until unset.
	ResultT2S bool

	log     *slog.Logger
	queries queryRunner
	convert converter
	msg     messenger
}

// NewSession creates a Session with both persistent modes disabled.
func NewSession(logger *slog.Logger, queries queryRunner, convert converter, msg messenger) *Session {
	return &Session{
		log:     logger.With("component", "console"),
		queries: queries,
		convert: convert,
		msg:     msg,
	}
}

// RunCommand resolves one command line: tokens are partitioned into
// flags and search words, flags are consumed left to right, then the
// command dispatches to exactly one query mode. An unrecognized flag
// aborts the command immediately; mode changes made by earlier flags
// of the same command stand.
func (s *Session) RunCommand(ctx context.Context, tokens []string) error {
	flags, words := splitTokens(tokens)

	var (
		commandInputS2T  bool
		commandResultT2S bool
		translationMode  bool
		jyutpingMode     bool
	)

	for _, flag := range flags {
		switch flag {
		case "--input-s2t", "-i":
			commandInputS2T = true
		case "--result-t2s", "-r":
			commandResultT2S = true
		case "--translation", "-t":
			translationMode = true
		case "--jyutping", "-j":
			jyutpingMode = true
		case "--set-mode-input-s2t":
			s.setMode(opencc.S2T, true)
		case "--set-mode-result-t2s":
			s.setMode(opencc.T2S, true)
		case "--unset-mode-input-s2t":
			s.setMode(opencc.S2T, false)
		case "--unset-mode-result-t2s":
			s.setMode(opencc.T2S, false)
		case "--unset-mode-all":
			s.setMode(opencc.S2T, false)
			s.setMode(opencc.T2S, false)
		default:
			return &domain.InvalidArgumentError{Token: flag}
		}
	}

	if s.InputS2T || commandInputS2T {
		for i := range words {
			words[i] = s.convert.Convert(words[i], opencc.S2T)
		}
	}

	resultT2S := s.ResultT2S || commandResultT2S

	switch {
	case translationMode:
		return s.queries.Translation(ctx, words, resultT2S)
	case jyutpingMode:
		return s.queries.Jyutping(ctx, words, resultT2S)
	default:
		return s.queries.Dictionary(ctx, words, resultT2S)
	}
}

func (s *Session) setMode(mode opencc.Mode, enable bool) {
	verb := "Setting"
	if !enable {
		verb = "Unsetting"
	}
	switch mode {
	case opencc.S2T:
		s.msg.Notice(verb + " input mode...")
		s.InputS2T = enable
	case opencc.T2S:
		s.msg.Notice(verb + " result mode...")
		s.ResultT2S = enable
	}
	s.log.Debug("console mode changed",
		slog.String("mode", mode.String()),
		slog.Bool("enabled", enable),
	)
}

// splitTokens partitions tokens into flags (lead dash) and search
// words, preserving relative order within each partition.
func splitTokens(tokens []string) (flags, words []string) {
	for _, tok := range tokens {
		if strings.HasPrefix(tok, "-") {
			flags = append(flags, tok)
		} else {
			words = append(words, tok)
		}
	}
	return flags, words
}
