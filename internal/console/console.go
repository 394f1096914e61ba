package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"

	"github.com/meowdict/meowdict/internal/config"
)

// Console is the interactive read-eval-print loop. It reads one line
// at a time, runs it through the session state machine, and prompts
// again; a command error is printed as a single line and never stops
// the loop.
type Console struct {
	session *Session
	cfg     config.ConsoleConfig
	log     *slog.Logger
}

// New creates a Console around an existing session.
func New(session *Session, cfg config.ConsoleConfig, logger *slog.Logger) *Console {
	return &Console{
		session: session,
		cfg:     cfg,
		log:     logger.With("component", "console"),
	}
}

// Run blocks until end-of-input (Ctrl-D) or a line-editor failure.
// An interrupt (Ctrl-C) cancels the current line only.
func (c *Console) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          c.cfg.Prompt,
		HistoryFile:     c.cfg.HistoryFile,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return fmt.Errorf("console: init line editor: %w", err)
	}
	defer rl.Close()

	c.log.Debug("console started", slog.String("prompt", c.cfg.Prompt))

	for {
		line, err := rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("console: read line: %w", err)
		}

		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		if err := c.session.RunCommand(ctx, tokens); err != nil {
			c.session.msg.Error(err)
		}
	}
}
