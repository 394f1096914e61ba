// Package opencc wraps the OpenCC (liuzl/gocc) dictionaries behind a
// total conversion function between simplified and traditional script.
package opencc

import (
	"fmt"

	"github.com/liuzl/gocc"
)

// Mode selects a conversion direction.
type Mode int

const (
	// S2T converts simplified characters to traditional.
	S2T Mode = iota
	// T2S converts traditional characters to simplified.
	T2S
)

func (m Mode) String() string {
	if m == T2S {
		return "t2s"
	}
	return "s2t"
}

// Converter holds both conversion dictionaries. The script conversion
// is lossy by nature, but applying the same mode twice is idempotent.
type Converter struct {
	s2t *gocc.OpenCC
	t2s *gocc.OpenCC
}

// New loads the OpenCC dictionaries for both directions.
func New() (*Converter, error) {
	s2t, err := gocc.New("s2t")
	if err != nil {
		return nil, fmt.Errorf("opencc: load s2t: %w", err)
	}
	t2s, err := gocc.New("t2s")
	if err != nil {
		return nil, fmt.Errorf("opencc: load t2s: %w", err)
	}
	return &Converter{s2t: s2t, t2s: t2s}, nil
}

// Convert transforms text in the given direction. It is total: a
// conversion failure returns the input unchanged.
func (c *Converter) Convert(text string, mode Mode) string {
	cc := c.s2t
	if mode == T2S {
		cc = c.t2s
	}
	out, err := cc.Convert(text)
	if err != nil {
		return text
	}
	return out
}
