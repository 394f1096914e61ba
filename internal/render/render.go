// Package render turns normalized lookup results into terminal output.
// It is a pure presentation layer: the result-conversion flag is
// applied to output strings here, right before display.
package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/meowdict/meowdict/internal/adapter/opencc"
	"github.com/meowdict/meowdict/internal/domain"
)

// Converter maps a string between simplified and traditional script.
type Converter interface {
	Convert(text string, mode opencc.Mode) string
}

// Renderer writes results to a terminal (or any writer, in tests).
type Renderer struct {
	out     io.Writer
	convert Converter

	word    *color.Color
	pron    *color.Color
	tag     *color.Color
	quote   *color.Color
	errLine *color.Color
}

// New creates a Renderer writing to out. Color output honors the
// global color.NoColor switch.
func New(out io.Writer, convert Converter) *Renderer {
	return &Renderer{
		out:     out,
		convert: convert,
		word:    color.New(color.FgHiYellow, color.Bold),
		pron:    color.New(color.FgCyan),
		tag:     color.New(color.FgMagenta),
		quote:   color.New(color.FgGreen),
		errLine: color.New(color.FgRed),
	}
}

// Lookup renders a full dictionary result.
func (r *Renderer) Lookup(res *domain.LookupResult, t2s bool) {
	r.word.Fprintln(r.out, r.display(res.Word, t2s))
	for _, entry := range res.Entries {
		if entry.Pinyin != nil {
			r.pron.Fprintf(r.out, "拼音：%s\n", *entry.Pinyin)
		}
		if entry.Bopomofo != nil {
			r.pron.Fprintf(r.out, "注音：%s\n", *entry.Bopomofo)
		}
		if entry.Definitions == nil {
			continue
		}
		for _, tag := range entry.Definitions.Tags() {
			if tag != "notype" {
				r.tag.Fprintf(r.out, "[%s]\n", r.display(tag, t2s))
			}
			for i, group := range entry.Definitions.Groups(tag) {
				for j, line := range group {
					if j == 0 {
						fmt.Fprintf(r.out, "%d. %s\n", i+1, r.display(line, t2s))
						continue
					}
					r.quote.Fprintf(r.out, "   %s\n", r.display(line, t2s))
				}
			}
		}
	}
}

// Translations renders only the translation section of a result.
func (r *Renderer) Translations(res *domain.LookupResult, t2s bool) {
	r.word.Fprintln(r.out, r.display(res.Word, t2s))
	if res.Translations == nil {
		return
	}
	for _, lang := range res.Translations.Languages() {
		r.tag.Fprintf(r.out, "%s:\n", lang)
		for _, value := range res.Translations.Get(lang) {
			fmt.Fprintf(r.out, "  %s\n", r.display(value, t2s))
		}
	}
}

// Jyutping renders per-character Cantonese readings.
func (r *Renderer) Jyutping(res *domain.JyutpingResult, t2s bool) {
	r.word.Fprintln(r.out, r.display(res.Word, t2s))
	for _, cr := range res.Chars {
		fmt.Fprintf(r.out, "%s：", r.display(cr.Char, t2s))
		for i, reading := range cr.Readings {
			if i > 0 {
				fmt.Fprint(r.out, " ")
			}
			r.quote.Fprint(r.out, reading)
		}
		fmt.Fprintln(r.out)
	}
}

// Error prints an error as a single line; the caller moves on to the
// next word or the next command.
func (r *Renderer) Error(err error) {
	r.errLine.Fprintln(r.out, err.Error())
}

// Notice prints a session-mode change message.
func (r *Renderer) Notice(msg string) {
	fmt.Fprintln(r.out, msg)
}

func (r *Renderer) display(s string, t2s bool) string {
	if !t2s {
		return s
	}
	return r.convert.Convert(s, opencc.T2S)
}
