// Package page models a page document: an ordered list of classified lines.
package page

import (
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/pageprint/pkg/errors"
)

// Line is one classified line of a page
type Line struct {
	// Number is 1-based
	Number int
	Kind   Kind
	// Text is the line with its marker stripped
	Text string
	// Raw is the line as it appears in the source, without its terminator
	Raw string
}

// Page is an ordered, immutable sequence of lines
type Page struct {
	source string
	lines  []Line
}

// Parse splits text into lines and classifies them.
// Lines end at "\n"; a "\r" before it is dropped, and a final newline does
// not start an extra empty line.
func Parse(text string) Page {
	p := Page{source: text}
	for i, raw := range splitLines(text) {
		kind, rest := Classify(raw)
		p.lines = append(p.lines, Line{Number: i + 1, Kind: kind, Text: rest, Raw: raw})
	}
	return p
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Lines returns the page lines in document order
func (p Page) Lines() []Line {
	out := make([]Line, len(p.lines))
	copy(out, p.lines)
	return out
}

// Len returns the number of lines
func (p Page) Len() int {
	return len(p.lines)
}

// Source returns the original page text, byte for byte
func (p Page) Source() string {
	return p.source
}

// Title returns the first title line, if any
func (p Page) Title() (string, bool) {
	for _, l := range p.lines {
		if l.Kind == Title {
			return l.Text, true
		}
	}
	return "", false
}

// Load reads a UTF-8 page from r
func Load(r io.Reader) (Page, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Page{}, errors.Wrap(err, errors.ErrPageRead, "failed to read page")
	}
	if !utf8.Valid(data) {
		return Page{}, errors.New(errors.ErrPageRead, "page is not valid UTF-8")
	}
	return Parse(string(data)), nil
}

// LoadFile reads a page from path
func LoadFile(path string) (Page, error) {
	f, err := os.Open(path)
	if err != nil {
		return Page{}, errors.Wrapf(err, errors.ErrPageRead, "failed to open page %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	p, err := Load(f)
	if err != nil {
		if pe, ok := err.(*errors.PageError); ok {
			pe.WithDetail("path", path)
		}
		return Page{}, err
	}
	return p, nil
}
