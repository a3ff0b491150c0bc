// Package highlight splits text on literal marker pairs and tags the pieces
// as normal or highlighted.
//
// Marker tokens are plain substrings with no escaping. A symmetric pair
// (open == close) toggles: the pieces between successive tokens alternate
// normal, highlight, normal, ... An asymmetric pair highlights, after each
// open token, the text up to the first close token.
//
// Malformed input never fails. An unterminated symmetric span stays
// highlighted to the end of the text; an asymmetric fragment with no close
// token (or with another open token first) is normal.
package highlight

import (
	"strings"

	"github.com/arthur-debert/pageprint/pkg/style"
)

// Pair is an open/close marker token pair
type Pair struct {
	Open  string
	Close string
}

// Marker pairs recognized inside page lines
var (
	URL         = Pair{Open: "<", Close: ">"}
	InlineCode  = Pair{Open: "`", Close: "`"}
	Placeholder = Pair{Open: "{{", Close: "}}"}
)

// Symmetric reports whether the pair uses the same token to open and close
func (p Pair) Symmetric() bool {
	return p.Open == p.Close
}

// Segment is a piece of the input with its delimiters removed
type Segment struct {
	Text      string
	Highlight bool
}

// region is a segment expressed as byte offsets into the split text
type region struct {
	start, end int
	highlight  bool
}

// Split decomposes text into ordered segments. Empty segments are kept so
// that symmetric parity is observable: 2k tokens give k highlighted and k+1
// normal segments.
func Split(text string, p Pair) []Segment {
	regs := split(text, p)
	segs := make([]Segment, len(regs))
	for i, r := range regs {
		segs[i] = Segment{Text: text[r.start:r.end], Highlight: r.highlight}
	}
	return segs
}

func split(text string, p Pair) []region {
	if p.Open == "" {
		return []region{{start: 0, end: len(text)}}
	}

	var regs []region
	pos := 0
	for i := 0; ; i++ {
		end := len(text)
		next := strings.Index(text[pos:], p.Open)
		if next >= 0 {
			end = pos + next
		}

		switch {
		case p.Symmetric():
			regs = append(regs, region{start: pos, end: end, highlight: i%2 == 1})
		case i == 0:
			// nothing has been opened yet
			regs = append(regs, region{start: pos, end: end})
		default:
			regs = append(regs, splitFragment(pos, end, text, p.Close)...)
		}

		if next < 0 {
			return regs
		}
		pos = end + len(p.Open)
	}
}

// splitFragment tags text[start:end], which directly follows an open token
func splitFragment(start, end int, text, closeTok string) []region {
	j := -1
	if closeTok != "" {
		j = strings.Index(text[start:end], closeTok)
	}
	if j < 0 {
		return []region{{start: start, end: end}}
	}
	return []region{
		{start: start, end: start + j, highlight: true},
		{start: start + j + len(closeTok), end: end},
	}
}

// Highlight paints each segment of text with normal or hl and concatenates
// the result.
func Highlight(text string, p Pair, normal, hl style.Painter) string {
	var b strings.Builder
	for _, seg := range Split(text, p) {
		if seg.Text == "" {
			continue
		}
		if seg.Highlight {
			b.WriteString(hl.Paint(seg.Text))
		} else {
			b.WriteString(normal.Paint(seg.Text))
		}
	}
	return b.String()
}
