package highlight

import (
	"strings"

	"github.com/arthur-debert/pageprint/pkg/style"
)

// Span is a piece of literal text tagged with the role it will be painted with.
// Passes compose over spans; paint is applied once, at the end.
type Span struct {
	Text string
	Role style.Role
	// Wrap lists roles painted around Role, innermost first
	Wrap []style.Role
}

// Spans runs a single pass over text, tagging segments normal or hl
func Spans(text string, p Pair, normal, hl style.Role) []Span {
	segs := Split(text, p)
	spans := make([]Span, len(segs))
	for i, seg := range segs {
		role := normal
		if seg.Highlight {
			role = hl
		}
		spans[i] = Span{Text: seg.Text, Role: role}
	}
	return spans
}

// Overlay runs a second pass over the literal text of spans.
//
// Tokens are matched on the concatenated span text, so a symmetric toggle
// keeps its parity across span boundaries. Text the pass leaves normal keeps
// its role. Highlighted text becomes hl where its role is base; text already
// carrying another role (a URL inside inline code) keeps it and gets hl
// painted around it. Empty pieces are dropped.
func Overlay(spans []Span, p Pair, base, hl style.Role) []Span {
	var b strings.Builder
	offsets := make([]int, len(spans)+1)
	for i, s := range spans {
		b.WriteString(s.Text)
		offsets[i+1] = offsets[i] + len(s.Text)
	}
	literal := b.String()

	var out []Span
	i := 0
	for _, r := range split(literal, p) {
		for r.start < r.end {
			for offsets[i+1] <= r.start {
				i++
			}
			end := r.end
			if offsets[i+1] < end {
				end = offsets[i+1]
			}
			s := Span{Text: literal[r.start:end], Role: spans[i].Role, Wrap: spans[i].Wrap}
			if r.highlight {
				if s.Role == base {
					s.Role = hl
				} else {
					s.Wrap = append(append([]style.Role(nil), s.Wrap...), hl)
				}
			}
			out = append(out, s)
			r.start = end
		}
	}
	return out
}

// Paint renders spans through the table and concatenates the result.
// Wrapping roles are painted over the span's own paint.
func Paint(spans []Span, table style.Table) string {
	var b strings.Builder
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		painted := table.Get(s.Role).Paint(s.Text)
		for _, w := range s.Wrap {
			painted = table.Get(w).Paint(painted)
		}
		b.WriteString(painted)
	}
	return b.String()
}
