// Package render writes a page to a terminal.
//
// Each line is classified, split into styled spans and written with an
// indent that depends on its kind: two spaces for prose, four for examples.
// Styling is stateless per line; only the blank-line policy (Compact) and
// title visibility (ShowTitle) span the whole page.
//
// In raw mode the page source is written back byte for byte and nothing is
// classified.
package render

import (
	"bufio"
	"io"

	"github.com/arthur-debert/pageprint/pkg/errors"
	"github.com/arthur-debert/pageprint/pkg/highlight"
	"github.com/arthur-debert/pageprint/pkg/logging"
	"github.com/arthur-debert/pageprint/pkg/page"
	"github.com/arthur-debert/pageprint/pkg/style"
)

// Indents
const (
	ProseIndent   = "  "
	ExampleIndent = "    "
)

// Options controls layout
type Options struct {
	// RawMarkdown writes the page source unchanged
	RawMarkdown bool
	// ShowTitle renders title lines
	ShowTitle bool
	// Compact drops every blank line, including the trailing one
	Compact bool
}

// Renderer writes pages to a sink. It must not be shared between goroutines.
type Renderer struct {
	w     io.Writer
	opts  Options
	table style.Table
}

// New creates a renderer writing to w
func New(w io.Writer, opts Options, table style.Table) *Renderer {
	return &Renderer{w: w, opts: opts, table: table}
}

// RenderString parses text and renders it
func (r *Renderer) RenderString(text string) error {
	return r.Render(page.Parse(text))
}

// Render writes p. Output is buffered and flushed before returning, whether
// rendering succeeded or not. The first write error aborts the page.
func (r *Renderer) Render(p page.Page) (err error) {
	log := logging.GetLogger("render")
	done := logging.LogOperationStart(log, "render page")
	defer done()

	bw := bufio.NewWriter(r.w)
	defer func() {
		if ferr := bw.Flush(); ferr != nil && err == nil {
			err = errors.Wrap(ferr, errors.ErrOutputFlush, "failed to flush output")
		}
	}()

	if r.opts.RawMarkdown {
		log.Debug().Int("bytes", len(p.Source())).Msg("Writing raw page")
		if _, werr := bw.WriteString(p.Source()); werr != nil {
			return errors.Wrap(werr, errors.ErrOutputWrite, "failed to write raw page")
		}
		return nil
	}

	written, skipped := 0, 0
	for _, line := range p.Lines() {
		out, ok := r.formatLine(line)
		if !ok {
			if line.Kind == page.Unclassified {
				log.Trace().Int("line", line.Number).Str("text", line.Raw).Msg("Ignoring unclassified line")
			}
			skipped++
			continue
		}
		log.Trace().Int("line", line.Number).Stringer("kind", line.Kind).Msg("Rendering line")

		if line.Kind == page.Title && !r.opts.Compact {
			if werr := writeLine(bw, "", line.Number); werr != nil {
				return werr
			}
		}
		if werr := writeLine(bw, out, line.Number); werr != nil {
			return werr
		}
		written++
	}

	if !r.opts.Compact {
		if werr := writeLine(bw, "", p.Len()); werr != nil {
			return werr
		}
	}

	log.Debug().
		Int("lines", p.Len()).
		Int("written", written).
		Int("skipped", skipped).
		Bool("compact", r.opts.Compact).
		Msg("Page rendered")
	return nil
}

// formatLine returns the styled output for line, or false when the line
// produces no output of its own.
func (r *Renderer) formatLine(line page.Line) (string, bool) {
	switch line.Kind {
	case page.Title:
		if !r.opts.ShowTitle {
			return "", false
		}
		return ProseIndent + r.table.Get(style.RoleTitle).Paint(line.Text), true
	case page.Description:
		spans := highlight.Spans(line.Text, highlight.URL, style.RoleDescription, style.RoleURL)
		spans = highlight.Overlay(spans, highlight.InlineCode, style.RoleDescription, style.RoleInlineCode)
		return ProseIndent + highlight.Paint(spans, r.table), true
	case page.Bullet:
		spans := highlight.Spans(line.Text, highlight.InlineCode, style.RoleBullet, style.RoleInlineCode)
		return ProseIndent + highlight.Paint(spans, r.table), true
	case page.Example:
		spans := highlight.Spans(line.Text, highlight.Placeholder, style.RoleExample, style.RolePlaceholder)
		return ExampleIndent + highlight.Paint(spans, r.table), true
	case page.Blank:
		return "", !r.opts.Compact
	default:
		return "", false
	}
}

func writeLine(bw *bufio.Writer, s string, number int) error {
	if _, err := bw.WriteString(s); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to write output").WithDetail("line", number)
	}
	if err := bw.WriteByte('\n'); err != nil {
		return errors.Wrap(err, errors.ErrOutputWrite, "failed to write output").WithDetail("line", number)
	}
	return nil
}
