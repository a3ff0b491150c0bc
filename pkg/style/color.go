package style

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/pageprint/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode selects when styles emit escape sequences
type ColorMode int

const (
	// ColorAuto colors only terminals, and honors NO_COLOR
	ColorAuto ColorMode = iota
	// ColorAlways colors regardless of the destination
	ColorAlways
	// ColorNever never colors
	ColorNever
)

// String returns the flag value of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a string into a ColorMode
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "force":
		return ColorAlways, nil
	case "never", "none", "off":
		return ColorNever, nil
	default:
		return ColorAuto, errors.Newf(errors.ErrInvalidInput, "unknown color mode: %s", s)
	}
}

// fder is implemented by *os.File
type fder interface {
	Fd() uintptr
}

// IsColorTerminal reports whether w is a terminal that should receive colors
func IsColorTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(fder)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// NewRenderer returns a lipgloss renderer for w with its color profile set by mode
func NewRenderer(w io.Writer, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case ColorAlways:
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI256)
		}
	default:
		if !IsColorTerminal(w) {
			r.SetColorProfile(termenv.Ascii)
		}
	}
	return r
}

// NewTable builds the theme's table for w under the given color mode
func NewTable(w io.Writer, mode ColorMode, theme Theme) (Table, error) {
	return theme.Table(NewRenderer(w, mode))
}
