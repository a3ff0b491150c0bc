package style

import (
	_ "embed"
	"os"
	"strings"

	"github.com/arthur-debert/pageprint/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Faint      bool   `yaml:"faint,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Theme is a complete styles configuration
type Theme struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed theme.yaml
var embeddedTheme []byte

// basicColors maps the 16 ANSI color names to their codes
var basicColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"cyan":           "6",
	"white":          "7",
	"bright_black":   "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
}

// DefaultTheme returns the embedded theme
func DefaultTheme() Theme {
	theme, err := ParseTheme(embeddedTheme)
	if err != nil {
		// the embedded file is part of the build; fall back to unstyled roles
		return Theme{Styles: map[string]StyleDef{}}
	}
	return theme
}

// LoadTheme loads a theme from a YAML file
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read theme file %s", path)
	}
	theme, err := ParseTheme(data)
	if err != nil {
		return Theme{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse theme file %s", path)
	}
	return theme, nil
}

// ParseTheme parses theme YAML and checks that every style names a known role
func ParseTheme(data []byte) (Theme, error) {
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Theme{}, err
	}
	if theme.Colors == nil {
		theme.Colors = map[string]ColorDef{}
	}
	if theme.Styles == nil {
		theme.Styles = map[string]StyleDef{}
	}
	for name := range theme.Styles {
		if _, err := ParseRole(name); err != nil {
			return Theme{}, errors.Wrap(err, errors.ErrStyleInvalid, "invalid theme")
		}
	}
	return theme, nil
}

// Merge returns a theme with other's colors and styles laid over t.
// Styles are replaced per role, not merged field by field.
func (t Theme) Merge(other Theme) Theme {
	merged := Theme{
		Colors: make(map[string]ColorDef, len(t.Colors)+len(other.Colors)),
		Styles: make(map[string]StyleDef, len(t.Styles)+len(other.Styles)),
	}
	for k, v := range t.Colors {
		merged.Colors[k] = v
	}
	for k, v := range other.Colors {
		merged.Colors[k] = v
	}
	for k, v := range t.Styles {
		merged.Styles[k] = v
	}
	for k, v := range other.Styles {
		merged.Styles[k] = v
	}
	return merged
}

// Table builds lipgloss styles bound to r. A nil renderer uses the lipgloss default.
func (t Theme) Table(r *lipgloss.Renderer) (Table, error) {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	table := Plain()
	for name, def := range t.Styles {
		role, err := ParseRole(name)
		if err != nil {
			return Table{}, errors.Wrap(err, errors.ErrStyleInvalid, "invalid theme")
		}
		s := t.buildStyle(r, def)
		table = table.Set(role, PainterFunc(func(text string) string {
			return s.Render(text)
		}))
	}
	return table, nil
}

// buildStyle constructs a lipgloss style from a style definition
func (t Theme) buildStyle(r *lipgloss.Renderer, def StyleDef) lipgloss.Style {
	style := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}
	if def.Faint {
		style = style.Faint(true)
	}

	if def.Foreground != "" {
		style = style.Foreground(t.resolveColor(def.Foreground))
	}
	if def.Background != "" {
		style = style.Background(t.resolveColor(def.Background))
	}

	return style
}

// resolveColor looks a color up in the theme palette, then the ANSI names,
// and otherwise hands the value to lipgloss as is.
func (t Theme) resolveColor(name string) lipgloss.TerminalColor {
	if c, ok := t.Colors[name]; ok {
		return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark}
	}
	if code, ok := basicColors[strings.ToLower(name)]; ok {
		return lipgloss.Color(code)
	}
	return lipgloss.Color(name)
}
