package config

import (
	"github.com/arthur-debert/pageprint/pkg/errors"
	"github.com/arthur-debert/pageprint/pkg/render"
	"github.com/arthur-debert/pageprint/pkg/style"
	toml "github.com/pelletier/go-toml/v2"
)

// Output holds layout options
type Output struct {
	RawMarkdown bool   `koanf:"raw_markdown" toml:"raw_markdown"`
	ShowTitle   bool   `koanf:"show_title" toml:"show_title"`
	Compact     bool   `koanf:"compact" toml:"compact"`
	Color       string `koanf:"color" toml:"color"`
}

// StyleOverride replaces the theme style of one role
type StyleOverride struct {
	Bold       bool   `koanf:"bold" toml:"bold,omitempty"`
	Italic     bool   `koanf:"italic" toml:"italic,omitempty"`
	Underline  bool   `koanf:"underline" toml:"underline,omitempty"`
	Faint      bool   `koanf:"faint" toml:"faint,omitempty"`
	Foreground string `koanf:"foreground" toml:"foreground,omitempty"`
	Background string `koanf:"background" toml:"background,omitempty"`
}

// Style selects the theme and per-role overrides
type Style struct {
	Theme string                   `koanf:"theme" toml:"theme"`
	Roles map[string]StyleOverride `koanf:"roles" toml:"roles,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	Output Output `koanf:"output" toml:"output"`
	Style  Style  `koanf:"style" toml:"style"`
}

// Validate checks enumerated values
func (c *Config) Validate() error {
	if _, err := style.ParseColorMode(c.Output.Color); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.color")
	}
	for name := range c.Style.Roles {
		if _, err := style.ParseRole(name); err != nil {
			return errors.Wrap(err, errors.ErrConfigValid, "invalid style.roles entry").
				WithDetail("role", name)
		}
	}
	return nil
}

// RenderOptions returns the layout options for the renderer
func (c *Config) RenderOptions() render.Options {
	return render.Options{
		RawMarkdown: c.Output.RawMarkdown,
		ShowTitle:   c.Output.ShowTitle,
		Compact:     c.Output.Compact,
	}
}

// ColorMode returns the parsed output.color value
func (c *Config) ColorMode() style.ColorMode {
	mode, _ := style.ParseColorMode(c.Output.Color)
	return mode
}

// Theme resolves the configured theme file, or the built-in one, with the
// role overrides applied.
func (c *Config) Theme() (style.Theme, error) {
	theme := style.DefaultTheme()
	if c.Style.Theme != "" {
		loaded, err := style.LoadTheme(c.Style.Theme)
		if err != nil {
			return style.Theme{}, err
		}
		theme = loaded
	}

	if len(c.Style.Roles) == 0 {
		return theme, nil
	}
	overrides := style.Theme{Styles: make(map[string]style.StyleDef, len(c.Style.Roles))}
	for name, o := range c.Style.Roles {
		overrides.Styles[name] = style.StyleDef{
			Bold:       o.Bold,
			Italic:     o.Italic,
			Underline:  o.Underline,
			Faint:      o.Faint,
			Foreground: o.Foreground,
			Background: o.Background,
		}
	}
	return theme.Merge(overrides), nil
}

// Marshal encodes the configuration as TOML
func (c *Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return data, nil
}
