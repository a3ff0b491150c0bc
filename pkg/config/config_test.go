package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pageprint/pkg/errors"
	"github.com/arthur-debert/pageprint/pkg/render"
	"github.com/arthur-debert/pageprint/pkg/style"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points XDG_CONFIG_HOME at an empty directory so the user's own
// configuration never leaks into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)

	assert.Equal(t, render.Options{}, cfg.RenderOptions())
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Equal(t, style.ColorAuto, cfg.ColorMode())
	assert.Empty(t, cfg.Style.Theme)
	assert.Empty(t, cfg.Style.Roles)
}

func TestLoadLayers(t *testing.T) {
	t.Run("xdg config file", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "pageprint", "config.toml"), `
[output]
show_title = true
color = "never"
`)
		path, ok := DefaultPath()
		require.True(t, ok)
		assert.Equal(t, filepath.Join(dir, "pageprint", "config.toml"), path)

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.True(t, cfg.Output.ShowTitle)
		assert.False(t, cfg.Output.Compact, "unset keys keep their defaults")
		assert.Equal(t, style.ColorNever, cfg.ColorMode())
	})

	t.Run("explicit file wins over xdg file", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "pageprint", "config.toml"), "[output]\ncompact = true\n")
		explicit := filepath.Join(t.TempDir(), "custom.toml")
		writeFile(t, explicit, "[output]\nraw_markdown = true\n")

		cfg, err := Load(LoadOptions{Path: explicit})
		require.NoError(t, err)
		assert.True(t, cfg.Output.RawMarkdown)
		assert.False(t, cfg.Output.Compact)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "pageprint", "config.toml"), "[output]\ncompact = false\n")
		t.Setenv("PAGEPRINT_OUTPUT__COMPACT", "true")
		t.Setenv("PAGEPRINT_STYLE__ROLES__URL__FOREGROUND", "red")

		cfg, err := Load(LoadOptions{})
		require.NoError(t, err)
		assert.True(t, cfg.Output.Compact)
		assert.Equal(t, "red", cfg.Style.Roles["url"].Foreground)
	})

	t.Run("overrides win over environment", func(t *testing.T) {
		isolate(t)
		t.Setenv("PAGEPRINT_OUTPUT__SHOW_TITLE", "false")

		cfg, err := Load(LoadOptions{Overrides: map[string]interface{}{
			"output.show_title": true,
			"output.color":      "always",
		}})
		require.NoError(t, err)
		assert.True(t, cfg.Output.ShowTitle)
		assert.Equal(t, style.ColorAlways, cfg.ColorMode())
	})
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		isolate(t)
		_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "nope.toml")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed toml", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "bad.toml")
		writeFile(t, path, "[output\ncompact = ")
		_, err := Load(LoadOptions{Path: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid color", func(t *testing.T) {
		isolate(t)
		_, err := Load(LoadOptions{Overrides: map[string]interface{}{"output.color": "sometimes"}})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})

	t.Run("unknown role", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "roles.toml")
		writeFile(t, path, "[style.roles.heading]\nbold = true\n")
		_, err := Load(LoadOptions{Path: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	})
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "output.show_title", envKey("PAGEPRINT_OUTPUT__SHOW_TITLE"))
	assert.Equal(t, "style.roles.inline_code.bold", envKey("PAGEPRINT_STYLE__ROLES__INLINE_CODE__BOLD"))
}

func TestTheme(t *testing.T) {
	t.Run("built-in theme with overrides", func(t *testing.T) {
		cfg := &Config{Style: Style{Roles: map[string]StyleOverride{
			"placeholder": {Bold: true, Foreground: "yellow"},
		}}}
		theme, err := cfg.Theme()
		require.NoError(t, err)
		assert.Equal(t, style.StyleDef{Bold: true, Foreground: "yellow"}, theme.Styles["placeholder"])
		assert.Equal(t, style.DefaultTheme().Styles["title"], theme.Styles["title"])
	})

	t.Run("theme file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "theme.yaml")
		writeFile(t, path, "styles:\n  title:\n    italic: true\n")
		cfg := &Config{Style: Style{Theme: path}}

		theme, err := cfg.Theme()
		require.NoError(t, err)
		assert.True(t, theme.Styles["title"].Italic)
		_, hasURL := theme.Styles["url"]
		assert.False(t, hasURL, "a theme file replaces the built-in theme")
	})

	t.Run("missing theme file", func(t *testing.T) {
		cfg := &Config{Style: Style{Theme: filepath.Join(t.TempDir(), "none.yaml")}}
		_, err := cfg.Theme()
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestMarshal(t *testing.T) {
	cfg := &Config{
		Output: Output{ShowTitle: true, Color: "never"},
		Style:  Style{Roles: map[string]StyleOverride{"url": {Underline: true}}},
	}
	data, err := cfg.Marshal()
	require.NoError(t, err)

	var decoded Config
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, *cfg, decoded)
	assert.Contains(t, string(data), "show_title = true")
}

func TestDefaultContent(t *testing.T) {
	var decoded Config
	require.NoError(t, toml.Unmarshal([]byte(DefaultContent()), &decoded))
	assert.Equal(t, "auto", decoded.Output.Color)
}
