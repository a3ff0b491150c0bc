package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pageprint/pkg/errors"
	"github.com/arthur-debert/pageprint/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// key levels: PAGEPRINT_STYLE__ROLES__URL__BOLD sets style.roles.url.bold.
const EnvPrefix = "PAGEPRINT_"

// ConfigFileName is the config file path relative to XDG_CONFIG_HOME
var ConfigFileName = filepath.Join("pageprint", "config.toml")

// LoadOptions selects the optional configuration layers
type LoadOptions struct {
	// Path is an explicit config file. It must exist when set; otherwise the
	// XDG config directories are searched and a missing file is fine.
	Path string
	// Overrides are dotted keys set last, typically from command-line flags
	Overrides map[string]interface{}
}

// DefaultPath returns the first config file found in the XDG config directories
func DefaultPath() (string, bool) {
	path, err := xdg.SearchConfigFile(ConfigFileName)
	if err != nil {
		return "", false
	}
	return path, true
}

// Load builds the configuration from all layers and validates it
func Load(opts LoadOptions) (*Config, error) {
	log := logging.GetLogger("config")

	k, err := load(opts)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Bool("raw", cfg.Output.RawMarkdown).
		Bool("showTitle", cfg.Output.ShowTitle).
		Bool("compact", cfg.Output.Compact).
		Str("color", cfg.Output.Color).
		Str("theme", cfg.Style.Theme).
		Int("roleOverrides", len(cfg.Style.Roles)).
		Msg("Configuration loaded")
	return &cfg, nil
}

func load(opts LoadOptions) (*koanf.Koanf, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Load the user config file
	path := opts.Path
	if path == "" {
		path, _ = DefaultPath()
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		log.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 4. Flags
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	return k, nil
}

// envKey maps PAGEPRINT_OUTPUT__SHOW_TITLE to output.show_title
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}
