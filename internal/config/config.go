package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"jsonedit/internal/errors"
	"jsonedit/internal/log"

	"github.com/gobwas/glob"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// DefaultKeyWidth is the column the pair list pads keys to.
const DefaultKeyWidth = 25

// Config represents the application configuration structure.
// It covers where the finished object goes, how pairs are displayed,
// the colour theme and logging.
type Config struct {
	Output struct {
		Path   string `yaml:"path"`   // Target file, empty for stdout
		Indent string `yaml:"indent"` // Indent for pretty output, empty for compact
	} `yaml:"output"`
	Display struct {
		KeyWidth int      `yaml:"key_width"` // Key column width in the pair list
		MaskKeys []string `yaml:"mask_keys"` // Glob patterns whose values are masked on screen
	} `yaml:"display"`
	Theme Theme `yaml:"theme"`
	Log   struct {
		File  string `yaml:"file"`  // Log file, empty disables logging
		Level string `yaml:"level"` // trace, debug, info, warn, error
		JSON  bool   `yaml:"json"`  // One JSON object per line
	} `yaml:"log"`
}

// Theme holds the colours used by the terminal UI. Values are "#rrggbb" or
// an ANSI 256 colour number; the title gradient endpoints must be hex.
type Theme struct {
	Name      string `yaml:"name"`
	TitleFrom string `yaml:"title_from"` // Title gradient start
	TitleTo   string `yaml:"title_to"`   // Title gradient end
	Pair      string `yaml:"pair"`       // Committed pair rows
	Normal    string `yaml:"normal"`     // "Normal Mode" label
	Editing   string `yaml:"editing"`    // "Editing Mode" label and active box
	Exiting   string `yaml:"exiting"`    // "Exiting" label and quit popup
	Hint      string `yaml:"hint"`       // Key hints
	Border    string `yaml:"border"`     // Frame borders
}

// LoadConfig loads configuration from the default location
// (~/.config/jsonedit/config.yaml).
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// DefaultPath returns ~/.config/jsonedit/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.NewConfigError("cannot locate home directory", "", errors.ConfigNotFound, err)
	}
	return filepath.Join(home, ".config", "jsonedit", "config.yaml"), nil
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("no config at %s, using defaults", path)
			return cfg, nil
		}
		return nil, errors.NewConfigError("error reading config file", path, errors.ConfigNotFound, err)
	}

	// Unmarshal over the defaults so unset fields keep their default value
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}
	if cfg.Theme.Name != "" && cfg.Theme.Name != "default" {
		cfg.applyThemeDefaults(cfg.Theme.Name)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debugf("loaded config from %s", path)
	return cfg, nil
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	cfg := &Config{}

	cfg.Output.Path = ""
	cfg.Output.Indent = "  " // Pretty by default

	cfg.Display.KeyWidth = DefaultKeyWidth
	cfg.Display.MaskKeys = []string{}

	cfg.ApplyTheme("default")

	cfg.Log.Level = "info"

	return cfg
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrInvalidConfig
	}

	if strings.TrimSpace(c.Output.Indent) != "" {
		return invalid("output.indent", "indent must contain only whitespace")
	}

	if c.Display.KeyWidth < 0 {
		return invalid("display.key_width", "key width must be >= 0")
	}

	for _, pattern := range c.Display.MaskKeys {
		if _, err := glob.Compile(pattern); err != nil {
			return errors.NewConfigError("invalid mask pattern", "display.mask_keys", errors.InvalidConfig, err)
		}
	}

	if err := c.Theme.validate(); err != nil {
		return err
	}

	if !log.ValidLevel(c.Log.Level) {
		return invalid("log.level", "unknown log level "+strconv.Quote(c.Log.Level))
	}

	return nil
}

func (t Theme) validate() error {
	if _, ok := themes[t.Name]; t.Name != "" && !ok {
		return invalid("theme.name", "unknown theme "+strconv.Quote(t.Name))
	}

	for _, hex := range []struct{ param, value string }{
		{"theme.title_from", t.TitleFrom},
		{"theme.title_to", t.TitleTo},
	} {
		if _, err := colorful.Hex(hex.value); err != nil {
			return errors.NewConfigError("title gradient colours must be #rrggbb", hex.param, errors.InvalidConfig, err)
		}
	}

	for _, c := range []struct{ param, value string }{
		{"theme.pair", t.Pair},
		{"theme.normal", t.Normal},
		{"theme.editing", t.Editing},
		{"theme.exiting", t.Exiting},
		{"theme.hint", t.Hint},
		{"theme.border", t.Border},
	} {
		if !validColor(c.value) {
			return invalid(c.param, "invalid colour "+strconv.Quote(c.value))
		}
	}
	return nil
}

func validColor(s string) bool {
	if strings.HasPrefix(s, "#") {
		_, err := colorful.Hex(s)
		return err == nil
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

func invalid(param, msg string) error {
	return errors.NewConfigError(msg, param, errors.InvalidConfig, nil)
}

// MaskMatcher compiles Display.MaskKeys into a single predicate. It assumes
// the config has been validated.
func (c *Config) MaskMatcher() func(key string) bool {
	var globs []glob.Glob
	for _, pattern := range c.Display.MaskKeys {
		if g, err := glob.Compile(pattern); err == nil {
			globs = append(globs, g)
		}
	}
	return func(key string) bool {
		for _, g := range globs {
			if g.Match(key) {
				return true
			}
		}
		return false
	}
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}

var themes = map[string]Theme{
	"default": {
		TitleFrom: "#00FF87",
		TitleTo:   "#5FAFFF",
		Pair:      "#FFFF00",
		Normal:    "#00FF00",
		Editing:   "#FFFF00",
		Exiting:   "#FF5F5F",
		Hint:      "#FF0000",
		Border:    "#626262",
	},
	"ocean": {
		TitleFrom: "#00AFAF",
		TitleTo:   "#0087FF",
		Pair:      "51",
		Normal:    "36",
		Editing:   "220",
		Exiting:   "196",
		Hint:      "33",
		Border:    "31",
	},
	"monochrome": {
		TitleFrom: "#EEEEEE",
		TitleTo:   "#8A8A8A",
		Pair:      "252",
		Normal:    "255",
		Editing:   "250",
		Exiting:   "245",
		Hint:      "241",
		Border:    "245",
	},
}

// GetTheme returns a predefined theme by name.
// If the theme doesn't exist, returns the default theme.
func GetTheme(name string) Theme {
	if theme, exists := themes[name]; exists {
		theme.Name = name
		return theme
	}
	theme := themes["default"]
	theme.Name = "default"
	return theme
}

// ApplyTheme replaces every theme colour with the named preset.
func (c *Config) ApplyTheme(name string) {
	c.Theme = GetTheme(name)
}

// applyThemeDefaults fills colours the file left unset from the named preset
// instead of the default theme.
func (c *Config) applyThemeDefaults(name string) {
	preset := GetTheme(name)
	def := GetTheme("default")
	fill := func(dst *string, presetValue, defaultValue string) {
		if *dst == "" || *dst == defaultValue {
			*dst = presetValue
		}
	}
	fill(&c.Theme.TitleFrom, preset.TitleFrom, def.TitleFrom)
	fill(&c.Theme.TitleTo, preset.TitleTo, def.TitleTo)
	fill(&c.Theme.Pair, preset.Pair, def.Pair)
	fill(&c.Theme.Normal, preset.Normal, def.Normal)
	fill(&c.Theme.Editing, preset.Editing, def.Editing)
	fill(&c.Theme.Exiting, preset.Exiting, def.Exiting)
	fill(&c.Theme.Hint, preset.Hint, def.Hint)
	fill(&c.Theme.Border, preset.Border, def.Border)
}

// ListThemes returns a list of available theme names.
func ListThemes() []string {
	return []string{"default", "ocean", "monochrome"}
}
