package numeral

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSetting is returned when a configuration file contains a value
// that cannot be applied.
var ErrInvalidSetting = errors.New("invalid setting")

// Config describes the formatting policy and locale in a form that can be
// stored in a TOML, YAML or JSON file:
//
//	locale = "hi_IN.utf8"
//	script = "latn"
//	digit_limit = 12
//	chop_zeros = false
//	integer_base = 16
//	format = "exponent"
//
// Omitted fields keep the values of [DefaultConfig].
// Script, if set, overrides the numeral script implied by the locale.
type Config struct {
	Locale      string  `toml:"locale" yaml:"locale" json:"locale"`
	Script      *Script `toml:"script" yaml:"script" json:"script"`
	DigitLimit  int     `toml:"digit_limit" yaml:"digit_limit" json:"digit_limit"`
	ChopZeros   bool    `toml:"chop_zeros" yaml:"chop_zeros" json:"chop_zeros"`
	IntegerBase int     `toml:"integer_base" yaml:"integer_base" json:"integer_base"`
	Format      string  `toml:"format" yaml:"format" json:"format"`
}

// DefaultConfig returns a configuration equivalent to [DefaultSettings].
// The locale is left empty, see [Config.LocaleOrEnv].
func DefaultConfig() Config {
	s := DefaultSettings()
	return Config{
		DigitLimit:  s.DigitLimit,
		ChopZeros:   s.ChopZeros,
		IntegerBase: s.IntegerBase,
		Format:      s.Format.String(),
	}
}

// LoadConfig reads a configuration file.
// The format is selected by the file extension: ".toml", ".yaml", ".yml" or ".json".
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	c := DefaultConfig()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)
	case ".json":
		err = json.Unmarshal(data, &c)
	default:
		return Config{}, fmt.Errorf("reading config: unsupported file extension %q", ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("decoding %v: %w", filepath.Base(path), err)
	}
	return c, nil
}

// ParseFormatType converts "exponent" or "scientific" to a format type.
func ParseFormatType(s string) (FormatType, error) {
	switch strings.ToLower(s) {
	case "exponent":
		return FormatExponent, nil
	case "scientific":
		return FormatScientific, nil
	}
	return 0, fmt.Errorf("parsing format type %q: %w", s, ErrInvalidSetting)
}

// Settings converts the configuration to formatter settings.
//
// Settings returns an error if the integer base or the format type is not supported.
func (c Config) Settings() (Settings, error) {
	if !validBase(c.IntegerBase) {
		return Settings{}, fmt.Errorf("integer base %v: %w", c.IntegerBase, ErrUnsupportedBase)
	}
	t, err := ParseFormatType(c.Format)
	if err != nil {
		return Settings{}, err
	}
	return Settings{
		DigitLimit:  c.DigitLimit,
		ChopZeros:   c.ChopZeros,
		IntegerBase: c.IntegerBase,
		Format:      t,
	}, nil
}

// Apply installs the configuration in f using its setters.
// If the configuration is invalid, f is left unchanged.
func (c Config) Apply(f *Formatter) error {
	s, err := c.Settings()
	if err != nil {
		return fmt.Errorf("applying config: %w", err)
	}
	f.SetDigitLimit(s.DigitLimit)
	f.SetChopZeros(s.ChopZeros)
	if err := f.SetIntegerBase(s.IntegerBase); err != nil {
		return fmt.Errorf("applying config: %w", err) // Should never happen
	}
	f.SetFormatType(s.Format)
	return nil
}

// LocaleOrEnv returns the configured locale, or the locale from the
// environment if none is configured.
// The configured script, if any, replaces the script of the locale.
func (c Config) LocaleOrEnv() Locale {
	loc := LocaleFromEnv()
	if c.Locale != "" {
		loc = ParseLocale(c.Locale)
	}
	if c.Script != nil {
		loc = loc.WithScript(*c.Script)
	}
	return loc
}
