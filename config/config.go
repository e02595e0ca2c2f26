// Package config loads the heamy command-line settings from a file and
// HEAMY_* environment variables.
package config

import (
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/YuminosukeSato/goheamy/cache"
	"github.com/YuminosukeSato/goheamy/ensemble"
	"github.com/YuminosukeSato/goheamy/metrics"
	"github.com/YuminosukeSato/goheamy/pkg/errors"
)

// EnvPrefix prefixes environment overrides, e.g. HEAMY_CACHE_DIR.
const EnvPrefix = "HEAMY"

// Config holds the CLI settings.
type Config struct {
	CacheDir      string  `mapstructure:"cache_dir" validate:"required"`
	Method        string  `mapstructure:"method" validate:"required,method"`
	Scorer        string  `mapstructure:"scorer" validate:"required,scorer"`
	TestSize      float64 `mapstructure:"test_size" validate:"gt=0,lt=1"`
	MaxIterations int     `mapstructure:"max_iterations" validate:"gte=0"`
	Penalty       float64 `mapstructure:"penalty" validate:"gte=0"`
	LogLevel      string  `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		CacheDir:      cache.DefaultDir,
		Method:        "nelder-mead",
		Scorer:        "mse",
		TestSize:      0.2,
		MaxIterations: 0,
		Penalty:       1,
		LogLevel:      "info",
	}
}

// Load reads the file at path, if any, over the defaults and applies
// environment overrides. The format follows the file extension.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}
	return decode(v)
}

// LoadReader is Load for an in-memory document of configType ("toml",
// "yaml", "json").
func LoadReader(r io.Reader, configType string) (*Config, error) {
	v := newViper()
	v.SetConfigType(configType)
	if err := v.ReadConfig(r); err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	d := Default()
	v.SetDefault("cache_dir", d.CacheDir)
	v.SetDefault("method", d.Method)
	v.SetDefault("scorer", d.Scorer)
	v.SetDefault("test_size", d.TestSize)
	v.SetDefault("max_iterations", d.MaxIterations)
	v.SetDefault("penalty", d.Penalty)
	v.SetDefault("log_level", d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if m, err := ensemble.ParseMethod(c.Method); err == nil {
		c.Method = m.String()
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	_ = val.RegisterValidation("method", func(fl validator.FieldLevel) bool {
		_, err := ensemble.ParseMethod(fl.Field().String())
		return err == nil
	})
	_ = val.RegisterValidation("scorer", func(fl validator.FieldLevel) bool {
		_, err := metrics.Lookup(fl.Field().String())
		return err == nil
	})
	return val
}

// Validate checks every field. The first failing field is reported as a
// ValidationError.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return errors.NewValidationError(fe.Field(), "failed '"+fe.Tag()+"' check", fe.Value())
	}
	return errors.Wrap(err, "validate config")
}
