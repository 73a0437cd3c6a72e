// Package config loads gocivil settings from defaults, an optional config
// file, a .env file and GOCIVIL_* environment variables, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/alexiusacademia/gocivil/internal/ec4"
	"github.com/alexiusacademia/gocivil/internal/solar"
)

// EnvPrefix is the prefix of environment overrides, e.g. GOCIVIL_LOG_LEVEL
const EnvPrefix = "GOCIVIL"

const dateLayout = "20060102"

// Config holds all settings of the tool
type Config struct {
	Log struct {
		Level  string `mapstructure:"level"`  // debug, info, warn, error
		Format string `mapstructure:"format"` // text, json
	} `mapstructure:"log"`

	// EC4 factors and section constants
	EC4 ec4.Parameters `mapstructure:"ec4"`

	Solar struct {
		BaseURL     string        `mapstructure:"base_url"`
		Timeout     time.Duration `mapstructure:"timeout"`
		RateLimit   float64       `mapstructure:"rate_limit"` // requests per second
		Concurrency int           `mapstructure:"concurrency"`
		CacheSize   int           `mapstructure:"cache_size"`
		Start       string        `mapstructure:"start"` // YYYYMMDD
		End         string        `mapstructure:"end"`   // YYYYMMDD
	} `mapstructure:"solar"`

	PV     solar.SizingConfig `mapstructure:"pv"`
	Demand solar.Demand       `mapstructure:"demand"`

	// Sites overrides the built-in city list when not empty
	Sites []solar.Site `mapstructure:"sites"`
}

// SetDefaults registers the default value of every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	p := ec4.DefaultParameters()
	v.SetDefault("ec4.gamma_m", p.GammaM)
	v.SetDefault("ec4.gamma_c", p.GammaC)
	v.SetDefault("ec4.gamma_s", p.GammaS)
	v.SetDefault("ec4.alpha_cc", p.AlphaCC)
	v.SetDefault("ec4.creep_coefficient", p.CreepCoefficient)
	v.SetDefault("ec4.concrete_stiffness_factor", p.ConcreteStiffnessFactor)
	v.SetDefault("ec4.rebar_modulus", p.RebarModulus)
	v.SetDefault("ec4.web_thickness", p.WebThickness)
	v.SetDefault("ec4.profile_plastic_modulus", p.ProfilePlasticModulus)
	v.SetDefault("ec4.rebar_plastic_modulus", p.RebarPlasticModulus)

	v.SetDefault("solar.base_url", solar.DefaultBaseURL)
	v.SetDefault("solar.timeout", 30*time.Second)
	v.SetDefault("solar.rate_limit", 2.0)
	v.SetDefault("solar.concurrency", 4)
	v.SetDefault("solar.cache_size", 128)
	v.SetDefault("solar.start", "20230101")
	v.SetDefault("solar.end", "20231231")

	pv := solar.DefaultSizingConfig()
	v.SetDefault("pv.charging_efficiency", pv.ChargingEfficiency)
	v.SetDefault("pv.pv_efficiency", pv.PVEfficiency)
	v.SetDefault("pv.tilt_factor", pv.TiltFactor)

	v.SetDefault("demand.household_daily", 10.0)
	v.SetDefault("demand.car_per_100km", 20.0)
	v.SetDefault("demand.daily_distance", 40.0)
	v.SetDefault("demand.car_per_session", 0.0)
}

// Load reads the configuration. An empty path skips the config file; a
// missing .env file is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var result *multierror.Error

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		result = multierror.Append(result, fmt.Errorf("log.level: unknown level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		result = multierror.Append(result, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}

	if c.Solar.Timeout <= 0 {
		result = multierror.Append(result, fmt.Errorf("solar.timeout must be positive"))
	}
	if c.Solar.RateLimit <= 0 {
		result = multierror.Append(result, fmt.Errorf("solar.rate_limit must be positive"))
	}
	if c.Solar.Concurrency < 1 {
		result = multierror.Append(result, fmt.Errorf("solar.concurrency must be at least 1"))
	}
	if c.Solar.CacheSize < 1 {
		result = multierror.Append(result, fmt.Errorf("solar.cache_size must be at least 1"))
	}
	start, errStart := time.Parse(dateLayout, c.Solar.Start)
	if errStart != nil {
		result = multierror.Append(result, fmt.Errorf("solar.start: %w", errStart))
	}
	end, errEnd := time.Parse(dateLayout, c.Solar.End)
	if errEnd != nil {
		result = multierror.Append(result, fmt.Errorf("solar.end: %w", errEnd))
	}
	if errStart == nil && errEnd == nil && !end.After(start) {
		result = multierror.Append(result, fmt.Errorf("solar.end must be after solar.start"))
	}

	if err := c.PV.Validate(); err != nil {
		result = multierror.Append(result, fmt.Errorf("pv: %w", err))
	}

	return result.ErrorOrNil()
}

// Period returns the parsed radiation averaging range
func (c *Config) Period() (time.Time, time.Time) {
	start, _ := time.Parse(dateLayout, c.Solar.Start)
	end, _ := time.Parse(dateLayout, c.Solar.End)
	return start, end
}

// SolarClient builds a radiation client from the settings
func (c *Config) SolarClient(opts ...solar.Option) *solar.Client {
	start, end := c.Period()
	base := []solar.Option{
		solar.WithBaseURL(c.Solar.BaseURL),
		solar.WithTimeout(c.Solar.Timeout),
		solar.WithPeriod(start, end),
		solar.WithRateLimit(c.Solar.RateLimit, 1),
		solar.WithCacheSize(c.Solar.CacheSize),
	}
	return solar.NewClient(append(base, opts...)...)
}

// SiteList returns the configured sites or the built-in list
func (c *Config) SiteList() []solar.Site {
	if len(c.Sites) > 0 {
		return c.Sites
	}
	return solar.Sites
}
