package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/golang/glog"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFormat          = "pajek"
	DefaultEncoding        = "UTF-8"
	DefaultStopPointPrefix = "StopPoint:"
)

// DefaultPaths are searched in order by LoadAppConfig when no path is given
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

var validate = validator.New()

// Defaults returns a configuration with every optional field filled in. Sources
// stay nil: an absent source list is a configuration error, not an empty run.
func Defaults() AppConfig {
	return AppConfig{
		Output: OutputConfig{
			Format:   DefaultFormat,
			Encoding: DefaultEncoding,
		},
		Feed: FeedConfig{
			StopPointPrefix: DefaultStopPointPrefix,
		},
	}
}

// Load reads and decodes one YAML file on top of Defaults. It does not validate;
// callers apply overrides first and then call Validate.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// LoadAppConfig loads path, or when path is empty the first of DefaultPaths that
// exists, falling back to Defaults if none does. Environment overrides are applied,
// then override (when non-nil), and the result is validated.
func LoadAppConfig(path string, override func(*AppConfig)) (AppConfig, error) {
	cfg, err := loadFirst(path)
	if err != nil {
		return cfg, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	if override != nil {
		override(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFirst(path string) (AppConfig, error) {
	if path != "" {
		return Load(path)
	}
	for _, p := range DefaultPaths {
		cfg, err := Load(p)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err == nil {
			glog.Infof("Using configuration %s", p)
		}
		return cfg, err
	}
	return Defaults(), nil
}

// ApplyEnv overrides fields from TRANSNET_* variables. lookup is usually
// os.LookupEnv.
func (c *AppConfig) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("TRANSNET_SOURCES"); ok && v != "" {
		c.Sources = SplitList(v)
	}
	if v, ok := lookup("TRANSNET_OUTPUT"); ok && v != "" {
		c.Output.Path = v
	}
	if v, ok := lookup("TRANSNET_FORMAT"); ok && v != "" {
		c.Output.Format = v
	}
	if v, ok := lookup("TRANSNET_ENCODING"); ok && v != "" {
		c.Output.Encoding = v
	}
	if v, ok := lookup("TRANSNET_METRICS_TEXTFILE"); ok && v != "" {
		c.Metrics.Textfile = v
	}
}

// Validate checks struct tags. The output format and encoding are checked by the
// formatter, which owns the list of supported values.
func (c AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return nil
}

func (c *AppConfig) fillDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}
	if c.Output.Encoding == "" {
		c.Output.Encoding = DefaultEncoding
	}
	if c.Feed.StopPointPrefix == "" {
		c.Feed.StopPointPrefix = DefaultStopPointPrefix
	}
}

// SplitList splits a comma separated list, dropping blanks
func SplitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
