// Package config reads the process configuration: the models to evaluate, in
// order, the data files and the logging settings.
//
//	title: Sizing of a 4-seater
//	input_file: inputs.yaml
//	output_file: outputs.yaml
//	calibration_file: calibration.ini
//	log:
//	  level: info
//	models:
//	  - name: high_lift
//	    id: fastga.aerodynamics.high_lift
//	  - name: polar_cruise
//	    id: fastga.aerodynamics.polar.equilibrated
//	    options:
//	      low_speed_aero: false
//
// Any setting can be overridden from the environment with the GOFASTGA_
// prefix, e.g. GOFASTGA_LOG_LEVEL=debug.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gofastga/internal/component"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that override settings.
const EnvPrefix = "GOFASTGA"

// Slot is a model to evaluate.
type Slot struct {
	Name    string         `mapstructure:"name"`
	ID      string         `mapstructure:"id"`
	Options map[string]any `mapstructure:"options"`
}

// Logging selects the logrus level and formatter.
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json
}

// Config is a parsed configuration file. File paths are relative to the
// directory of the configuration file.
type Config struct {
	Title           string  `mapstructure:"title"`
	InputFile       string  `mapstructure:"input_file"`
	OutputFile      string  `mapstructure:"output_file"`
	CalibrationFile string  `mapstructure:"calibration_file"`
	Log             Logging `mapstructure:"log"`
	Models          []Slot  `mapstructure:"models"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetDefault("title", "gofastga")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("input_file", "")
	v.SetDefault("output_file", "")
	v.SetDefault("calibration_file", "")
	return v
}

// Load reads the configuration file at path (YAML, JSON or TOML).
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for _, p := range []*string{&cfg.InputFile, &cfg.OutputFile, &cfg.CalibrationFile} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}

	for i, s := range cfg.Models {
		if s.ID == "" {
			return nil, fmt.Errorf("model %d (%q): missing id", i+1, s.Name)
		}
		if s.Name == "" {
			cfg.Models[i].Name = s.ID
		}
	}
	return &cfg, nil
}

// Group instantiates the configured models as one group, in file order.
func (c *Config) Group() (*component.Group, error) {
	g := component.NewGroup(c.Title)
	for _, s := range c.Models {
		m, err := component.New(s.ID, component.Options(s.Options))
		if err != nil {
			return nil, fmt.Errorf("model %q: %w", s.Name, err)
		}
		g.Add(s.Name, m)
	}
	return g, nil
}

// Apply configures the standard logrus logger.
func (l Logging) Apply() error {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	switch strings.ToLower(l.Format) {
	case "", "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", l.Format)
	}
	return nil
}
