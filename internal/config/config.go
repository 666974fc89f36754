package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sartorproj/gooutlier/outlier"
	"github.com/sartorproj/gooutlier/stats"
)

const DefaultPath = "gooutlier.yaml"

type Config struct {
	Mode    string        `yaml:"mode"`
	LowQ    *float64      `yaml:"low_q"`
	HighQ   *float64      `yaml:"high_q"`
	Window  int           `yaml:"window"`
	Rules   []Rule        `yaml:"rules"`
	Logging LoggingConfig `yaml:"logging"`
}

type Rule struct {
	Method    string  `yaml:"method"`
	Threshold float64 `yaml:"threshold"`
}

type LoggingConfig struct {
	Verbose bool   `yaml:"verbose"`
	Format  string `yaml:"format"`
}

func (c *Config) GetMode() string {
	if c == nil || c.Mode == "" {
		return string(outlier.ModeGlobal)
	}
	return c.Mode
}

func (c *Config) GetLowQ() float64 {
	if c == nil || c.LowQ == nil {
		return stats.DefaultLowQ
	}
	return *c.LowQ
}

func (c *Config) GetHighQ() float64 {
	if c == nil || c.HighQ == nil {
		return stats.DefaultHighQ
	}
	return *c.HighQ
}

func (l LoggingConfig) GetFormat() string {
	if l.Format == "" {
		return "text"
	}
	return l.Format
}

// Options returns the validated z-norm options described by the config.
func (c *Config) Options() (outlier.Options, error) {
	mode, err := outlier.ParseMode(c.GetMode())
	if err != nil {
		return outlier.Options{}, err
	}
	opts := outlier.Options{
		Mode:  mode,
		LowQ:  c.GetLowQ(),
		HighQ: c.GetHighQ(),
	}
	if c != nil {
		opts.Window = c.Window
	}
	return opts, opts.Validate()
}

// Detectors builds one detector per rule, in order. Z-norm options are only
// required to be valid when a znorm rule is present.
func (c *Config) Detectors() ([]outlier.Detector, error) {
	if c == nil {
		return nil, nil
	}
	detectors := make([]outlier.Detector, 0, len(c.Rules))
	for i, r := range c.Rules {
		method, err := outlier.ParseMethod(r.Method)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		var opts outlier.Options
		if method == outlier.MethodZNorm {
			if opts, err = c.Options(); err != nil {
				return nil, fmt.Errorf("rule %d: %w", i, err)
			}
		}
		d, err := outlier.NewDetector(method, r.Threshold, opts)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		detectors = append(detectors, d)
	}
	return detectors, nil
}

func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &c, nil
}

// Default is a rolling z-norm over one day of hourly readings plus a
// physical floor, matching the demo data.
func Default() *Config {
	return &Config{
		Mode:   string(outlier.ModeRolling),
		Window: 24,
		Rules: []Rule{
			{Method: string(outlier.MethodZNorm), Threshold: 3},
			{Method: string(outlier.MethodMinThreshold), Threshold: 0},
		},
	}
}
