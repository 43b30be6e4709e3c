package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	DefaultModel      = "lorenz"
	DefaultIntegrator = "euler"
	DefaultDt         = 0.01
	DefaultSteps      = 10000
	DefaultOutput     = "lorenz_attractor.png"
	DefaultDataDir    = ".lorenz"

	// EnvPrefix namespaces every environment override.
	EnvPrefix = "LORENZ_"
)

type Config struct {
	Model         string             `yaml:"model" env:"MODEL"`
	Integrator    string             `yaml:"integrator" env:"INTEGRATOR"`
	Dt            float64            `yaml:"dt" env:"DT"`
	Steps         int                `yaml:"steps" env:"STEPS"`
	Params        map[string]float64 `yaml:"params,omitempty" env:"PARAMS"`
	InitState     []float64          `yaml:"init_state,omitempty" env:"INIT_STATE"`
	ValidateState bool               `yaml:"validate_state" env:"VALIDATE_STATE"`
	Output        string             `yaml:"output" env:"OUTPUT"`
	Style         StyleConfig        `yaml:"style" envPrefix:"STYLE_"`
}

// StyleConfig mirrors the figure settings of the rendered image.
type StyleConfig struct {
	Theme       string  `yaml:"theme,omitempty" env:"THEME"`
	Background  string  `yaml:"background" env:"BACKGROUND"`
	Line        string  `yaml:"line" env:"LINE"`
	LineWidth   float64 `yaml:"line_width" env:"LINE_WIDTH"`
	WidthIn     float64 `yaml:"width_in" env:"WIDTH_IN"`
	HeightIn    float64 `yaml:"height_in" env:"HEIGHT_IN"`
	DPI         int     `yaml:"dpi" env:"DPI"`
	Transparent bool    `yaml:"transparent" env:"TRANSPARENT"`
}

func DefaultStyle() StyleConfig {
	return StyleConfig{
		Background:  "black",
		Line:        "cyan",
		LineWidth:   0.5,
		WidthIn:     8,
		HeightIn:    6,
		DPI:         100,
		Transparent: true,
	}
}

func DefaultConfig() *Config {
	return &Config{
		Model:      DefaultModel,
		Integrator: DefaultIntegrator,
		Dt:         DefaultDt,
		Steps:      DefaultSteps,
		Output:     DefaultOutput,
		Style:      DefaultStyle(),
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Merge(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays the YAML file at path onto c. Keys absent from the file keep
// their current values.
func (c *Config) Merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overlays LORENZ_* environment variables onto c. Unset variables
// leave fields untouched.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(nil)
}

func (c *Config) applyEnv(environment map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// ApplyPreset copies the run-shaping fields of a preset onto c.
func (c *Config) ApplyPreset(p *Config) {
	c.Model = p.Model
	c.Integrator = p.Integrator
	c.Dt = p.Dt
	c.Steps = p.Steps
	c.InitState = append([]float64(nil), p.InitState...)
	if len(p.Params) > 0 {
		c.Params = make(map[string]float64, len(p.Params))
		for k, v := range p.Params {
			c.Params[k] = v
		}
	}
	if p.Output != "" {
		c.Output = p.Output
	}
	if p.Style.Line != "" {
		c.Style.Line = p.Style.Line
	}
}

// Validate checks the ranges every run depends on.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("model is required")
	}
	if c.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", c.Dt)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must not be negative, got %d", c.Steps)
	}
	if c.Output == "" {
		return fmt.Errorf("output path is required")
	}
	if c.Style.WidthIn <= 0 || c.Style.HeightIn <= 0 {
		return fmt.Errorf("figure size must be positive, got %gx%g", c.Style.WidthIn, c.Style.HeightIn)
	}
	if c.Style.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", c.Style.DPI)
	}
	if c.Style.LineWidth <= 0 {
		return fmt.Errorf("line width must be positive, got %g", c.Style.LineWidth)
	}
	return nil
}
