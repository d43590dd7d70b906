package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMethod  = "eigen"
	DefaultMaxIter = 30
	DefaultWMin    = 0.01
	DefaultWMax    = 100.0
	DefaultWStep   = 0.1
	DefaultDt      = 0.01
	DefaultSteps   = 1000
)

type Config struct {
	// Polynomial, by coefficients (low to high degree) or by real roots.
	Coeffs []float64 `yaml:"coeffs,omitempty"`
	Roots  []float64 `yaml:"roots,omitempty"`

	// Root finding method: eigen or iterative.
	Method  string `yaml:"method"`
	MaxIter int    `yaml:"max_iter"`

	// Transfer function, numerator and denominator low to high degree.
	Num []float64 `yaml:"num,omitempty"`
	Den []float64 `yaml:"den,omitempty"`

	// Frequency grid for bode, rad/s with a logarithmic step in decades.
	WMin  float64 `yaml:"w_min"`
	WMax  float64 `yaml:"w_max"`
	WStep float64 `yaml:"w_step"`

	// Time grid for step responses.
	Dt    float64 `yaml:"dt"`
	Steps int     `yaml:"steps"`
}

func DefaultConfig() *Config {
	return &Config{
		Method:  DefaultMethod,
		MaxIter: DefaultMaxIter,
		WMin:    DefaultWMin,
		WMax:    DefaultWMax,
		WStep:   DefaultWStep,
		Dt:      DefaultDt,
		Steps:   DefaultSteps,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch c.Method {
	case "eigen", "iterative":
	default:
		return fmt.Errorf("unknown method %q", c.Method)
	}
	if c.MaxIter <= 0 {
		return fmt.Errorf("max_iter must be positive, got %d", c.MaxIter)
	}
	if c.WMin <= 0 {
		return fmt.Errorf("w_min must be positive, got %v", c.WMin)
	}
	if c.WMin >= c.WMax {
		return fmt.Errorf("w_min %v must be below w_max %v", c.WMin, c.WMax)
	}
	if c.WStep <= 0 {
		return fmt.Errorf("w_step must be positive, got %v", c.WStep)
	}
	if c.Dt <= 0 || c.Steps <= 0 {
		return fmt.Errorf("dt and steps must be positive, got %v and %d", c.Dt, c.Steps)
	}
	return nil
}
