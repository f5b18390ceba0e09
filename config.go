package spritemesh

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
)

// Config holds the settings of the sprite mesh optimiser.
type Config struct {
	// Disabled turns the optimiser into a no-op.
	Disabled bool       `json:"disabled"`
	Weld     WeldConfig `json:"weld"`
	// Workers bounds how many sprites are welded at once. 0 means one per CPU.
	Workers           int      `json:"workers"`
	SkipPathFragments []string `json:"skip_path_fragments"`
	ClampToRect       bool     `json:"clamp_to_rect"`
}

func DefaultConfig() *Config {
	return &Config{
		Weld:              DefaultWeldConfig(),
		SkipPathFragments: []string{"UI", "Standard Assets"},
		ClampToRect:       true,
	}
}

// LoadConfig reads a JSON config file on top of the defaults. A missing file
// yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.Weld.Validate(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return invalidInputf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

func (c *Config) workerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}
