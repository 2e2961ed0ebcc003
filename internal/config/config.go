package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Carousel CarouselConfig `toml:"carousel"`
	UI       UIConfig       `toml:"ui"`
}

type CarouselConfig struct {
	ItemWidth    float64 `toml:"item_width"`
	ItemHeight   float64 `toml:"item_height"`
	ItemSpacing  float64 `toml:"item_spacing"`
	ItemCount    int     `toml:"item_count"`
	Seed         int64   `toml:"seed"` // 0 picks a time-based seed
	DimAmount    float64 `toml:"dim_amount"`
	Deceleration float64 `toml:"deceleration"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
	Debug      bool `toml:"debug"`
}

func DefaultConfig() *Config {
	return &Config{
		Carousel: CarouselConfig{
			ItemWidth:    300,
			ItemHeight:   400,
			ItemSpacing:  24,
			ItemCount:    101,
			DimAmount:    0.55,
			Deceleration: 0.85,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     720,
		},
	}
}

// Validate checks the values the carousel cannot start with. Item extent and
// spacing are checked again when the paging geometry is built.
func (c *Config) Validate() error {
	var errs []error
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		errs = append(errs, fmt.Errorf("ui: window size %dx%d must be positive", c.UI.Width, c.UI.Height))
	}
	if c.Carousel.ItemCount < 0 {
		errs = append(errs, fmt.Errorf("carousel: item_count %d is negative", c.Carousel.ItemCount))
	}
	if c.Carousel.ItemHeight <= 0 {
		errs = append(errs, fmt.Errorf("carousel: item_height %v must be positive", c.Carousel.ItemHeight))
	}
	if c.Carousel.DimAmount < 0 || c.Carousel.DimAmount > 1 {
		errs = append(errs, fmt.Errorf("carousel: dim_amount %v outside [0, 1]", c.Carousel.DimAmount))
	}
	if c.Carousel.Deceleration <= 0 || c.Carousel.Deceleration >= 1 {
		errs = append(errs, fmt.Errorf("carousel: deceleration %v outside (0, 1)", c.Carousel.Deceleration))
	}
	return errors.Join(errs...)
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "excarousel"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file, falling back to defaults when it does not
// exist, then applies environment overrides and validates the result.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err == nil {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// SaveSeed pins the carousel seed in the config file, keeping everything
// else the file already says. Environment overrides are not written back.
func SaveSeed(seed int64) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	cfg := DefaultConfig()
	if err := cfg.readFile(path); err != nil {
		return err
	}
	cfg.Carousel.Seed = seed
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("save seed: %w", err)
	}
	return nil
}
