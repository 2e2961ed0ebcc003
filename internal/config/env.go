package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvItemCount  = "EXCAROUSEL_ITEM_COUNT"
	EnvSeed       = "EXCAROUSEL_SEED"
	EnvFullscreen = "EXCAROUSEL_FULLSCREEN"
	EnvDebug      = "EXCAROUSEL_DEBUG"
)

// LoadDotEnv loads a .env file from the working directory into the process
// environment. A missing file is not an error; variables already set win.
func LoadDotEnv(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("No .env file, using process environment")
			return nil
		}
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// ApplyEnv overrides config values from the environment. lookup is usually
// os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvItemCount); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvItemCount, err)
		}
		c.Carousel.ItemCount = n
	}
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Carousel.Seed = n
	}
	if v, ok := lookup(EnvFullscreen); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvFullscreen, err)
		}
		c.UI.Fullscreen = b
	}
	if v, ok := lookup(EnvDebug); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.UI.Debug = b
	}
	return nil
}
