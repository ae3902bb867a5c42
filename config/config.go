package config

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Title     string
	Lightness float64
	// Width and Height fix the gradient size in cells; zero fills the screen.
	Width   int
	Height  int
	LogFile string
	History string
}

const configFile = "config.toml"

func Default() Config {
	return Config{
		Title:     "Hue Picker",
		Lightness: 0.5,
		LogFile:   filepath.Join(os.TempDir(), "huepick.log"),
	}
}

// Load reads the config at path, or at the default location when path is
// empty. A missing default config is created with the default values.
func Load(path string) (Config, error) {
	if path == "" {
		path = filepath.Join(Dir(), configFile)
		ok, err := exists(path)
		if err != nil {
			return Config{}, fmt.Errorf("check config %q: %w", path, err)
		}
		if !ok {
			conf := Default()
			if err := Write(path, conf); err != nil {
				log.Printf("config: cannot initialize %q: %v", path, err)
			}
			return conf, nil
		}
	}

	conf := Default()
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return Config{}, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	return conf, nil
}

func (c Config) Validate() error {
	if c.Lightness < 0 || c.Lightness > 1 {
		return fmt.Errorf("lightness %v is outside [0, 1]", c.Lightness)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("negative size %dx%d", c.Width, c.Height)
	}
	return nil
}

func Write(path string, conf Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	var buffer bytes.Buffer
	if err := toml.NewEncoder(&buffer).Encode(conf); err != nil {
		return err
	}
	return os.WriteFile(path, buffer.Bytes(), 0644)
}

func Dir() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), "huepick")
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func xdgOrFallback(xdg string, fallback string) string {
	dir := os.Getenv(xdg)
	if dir != "" {
		if ok, err := exists(dir); ok && err == nil {
			return dir
		}
	}
	return fallback
}
