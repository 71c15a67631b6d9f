package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/itemdesk/internal/model"
)

const (
	appDirName     = ".itemdesk"
	configFileName = "config.yaml"
	logFileName    = "itemdesk.log"
)

// Config holds all client configuration
type Config struct {
	APIURL           string        `yaml:"api_url"`
	PageSize         int           `yaml:"page_size"`
	Timeout          time.Duration `yaml:"timeout"`
	LogFile          string        `yaml:"log_file"`
	Debug            bool          `yaml:"debug"`
	ImageMaxDim      int           `yaml:"image_max_dim"` // 0 keeps images as picked
	PlaceholderImage string        `yaml:"placeholder_image"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		APIURL:           "http://localhost:8000",
		PageSize:         model.DefaultPageSize,
		Timeout:          30 * time.Second,
		LogFile:          defaultLogPath(),
		PlaceholderImage: model.DefaultPlaceholderImage,
	}
}

// Dir is the per-user directory for config and logs.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, appDirName), nil
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	dir, err := Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, configFileName)
}

func defaultLogPath() string {
	dir, err := Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, logFileName)
}

// Load builds the configuration from defaults, then the YAML file at path,
// then ITEMDESK_* environment variables (a .env file is loaded first if
// present). An empty path means DefaultPath, which may be missing.
func Load(path string) (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			if explicit || !errors.Is(err, os.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) readFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.APIURL = getEnv("ITEMDESK_API_URL", c.APIURL)
	c.LogFile = getEnv("ITEMDESK_LOG_FILE", c.LogFile)
	c.PlaceholderImage = getEnv("ITEMDESK_PLACEHOLDER_IMAGE", c.PlaceholderImage)

	if v := os.Getenv("ITEMDESK_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ITEMDESK_PAGE_SIZE: %w", err)
		}
		c.PageSize = n
	}
	if v := os.Getenv("ITEMDESK_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("ITEMDESK_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}
	if v := os.Getenv("ITEMDESK_IMAGE_MAX_DIM"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ITEMDESK_IMAGE_MAX_DIM: %w", err)
		}
		c.ImageMaxDim = n
	}
	if v := os.Getenv("ITEMDESK_DEBUG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ITEMDESK_DEBUG: %w", err)
		}
		c.Debug = b
	}
	return nil
}

// Validate checks the configuration after all sources are applied.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api url %q must be an absolute URL", c.APIURL)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.ImageMaxDim < 0 {
		return fmt.Errorf("image max dimension must not be negative, got %d", c.ImageMaxDim)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
