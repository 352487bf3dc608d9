package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/sir_venger/textsplit/internal/models"
)

const (
	DefaultListenAddr     = ":8080"
	DefaultMaxUploadBytes = 32 << 20
	DefaultSplitTTL       = 30 * time.Minute
	DefaultGCInterval     = time.Minute
	DefaultSizeDecimals   = 2
)

type Config struct {
	ListenAddr     string        `yaml:"listen_addr" json:"listen_addr"`
	MaxUploadBytes int64         `yaml:"max_upload_bytes" json:"max_upload_bytes"`
	Unit           models.Unit   `yaml:"unit" json:"unit"`
	SplitTTL       time.Duration `yaml:"split_ttl" json:"split_ttl"`
	GCInterval     time.Duration `yaml:"gc_interval" json:"gc_interval"`
	RejectBinary   *bool         `yaml:"reject_binary" json:"reject_binary"`
	SizeDecimals   *int          `yaml:"size_decimals" json:"size_decimals"`
}

// Default возвращает конфигурацию со всеми значениями по умолчанию.
func Default() *Config {
	reject := true
	decimals := DefaultSizeDecimals
	return &Config{
		ListenAddr:     DefaultListenAddr,
		MaxUploadBytes: DefaultMaxUploadBytes,
		Unit:           models.UnitRune,
		SplitTTL:       DefaultSplitTTL,
		GCInterval:     DefaultGCInterval,
		RejectBinary:   &reject,
		SizeDecimals:   &decimals,
	}
}

// Load подгружает .env, читает YAML-конфигурацию (если она есть), применяет ENV-переопределения
// и возвращает актуальную структуру.
func Load() (*Config, error) {
	if err := godotenv.Load(getenv("ENV_FILE", ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	c := Default()
	path := getenv("CONFIG_PATH", "./config.yaml")
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// конфиг необязателен: хватает дефолтов и ENV
	default:
		return nil, err
	}

	if err := applyEnv(c); err != nil {
		return nil, err
	}
	if err := c.normalize(); err != nil {
		return nil, err
	}

	return c, nil
}

// Decimals возвращает точность для форматирования размеров.
func (c *Config) Decimals() int {
	if c.SizeDecimals == nil {
		return DefaultSizeDecimals
	}
	return *c.SizeDecimals
}

// BinaryRejected сообщает, нужно ли отклонять нетекстовое содержимое.
func (c *Config) BinaryRejected() bool {
	return c.RejectBinary == nil || *c.RejectBinary
}

func applyEnv(c *Config) error {
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MAX_UPLOAD_BYTES: %w", err)
		}
		c.MaxUploadBytes = n
	}
	if v := os.Getenv("SPLIT_UNIT"); v != "" {
		c.Unit = models.Unit(v)
	}
	if v := os.Getenv("SPLIT_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("SPLIT_TTL: %w", err)
		}
		c.SplitTTL = d
	}
	if v := os.Getenv("GC_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("GC_INTERVAL: %w", err)
		}
		c.GCInterval = d
	}
	if v := os.Getenv("REJECT_BINARY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("REJECT_BINARY: %w", err)
		}
		c.RejectBinary = &b
	}
	if v := os.Getenv("SIZE_DECIMALS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SIZE_DECIMALS: %w", err)
		}
		c.SizeDecimals = &n
	}

	return nil
}

func (c *Config) normalize() error {
	c.ListenAddr = strings.TrimSpace(c.ListenAddr)
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be > 0, got %d", c.MaxUploadBytes)
	}
	// split_ttl: 0 отключает истечение срока, отрицательное значение — ошибка.
	if c.SplitTTL < 0 {
		return fmt.Errorf("split_ttl must be >= 0, got %s", c.SplitTTL)
	}
	if c.GCInterval < 0 {
		return fmt.Errorf("gc_interval must be >= 0, got %s", c.GCInterval)
	}

	unit, err := models.ParseUnit(string(c.Unit))
	if err != nil {
		return err
	}
	c.Unit = unit

	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}

	return def
}
