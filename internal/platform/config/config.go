package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	FileName       = "config.yaml"
	DefaultTimeout = 15 * time.Second
)

type Config struct {
	Dir         string
	APIBaseURL  string
	Timeout     time.Duration
	DBPath      string
	LogLevel    string
	MetricsAddr string
	// Token is an externally issued bearer token; when set it takes the
	// place of a stored login.
	Token string
}

type fileConfig struct {
	APIURL      string `yaml:"api_url"`
	Timeout     string `yaml:"timeout"`
	LogLevel    string `yaml:"log_level"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// DefaultDir returns ~/.incubator, or .incubator when the home directory is
// unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".incubator"
	}
	return filepath.Join(home, ".incubator")
}

// Load resolves configuration from, in increasing priority: defaults,
// <dir>/config.yaml, <dir>/.env, and the process environment.
func Load(dir string) (Config, error) {
	if strings.TrimSpace(dir) == "" {
		return Config{}, fmt.Errorf("config dir is required")
	}
	file, err := readFile(filepath.Join(dir, FileName))
	if err != nil {
		return Config{}, err
	}
	dotenv, err := readDotenv(filepath.Join(dir, ".env"))
	if err != nil {
		return Config{}, err
	}
	lookup := func(key, fallback string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		if v := dotenv[key]; v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		Dir:         dir,
		APIBaseURL:  strings.TrimRight(lookup("INCUBATOR_API_URL", file.APIURL), "/"),
		LogLevel:    lookup("INCUBATOR_LOG_LEVEL", orDefault(file.LogLevel, "warn")),
		MetricsAddr: lookup("INCUBATOR_METRICS_ADDR", file.MetricsAddr),
		Token:       lookup("INCUBATOR_TOKEN", ""),
		DBPath:      filepath.Join(dir, "incubator.db"),
	}
	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("api url is required: set api_url in %s or INCUBATOR_API_URL", filepath.Join(dir, FileName))
	}

	rawTimeout := lookup("INCUBATOR_TIMEOUT", file.Timeout)
	cfg.Timeout = DefaultTimeout
	if rawTimeout != "" {
		timeout, err := time.ParseDuration(rawTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse timeout %q: %w", rawTimeout, err)
		}
		if timeout <= 0 {
			return Config{}, fmt.Errorf("timeout must be positive, got %s", timeout)
		}
		cfg.Timeout = timeout
	}
	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	out := fileConfig{}
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return out, nil
		}
		return out, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(payload, &out); err != nil {
		return out, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, nil
}

func readDotenv(path string) (map[string]string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return values, nil
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
