package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/yungbote/neurobridge-tutorials/internal/platform/envutil"
)

// CatalogDirEnv overrides tutorials.catalog_dir.
const CatalogDirEnv = "TUTORIAL_CATALOG_DIR"

const (
	defaultAddr             = ":8080"
	defaultMaxRequestBytes  = 1 << 20
	defaultMaxBatchSize     = 50
	defaultBatchConcurrency = 8
)

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		d.Duration = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		u, err := strconv.Unquote(s)
		if err != nil {
			return err
		}
		if strings.TrimSpace(u) == "" {
			d.Duration = 0
			return nil
		}
		dd, err := time.ParseDuration(u)
		if err != nil {
			return err
		}
		d.Duration = dd
		return nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("duration must be a JSON string like \"5s\" or an int nanoseconds: %w", err)
	}
	d.Duration = time.Duration(n)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Duration.String())
}

func defaultConfig() *Config {
	return &Config{
		Env:     "development",
		Service: ServiceConfig{Name: "neurobridge-tutorials"},
		HTTP: HTTPConfig{
			Addr:              defaultAddr,
			ReadHeaderTimeout: Duration{Duration: 5 * time.Second},
			IdleTimeout:       Duration{Duration: 2 * time.Minute},
			ShutdownTimeout:   Duration{Duration: 15 * time.Second},
			MaxRequestBytes:   defaultMaxRequestBytes,
			CORSAllowOrigins:  append([]string(nil), defaultCORSOrigins...),
		},
		Tutorials: TutorialConfig{
			MaxBatchSize:     defaultMaxBatchSize,
			BatchConcurrency: defaultBatchConcurrency,
		},
	}
}

// Load layers defaults, an optional JSON file (TUTORIAL_CONFIG_PATH or ./config/config.json)
// and environment overrides, then validates the result.
func Load() (*Config, error) {
	cfg := defaultConfig()

	cfgPath := strings.TrimSpace(os.Getenv("TUTORIAL_CONFIG_PATH"))
	if cfgPath == "" {
		if wd, err := os.Getwd(); err == nil {
			p := filepath.Join(wd, "config", "config.json")
			if _, err := os.Stat(p); err == nil {
				cfgPath = p
			}
		}
	}

	if cfgPath != "" {
		b, err := os.ReadFile(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := json.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	applyEnv(cfg)

	if err := normalize(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Env = envutil.String("LOG_MODE", cfg.Env)
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		cfg.HTTP.Addr = ":" + strings.TrimPrefix(port, ":")
	}
	cfg.HTTP.Addr = envutil.String("TUTORIAL_HTTP_ADDR", cfg.HTTP.Addr)
	cfg.HTTP.MetricsAddr = envutil.String("METRICS_ADDR", cfg.HTTP.MetricsAddr)
	cfg.HTTP.CORSAllowOrigins = envutil.List("CORS_ALLOW_ORIGINS", cfg.HTTP.CORSAllowOrigins)
	cfg.Service.Version = envutil.String("TUTORIAL_VERSION", cfg.Service.Version)
	cfg.Tutorials.CatalogDir = envutil.String(CatalogDirEnv, cfg.Tutorials.CatalogDir)
	cfg.Tutorials.MaxBatchSize = envutil.Int("TUTORIAL_MAX_BATCH", cfg.Tutorials.MaxBatchSize)
	cfg.Tutorials.BatchConcurrency = envutil.Int("TUTORIAL_BATCH_CONCURRENCY", cfg.Tutorials.BatchConcurrency)
}

func normalize(cfg *Config) error {
	cfg.Env = strings.TrimSpace(cfg.Env)
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	cfg.Service.Name = strings.TrimSpace(cfg.Service.Name)
	if cfg.Service.Name == "" {
		cfg.Service.Name = "neurobridge-tutorials"
	}
	cfg.HTTP.Addr = strings.TrimSpace(cfg.HTTP.Addr)
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = defaultAddr
	}
	cfg.HTTP.MetricsAddr = strings.TrimSpace(cfg.HTTP.MetricsAddr)
	if cfg.HTTP.MetricsAddr != "" && cfg.HTTP.MetricsAddr == cfg.HTTP.Addr {
		return fmt.Errorf("http.metrics_addr %q collides with http.addr", cfg.HTTP.MetricsAddr)
	}
	if cfg.HTTP.MaxRequestBytes <= 0 {
		cfg.HTTP.MaxRequestBytes = defaultMaxRequestBytes
	}
	if cfg.HTTP.ReadHeaderTimeout.Duration < 0 || cfg.HTTP.IdleTimeout.Duration < 0 {
		return errors.New("http timeouts must not be negative")
	}
	if cfg.HTTP.ShutdownTimeout.Duration < 0 {
		return errors.New("http.shutdown_timeout must not be negative")
	}
	if cfg.HTTP.ShutdownTimeout.Duration == 0 {
		cfg.HTTP.ShutdownTimeout = Duration{Duration: 15 * time.Second}
	}

	cfg.Tutorials.CatalogDir = strings.TrimSpace(cfg.Tutorials.CatalogDir)
	if cfg.Tutorials.CatalogDir != "" {
		info, err := os.Stat(cfg.Tutorials.CatalogDir)
		if err != nil {
			return fmt.Errorf("tutorials.catalog_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("tutorials.catalog_dir %q is not a directory", cfg.Tutorials.CatalogDir)
		}
	}
	switch {
	case cfg.Tutorials.MaxBatchSize < 0:
		return fmt.Errorf("invalid tutorials.max_batch_size=%d", cfg.Tutorials.MaxBatchSize)
	case cfg.Tutorials.MaxBatchSize == 0:
		cfg.Tutorials.MaxBatchSize = defaultMaxBatchSize
	}
	switch {
	case cfg.Tutorials.BatchConcurrency < 0:
		return fmt.Errorf("invalid tutorials.batch_concurrency=%d", cfg.Tutorials.BatchConcurrency)
	case cfg.Tutorials.BatchConcurrency == 0:
		cfg.Tutorials.BatchConcurrency = defaultBatchConcurrency
	}
	return nil
}
