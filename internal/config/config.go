package config

import "time"

type Duration struct {
	Duration time.Duration
}

type HTTPConfig struct {
	Addr              string   `json:"addr"`
	ReadHeaderTimeout Duration `json:"read_header_timeout"`
	IdleTimeout       Duration `json:"idle_timeout"`
	ShutdownTimeout   Duration `json:"shutdown_timeout"`
	MaxRequestBytes   int64    `json:"max_request_bytes"`

	// MetricsAddr serves /metrics on a separate listener when set, in addition to the API router.
	MetricsAddr string `json:"metrics_addr,omitempty"`

	// CORSAllowOrigins lists browser origins allowed to call the API.
	CORSAllowOrigins []string `json:"cors_allow_origins,omitempty"`
}

type TutorialConfig struct {
	// CatalogDir replaces the embedded lesson catalog with *.yaml files from this directory.
	CatalogDir string `json:"catalog_dir,omitempty"`

	// MaxBatchSize caps the number of tutorials a single batch request may ask for.
	MaxBatchSize int `json:"max_batch_size,omitempty"`

	// BatchConcurrency bounds how many tutorials of one batch are generated at once.
	BatchConcurrency int `json:"batch_concurrency,omitempty"`
}

type ServiceConfig struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type Config struct {
	Env       string         `json:"env"`
	Service   ServiceConfig  `json:"service"`
	HTTP      HTTPConfig     `json:"http"`
	Tutorials TutorialConfig `json:"tutorials"`
}
