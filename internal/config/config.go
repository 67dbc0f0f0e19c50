// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/dealer-appraisal/pkg/appraise"
)

// Inventory sources.
const (
	InventorySnapshot = "snapshot"
	InventoryStore    = "store"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Inventory InventoryConfig `yaml:"inventory"`
	Appraisal AppraisalConfig `yaml:"appraisal"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Cache     CacheConfig     `yaml:"cache"`
	Tracing   TracingConfig   `yaml:"tracing"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// InventoryConfig controls where appraisals read comparables from.
type InventoryConfig struct {
	// Source is "snapshot" (in-memory copy refreshed on a schedule) or
	// "store" (query the database on every appraisal).
	Source          string        `yaml:"source"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// AppraisalConfig holds valuation defaults.
type AppraisalConfig struct {
	Policy          appraise.Policy `yaml:"policy"`
	Rates           appraise.Rates  `yaml:"rates"`
	ComparableLimit int             `yaml:"comparable_limit"`
	TopComparables  int             `yaml:"top_comparables"`
	Timeout         time.Duration   `yaml:"timeout"`
}

// RateLimitConfig throttles the appraisal endpoint per client IP.
type RateLimitConfig struct {
	Enabled   bool    `yaml:"enabled"`
	PerSecond float64 `yaml:"per_second"`
	Burst     int     `yaml:"burst"`
}

// CacheConfig defines the Redis dealership name cache.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

// TracingConfig defines OTLP trace export.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyInventoryDefaults(&cfg.Inventory)
	applyAppraisalDefaults(&cfg.Appraisal)
	applyRateLimitDefaults(&cfg.RateLimit)
	applyCacheDefaults(&cfg.Cache)
	applyTracingDefaults(&cfg.Tracing)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
	if s.ShutdownTimeout == 0 {
		s.ShutdownTimeout = 10 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyInventoryDefaults(i *InventoryConfig) {
	if i.Source == "" {
		i.Source = InventorySnapshot
	}
	if i.RefreshInterval == 0 {
		i.RefreshInterval = 5 * time.Minute
	}
}

func applyAppraisalDefaults(a *AppraisalConfig) {
	def := appraise.DefaultPolicy()
	if a.Policy.ProfitMarginPercent == 0 {
		a.Policy.ProfitMarginPercent = def.ProfitMarginPercent
	}
	if a.Policy.HoldingCostPerDay == 0 {
		a.Policy.HoldingCostPerDay = def.HoldingCostPerDay
	}
	if a.Policy.EstimatedHoldingDays == 0 {
		a.Policy.EstimatedHoldingDays = def.EstimatedHoldingDays
	}
	if a.Policy.SafetyBufferPercent == 0 {
		a.Policy.SafetyBufferPercent = def.SafetyBufferPercent
	}

	rates := appraise.DefaultRates()
	if a.Rates.PerKm == 0 {
		a.Rates.PerKm = rates.PerKm
	}
	if a.Rates.PerYear == 0 {
		a.Rates.PerYear = rates.PerYear
	}

	if a.ComparableLimit == 0 {
		a.ComparableLimit = appraise.DefaultComparableLimit
	}
	if a.TopComparables == 0 {
		a.TopComparables = appraise.DefaultTopComparables
	}
	if a.Timeout == 0 {
		a.Timeout = 5 * time.Second
	}
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 5.0
	}
	if r.Burst == 0 {
		r.Burst = 10
	}
}

func applyCacheDefaults(c *CacheConfig) {
	if c.Addr == "" {
		c.Addr = "localhost:6379"
	}
	if c.TTL == 0 {
		c.TTL = time.Hour
	}
}

func applyTracingDefaults(t *TracingConfig) {
	if t.SampleRatio == 0 {
		t.SampleRatio = 1.0
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, errors.New("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, errors.New("database.user is required"))
	}

	switch cfg.Inventory.Source {
	case InventorySnapshot, InventoryStore:
	default:
		errs = append(errs, fmt.Errorf(
			"inventory.source must be one of: snapshot, store (got %q)",
			cfg.Inventory.Source,
		))
	}

	errs = append(errs, validatePolicy(&cfg.Appraisal.Policy)...)
	if cfg.Appraisal.Rates.PerKm < 0 || cfg.Appraisal.Rates.PerYear < 0 {
		errs = append(errs, errors.New("appraisal.rates must not be negative"))
	}
	if cfg.Appraisal.TopComparables > cfg.Appraisal.ComparableLimit {
		errs = append(errs, errors.New("appraisal.top_comparables must not exceed appraisal.comparable_limit"))
	}

	if cfg.RateLimit.Enabled && cfg.RateLimit.PerSecond < 0 {
		errs = append(errs, errors.New("rate_limit.per_second must be positive"))
	}
	if cfg.Cache.Enabled && cfg.Cache.TTL < 0 {
		errs = append(errs, errors.New("cache.ttl must be positive"))
	}
	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
		errs = append(errs, errors.New("tracing.endpoint is required when tracing is enabled"))
	}
	if cfg.Tracing.SampleRatio < 0 || cfg.Tracing.SampleRatio > 1 {
		errs = append(errs, errors.New("tracing.sample_ratio must be between 0 and 1"))
	}

	return errors.Join(errs...)
}

func validatePolicy(p *appraise.Policy) []error {
	var errs []error
	if p.ProfitMarginPercent < 0 || p.ProfitMarginPercent > 100 {
		errs = append(errs, errors.New("appraisal.policy.profit_margin_percent must be between 0 and 100"))
	}
	if p.SafetyBufferPercent < 0 || p.SafetyBufferPercent > 100 {
		errs = append(errs, errors.New("appraisal.policy.safety_buffer_percent must be between 0 and 100"))
	}
	if p.HoldingCostPerDay < 0 {
		errs = append(errs, errors.New("appraisal.policy.holding_cost_per_day must not be negative"))
	}
	if p.EstimatedHoldingDays < 0 {
		errs = append(errs, errors.New("appraisal.policy.estimated_holding_days must not be negative"))
	}
	return errs
}
