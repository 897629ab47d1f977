// Package config loads the Mosaic dashboard settings from YAML with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"mosaic-tui/internal/agents"
	"mosaic-tui/internal/metrics"
)

// Config holds all dashboard configuration.
type Config struct {
	Theme     string `yaml:"theme"`      // dark, light
	StartView string `yaml:"start_view"` // dashboard, agents, chat

	Agents  AgentsConfig  `yaml:"agents"`
	Chart   ChartConfig   `yaml:"chart"`
	Logging LoggingConfig `yaml:"logging"`
}

// AgentsConfig configures the agent list.
type AgentsConfig struct {
	PageSize int `yaml:"page_size"`
}

// ChartConfig configures the performance chart.
type ChartConfig struct {
	Range         string `yaml:"range"`          // 7d, 30d, 90d
	Metric        string `yaml:"metric"`         // tasks, earnings, interactions
	ReferenceDate string `yaml:"reference_date"` // YYYY-MM-DD; empty uses the last sample
}

// LoggingConfig configures the file logger. The terminal belongs to the UI,
// so logs only ever go to a file.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
	Level   string `yaml:"level"` // debug, info, warn, error
}

var (
	// ValidThemes lists the supported color themes.
	ValidThemes = []string{"dark", "light"}
	// ValidViews lists the views the dashboard can start in.
	ValidViews = []string{"dashboard", "agents", "chat"}
	// ValidLogLevels lists the accepted logging levels.
	ValidLogLevels = []string{"debug", "info", "warn", "error"}
)

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Theme:     "dark",
		StartView: "dashboard",
		Agents: AgentsConfig{
			PageSize: agents.DefaultPageSize,
		},
		Chart: ChartConfig{
			Range:  metrics.DefaultRange.String(),
			Metric: metrics.MetricTasks.String(),
		},
		Logging: LoggingConfig{
			Enabled: false,
			Path:    filepath.Join(os.TempDir(), "mosaic.log"),
			Level:   "info",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/mosaic/config.yaml (or the platform
// equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "mosaic.yaml"
	}
	return filepath.Join(dir, "mosaic", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults with environment overrides applied.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("MOSAIC_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("MOSAIC_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Agents.PageSize = n
		}
	}
	if v := os.Getenv("MOSAIC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MOSAIC_LOG_FILE"); v != "" {
		c.Logging.Path = v
		c.Logging.Enabled = true
	}
}

// Validate checks every setting against its allowed values.
func (c *Config) Validate() error {
	if !slices.Contains(ValidThemes, c.Theme) {
		return fmt.Errorf("invalid theme: %s (valid: %v)", c.Theme, ValidThemes)
	}
	if !slices.Contains(ValidViews, c.StartView) {
		return fmt.Errorf("invalid start_view: %s (valid: %v)", c.StartView, ValidViews)
	}
	if !slices.Contains(agents.PageSizes, c.Agents.PageSize) {
		return fmt.Errorf("invalid agents.page_size: %d (valid: %v)", c.Agents.PageSize, agents.PageSizes)
	}
	if _, err := metrics.ParseRange(c.Chart.Range); err != nil {
		return fmt.Errorf("invalid chart.range: %w", err)
	}
	if _, err := metrics.ParseMetric(c.Chart.Metric); err != nil {
		return fmt.Errorf("invalid chart.metric: %w", err)
	}
	if _, err := c.ReferenceDate(); err != nil {
		return fmt.Errorf("invalid chart.reference_date: %w", err)
	}
	if !slices.Contains(ValidLogLevels, c.Logging.Level) {
		return fmt.Errorf("invalid logging.level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}
	if c.Logging.Enabled && c.Logging.Path == "" {
		return fmt.Errorf("logging.path is required when logging is enabled")
	}
	return nil
}

// ChartRange returns the configured window, falling back to the default.
func (c *Config) ChartRange() metrics.Range {
	if r, err := metrics.ParseRange(c.Chart.Range); err == nil {
		return r
	}
	return metrics.DefaultRange
}

// ChartMetric returns the configured metric, falling back to tasks.
func (c *Config) ChartMetric() metrics.Metric {
	if m, err := metrics.ParseMetric(c.Chart.Metric); err == nil {
		return m
	}
	return metrics.MetricTasks
}

// ReferenceDate parses the configured reference date. The zero time means
// "use the last sample".
func (c *Config) ReferenceDate() (time.Time, error) {
	if c.Chart.ReferenceDate == "" {
		return time.Time{}, nil
	}
	return time.Parse(metrics.DateLayout, c.Chart.ReferenceDate)
}
