// Package config loads the reportd and talentpdf-mcp configuration.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	talentpdf "github.com/Leo-HM-04/FrontEnd-Reclutamiento-sub002"
)

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Report   ReportConfig   `yaml:"report"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr      string `yaml:"addr"`
	BodyLimit int    `yaml:"body_limit"` // bytes
}

// DatabaseConfig holds the audit log connection. An empty URL disables auditing.
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// ReportConfig holds the defaults applied to every generation.
type ReportConfig struct {
	Locale        string `yaml:"locale"`
	Brand         string `yaml:"brand"`
	Tagline       string `yaml:"tagline"`
	Watermark     bool   `yaml:"watermark"`
	Logo          string `yaml:"logo"`           // image path
	WatermarkFile string `yaml:"watermark_file"` // image path
	Letterhead    string `yaml:"letterhead"`     // PDF path
	Verify        string `yaml:"verify"`         // none, qr or pdf417
	VerifyBaseURL string `yaml:"verify_base_url"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:      ":8080",
			BodyLimit: 16 * 1024 * 1024,
		},
		Report: ReportConfig{
			Locale:    "en",
			Brand:     "Bausen",
			Tagline:   "Talent Management System",
			Watermark: true,
			Verify:    string(talentpdf.VerifyNone),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads configuration from a file, then applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads config from path, or returns the defaults with
// environment overrides when path is empty or missing.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Validate checks values that would otherwise be silently replaced.
func (c *Config) Validate() error {
	switch c.Report.Locale {
	case "en", "es":
	default:
		return fmt.Errorf("report.locale %q: %w", c.Report.Locale, talentpdf.ErrInvalidParam)
	}
	switch talentpdf.Verification(c.Report.Verify) {
	case talentpdf.VerifyNone, talentpdf.VerifyQR, talentpdf.VerifyPDF417:
	default:
		return fmt.Errorf("report.verify %q: %w", c.Report.Verify, talentpdf.ErrInvalidParam)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is empty: %w", talentpdf.ErrInvalidParam)
	}
	if c.Server.BodyLimit <= 0 {
		return fmt.Errorf("server.body_limit %d: %w", c.Server.BodyLimit, talentpdf.ErrInvalidParam)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level %q: %w", c.Log.Level, talentpdf.ErrInvalidParam)
	}
	return nil
}

type lookupFunc func(key string) (string, bool)

// applyEnv overlays REPORTD_* variables.
func (c *Config) applyEnv(lookup lookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	str("REPORTD_ADDR", &c.Server.Addr)
	str("REPORTD_DATABASE_URL", &c.Database.URL)
	str("REPORTD_LOCALE", &c.Report.Locale)
	str("REPORTD_BRAND", &c.Report.Brand)
	str("REPORTD_LOGO", &c.Report.Logo)
	str("REPORTD_LETTERHEAD", &c.Report.Letterhead)
	str("REPORTD_VERIFY", &c.Report.Verify)
	str("REPORTD_LOG_LEVEL", &c.Log.Level)

	if v, ok := lookup("REPORTD_WATERMARK"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: REPORTD_WATERMARK %q: %w", v, talentpdf.ErrInvalidParam)
		}
		c.Report.Watermark = b
	}
	return nil
}

// ReportOptions turns the report section into generation options. Image and
// letterhead paths are read here so a bad path fails at startup.
func (c *Config) ReportOptions() ([]talentpdf.Option, error) {
	r := c.Report
	opts := []talentpdf.Option{
		talentpdf.WithLocale(r.Locale),
		talentpdf.WithBrand(r.Brand, r.Tagline),
		talentpdf.WithWatermark(r.Watermark),
		talentpdf.WithVerification(talentpdf.Verification(r.Verify), r.VerifyBaseURL),
	}

	files := []struct {
		path string
		opt  func([]byte) talentpdf.Option
	}{
		{r.Logo, talentpdf.WithLogo},
		{r.WatermarkFile, talentpdf.WithWatermarkImage},
		{r.Letterhead, talentpdf.WithLetterhead},
	}
	for _, f := range files {
		if f.path == "" {
			continue
		}
		data, err := os.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", f.path, err)
		}
		opts = append(opts, f.opt(data))
	}
	return opts, nil
}

// Logger builds the process logger writing to w.
func (l LogConfig) Logger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch l.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
