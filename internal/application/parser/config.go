package parser

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/es-debug/log-analyzer/internal/parser"
	"github.com/es-debug/log-analyzer/internal/report"
)

const dateLayout = "2006-01-02"

// Config holds every run setting. Fields map to the YAML config file and to
// command-line flags of the same name.
type Config struct {
	Path        string `yaml:"path"`
	From        string `yaml:"from"`
	To          string `yaml:"to"`
	Format      string `yaml:"format"`
	Output      string `yaml:"output"`
	FilterField string `yaml:"filter_field"`
	FilterValue string `yaml:"filter_value"`
	Workers     int    `yaml:"workers"`
	Verbose     bool   `yaml:"verbose"`
}

func DefaultConfig() *Config {
	return &Config{
		Format:  report.Markdown.String(),
		Workers: parser.DefaultWorkers,
	}
}

// LoadConfig reads a YAML file over the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return cfg, nil
}

// run is a validated Config.
type run struct {
	params  parser.Params
	dialect report.Dialect
	output  string
	workers int
	verbose bool
	from    string
	to      string
}

func (c *Config) validate() (run, error) {
	if c.Path == "" {
		return run{}, ErrEmptyLogPath{}
	}

	dialect, err := report.ParseDialect(c.Format)
	if err != nil {
		return run{}, fmt.Errorf("parse format: %w", err)
	}

	from, err := parseTime(c.From, false)
	if err != nil {
		return run{}, fmt.Errorf("parse from date: %w", err)
	}

	to, err := parseTime(c.To, true)
	if err != nil {
		return run{}, fmt.Errorf("parse to date: %w", err)
	}

	if from != nil && to != nil && from.After(*to) {
		return run{}, ErrInvalidTimeRange{From: c.From, To: c.To}
	}

	return run{
		params: parser.Params{
			Path:        c.Path,
			From:        from,
			To:          to,
			FilterField: c.FilterField,
			FilterValue: c.FilterValue,
		},
		dialect: dialect,
		output:  c.Output,
		workers: c.Workers,
		verbose: c.Verbose,
		from:    c.From,
		to:      c.To,
	}, nil
}

// parseTime accepts RFC 3339 timestamps and bare dates. Empty means unset.
// A bare date is midnight UTC, or the last instant of that day when
// endOfDay is set, so an inclusive upper bound covers the whole day.
func parseTime(value string, endOfDay bool) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if tm, err := time.Parse(time.RFC3339, value); err == nil {
		return &tm, nil
	}

	tm, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%q is neither RFC 3339 nor %s", value, dateLayout)
	}

	if endOfDay {
		tm = tm.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}

	return &tm, nil
}
