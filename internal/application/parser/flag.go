package parser

import (
	"github.com/spf13/cobra"
)

type cmdFlags struct {
	config string
	cfg    Config
}

func bindFlags(cmd *cobra.Command, f *cmdFlags) {
	flags := cmd.Flags()

	flags.StringVarP(&f.config, "config", "c", "", "YAML config file")
	flags.StringVarP(&f.cfg.Path, "path", "p", "", "path, glob, directory or URL of log files")
	flags.StringVarP(&f.cfg.From, "from", "f", "", "filter by time from (RFC 3339, or YYYY-MM-DD for the start of that day)")
	flags.StringVarP(&f.cfg.To, "to", "t", "", "filter by time to (RFC 3339, or YYYY-MM-DD for the end of that day)")
	flags.StringVar(&f.cfg.Format, "format", "markdown", "output format (markdown|adoc)")
	flags.StringVar(&f.cfg.Format, "fmt", "markdown", "output format (markdown|adoc)")
	flags.StringVarP(&f.cfg.Output, "output", "o", "", "file for output, stdout when empty")
	flags.StringVar(&f.cfg.FilterField, "filter-field", "", "field to filter on (agent|method|resource|status|ip|user)")
	flags.StringVar(&f.cfg.FilterValue, "filter-value", "", "pattern for the filter field, '*' matches any sequence")
	flags.IntVar(&f.cfg.Workers, "workers", 0, "number of sources read in parallel")
	flags.BoolVarP(&f.cfg.Verbose, "verbose", "v", false, "debug logging")
}

// resolve layers explicitly set flags over the config file over defaults.
func (f *cmdFlags) resolve(cmd *cobra.Command) (*Config, error) {
	cfg := DefaultConfig()

	if f.config != "" {
		loaded, err := LoadConfig(f.config)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	flags := cmd.Flags()

	overrides := []struct {
		name  string
		apply func()
	}{
		{"path", func() { cfg.Path = f.cfg.Path }},
		{"from", func() { cfg.From = f.cfg.From }},
		{"to", func() { cfg.To = f.cfg.To }},
		{"format", func() { cfg.Format = f.cfg.Format }},
		{"fmt", func() { cfg.Format = f.cfg.Format }},
		{"output", func() { cfg.Output = f.cfg.Output }},
		{"filter-field", func() { cfg.FilterField = f.cfg.FilterField }},
		{"filter-value", func() { cfg.FilterValue = f.cfg.FilterValue }},
		{"workers", func() { cfg.Workers = f.cfg.Workers }},
		{"verbose", func() { cfg.Verbose = f.cfg.Verbose }},
	}

	for _, o := range overrides {
		if flags.Changed(o.name) {
			o.apply()
		}
	}

	return cfg, nil
}
