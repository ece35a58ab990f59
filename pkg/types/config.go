package types

import (
	"errors"
	"fmt"
	"time"
)

// MaxRowsLimit is the largest page the works-listing endpoint accepts.
const MaxRowsLimit = 1000

// Configuration validation errors.
var (
	ErrMissingISSN    = errors.New("issn is required")
	ErrInvalidWindow  = errors.New("from date must not be after until date")
	ErrMissingDates   = errors.New("both from and until dates are required")
	ErrInvalidMaxRows = errors.New("max rows must be between 1 and 1000")
	ErrMissingOutput  = errors.New("output path is required")
	ErrInvalidFormat  = errors.New("format must be one of: xlsx, csv, json, yaml, sqlite")
	ErrInvalidRate    = errors.New("rate limit must not be negative")
)

// HTTPConfig holds shared HTTP settings used by the metadata client.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "affilscan/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// OutputFormat selects the report serialization.
type OutputFormat string

const (
	FormatXLSX   OutputFormat = "xlsx"
	FormatCSV    OutputFormat = "csv"
	FormatJSON   OutputFormat = "json"
	FormatYAML   OutputFormat = "yaml"
	FormatSQLite OutputFormat = "sqlite"
)

// Valid reports whether f names a supported format.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatXLSX, FormatCSV, FormatJSON, FormatYAML, FormatSQLite:
		return true
	}
	return false
}

// ScanConfig holds everything a single scan run needs.
type ScanConfig struct {
	HTTPConfig `yaml:",inline"`

	Window QueryWindow `json:"window" yaml:"window"`

	// OutputPath is where the report is written.
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Format selects the report format. Empty means infer from OutputPath.
	Format OutputFormat `json:"format,omitempty" yaml:"format,omitempty"`

	// Mailto is sent with every request to join the Crossref polite pool.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty"`

	// ReferenceFile replaces the built-in reference lists when set.
	ReferenceFile string `json:"reference_file,omitempty" yaml:"reference_file,omitempty"`

	// RateLimit is the maximum number of requests per second. Zero
	// disables limiting.
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit"`
}

// Validate checks the configuration and returns the first problem found.
func (c ScanConfig) Validate() error {
	if c.Window.ISSN == "" {
		return ErrMissingISSN
	}
	if c.Window.FromDate.IsZero() || c.Window.UntilDate.IsZero() {
		return ErrMissingDates
	}
	if c.Window.FromDate.After(c.Window.UntilDate) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidWindow,
			c.Window.FromDate.Format("2006-01-02"), c.Window.UntilDate.Format("2006-01-02"))
	}
	if c.Window.MaxRows < 1 || c.Window.MaxRows > MaxRowsLimit {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxRows, c.Window.MaxRows)
	}
	if c.OutputPath == "" {
		return ErrMissingOutput
	}
	if c.Format != "" && !c.Format.Valid() {
		return fmt.Errorf("%w: got %q", ErrInvalidFormat, c.Format)
	}
	if c.RateLimit < 0 {
		return ErrInvalidRate
	}
	return nil
}
