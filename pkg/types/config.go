package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidOS is returned for an --only-os value ParseOS does not accept.
	ErrInvalidOS = errors.New("invalid OS scope")
)

// Color modes accepted by Config.Color.
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// Config represents the settings of a single showrepo invocation.
// Values are merged from command line flags, SHOWREPO_* environment
// variables and an optional config file, in that order of precedence.
type Config struct {
	// Filename is the repositories file to read
	Filename string `mapstructure:"filename"`

	// Search is matched against repository names and descriptions
	Search string `mapstructure:"search"`

	// OnlyLanguage keeps repositories whose language equals this value,
	// ignoring case
	OnlyLanguage string `mapstructure:"only_language"`

	// OnlyOS keeps repositories with this scope; see ParseOS for accepted forms
	OnlyOS string `mapstructure:"only_os"`

	// Copy sends the resulting URLs to the system clipboard
	Copy bool `mapstructure:"copy"`

	// Output is an optional path where the uncolored table is saved
	Output string `mapstructure:"output"`

	// First keeps only the first N rows (0 disables)
	First int `mapstructure:"first"`

	// Last keeps only the last N rows (0 disables)
	Last int `mapstructure:"last"`

	// TableFormat selects the table layout, e.g. "grid" or "github"
	TableFormat string `mapstructure:"table_format"`

	// NoAuthor drops the "author/" prefix from repository names
	NoAuthor bool `mapstructure:"no_author"`

	SortByAuthor   bool `mapstructure:"sort_by_author"`
	SortByRepo     bool `mapstructure:"sort_by_repo"`
	SortByLanguage bool `mapstructure:"sort_by_language"`

	// ShowStats prints counts and the OS distribution of the result
	ShowStats bool `mapstructure:"show_stats"`

	// NoColor disables ANSI colors everywhere; it overrides Color
	NoColor bool `mapstructure:"no_color"`

	// Color is one of "always", "auto" or "never"
	Color string `mapstructure:"color"`

	// LogLevel is the minimum diagnostic log level: debug, info, warn, error
	LogLevel string `mapstructure:"log_level"`

	// LogFormat is the diagnostic log format: text or json
	LogFormat string `mapstructure:"log_format"`
}

// Validate checks flag values that can be rejected before any file is read.
// All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Filename == "" {
		errs = append(errs, errors.New("filename must not be empty"))
	}
	if c.First < 0 {
		errs = append(errs, fmt.Errorf("--first (%d) must not be negative", c.First))
	}
	if c.Last < 0 {
		errs = append(errs, fmt.Errorf("--last (%d) must not be negative", c.Last))
	}
	if c.OnlyOS != "" {
		if _, ok := ParseOS(c.OnlyOS); !ok {
			errs = append(errs, InvalidOSError(c.OnlyOS))
		}
	}
	switch strings.ToLower(c.Color) {
	case "", ColorAlways, ColorAuto, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("--color (%q) must be one of: always, auto, never", c.Color))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// InvalidOSError describes a rejected --only-os value and wraps ErrInvalidOS.
func InvalidOSError(value string) error {
	return fmt.Errorf("%w: '%s' is not a valid value for '--only-os' flag. Valid values: Any, Linux, Windows (or A, L, W)", ErrInvalidOS, value)
}
