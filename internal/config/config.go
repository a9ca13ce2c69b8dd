package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application
type Config struct {
	// Logging enables the hidden log file
	Logging bool

	// LogFile is the path of the log file written when Logging is set
	LogFile string

	// Extensions lists the file extensions that are organized
	Extensions []string

	// Output specifies the summary format (text, tree, json, yaml or table)
	Output string

	// NoColor disables colored output
	NoColor bool

	// Verbose sets the verbosity level
	Verbose int

	// LogFormat selects the console log encoding (console or json)
	LogFormat string
}

// validOutputFormats contains the list of supported output formats
var validOutputFormats = map[string]bool{
	string(OutputFormatText):  true,
	string(OutputFormatTree):  true,
	string(OutputFormatJSON):  true,
	string(OutputFormatYAML):  true,
	string(OutputFormatTable): true,
}

// validLogFormats contains the list of supported console log encodings
var validLogFormats = map[string]bool{
	string(LogFormatConsole): true,
	string(LogFormatJSON):    true,
}

// Load reads configuration from environment variables and validates it
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("logging", false)
	v.SetDefault("log_file", DefaultLogFile)
	v.SetDefault("extensions", DefaultExtension)
	v.SetDefault("output", string(OutputFormatText))
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", 0)
	v.SetDefault("log_format", string(LogFormatConsole))

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.BindEnv("logging")
	v.BindEnv("log_file")
	v.BindEnv("extensions")
	v.BindEnv("output")
	v.BindEnv("no_color")
	v.BindEnv("verbose")
	v.BindEnv("log_format")

	// Process verbosity level from string of 'v's
	if verboseStr := v.GetString("verbose"); verboseStr != "" && strings.Trim(verboseStr, "v") == "" {
		v.Set("verbose", strings.Count(verboseStr, "v"))
	}

	cfg := Config{
		Logging:    v.GetBool("logging"),
		LogFile:    v.GetString("log_file"),
		Extensions: SplitList(v.GetString("extensions")),
		Output:     v.GetString("output"),
		NoColor:    v.GetBool("no_color"),
		Verbose:    v.GetInt("verbose"),
		LogFormat:  v.GetString("log_format"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// SplitList splits a comma separated list, trimming blanks and leading dots
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimPrefix(strings.TrimSpace(p), "."); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if !validOutputFormats[c.Output] {
		return fmt.Errorf("invalid output format: must be one of [text tree json yaml table]")
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("at least one extension is required")
	}
	for _, ext := range c.Extensions {
		if strings.ContainsAny(ext, `./\`) || strings.TrimSpace(ext) != ext || ext == "" {
			return fmt.Errorf("invalid extension %q", ext)
		}
	}

	if c.Logging {
		if c.LogFile == "" {
			return fmt.Errorf("log file must be set when logging is enabled")
		}
		if filepath.Base(c.LogFile) == "." || strings.HasSuffix(c.LogFile, string(filepath.Separator)) {
			return fmt.Errorf("log file must name a file: %s", c.LogFile)
		}
	}

	if !validLogFormats[c.LogFormat] {
		return fmt.Errorf("invalid log format: must be one of [console json]")
	}

	if c.Verbose < 0 {
		return fmt.Errorf("verbosity must be non-negative")
	}

	return nil
}

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{Logging: %v, LogFile: %s, Extensions: %v, Output: %s, NoColor: %v, Verbose: %d, LogFormat: %s}",
		c.Logging, c.LogFile, c.Extensions, c.Output, c.NoColor, c.Verbose, c.LogFormat,
	)
}
