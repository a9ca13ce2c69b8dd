package config

// OutputFormat represents the supported summary formats
type OutputFormat string

const (
	// OutputFormatText prints one line per organized or failed file
	OutputFormatText OutputFormat = "text"

	// OutputFormatTree prints the destination folders as a tree
	OutputFormatTree OutputFormat = "tree"

	// OutputFormatJSON represents the JSON output format
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatYAML represents the YAML output format
	OutputFormatYAML OutputFormat = "yaml"

	// OutputFormatTable prints every entry in a table
	OutputFormatTable OutputFormat = "table"
)

// LogFormat represents the supported console log encodings
type LogFormat string

const (
	// LogFormatConsole renders "time [LEVEL]: message" lines
	LogFormatConsole LogFormat = "console"

	// LogFormatJSON renders one JSON object per record
	LogFormatJSON LogFormat = "json"
)

// Constants for configuration defaults
const (
	// DefaultFolder is organized when no path argument is given
	DefaultFolder = "files"

	// DefaultLogFile is the hidden log file written when logging is enabled
	DefaultLogFile = ".file_organizer_log.log"

	// DefaultExtension is the only extension organized by default
	DefaultExtension = "txt"

	// EnvPrefix prefixes every environment variable read by Load
	EnvPrefix = "FILEORG"
)
