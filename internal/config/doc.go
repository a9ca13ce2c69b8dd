// Package config provides configuration management for the fileorg application.
// It handles environment variables, command-line flag overrides, and validation
// of all configuration parameters.
//
// # Configuration Loading
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
//	FILEORG_LOGGING     Append records to the hidden log file (true/false)
//	FILEORG_LOG_FILE    Log file path (default: .file_organizer_log.log)
//	FILEORG_EXTENSIONS  Comma-separated extensions to organize (default: txt)
//	FILEORG_OUTPUT      Summary format: text|tree|json|yaml|table
//	FILEORG_NO_COLOR    Disable colored output (true/false)
//	FILEORG_VERBOSE     Verbosity level (a number or a string of 'v's)
//	FILEORG_LOG_FORMAT  Console log encoding: console|json (default: console)
//
// Command-line flags take precedence over environment variables.
//
// # Configuration Validation
//
//   - Output format must be one of: text, tree, json, yaml, table
//   - At least one extension; extensions may not contain dots or separators
//   - A log file path is required when logging is enabled
//   - Log format must be one of: console, json
//   - Verbosity must be non-negative
//
// The configuration is immutable after loading and is safe for concurrent access.
package config
