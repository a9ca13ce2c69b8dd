/*
Package output provides formatters for organize summaries in various formats
including plain text, tree view, JSON, YAML and tables. It supports colored
output and statistics inclusion.

Basic usage:

	formatter := output.NewFormatter(output.Config{
		Format:     output.FormatTree,
		WithStats:  true,
		WithColors: true,
	}, log)

	result, err := formatter.Format(summary)
*/
package output

import (
	"errors"
	"fmt"

	"github.com/sonemaro/fileorg/pkg/logger"
	"github.com/sonemaro/fileorg/pkg/organizer"
)

// Format represents the output format type
type Format string

const (
	FormatText  Format = "text"
	FormatTree  Format = "tree"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatTable Format = "table"
)

// Config holds formatter configuration
type Config struct {
	Format     Format
	WithStats  bool
	WithColors bool
}

// Formatter defines the interface for output formatting
type Formatter interface {
	Format(*organizer.Summary) (string, error)
}

// formatter implements the Formatter interface
type formatter struct {
	config Config
	log    logger.Logger
}

// NewFormatter creates a new formatter instance
func NewFormatter(config Config, log logger.Logger) Formatter {
	if log == nil {
		log = logger.Nop()
	}
	return &formatter{
		config: config,
		log:    log,
	}
}

// Format renders the summary according to the configured format
func (f *formatter) Format(summary *organizer.Summary) (string, error) {
	if summary == nil {
		msg := "nil summary provided for formatting"
		f.log.Error(msg)
		return "", errors.New(msg)
	}

	f.log.WithFields(logger.Fields{
		"format":     f.config.Format,
		"withStats":  f.config.WithStats,
		"withColors": f.config.WithColors,
	}).Debug("Starting format operation")

	switch f.config.Format {
	case FormatText, "":
		return f.formatText(summary)
	case FormatTree:
		return f.formatTree(summary)
	case FormatJSON:
		return f.formatJSON(summary)
	case FormatYAML:
		return f.formatYAML(summary)
	case FormatTable:
		return f.formatTable(summary)
	default:
		msg := fmt.Sprintf("unsupported format: %s", f.config.Format)
		f.log.Error(msg)
		return "", errors.New(msg)
	}
}

// resultMessage is the closing line of every human readable format
func resultMessage(summary *organizer.Summary) string {
	if summary.Organized() {
		return organizer.MessageOrganized
	}
	return organizer.MessageNothing
}
