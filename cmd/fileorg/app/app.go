/*
Package app provides the main application container for fileorg. It wires the
classifier, organizer and output formatter together and runs one organize pass.

Usage:

	application := app.New(&cfg, afero.NewOsFs(), log, os.Stdout)
	summary, err := application.Run(ctx, "files")
*/
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/sonemaro/fileorg/internal/config"
	"github.com/sonemaro/fileorg/pkg/classifier"
	"github.com/sonemaro/fileorg/pkg/logger"
	"github.com/sonemaro/fileorg/pkg/organizer"
	"github.com/sonemaro/fileorg/pkg/output"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

// App represents the main application container
type App struct {
	config *config.Config
	fs     afero.Fs
	log    logger.Logger
	out    io.Writer

	organizer organizer.Organizer
	formatter output.Formatter
}

// New creates a new application instance
func New(cfg *config.Config, fs afero.Fs, log logger.Logger, out io.Writer) *App {
	if log == nil {
		log = logger.Nop()
	}
	if out == nil {
		out = os.Stdout
	}

	a := &App{
		config: cfg,
		fs:     fs,
		log:    log,
		out:    out,
	}

	a.initComponents()

	a.log.WithFields(logger.Fields{
		"extensions": cfg.Extensions,
		"output":     cfg.Output,
		"verbose":    cfg.Verbose,
	}).Debug("Application initialized")

	return a
}

// Run organizes path and writes the formatted summary to the output writer.
// The summary is returned even when the run fails part way.
func (a *App) Run(ctx context.Context, path string) (summary *organizer.Summary, err error) {
	defer func() {
		if r := recover(); r != nil {
			a.log.WithFields(logger.Fields{
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("Recovered from panic")
			err = fmt.Errorf("organize panicked: %v", r)
		}
	}()

	if abs, absErr := filepath.Abs(path); absErr == nil {
		path = abs
	}

	a.log.WithFields(logger.Fields{
		"path":   path,
		"format": a.config.Output,
	}).Debug("Starting organize operation")

	summary, err = a.organizer.Organize(ctx, path)
	if err != nil && (summary == nil || summary.Stats.Entries == 0) {
		return summary, err
	}

	formatted, fmtErr := a.formatter.Format(summary)
	if fmtErr != nil {
		return summary, fmt.Errorf("output formatting failed: %w", fmtErr)
	}

	if writeErr := a.writeOutput(formatted); writeErr != nil {
		return summary, fmt.Errorf("failed to write output: %w", writeErr)
	}

	return summary, err
}

// initComponents initializes all application components
func (a *App) initComponents() {
	a.log.Debug("Initializing application components")

	a.organizer = organizer.New(organizer.Config{
		Classifier: classifier.New(a.config.Extensions...),
	}, a.fs, a.log)

	a.formatter = output.NewFormatter(output.Config{
		Format:     output.Format(a.config.Output),
		WithStats:  a.config.Verbose > 0,
		WithColors: !a.config.NoColor && a.isTerminal(),
	}, a.log)

	a.log.Debug("Components initialized successfully")
}

// writeOutput writes the formatted summary to the output writer
func (a *App) writeOutput(content string) error {
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if _, err := io.WriteString(a.out, content); err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to write output")
		return err
	}
	return nil
}

// isTerminal checks if the output is going to a terminal
func (a *App) isTerminal() bool {
	f, ok := a.out.(*os.File)
	if ok && term.IsTerminal(int(f.Fd())) {
		a.log.Debug("Output is going to a terminal")
		return true
	}
	a.log.Debug("Output is not going to a terminal")
	return false
}
