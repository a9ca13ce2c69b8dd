/*
Package commands implements the CLI command structure for fileorg.
It provides the root command, which organizes a folder, and the version
subcommand, with flag handling layered on top of the environment configuration.
*/
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sonemaro/fileorg/cmd/fileorg/app"
	"github.com/sonemaro/fileorg/internal/config"
	"github.com/sonemaro/fileorg/internal/version"
	"github.com/sonemaro/fileorg/pkg/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Options holds command-line options that apply to all commands
type Options struct {
	Logging     bool
	Output      string
	Extensions  []string
	NoColor     bool
	Verbose     int
	LogFormat   string
	ShowVersion bool

	// Fs is the filesystem the command works on. Defaults to the OS filesystem.
	Fs afero.Fs
}

// NewRootCommand creates the root command for the application
func NewRootCommand() *cobra.Command {
	return newRootCommand(&Options{Fs: afero.NewOsFs()})
}

func newRootCommand(opts *Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fileorg [folder_path]",
		Short: "Group text files into sub-folders by name prefix",
		Long: `fileorg v` + version.Version + `
========================================

Moves every "<key>-<rest>.txt" file of folder_path into "folder_path/<key>/".
Files without the delimiter are reported and left in place. folder_path
defaults to "` + config.DefaultFolder + `".`,
		Example: `  fileorg
  fileorg ~/notes -l
  fileorg ~/notes -o tree -vv
  FILEORG_EXTENSIONS=txt,md fileorg ~/notes`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.ShowVersion {
				fmt.Fprintln(cmd.OutOrStdout(), version.Version)
				return nil
			}

			path := config.DefaultFolder
			if len(args) == 1 {
				path = args[0]
			}
			return runOrganize(cmd, opts, path)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&opts.Verbose, "verbose", "v", "verbose output (can be used multiple times)")
	rootCmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", string(config.LogFormatConsole),
		"console log encoding: console|json")

	rootCmd.Flags().BoolVarP(&opts.Logging, "logging", "l", false,
		"append log records to "+config.DefaultLogFile)
	rootCmd.Flags().StringVarP(&opts.Output, "output", "o", string(config.OutputFormatText),
		"summary format: text|tree|json|yaml|table")
	rootCmd.Flags().StringSliceVarP(&opts.Extensions, "ext", "e", nil,
		"extensions to organize (default txt)")
	rootCmd.Flags().BoolVar(&opts.ShowVersion, "version", false, "print version information")

	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// loadConfig reads the environment configuration and lets explicit flags win
func loadConfig(cmd *cobra.Command, opts *Options) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("logging") {
		cfg.Logging = opts.Logging
	}
	if flags.Changed("output") {
		cfg.Output = opts.Output
	}
	if flags.Changed("ext") {
		cfg.Extensions = config.SplitList(strings.Join(opts.Extensions, ","))
	}
	if flags.Changed("no-color") {
		cfg.NoColor = opts.NoColor
	}
	if flags.Changed("verbose") {
		cfg.Verbose = opts.Verbose
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.LogFormat
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func runOrganize(cmd *cobra.Command, opts *Options, path string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	var logFile io.Writer
	if cfg.Logging {
		f, err := opts.Fs.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logFile = f
	}

	log := logger.NewLogger(logger.Config{
		Verbosity: cfg.Verbose,
		Output:    cmd.ErrOrStderr(),
		Encoding:  logger.Encoding(cfg.LogFormat),
		File:      logFile,
	})

	log.WithFields(logger.Fields{
		"command": cmd.Name(),
		"config":  cfg.String(),
	}).Debug("Initializing command")

	if cfg.NoColor {
		color.NoColor = true
	}

	application := app.New(&cfg, opts.Fs, log, cmd.OutOrStdout())
	_, err = application.Run(cmd.Context(), path)
	return err
}
