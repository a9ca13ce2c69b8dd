/*
Package logger provides a structured logging solution for the fileorg application.
It wraps uber-go/zap logger to provide a simpler interface with support for
different verbosity levels, structured fields and an optional file sink.

Basic Usage:

	log := logger.NewLogger(logger.Config{
	    Verbosity: 1,
	})

	log.Info("Organizing directory")     // Shown with verbosity >= 1
	log.Debug("Classifying entry")       // Shown with verbosity >= 2
	log.Trace("Registry lookup")         // Shown with verbosity >= 3

Verbosity Levels:

	0: Warn, Error (default)
	1: Info + Level 0
	2: Debug + Level 1
	3: Trace + Level 2

Structured Logging:

	log.WithFields(logger.Fields{
	    "file": "python-intro.txt",
	    "key":  "python",
	}).Info("File moved")

File Sink:

When Config.File is set, every record at info level or above is also written
there as a plain line, independent of the console verbosity:

	2024-01-20 15:04:05 [INFO]: File moved {"file": "python-intro.txt", "key": "python"}

The caller owns the file and is responsible for closing it.

Thread Safety:

The logger is safe for concurrent use by multiple goroutines.
*/
package logger
