/*
Package organizer groups the files of a directory into sub-folders named after
their classification key.

A run validates the target directory, lists its direct entries once, classifies
every entry and moves each classified file into "<dir>/<key>/". Failures are
isolated per entry: they are recorded in the Summary and logged, and the batch
continues. Only an invalid target directory aborts a run.

Basic usage:

	org := organizer.New(organizer.Config{
		Classifier: classifier.New("txt"),
	}, afero.NewOsFs(), log)

	summary, err := org.Organize(ctx, "/path/to/files")
*/
package organizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sonemaro/fileorg/pkg/classifier"
	"github.com/sonemaro/fileorg/pkg/logger"
	"github.com/spf13/afero"
)

// Messages reported at the end of a run
const (
	MessageOrganized = "Files have been grouped into sub-folders based on first names successfully."
	MessageNothing   = "No files to group. The folder is empty of text files or all files are already organized."
)

// Organizer defines the interface for directory organizing operations
type Organizer interface {
	// Validate checks that path exists and is a directory
	Validate(path string) error

	// Organize moves every classifiable file of root into its key folder
	Organize(ctx context.Context, root string) (*Summary, error)
}

// organizer implements the Organizer interface
type organizer struct {
	config Config
	fs     afero.Fs
	log    logger.Logger
}

// New creates an Organizer working on fs.
func New(config Config, fs afero.Fs, log logger.Logger) Organizer {
	if config.Classifier == nil {
		config.Classifier = classifier.New()
	}
	if config.DirPerm == 0 {
		config.DirPerm = DefaultDirPerm
	}
	if log == nil {
		log = logger.Nop()
	}

	return &organizer{
		config: config,
		fs:     fs,
		log:    log,
	}
}

// Validate checks that path exists and is a directory
func (o *organizer) Validate(path string) error {
	o.log.WithFields(logger.Fields{
		"path": path,
	}).Debug("Validating path")

	info, err := o.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			o.log.WithFields(logger.Fields{
				"path": path,
			}).Error("The specified folder path does not exist")
			return &InvalidDirectoryError{Path: path, Reason: ReasonNotExist, Err: err}
		}

		o.log.WithFields(logger.Fields{
			"path":  path,
			"error": err.Error(),
		}).Error("The specified folder path is not accessible")
		return &InvalidDirectoryError{Path: path, Reason: ReasonInaccessible, Err: err}
	}

	if !info.IsDir() {
		o.log.WithFields(logger.Fields{
			"path": path,
		}).Error("The specified folder path is not a directory")
		return &InvalidDirectoryError{Path: path, Reason: ReasonNotDirectory}
	}

	return nil
}

// Organize performs a single pass over the direct entries of root
func (o *organizer) Organize(ctx context.Context, root string) (*Summary, error) {
	root = filepath.Clean(root)
	summary := &Summary{
		RunID: uuid.NewString(),
		Root:  root,
		Stats: Stats{StartTime: time.Now()},
	}
	log := o.log.WithFields(logger.Fields{"run_id": summary.RunID})

	if err := o.Validate(root); err != nil {
		summary.finish()
		return summary, err
	}

	log.WithFields(logger.Fields{
		"path": root,
	}).Info("Organizing directory")

	entries, err := afero.ReadDir(o.fs, root)
	if err != nil {
		log.WithFields(logger.Fields{
			"error": err.Error(),
			"path":  root,
		}).Error("Failed to read directory")
		summary.finish()
		return summary, fmt.Errorf("failed to read directory: %w", err)
	}

	registry := make(map[string]int)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			log.WithFields(logger.Fields{
				"reason":    err.Error(),
				"processed": summary.Stats.Entries,
			}).Warn("Organizing cancelled")
			summary.finish()
			return summary, err
		}

		res := o.organizeEntry(log, root, entry, summary, registry)
		summary.record(res)
	}

	summary.finish()

	stats := log.WithFields(logger.Fields{
		"moved":    summary.Stats.Moved,
		"skipped":  summary.Stats.Skipped,
		"failed":   summary.Stats.Failed,
		"folders":  len(summary.Folders),
		"duration": summary.Stats.Duration.String(),
	})
	if summary.Organized() {
		stats.Info(MessageOrganized)
	} else {
		stats.Info(MessageNothing)
	}

	return summary, nil
}

// organizeEntry classifies and moves one entry. Every failure is turned into
// a StatusFailed result so the caller can carry on with the next entry.
func (o *organizer) organizeEntry(log logger.Logger, root string, entry os.FileInfo, summary *Summary, registry map[string]int) EntryResult {
	name := entry.Name()
	res := EntryResult{Name: name, Size: entry.Size()}

	if entry.IsDir() {
		res.Status = StatusSkipped
		res.Reason = ReasonDirectory
		log.WithFields(logger.Fields{
			"file":   name,
			"reason": res.Reason,
		}).Debug("Skipping entry")
		return res
	}

	key, err := o.config.Classifier.Classify(name)
	if err != nil {
		var skip *classifier.SkipError
		if errors.As(err, &skip) {
			res.Status = StatusSkipped
			res.Reason = skip.Reason
			log.WithFields(logger.Fields{
				"file":   name,
				"reason": res.Reason,
			}).Debug("Skipping entry")
			return res
		}
		return o.fail(log, res, err)
	}
	res.Key = key

	idx, known := registry[key]
	if !known {
		folder, err := o.ensureFolder(log, root, key)
		if err != nil {
			return o.fail(log, res, err)
		}
		summary.Folders = append(summary.Folders, folder)
		idx = len(summary.Folders) - 1
		registry[key] = idx
	} else {
		log.WithFields(logger.Fields{
			"key": key,
		}).Trace("Destination folder already registered")
	}

	folder := &summary.Folders[idx]
	src := filepath.Join(root, name)
	dst := filepath.Join(folder.Path, name)

	if err := o.fs.Rename(src, dst); err != nil {
		return o.fail(log, res, &FileError{Name: name, Op: "move", Err: err})
	}

	folder.Files = append(folder.Files, name)
	res.Status = StatusMoved
	res.Destination = dst

	log.WithFields(logger.Fields{
		"file":        name,
		"key":         key,
		"destination": dst,
	}).Info("File moved")

	return res
}

// ensureFolder creates root/key unless it already exists as a directory
func (o *organizer) ensureFolder(log logger.Logger, root, key string) (Folder, error) {
	path := filepath.Join(root, key)
	folder := Folder{Key: key, Path: path}

	info, err := o.fs.Stat(path)
	switch {
	case err == nil && info.IsDir():
		log.WithFields(logger.Fields{
			"key":  key,
			"path": path,
		}).Debug("Using existing destination folder")
		return folder, nil
	case err == nil:
		return folder, &FileError{Name: key, Op: "mkdir", Err: fmt.Errorf("%s exists and is not a directory", path)}
	case !os.IsNotExist(err):
		return folder, &FileError{Name: key, Op: "mkdir", Err: err}
	}

	if err := o.fs.MkdirAll(path, o.config.DirPerm); err != nil {
		return folder, &FileError{Name: key, Op: "mkdir", Err: err}
	}

	folder.Created = true
	log.WithFields(logger.Fields{
		"key":  key,
		"path": path,
	}).Debug("Created destination folder")

	return folder, nil
}

func (o *organizer) fail(log logger.Logger, res EntryResult, err error) EntryResult {
	res.Status = StatusFailed
	res.Err = err
	res.Reason = failureReason(err)

	log.WithFields(logger.Fields{
		"file":   res.Name,
		"reason": res.Reason,
		"error":  err.Error(),
	}).Error("Failed to organize file")

	return res
}

func failureReason(err error) string {
	switch e := err.(type) {
	case *classifier.ClassificationError:
		return e.Reason
	case *FileError:
		return e.Op + " failed"
	default:
		return "error"
	}
}

func (s *Summary) finish() {
	s.Stats.EndTime = time.Now()
	s.Stats.Duration = s.Stats.EndTime.Sub(s.Stats.StartTime)
}
