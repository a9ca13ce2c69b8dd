package organizer

import (
	"os"
	"time"

	"github.com/sonemaro/fileorg/pkg/classifier"
)

// Status is the outcome of processing a single directory entry
type Status string

const (
	// StatusMoved means the file now lives in its destination folder
	StatusMoved Status = "moved"
	// StatusSkipped means the classification rule did not apply
	StatusSkipped Status = "skipped"
	// StatusFailed means classification or a filesystem operation failed
	StatusFailed Status = "failed"
)

// ReasonDirectory is the skip reason for entries that are directories
const ReasonDirectory = "directory"

// DefaultDirPerm is used when creating destination folders
const DefaultDirPerm os.FileMode = 0755

// Config contains organizer configuration options
type Config struct {
	// Classifier derives the destination key from a file name.
	// Defaults to classifier.New() (".txt" files only).
	Classifier classifier.Classifier

	// DirPerm is the permission used for new destination folders
	DirPerm os.FileMode
}

// EntryResult records what happened to one directory entry
type EntryResult struct {
	Name        string
	Key         string
	Status      Status
	Reason      string
	Destination string
	Size        int64
	Err         error
}

// Folder is one entry of the destination folder registry
type Folder struct {
	Key     string
	Path    string
	Created bool
	Files   []string
}

// Stats aggregates the per-entry outcomes of a run
type Stats struct {
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	Entries    int
	Moved      int
	Skipped    int
	Failed     int
	BytesMoved int64
}

// Summary is the result of one Organize run
type Summary struct {
	RunID   string
	Root    string
	Entries []EntryResult
	Folders []Folder
	Stats   Stats
}

// Organized reports whether at least one destination folder was used.
func (s *Summary) Organized() bool {
	return len(s.Folders) > 0
}

// Failures returns the entries that could not be organized.
func (s *Summary) Failures() []EntryResult {
	var failed []EntryResult
	for _, e := range s.Entries {
		if e.Status == StatusFailed {
			failed = append(failed, e)
		}
	}
	return failed
}

func (s *Summary) record(res EntryResult) {
	s.Entries = append(s.Entries, res)
	s.Stats.Entries++

	switch res.Status {
	case StatusMoved:
		s.Stats.Moved++
		s.Stats.BytesMoved += res.Size
	case StatusSkipped:
		s.Stats.Skipped++
	case StatusFailed:
		s.Stats.Failed++
	}
}
