package organizer

import (
	"errors"
	"fmt"
)

// ErrInvalidDirectory matches every *InvalidDirectoryError via errors.Is.
var ErrInvalidDirectory = errors.New("invalid directory")

// Reasons reported by InvalidDirectoryError
const (
	ReasonNotExist     = "path does not exist"
	ReasonNotDirectory = "path is not a directory"
	ReasonInaccessible = "path is not accessible"
)

// InvalidDirectoryError represents a target path that cannot be organized
type InvalidDirectoryError struct {
	Path   string
	Reason string
	Err    error
}

func (e *InvalidDirectoryError) Error() string {
	if e.Err != nil && e.Reason == ReasonInaccessible {
		return fmt.Sprintf("%s: %s: %v", e.Reason, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Path)
}

func (e *InvalidDirectoryError) Unwrap() error {
	return e.Err
}

func (e *InvalidDirectoryError) Is(target error) bool {
	return target == ErrInvalidDirectory
}

// FileError represents a failed filesystem operation on a single entry
type FileError struct {
	Name string
	Op   string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
