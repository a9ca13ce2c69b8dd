package classifier

import (
	"errors"
	"fmt"
)

// Skip reasons reported by SkipError
const (
	ReasonNoExtension         = "no extension"
	ReasonExtensionNotAllowed = "extension not allowed"
)

// Classification failure reasons reported by ClassificationError
const (
	ReasonMissingDelimiter = "missing delimiter"
	ReasonEmptyKey         = "empty key"
	ReasonReservedKey      = "reserved key"
)

// SkipError reports a name the classification rule does not apply to.
// It is not a failure: the file is left in place.
type SkipError struct {
	Name   string
	Reason string
}

func (e *SkipError) Error() string {
	return fmt.Sprintf("skipped %s: %s", e.Name, e.Reason)
}

// ClassificationError reports a name that carries an allowed extension
// but no usable classification key.
type ClassificationError struct {
	Name   string
	Reason string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("cannot classify %s: %s", e.Name, e.Reason)
}

// IsSkip reports whether err is, or wraps, a SkipError.
func IsSkip(err error) bool {
	var skip *SkipError
	return errors.As(err, &skip)
}

// IsClassification reports whether err is, or wraps, a ClassificationError.
func IsClassification(err error) bool {
	var cerr *ClassificationError
	return errors.As(err, &cerr)
}
