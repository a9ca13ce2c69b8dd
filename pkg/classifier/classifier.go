/*
Package classifier derives a classification key from a file name.

The rule implemented by PrefixClassifier accepts names of the form
"<key>-<rest>.<ext>" where ext belongs to an allow-list (default: "txt"):

	c := classifier.New()
	key, err := c.Classify("python-tutorial.txt") // "python", nil
	_, err = c.Classify("notes.md")               // *SkipError
	_, err = c.Classify("badname.txt")            // *ClassificationError

Classification performs no I/O.
*/
package classifier

import (
	"sort"
	"strings"
)

// Delimiter separates the classification key from the rest of a file name.
const Delimiter = "-"

// DefaultExtension is the only extension accepted when none are configured.
const DefaultExtension = "txt"

// Classifier maps a file name to a classification key.
//
// Classify returns the key, a *SkipError when the rule does not apply to the
// name, or a *ClassificationError when the name is malformed.
type Classifier interface {
	Classify(name string) (string, error)
}

// PrefixClassifier classifies by the text before the first Delimiter.
type PrefixClassifier struct {
	extensions map[string]struct{}
}

// New creates a PrefixClassifier accepting the given extensions.
// Extensions are compared case-sensitively; a leading dot is ignored.
// With no usable extensions, DefaultExtension is used.
func New(extensions ...string) *PrefixClassifier {
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" {
			allowed[ext] = struct{}{}
		}
	}
	if len(allowed) == 0 {
		allowed[DefaultExtension] = struct{}{}
	}

	return &PrefixClassifier{extensions: allowed}
}

// Extensions returns the allowed extensions in sorted order.
func (c *PrefixClassifier) Extensions() []string {
	exts := make([]string, 0, len(c.extensions))
	for ext := range c.extensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Classify implements Classifier.
func (c *PrefixClassifier) Classify(name string) (string, error) {
	ext, ok := Extension(name)
	if !ok {
		return "", &SkipError{Name: name, Reason: ReasonNoExtension}
	}

	if _, allowed := c.extensions[ext]; !allowed {
		return "", &SkipError{Name: name, Reason: ReasonExtensionNotAllowed}
	}

	key, _, found := strings.Cut(name, Delimiter)
	switch {
	case !found:
		return "", &ClassificationError{Name: name, Reason: ReasonMissingDelimiter}
	case key == "":
		return "", &ClassificationError{Name: name, Reason: ReasonEmptyKey}
	case key == "." || key == "..":
		return "", &ClassificationError{Name: name, Reason: ReasonReservedKey}
	}

	return key, nil
}

// Extension returns the text after the last dot of name, without the dot.
// Leading dots of hidden files do not start an extension, and a trailing
// dot yields no extension.
func Extension(name string) (string, bool) {
	base := strings.TrimLeft(name, ".")
	i := strings.LastIndex(base, ".")
	if i < 0 || i == len(base)-1 {
		return "", false
	}
	return base[i+1:], true
}
