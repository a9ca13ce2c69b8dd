package classifier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		extensions []string
		file       string
		wantKey    string
		wantSkip   string
		wantErr    string
	}{
		{
			name:    "simple key",
			file:    "python-tutorial.txt",
			wantKey: "python",
		},
		{
			name:    "splits on first dash only",
			file:    "python-advanced-topics.txt",
			wantKey: "python",
		},
		{
			name:    "dots inside key",
			file:    "c.sharp-intro.txt",
			wantKey: "c.sharp",
		},
		{
			name:     "no extension",
			file:     "readme",
			wantSkip: ReasonNoExtension,
		},
		{
			name:     "trailing dot is not an extension",
			file:     "go-notes.",
			wantSkip: ReasonNoExtension,
		},
		{
			name:     "hidden file without extension",
			file:     ".txt",
			wantSkip: ReasonNoExtension,
		},
		{
			name:     "extension not allowed",
			file:     "notes.md",
			wantSkip: ReasonExtensionNotAllowed,
		},
		{
			name:     "extension comparison is case-sensitive",
			file:     "go-intro.TXT",
			wantSkip: ReasonExtensionNotAllowed,
		},
		{
			name:     "hidden log file",
			file:     ".file_organizer_log.log",
			wantSkip: ReasonExtensionNotAllowed,
		},
		{
			name:    "missing delimiter",
			file:    "badname.txt",
			wantErr: ReasonMissingDelimiter,
		},
		{
			name:    "empty key",
			file:    "-notes.txt",
			wantErr: ReasonEmptyKey,
		},
		{
			name:    "parent directory key",
			file:    "..-escape.txt",
			wantErr: ReasonReservedKey,
		},
		{
			name:       "custom extensions",
			extensions: []string{".md", "txt"},
			file:       "rust-book.md",
			wantKey:    "rust",
		},
		{
			name:       "custom extensions replace the default",
			extensions: []string{"md"},
			file:       "rust-book.txt",
			wantSkip:   ReasonExtensionNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.extensions...)
			key, err := c.Classify(tt.file)

			switch {
			case tt.wantSkip != "":
				var skip *SkipError
				require.True(t, errors.As(err, &skip), "expected SkipError, got %v", err)
				assert.Equal(t, tt.wantSkip, skip.Reason)
				assert.Equal(t, tt.file, skip.Name)
				assert.True(t, IsSkip(err))
				assert.False(t, IsClassification(err))
				assert.Empty(t, key)
			case tt.wantErr != "":
				var cerr *ClassificationError
				require.True(t, errors.As(err, &cerr), "expected ClassificationError, got %v", err)
				assert.Equal(t, tt.wantErr, cerr.Reason)
				assert.True(t, IsClassification(err))
				assert.False(t, IsSkip(err))
				assert.Contains(t, err.Error(), tt.file)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.wantKey, key)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	assert.Equal(t, []string{DefaultExtension}, New().Extensions())
	assert.Equal(t, []string{DefaultExtension}, New("", " ", ".").Extensions())
	assert.Equal(t, []string{"md", "txt"}, New("txt", ".md", "md").Extensions())
}

func TestExtension(t *testing.T) {
	tests := []struct {
		name   string
		ext    string
		hasExt bool
	}{
		{"a.txt", "txt", true},
		{"archive.tar.gz", "gz", true},
		{"readme", "", false},
		{".bashrc", "", false},
		{".hidden.txt", "txt", true},
		{"dot.", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, ok := Extension(tt.name)
			assert.Equal(t, tt.hasExt, ok)
			assert.Equal(t, tt.ext, ext)
		})
	}
}
