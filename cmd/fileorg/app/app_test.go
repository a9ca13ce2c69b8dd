package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/sonemaro/fileorg/internal/config"
	"github.com/sonemaro/fileorg/pkg/logger"
	"github.com/sonemaro/fileorg/pkg/organizer"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(output string) *config.Config {
	return &config.Config{
		LogFile:    config.DefaultLogFile,
		Extensions: []string{config.DefaultExtension},
		Output:     output,
		NoColor:    true,
	}
}

func TestRunInMemory(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		files     []string
		wantOut   []string
		wantMoved int
	}{
		{
			name:      "text summary",
			output:    "text",
			files:     []string{"go-intro.txt", "python-tutorial.txt", "notes.md"},
			wantOut:   []string{"go-intro.txt -> go/", "python-tutorial.txt -> python/", organizer.MessageOrganized},
			wantMoved: 2,
		},
		{
			name:      "tree summary",
			output:    "tree",
			files:     []string{"go-intro.txt", "go-advanced.txt"},
			wantOut:   []string{"files/", "└── go/", organizer.MessageOrganized},
			wantMoved: 2,
		},
		{
			name:    "nothing to organize",
			output:  "text",
			files:   []string{"readme", "notes.md"},
			wantOut: []string{organizer.MessageNothing},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, fs.MkdirAll("/data/files", 0755))
			for _, name := range tt.files {
				require.NoError(t, afero.WriteFile(fs, filepath.Join("/data/files", name), []byte("x"), 0644))
			}

			var out bytes.Buffer
			application := New(testConfig(tt.output), fs, logger.Nop(), &out)

			summary, err := application.Run(context.Background(), "/data/files")
			require.NoError(t, err)
			assert.Equal(t, tt.wantMoved, summary.Stats.Moved)
			for _, want := range tt.wantOut {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestRunJSONOutput(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/files/rust-book.txt", []byte("hello"), 0644))

	var out bytes.Buffer
	application := New(testConfig("json"), fs, nil, &out)

	_, err := application.Run(context.Background(), "/data/files")
	require.NoError(t, err)

	var doc struct {
		Root      string `json:"root"`
		Organized bool   `json:"organized"`
		Folders   []struct {
			Key   string   `json:"key"`
			Files []string `json:"files"`
		} `json:"folders"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "/data/files", doc.Root)
	assert.True(t, doc.Organized)
	require.Len(t, doc.Folders, 1)
	assert.Equal(t, "rust", doc.Folders[0].Key)
	assert.Equal(t, []string{"rust-book.txt"}, doc.Folders[0].Files)
}

func TestRunInvalidDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	var out bytes.Buffer
	application := New(testConfig("text"), fs, logger.Nop(), &out)

	_, err := application.Run(context.Background(), "/does/not/exist")
	require.Error(t, err)
	assert.ErrorIs(t, err, organizer.ErrInvalidDirectory)
	assert.Empty(t, out.String())

	exists, err := afero.DirExists(fs, "/does/not/exist")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunCancelled(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/data/files/go-intro.txt", []byte("x"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	application := New(testConfig("text"), fs, logger.Nop(), &out)

	_, err := application.Run(ctx, "/data/files")
	assert.ErrorIs(t, err, context.Canceled)

	exists, err := afero.Exists(fs, "/data/files/go-intro.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRunOnDisk(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"python-tutorial.txt", "python-advanced.txt", "go-intro.txt", "notes.md", "readme", "badname.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}

	var out bytes.Buffer
	application := New(testConfig("text"), afero.NewOsFs(), logger.Nop(), &out)

	summary, err := application.Run(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Stats.Moved)
	assert.Equal(t, 1, summary.Stats.Failed)

	for _, path := range []string{
		"python/python-tutorial.txt",
		"python/python-advanced.txt",
		"go/go-intro.txt",
		"notes.md",
		"readme",
		"badname.txt",
	} {
		assert.FileExists(t, filepath.Join(dir, path))
	}
	assert.NoFileExists(t, filepath.Join(dir, "go-intro.txt"))

	// a second run finds nothing left to group
	out.Reset()
	summary, err = application.Run(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Stats.Moved)
	assert.Contains(t, out.String(), organizer.MessageNothing)
}

func TestNewLeavesGlobalColorState(t *testing.T) {
	saved := color.NoColor
	t.Cleanup(func() { color.NoColor = saved })

	for _, noColor := range []bool{false, true} {
		color.NoColor = false
		cfg := testConfig("tree")
		cfg.NoColor = noColor

		New(cfg, afero.NewMemMapFs(), logger.Nop(), &bytes.Buffer{})
		assert.False(t, color.NoColor)
	}
}
