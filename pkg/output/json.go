package output

import (
	"encoding/json"
	"time"

	"github.com/sonemaro/fileorg/pkg/logger"
	"github.com/sonemaro/fileorg/pkg/organizer"
)

// jsonEntry represents one directory entry in JSON output
type jsonEntry struct {
	Name        string `json:"name" yaml:"name"`
	Status      string `json:"status" yaml:"status"`
	Key         string `json:"key,omitempty" yaml:"key,omitempty"`
	Reason      string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Destination string `json:"destination,omitempty" yaml:"destination,omitempty"`
	Error       string `json:"error,omitempty" yaml:"error,omitempty"`
	Size        int64  `json:"size" yaml:"size"`
}

// jsonFolder represents one destination folder in JSON output
type jsonFolder struct {
	Key     string   `json:"key" yaml:"key"`
	Path    string   `json:"path" yaml:"path"`
	Created bool     `json:"created" yaml:"created"`
	Files   []string `json:"files" yaml:"files"`
}

// jsonOutput represents the complete JSON output
type jsonOutput struct {
	RunID      string        `json:"runId" yaml:"runId"`
	Root       string        `json:"root" yaml:"root"`
	Organized  bool          `json:"organized" yaml:"organized"`
	Message    string        `json:"message" yaml:"message"`
	Entries    []*jsonEntry  `json:"entries" yaml:"entries"`
	Folders    []*jsonFolder `json:"folders" yaml:"folders"`
	Statistics *stats        `json:"statistics,omitempty" yaml:"statistics,omitempty"`
	Generated  time.Time     `json:"generated" yaml:"generated"`
}

func (f *formatter) formatJSON(summary *organizer.Summary) (string, error) {
	f.log.Debug("Formatting JSON output")

	bytes, err := json.MarshalIndent(f.convertSummary(summary), "", "  ")
	if err != nil {
		f.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal JSON")
		return "", err
	}

	return string(bytes), nil
}

// convertSummary builds the document shared by the JSON and YAML formats
func (f *formatter) convertSummary(summary *organizer.Summary) *jsonOutput {
	output := &jsonOutput{
		RunID:     summary.RunID,
		Root:      summary.Root,
		Organized: summary.Organized(),
		Message:   resultMessage(summary),
		Entries:   make([]*jsonEntry, 0, len(summary.Entries)),
		Folders:   make([]*jsonFolder, 0, len(summary.Folders)),
		Generated: time.Now(),
	}

	for _, entry := range summary.Entries {
		f.log.WithFields(logger.Fields{
			"file":   entry.Name,
			"status": entry.Status,
		}).Trace("Converting entry")

		je := &jsonEntry{
			Name:        entry.Name,
			Status:      string(entry.Status),
			Key:         entry.Key,
			Reason:      entry.Reason,
			Destination: entry.Destination,
			Size:        entry.Size,
		}
		if entry.Err != nil {
			je.Error = entry.Err.Error()
		}
		output.Entries = append(output.Entries, je)
	}

	for _, folder := range summary.Folders {
		files := folder.Files
		if files == nil {
			files = []string{}
		}
		output.Folders = append(output.Folders, &jsonFolder{
			Key:     folder.Key,
			Path:    folder.Path,
			Created: folder.Created,
			Files:   files,
		})
	}

	if f.config.WithStats {
		f.log.Debug("Adding statistics to output")
		output.Statistics = f.calculateStats(summary)
	}

	return output
}
