package output

import (
	"github.com/dustin/go-humanize"
	"github.com/sonemaro/fileorg/pkg/logger"
	"github.com/sonemaro/fileorg/pkg/organizer"
)

// stats holds statistics about the organize run
type stats struct {
	Entries    int    `json:"totalEntries" yaml:"totalEntries"`
	Moved      int    `json:"moved" yaml:"moved"`
	Skipped    int    `json:"skipped" yaml:"skipped"`
	Failed     int    `json:"failed" yaml:"failed"`
	Folders    int    `json:"folders" yaml:"folders"`
	Created    int    `json:"foldersCreated" yaml:"foldersCreated"`
	BytesMoved int64  `json:"bytesMoved" yaml:"bytesMoved"`
	Duration   string `json:"duration" yaml:"duration"`
}

func (f *formatter) calculateStats(summary *organizer.Summary) *stats {
	f.log.Debug("Calculating run statistics")

	s := &stats{
		Entries:    summary.Stats.Entries,
		Moved:      summary.Stats.Moved,
		Skipped:    summary.Stats.Skipped,
		Failed:     summary.Stats.Failed,
		Folders:    len(summary.Folders),
		BytesMoved: summary.Stats.BytesMoved,
		Duration:   summary.Stats.Duration.String(),
	}
	for _, folder := range summary.Folders {
		if folder.Created {
			s.Created++
		}
	}

	f.log.WithFields(logger.Fields{
		"moved":   s.Moved,
		"skipped": s.Skipped,
		"failed":  s.Failed,
		"folders": s.Folders,
	}).Debug("Statistics calculated")

	return s
}

// formatSize renders a byte count for humans
func formatSize(bytes int64) string {
	if bytes < 0 {
		bytes = 0
	}
	return humanize.Bytes(uint64(bytes))
}
