package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/sonemaro/fileorg/pkg/logger"
	"github.com/sonemaro/fileorg/pkg/organizer"
)

// formatTree renders the destination folders of the run as a tree rooted at
// the organized directory. Failed entries are listed after the tree.
func (f *formatter) formatTree(summary *organizer.Summary) (string, error) {
	f.log.Debug("Formatting tree output")

	var builder strings.Builder
	builder.WriteString(f.paint(filepath.Base(summary.Root)+"/", color.FgBlue, color.Bold))
	builder.WriteString("\n")

	for i, folder := range summary.Folders {
		f.formatTreeFolder(&builder, folder, i == len(summary.Folders)-1)
	}

	if failures := summary.Failures(); len(failures) > 0 {
		builder.WriteString("\nFailed:\n")
		for _, entry := range failures {
			fmt.Fprintf(&builder, "  %s (%s)\n", f.paint(entry.Name, color.FgRed), entry.Reason)
		}
	}

	builder.WriteString("\n")
	builder.WriteString(resultMessage(summary))
	builder.WriteString("\n")

	if f.config.WithStats {
		f.log.Debug("Adding statistics to output")
		s := f.calculateStats(summary)
		builder.WriteString("\nStatistics:\n")
		builder.WriteString(fmt.Sprintf("  Total Entries: %d\n", s.Entries))
		builder.WriteString(fmt.Sprintf("  Moved: %d\n", s.Moved))
		builder.WriteString(fmt.Sprintf("  Skipped: %d\n", s.Skipped))
		builder.WriteString(fmt.Sprintf("  Failed: %d\n", s.Failed))
		builder.WriteString(fmt.Sprintf("  Folders: %d (%d created)\n", s.Folders, s.Created))
		builder.WriteString(fmt.Sprintf("  Total Size: %s\n", formatSize(s.BytesMoved)))
	}

	return builder.String(), nil
}

func (f *formatter) formatTreeFolder(builder *strings.Builder, folder organizer.Folder, isLast bool) {
	f.log.WithFields(logger.Fields{
		"key":    folder.Key,
		"files":  len(folder.Files),
		"isLast": isLast,
	}).Trace("Formatting tree folder")

	prefix := "│   "
	if isLast {
		builder.WriteString("└── ")
		prefix = "    "
	} else {
		builder.WriteString("├── ")
	}

	builder.WriteString(f.paint(folder.Key+"/", color.FgBlue, color.Bold))
	if !folder.Created {
		builder.WriteString(" (existing)")
	}
	builder.WriteString("\n")

	for i, name := range folder.Files {
		if i == len(folder.Files)-1 {
			builder.WriteString(prefix + "└── ")
		} else {
			builder.WriteString(prefix + "├── ")
		}
		builder.WriteString(name)
		builder.WriteString("\n")
	}
}
