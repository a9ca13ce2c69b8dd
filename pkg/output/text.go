package output

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/sonemaro/fileorg/pkg/organizer"
)

// formatText prints one line per moved or failed entry followed by the result
func (f *formatter) formatText(summary *organizer.Summary) (string, error) {
	f.log.Debug("Formatting text output")

	var builder strings.Builder
	for _, entry := range summary.Entries {
		switch entry.Status {
		case organizer.StatusMoved:
			fmt.Fprintf(&builder, "%s %s -> %s/\n", f.paint("moved ", color.FgGreen), entry.Name, entry.Key)
		case organizer.StatusFailed:
			fmt.Fprintf(&builder, "%s %s: %v\n", f.paint("failed", color.FgRed), entry.Name, entry.Err)
		}
	}

	builder.WriteString(resultMessage(summary))
	builder.WriteString("\n")

	if f.config.WithStats {
		s := f.calculateStats(summary)
		fmt.Fprintf(&builder, "%d moved, %d skipped, %d failed (%s) in %s\n",
			s.Moved, s.Skipped, s.Failed, formatSize(s.BytesMoved), s.Duration)
	}

	return builder.String(), nil
}

func (f *formatter) paint(s string, attrs ...color.Attribute) string {
	if !f.config.WithColors {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}
