package output

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sonemaro/fileorg/pkg/organizer"
)

// formatTable renders one row per directory entry
func (f *formatter) formatTable(summary *organizer.Summary) (string, error) {
	f.log.Debug("Formatting table output")

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "Status", "Folder", "Detail", "Size"})

	for _, entry := range summary.Entries {
		detail := entry.Reason
		if entry.Status == organizer.StatusFailed && entry.Err != nil {
			detail = entry.Err.Error()
		}
		tw.AppendRow(table.Row{
			entry.Name,
			string(entry.Status),
			entry.Key,
			detail,
			formatSize(entry.Size),
		})
	}

	if f.config.WithStats {
		s := f.calculateStats(summary)
		tw.AppendFooter(table.Row{
			fmt.Sprintf("%d entries", s.Entries),
			fmt.Sprintf("%d moved", s.Moved),
			fmt.Sprintf("%d folders", s.Folders),
			fmt.Sprintf("%d skipped, %d failed", s.Skipped, s.Failed),
			formatSize(s.BytesMoved),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	var builder strings.Builder
	builder.WriteString(tw.Render())
	builder.WriteString("\n")
	builder.WriteString(resultMessage(summary))
	builder.WriteString("\n")

	return builder.String(), nil
}
