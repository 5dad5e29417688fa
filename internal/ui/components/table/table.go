// Package table builds themed bubble-table models for the activity log.
package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	bbtable "github.com/evertras/bubble-table/table"

	"github.com/nhath/quill/internal/activity"
)

// Nord colors
const (
	ColorForeground = "#D8DEE9" // Nord4: Light gray
	ColorComment    = "#4C566A" // Nord3: Dark gray
	ColorCyan       = "#88C0D0" // Nord8: Cyan blue
	ColorGreen      = "#A3BE8C" // Nord14: Green
	ColorPurple     = "#B48EAD" // Nord15: Purple
	ColorRed        = "#BF616A" // Nord11: Red
	ColorYellow     = "#EBCB8B" // Nord13: Yellow
	ColorTeal       = "#8FBCBB" // Nord7: Teal
)

// Column keys of the activity table.
const (
	ColID       = "id"
	ColKind     = "kind"
	ColStatus   = "status"
	ColDuration = "duration"
	ColResults  = "results"
	ColInput    = "input"
)

const maxInputWidth = 40

// New creates a new bubble-table with Nord theme (no background)
func New(cols []bbtable.Column) bbtable.Model {
	return bbtable.New(cols).
		WithBaseStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorForeground))).
		HeaderStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorTeal)).
			Bold(true)).
		HighlightStyle(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorGreen)).
			Bold(true)).
		Focused(true).
		BorderRounded()
}

// FromActivity builds the activity log table, newest entry first.
func FromActivity(entries []activity.Entry) bbtable.Model {
	headers := []string{ColID, ColKind, ColStatus, ColDuration, ColResults, ColInput}
	titles := map[string]string{
		ColID:       "#",
		ColKind:     "Kind",
		ColStatus:   "Status",
		ColDuration: "Time",
		ColResults:  "Results",
		ColInput:    "Input",
	}

	rowsData := make([][]string, 0, len(entries))
	for _, e := range entries {
		rowsData = append(rowsData, []string{
			fmt.Sprintf("%d", e.ID),
			string(e.Kind),
			statusText(e),
			durationText(e),
			fmt.Sprintf("%d", e.Results),
			e.InputPreview(maxInputWidth),
		})
	}

	titleRow := make([]string, len(headers))
	for i, h := range headers {
		titleRow[i] = titles[h]
	}
	widths := calculateColumnWidths(headers, append([][]string{titleRow}, rowsData...))

	cols := make([]bbtable.Column, 0, len(headers))
	for _, h := range headers {
		cols = append(cols, bbtable.NewColumn(h, titles[h], widths[h]))
	}

	rows := make([]bbtable.Row, 0, len(rowsData))
	for i, rd := range rowsData {
		rows = append(rows, bbtable.NewRow(bbtable.RowData{
			ColID:       rd[0],
			ColKind:     rd[1],
			ColStatus:   bbtable.NewStyledCell(rd[2], StatusStyle(entries[i])),
			ColDuration: rd[3],
			ColResults:  rd[4],
			ColInput:    rd[5],
		}))
	}

	return New(cols).
		WithRows(rows).
		WithPageSize(10).
		WithStaticFooter("Esc to close, ↑/↓ to move")
}

func statusText(e activity.Entry) string {
	s := string(e.Status)
	if e.Stale {
		s += " (stale)"
	}
	return s
}

func durationText(e activity.Entry) string {
	if e.Status == activity.StatusPending {
		return "..."
	}
	return fmt.Sprintf("%dms", e.DurationMs)
}

// StatusStyle colors a status cell by outcome.
func StatusStyle(e activity.Entry) lipgloss.Style {
	switch {
	case e.Status == activity.StatusError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed))
	case e.Status == activity.StatusPending:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorComment)).Italic(true)
	case e.Stale:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorYellow))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGreen))
	}
}

func calculateColumnWidths(headers []string, rows [][]string) map[string]int {
	widths := make(map[string]int)
	for _, h := range headers {
		widths[h] = len(h)
	}

	for _, row := range rows {
		for i, val := range row {
			if i < len(headers) {
				if n := len([]rune(val)); n > widths[headers[i]] {
					widths[headers[i]] = n
				}
			}
		}
	}

	// Add padding
	for h := range widths {
		widths[h] += 2
	}

	return widths
}

// Summary is a one-line count of entries by status.
func Summary(entries []activity.Entry) string {
	var ok, failed, pending, stale int
	for _, e := range entries {
		switch e.Status {
		case activity.StatusSuccess:
			ok++
		case activity.StatusError:
			failed++
		case activity.StatusPending:
			pending++
		}
		if e.Stale {
			stale++
		}
	}
	parts := []string{
		fmt.Sprintf("%d ok", ok),
		fmt.Sprintf("%d failed", failed),
		fmt.Sprintf("%d pending", pending),
	}
	if stale > 0 {
		parts = append(parts, fmt.Sprintf("%d stale", stale))
	}
	return strings.Join(parts, " · ")
}
