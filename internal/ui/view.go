package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const (
	selectionMarker = ">"
	filterCursor    = "█"
	emptyRowText    = "No matching projects"

	// maxVisibleRows caps the Projects panel on tall terminals.
	maxVisibleRows = 20
	// selectorChrome is the number of lines around the rows: two panel
	// borders and a title each, the blank line and hint, and the filter line.
	selectorChrome = 9
)

// visibleRows returns how many project rows fit in a terminal of the given height.
func visibleRows(height int) int {
	return min(max(height-selectorChrome, 1), maxVisibleRows)
}

// rowWindow returns the [start, end) slice of total rows to draw so that
// selected stays on screen, keeping it near the middle when scrolled.
func rowWindow(selected, total, limit int) (int, int) {
	if limit <= 0 || total <= limit {
		return 0, total
	}
	start := min(max(selected-limit/2, 0), total-limit)
	return start, start + limit
}

// renderSelector draws the Projects panel, the control hint and the Filter
// panel. At most limit rows are drawn.
func renderSelector(s State, theme *Theme, h help.Model, keys selectorKeys, limit int) string {
	projects := panel(theme, "Projects", renderRows(s, theme, limit)+"\n\n"+h.View(keys))
	filter := panel(theme, "Filter", renderFilter(s.Filter()))
	return lipgloss.JoinVertical(lipgloss.Left, projects, filter)
}

func panel(theme *Theme, title, body string) string {
	return theme.Border.Padding(0, 1).Render(theme.Title.Render(title) + "\n" + body)
}

func renderFilter(filter string) string {
	return selectionMarker + " " + filter + filterCursor
}

func renderRows(s State, theme *Theme, limit int) string {
	filtered := s.Filtered()
	if len(filtered) == 0 {
		return theme.Muted.Render(emptyRowText)
	}

	start, end := rowWindow(s.Selected(), len(filtered), limit)
	selected := s.Selected() - start

	rows := make([][]string, 0, end-start)
	for i, ref := range filtered[start:end] {
		marker := " "
		if i == selected {
			marker = selectionMarker
		}
		rows = append(rows, []string{marker, ref.Name, ref.Directory, ref.ID})
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		// Headerless tables drop their last row unless the bottom border is on.
		BorderBottom(true).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(false).
		BorderRow(false).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var st lipgloss.Style
			switch {
			case row == selected:
				st = theme.Selected
			case col == 1:
				st = theme.Name
			case col == 2:
				st = theme.Dir
			case col == 3:
				st = theme.ID
			default:
				st = theme.Title
			}
			if col < 3 {
				st = st.PaddingRight(2)
			}
			return st
		})
	return strings.TrimRight(t.String(), " \n")
}
