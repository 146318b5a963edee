package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/leapstack-labs/querie/internal/session"
	"github.com/leapstack-labs/querie/pkg/core"
)

// Title is shown in the title bar and the terminal window title.
const Title = "Querie"

const (
	minWidth  = 20
	minHeight = 12
)

// layout renders one frame for a terminal of width x height cells.
//
// Title and status take one line each. The remaining rows are split 3:1
// between the results/variables row and the query panel; the top row is
// split 3:1 between results and variables.
type layout struct {
	width   int
	height  int
	styles  Styles
	keys    KeyMap
	spinner string
}

func (l layout) render(s session.Snapshot) string {
	if l.width < minWidth || l.height < minHeight {
		return lipgloss.NewStyle().MaxWidth(l.width).Render(Title + ": terminal too small")
	}

	body := l.height - 2
	topH := body * 3 / 4
	queryH := body - topH
	resultsW := l.width * 3 / 4
	varsW := l.width - resultsW

	results := l.panel(s.Area == session.AreaResults, resultsW, topH,
		l.resultsContent(s, resultsW-2))
	variables := l.panel(s.Area == session.AreaVariables, varsW, topH,
		l.variablesContent())
	query := l.panel(s.Area == session.AreaQuery, l.width, queryH,
		l.queryContent(s))

	return lipgloss.JoinVertical(lipgloss.Left,
		l.titleBar(),
		lipgloss.JoinHorizontal(lipgloss.Top, results, variables),
		query,
		l.statusBar(s),
	)
}

// panel draws content inside a bordered box of outer size w x h. Content is
// wrapped to the box width and clipped to its height.
func (l layout) panel(active bool, w, h int, content string) string {
	style := l.styles.Panel
	if active {
		style = l.styles.ActivePanel
	}
	inner := lipgloss.NewStyle().Width(w - 2).MaxHeight(h - 2).Render(content)
	return style.Width(w - 2).Height(h - 2).Render(inner)
}

func (l layout) titleBar() string {
	return lipgloss.PlaceHorizontal(l.width, lipgloss.Center, l.styles.Title.Render(Title))
}

func (l layout) resultsContent(s session.Snapshot, width int) string {
	if !s.HasResult {
		return l.styles.PanelTitle.Render("Results") + "\n" +
			l.styles.Placeholder.Render("No results yet. Press tab to reach the query panel, type a query and press enter.")
	}

	set := s.Result
	caption := l.styles.PanelTitle.Render(fmt.Sprintf("Result %d", s.ResultIndex+1)) +
		l.styles.Caption.Render(fmt.Sprintf(" of %d  %s", s.ResultCount, resultSummary(set)))

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().MaxWidth(width).Render(caption))
	b.WriteByte('\n')
	if set.Query != "" {
		b.WriteString(lipgloss.NewStyle().MaxWidth(width).Render(l.styles.Caption.Render(set.Query)))
		b.WriteByte('\n')
	}
	if set.Len() == 0 {
		b.WriteString(l.styles.Placeholder.Render("(no rows)"))
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().MaxWidth(width).Render(l.resultTable(set)))
	return b.String()
}

func (l layout) resultTable(set core.ResultSet) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(l.styles.Caption).
		Headers(set.Columns()...).
		Rows(set.Values()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return l.styles.Header
			}
			if set.Failed {
				return l.styles.ErrorCell
			}
			if row >= 0 && row < len(set.Rows) && col < len(set.Rows[row]) &&
				set.Rows[row][col].Kind == core.KindNumber {
				return l.styles.Cell.Align(lipgloss.Right)
			}
			return l.styles.Cell
		}).
		String()
}

func resultSummary(set core.ResultSet) string {
	if set.Failed {
		return "failed"
	}
	rows := "rows"
	if set.Len() == 1 {
		rows = "row"
	}
	return fmt.Sprintf("%d %s in %s", set.Len(), rows, set.Duration.Round(time.Microsecond))
}

func (l layout) variablesContent() string {
	return l.styles.PanelTitle.Render("Variables") + "\n" +
		l.styles.Placeholder.Render("No variables defined.")
}

func (l layout) queryContent(s session.Snapshot) string {
	header := l.styles.PanelTitle.Render("Query")
	if !s.ShowCursor {
		return header + "\n" + s.Query
	}

	runes := []rune(s.Query)
	c := max(0, min(s.Cursor, len(runes)))
	under, rest := " ", ""
	if c < len(runes) {
		under = string(runes[c])
		rest = string(runes[c+1:])
	}
	return header + "\n" + string(runes[:c]) + l.styles.Cursor.Render(under) + rest
}

func (l layout) statusBar(s session.Snapshot) string {
	left := l.styles.Status.Render(s.Status)
	if s.Busy {
		detail := "running query"
		if s.Pending > 0 {
			detail = fmt.Sprintf("running query, %d queued", s.Pending)
		}
		left += "  " + l.spinner + l.styles.StatusDetail.Render(detail)
	}

	right := l.helpLine()
	gap := l.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		return lipgloss.NewStyle().MaxWidth(l.width).Render(left)
	}
	return left + strings.Repeat(" ", gap) + right
}

func (l layout) helpLine() string {
	parts := make([]string, 0, len(l.keys.ShortHelp()))
	for _, b := range l.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return l.styles.StatusDetail.Render(strings.Join(parts, " · "))
}
