package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avilev/boardwalk/internal/cli/formatter"
	"github.com/avilev/boardwalk/internal/contract"
)

// timelineRow is one selectable line in the timeline view: either a project
// header or a schedule entry under it.
type timelineRow struct {
	isHeader bool
	project  string
	entry    contract.ScheduleEntry
	warnings []string
}

type timelineKeys struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

var timelineKeyMap = timelineKeys{
	Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type timelineModel struct {
	rows   []timelineRow
	cursor int
	height int
}

func newTimelineModel(resp *contract.ScheduleResponse) timelineModel {
	var rows []timelineRow
	for _, p := range resp.Projects {
		name := p.ProjectName
		if name == "" {
			name = p.ProjectID
		}
		rows = append(rows, timelineRow{isHeader: true, project: name, warnings: p.Warnings})
		for _, e := range p.Entries {
			rows = append(rows, timelineRow{project: name, entry: e})
		}
	}
	return timelineModel{rows: rows, height: 24}
}

func (m timelineModel) Init() tea.Cmd { return nil }

func (m timelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, timelineKeyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, timelineKeyMap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, timelineKeyMap.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m timelineModel) View() string {
	if len(m.rows) == 0 {
		return formatter.Dim("Nothing to schedule.") + "\n\n" + m.helpLine()
	}

	var b strings.Builder
	visible := m.height - 4
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}

	for i := start; i < end; i++ {
		row := m.rows[i]
		line := m.renderRow(row)
		if i == m.cursor {
			line = formatter.StyleHeader.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + m.detailLine() + "\n" + m.helpLine())
	return b.String()
}

func (m timelineModel) renderRow(row timelineRow) string {
	if row.isHeader {
		label := formatter.Bold(row.project)
		if n := len(row.warnings); n > 0 {
			label += " " + formatter.StyleYellow.Render(fmt.Sprintf("(%d warnings)", n))
		}
		return label
	}

	e := row.entry
	title := e.TaskTitle
	if title == "" {
		title = e.TaskID
	}
	dates := fmt.Sprintf("%s → %s", orPlaceholder(e.Start), orPlaceholder(e.End))
	marker := formatter.StyleBlue.Render("◆")
	if e.Real {
		marker = formatter.StyleGreen.Render("◆")
	}
	if e.NeedsAssignment {
		marker = formatter.StyleRed.Render("◆")
	}
	return fmt.Sprintf("%s %s  %s", marker, title, formatter.Dim(dates))
}

// detailLine expands the row under the cursor.
func (m timelineModel) detailLine() string {
	if m.cursor >= len(m.rows) {
		return ""
	}
	row := m.rows[m.cursor]
	if row.isHeader {
		if len(row.warnings) == 0 {
			return formatter.Dim("No warnings.")
		}
		return formatter.Warning(row.warnings[0])
	}

	e := row.entry
	assignee := e.AssignedName
	if assignee == "" && e.AssignedTo != nil {
		assignee = *e.AssignedTo
	}
	if assignee == "" {
		assignee = "nobody"
	}
	kind := "planned"
	if e.Real {
		kind = "from movement history"
	}
	if e.NeedsAssignment {
		kind = "needs assignment"
	}
	return formatter.Dim(fmt.Sprintf("%s · assigned to %s · %s", row.project, assignee, kind))
}

func (m timelineModel) helpLine() string {
	return formatter.Dim("↑/↓ move · q quit")
}

func orPlaceholder(v *string) string {
	if v == nil || *v == "" {
		return "?"
	}
	return *v
}
