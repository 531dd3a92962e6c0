package formatter

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/avilev/boardwalk/internal/contract"
	"github.com/avilev/boardwalk/internal/domain"
)

const dateLayout = "2006-01-02"

func orDash(v *string) string {
	if v == nil || *v == "" {
		return "—"
	}
	return *v
}

// entryKind labels how a schedule entry was produced.
func entryKind(e contract.ScheduleEntry) string {
	switch {
	case e.Real:
		return StyleGreen.Render("actual")
	case e.NeedsAssignment:
		return StyleRed.Render("unassigned")
	default:
		return StyleBlue.Render("planned")
	}
}

// FormatSchedule renders a full schedule response, one section per project.
func FormatSchedule(resp *contract.ScheduleResponse) string {
	var b strings.Builder

	for i, p := range resp.Projects {
		if i > 0 {
			b.WriteString("\n")
		}
		name := p.ProjectName
		if name == "" {
			name = p.ProjectID
		}
		b.WriteString(Header(name) + "\n")

		if len(p.Entries) == 0 {
			b.WriteString(Dim("No scheduled tasks.") + "\n")
		} else {
			tw := table.NewWriter()
			tw.SetStyle(table.StyleLight)
			tw.AppendHeader(table.Row{"Task", "Start", "End", "Assignee", "Kind"})
			for _, e := range p.Entries {
				title := e.TaskTitle
				if title == "" {
					title = e.TaskID
				}
				assignee := e.AssignedName
				if assignee == "" && e.AssignedTo != nil {
					assignee = *e.AssignedTo
				}
				if assignee == "" {
					assignee = "—"
				}
				tw.AppendRow(table.Row{
					title,
					orDash(e.Start),
					orDash(e.End),
					assignee,
					entryKind(e),
				})
			}
			b.WriteString(tw.Render() + "\n")
		}

		for _, w := range p.Warnings {
			b.WriteString(Warning(w) + "\n")
		}
	}

	if len(resp.Projects) == 0 {
		b.WriteString(Dim("Nothing to schedule.") + "\n")
	}
	return b.String()
}

// FormatProjectList renders projects as a table.
func FormatProjectList(projects []*domain.Project) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"ID", "Name", "Start", "End", "Workers"})
	for _, p := range projects {
		start, end := "—", "—"
		if p.StartDate != nil {
			start = p.StartDate.Format(dateLayout)
		}
		if p.EndDate != nil {
			end = p.EndDate.Format(dateLayout)
		}
		tw.AppendRow(table.Row{p.DisplayID(), p.Name, start, end, len(p.AssignedWorkers)})
	}
	return tw.Render()
}

// FormatWorkerList renders workers as a table.
func FormatWorkerList(workers []*domain.Worker) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"ID", "Name", "Capacity", "Working days"})
	for _, w := range workers {
		days := make([]string, 0, len(w.WorkingDays))
		for _, d := range w.WorkingDays {
			days = append(days, weekdayShort(d))
		}
		id := w.ID
		if len(id) > 8 {
			id = id[:8]
		}
		tw.AppendRow(table.Row{id, w.Name, fmt.Sprintf("%.2g", w.DailyCapacity), strings.Join(days, ",")})
	}
	return tw.Render()
}

// FormatTaskList renders tasks as a table.
func FormatTaskList(tasks []*domain.Task) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"ID", "Title", "Status", "Points", "Priority", "Deps"})
	for _, t := range tasks {
		prio := "—"
		if t.Priority != nil {
			prio = fmt.Sprintf("%.4g", *t.Priority)
		}
		tw.AppendRow(table.Row{
			t.DisplayID(),
			t.Title,
			statusStyled(t.Status),
			fmt.Sprintf("%.4g", t.StoryPoints),
			prio,
			len(t.Dependencies),
		})
	}
	return tw.Render()
}

func statusStyled(s domain.TaskStatus) string {
	switch s {
	case domain.TaskDone:
		return StyleGreen.Render(string(s))
	case domain.TaskActive, domain.TaskInReview:
		return StyleBlue.Render(string(s))
	case domain.TaskBlocked:
		return StyleRed.Render(string(s))
	case domain.TaskCancelled:
		return StyleDim.Render(string(s))
	default:
		return string(s)
	}
}

func weekdayShort(iso int) string {
	switch iso {
	case 1:
		return "Mon"
	case 2:
		return "Tue"
	case 3:
		return "Wed"
	case 4:
		return "Thu"
	case 5:
		return "Fri"
	case 6:
		return "Sat"
	case 7:
		return "Sun"
	default:
		return fmt.Sprintf("%d", iso)
	}
}
