package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/taskcal/internal/calendar"
	"github.com/sandeepkv93/taskcal/internal/model"
	"github.com/sandeepkv93/taskcal/internal/projection"
)

const weekdayHeader = "Su Mo Tu We Th Fr Sa"

var (
	todayStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	hasTasksStyle = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("14"))
	cursorStyle   = lipgloss.NewStyle().Background(lipgloss.Color("8"))
	doneStyle     = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	dateStyle     = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type EditorData struct {
	Active    bool
	Adding    bool
	DateView  string
	TitleView string
	DescView  string
	ErrorText string
}

type DetailData struct {
	Item     projection.Item
	Date     string
	Found    bool
	Markdown bool
}

// RenderCalendar draws the month grid. cursor is the keyboard day cursor
// and may be empty.
func RenderCalendar(vm projection.ViewModel, cursor string) string {
	var b strings.Builder
	b.WriteString(vm.Month.Title() + "\n")
	b.WriteString(weekdayHeader + "\n")
	for _, week := range calendar.Weeks(vm.Grid) {
		cells := make([]string, 0, len(week))
		for _, d := range week {
			cells = append(cells, renderDay(d, cursor))
		}
		b.WriteString(strings.Join(cells, " ") + "\n")
	}
	b.WriteString("\n")
	if vm.Filtered {
		b.WriteString("filter: " + vm.Selected)
	} else {
		b.WriteString("filter: all dates")
	}
	return b.String()
}

func renderDay(d calendar.Day, cursor string) string {
	if d.IsPadding {
		return "  "
	}
	cell := fmt.Sprintf("%2d", d.Number)
	style := lipgloss.NewStyle()
	if d.HasTasks {
		style = hasTasksStyle
	}
	if d.IsToday {
		style = style.Inherit(todayStyle)
	}
	if d.IsSelected {
		style = style.Inherit(selectedStyle)
	}
	if d.Date == cursor {
		style = style.Inherit(cursorStyle)
	}
	return style.Render(cell)
}

func RenderTaskList(vm projection.ViewModel, cursorID model.TaskID) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	if vm.Empty != projection.EmptyNone {
		msg := vm.Empty.String()
		if vm.Empty == projection.EmptyNoTasksOnDate && vm.Selected != "" {
			msg += ": " + vm.Selected
		}
		b.WriteString(mutedStyle.Render("(" + msg + ")"))
		return b.String()
	}
	for _, g := range vm.Groups {
		b.WriteString("\n" + dateStyle.Render(dateHeading(g.Date, vm.Today)) + "\n")
		for _, it := range g.Items {
			b.WriteString(renderItem(it, it.ID == cursorID) + "\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func dateHeading(date, today string) string {
	heading := date
	if t, err := model.ParseDate(date); err == nil {
		heading = t.Weekday().String() + " " + date
	}
	if date == today {
		heading += " (today)"
	}
	return heading
}

func renderItem(it projection.Item, focused bool) string {
	cursor := " "
	if focused {
		cursor = ">"
	}
	mark := "[ ]"
	title := it.Title
	if it.Completed {
		mark = "[x]"
		title = doneStyle.Render(title)
	}
	line := fmt.Sprintf("%s %s %s", cursor, mark, title)
	if it.Description != "" {
		line += mutedStyle.Render(" …")
	}
	if it.Editing {
		line += " (editing)"
	}
	return line
}

func RenderDetail(data DetailData) string {
	if !data.Found {
		return "details:\n(no task selected)"
	}
	status := "open"
	if data.Item.Completed {
		status = "done"
	}
	var b strings.Builder
	b.WriteString("details:\n")
	b.WriteString(fmt.Sprintf("id: %d\ndate: %s\nstatus: %s\n", data.Item.ID, data.Date, status))
	if data.Item.Description == "" {
		b.WriteString("(no description)")
		return b.String()
	}
	b.WriteString("\n")
	if data.Markdown {
		b.WriteString(RenderMarkdown(data.Item.Description))
	} else {
		b.WriteString(data.Item.Description)
	}
	return b.String()
}

func RenderEditor(data EditorData) string {
	if !data.Active {
		return ""
	}
	var b strings.Builder
	if data.Adding {
		b.WriteString("new task:\n")
		b.WriteString("date: " + data.DateView + "\n")
	} else {
		b.WriteString("edit task:\n")
	}
	b.WriteString("title: " + data.TitleView + "\n")
	b.WriteString("description:\n" + data.DescView + "\n")
	b.WriteString("keys: [tab] field [enter] save [esc] cancel")
	if data.ErrorText != "" {
		b.WriteString("\n" + errorStyle.Render("error: "+data.ErrorText))
	}
	return b.String()
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderSummary(s projection.Summary) string {
	return fmt.Sprintf("%d tasks, %d done, %d shown", s.Total, s.Completed, s.Shown)
}

func RenderHelpPanel(focus string, helpView string) string {
	return fmt.Sprintf("help (%s):\n%s", strings.ToLower(focus), helpView)
}
