package update

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskcal/internal/calendar"
	"github.com/sandeepkv93/taskcal/internal/commands"
	"github.com/sandeepkv93/taskcal/internal/model"
)

func (m Model) handleCalendarKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "h", "pgup":
		m = m.shiftMonth(-1)
	case "l", "pgdown":
		m = m.shiftMonth(1)
	case "left":
		m = m.moveDay(-1)
	case "right":
		m = m.moveDay(1)
	case "up", "k":
		m = m.moveDay(-7)
	case "down", "j":
		m = m.moveDay(7)
	case "enter", " ":
		if m.CalCursor != "" {
			m, _ = m.run(commands.SelectDate(m.CalCursor))
		}
	case "t":
		m.State.GoToToday()
		m.CalCursor = m.State.Today()
		m.Status = StatusBar{Text: m.State.Month().Title()}
	case "esc", "c":
		m.State.ClearSelection()
		m.Status = StatusBar{Text: "showing all tasks"}
	}
	return m
}

func (m Model) shiftMonth(delta int) Model {
	m, _ = m.run(commands.Navigate(delta))
	month := m.State.Month()
	day := 1
	if d, err := model.ParseDate(m.CalCursor); err == nil {
		day = min(d.Day(), calendar.DaysIn(month))
	}
	m.CalCursor = month.Date(day)
	return m
}

func (m Model) moveDay(days int) Model {
	d, err := model.ParseDate(m.CalCursor)
	if err != nil {
		m.CalCursor = m.defaultCalendarCursor()
		return m
	}
	d = d.AddDate(0, 0, days)
	target := calendar.MonthOf(d)
	current := m.State.Month()
	if delta := (target.Year-current.Year)*12 + int(target.Month-current.Month); delta != 0 {
		m, _ = m.run(commands.Navigate(delta))
	}
	m.CalCursor = model.FormatDate(d)
	return m
}

func (m Model) defaultCalendarCursor() string {
	month := m.State.Month()
	if sel, ok := m.State.Selected(); ok {
		if d, err := model.ParseDate(sel); err == nil && calendar.MonthOf(d) == month {
			return sel
		}
	}
	today := m.State.Today()
	if d, err := model.ParseDate(today); err == nil && calendar.MonthOf(d) == month {
		return today
	}
	return month.Date(1)
}
