package update

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskcal/internal/commands"
	"github.com/sandeepkv93/taskcal/internal/projection"
)

func (m Model) handleTaskListKey(msg tea.KeyMsg) Model {
	items := m.State.Project().Items()
	switch msg.String() {
	case "j", "down":
		m.CursorID = moveCursor(items, m.CursorID, 1)
	case "k", "up":
		m.CursorID = moveCursor(items, m.CursorID, -1)
	case "g", "home":
		if len(items) > 0 {
			m.CursorID = items[0].ID
		}
	case "G", "end":
		if len(items) > 0 {
			m.CursorID = items[len(items)-1].ID
		}
	case " ", "x":
		if m.CursorID != 0 {
			m, _ = m.run(commands.ToggleCompleted(m.CursorID))
		}
	case "e":
		if m.CursorID != 0 {
			m = m.openEditForm()
		}
	case "d":
		if m.CursorID != 0 {
			next := moveCursor(items, m.CursorID, 1)
			if next == m.CursorID {
				next = moveCursor(items, m.CursorID, -1)
			}
			var err error
			m, err = m.run(commands.DeleteTask(m.CursorID))
			if err == nil {
				m.CursorID = next
			}
		}
	case "v", "enter":
		m.ShowDetail = !m.ShowDetail
	case "esc":
		if _, ok := m.State.Selected(); ok {
			m.State.ClearSelection()
			m.Status = StatusBar{Text: "showing all tasks"}
		}
	}
	return m
}

func (m Model) syncCursor() Model {
	items := m.State.Project().Items()
	if len(items) == 0 {
		m.CursorID = 0
		return m
	}
	if !slices.ContainsFunc(items, func(it projection.Item) bool { return it.ID == m.CursorID }) {
		m.CursorID = items[0].ID
	}
	return m
}
