package update

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskcal/internal/commands"
	"github.com/sandeepkv93/taskcal/internal/model"
)

func (m Model) openAddForm() Model {
	date := m.State.Today()
	if sel, ok := m.State.Selected(); ok {
		date = sel
	} else if m.Focus == PaneCalendar && m.CalCursor != "" {
		date = m.CalCursor
	}
	m.Editor = EditorState{Active: true, Adding: true, Field: FieldTitle}
	m.titleInput.SetValue("")
	m.dateInput.SetValue(date)
	m.descArea.Reset()
	m.focusField()
	m.Status = StatusBar{Text: "new task"}
	return m
}

func (m Model) openEditForm() Model {
	entry, ok := m.State.Get(m.CursorID)
	if !ok {
		return m
	}
	next, err := m.run(commands.SetEditMode(entry.ID, true))
	if err != nil {
		return next
	}
	return next.fillEditor(entry)
}

func (m Model) fillEditor(entry model.Entry) Model {
	m.Editor = EditorState{Active: true, TaskID: entry.ID, Field: FieldTitle}
	m.titleInput.SetValue(entry.Title)
	m.descArea.Reset()
	m.descArea.SetValue(entry.Description)
	m.focusField()
	return m
}

func (m Model) handleEditorKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		return m.cancelEditor()
	case "enter":
		return m.submitEditor()
	case "tab":
		m.Editor.Field = m.nextField(1)
		m.focusField()
		return m
	case "shift+tab":
		m.Editor.Field = m.nextField(-1)
		m.focusField()
		return m
	}

	switch m.Editor.Field {
	case FieldTitle:
		m.titleInput = updateInput(m.titleInput, msg)
	case FieldDate:
		m.dateInput = updateInput(m.dateInput, msg)
	case FieldDescription:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.descArea.InsertString(string(msg.Runes))
			return m
		}
		m.descArea, _ = m.descArea.Update(msg)
	}
	return m
}

func (m Model) submitEditor() Model {
	title := m.titleInput.Value()
	desc := m.descArea.Value()
	var cmd commands.Command
	if m.Editor.Adding {
		cmd = commands.AddTask(m.dateInput.Value(), title, desc)
	} else {
		cmd = commands.UpdateTask(m.Editor.TaskID, title, desc)
	}
	next, err := m.run(cmd)
	if errors.Is(err, model.ErrValidation) {
		next.Editor.Err = describeError(err)
		return next
	}
	if m.Editor.Adding {
		if last, ok := next.State.Last(); ok {
			next.CursorID = last.ID
		}
	}
	return next.closeEditor()
}

func (m Model) cancelEditor() Model {
	if !m.Editor.Adding {
		next, _ := m.run(commands.SetEditMode(m.Editor.TaskID, false))
		m = next
	} else {
		m.Status = StatusBar{Text: "add cancelled"}
	}
	return m.closeEditor()
}

func (m Model) closeEditor() Model {
	m.Editor = EditorState{}
	m.titleInput.Blur()
	m.dateInput.Blur()
	m.descArea.Blur()
	return m
}

func (m Model) nextField(step int) EditorField {
	fields := []EditorField{FieldTitle, FieldDescription}
	if m.Editor.Adding {
		fields = []EditorField{FieldTitle, FieldDate, FieldDescription}
	}
	idx := 0
	for i, f := range fields {
		if f == m.Editor.Field {
			idx = i
		}
	}
	idx = (idx + step + len(fields)) % len(fields)
	return fields[idx]
}

func (m *Model) focusField() {
	m.titleInput.Blur()
	m.dateInput.Blur()
	m.descArea.Blur()
	switch m.Editor.Field {
	case FieldTitle:
		m.titleInput.Focus()
		m.titleInput.CursorEnd()
	case FieldDate:
		m.dateInput.Focus()
		m.dateInput.CursorEnd()
	case FieldDescription:
		m.descArea.Focus()
	}
}
