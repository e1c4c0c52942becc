package update

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskcal/internal/commands"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m = m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		m.commandInput = updateInput(m.commandInput, msg)
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m.closePalette()
	}
	m, _ = m.run(cmd)
	if cmd.Type == commands.TypeNavigate || cmd.Type == commands.TypeSelectDate {
		m.CalCursor = m.defaultCalendarCursor()
	}
	if cmd.Type == commands.TypeSetEditMode && cmd.SetEditMode.On {
		m = m.closePalette()
		if entry, ok := m.State.Get(cmd.SetEditMode.ID); ok && entry.UI.Editing {
			m.CursorID = entry.ID
			m = m.fillEditor(entry)
		}
		return m
	}
	return m.closePalette()
}

func (m Model) closePalette() Model {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}
