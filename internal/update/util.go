package update

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskcal/internal/model"
	"github.com/sandeepkv93/taskcal/internal/projection"
)

func updateInput(in textinput.Model, msg tea.KeyMsg) textinput.Model {
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		in.SetValue(in.Value() + string(msg.Runes))
		in.CursorEnd()
		return in
	}
	in, _ = in.Update(msg)
	return in
}

func moveCursor(items []projection.Item, current model.TaskID, step int) model.TaskID {
	if len(items) == 0 {
		return 0
	}
	idx := 0
	for i, it := range items {
		if it.ID == current {
			idx = i
		}
	}
	idx = max(0, min(len(items)-1, idx+step))
	return items[idx].ID
}

func appendNonEmpty(parts []string, s string) []string {
	if s == "" {
		return parts
	}
	return append(parts, s)
}
