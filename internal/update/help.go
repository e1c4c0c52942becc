package update

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/taskcal/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	global := toBindings(m.globalBindings())
	pane := toBindings(m.paneBindings())
	h := m.helpModel
	h.ShowAll = true
	return views.RenderHelpPanel(string(m.Focus), h.View(helpKeyMap{
		short: append(global, pane...),
		full:  [][]key.Binding{global, pane},
	}))
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.SwitchPane, Action: "switch pane"},
		{Key: m.Keys.Add, Action: "add task"},
		{Key: m.Keys.Palette, Action: "command palette"},
		{Key: m.Keys.Help, Action: "toggle help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) paneBindings() []KeyBinding {
	if m.Focus == PaneCalendar {
		return []KeyBinding{
			{Key: "h/l", Action: "prev/next month"},
			{Key: "arrows", Action: "move day"},
			{Key: "enter", Action: "filter by day"},
			{Key: "t", Action: "today"},
			{Key: "esc", Action: "show all"},
		}
	}
	return []KeyBinding{
		{Key: "j/k", Action: "move"},
		{Key: "space", Action: "toggle done"},
		{Key: "e", Action: "edit"},
		{Key: "d", Action: "delete"},
		{Key: "v", Action: "details"},
		{Key: "esc", Action: "show all"},
	}
}

func toBindings(kbs []KeyBinding) []key.Binding {
	out := make([]key.Binding, 0, len(kbs))
	for _, kb := range kbs {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
