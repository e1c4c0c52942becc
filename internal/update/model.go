package update

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/taskcal/internal/app"
	"github.com/sandeepkv93/taskcal/internal/config"
	"github.com/sandeepkv93/taskcal/internal/model"
	"go.uber.org/zap"
)

type Pane string

const (
	PaneTasks    Pane = "Tasks"
	PaneCalendar Pane = "Calendar"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	SwitchPane string
	Add        string
	Palette    string
	Help       string
	Quit       string
}

type EditorField int

const (
	FieldTitle EditorField = iota
	FieldDate
	FieldDescription
)

// EditorState backs both the add form and the inline edit form. TaskID is
// zero while adding.
type EditorState struct {
	Active bool
	Adding bool
	TaskID model.TaskID
	Field  EditorField
	Err    string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	State       *app.State
	Focus       Pane
	CursorID    model.TaskID
	CalCursor   string
	ShowDetail  bool
	Editor      EditorState
	Palette     CommandPaletteState
	HelpVisible bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	LastError   error

	ctx      context.Context
	logger   *zap.Logger
	markdown bool

	titleInput   textinput.Model
	dateInput    textinput.Model
	descArea     textarea.Model
	commandInput textinput.Model
	helpModel    help.Model
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

func NewModel(ctx context.Context, state *app.State, ui config.UI, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := Model{
		State:    state,
		Focus:    PaneTasks,
		ctx:      ctx,
		logger:   logger,
		markdown: ui.RenderMarkdown,
		Keys: GlobalKeyMap{
			SwitchPane: "tab",
			Add:        "a",
			Palette:    "/",
			Help:       "?",
			Quit:       "q",
		},
	}
	m.initBubbleComponents()
	m.CalCursor = m.defaultCalendarCursor()
	m = m.syncCursor()
	return m
}

func (m *Model) initBubbleComponents() {
	m.titleInput = textinput.New()
	m.titleInput.Prompt = ""
	m.titleInput.Placeholder = "title"
	m.titleInput.CharLimit = 256
	m.titleInput.Width = 44

	m.dateInput = textinput.New()
	m.dateInput.Prompt = ""
	m.dateInput.Placeholder = model.DateLayout
	m.dateInput.CharLimit = len(model.DateLayout)
	m.dateInput.Width = 12

	m.descArea = textarea.New()
	m.descArea.SetWidth(50)
	m.descArea.SetHeight(4)
	m.descArea.ShowLineNumbers = false
	m.descArea.Placeholder = "description (markdown)"
	m.descArea.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("ctrl+j"))

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
}
