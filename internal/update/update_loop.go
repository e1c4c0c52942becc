package update

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/taskcal/internal/commands"
	"github.com/sandeepkv93/taskcal/internal/model"
	"github.com/sandeepkv93/taskcal/internal/views"
	"go.uber.org/zap"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	return next.syncCursor(), cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		keyStr := typed.String()
		if keyStr == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Editor.Active {
			return m.handleEditorKey(typed), nil
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}

		switch keyStr {
		case m.Keys.Palette:
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.Status = StatusBar{Text: "command palette active"}
			return m, nil
		case m.Keys.SwitchPane:
			if m.Focus == PaneTasks {
				m.Focus = PaneCalendar
			} else {
				m.Focus = PaneTasks
			}
			return m, nil
		case m.Keys.Add:
			return m.openAddForm(), nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.Status = StatusBar{Text: "help shown"}
			} else {
				m.Status = StatusBar{Text: "help hidden"}
			}
			return m, nil
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Focus == PaneCalendar {
			return m.handleCalendarKey(typed), nil
		}
		return m.handleTaskListKey(typed), nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	}
	return m, nil
}

func (m Model) run(cmd commands.Command) (Model, error) {
	res, err := m.State.Run(m.ctx, cmd)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: describeError(err), IsError: true}
		m.logger.Debug("command failed", zap.String("type", string(cmd.Type)), zap.Error(err))
		return m, err
	}
	m.Status = StatusBar{Text: res.Message}
	return m, nil
}

func describeError(err error) string {
	var se *model.StorageError
	switch {
	case errors.As(err, &se):
		return fmt.Sprintf("changes not saved: %v", se.Err)
	case errors.Is(err, model.ErrValidation):
		return strings.TrimPrefix(err.Error(), model.ErrValidation.Error()+": ")
	default:
		return err.Error()
	}
}

func (m Model) View() string {
	vm := m.State.Project()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	calCursor := ""
	if m.Focus == PaneCalendar {
		calCursor = m.CalCursor
	}
	listCursor := model.TaskID(0)
	if m.Focus == PaneTasks {
		listCursor = m.CursorID
	}

	right := []string{views.RenderTaskList(vm, listCursor)}
	right = appendNonEmpty(right, m.renderEditor())
	if m.ShowDetail {
		right = appendNonEmpty(right, m.renderDetail(vm))
	}
	left := []string{views.RenderCalendar(vm, calCursor)}
	left = appendNonEmpty(left, m.renderHelpIfVisible())

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("taskcal | %s | focus: %s", vm.Month.Title(), strings.ToLower(string(m.Focus))),
		LeftPane:     strings.Join(left, "\n\n"),
		RightPane:    strings.Join(right, "\n\n"),
		LeftFocused:  m.Focus == PaneCalendar,
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Notification: m.renderCommandPalette(),
		Footer: fmt.Sprintf("%s | keys: %s pane | %s add | %s cmd | %s help | %s quit",
			views.RenderSummary(vm.Summary), m.Keys.SwitchPane, m.Keys.Add, m.Keys.Palette, m.Keys.Help, m.Keys.Quit),
	})
}
