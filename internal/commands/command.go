package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sandeepkv93/taskcal/internal/model"
)

type Type string

const (
	TypeAddTask         Type = "add"
	TypeToggleCompleted Type = "toggle"
	TypeSetEditMode     Type = "edit"
	TypeUpdateTask      Type = "update"
	TypeDeleteTask      Type = "delete"
	TypeNavigate        Type = "nav"
	TypeSelectDate      Type = "select"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddTaskArgs struct {
	Date        string
	Title       string
	Description string
}

type ToggleCompletedArgs struct {
	ID model.TaskID
}

type SetEditModeArgs struct {
	ID model.TaskID
	On bool
}

type UpdateTaskArgs struct {
	ID          model.TaskID
	Title       string
	Description string
}

type DeleteTaskArgs struct {
	ID model.TaskID
}

type NavigateArgs struct {
	Delta int
}

type SelectDateArgs struct {
	Date  string
	Today bool
}

// Command is one user intent. Exactly one args pointer matching Type is set.
type Command struct {
	Type            Type
	Raw             string
	AddTask         *AddTaskArgs
	ToggleCompleted *ToggleCompletedArgs
	SetEditMode     *SetEditModeArgs
	UpdateTask      *UpdateTaskArgs
	DeleteTask      *DeleteTaskArgs
	Navigate        *NavigateArgs
	SelectDate      *SelectDateArgs
}

func AddTask(date, title, description string) Command {
	return Command{Type: TypeAddTask, AddTask: &AddTaskArgs{Date: date, Title: title, Description: description}}
}

func ToggleCompleted(id model.TaskID) Command {
	return Command{Type: TypeToggleCompleted, ToggleCompleted: &ToggleCompletedArgs{ID: id}}
}

func SetEditMode(id model.TaskID, on bool) Command {
	return Command{Type: TypeSetEditMode, SetEditMode: &SetEditModeArgs{ID: id, On: on}}
}

func UpdateTask(id model.TaskID, title, description string) Command {
	return Command{Type: TypeUpdateTask, UpdateTask: &UpdateTaskArgs{ID: id, Title: title, Description: description}}
}

func DeleteTask(id model.TaskID) Command {
	return Command{Type: TypeDeleteTask, DeleteTask: &DeleteTaskArgs{ID: id}}
}

func Navigate(delta int) Command {
	return Command{Type: TypeNavigate, Navigate: &NavigateArgs{Delta: delta}}
}

func SelectDate(date string) Command {
	return Command{Type: TypeSelectDate, SelectDate: &SelectDateArgs{Date: date}}
}

// Parse reads a one-line command:
//
//	add [YYYY-MM-DD] <title> [| <description>]
//	toggle <id> | edit <id> | cancel <id> | delete <id>
//	update <id> <title> [| <description>]
//	prev | next | nav <±n>
//	select <YYYY-MM-DD> | select today | today
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	head, rest, _ := strings.Cut(raw, " ")
	head = strings.ToLower(head)
	rest = strings.TrimSpace(rest)

	var (
		cmd Command
		err error
	)
	switch head {
	case "add":
		cmd, err = parseAdd(rest)
	case "toggle", "done":
		cmd, err = withID(head, rest, ToggleCompleted)
	case "edit":
		cmd, err = withID(head, rest, func(id model.TaskID) Command { return SetEditMode(id, true) })
	case "cancel":
		cmd, err = withID(head, rest, func(id model.TaskID) Command { return SetEditMode(id, false) })
	case "update":
		cmd, err = parseUpdate(rest)
	case "delete", "rm":
		cmd, err = withID(head, rest, DeleteTask)
	case "prev":
		cmd = Navigate(-1)
	case "next":
		cmd = Navigate(1)
	case "nav":
		cmd, err = parseNavigate(rest)
	case "select":
		cmd, err = parseSelect(rest)
	case "today":
		cmd = Command{Type: TypeSelectDate, SelectDate: &SelectDateArgs{Today: true}}
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
	if err != nil {
		return Command{}, err
	}
	cmd.Raw = input
	return cmd, nil
}

func parseAdd(rest string) (Command, error) {
	body, description := splitDescription(rest)
	date := ""
	if first, tail, ok := strings.Cut(body, " "); ok && model.IsValidDate(first) {
		date, body = first, strings.TrimSpace(tail)
	} else if model.IsValidDate(body) {
		date, body = body, ""
	}
	if body == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return AddTask(date, body, description), nil
}

func parseUpdate(rest string) (Command, error) {
	idText, tail, _ := strings.Cut(rest, " ")
	id, err := parseID("update", idText)
	if err != nil {
		return Command{}, err
	}
	title, description := splitDescription(strings.TrimSpace(tail))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "update requires a title"}
	}
	return UpdateTask(id, title, description), nil
}

func parseNavigate(rest string) (Command, error) {
	delta, err := strconv.Atoi(strings.TrimPrefix(rest, "+"))
	if err != nil || delta == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "nav requires a non-zero month offset"}
	}
	return Navigate(delta), nil
}

func parseSelect(rest string) (Command, error) {
	if strings.EqualFold(rest, "today") {
		return Command{Type: TypeSelectDate, SelectDate: &SelectDateArgs{Today: true}}, nil
	}
	if !model.IsValidDate(rest) {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("select requires a YYYY-MM-DD date, got %q", rest)}
	}
	return SelectDate(rest), nil
}

func withID(head, rest string, build func(model.TaskID) Command) (Command, error) {
	id, err := parseID(head, rest)
	if err != nil {
		return Command{}, err
	}
	return build(id), nil
}

func parseID(head, text string) (model.TaskID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a numeric task id", head)}
	}
	return model.TaskID(v), nil
}

func splitDescription(s string) (string, string) {
	title, description, _ := strings.Cut(s, "|")
	return strings.TrimSpace(title), strings.TrimPrefix(description, " ")
}
