package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	AddTask         func(AddTaskArgs) (Result, error)
	ToggleCompleted func(ToggleCompletedArgs) (Result, error)
	SetEditMode     func(SetEditModeArgs) (Result, error)
	UpdateTask      func(UpdateTaskArgs) (Result, error)
	DeleteTask      func(DeleteTaskArgs) (Result, error)
	Navigate        func(NavigateArgs) (Result, error)
	SelectDate      func(SelectDateArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAddTask:
		if cmd.AddTask == nil {
			return Result{}, missingArgs(cmd.Type)
		}
		if handlers.AddTask == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.AddTask(*cmd.AddTask)
	case TypeToggleCompleted:
		if cmd.ToggleCompleted == nil {
			return Result{}, missingArgs(cmd.Type)
		}
		if handlers.ToggleCompleted == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.ToggleCompleted(*cmd.ToggleCompleted)
	case TypeSetEditMode:
		if cmd.SetEditMode == nil {
			return Result{}, missingArgs(cmd.Type)
		}
		if handlers.SetEditMode == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.SetEditMode(*cmd.SetEditMode)
	case TypeUpdateTask:
		if cmd.UpdateTask == nil {
			return Result{}, missingArgs(cmd.Type)
		}
		if handlers.UpdateTask == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.UpdateTask(*cmd.UpdateTask)
	case TypeDeleteTask:
		if cmd.DeleteTask == nil {
			return Result{}, missingArgs(cmd.Type)
		}
		if handlers.DeleteTask == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.DeleteTask(*cmd.DeleteTask)
	case TypeNavigate:
		if cmd.Navigate == nil {
			return Result{}, missingArgs(cmd.Type)
		}
		if handlers.Navigate == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.Navigate(*cmd.Navigate)
	case TypeSelectDate:
		if cmd.SelectDate == nil {
			return Result{}, missingArgs(cmd.Type)
		}
		if handlers.SelectDate == nil {
			return Result{}, missingHandler(cmd.Type)
		}
		return handlers.SelectDate(*cmd.SelectDate)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func missingHandler(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}

func missingArgs(t Type) error {
	return &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s command has no arguments", t)}
}
