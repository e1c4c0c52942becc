package navigation

import "github.com/sandeepkv93/taskcal/internal/calendar"

// State is independent of the task collection. The displayed month and the
// selected date move separately: browsing months never clears the filter.
type State struct {
	Month    calendar.Month
	selected string
}

func New(month calendar.Month, selected string) State {
	return State{Month: month, selected: selected}
}

func (s *State) Navigate(delta int) {
	s.Month = s.Month.Add(delta)
}

func (s *State) SelectDate(date string) {
	if date == s.selected {
		s.selected = ""
		return
	}
	s.selected = date
}

func (s *State) Clear() { s.selected = "" }

func (s State) Selected() (string, bool) {
	return s.selected, s.selected != ""
}
