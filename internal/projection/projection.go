package projection

import (
	"sort"

	"github.com/sandeepkv93/taskcal/internal/calendar"
	"github.com/sandeepkv93/taskcal/internal/model"
	"github.com/sandeepkv93/taskcal/internal/navigation"
)

type EmptyKind int

const (
	EmptyNone EmptyKind = iota
	// EmptyNoTasks: the collection itself is empty.
	EmptyNoTasks
	// EmptyNoTasksOnDate: tasks exist but none on the selected date.
	EmptyNoTasksOnDate
)

func (k EmptyKind) String() string {
	switch k {
	case EmptyNoTasks:
		return "no tasks registered"
	case EmptyNoTasksOnDate:
		return "no tasks for that specific date"
	default:
		return ""
	}
}

type Item struct {
	ID          model.TaskID
	Title       string
	Description string
	Completed   bool
	Editing     bool
}

type Group struct {
	Date  string
	Items []Item
}

type Summary struct {
	Total     int
	Completed int
	Shown     int
}

type ViewModel struct {
	Month    calendar.Month
	Today    string
	Selected string
	Filtered bool
	Groups   []Group
	Empty    EmptyKind
	Grid     []calendar.Day
	Summary  Summary
}

// Project builds the view model. Groups are ordered by date, newest first,
// and keep store order inside a date. The calendar marks days from every
// task, regardless of the active filter.
func Project(entries []model.Entry, nav navigation.State, today string) ViewModel {
	selected, filtered := nav.Selected()
	vm := ViewModel{
		Month:    nav.Month,
		Today:    today,
		Selected: selected,
		Filtered: filtered,
		Groups:   []Group{},
	}

	taskDates := make(map[string]bool, len(entries))
	byDate := make(map[string][]Item)
	order := make([]string, 0)
	for _, e := range entries {
		taskDates[e.Date] = true
		vm.Summary.Total++
		if e.Completed {
			vm.Summary.Completed++
		}
		if filtered && e.Date != selected {
			continue
		}
		if _, ok := byDate[e.Date]; !ok {
			order = append(order, e.Date)
		}
		byDate[e.Date] = append(byDate[e.Date], Item{
			ID:          e.ID,
			Title:       e.Title,
			Description: e.Description,
			Completed:   e.Completed,
			Editing:     e.UI.Editing,
		})
		vm.Summary.Shown++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return model.CompareDates(order[i], order[j]) > 0
	})
	for _, date := range order {
		vm.Groups = append(vm.Groups, Group{Date: date, Items: byDate[date]})
	}

	// An active filter over an empty collection still reports the date.
	switch {
	case vm.Summary.Shown > 0:
		vm.Empty = EmptyNone
	case filtered:
		vm.Empty = EmptyNoTasksOnDate
	default:
		vm.Empty = EmptyNoTasks
	}

	vm.Grid = calendar.BuildMonthGrid(nav.Month, taskDates, today, selected)
	return vm
}

func (vm ViewModel) Find(id model.TaskID) (Item, string, bool) {
	for _, g := range vm.Groups {
		for _, it := range g.Items {
			if it.ID == id {
				return it, g.Date, true
			}
		}
	}
	return Item{}, "", false
}

func (vm ViewModel) Items() []Item {
	out := make([]Item, 0, vm.Summary.Shown)
	for _, g := range vm.Groups {
		out = append(out, g.Items...)
	}
	return out
}
