package views

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sandeepkv93/taskcal/internal/calendar"
	"github.com/sandeepkv93/taskcal/internal/model"
	"github.com/sandeepkv93/taskcal/internal/navigation"
	"github.com/sandeepkv93/taskcal/internal/projection"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func sampleView(selected string) projection.ViewModel {
	entries := []model.Entry{
		{Task: model.Task{ID: 1, Date: "2024-05-01", Title: "A"}},
		{Task: model.Task{ID: 2, Date: "2024-05-01", Title: "B", Completed: true, Description: "notes"}, UI: model.UIState{Editing: true}},
		{Task: model.Task{ID: 3, Date: "2024-05-02", Title: "C"}},
	}
	nav := navigation.New(calendar.Month{Year: 2024, Month: time.May}, selected)
	return projection.Project(entries, nav, "2024-05-02")
}

func TestRenderCalendarLayout(t *testing.T) {
	out := RenderCalendar(sampleView(""), "")
	lines := strings.Split(out, "\n")
	if lines[0] != "May 2024" {
		t.Fatalf("title = %q", lines[0])
	}
	if lines[1] != weekdayHeader {
		t.Fatalf("weekday header = %q", lines[1])
	}
	// May 2024 starts on a Wednesday.
	if !strings.HasPrefix(lines[2], "          1  2  3  4") {
		t.Fatalf("first week = %q", lines[2])
	}
	if !strings.HasSuffix(lines[6], "26 27 28 29 30 31") {
		t.Fatalf("last week = %q", lines[6])
	}
	if !strings.Contains(out, "filter: all dates") {
		t.Fatalf("expected unfiltered marker in %q", out)
	}
}

func TestRenderCalendarShowsFilter(t *testing.T) {
	out := RenderCalendar(sampleView("2024-05-01"), "2024-05-03")
	if !strings.Contains(out, "filter: 2024-05-01") {
		t.Fatalf("expected filter line in %q", out)
	}
}

func TestRenderTaskListGroups(t *testing.T) {
	out := RenderTaskList(sampleView(""), 1)
	newer := strings.Index(out, "Thursday 2024-05-02 (today)")
	older := strings.Index(out, "Wednesday 2024-05-01")
	if newer < 0 || older < 0 || newer > older {
		t.Fatalf("expected newest group first:\n%s", out)
	}
	for _, want := range []string{"> [ ] A", "  [x] B", "(editing)", "  [ ] C"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestRenderTaskListEmptyMessages(t *testing.T) {
	empty := projection.Project(nil, navigation.New(calendar.Month{Year: 2024, Month: time.May}, ""), "")
	if out := RenderTaskList(empty, 0); !strings.Contains(out, "(no tasks registered)") {
		t.Fatalf("unexpected empty list: %q", out)
	}
	if out := RenderTaskList(sampleView("2024-05-20"), 0); !strings.Contains(out, "(no tasks for that specific date: 2024-05-20)") {
		t.Fatalf("unexpected filtered list: %q", out)
	}
}

func TestRenderDetail(t *testing.T) {
	vm := sampleView("")
	item, date, ok := vm.Find(2)
	out := RenderDetail(DetailData{Item: item, Date: date, Found: ok})
	for _, want := range []string{"id: 2", "date: 2024-05-01", "status: done", "notes"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
	if out := RenderDetail(DetailData{}); !strings.Contains(out, "no task selected") {
		t.Fatalf("unexpected detail: %q", out)
	}
}

func TestRenderEditorShowsError(t *testing.T) {
	if RenderEditor(EditorData{}) != "" {
		t.Fatal("inactive editor should render nothing")
	}
	out := RenderEditor(EditorData{Active: true, Adding: true, DateView: "2024-05-01", ErrorText: "title is required"})
	if !strings.Contains(out, "new task:") || !strings.Contains(out, "error: title is required") {
		t.Fatalf("unexpected editor: %q", out)
	}
}

func TestRenderSummaryAndPalette(t *testing.T) {
	if got := RenderSummary(projection.Summary{Total: 3, Completed: 1, Shown: 2}); got != "3 tasks, 1 done, 2 shown" {
		t.Fatalf("summary = %q", got)
	}
	if got := RenderCommandPalette(true, "next"); got != "command: /next" {
		t.Fatalf("palette = %q", got)
	}
	if RenderCommandPalette(false, "next") != "" {
		t.Fatal("inactive palette should render nothing")
	}
}

func TestRenderMarkdownFallsBackOnBlank(t *testing.T) {
	if RenderMarkdown("   ") != "" {
		t.Fatal("blank markdown should render nothing")
	}
	if out := RenderMarkdown("**bold** text"); !strings.Contains(out, "bold") {
		t.Fatalf("markdown lost content: %q", out)
	}
}
