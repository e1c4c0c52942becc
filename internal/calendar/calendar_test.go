package calendar

import (
	"fmt"
	"testing"
	"time"
	_ "time/tzdata"
)

func withLocal(t *testing.T, name string) {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load %s: %v", name, err)
	}
	prev := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = prev })
}

func TestDaysIn(t *testing.T) {
	cases := []struct {
		m    Month
		want int
	}{
		{Month{2024, time.January}, 31},
		{Month{2024, time.February}, 29},
		{Month{2023, time.February}, 28},
		{Month{1900, time.February}, 28},
		{Month{2000, time.February}, 29},
		{Month{2024, time.April}, 30},
		{Month{2024, time.December}, 31},
	}
	for _, tc := range cases {
		if got := DaysIn(tc.m); got != tc.want {
			t.Fatalf("DaysIn(%s) = %d, want %d", tc.m, got, tc.want)
		}
	}
}

func TestNavigationWrapsYear(t *testing.T) {
	jan := Month{2024, time.January}
	if got := jan.Prev(); got != (Month{2023, time.December}) {
		t.Fatalf("prev of %s = %s, want 2023-12", jan, got)
	}
	dec := Month{2024, time.December}
	if got := dec.Next(); got != (Month{2025, time.January}) {
		t.Fatalf("next of %s = %s, want 2025-01", dec, got)
	}
	if got := jan.Add(-13); got != (Month{2022, time.December}) {
		t.Fatalf("jan.Add(-13) = %s, want 2022-12", got)
	}
}

func TestNavigationFromLongMonthLandsOnTarget(t *testing.T) {
	// Starting from the 31st must not skip February.
	m := MonthOf(time.Date(2024, time.January, 31, 12, 0, 0, 0, time.Local))
	if got := m.Next(); got != (Month{2024, time.February}) {
		t.Fatalf("next of Jan 31 = %s, want 2024-02", got)
	}
}

func TestBuildMonthGridPadding(t *testing.T) {
	// May 2024 starts on a Wednesday.
	m := Month{2024, time.May}
	grid := BuildMonthGrid(m, nil, "", "")
	if len(grid) != 3+31 {
		t.Fatalf("expected 34 cells, got %d", len(grid))
	}
	for i := 0; i < 3; i++ {
		if !grid[i].IsPadding || grid[i].Number != 0 || grid[i].Date != "" {
			t.Fatalf("cell %d should be padding: %+v", i, grid[i])
		}
	}
	first := grid[3]
	if first.IsPadding || first.Number != 1 || first.Date != "2024-05-01" {
		t.Fatalf("unexpected first day cell: %+v", first)
	}
	last := grid[len(grid)-1]
	if last.Number != 31 || last.Date != "2024-05-31" {
		t.Fatalf("unexpected last day cell: %+v", last)
	}
}

func TestBuildMonthGridPaddingMatchesWeekdayForEveryMonth(t *testing.T) {
	for year := 2023; year <= 2025; year++ {
		for month := time.January; month <= time.December; month++ {
			m := Month{year, month}
			grid := BuildMonthGrid(m, nil, "", "")
			lead := 0
			for _, d := range grid {
				if !d.IsPadding {
					break
				}
				lead++
			}
			wantLead := int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
			if lead != wantLead {
				t.Fatalf("%s: lead padding %d, want %d", m, lead, wantLead)
			}
			if len(grid)-lead != DaysIn(m) {
				t.Fatalf("%s: %d day cells, want %d", m, len(grid)-lead, DaysIn(m))
			}
		}
	}
}

func TestBuildMonthGridFlags(t *testing.T) {
	m := Month{2024, time.May}
	dates := map[string]bool{"2024-05-02": true, "2024-06-01": true}
	grid := BuildMonthGrid(m, dates, "2024-05-10", "2024-05-02")

	byDate := make(map[string]Day)
	for _, d := range grid {
		if !d.IsPadding {
			byDate[d.Date] = d
		}
	}
	if d := byDate["2024-05-02"]; !d.HasTasks || !d.IsSelected || d.IsToday {
		t.Fatalf("unexpected flags for 05-02: %+v", d)
	}
	if d := byDate["2024-05-10"]; !d.IsToday || d.IsSelected || d.HasTasks {
		t.Fatalf("unexpected flags for 05-10: %+v", d)
	}
	for date, d := range byDate {
		if date != "2024-05-02" && d.HasTasks {
			t.Fatalf("unexpected has-tasks flag on %s", date)
		}
	}
}

func TestBuildMonthGridNoSelection(t *testing.T) {
	grid := BuildMonthGrid(Month{2024, time.May}, nil, "", "")
	for _, d := range grid {
		if d.IsSelected || d.IsToday {
			t.Fatalf("no cell should be flagged: %+v", d)
		}
	}
}

func TestWeeks(t *testing.T) {
	grid := BuildMonthGrid(Month{2024, time.May}, nil, "", "")
	rows := Weeks(grid)
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	if len(rows[4]) != 34-28 {
		t.Fatalf("expected ragged last row of 6, got %d", len(rows[4]))
	}
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("2024-02")
	if err != nil {
		t.Fatalf("parse month: %v", err)
	}
	if m != (Month{2024, time.February}) || m.String() != "2024-02" || m.Title() != "February 2024" {
		t.Fatalf("unexpected month: %+v", m)
	}
	if _, err := ParseMonth("2024-13"); err == nil {
		t.Fatal("expected error for month 13")
	}
}

func TestGridDatesInMidnightDSTZones(t *testing.T) {
	for _, zone := range []string{"America/Havana", "America/Santiago", "America/Asuncion", "America/Sao_Paulo"} {
		t.Run(zone, func(t *testing.T) {
			withLocal(t, zone)
			for year := 1990; year <= 2030; year++ {
				for month := time.January; month <= time.December; month++ {
					m := Month{year, month}
					for _, d := range BuildMonthGrid(m, nil, "", "") {
						if d.IsPadding {
							continue
						}
						want := fmt.Sprintf("%04d-%02d-%02d", year, int(month), d.Number)
						if d.Date != want {
							t.Fatalf("day %d of %s has date %s, want %s", d.Number, m, d.Date, want)
						}
					}
				}
			}
		})
	}
}
