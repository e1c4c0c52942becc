package calendar

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/taskcal/internal/model"
)

// Month is a year/month pair. It never carries a day of month, so moving
// between months cannot overflow into the following one.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: invalid month %q", model.ErrValidation, s)
	}
	return MonthOf(t), nil
}

func (m Month) Add(delta int) Month {
	return MonthOf(time.Date(m.Year, m.Month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC))
}

func (m Month) Prev() Month { return m.Add(-1) }
func (m Month) Next() Month { return m.Add(1) }

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

func (m Month) Date(n int) string {
	return model.FormatDate(time.Date(m.Year, m.Month, n, 0, 0, 0, 0, time.UTC))
}

func DaysIn(m Month) int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func FirstWeekday(m Month) int {
	return int(time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Day is one cell of a month grid. Padding cells have zero Number and Date.
type Day struct {
	Number     int
	Date       string
	IsToday    bool
	IsSelected bool
	HasTasks   bool
	IsPadding  bool
}

// BuildMonthGrid emits FirstWeekday(m) padding cells followed by one cell per
// day of m. An empty selected means no date is selected. The tail is not
// padded.
func BuildMonthGrid(m Month, taskDates map[string]bool, today, selected string) []Day {
	lead := FirstWeekday(m)
	n := DaysIn(m)
	out := make([]Day, 0, lead+n)
	for i := 0; i < lead; i++ {
		out = append(out, Day{IsPadding: true})
	}
	for d := 1; d <= n; d++ {
		date := m.Date(d)
		out = append(out, Day{
			Number:     d,
			Date:       date,
			IsToday:    date == today,
			IsSelected: selected != "" && date == selected,
			HasTasks:   taskDates[date],
		})
	}
	return out
}

func Weeks(days []Day) [][]Day {
	rows := make([][]Day, 0, (len(days)+6)/7)
	for start := 0; start < len(days); start += 7 {
		end := start + 7
		if end > len(days) {
			end = len(days)
		}
		rows = append(rows, days[start:end])
	}
	return rows
}
