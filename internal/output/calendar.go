package output

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/campusevents/cli/internal/api"
)

// MonthCalendar renders a month grid with per-day event counts, followed by
// a chronological listing of that month's events. Events whose start date
// cannot be parsed are skipped in the grid but still listed at the end.
func MonthCalendar(events []api.Event, year int, month time.Month) string {
	perDay := make(map[int][]api.Event)
	var unparsed []api.Event
	for _, e := range events {
		t, err := e.Start()
		if err != nil {
			unparsed = append(unparsed, e)
			continue
		}
		if t.Year() != year || t.Month() != month {
			continue
		}
		perDay[t.Day()] = append(perDay[t.Day()], e)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", month, year)
	b.WriteString("Sun   Mon   Tue   Wed   Thu   Fri   Sat\n")

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysIn := first.AddDate(0, 1, -1).Day()

	col := int(first.Weekday())
	b.WriteString(strings.Repeat("      ", col))

	for day := 1; day <= daysIn; day++ {
		cell := fmt.Sprintf("%2d", day)
		if n := len(perDay[day]); n > 0 {
			cell = fmt.Sprintf("%2d*%d", day, n)
		}
		fmt.Fprintf(&b, "%-6s", cell)
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	days := make([]int, 0, len(perDay))
	for d := range perDay {
		days = append(days, d)
	}
	sort.Ints(days)

	if len(days) > 0 {
		b.WriteString("\n")
	}
	for _, d := range days {
		evs := perDay[d]
		sort.Slice(evs, func(i, j int) bool {
			ti, _ := evs[i].Start()
			tj, _ := evs[j].Start()
			return ti.Before(tj)
		})
		for _, e := range evs {
			t, _ := e.Start()
			fmt.Fprintf(&b, "%s %s  #%d %s — %s\n",
				t.Format("Jan 02"), t.Format("15:04"), e.ID, e.Title, e.Location)
		}
	}

	for _, e := range unparsed {
		fmt.Fprintf(&b, "(undated) #%d %s — %s\n", e.ID, e.Title, e.Location)
	}

	return b.String()
}
