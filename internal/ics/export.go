// Package ics serializes events into the iCalendar format so the calendar
// view can be exported into desktop calendar apps.
package ics

import (
	"fmt"
	"io"
	"strings"

	ical "github.com/arran4/golang-ical"

	"github.com/campusevents/cli/internal/api"
)

// uidDomain namespaces generated UIDs so re-imports replace rather than
// duplicate events.
const uidDomain = "campusevents"

// Export writes events as a VCALENDAR. Events with unparseable start dates
// are skipped and reported in the returned count.
func Export(w io.Writer, events []api.Event) (int, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//campusevents//cli//EN")

	written := 0
	for _, e := range events {
		start, err := e.Start()
		if err != nil {
			continue
		}

		ev := cal.AddEvent(fmt.Sprintf("event-%d@%s", e.ID, uidDomain))
		ev.SetSummary(e.Title)
		ev.SetStartAt(start)

		if end, err := e.End(); err == nil && !end.IsZero() {
			ev.SetEndAt(end)
		}
		if e.Location != "" {
			ev.SetLocation(e.Location)
		}
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if cats := e.CategorySet(); len(cats) > 0 {
			ev.SetProperty(ical.ComponentPropertyCategories, strings.Join(cats, ","))
		}
		written++
	}

	if err := cal.SerializeTo(w); err != nil {
		return 0, err
	}
	return written, nil
}
