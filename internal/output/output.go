package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/campusevents/cli/internal/api"
)

// JSON prints v as indented JSON to stdout.
func JSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// EventTable prints a slice of events as a human-readable table.
func EventTable(events []api.Event) {
	if len(events) == 0 {
		fmt.Println("No events found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tWHEN\tLOCATION\tCATEGORIES\tLIKES\tRSVPS\tACCESS")

	for _, e := range events {
		access := "public"
		if e.Private() {
			access = "private"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			e.ID, e.Title, FormatWhen(e.StartDate), e.Location,
			strings.Join(e.CategorySet(), ","), e.Likes, e.RSVPCount(), access)
	}
	w.Flush()
}

// EventDetail prints a single event's details. The description is linkified;
// edit/delete affordances are shown only when canModify is true.
func EventDetail(e api.Event, canModify bool) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Title:\t%s\n", e.Title)
	fmt.Fprintf(w, "ID:\t%d\n", e.ID)
	if t, err := e.Start(); err == nil {
		fmt.Fprintf(w, "When:\t%s (%s)\n", FormatWhen(e.StartDate), RelativeTime(t))
	} else {
		fmt.Fprintf(w, "When:\t%s\n", FormatWhen(e.StartDate))
	}
	if e.EndDate != "" {
		fmt.Fprintf(w, "Until:\t%s\n", FormatWhen(e.EndDate))
	}
	fmt.Fprintf(w, "Location:\t%s\n", e.Location)
	fmt.Fprintf(w, "Categories:\t%s\n", strings.Join(e.CategorySet(), ", "))
	if e.Price > 0 {
		fmt.Fprintf(w, "Price:\t$%.2f\n", e.Price)
	} else {
		fmt.Fprintf(w, "Price:\tfree\n")
	}
	if e.Capacity != nil {
		fmt.Fprintf(w, "Capacity:\t%d\n", *e.Capacity)
	}
	if e.RSVPRequired {
		fmt.Fprintf(w, "RSVP:\trequired\n")
	}
	if e.Private() {
		fmt.Fprintf(w, "Access:\tprivate (%d invited)\n", len(e.InvitedUserIDs))
	}
	if e.ImageURL != "" {
		fmt.Fprintf(w, "Banner:\t%s\n", e.ImageURL)
	}
	fmt.Fprintf(w, "Creator:\t%s\n", e.CreatorID)

	liked := ""
	if e.UserLiked {
		liked = " (including you)"
	}
	rsvped := ""
	if e.UserRsvped {
		rsvped = " (including you)"
	}
	fmt.Fprintf(w, "Likes:\t%d%s\n", e.Likes, liked)
	fmt.Fprintf(w, "RSVPs:\t%d%s\n", e.RSVPCount(), rsvped)
	w.Flush()

	fmt.Println()
	fmt.Println(RenderLinkified(e.Description, hyperlinksEnabled()))

	if canModify {
		fmt.Println()
		fmt.Printf("You can modify this event:\n")
		fmt.Printf("  campusevents edit %d --title ...\n", e.ID)
		fmt.Printf("  campusevents rm %d\n", e.ID)
	}
}

// EventPreview prints the live-preview banner shown before a create/edit is
// confirmed. It never touches the network.
func EventPreview(req api.CreateEventRequest) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "--- preview ---")
	fmt.Fprintf(w, "Title:\t%s\n", req.Title)
	fmt.Fprintf(w, "When:\t%s\n", FormatWhen(req.StartDate))
	fmt.Fprintf(w, "Location:\t%s\n", req.Location)
	fmt.Fprintf(w, "Categories:\t%s\n", strings.Join(req.Categories, ", "))
	fmt.Fprintf(w, "Banner:\t%s\n", req.ImageURL)
	if req.IsPrivate {
		fmt.Fprintf(w, "Access:\tprivate (%d invited)\n", len(req.InvitedUserIDs))
	}
	fmt.Fprintln(w, "---------------")
	w.Flush()
}

// CandidateTable prints invite candidates.
func CandidateTable(users []api.InviteCandidate) {
	if len(users) == 0 {
		fmt.Println("No matching users.")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\n", u.ID, u.Name)
	}
	w.Flush()
}

// UserInfo prints the session user's details.
func UserInfo(u api.User) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%s\n", u.ID)
	if u.Name != "" {
		fmt.Fprintf(w, "Name:\t%s\n", u.Name)
	}
	fmt.Fprintf(w, "Email:\t%s\n", u.Email)
	fmt.Fprintf(w, "Role:\t%s\n", u.Role)
	w.Flush()
}

// FormatWhen renders an event timestamp compactly, falling back to the raw
// string when it cannot be parsed.
func FormatWhen(raw string) string {
	t, err := api.ParseEventTime(raw)
	if err != nil {
		return raw
	}
	return t.Format("Mon Jan 2 2006 15:04")
}

// RelativeTime formats a timestamp relative to now (e.g. "in 3d", "2h ago").
func RelativeTime(t time.Time) string {
	d := time.Since(t)
	past := d >= 0
	if !past {
		d = -d
	}

	var span string
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		span = fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		span = fmt.Sprintf("%dh", int(d.Hours()))
	case d < 30*24*time.Hour:
		span = fmt.Sprintf("%dd", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}

	if past {
		return span + " ago"
	}
	return "in " + span
}

// hyperlinksEnabled reports whether stdout is a terminal that can be
// expected to render OSC 8 hyperlinks.
func hyperlinksEnabled() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0 && os.Getenv("TERM") != "dumb"
}
