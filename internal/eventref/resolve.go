// Package eventref resolves the event argument commands accept: a numeric
// ID is passed through, anything else is matched against event titles.
package eventref

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/campusevents/cli/internal/api"
	"github.com/campusevents/cli/internal/store"
)

// Resolve converts a command-line event reference to an event ID. A numeric
// reference is returned as-is; otherwise the store's collection is searched
// for an exact title match first, then a unique case-insensitive substring
// match.
func Resolve(st *store.Store, ref string) (int64, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return 0, fmt.Errorf("empty event reference")
	}

	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		return id, nil
	}

	events, err := st.List()
	if err != nil {
		return 0, fmt.Errorf("listing events: %w", err)
	}

	for _, e := range events {
		if strings.EqualFold(e.Title, ref) {
			return e.ID, nil
		}
	}

	var matches []api.Event
	lowered := strings.ToLower(ref)
	for _, e := range events {
		if strings.Contains(strings.ToLower(e.Title), lowered) {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 0:
		return 0, fmt.Errorf("no event matches %q", ref)
	case 1:
		return matches[0].ID, nil
	}

	names := make([]string, len(matches))
	for i, e := range matches {
		names[i] = fmt.Sprintf("%d (%s)", e.ID, e.Title)
	}
	return 0, fmt.Errorf("%q is ambiguous, matches: %s", ref, strings.Join(names, ", "))
}
