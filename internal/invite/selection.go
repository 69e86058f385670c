// Package invite holds the invitee selection used when authoring a private
// event: an ordered, duplicate-free set of user IDs.
package invite

import "github.com/campusevents/cli/internal/api"

// Selection accumulates invite candidates. Adding an already-selected user
// is a no-op, so duplicates are impossible by construction.
type Selection struct {
	order []api.InviteCandidate
	seen  map[string]bool
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{seen: make(map[string]bool)}
}

// Add selects a candidate. It reports whether the candidate was newly added.
func (s *Selection) Add(c api.InviteCandidate) bool {
	if c.ID == "" || s.seen[c.ID] {
		return false
	}
	s.seen[c.ID] = true
	s.order = append(s.order, c)
	return true
}

// Remove deselects a candidate by ID, reporting whether it was present.
func (s *Selection) Remove(id string) bool {
	if !s.seen[id] {
		return false
	}
	delete(s.seen, id)
	for i, c := range s.order {
		if c.ID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear empties the selection. Switching an event back to public calls this,
// so re-enabling privacy always starts from an empty invite list.
func (s *Selection) Clear() {
	s.order = nil
	s.seen = make(map[string]bool)
}

// Contains reports whether a user is selected.
func (s *Selection) Contains(id string) bool {
	return s.seen[id]
}

// Len returns the number of selected users.
func (s *Selection) Len() int {
	return len(s.order)
}

// IDs returns the selected user IDs in selection order.
func (s *Selection) IDs() []string {
	ids := make([]string, len(s.order))
	for i, c := range s.order {
		ids[i] = c.ID
	}
	return ids
}

// Candidates returns the selected candidates in selection order.
func (s *Selection) Candidates() []api.InviteCandidate {
	out := make([]api.InviteCandidate, len(s.order))
	copy(out, s.order)
	return out
}
