// Package store owns the session's in-memory event collection. Every
// mutation goes through the API and then re-synchronizes the collection, so
// all views observe the same snapshot after the call resolves.
package store

import (
	"errors"
	"fmt"

	"github.com/campusevents/cli/internal/api"
)

// ErrNotFound is returned when a referenced event is absent from the store.
var ErrNotFound = errors.New("event not found")

// Store is the single owner of the canonical in-memory event collection for
// the session. It is constructed at application start and injected into the
// commands that need it.
type Store struct {
	client *api.Client
	viewer api.User
	events []api.Event
	loaded bool
}

// New builds a store for the given viewer. The viewer may be the zero User
// when nobody is logged in; like/RSVP toggles then fail with an error from
// the backend rather than silently mis-attributing the action.
func New(client *api.Client, viewer api.User) *Store {
	return &Store{client: client, viewer: viewer}
}

// Viewer returns the user the store acts on behalf of.
func (s *Store) Viewer() api.User { return s.viewer }

// Refresh re-fetches the collection from the backend.
func (s *Store) Refresh() error {
	events, err := s.client.ListEvents()
	if err != nil {
		return err
	}
	s.events = events
	s.loaded = true
	return nil
}

// ensureLoaded fetches the collection on first use.
func (s *Store) ensureLoaded() error {
	if s.loaded {
		return nil
	}
	return s.Refresh()
}

// List returns the current snapshot of the collection.
func (s *Store) List() ([]api.Event, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	out := make([]api.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

// Get returns the event with the given ID, or ErrNotFound.
func (s *Store) Get(id int64) (api.Event, error) {
	if err := s.ensureLoaded(); err != nil {
		return api.Event{}, err
	}
	if i := s.index(id); i >= 0 {
		return s.events[i], nil
	}
	// The collection may be stale; ask the backend before giving up.
	event, err := s.client.GetEvent(id)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return api.Event{}, ErrNotFound
		}
		return api.Event{}, err
	}
	s.events = append(s.events, event)
	return event, nil
}

// Create posts a new event and resynchronizes the collection. The created
// event is returned when the backend hands back its ID; otherwise the zero
// Event is returned alongside a nil error and callers fall back to the
// landing view.
func (s *Store) Create(req api.CreateEventRequest) (api.Event, error) {
	if req.CreatorID == "" {
		req.CreatorID = s.viewer.ID
	}
	id, err := s.client.CreateEvent(req)
	if err != nil {
		return api.Event{}, err
	}
	if rerr := s.Refresh(); rerr != nil {
		// The create itself succeeded; surface the event without a snapshot.
		if id != 0 {
			return api.Event{ID: id, Title: req.Title}, nil
		}
		return api.Event{}, nil
	}
	if id == 0 {
		return api.Event{}, nil
	}
	if i := s.index(id); i >= 0 {
		return s.events[i], nil
	}
	return api.Event{ID: id, Title: req.Title}, nil
}

// Update applies a partial edit and resynchronizes the collection.
func (s *Store) Update(id int64, req api.UpdateEventRequest) (api.Event, error) {
	if req.Empty() {
		return api.Event{}, fmt.Errorf("nothing to update")
	}
	if req.UpdaterID == "" {
		req.UpdaterID = s.viewer.ID
	}
	if err := s.client.UpdateEvent(id, req); err != nil {
		return api.Event{}, err
	}
	if err := s.Refresh(); err != nil {
		return api.Event{}, err
	}
	if i := s.index(id); i >= 0 {
		return s.events[i], nil
	}
	return api.Event{}, ErrNotFound
}

// Delete removes an event and resynchronizes the collection.
func (s *Store) Delete(id int64, hard bool) error {
	if err := s.client.DeleteEvent(id, hard); err != nil {
		return err
	}
	return s.Refresh()
}

// ToggleLike flips the viewer's like flag on the event: the local flag and
// counter change first, the matching backend call follows, and a failure
// reverts the local change. On success the counter is reconciled with the
// server's authoritative count.
func (s *Store) ToggleLike(id int64) (api.Event, error) {
	if err := s.ensureLoaded(); err != nil {
		return api.Event{}, err
	}
	i := s.index(id)
	if i < 0 {
		return api.Event{}, ErrNotFound
	}

	prev := s.events[i]
	next := prev
	next.UserLiked = !prev.UserLiked
	if next.UserLiked {
		next.Likes = prev.Likes + 1
	} else if next.Likes = prev.Likes - 1; next.Likes < 0 {
		next.Likes = 0
	}
	s.events[i] = next

	var (
		count int
		err   error
	)
	if next.UserLiked {
		count, err = s.client.Like(id)
	} else {
		count, err = s.client.Unlike(id)
	}
	if err != nil {
		s.events[i] = prev
		return api.Event{}, err
	}

	s.events[i].Likes = count
	return s.events[i], nil
}

// ToggleRsvp flips the viewer's RSVP flag, mirroring ToggleLike: optimistic
// local flip, backend call, revert on failure, adopt the server's RSVP list
// on success.
func (s *Store) ToggleRsvp(id int64) (api.Event, error) {
	if err := s.ensureLoaded(); err != nil {
		return api.Event{}, err
	}
	i := s.index(id)
	if i < 0 {
		return api.Event{}, ErrNotFound
	}

	prev := s.events[i]
	next := prev
	next.UserRsvped = !prev.UserRsvped
	if next.UserRsvped {
		next.RSVPs = append(append([]string(nil), prev.RSVPs...), s.viewer.ID)
	} else {
		next.RSVPs = removeID(prev.RSVPs, s.viewer.ID)
	}
	s.events[i] = next

	var (
		rsvps []string
		err   error
	)
	if next.UserRsvped {
		rsvps, err = s.client.RSVP(id)
	} else {
		rsvps, err = s.client.CancelRSVP(id)
	}
	if err != nil {
		s.events[i] = prev
		return api.Event{}, err
	}

	s.events[i].RSVPs = rsvps
	s.events[i].UserRsvped = containsID(rsvps, s.viewer.ID)
	return s.events[i], nil
}

// CanModify reports whether the viewer may edit or delete the event: the
// viewer must be logged in and either hold the Faculty role or be the
// event's creator.
func (s *Store) CanModify(e api.Event) bool {
	if s.viewer.ID == "" {
		return false
	}
	return s.viewer.Role == api.RoleFaculty || s.viewer.ID == e.CreatorID
}

func (s *Store) index(id int64) int {
	for i := range s.events {
		if s.events[i].ID == id {
			return i
		}
	}
	return -1
}

func removeID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
