package store

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusevents/cli/internal/api"
)

// fakeBackend is a tiny in-memory stand-in for the events API, covering the
// endpoints the store drives.
type fakeBackend struct {
	events   map[int64]*api.Event
	nextID   int64
	likes    map[int64]map[string]bool
	rsvps    map[int64][]string
	failMut  bool // fail all like/rsvp mutations
	listHits int
}

func newFakeBackend(events ...api.Event) *fakeBackend {
	b := &fakeBackend{
		events: make(map[int64]*api.Event),
		nextID: 100,
		likes:  make(map[int64]map[string]bool),
		rsvps:  make(map[int64][]string),
	}
	for i := range events {
		e := events[i]
		b.events[e.ID] = &e
		b.rsvps[e.ID] = append([]string(nil), e.RSVPs...)
	}
	return b
}

func (b *fakeBackend) handler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

		switch {
		case r.URL.Path == "/events" && r.Method == http.MethodGet:
			b.listHits++
			out := make([]api.Event, 0, len(b.events))
			for _, e := range b.events {
				view := *e
				view.RSVPs = b.rsvps[e.ID]
				if uid := r.URL.Query().Get("user_id"); uid != "" {
					view.UserLiked = b.likes[e.ID][uid]
					view.UserRsvped = contains(b.rsvps[e.ID], uid)
				}
				out = append(out, view)
			}
			_ = json.NewEncoder(w).Encode(out)

		case r.URL.Path == "/events" && r.Method == http.MethodPost:
			var req api.CreateEventRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			b.nextID++
			b.events[b.nextID] = &api.Event{
				ID: b.nextID, Title: req.Title, Description: req.Description,
				Location: req.Location, StartDate: req.StartDate,
				CreatorID: req.CreatorID, Categories: req.Categories,
				IsPrivate: req.IsPrivate, InvitedUserIDs: req.InvitedUserIDs,
				ImageURL: req.ImageURL,
			}
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(map[string]int64{"eventID": b.nextID})

		case len(parts) == 2 && parts[0] == "events":
			id, _ := strconv.ParseInt(parts[1], 10, 64)
			e, ok := b.events[id]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Event not found"})
				return
			}
			switch r.Method {
			case http.MethodGet:
				_ = json.NewEncoder(w).Encode(*e)
			case http.MethodPut:
				var req api.UpdateEventRequest
				_ = json.NewDecoder(r.Body).Decode(&req)
				if req.UpdaterID == "" {
					w.WriteHeader(http.StatusForbidden)
					_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Not authorised"})
					return
				}
				if req.Title != nil {
					e.Title = *req.Title
				}
				if req.Location != nil {
					e.Location = *req.Location
				}
				_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
			case http.MethodDelete:
				delete(b.events, id)
				_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
			}

		case len(parts) == 3 && parts[0] == "events":
			if b.failMut {
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"detail": "boom"})
				return
			}
			id, _ := strconv.ParseInt(parts[1], 10, 64)
			var body struct {
				UserID string `json:"user_id"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)

			switch parts[2] {
			case "like":
				if b.likes[id] == nil {
					b.likes[id] = make(map[string]bool)
				}
				if r.Method == http.MethodPost {
					b.likes[id][body.UserID] = true
				} else {
					delete(b.likes[id], body.UserID)
				}
				_ = json.NewEncoder(w).Encode(map[string]int{"likes": len(b.likes[id])})
			case "rsvp":
				if r.Method == http.MethodPost {
					if !contains(b.rsvps[id], body.UserID) {
						b.rsvps[id] = append(b.rsvps[id], body.UserID)
					}
				} else {
					b.rsvps[id] = remove(b.rsvps[id], body.UserID)
				}
				_ = json.NewEncoder(w).Encode(map[string][]string{"rsvps": b.rsvps[id]})
			}

		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func newTestStore(t *testing.T, backend *fakeBackend, viewer api.User) *Store {
	t.Helper()
	server := httptest.NewServer(backend.handler(t))
	t.Cleanup(server.Close)
	return New(api.NewClient(server.URL, viewer.ID), viewer)
}

var viewer = api.User{ID: "alice", Email: "alice@bears.unco.edu", Role: "Student"}

func TestStore_ListAndGet(t *testing.T) {
	backend := newFakeBackend(
		api.Event{ID: 1, Title: "Fall Mixer", CreatorID: "alice"},
		api.Event{ID: 2, Title: "Chess Night", CreatorID: "bob"},
	)
	st := newTestStore(t, backend, viewer)

	events, err := st.List()
	require.NoError(t, err)
	assert.Len(t, events, 2)

	e, err := st.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "Chess Night", e.Title)

	_, err = st.Get(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_CreateResyncs(t *testing.T) {
	backend := newFakeBackend()
	st := newTestStore(t, backend, viewer)

	created, err := st.Create(api.CreateEventRequest{
		Title: "Fall Mixer", Description: "Join us!",
		StartDate: "2025-09-01T18:00", Location: "Quad",
		Categories: []string{"Performance"},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "alice", created.CreatorID, "creator defaults to the viewer")

	events, err := st.List()
	require.NoError(t, err)
	assert.Len(t, events, 1, "all views observe the new event")
}

func TestStore_Update(t *testing.T) {
	backend := newFakeBackend(api.Event{ID: 5, Title: "Old", CreatorID: "alice"})
	st := newTestStore(t, backend, viewer)

	title := "New"
	updated, err := st.Update(5, api.UpdateEventRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)

	_, err = st.Update(5, api.UpdateEventRequest{})
	assert.Error(t, err, "an empty update is rejected locally")
}

func TestStore_Delete(t *testing.T) {
	backend := newFakeBackend(api.Event{ID: 5, Title: "Doomed", CreatorID: "alice"})
	st := newTestStore(t, backend, viewer)

	require.NoError(t, st.Delete(5, false))

	events, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestStore_ToggleLike(t *testing.T) {
	t.Run("toggling twice is a round trip", func(t *testing.T) {
		backend := newFakeBackend(api.Event{ID: 1, Title: "Fall Mixer", CreatorID: "bob"})
		st := newTestStore(t, backend, viewer)

		before, err := st.Get(1)
		require.NoError(t, err)

		liked, err := st.ToggleLike(1)
		require.NoError(t, err)
		assert.True(t, liked.UserLiked)
		assert.Equal(t, before.Likes+1, liked.Likes)

		back, err := st.ToggleLike(1)
		require.NoError(t, err)
		assert.Equal(t, before.UserLiked, back.UserLiked)
		assert.Equal(t, before.Likes, back.Likes)
	})

	t.Run("failure reverts the local flip", func(t *testing.T) {
		backend := newFakeBackend(api.Event{ID: 1, Title: "Fall Mixer", CreatorID: "bob"})
		backend.failMut = true
		st := newTestStore(t, backend, viewer)

		_, err := st.ToggleLike(1)
		require.Error(t, err)

		e, err := st.Get(1)
		require.NoError(t, err)
		assert.False(t, e.UserLiked, "flag reverted")
		assert.Zero(t, e.Likes, "counter reverted")
	})

	t.Run("unknown event", func(t *testing.T) {
		st := newTestStore(t, newFakeBackend(), viewer)
		_, err := st.ToggleLike(77)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStore_ToggleRsvp(t *testing.T) {
	t.Run("toggling twice is a round trip", func(t *testing.T) {
		backend := newFakeBackend(api.Event{ID: 1, Title: "Fall Mixer", CreatorID: "bob", RSVPs: []string{"bob"}})
		st := newTestStore(t, backend, viewer)

		on, err := st.ToggleRsvp(1)
		require.NoError(t, err)
		assert.True(t, on.UserRsvped)
		assert.Equal(t, 2, on.RSVPCount())

		off, err := st.ToggleRsvp(1)
		require.NoError(t, err)
		assert.False(t, off.UserRsvped)
		assert.Equal(t, 1, off.RSVPCount())
	})

	t.Run("adopts the server's authoritative list", func(t *testing.T) {
		backend := newFakeBackend(api.Event{ID: 1, Title: "Fall Mixer", CreatorID: "bob"})
		st := newTestStore(t, backend, viewer)

		on, err := st.ToggleRsvp(1)
		require.NoError(t, err)
		assert.Equal(t, []string{"alice"}, on.RSVPs)
	})

	t.Run("failure reverts the local flip", func(t *testing.T) {
		backend := newFakeBackend(api.Event{ID: 1, Title: "Fall Mixer", CreatorID: "bob"})
		backend.failMut = true
		st := newTestStore(t, backend, viewer)

		_, err := st.ToggleRsvp(1)
		require.Error(t, err)

		e, err := st.Get(1)
		require.NoError(t, err)
		assert.False(t, e.UserRsvped)
		assert.Zero(t, e.RSVPCount())
	})
}

func TestStore_CanModify(t *testing.T) {
	mine := api.Event{ID: 1, CreatorID: "alice"}
	theirs := api.Event{ID: 2, CreatorID: "bob"}

	t.Run("creator can modify their event", func(t *testing.T) {
		st := New(nil, viewer)
		assert.True(t, st.CanModify(mine))
		assert.False(t, st.CanModify(theirs))
	})

	t.Run("faculty can modify any event", func(t *testing.T) {
		st := New(nil, api.User{ID: "prof", Role: api.RoleFaculty})
		assert.True(t, st.CanModify(mine))
		assert.True(t, st.CanModify(theirs))
	})

	t.Run("anonymous viewers can modify nothing", func(t *testing.T) {
		st := New(nil, api.User{})
		assert.False(t, st.CanModify(mine))
	})
}
