package invite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/campusevents/cli/internal/api"
)

func TestSelection(t *testing.T) {
	alice := api.InviteCandidate{ID: "alice", Name: "Alice A"}
	bob := api.InviteCandidate{ID: "bob", Name: "Bob B"}

	t.Run("adding twice keeps one entry", func(t *testing.T) {
		sel := NewSelection()
		assert.True(t, sel.Add(alice))
		assert.False(t, sel.Add(alice))
		assert.Equal(t, 1, sel.Len())
		assert.Equal(t, []string{"alice"}, sel.IDs())
	})

	t.Run("selection order is preserved", func(t *testing.T) {
		sel := NewSelection()
		sel.Add(bob)
		sel.Add(alice)
		assert.Equal(t, []string{"bob", "alice"}, sel.IDs())
		assert.Equal(t, []api.InviteCandidate{bob, alice}, sel.Candidates())
	})

	t.Run("remove deselects", func(t *testing.T) {
		sel := NewSelection()
		sel.Add(alice)
		sel.Add(bob)
		assert.True(t, sel.Remove("alice"))
		assert.False(t, sel.Remove("alice"))
		assert.Equal(t, []string{"bob"}, sel.IDs())
		assert.False(t, sel.Contains("alice"))
	})

	t.Run("clear empties everything", func(t *testing.T) {
		sel := NewSelection()
		sel.Add(alice)
		sel.Add(bob)
		sel.Clear()
		assert.Zero(t, sel.Len())
		assert.Empty(t, sel.IDs())

		// Re-selecting after a clear starts fresh.
		assert.True(t, sel.Add(alice))
		assert.Equal(t, []string{"alice"}, sel.IDs())
	})

	t.Run("blank IDs are ignored", func(t *testing.T) {
		sel := NewSelection()
		assert.False(t, sel.Add(api.InviteCandidate{}))
		assert.Zero(t, sel.Len())
	})
}
