package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession(t *testing.T) {
	t.Run("starts anonymous", func(t *testing.T) {
		s := NewSession()
		assert.Empty(t, s.UserID())
		assert.False(t, s.SignedIn())
	})

	t.Run("sign in and out", func(t *testing.T) {
		s := NewSession()
		s.SignIn("user-1")
		assert.Equal(t, "user-1", s.UserID())
		assert.True(t, s.SignedIn())

		s.SignOut()
		assert.Empty(t, s.UserID())
		assert.False(t, s.SignedIn())
	})

	t.Run("notifies on change", func(t *testing.T) {
		s := NewSession()
		var seen []string
		s.OnChange(func(userID string) { seen = append(seen, userID) })

		s.SignIn("user-1")
		s.SignOut()
		assert.Equal(t, []string{"user-1", ""}, seen)
	})

	t.Run("repeated sign-in is a no-op", func(t *testing.T) {
		s := NewSession()
		calls := 0
		s.OnChange(func(string) { calls++ })

		s.SignIn("user-1")
		s.SignIn("user-1")
		assert.Equal(t, 1, calls)
	})

	t.Run("sign-out while anonymous is a no-op", func(t *testing.T) {
		s := NewSession()
		calls := 0
		s.OnChange(func(string) { calls++ })

		s.SignOut()
		assert.Equal(t, 0, calls)
	})
}
