package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionFlashes(t *testing.T) {
	sess := &Session{ID: "abc"}

	sess.AddFlash("success", "Login successful!")
	sess.AddFlash("error", "Something broke")

	flashes := sess.PopFlashes()
	assert.Len(t, flashes, 2)
	assert.Equal(t, Flash{Level: "success", Message: "Login successful!"}, flashes[0])
	assert.Equal(t, Flash{Level: "error", Message: "Something broke"}, flashes[1])

	// Flashes are one-shot.
	assert.Empty(t, sess.PopFlashes())
}

func TestSessionLoggedIn(t *testing.T) {
	var nilSess *Session
	assert.False(t, nilSess.LoggedIn())
	assert.False(t, (&Session{ID: "anon"}).LoggedIn())
	assert.True(t, (&Session{ID: "abc", UserID: 42}).LoggedIn())
}
