package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateIconEntry(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		entry := &IconEntry{Name: "acorn", Tags: []string{"nature"}, Categories: []string{"nature"}}
		assert.NoError(t, ValidateIconEntry(entry))
	})

	t.Run("tags and categories may be empty", func(t *testing.T) {
		assert.NoError(t, ValidateIconEntry(&IconEntry{Name: "acorn"}))
	})

	t.Run("nil entry", func(t *testing.T) {
		err := ValidateIconEntry(nil)
		assert.ErrorIs(t, err, ErrInvalidIconEntry)
	})

	t.Run("empty name", func(t *testing.T) {
		err := ValidateIconEntry(&IconEntry{})
		assert.ErrorIs(t, err, ErrInvalidIconEntry)
		assert.ErrorIs(t, err, ErrEmptyIconName)
	})
}

func TestValidateBookmark(t *testing.T) {
	t.Run("valid bookmark", func(t *testing.T) {
		bookmark := &Bookmark{
			Id:        BookmarkID("user-1", "acorn"),
			UserID:    "user-1",
			IconName:  "acorn",
			CreatedAt: time.Now().Add(-time.Minute),
		}
		assert.NoError(t, ValidateBookmark(bookmark))
	})

	t.Run("anonymous bookmark", func(t *testing.T) {
		assert.NoError(t, ValidateBookmark(&Bookmark{IconName: "acorn"}))
	})

	t.Run("nil bookmark", func(t *testing.T) {
		assert.ErrorIs(t, ValidateBookmark(nil), ErrInvalidBookmark)
	})

	t.Run("empty icon name", func(t *testing.T) {
		err := ValidateBookmark(&Bookmark{UserID: "user-1"})
		assert.ErrorIs(t, err, ErrInvalidBookmark)
		assert.ErrorIs(t, err, ErrEmptyIconName)
	})

	t.Run("future timestamp", func(t *testing.T) {
		bookmark := &Bookmark{IconName: "acorn", CreatedAt: time.Now().Add(time.Hour)}
		err := ValidateBookmark(bookmark)
		assert.ErrorIs(t, err, ErrInvalidTimestamp)
	})
}
