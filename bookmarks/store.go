package bookmarks

import (
	"context"

	"github.com/poiesic/iconsearch/core"
)

// Store persists bookmarks for one scope: the anonymous local store or a
// signed-in user's remote store. Implementations must be safe for
// concurrent use.
type Store interface {
	// List returns every bookmark in the store.
	List(ctx context.Context) ([]*core.Bookmark, error)

	// Add persists a bookmark. Adding an icon that is already bookmarked
	// returns ErrAlreadyBookmarked.
	Add(ctx context.Context, bookmark *core.Bookmark) error

	// Remove deletes the bookmark for an icon. Removing an icon that is
	// not bookmarked returns ErrNotFound.
	Remove(ctx context.Context, iconName string) error

	// Close releases store resources.
	Close() error
}

// Set is a membership view of bookmarked icon names.
type Set map[string]struct{}

// Has reports whether the icon is bookmarked.
func (s Set) Has(iconName string) bool {
	_, ok := s[iconName]
	return ok
}

// NewSet builds a Set from a bookmark list.
func NewSet(marks []*core.Bookmark) Set {
	set := make(Set, len(marks))
	for _, mark := range marks {
		set[mark.IconName] = struct{}{}
	}
	return set
}
