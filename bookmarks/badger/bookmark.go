package badger

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"github.com/poiesic/iconsearch/bookmarks"
	"github.com/poiesic/iconsearch/core"
)

// BookmarkStore implements bookmarks.Store for BadgerDB. It holds the
// anonymous bookmark set, so stored bookmarks carry an empty UserID.
type BookmarkStore struct {
	backend *Backend
}

var _ bookmarks.Store = (*BookmarkStore)(nil)

// NewBookmarkStore creates a store over an open backend.
func NewBookmarkStore(backend *Backend) *BookmarkStore {
	return &BookmarkStore{backend: backend}
}

// OpenStore opens a BadgerDB-backed bookmark store at path. With inMemory
// set, the store lives in memory only, which tests rely on.
func OpenStore(path string, inMemory bool) (*BookmarkStore, error) {
	backend, err := OpenBackend(path, inMemory)
	if err != nil {
		return nil, err
	}
	return NewBookmarkStore(backend), nil
}

// List returns every bookmark in the store.
func (s *BookmarkStore) List(_ context.Context) ([]*core.Bookmark, error) {
	var marks []*core.Bookmark

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = bookmarkScanPrefix()
		it := tx.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				mark, err := bookmarks.UnmarshalBookmark(value)
				if err != nil {
					return err
				}
				marks = append(marks, mark)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)

	return marks, err
}

// Add persists a bookmark. Adding an icon that is already bookmarked
// returns ErrAlreadyBookmarked.
func (s *BookmarkStore) Add(_ context.Context, bookmark *core.Bookmark) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		key := makeBookmarkKey(bookmark.IconName)

		_, err := tx.Get(key)
		if err == nil {
			return bookmarks.ErrAlreadyBookmarked
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		if err := tx.Set(key, bookmarks.MarshalBookmark(bookmark)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Remove deletes the bookmark for an icon. Removing an icon that is not
// bookmarked returns ErrNotFound.
func (s *BookmarkStore) Remove(_ context.Context, iconName string) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		key := makeBookmarkKey(iconName)

		if _, err := tx.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return bookmarks.ErrNotFound
			}
			return err
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Close closes the underlying backend.
func (s *BookmarkStore) Close() error {
	return s.backend.Close()
}
