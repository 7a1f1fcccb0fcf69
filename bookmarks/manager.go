package bookmarks

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/poiesic/iconsearch/core"
)

// RemoteFactory builds a remote store for a signed-in user.
type RemoteFactory func(userID string) (Store, error)

// Manager routes bookmark operations to the store matching the current
// session: the local store while anonymous, a remote store once signed in.
// On sign-in, anonymous bookmarks migrate to the remote store and the
// local store is cleared, so signing out starts from an empty set.
type Manager struct {
	mu            sync.Mutex
	local         Store
	remoteFactory RemoteFactory
	active        Store
	userID        string
	version       uint64
	subscribers   []func()
	logger        *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithRemoteFactory enables remote bookmark storage for signed-in users.
// Without it, sign-in keeps using the local store.
func WithRemoteFactory(factory RemoteFactory) ManagerOption {
	return func(m *Manager) {
		m.remoteFactory = factory
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if logger == nil {
			logger = slog.Default()
		}
		m.logger = logger
	}
}

// NewManager creates a manager over the local store.
func NewManager(local Store, opts ...ManagerOption) (*Manager, error) {
	if local == nil {
		return nil, ErrStoreRequired
	}

	m := &Manager{
		local:  local,
		active: local,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// UserID returns the signed-in user, or empty while anonymous.
func (m *Manager) UserID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.userID
}

// Version returns a counter that increments on every bookmark change.
// Reactive consumers use it as a memoization key.
func (m *Manager) Version() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.version
}

// Subscribe registers a callback invoked after every bookmark change.
// Callbacks run outside the manager lock.
func (m *Manager) Subscribe(fn func()) {
	m.mu.Lock()
	m.subscribers = append(m.subscribers, fn)
	m.mu.Unlock()
}

// Add bookmarks an icon in the active store. The bookmark ID is derived
// from the (user, icon) pair, so re-adding the same icon fails with
// ErrAlreadyBookmarked.
func (m *Manager) Add(ctx context.Context, iconName string, metadata core.BookmarkMetadata) error {
	m.mu.Lock()
	store := m.active
	userID := m.userID
	m.mu.Unlock()

	now := time.Now().UTC()
	bookmark := &core.Bookmark{
		Id:        core.BookmarkID(userID, iconName),
		UserID:    userID,
		IconName:  iconName,
		CreatedAt: now,
		UpdatedAt: now,
		Metadata:  metadata,
	}
	if err := core.ValidateBookmark(bookmark); err != nil {
		return err
	}

	if err := store.Add(ctx, bookmark); err != nil {
		return err
	}
	m.bump()
	return nil
}

// Remove deletes an icon's bookmark from the active store.
func (m *Manager) Remove(ctx context.Context, iconName string) error {
	m.mu.Lock()
	store := m.active
	m.mu.Unlock()

	if err := store.Remove(ctx, iconName); err != nil {
		return err
	}
	m.bump()
	return nil
}

// List returns every bookmark in the active store.
func (m *Manager) List(ctx context.Context) ([]*core.Bookmark, error) {
	m.mu.Lock()
	store := m.active
	m.mu.Unlock()
	return store.List(ctx)
}

// Set returns the membership view of the active store.
func (m *Manager) Set(ctx context.Context) (Set, error) {
	marks, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	return NewSet(marks), nil
}

// SignIn switches to the user's remote store, migrating any anonymous
// bookmarks into it. Migration conflicts with existing remote bookmarks
// are ignored; the remote copy wins.
func (m *Manager) SignIn(ctx context.Context, userID string) error {
	if m.remoteFactory == nil {
		m.mu.Lock()
		m.userID = userID
		m.mu.Unlock()
		m.bump()
		return nil
	}

	remote, err := m.remoteFactory(userID)
	if err != nil {
		return err
	}

	if err := m.migrate(ctx, userID, remote); err != nil {
		return err
	}

	m.mu.Lock()
	m.active = remote
	m.userID = userID
	m.mu.Unlock()
	m.bump()
	return nil
}

// SignOut returns to the anonymous local store.
func (m *Manager) SignOut() {
	m.mu.Lock()
	if m.active != m.local {
		if err := m.active.Close(); err != nil {
			m.logger.Warn("error closing remote bookmark store", "err", err)
		}
	}
	m.active = m.local
	m.userID = ""
	m.mu.Unlock()
	m.bump()
}

// Close closes the local store and, if signed in, the remote one.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.active != m.local {
		if err := m.active.Close(); err != nil {
			m.logger.Warn("error closing remote bookmark store", "err", err)
		}
	}
	return m.local.Close()
}

// migrate copies anonymous bookmarks to the remote store and clears the
// local one.
func (m *Manager) migrate(ctx context.Context, userID string, remote Store) error {
	marks, err := m.local.List(ctx)
	if err != nil {
		return err
	}

	for _, mark := range marks {
		migrated := *mark
		migrated.UserID = userID
		migrated.Id = core.BookmarkID(userID, mark.IconName)

		if err := remote.Add(ctx, &migrated); err != nil {
			if errors.Is(err, ErrAlreadyBookmarked) {
				m.logger.Debug("bookmark already present remotely", "icon", mark.IconName)
			} else {
				return err
			}
		}

		if err := m.local.Remove(ctx, mark.IconName); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) bump() {
	m.mu.Lock()
	m.version++
	subscribers := make([]func(), len(m.subscribers))
	copy(subscribers, m.subscribers)
	m.mu.Unlock()

	for _, fn := range subscribers {
		fn()
	}
}
