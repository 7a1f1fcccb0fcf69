package gallery

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/poiesic/iconsearch/bookmarks"
	"github.com/poiesic/iconsearch/core"
	"github.com/poiesic/iconsearch/embeddings"
)

// Status is the evaluation state of the current query.
type Status int

const (
	// StatusPending means a query evaluation is in flight.
	StatusPending Status = iota + 1
	// StatusReady means the snapshot reflects the current query.
	StatusReady
)

// Snapshot is one consistent view of the gallery results.
type Snapshot struct {
	Icons  []*core.IconEntry
	Status Status
	Reason core.EmptyReason
}

// Searching evaluates a query against the catalog.
type Searching interface {
	Search(ctx context.Context, query string) []*core.SearchResult
}

// BookmarkView is the read side of the bookmark manager the state
// depends on.
type BookmarkView interface {
	Set(ctx context.Context) (bookmarks.Set, error)
	Version() uint64
}

// State owns the reactive gallery state: the query, the bookmarks-only
// toggle, and the latest result snapshot. Evaluations run in goroutines;
// a generation token makes the last submitted query win regardless of
// completion order.
type State struct {
	mu         sync.Mutex
	searcher   Searching
	bookmarks  BookmarkView
	store      *embeddings.Store
	logger     *slog.Logger

	query        string
	bookmarkOnly bool
	generation   uint64
	snapshot     Snapshot

	memo    memoKey
	hasMemo bool

	subscribers []func()
}

// memoKey captures every input of an evaluation. When nothing in the key
// changed, the previous snapshot is still valid and the search is skipped.
type memoKey struct {
	query           string
	bookmarkOnly    bool
	storeVersion    uint64
	bookmarkVersion uint64
}

// StateOption configures a State.
type StateOption func(*State)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) StateOption {
	return func(s *State) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewState creates a ready state with no query: the snapshot is empty and
// callers typically submit an initial empty query to show the catalog.
func NewState(searcher Searching, marks BookmarkView, store *embeddings.Store, opts ...StateOption) *State {
	s := &State{
		searcher:  searcher,
		bookmarks: marks,
		store:     store,
		snapshot:  Snapshot{Status: StatusReady},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Results returns the current snapshot.
func (s *State) Results() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Query returns the current query text.
func (s *State) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// BookmarkOnly reports whether the bookmarks-only filter is active.
func (s *State) BookmarkOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookmarkOnly
}

// Subscribe registers a callback invoked after every snapshot change.
// Callbacks run outside the state lock.
func (s *State) Subscribe(fn func()) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// SetQuery submits a new query. Evaluation is asynchronous: the snapshot
// turns pending immediately and commits when the search completes, unless
// a newer submission superseded it.
func (s *State) SetQuery(ctx context.Context, query string) {
	query = strings.TrimSpace(query)

	s.mu.Lock()
	s.query = query
	s.mu.Unlock()

	s.submit(ctx)
}

// SetBookmarkOnly toggles the bookmarks-only filter and re-evaluates the
// current query.
func (s *State) SetBookmarkOnly(ctx context.Context, on bool) {
	s.mu.Lock()
	s.bookmarkOnly = on
	s.mu.Unlock()

	s.submit(ctx)
}

// Refresh re-evaluates the current query. Call it when an evaluation
// input outside the state changed, such as the embedding artifact
// finishing its load or the bookmark set changing.
func (s *State) Refresh(ctx context.Context) {
	s.submit(ctx)
}

// submit starts an evaluation for the current inputs. A memo hit commits
// synchronously without searching.
func (s *State) submit(ctx context.Context) {
	s.mu.Lock()
	key := memoKey{
		query:           s.query,
		bookmarkOnly:    s.bookmarkOnly,
		storeVersion:    s.store.Version(),
		bookmarkVersion: s.bookmarks.Version(),
	}
	if s.hasMemo && key == s.memo && s.snapshot.Status == StatusReady {
		s.mu.Unlock()
		return
	}

	s.generation++
	gen := s.generation
	s.snapshot.Status = StatusPending
	s.mu.Unlock()
	s.notify()

	go s.evaluate(ctx, gen, key)
}

func (s *State) evaluate(ctx context.Context, gen uint64, key memoKey) {
	results := s.searcher.Search(ctx, key.query)
	icons, reason := s.filter(ctx, results, key.bookmarkOnly)

	s.mu.Lock()
	if gen != s.generation {
		// A newer query was submitted while this one ran.
		s.mu.Unlock()
		return
	}
	s.snapshot = Snapshot{Icons: icons, Status: StatusReady, Reason: reason}
	s.memo = key
	s.hasMemo = true
	s.mu.Unlock()
	s.notify()
}

// filter applies the bookmarks-only toggle. With the toggle off it is a
// pure passthrough of the ranked results.
func (s *State) filter(ctx context.Context, results []*core.SearchResult, bookmarkOnly bool) ([]*core.IconEntry, core.EmptyReason) {
	icons := make([]*core.IconEntry, 0, len(results))

	if !bookmarkOnly {
		for _, result := range results {
			icons = append(icons, result.Entry)
		}
		if len(icons) == 0 {
			return icons, core.EmptyNoMatches
		}
		return icons, core.EmptyNone
	}

	set, err := s.bookmarks.Set(ctx)
	if err != nil {
		s.logger.Warn("error loading bookmark set", "err", err)
		set = bookmarks.Set{}
	}

	for _, result := range results {
		if set.Has(result.Entry.Name) {
			icons = append(icons, result.Entry)
		}
	}

	if len(icons) == 0 {
		if len(results) == 0 {
			return icons, core.EmptyNoMatches
		}
		return icons, core.EmptyNoBookmarkMatches
	}
	return icons, core.EmptyNone
}

func (s *State) notify() {
	s.mu.Lock()
	subscribers := make([]func(), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn()
	}
}
