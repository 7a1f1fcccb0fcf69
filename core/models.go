package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// BookmarkID generates a deterministic bookmark ID from a (user, icon) pair.
// Anonymous users pass an empty userID; the resulting ID is still stable per icon.
func BookmarkID(userID, iconName string) ID {
	return IDFromContent("(" + userID + "," + iconName + ")")
}

// IconEntry describes a single icon in the catalog.
// Entries are immutable after catalog construction; identity is Name.
type IconEntry struct {
	Name       string   `json:"name"`
	Tags       []string `json:"tags"`
	Categories []string `json:"categories"`
}

// MatchKind identifies which search path produced a result.
type MatchKind int

const (
	// MatchLexical means the icon was found by fuzzy text matching only.
	MatchLexical MatchKind = iota + 1
	// MatchSemantic means the icon was found by embedding similarity only.
	MatchSemantic
	// MatchBoth means both paths found the icon.
	MatchBoth
)

// SearchResult is a scored icon produced during query evaluation.
// Scores are confidences: higher is better. Results are transient and
// recomputed per query, never persisted.
type SearchResult struct {
	Entry *IconEntry
	Score float32
	Kind  MatchKind
	Exact bool // lexical confidence above the exact-match cutoff
}

// EmptyReason distinguishes the ways a result set can be empty.
type EmptyReason int

const (
	// EmptyNone means the result set is not empty, or no query has run yet.
	EmptyNone EmptyReason = iota
	// EmptyNoMatches means the query matched nothing.
	EmptyNoMatches
	// EmptyNoBookmarkMatches means the query had matches but none are bookmarked.
	EmptyNoBookmarkMatches
)

// ResultSet is an ordered, name-deduplicated sequence of icons for one query
// evaluation, plus the reason when it is empty.
type ResultSet struct {
	Icons  []*IconEntry
	Reason EmptyReason
}

// ByCategory groups the result set by icon category, preserving result order
// within each group. Icons with multiple categories appear in each.
func (rs ResultSet) ByCategory() map[string][]*IconEntry {
	grouped := make(map[string][]*IconEntry)
	for _, icon := range rs.Icons {
		for _, category := range icon.Categories {
			grouped[category] = append(grouped[category], icon)
		}
	}
	return grouped
}

// BookmarkMetadata captures the gallery display settings active when the
// bookmark was created.
type BookmarkMetadata struct {
	Weight string
	Size   int
	Color  string
}

// Bookmark marks an icon as saved by a user. Bookmarks are keyed by
// (UserID, IconName); anonymous bookmarks have an empty UserID and live in
// the local store only.
type Bookmark struct {
	Id        ID
	UserID    string
	IconName  string
	CreatedAt time.Time
	UpdatedAt time.Time
	Metadata  BookmarkMetadata
}
