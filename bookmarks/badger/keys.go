package badger

// Key prefixes for stored data
const (
	bookmarkPrefix = "bkmrec"
)

// makeBookmarkKey generates a key for a bookmark by icon name.
func makeBookmarkKey(iconName string) []byte {
	return []byte(bookmarkPrefix + ":" + iconName)
}

// bookmarkScanPrefix is the prefix for iterating all bookmarks.
func bookmarkScanPrefix() []byte {
	return []byte(bookmarkPrefix + ":")
}
