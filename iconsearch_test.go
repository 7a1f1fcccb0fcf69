package iconsearch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/iconsearch/ai"
	"github.com/poiesic/iconsearch/catalog"
	"github.com/poiesic/iconsearch/core"
	"github.com/poiesic/iconsearch/gallery"
)

func newTestGallery(t *testing.T) *Gallery {
	t.Helper()

	cat, err := catalog.New([]core.IconEntry{
		{Name: "cat", Tags: []string{"animal", "pet"}, Categories: []string{"animals"}},
		{Name: "dog", Tags: []string{"animal", "pet"}, Categories: []string{"animals"}},
		{Name: "house", Tags: []string{"building", "home"}, Categories: []string{"buildings"}},
	})
	require.NoError(t, err)

	g, err := NewGalleryFromCatalog(cat, WithAIConfig(ai.NewConfig(ai.WithProvider(ai.ProviderMock))))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, g.Close())
	})
	return g
}

func TestGallerySearch(t *testing.T) {
	g := newTestGallery(t)

	searcher, err := g.NewSearcher()
	require.NoError(t, err)

	results := searcher.Search(context.Background(), "cat")
	require.NotEmpty(t, results)
	assert.Equal(t, "cat", results[0].Entry.Name)
	assert.True(t, results[0].Exact)
}

func TestGalleryState(t *testing.T) {
	ctx := context.Background()
	g := newTestGallery(t)

	state, err := g.NewState(ctx)
	require.NoError(t, err)

	state.SetQuery(ctx, "")
	require.Eventually(t, func() bool {
		return state.Results().Status == gallery.StatusReady && len(state.Results().Icons) > 0
	}, time.Second, time.Millisecond)

	// Empty query browses the whole catalog.
	assert.Len(t, state.Results().Icons, 3)
}

func TestGalleryBookmarksDriveState(t *testing.T) {
	ctx := context.Background()
	g := newTestGallery(t)

	state, err := g.NewState(ctx)
	require.NoError(t, err)

	state.SetQuery(ctx, "")
	require.Eventually(t, func() bool {
		return len(state.Results().Icons) == 3
	}, time.Second, time.Millisecond)

	state.SetBookmarkOnly(ctx, true)
	require.Eventually(t, func() bool {
		snapshot := state.Results()
		return snapshot.Status == gallery.StatusReady && snapshot.Reason == core.EmptyNoBookmarkMatches
	}, time.Second, time.Millisecond)

	// Bookmarking an icon refreshes the filtered view through the
	// subscription.
	require.NoError(t, g.Bookmarks().Add(ctx, "cat", core.BookmarkMetadata{}))
	require.Eventually(t, func() bool {
		snapshot := state.Results()
		return snapshot.Status == gallery.StatusReady && len(snapshot.Icons) == 1
	}, time.Second, time.Millisecond)
	assert.Equal(t, "cat", state.Results().Icons[0].Name)
}

func TestGallerySessionSwitchesBookmarks(t *testing.T) {
	ctx := context.Background()
	g := newTestGallery(t)

	require.NoError(t, g.Bookmarks().Add(ctx, "cat", core.BookmarkMetadata{}))

	// Without a remote factory, sign-in keeps the local store but records
	// the user.
	g.Session().SignIn("user-1")
	assert.Equal(t, "user-1", g.Bookmarks().UserID())

	g.Session().SignOut()
	assert.Empty(t, g.Bookmarks().UserID())
}
