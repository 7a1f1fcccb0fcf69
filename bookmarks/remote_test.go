package bookmarks

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/iconsearch/core"
)

func TestRemoteStore(t *testing.T) {
	ctx := context.Background()

	t.Run("list decodes user bookmarks", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "user-1", r.URL.Query().Get("user_id"))
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			w.Write([]byte(`[{"id":7,"user_id":"user-1","icon_name":"cat","metadata":{"weight":"bold","size":32}}]`))
		}))
		defer server.Close()

		store := NewRemoteStore(server.URL, "user-1", WithAPIKey("test-key"))
		marks, err := store.List(ctx)
		require.NoError(t, err)
		require.Len(t, marks, 1)

		assert.Equal(t, "cat", marks[0].IconName)
		assert.Equal(t, "user-1", marks[0].UserID)
		assert.Equal(t, "bold", marks[0].Metadata.Weight)
	})

	t.Run("add posts the bookmark", func(t *testing.T) {
		var captured bookmarkPayload
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &captured))
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		store := NewRemoteStore(server.URL, "user-1")
		err := store.Add(ctx, &core.Bookmark{
			IconName:  "cat",
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		})
		require.NoError(t, err)

		assert.Equal(t, "cat", captured.IconName)
		assert.Equal(t, "user-1", captured.UserID)
		assert.Equal(t, uint64(core.BookmarkID("user-1", "cat")), captured.ID)
	})

	t.Run("add conflict maps to ErrAlreadyBookmarked", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		store := NewRemoteStore(server.URL, "user-1")
		err := store.Add(ctx, &core.Bookmark{IconName: "cat"})
		assert.ErrorIs(t, err, ErrAlreadyBookmarked)
	})

	t.Run("remove issues delete", func(t *testing.T) {
		var method, path string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			method = r.Method
			path = r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		store := NewRemoteStore(server.URL, "user-1")
		require.NoError(t, store.Remove(ctx, "cat"))
		assert.Equal(t, http.MethodDelete, method)
		assert.Equal(t, "/bookmarks/cat", path)
	})

	t.Run("remove missing maps to ErrNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		store := NewRemoteStore(server.URL, "user-1")
		assert.ErrorIs(t, store.Remove(ctx, "ghost"), ErrNotFound)
	})

	t.Run("server error surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		store := NewRemoteStore(server.URL, "user-1")
		_, err := store.List(ctx)
		assert.Error(t, err)
	})
}
