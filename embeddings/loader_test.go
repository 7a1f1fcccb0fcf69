package embeddings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArtifact(t *testing.T, vectors map[string][]float32) string {
	t.Helper()

	artifact := make(Artifact, len(vectors))
	for name, vector := range vectors {
		entry, err := NewCompactEntry(vector, nil)
		require.NoError(t, err)
		artifact[name] = entry
	}
	data, err := json.Marshal(artifact)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "icon-embeddings.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoaderFromFile(t *testing.T) {
	path := writeArtifact(t, map[string][]float32{
		"cat": {0.5, 0.5},
		"dog": {-0.5, 0.5},
	})

	store := NewStore()
	loader := NewLoader(store, path)
	require.NoError(t, loader.Load(context.Background()))

	assert.Equal(t, 2, store.Len())
	vector, ok := store.VectorFor("cat")
	require.True(t, ok)
	assert.InDelta(t, 0.5, float64(vector[0]), 0.001)
}

func TestLoaderFromHTTP(t *testing.T) {
	entry, err := NewCompactEntry([]float32{1, 0}, nil)
	require.NoError(t, err)
	payload, err := json.Marshal(Artifact{"cat": entry})
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write(payload)
	}))
	defer server.Close()

	store := NewStore()
	loader := NewLoader(store, server.URL+"/icon-embeddings.json")
	require.NoError(t, loader.Load(context.Background()))
	assert.Equal(t, 1, store.Len())
}

func TestLoaderFailures(t *testing.T) {
	t.Run("missing file leaves store empty", func(t *testing.T) {
		store := NewStore()
		loader := NewLoader(store, filepath.Join(t.TempDir(), "absent.json"))

		assert.Error(t, loader.Load(context.Background()))
		assert.Equal(t, 0, store.Len())
		assert.Equal(t, uint64(0), store.Version())
	})

	t.Run("http error status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		store := NewStore()
		loader := NewLoader(store, server.URL)
		assert.Error(t, loader.Load(context.Background()))
		assert.Equal(t, 0, store.Len())
	})

	t.Run("malformed artifact", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

		store := NewStore()
		loader := NewLoader(store, path)
		assert.Error(t, loader.Load(context.Background()))
		assert.Equal(t, 0, store.Len())
	})
}

func TestLoadBackground(t *testing.T) {
	t.Run("success notifies", func(t *testing.T) {
		path := writeArtifact(t, map[string][]float32{"cat": {1}})

		store := NewStore()
		loader := NewLoader(store, path)

		var wg sync.WaitGroup
		wg.Add(1)
		loader.LoadBackground(context.Background(), wg.Done)
		wg.Wait()

		assert.Equal(t, 1, store.Len())
	})

	t.Run("failure notifies and degrades silently", func(t *testing.T) {
		store := NewStore()
		loader := NewLoader(store, filepath.Join(t.TempDir(), "absent.json"))

		var wg sync.WaitGroup
		wg.Add(1)
		loader.LoadBackground(context.Background(), wg.Done)
		wg.Wait()

		assert.Equal(t, 0, store.Len())
	})
}
