package cohere

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/poiesic/iconsearch/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(host string) *ai.Config {
	return ai.NewConfig(ai.WithHost(host), ai.WithAPIKey("test-key"))
}

func TestEmbedText(t *testing.T) {
	var captured embedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v2/embed", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]any{
			"embeddings": map[string]any{
				"float": [][]float32{{0.1, 0.2, 0.3}},
			},
		})
	}))
	defer srv.Close()

	embedder, err := NewEmbedder(testConfig(srv.URL))
	require.NoError(t, err)

	vector, err := embedder.EmbedText(context.Background(), "cat")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vector)

	// Interactive queries are embedded one per call as search queries.
	assert.Equal(t, []string{"cat"}, captured.Texts)
	assert.Equal(t, "search_query", captured.InputType)
	assert.Equal(t, "END", captured.Truncate)
	assert.Equal(t, []string{"float"}, captured.EmbeddingTypes)
}

func TestEmbedTexts_UsesDocumentInputType(t *testing.T) {
	var captured embedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		json.NewEncoder(w).Encode(map[string]any{
			"embeddings": map[string]any{
				"float": [][]float32{{1, 0}, {0, 1}},
			},
		})
	}))
	defer srv.Close()

	embedder, err := NewEmbedder(testConfig(srv.URL))
	require.NoError(t, err)

	vectors, err := embedder.EmbedTexts(context.Background(), []string{"cat", "car"})
	require.NoError(t, err)
	require.Len(t, vectors, 2)
	assert.Equal(t, "search_document", captured.InputType)
}

func TestEmbed_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	embedder, err := NewEmbedder(testConfig(srv.URL))
	require.NoError(t, err)

	_, err = embedder.EmbedText(context.Background(), "cat")
	assert.ErrorIs(t, err, ai.ErrRateLimited)
}

func TestEmbed_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	embedder, err := NewEmbedder(testConfig(srv.URL))
	require.NoError(t, err)

	_, err = embedder.EmbedText(context.Background(), "cat")
	assert.Error(t, err)
}

func TestEmbed_CountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"embeddings": map[string]any{"float": [][]float32{}},
		})
	}))
	defer srv.Close()

	embedder, err := NewEmbedder(testConfig(srv.URL))
	require.NoError(t, err)

	_, err = embedder.EmbedText(context.Background(), "cat")
	assert.ErrorIs(t, err, ai.ErrEmptyResponse)
}
