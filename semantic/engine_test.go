package semantic

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/iconsearch/ai/mock"
	"github.com/poiesic/iconsearch/embeddings"
)

func testStore() *embeddings.Store {
	store := embeddings.NewStore()
	store.Replace(map[string][]float32{
		"cat": {1, 0},
		"dog": {0, 1},
	})
	return store
}

func TestNewEngine(t *testing.T) {
	t.Run("requires embedder", func(t *testing.T) {
		_, err := NewEngine(nil, NewLocalRanker(testStore()))
		assert.ErrorIs(t, err, ErrEmbedderRequired)
	})

	t.Run("requires ranker", func(t *testing.T) {
		_, err := NewEngine(mock.NewMockEmbedder(), nil)
		assert.ErrorIs(t, err, ErrRankerRequired)
	})
}

func TestEngineSearch(t *testing.T) {
	t.Run("ranks against the store", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextFunc = func(context.Context, string) ([]float32, error) {
			return []float32{1, 0}, nil
		}

		engine, err := NewEngine(embedder, NewLocalRanker(testStore()))
		require.NoError(t, err)

		scored := engine.Search(context.Background(), "feline")
		require.Len(t, scored, 2)
		assert.Equal(t, "cat", scored[0].IconName)
	})

	t.Run("empty query yields nothing without embedding", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		engine, err := NewEngine(embedder, NewLocalRanker(testStore()))
		require.NoError(t, err)

		assert.Nil(t, engine.Search(context.Background(), ""))
		assert.Nil(t, engine.Search(context.Background(), "   "))
		assert.Equal(t, 0, embedder.CallCount())
	})

	t.Run("repeated query hits the cache", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		engine, err := NewEngine(embedder, NewLocalRanker(testStore()))
		require.NoError(t, err)

		engine.Search(context.Background(), "feline")
		engine.Search(context.Background(), "feline")
		engine.Search(context.Background(), "feline")

		assert.Equal(t, 1, embedder.CallCount())
	})

	t.Run("embedding failure degrades to no results", func(t *testing.T) {
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextFunc = func(context.Context, string) ([]float32, error) {
			return nil, errors.New("boom")
		}

		engine, err := NewEngine(embedder, NewLocalRanker(testStore()))
		require.NoError(t, err)

		assert.Nil(t, engine.Search(context.Background(), "feline"))
	})

	t.Run("failed embeddings are not cached", func(t *testing.T) {
		calls := 0
		embedder := mock.NewMockEmbedder()
		embedder.EmbedTextFunc = func(context.Context, string) ([]float32, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("transient")
			}
			return []float32{1, 0}, nil
		}

		engine, err := NewEngine(embedder, NewLocalRanker(testStore()))
		require.NoError(t, err)

		assert.Nil(t, engine.Search(context.Background(), "feline"))
		assert.NotEmpty(t, engine.Search(context.Background(), "feline"))
	})

	t.Run("ranker failure degrades to no results", func(t *testing.T) {
		engine, err := NewEngine(mock.NewMockEmbedder(), failingRanker{})
		require.NoError(t, err)

		assert.Nil(t, engine.Search(context.Background(), "feline"))
	})
}

type failingRanker struct{}

func (failingRanker) Rank(context.Context, []float32) ([]Scored, error) {
	return nil, errors.New("endpoint down")
}
