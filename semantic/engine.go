package semantic

import (
	"context"
	"log/slog"
	"strings"

	"github.com/poiesic/iconsearch/ai"
)

// Engine embeds queries and ranks icons against them.
type Engine struct {
	embedder ai.Embedder
	ranker   Ranker
	cache    *QueryCache
	logger   *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
	}
}

// WithCacheCapacity overrides the query embedding cache size.
func WithCacheCapacity(capacity int) EngineOption {
	return func(e *Engine) {
		e.cache = NewQueryCache(capacity)
	}
}

// NewEngine creates a semantic engine.
func NewEngine(embedder ai.Embedder, ranker Ranker, opts ...EngineOption) (*Engine, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if ranker == nil {
		return nil, ErrRankerRequired
	}

	e := &Engine{
		embedder: embedder,
		ranker:   ranker,
		cache:    NewQueryCache(DefaultCacheCapacity),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Search ranks icons semantically against the query. A nil result means
// semantic ranking contributed nothing for this query, never that the
// search as a whole failed.
func (e *Engine) Search(ctx context.Context, query string) []Scored {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	embedding, ok := e.cache.Get(query)
	if !ok {
		var err error
		embedding, err = e.embedder.EmbedText(ctx, query)
		if err != nil {
			e.logger.Warn("error generating embedding for query", "query", query, "err", err)
			return nil
		}
		e.cache.Put(query, embedding)
	}

	scored, err := e.ranker.Rank(ctx, embedding)
	if err != nil {
		e.logger.Warn("error ranking icons for query", "query", query, "err", err)
		return nil
	}
	return scored
}
