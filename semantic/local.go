package semantic

import (
	"context"
	"sort"

	"github.com/poiesic/iconsearch/embeddings"
)

// DefaultLocalLimit caps how many icons a local ranking returns.
const DefaultLocalLimit = 50

// Scored is one icon's semantic ranking for a query.
type Scored struct {
	IconName   string
	Similarity float32
}

// Ranker orders icons by similarity to a query embedding.
type Ranker interface {
	Rank(ctx context.Context, queryEmbedding []float32) ([]Scored, error)
}

// LocalRanker scores every vector in the embedding store by cosine
// similarity, entirely in process.
type LocalRanker struct {
	store *embeddings.Store
	limit int
}

// NewLocalRanker creates a ranker over the given store.
func NewLocalRanker(store *embeddings.Store) *LocalRanker {
	return &LocalRanker{store: store, limit: DefaultLocalLimit}
}

// Rank returns up to DefaultLocalLimit icons ordered by descending
// similarity. An empty store yields no results.
func (r *LocalRanker) Rank(_ context.Context, queryEmbedding []float32) ([]Scored, error) {
	scored := make([]Scored, 0, r.store.Len())
	r.store.Range(func(iconName string, vector []float32) bool {
		scored = append(scored, Scored{
			IconName:   iconName,
			Similarity: CosineSimilarity(queryEmbedding, vector),
		})
		return true
	})

	// Ties break on name so ranking is deterministic across map iteration.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Similarity != scored[j].Similarity {
			return scored[i].Similarity > scored[j].Similarity
		}
		return scored[i].IconName < scored[j].IconName
	})

	if len(scored) > r.limit {
		scored = scored[:r.limit]
	}
	return scored, nil
}
