package search

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/poiesic/iconsearch/catalog"
	"github.com/poiesic/iconsearch/core"
	"github.com/poiesic/iconsearch/lexical"
	"github.com/poiesic/iconsearch/semantic"
)

// Merge parameters.
const (
	// ExactCutoff is the lexical confidence above which a match counts as
	// exact. Exact matches are pinned ahead of all ranked results.
	ExactCutoff = 0.8
	// SemanticDiscount scales semantic similarities before they compete
	// with lexical confidences.
	SemanticDiscount = 0.9
)

// SemanticSearcher ranks icons semantically for a query. A nil or empty
// result means the semantic path contributed nothing.
type SemanticSearcher interface {
	Search(ctx context.Context, query string) []semantic.Scored
}

// Searcher provides hybrid lexical and semantic search over the icon catalog.
type Searcher struct {
	catalog  *catalog.Catalog
	index    *lexical.Index
	semantic SemanticSearcher
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	cat *catalog.Catalog,
	index *lexical.Index,
	engine SemanticSearcher,
	opts ...Option,
) (*Searcher, error) {
	if cat == nil {
		return nil, ErrCatalogRequired
	}
	if index == nil {
		return nil, ErrIndexRequired
	}
	if engine == nil {
		return nil, ErrEngineRequired
	}

	s := &Searcher{
		catalog:  cat,
		index:    index,
		semantic: engine,
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search runs both match paths for the query and merges them.
// An empty query returns the entire catalog in catalog order.
func (s *Searcher) Search(ctx context.Context, query string) []*core.SearchResult {
	return s.SearchWithMonitor(ctx, query, nil)
}

// SearchWithMonitor searches with monitoring. The monitor receives
// callbacks at each stage of the search process.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query string, monitor SearchMonitor) []*core.SearchResult {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	query = strings.TrimSpace(query)
	if query == "" {
		results := s.browseAll()
		monitor.Finish(results)
		return results
	}

	// Semantic ranking overlaps with the lexical scan; only the merge
	// waits for it.
	semanticCh := make(chan []semantic.Scored, 1)
	go func() {
		semanticCh <- s.semantic.Search(ctx, query)
	}()

	matches := s.index.Search(query)
	monitor.AfterLexicalSearch(matches)

	scored := <-semanticCh
	monitor.AfterSemanticSearch(scored)

	results := s.merge(matches, scored, monitor)
	monitor.Finish(results)
	return results
}

// merge folds semantic rankings into the lexical result list. Icons are
// deduplicated by name; an icon found by both paths keeps the better score
// unless its lexical match was exact, which is never overridden.
func (s *Searcher) merge(matches []lexical.Match, scored []semantic.Scored, monitor SearchMonitor) []*core.SearchResult {
	results := make([]*core.SearchResult, 0, len(matches)+len(scored))
	byName := make(map[string]*core.SearchResult, len(matches))

	for _, match := range matches {
		confidence := 1 - match.Distance
		result := &core.SearchResult{
			Entry: match.Entry,
			Score: confidence,
			Kind:  core.MatchLexical,
			Exact: confidence > ExactCutoff,
		}
		results = append(results, result)
		byName[match.Entry.Name] = result
	}

	for _, hit := range scored {
		discounted := hit.Similarity * SemanticDiscount

		existing, ok := byName[hit.IconName]
		if !ok {
			entry, found := s.catalog.Lookup(hit.IconName)
			if !found {
				// The artifact can lag behind the catalog.
				s.logger.Debug("semantic match not in catalog", "icon", hit.IconName)
				continue
			}
			result := &core.SearchResult{
				Entry: entry,
				Score: discounted,
				Kind:  core.MatchSemantic,
			}
			results = append(results, result)
			byName[hit.IconName] = result
			monitor.SemanticHit(result)
			continue
		}

		existing.Kind = core.MatchBoth
		if !existing.Exact && discounted > existing.Score {
			existing.Score = discounted
		}
		monitor.LexicalAndSemanticHit(existing)
	}

	for _, result := range results {
		if result.Kind == core.MatchLexical {
			monitor.LexicalHit(result)
		}
	}

	// Exact matches stay first in lexical order; the rest rank by score.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Exact != results[j].Exact {
			return results[i].Exact
		}
		if results[i].Exact {
			return false
		}
		return results[i].Score > results[j].Score
	})

	return results
}

// browseAll is the empty-query state: the full catalog in catalog order.
func (s *Searcher) browseAll() []*core.SearchResult {
	entries := s.catalog.Entries()
	results := make([]*core.SearchResult, len(entries))
	for i, entry := range entries {
		results[i] = &core.SearchResult{
			Entry: entry,
			Score: 1,
			Kind:  core.MatchLexical,
		}
	}
	return results
}

// SearchCategory returns the catalog entries carrying the given category,
// in catalog order. Matching is case-insensitive.
func (s *Searcher) SearchCategory(category string) []*core.IconEntry {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return nil
	}

	var entries []*core.IconEntry
	for _, entry := range s.catalog.Entries() {
		for _, c := range entry.Categories {
			if strings.ToLower(c) == category {
				entries = append(entries, entry)
				break
			}
		}
	}
	return entries
}
