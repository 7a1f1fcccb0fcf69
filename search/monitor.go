package search

import (
	"github.com/poiesic/iconsearch/core"
	"github.com/poiesic/iconsearch/lexical"
	"github.com/poiesic/iconsearch/semantic"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterLexicalSearch(matches []lexical.Match)
	AfterSemanticSearch(scored []semantic.Scored)
	LexicalHit(result *core.SearchResult)
	SemanticHit(result *core.SearchResult)
	LexicalAndSemanticHit(result *core.SearchResult)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                              {}
func (n *noopMonitor) AfterLexicalSearch(_ []lexical.Match)        {}
func (n *noopMonitor) AfterSemanticSearch(_ []semantic.Scored)     {}
func (n *noopMonitor) LexicalHit(_ *core.SearchResult)             {}
func (n *noopMonitor) SemanticHit(_ *core.SearchResult)            {}
func (n *noopMonitor) LexicalAndSemanticHit(_ *core.SearchResult)  {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)               {}
