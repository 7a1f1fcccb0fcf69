// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package lexical

import (
	"sort"
	"strings"

	"github.com/poiesic/iconsearch/catalog"
	"github.com/poiesic/iconsearch/core"
)

// Match is a scored lexical hit. Distance is in [0,1], lower is better.
type Match struct {
	Entry    *core.IconEntry
	Distance float32
}

// indexed holds an entry's pre-lowercased match fields.
type indexed struct {
	entry      *core.IconEntry
	name       string
	tags       []string
	categories []string
}

// Index is a fuzzy text index over icon names, tags, and categories.
// It is built once from the full catalog; the catalog is static, so there
// are no incremental updates. Search is a pure function of (index, query).
type Index struct {
	entries []indexed
}

// NewIndex builds the index from the catalog, preserving catalog order.
func NewIndex(c *catalog.Catalog) *Index {
	catalogEntries := c.Entries()
	idx := &Index{entries: make([]indexed, 0, len(catalogEntries))}

	for _, entry := range catalogEntries {
		in := indexed{
			entry:      entry,
			name:       strings.ToLower(entry.Name),
			tags:       lowerAll(entry.Tags),
			categories: lowerAll(entry.Categories),
		}
		idx.entries = append(idx.entries, in)
	}

	return idx
}

// Search returns entries matching the query, best first. Ties keep catalog
// order. An empty query returns the entire catalog with distance 0 in
// catalog order, which is the canonical browse-all state.
func (idx *Index) Search(query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))

	if query == "" {
		matches := make([]Match, len(idx.entries))
		for i, in := range idx.entries {
			matches[i] = Match{Entry: in.entry, Distance: 0}
		}
		return matches
	}

	var matches []Match
	for _, in := range idx.entries {
		if distance, ok := in.score(query); ok {
			matches = append(matches, Match{Entry: in.entry, Distance: float32(distance)})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	return matches
}

// score computes the entry's weighted distance for the query. A field only
// contributes when its raw distance is within Threshold; the entry's score
// is the best weighted field distance. Returns false when nothing matched.
func (in *indexed) score(query string) (float64, bool) {
	best := 2.0
	matched := false

	if d := fieldDistance(in.name, query); d <= Threshold {
		best = weighted(d, weightName)
		matched = true
	}

	for _, tag := range in.tags {
		if d := fieldDistance(tag, query); d <= Threshold {
			if w := weighted(d, weightTag); w < best {
				best = w
			}
			matched = true
		}
	}

	for _, category := range in.categories {
		if d := fieldDistance(category, query); d <= Threshold {
			if w := weighted(d, weightCategory); w < best {
				best = w
			}
			matched = true
		}
	}

	if !matched {
		return 0, false
	}
	return best, true
}

func lowerAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
