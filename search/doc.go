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


// Package search provides hybrid lexical and semantic search over the
// icon catalog.
//
// The Searcher type runs both match paths for a query and merges them:
//   - Lexical fuzzy matching over names, tags, and categories
//   - Semantic ranking using vector embeddings
//
// The two paths run concurrently; the lexical path never waits on network
// I/O, and a semantic failure simply yields lexical-only results. Merged
// results are deduplicated by icon name, with exact lexical matches pinned
// ahead of everything else.
package search
