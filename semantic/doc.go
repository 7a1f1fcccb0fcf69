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


// Package semantic ranks icons by embedding similarity to a query.
//
// The Engine embeds the query text, caches the embedding, and delegates
// ranking to a Ranker. Two rankers are provided:
//   - LocalRanker computes cosine similarity against the in-process
//     embedding store
//   - RemoteRanker posts the query embedding to a vector match endpoint
//
// Semantic search is strictly best effort. Any failure along the way
// (embedding, ranking, empty store) yields zero results rather than an
// error, so callers degrade to lexical-only matching.
package semantic
