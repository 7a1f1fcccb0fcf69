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


// Package embeddings holds the per-icon embedding vectors used for semantic
// ranking.
//
// Vectors are loaded once, asynchronously, from a generated artifact. The
// artifact supports full float vectors and an amplitude-quantized
// int16-compact encoding for size. A failed or missing load leaves the
// store empty and semantic search silently degrades to lexical-only; it is
// never an error surfaced to callers of the search pipeline.
package embeddings
