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


// Package generate builds the embedding artifact for a catalog.
//
// The Generator renders each icon into a short description, embeds the
// descriptions in batches over a worker pool, and quantizes the vectors
// into the compact artifact format the gallery loads at startup.
// Generation is an offline build step, not part of the serving path.
package generate
