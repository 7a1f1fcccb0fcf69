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


// Package gallery holds the reactive browse state of the icon gallery.
//
// State owns the current query, the bookmarks-only toggle, and the latest
// evaluated result snapshot. Query evaluation runs asynchronously; a
// monotonic generation token guarantees that when queries race, only the
// most recent one commits. Session tracks who is signed in and fans out
// change notifications.
package gallery
