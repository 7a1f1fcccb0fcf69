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


// Package bookmarks persists which icons a user has saved.
//
// Two store implementations back the same interface: a local BadgerDB
// store for anonymous sessions and a remote HTTP store keyed by
// (user, icon) for signed-in ones. The Manager picks the active store
// from the session, migrates anonymous bookmarks on sign-in, and notifies
// subscribers whenever the bookmark set changes.
package bookmarks
