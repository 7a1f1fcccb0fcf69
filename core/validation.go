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


package core

import (
	"fmt"
	"time"
)

// ValidateIconEntry validates an IconEntry according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//
// NOT validated:
//   - Tags and Categories (both may be empty; they only affect match weight)
func ValidateIconEntry(entry *IconEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidIconEntry)
	}

	if entry.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidIconEntry, ErrEmptyIconName)
	}

	return nil
}

// ValidateBookmark validates a Bookmark according to domain rules.
//
// Validation rules:
//   - IconName must not be empty
//   - CreatedAt must not be in the future
//
// NOT validated:
//   - UserID (empty means an anonymous, locally stored bookmark)
//   - Metadata (display settings are free-form)
func ValidateBookmark(bookmark *Bookmark) error {
	if bookmark == nil {
		return fmt.Errorf("%w: bookmark is nil", ErrInvalidBookmark)
	}

	if bookmark.IconName == "" {
		return fmt.Errorf("%w: %w", ErrInvalidBookmark, ErrEmptyIconName)
	}

	if !bookmark.CreatedAt.IsZero() && !IsValidTimestamp(bookmark.CreatedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidBookmark, ErrInvalidTimestamp)
	}

	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
