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


package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/poiesic/iconsearch/core"
)

// Catalog is the immutable, ordered set of icons the gallery serves.
// It is built once at startup; catalog order is the canonical browse order.
type Catalog struct {
	entries []*core.IconEntry
	byName  map[string]*core.IconEntry
}

// New builds a catalog from icon entries, preserving their order.
// Entries are validated and names must be unique.
func New(entries []core.IconEntry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]*core.IconEntry, 0, len(entries)),
		byName:  make(map[string]*core.IconEntry, len(entries)),
	}

	for i := range entries {
		entry := entries[i]
		if err := core.ValidateIconEntry(&entry); err != nil {
			return nil, err
		}
		if _, exists := c.byName[entry.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, entry.Name)
		}
		c.entries = append(c.entries, &entry)
		c.byName[entry.Name] = &entry
	}

	return c, nil
}

// Load reads a JSON array of icon entries and builds a catalog.
func Load(r io.Reader) (*Catalog, error) {
	var entries []core.IconEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(entries)
}

// LoadFile reads a catalog from a JSON file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Len returns the number of icons in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns all icons in catalog order.
// The returned slice is a copy; the entries themselves are shared and immutable.
func (c *Catalog) Entries() []*core.IconEntry {
	out := make([]*core.IconEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup returns the icon with the given name, if present.
func (c *Catalog) Lookup(name string) (*core.IconEntry, bool) {
	entry, ok := c.byName[name]
	return entry, ok
}
