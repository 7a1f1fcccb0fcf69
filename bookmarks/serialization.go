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


package bookmarks

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"

	"github.com/poiesic/iconsearch/core"
)

// BookmarkMUS is the MUS serializer for core.Bookmark. Timestamps travel
// as UnixMicro so the encoding is independent of time.Location.
var BookmarkMUS = bookmarkMUS{}

type bookmarkMUS struct{}

func (bookmarkMUS) Marshal(v core.Bookmark, bs []byte) (n int) {
	n = varint.Uint64.Marshal(uint64(v.Id), bs)
	n += ord.String.Marshal(v.UserID, bs[n:])
	n += ord.String.Marshal(v.IconName, bs[n:])
	n += varint.Int64.Marshal(v.CreatedAt.UnixMicro(), bs[n:])
	n += varint.Int64.Marshal(v.UpdatedAt.UnixMicro(), bs[n:])
	n += ord.String.Marshal(v.Metadata.Weight, bs[n:])
	n += varint.Int.Marshal(v.Metadata.Size, bs[n:])
	n += ord.String.Marshal(v.Metadata.Color, bs[n:])
	return n
}

func (bookmarkMUS) Unmarshal(bs []byte) (v core.Bookmark, n int, err error) {
	var n1 int

	id, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Id = core.ID(id)

	if v.UserID, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1

	if v.IconName, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1

	var micros int64
	if micros, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	v.CreatedAt = time.UnixMicro(micros).UTC()

	if micros, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	v.UpdatedAt = time.UnixMicro(micros).UTC()

	if v.Metadata.Weight, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1

	if v.Metadata.Size, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1

	if v.Metadata.Color, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1

	return
}

func (bookmarkMUS) Size(v core.Bookmark) (size int) {
	size = varint.Uint64.Size(uint64(v.Id))
	size += ord.String.Size(v.UserID)
	size += ord.String.Size(v.IconName)
	size += varint.Int64.Size(v.CreatedAt.UnixMicro())
	size += varint.Int64.Size(v.UpdatedAt.UnixMicro())
	size += ord.String.Size(v.Metadata.Weight)
	size += varint.Int.Size(v.Metadata.Size)
	size += ord.String.Size(v.Metadata.Color)
	return size
}

// MarshalBookmark serializes a Bookmark to bytes.
func MarshalBookmark(bookmark *core.Bookmark) []byte {
	buf := make([]byte, BookmarkMUS.Size(*bookmark))
	BookmarkMUS.Marshal(*bookmark, buf)
	return buf
}

// UnmarshalBookmark deserializes a Bookmark from bytes.
func UnmarshalBookmark(data []byte) (*core.Bookmark, error) {
	bookmark, _, err := BookmarkMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}
