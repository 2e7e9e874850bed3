// Copyright 2025 Naren Yellavula
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

package main

import (
	"cmp"
	"fmt"
	"strings"
)

// Track is one row of the discography dataset.
type Track struct {
	Album     string
	Title     string
	Number    int
	Year      string
	Lyrics    string
	Writers   string
	SpotifyID string
}

// Compare orders tracks by album, then track number, then title, then
// Spotify identifier.
func (t Track) Compare(other Track) int {
	if c := strings.Compare(t.Album, other.Album); c != 0 {
		return c
	}
	if c := cmp.Compare(t.Number, other.Number); c != 0 {
		return c
	}
	if c := strings.Compare(t.Title, other.Title); c != 0 {
		return c
	}
	return strings.Compare(t.SpotifyID, other.SpotifyID)
}

func (t Track) String() string {
	return fmt.Sprintf("%s #%d %s", t.Album, t.Number, t.Title)
}
