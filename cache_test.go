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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func copyFixture(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("testdata/tracks.csv")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "tracks.csv")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestCachedTracksReusesParsedFile(t *testing.T) {
	c := NewDatasetCache()
	path := copyFixture(t)

	ds, err := CachedTracks(c, path, 5, false)
	require.NoError(t, err)
	assert.Len(t, ds.Tracks, 5)

	// remove the file: a covered request must not touch the disk
	require.NoError(t, os.Remove(path))

	ds, err = CachedTracks(c, path, 2, false)
	require.NoError(t, err)
	assert.Len(t, ds.Tracks, 2)
	assert.Equal(t, "Fifteen", ds.Tracks[1].Title)

	// more rows than were parsed means reading the file again
	_, err = CachedTracks(c, path, 6, false)
	assert.Error(t, err)
}

func TestCachedTracksExhaustedCoversAnyLimit(t *testing.T) {
	c := NewDatasetCache()
	path := copyFixture(t)

	ds, err := CachedTracks(c, path, 50, false)
	require.NoError(t, err)
	require.Len(t, ds.Tracks, 8)
	require.NoError(t, os.Remove(path))

	ds, err = CachedTracks(c, path, 500, false)
	require.NoError(t, err)
	assert.Len(t, ds.Tracks, 8)
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	path := copyFixture(t)

	ds, err := LoadTracks(path, 3, false)
	require.NoError(t, err)
	c.Set(datasetKey(path, false), ds, 100*time.Millisecond)
	require.NoError(t, os.Remove(path))

	// Immediately after caching, the dataset should be retrievable.
	_, err = CachedTracks(c, path, 3, false)
	require.NoError(t, err)

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	// Now the entry is gone and the deleted file cannot be parsed again.
	_, err = CachedTracks(c, path, 3, false)
	assert.Error(t, err)
}
