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
	"path/filepath"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
)

const (
	// Parsed datasets stay around long enough for a sweep or repeated runs
	datasetCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	datasetCacheCleanup = 5 * time.Minute
)

// NewDatasetCache creates the cache holding parsed datasets by file path.
func NewDatasetCache() *cache.Cache {
	return cache.New(datasetCacheExpiration, datasetCacheCleanup)
}

func datasetKey(path string, skipInvalid bool) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path + "|" + strconv.FormatBool(skipInvalid)
}

// covers reports whether ds holds the first limit rows of its file.
func (ds *Dataset) covers(limit int) bool {
	if ds.Exhausted || ds.Limit <= 0 {
		return true
	}
	return limit > 0 && limit <= ds.Limit
}

// head returns a view of the first limit tracks.
func (ds *Dataset) head(limit int) *Dataset {
	out := *ds
	if limit > 0 && limit < len(ds.Tracks) {
		out.Tracks = ds.Tracks[:limit]
		out.Exhausted = false
	}
	out.Limit = limit
	return &out
}

// CachedTracks returns the first limit rows of path, parsing the file only
// when no cached dataset covers the request.
func CachedTracks(c *cache.Cache, path string, limit int, skipInvalid bool) (*Dataset, error) {
	key := datasetKey(path, skipInvalid)
	if val, ok := c.Get(key); ok {
		ds := val.(*Dataset)
		if ds.covers(limit) {
			log.WithFields(log.Fields{"path": path, "limit": limit}).Debug("dataset cache hit")
			return ds.head(limit), nil
		}
	}

	ds, err := LoadTracks(path, limit, skipInvalid)
	if err != nil {
		return nil, err
	}
	c.Set(key, ds, datasetCacheExpiration)
	return ds.head(limit), nil
}
