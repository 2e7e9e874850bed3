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
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func syntheticTracks(n int) []Track {
	tracks := make([]Track, n)
	for i := range tracks {
		tracks[i] = Track{
			Album:     fmt.Sprintf("Album %02d", i%7),
			Title:     fmt.Sprintf("Track %d", i),
			Number:    i,
			SpotifyID: fmt.Sprintf("id-%d", i),
		}
	}
	return tracks
}

func TestRunnerMeasuresCoreTrees(t *testing.T) {
	records := syntheticTracks(300)
	r := &Runner{Seed: 42, Validate: true}

	res, err := r.Run(records)
	require.NoError(t, err)

	assert.Equal(t, 300, res.Records)
	assert.Equal(t, uint64(42), res.Seed)
	assert.Empty(t, res.Baselines)
	require.Len(t, res.Trees, 4)

	names := []string{"Sorted BST", "Random BST", "Sorted AVL", "Random AVL"}
	for i, m := range res.Trees {
		assert.Equal(t, names[i], m.Name)
		assert.Equal(t, 300, m.Size)
		assert.Equal(t, 300, m.Found)
		assert.Positive(t, m.Height)
	}

	// sorted input turns the plain tree into a list
	assert.Equal(t, 300, res.Trees[0].Height)
	assert.LessOrEqual(t, res.Trees[2].Height, 12)
	assert.LessOrEqual(t, res.Trees[3].Height, 12)
}

func TestRunnerBaselines(t *testing.T) {
	records := syntheticTracks(120)
	r := &Runner{Seed: 7, Validate: true, Baselines: []string{"btree", "llrb"}}

	res, err := r.Run(records)
	require.NoError(t, err)
	require.Len(t, res.Baselines, 4)

	for _, m := range res.Baselines {
		assert.Equal(t, 120, m.Size, m.Name)
		assert.Equal(t, 120, m.Found, m.Name)
	}
	assert.Equal(t, "Sorted btree", res.Baselines[0].Name)
	assert.Equal(t, "Random llrb", res.Baselines[3].Name)
}

func TestRunnerUnknownBaseline(t *testing.T) {
	r := &Runner{Baselines: []string{"skiplist"}}
	_, err := r.Run(syntheticTracks(3))
	assert.Error(t, err)
}

func TestRunnerShowsProgress(t *testing.T) {
	var buf bytes.Buffer
	r := &Runner{Seed: 1, Progress: &buf}

	_, err := r.Run(syntheticTracks(10))
	require.NoError(t, err)
	assert.NotEmpty(t, buf.String())
}

func TestRunnerEmptyInput(t *testing.T) {
	res, err := (&Runner{Seed: 3}).Run(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Records)
	for _, m := range res.Trees {
		assert.Equal(t, 0, m.Size)
		assert.Equal(t, 0, m.Height)
	}
}

func TestSetsAgreeOnDuplicates(t *testing.T) {
	tracks := syntheticTracks(5)
	for name, newSet := range baselines {
		set := newSet()
		for _, tr := range tracks {
			assert.True(t, set.Insert(tr), name)
		}
		assert.False(t, set.Insert(tracks[0]), name)
		assert.Equal(t, 5, set.Size(), name)
		assert.False(t, set.Contains(Track{Album: "missing"}), name)
	}
}

func TestLLRBValidate(t *testing.T) {
	set := newLLRBSet()
	for _, tr := range syntheticTracks(50) {
		set.Insert(tr)
	}
	assert.NoError(t, set.Validate())
}
