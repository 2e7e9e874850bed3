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

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bstTestCase struct {
	Name          string
	InitialKeys   []int
	KeysToInsert  []int
	KeysToDelete  []int
	ExpectedOrder []int
	ExpectedRoot  int
}

func TestBSTOperations(t *testing.T) {
	testCases := []bstTestCase{
		{
			Name:          "Simple Insertion",
			KeysToInsert:  []int{5, 3, 8, 1, 4},
			ExpectedOrder: []int{1, 3, 4, 5, 8},
			ExpectedRoot:  5,
		},
		{
			Name:          "Remove Root With Two Children",
			InitialKeys:   []int{5, 3, 8, 1, 4, 7, 9},
			KeysToDelete:  []int{5},
			ExpectedOrder: []int{1, 3, 4, 7, 8, 9},
			ExpectedRoot:  7,
		},
		{
			Name:          "Remove Leaf",
			InitialKeys:   []int{5, 3, 8},
			KeysToDelete:  []int{8},
			ExpectedOrder: []int{3, 5},
			ExpectedRoot:  5,
		},
		{
			Name:          "Remove Root With One Child",
			InitialKeys:   []int{5, 3, 1},
			KeysToDelete:  []int{5},
			ExpectedOrder: []int{1, 3},
			ExpectedRoot:  3,
		},
		{
			Name:          "Remove Missing",
			InitialKeys:   []int{2, 1, 3},
			KeysToDelete:  []int{42},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedRoot:  2,
		},
		{
			Name:          "Duplicates",
			InitialKeys:   []int{2, 1, 3},
			KeysToInsert:  []int{2, 1, 3, 3},
			ExpectedOrder: []int{1, 2, 3},
			ExpectedRoot:  2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := NewBST[Ordered[int]]()
			for _, key := range Of(tc.InitialKeys...) {
				tree.Insert(key)
			}
			for _, key := range Of(tc.KeysToInsert...) {
				tree.Insert(key)
			}
			for _, key := range Of(tc.KeysToDelete...) {
				tree.Remove(key)
			}

			assert.Equal(t, Of(tc.ExpectedOrder...), tree.Values())
			assert.Equal(t, len(tc.ExpectedOrder), tree.Size())
			require.NotNil(t, tree.Root())
			assert.Equal(t, tc.ExpectedRoot, tree.Root().Element().Value)
			assert.NoError(t, tree.Validate())
		})
	}
}

func TestBSTInsertReportsDuplicates(t *testing.T) {
	tree := NewBST[Ordered[string]]()
	assert.True(t, tree.Insert(Ordered[string]{"b"}))
	assert.True(t, tree.Insert(Ordered[string]{"a"}))
	assert.False(t, tree.Insert(Ordered[string]{"b"}))
	assert.Equal(t, 2, tree.Size())
}

func TestBSTSearch(t *testing.T) {
	tree := NewBST[Ordered[int]]()
	for _, key := range Of(50, 30, 70, 20, 40, 60, 80) {
		tree.Insert(key)
	}

	node := tree.Search(Ordered[int]{40})
	require.NotNil(t, node)
	assert.Equal(t, 40, node.Element().Value)
	assert.True(t, node.IsLeaf())

	assert.Nil(t, tree.Search(Ordered[int]{45}))
	assert.True(t, tree.Contains(Ordered[int]{80}))
	assert.False(t, tree.Contains(Ordered[int]{81}))
}

func TestBSTRemoveReturnsElement(t *testing.T) {
	tree := NewBST[Ordered[int]]()
	for _, key := range Of(5, 3, 8, 1, 4, 7, 9) {
		tree.Insert(key)
	}

	removed, ok := tree.Remove(Ordered[int]{5})
	require.True(t, ok)
	assert.Equal(t, 5, removed.Value)
	assert.Nil(t, tree.Search(Ordered[int]{5}))
	assert.Equal(t, 6, tree.Size())

	_, ok = tree.Remove(Ordered[int]{5})
	assert.False(t, ok)
	assert.Equal(t, 6, tree.Size())
}

func TestBSTSortedInputDegrades(t *testing.T) {
	tree := NewBST[Ordered[int]]()
	for i := range 64 {
		tree.Insert(Ordered[int]{i})
	}
	assert.Equal(t, 64, tree.Height())
}

func TestBSTClear(t *testing.T) {
	tree := NewBST[Ordered[int]]()
	for _, key := range Of(4, 2, 6) {
		tree.Insert(key)
	}
	tree.Clear()

	assert.Equal(t, 0, tree.Size())
	assert.True(t, tree.IsEmpty())
	assert.Empty(t, tree.Values())
	assert.False(t, tree.Iterator().HasNext())

	// usable again after a clear
	assert.True(t, tree.Insert(Ordered[int]{1}))
	assert.Equal(t, 1, tree.Size())
}

func TestBSTMinMax(t *testing.T) {
	tree := NewBST[Ordered[int]]()
	_, ok := tree.Min()
	assert.False(t, ok)

	for _, key := range Of(10, 4, 17, 1, 25) {
		tree.Insert(key)
	}
	lo, ok := tree.Min()
	require.True(t, ok)
	assert.Equal(t, 1, lo.Value)
	hi, ok := tree.Max()
	require.True(t, ok)
	assert.Equal(t, 25, hi.Value)
}
