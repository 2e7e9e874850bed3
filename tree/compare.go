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

// Package tree provides two ordered-set containers: BST, a plain binary
// search tree, and AVL, a height balanced binary search tree.
//
// Neither tree is safe for concurrent mutation. Access a tree from a single
// goroutine or guard it with a mutex.
package tree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Comparable is implemented by element types that carry their own total
// order. Compare returns a negative number when the receiver sorts before
// other, zero when they are equal and a positive number otherwise.
type Comparable[T any] interface {
	Compare(other T) int
}

// Ordered adapts any built-in ordered type to Comparable.
type Ordered[K constraints.Ordered] struct {
	Value K
}

// Of wraps each value in an Ordered.
func Of[K constraints.Ordered](values ...K) []Ordered[K] {
	out := make([]Ordered[K], len(values))
	for i, v := range values {
		out[i] = Ordered[K]{Value: v}
	}
	return out
}

func (o Ordered[K]) Compare(other Ordered[K]) int {
	switch {
	case o.Value < other.Value:
		return -1
	case o.Value > other.Value:
		return 1
	default:
		return 0
	}
}

func (o Ordered[K]) String() string {
	return fmt.Sprint(o.Value)
}
