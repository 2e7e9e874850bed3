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
	"errors"
	"iter"
)

// ErrExhausted is returned by Iterator.Next once every element has been
// produced.
var ErrExhausted = errors.New("tree: iterator exhausted")

// Iterator walks a tree in ascending order. It holds the ancestors whose
// right subtrees are still pending on an explicit stack, so the walk can be
// paused between calls to Next. An iterator cannot be restarted.
//
// Mutating the tree while an iterator is live gives undefined results.
type Iterator[T any] struct {
	stack []*Node[T]
}

func newIterator[T any](root *Node[T]) *Iterator[T] {
	it := &Iterator[T]{}
	it.pushLeft(root)
	return it
}

// pushLeft stacks node and its chain of left descendants.
func (it *Iterator[T]) pushLeft(node *Node[T]) {
	for node != nil {
		it.stack = append(it.stack, node)
		node = node.left
	}
}

// HasNext reports whether Next will produce another element.
func (it *Iterator[T]) HasNext() bool {
	return len(it.stack) > 0
}

// Next returns the next element in ascending order, or ErrExhausted.
func (it *Iterator[T]) Next() (T, error) {
	if !it.HasNext() {
		var zero T
		return zero, ErrExhausted
	}

	top := len(it.stack) - 1
	node := it.stack[top]
	it.stack[top] = nil
	it.stack = it.stack[:top]

	it.pushLeft(node.right)
	return node.element, nil
}

func all[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := newIterator(root)
		for it.HasNext() {
			element, _ := it.Next()
			if !yield(element) {
				return
			}
		}
	}
}

func values[T any](root *Node[T], size int) []T {
	out := make([]T, 0, size)
	for element := range all(root) {
		out = append(out, element)
	}
	return out
}

func minOf[T any](root *Node[T]) (T, bool) {
	if root == nil {
		var zero T
		return zero, false
	}
	return root.first().element, true
}

func maxOf[T any](root *Node[T]) (T, bool) {
	if root == nil {
		var zero T
		return zero, false
	}
	return root.last().element, true
}
