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

import "iter"

// BST is an unbalanced binary search tree. Its height depends on the order
// in which elements are inserted: sorted input degrades it to a list.
type BST[T Comparable[T]] struct {
	root *Node[T]
	size int
}

// NewBST creates an empty tree.
func NewBST[T Comparable[T]]() *BST[T] {
	return &BST[T]{}
}

// Size returns the number of elements in the tree.
func (t *BST[T]) Size() int {
	return t.size
}

// IsEmpty reports whether the tree holds no elements.
func (t *BST[T]) IsEmpty() bool {
	return t.root == nil
}

// Root returns the root node, nil for an empty tree.
func (t *BST[T]) Root() *Node[T] {
	return t.root
}

// Height returns the number of levels in the tree. It walks every node.
func (t *BST[T]) Height() int {
	return depth(t.root)
}

// Clear removes all elements.
func (t *BST[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Insert adds element to the tree. An element comparing equal to one
// already present is discarded and Insert returns false.
func (t *BST[T]) Insert(element T) bool {
	added := false
	t.root = t.insert(t.root, element, &added)
	if added {
		t.size++
	}
	return added
}

func (t *BST[T]) insert(node *Node[T], element T, added *bool) *Node[T] {
	if node == nil {
		*added = true
		return newNode(element)
	}

	cmp := element.Compare(node.element)
	if cmp < 0 {
		node.left = t.insert(node.left, element, added)
	} else if cmp > 0 {
		node.right = t.insert(node.right, element, added)
	}
	return node
}

// Search returns the node holding an element equal to element, or nil.
func (t *BST[T]) Search(element T) *Node[T] {
	return search(t.root, element)
}

// Contains reports whether an element equal to element is present.
func (t *BST[T]) Contains(element T) bool {
	return search(t.root, element) != nil
}

// Remove deletes the element equal to element and returns the stored
// value. It returns false when no such element exists.
func (t *BST[T]) Remove(element T) (T, bool) {
	found := search(t.root, element)
	if found == nil {
		var zero T
		return zero, false
	}
	// the node may be reused for the successor, keep the value now
	removed := found.element
	t.root = t.remove(t.root, element)
	t.size--
	return removed, true
}

func (t *BST[T]) remove(node *Node[T], element T) *Node[T] {
	if node == nil {
		return nil
	}

	cmp := element.Compare(node.element)
	switch {
	case cmp < 0:
		node.left = t.remove(node.left, element)
	case cmp > 0:
		node.right = t.remove(node.right, element)
	default:
		if node.left == nil {
			return node.right
		}
		if node.right == nil {
			return node.left
		}
		successor := node.right.first()
		node.element = successor.element
		node.right = t.remove(node.right, successor.element)
	}
	return node
}

// Min returns the smallest element.
func (t *BST[T]) Min() (T, bool) {
	return minOf(t.root)
}

// Max returns the largest element.
func (t *BST[T]) Max() (T, bool) {
	return maxOf(t.root)
}

// Iterator returns an in-order iterator positioned before the smallest
// element.
func (t *BST[T]) Iterator() *Iterator[T] {
	return newIterator(t.root)
}

// All yields the elements in ascending order.
func (t *BST[T]) All() iter.Seq[T] {
	return all(t.root)
}

// Values returns the elements in ascending order.
func (t *BST[T]) Values() []T {
	return values(t.root, t.size)
}
