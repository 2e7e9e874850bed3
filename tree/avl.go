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

// AVL is a binary search tree that keeps the heights of the two subtrees
// of every node within one of each other. Insert, Remove and Contains are
// O(log n) regardless of insertion order.
type AVL[T Comparable[T]] struct {
	root *Node[T]
	size int
}

// NewAVL creates an empty tree.
func NewAVL[T Comparable[T]]() *AVL[T] {
	return &AVL[T]{}
}

// Size returns the number of elements in the tree.
func (t *AVL[T]) Size() int {
	return t.size
}

// IsEmpty reports whether the tree holds no elements.
func (t *AVL[T]) IsEmpty() bool {
	return t.root == nil
}

// Root returns the root node, nil for an empty tree.
func (t *AVL[T]) Root() *Node[T] {
	return t.root
}

// Height returns the height of the root: 0 for an empty tree, 1 for a
// single node.
func (t *AVL[T]) Height() int {
	return height(t.root)
}

// Clear removes all elements.
func (t *AVL[T]) Clear() {
	t.root = nil
	t.size = 0
}

func height[T any](node *Node[T]) int {
	if node == nil {
		return 0
	}
	return node.height
}

func updateHeight[T any](node *Node[T]) {
	node.height = max(height(node.left), height(node.right)) + 1
}

func balanceFactor[T any](node *Node[T]) int {
	if node == nil {
		return 0
	}
	return height(node.left) - height(node.right)
}

// rotateLeft promotes node's right child and returns it as the new subtree
// root.
func rotateLeft[T any](node *Node[T]) *Node[T] {
	if node == nil || node.right == nil {
		return node
	}

	pivot := node.right
	node.right = pivot.left
	pivot.left = node

	updateHeight(node)
	updateHeight(pivot)
	return pivot
}

// rotateRight promotes node's left child and returns it as the new subtree
// root.
func rotateRight[T any](node *Node[T]) *Node[T] {
	if node == nil || node.left == nil {
		return node
	}

	pivot := node.left
	node.left = pivot.right
	pivot.right = node

	updateHeight(node)
	updateHeight(pivot)
	return pivot
}

// rebalance restores the balance invariant at node, whose subtrees are
// already balanced, and returns the new subtree root.
func rebalance[T any](node *Node[T]) *Node[T] {
	bf := balanceFactor(node)

	// left heavy
	if bf > 1 {
		if balanceFactor(node.left) >= 0 {
			return rotateRight(node)
		}
		node.left = rotateLeft(node.left)
		return rotateRight(node)
	}

	// right heavy
	if bf < -1 {
		if balanceFactor(node.right) <= 0 {
			return rotateLeft(node)
		}
		node.right = rotateRight(node.right)
		return rotateLeft(node)
	}

	return node
}

// Insert adds element to the tree. An element comparing equal to one
// already present is discarded and Insert returns false.
func (t *AVL[T]) Insert(element T) bool {
	added := false
	t.root = t.insert(t.root, element, &added)
	if added {
		t.size++
	}
	return added
}

func (t *AVL[T]) insert(node *Node[T], element T, added *bool) *Node[T] {
	if node == nil {
		*added = true
		leaf := newNode(element)
		leaf.height = 1
		return leaf
	}

	cmp := element.Compare(node.element)
	switch {
	case cmp < 0:
		node.left = t.insert(node.left, element, added)
	case cmp > 0:
		node.right = t.insert(node.right, element, added)
	default:
		return node
	}

	if !*added {
		return node
	}
	updateHeight(node)
	return rebalance(node)
}

// Search returns the node holding an element equal to element, or nil.
func (t *AVL[T]) Search(element T) *Node[T] {
	return search(t.root, element)
}

// Contains reports whether an element equal to element is present.
func (t *AVL[T]) Contains(element T) bool {
	return search(t.root, element) != nil
}

// Remove deletes the element equal to element and returns the stored
// value. It returns false when no such element exists.
func (t *AVL[T]) Remove(element T) (T, bool) {
	var removed T
	found := false
	t.root = t.remove(t.root, element, &removed, &found)
	if found {
		t.size--
	}
	return removed, found
}

func (t *AVL[T]) remove(node *Node[T], element T, removed *T, found *bool) *Node[T] {
	if node == nil {
		return nil
	}

	cmp := element.Compare(node.element)
	switch {
	case cmp < 0:
		node.left = t.remove(node.left, element, removed, found)
	case cmp > 0:
		node.right = t.remove(node.right, element, removed, found)
	default:
		if !*found {
			*removed = node.element
			*found = true
		}
		if node.left == nil {
			return node.right
		}
		if node.right == nil {
			return node.left
		}
		successor := node.right.first()
		node.element = successor.element
		node.right = t.remove(node.right, successor.element, removed, found)
	}

	if !*found {
		return node
	}
	updateHeight(node)
	return rebalance(node)
}

// Min returns the smallest element.
func (t *AVL[T]) Min() (T, bool) {
	return minOf(t.root)
}

// Max returns the largest element.
func (t *AVL[T]) Max() (T, bool) {
	return maxOf(t.root)
}

// Iterator returns an in-order iterator positioned before the smallest
// element.
func (t *AVL[T]) Iterator() *Iterator[T] {
	return newIterator(t.root)
}

// All yields the elements in ascending order.
func (t *AVL[T]) All() iter.Seq[T] {
	return all(t.root)
}

// Values returns the elements in ascending order.
func (t *AVL[T]) Values() []T {
	return values(t.root, t.size)
}
