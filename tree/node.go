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

// Node holds one element of a tree. A node is owned either by the tree's
// root pointer or by exactly one parent's child slot.
//
// height is only maintained by AVL; it stays zero in a BST.
type Node[T any] struct {
	element T
	left    *Node[T]
	right   *Node[T]
	height  int
}

func newNode[T any](element T) *Node[T] {
	return &Node[T]{element: element}
}

// Element returns the value stored in the node.
func (n *Node[T]) Element() T {
	return n.element
}

// Left returns the left child or nil.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child or nil.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// lowest node in a sub-tree
func (n *Node[T]) first() *Node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// highest node in a sub-tree
func (n *Node[T]) last() *Node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// depth counts the levels below and including n.
func depth[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(depth(n.left), depth(n.right))
}

func search[T Comparable[T]](n *Node[T], element T) *Node[T] {
	for n != nil {
		cmp := element.Compare(n.element)
		switch {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}
