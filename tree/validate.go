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

import "fmt"

// Validate checks the ordering invariant and that Size matches the number
// of reachable nodes.
func (t *BST[T]) Validate() error {
	count, err := checkOrder(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("size %d does not match %d reachable nodes", t.size, count)
	}
	return nil
}

// Validate checks the ordering invariant, the stored heights, the balance
// of every node and that Size matches the number of reachable nodes.
func (t *AVL[T]) Validate() error {
	count, err := checkOrder(t.root)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("size %d does not match %d reachable nodes", t.size, count)
	}
	_, err = checkBalance(t.root)
	return err
}

// checkOrder walks the tree in order, verifying that each element is
// strictly greater than the one before it. It returns the node count.
func checkOrder[T Comparable[T]](root *Node[T]) (int, error) {
	count := 0
	var prev *Node[T]
	it := newIterator(root)
	for it.HasNext() {
		node := it.stack[len(it.stack)-1]
		if _, err := it.Next(); err != nil {
			return count, err
		}
		if prev != nil && prev.element.Compare(node.element) >= 0 {
			return count, fmt.Errorf("order violated at position %d: %v is not less than %v", count, prev.element, node.element)
		}
		prev = node
		count++
	}
	return count, nil
}

// checkBalance recomputes heights bottom up and compares them with the
// stored values.
func checkBalance[T any](node *Node[T]) (int, error) {
	if node == nil {
		return 0, nil
	}
	lh, err := checkBalance(node.left)
	if err != nil {
		return 0, err
	}
	rh, err := checkBalance(node.right)
	if err != nil {
		return 0, err
	}
	h := 1 + max(lh, rh)
	if node.height != h {
		return 0, fmt.Errorf("node %v: stored height %d, actual %d", node.element, node.height, h)
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, fmt.Errorf("node %v: balance factor %d out of range", node.element, bf)
	}
	return h, nil
}
