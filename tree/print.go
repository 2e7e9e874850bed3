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
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Fprint writes a sideways ASCII picture of the subtree at root to w: the
// right subtree above, the left subtree below. It returns the number of
// levels printed.
func Fprint[T any](w io.Writer, root *Node[T]) int {
	return fprint(w, root, "", rootBranch)
}

func fprint[T any](w io.Writer, node *Node[T], prefix string, br branch) int {
	if node == nil {
		return 0
	}
	rd := 0
	ld := 0
	if node.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = fprint(w, node.right, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if node.height > 0 {
		fmt.Fprintf(w, "%v h=%d bf=%+d\n", node.element, node.height, balanceFactor(node))
	} else {
		fmt.Fprintf(w, "%v\n", node.element)
	}
	if node.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = fprint(w, node.left, prefix+t, leftBranch)
	}
	return 1 + max(rd, ld)
}
