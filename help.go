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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **treebench %s**

Times an unbalanced binary search tree against an AVL tree on the same records,
inserted once in sorted order and once shuffled.

Built with Go %s

# 1. Commands
* treebench run <csv file> <number of lines>: one benchmark run
* treebench sweep <csv file> <n1> [n2 ...]: one run per record count
* treebench show [int ...]: print a BST and an AVL tree built from integers
* treebench settings: print or create ~/.treebench.yaml

# 2. Input
A CSV file with a header line and at least 7 columns: album, track title,
track number, release year, lyrics, writers, Spotify id.

# 3. Output
Insertion and search times in seconds for Sorted BST, Random BST, Sorted AVL
and Random AVL. Every run appends one CSV line to the results file
(output.txt by default).

# 4. Baselines
Pass --baseline btree or --baseline llrb to time google/btree or the NVIDIA
sortedmap LLRB tree on the same input.

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
