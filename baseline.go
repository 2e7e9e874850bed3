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
	"sort"

	"github.com/NVIDIA/sortedmap"
	"github.com/ansel1/merry"
	"github.com/google/btree"
	log "github.com/sirupsen/logrus"
)

// orderedSet is what the benchmark drives: the two trees under test and
// the baselines all satisfy it.
type orderedSet interface {
	Insert(Track) bool
	Contains(Track) bool
	Size() int
}

// btreeDegree matches the library's own benchmarks
const btreeDegree = 32

// btreeSet times google/btree as a reference ordered set.
type btreeSet struct {
	tree *btree.BTreeG[Track]
}

func newBTreeSet() *btreeSet {
	return &btreeSet{
		tree: btree.NewG(btreeDegree, func(a, b Track) bool { return a.Compare(b) < 0 }),
	}
}

func (s *btreeSet) Insert(t Track) bool {
	_, replaced := s.tree.ReplaceOrInsert(t)
	return !replaced
}

func (s *btreeSet) Contains(t Track) bool {
	return s.tree.Has(t)
}

func (s *btreeSet) Size() int {
	return s.tree.Len()
}

// llrbSet times the NVIDIA sortedmap left-leaning red-black tree.
type llrbSet struct {
	tree sortedmap.LLRBTree
}

func newLLRBSet() *llrbSet {
	s := &llrbSet{}
	s.tree = sortedmap.NewLLRBTree(compareTrackKeys, s)
	return s
}

func compareTrackKeys(key1 sortedmap.Key, key2 sortedmap.Key) (int, error) {
	a, ok := key1.(Track)
	if !ok {
		return 0, merry.Errorf("llrb key %v is %T, not Track", key1, key1)
	}
	b, ok := key2.(Track)
	if !ok {
		return 0, merry.Errorf("llrb key %v is %T, not Track", key2, key2)
	}
	return a.Compare(b), nil
}

func (s *llrbSet) DumpKey(key sortedmap.Key) (string, error) {
	return fmt.Sprint(key), nil
}

func (s *llrbSet) DumpValue(value sortedmap.Value) (string, error) {
	return fmt.Sprint(value), nil
}

func (s *llrbSet) Insert(t Track) bool {
	ok, err := s.tree.Put(t, struct{}{})
	if err != nil {
		log.WithError(err).Error("llrb put failed")
		return false
	}
	return ok
}

func (s *llrbSet) Contains(t Track) bool {
	_, ok, err := s.tree.GetByKey(t)
	if err != nil {
		log.WithError(err).Error("llrb lookup failed")
		return false
	}
	return ok
}

func (s *llrbSet) Size() int {
	n, err := s.tree.Len()
	if err != nil {
		log.WithError(err).Error("llrb len failed")
		return 0
	}
	return n
}

func (s *llrbSet) Validate() error {
	return s.tree.Validate()
}

var baselines = map[string]func() orderedSet{
	"btree": func() orderedSet { return newBTreeSet() },
	"llrb":  func() orderedSet { return newLLRBSet() },
}

func baselineNames() []string {
	names := make([]string, 0, len(baselines))
	for name := range baselines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
