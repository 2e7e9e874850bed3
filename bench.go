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
	"io"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/ansel1/merry"
	"github.com/cybrota/treebench/tree"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
)

// Measurement is the outcome of building one ordered set and looking up
// every record in it.
type Measurement struct {
	Name   string
	Insert time.Duration
	Search time.Duration
	Size   int
	Found  int
	// Height is 0 for sets that do not expose one.
	Height int
}

// Result holds the four core measurements in report order (sorted BST,
// random BST, sorted AVL, random AVL) followed by any baselines.
type Result struct {
	Records             int
	Seed                uint64
	SuspectedDuplicates int
	Trees               []Measurement
	Baselines           []Measurement
}

// Runner times insertion and lookup for sorted and shuffled copies of the
// same records.
type Runner struct {
	Seed      uint64
	Validate  bool
	Baselines []string
	// Progress receives the progress bar; nil disables it.
	Progress io.Writer
}

type variant struct {
	name  string
	set   orderedSet
	input []Track
}

func (r *Runner) variants(sorted, randomized []Track) ([]variant, error) {
	vs := []variant{
		{"Sorted BST", tree.NewBST[Track](), sorted},
		{"Random BST", tree.NewBST[Track](), randomized},
		{"Sorted AVL", tree.NewAVL[Track](), sorted},
		{"Random AVL", tree.NewAVL[Track](), randomized},
	}
	for _, name := range r.Baselines {
		newSet, ok := baselines[name]
		if !ok {
			return nil, merry.Errorf("unknown baseline %q", name).WithValue("baseline", name)
		}
		vs = append(vs,
			variant{"Sorted " + name, newSet(), sorted},
			variant{"Random " + name, newSet(), randomized},
		)
	}
	return vs, nil
}

// Run builds every variant, times it and returns the measurements.
func (r *Runner) Run(records []Track) (*Result, error) {
	seed := r.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	// Create sorted and randomized copies
	sorted := slices.Clone(records)
	slices.SortFunc(sorted, Track.Compare)
	randomized := slices.Clone(records)
	rng := rand.New(rand.NewPCG(seed, seed>>1))
	rng.Shuffle(len(randomized), func(i, j int) {
		randomized[i], randomized[j] = randomized[j], randomized[i]
	})

	vs, err := r.variants(sorted, randomized)
	if err != nil {
		return nil, err
	}

	bar := newPhaseBar(r.Progress, 2*len(vs))
	defer bar.finish()

	res := &Result{
		Records:             len(records),
		Seed:                seed,
		SuspectedDuplicates: suspectDuplicates(records),
	}

	measurements := make([]Measurement, len(vs))
	for i, v := range vs {
		bar.step("inserting: " + v.name)
		measurements[i] = Measurement{
			Name: v.name,
			Insert: timed(func() {
				for _, record := range v.input {
					v.set.Insert(record)
				}
			}),
			Size: v.set.Size(),
		}
		if h, ok := v.set.(interface{ Height() int }); ok {
			measurements[i].Height = h.Height()
		}
		if r.Validate {
			if err := validateSet(v); err != nil {
				return nil, err
			}
		}
	}

	// lookups use the records in file order, as loaded
	for i, v := range vs {
		bar.step("searching: " + v.name)
		found := 0
		measurements[i].Search = timed(func() {
			for _, record := range records {
				if v.set.Contains(record) {
					found++
				}
			}
		})
		measurements[i].Found = found
		if found != len(records) {
			log.WithFields(log.Fields{
				"set":     v.name,
				"found":   found,
				"records": len(records),
			}).Warn("lookups missed inserted records")
		}
	}

	res.Trees = measurements[:4]
	res.Baselines = measurements[4:]
	log.WithFields(log.Fields{
		"records": res.Records,
		"seed":    res.Seed,
	}).Debug("benchmark finished")
	return res, nil
}

func validateSet(v variant) error {
	checker, ok := v.set.(interface{ Validate() error })
	if !ok {
		return nil
	}
	if err := checker.Validate(); err != nil {
		return merry.Prependf(err, "%s failed validation", v.name).WithValue("set", v.name)
	}
	log.WithField("set", v.name).Debug("invariants hold")
	return nil
}

func timed(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

// phaseBar advances one tick per benchmark phase. A nil writer makes every
// method a no-op.
type phaseBar struct {
	bar *progressbar.ProgressBar
}

func newPhaseBar(w io.Writer, phases int) *phaseBar {
	if w == nil {
		return &phaseBar{}
	}
	return &phaseBar{
		bar: progressbar.NewOptions(phases,
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("Benchmarking..."),
			progressbar.OptionSetWidth(30),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
		),
	}
}

func (p *phaseBar) step(desc string) {
	if p.bar == nil {
		return
	}
	p.bar.Describe(desc)
	_ = p.bar.Add(1)
}

func (p *phaseBar) finish() {
	if p.bar == nil {
		return
	}
	_ = p.bar.Finish()
}
