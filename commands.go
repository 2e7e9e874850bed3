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
	"io"
	"slices"
	"strconv"

	"github.com/ansel1/merry"
	"github.com/atotto/clipboard"
	"github.com/cybrota/treebench/tree"
	"github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type benchOptions struct {
	OutputFile   string
	Seed         uint64
	ShowProgress bool
	Validate     bool
	SkipInvalid  bool
	Baselines    []string
	Copy         bool
	Repeat       int
}

func (o benchOptions) validate() error {
	for _, name := range o.Baselines {
		if _, ok := baselines[name]; !ok {
			return merry.Errorf("unknown baseline %q, expected one of %v", name, baselineNames())
		}
	}
	if o.Repeat < 1 {
		return merry.Errorf("repeat must be at least 1, got %d", o.Repeat)
	}
	if o.OutputFile == "" {
		return merry.New("output file must not be empty")
	}
	return nil
}

func (o benchOptions) runner(progress io.Writer) *Runner {
	r := &Runner{
		Seed:      o.Seed,
		Validate:  o.Validate,
		Baselines: o.Baselines,
	}
	if o.ShowProgress {
		r.Progress = progress
	}
	return r
}

func parseLineCount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, merry.Errorf("number of lines must be a positive integer, got %q", arg).WithValue("arg", arg)
	}
	return n, nil
}

func runBenchmark(cmd *cobra.Command, datasets *cache.Cache, path, lines string, opts benchOptions) error {
	n, err := parseLineCount(lines)
	if err != nil {
		return err
	}

	for i := 0; i < opts.Repeat; i++ {
		ds, err := CachedTracks(datasets, path, n, opts.SkipInvalid)
		if err != nil {
			return err
		}
		res, err := benchmarkDataset(cmd, ds, opts)
		if err != nil {
			return err
		}
		if opts.Copy {
			if err := clipboard.WriteAll(res.CSVLine()); err != nil {
				log.WithError(err).Warn("could not copy result to clipboard")
			} else {
				log.Info("result line copied to clipboard")
			}
		}
	}
	return nil
}

func runSweep(cmd *cobra.Command, datasets *cache.Cache, path string, counts []string, opts benchOptions) error {
	ns := make([]int, 0, len(counts))
	for _, arg := range counts {
		n, err := parseLineCount(arg)
		if err != nil {
			return err
		}
		ns = append(ns, n)
	}

	// parse once, at the largest size; every other run is a cache hit
	if _, err := CachedTracks(datasets, path, slices.Max(ns), opts.SkipInvalid); err != nil {
		return err
	}

	for _, n := range ns {
		ds, err := CachedTracks(datasets, path, n, opts.SkipInvalid)
		if err != nil {
			return err
		}
		if _, err := benchmarkDataset(cmd, ds, opts); err != nil {
			return err
		}
	}
	return nil
}

func benchmarkDataset(cmd *cobra.Command, ds *Dataset, opts benchOptions) (*Result, error) {
	if len(ds.Tracks) < ds.Limit {
		log.WithFields(log.Fields{
			"requested": ds.Limit,
			"loaded":    len(ds.Tracks),
		}).Warn("dataset has fewer rows than requested")
	}

	res, err := opts.runner(cmd.ErrOrStderr()).Run(ds.Tracks)
	if err != nil {
		return nil, err
	}

	printReport(cmd.OutOrStdout(), res)
	if err := appendResult(opts.OutputFile, res); err != nil {
		return nil, err
	}
	log.WithField("path", opts.OutputFile).Debug("result appended")
	return res, nil
}

var defaultShowKeys = []int{5, 3, 8, 1, 4, 7, 9}

// showTrees inserts the integers in args into both trees, removes the ones
// in remove and prints both trees.
func showTrees(w io.Writer, args []string, remove []int) error {
	keys := defaultShowKeys
	if len(args) > 0 {
		keys = make([]int, 0, len(args))
		for _, arg := range args {
			k, err := strconv.Atoi(arg)
			if err != nil {
				return merry.Errorf("%q is not an integer", arg).WithValue("arg", arg)
			}
			keys = append(keys, k)
		}
	}

	bst := tree.NewBST[tree.Ordered[int]]()
	avl := tree.NewAVL[tree.Ordered[int]]()
	for _, k := range tree.Of(keys...) {
		bst.Insert(k)
		avl.Insert(k)
	}
	for _, k := range tree.Of(remove...) {
		bst.Remove(k)
		avl.Remove(k)
	}

	fmt.Fprintln(w, styles.Section.Render(fmt.Sprintf("BST: size %d, height %d", bst.Size(), bst.Height())))
	tree.Fprint(w, bst.Root())
	fmt.Fprintln(w, styles.Section.Render(fmt.Sprintf("AVL: size %d, height %d", avl.Size(), avl.Height())))
	tree.Fprint(w, avl.Root())

	for _, err := range []error{bst.Validate(), avl.Validate()} {
		if err != nil {
			return merry.Wrap(err)
		}
	}
	return nil
}
