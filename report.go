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
	"os"
	"strings"
	"time"

	"github.com/ansel1/merry"
	"github.com/charmbracelet/lipgloss"
)

// resultsHeader is written once, when the results file is empty.
const resultsHeader = "N, SortedBST_Insert, RandomBST_Insert, SortedAVL_Insert, RandomAVL_Insert," +
	"SortedBST_Search, RandomBST_Search, SortedAVL_Search, RandomAVL_Search"

// Styles holds the lipgloss styles used by the console output.
type Styles struct {
	Title   lipgloss.Style
	Section lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Warning lipgloss.Style
}

var styles = newStyles()

func newStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
		Section: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			MarginTop(1),
		Label: lipgloss.NewStyle().
			Width(14),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")),
	}
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.6f", d.Seconds())
}

// printReport writes the human readable summary of res to w.
func printReport(w io.Writer, res *Result) {
	fmt.Fprintln(w, styles.Title.Render(fmt.Sprintf("Number of records: %d", res.Records)))
	fmt.Fprintln(w, styles.Muted.Render(fmt.Sprintf("shuffle seed: %d", res.Seed)))
	if res.SuspectedDuplicates > 0 {
		fmt.Fprintln(w, styles.Warning.Render(fmt.Sprintf("possible duplicate identifiers: %d", res.SuspectedDuplicates)))
	}

	all := append(append([]Measurement{}, res.Trees...), res.Baselines...)

	section := func(title string, value func(Measurement) string) {
		rows := []string{styles.Section.Render(title)}
		for _, m := range all {
			rows = append(rows, styles.Label.Render(m.Name+":")+styles.Value.Render(value(m)))
		}
		fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	section("Insertion Times (seconds):", func(m Measurement) string { return seconds(m.Insert) })
	section("Search Times (seconds):", func(m Measurement) string { return seconds(m.Search) })
	section("Tree Heights:", func(m Measurement) string {
		if m.Height == 0 {
			return "-"
		}
		return fmt.Sprintf("%d", m.Height)
	})
}

// CSVLine renders the record count followed by the eight core timings.
func (res *Result) CSVLine() string {
	fields := []string{fmt.Sprintf("%d", res.Records)}
	for _, m := range res.Trees {
		fields = append(fields, seconds(m.Insert))
	}
	for _, m := range res.Trees {
		fields = append(fields, seconds(m.Search))
	}
	return strings.Join(fields, ",")
}

// appendResult appends res to the results file at path, writing the header
// first when the file is empty.
func appendResult(path string, res *Result) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return merry.Wrap(err).WithValue("path", path)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = merry.Wrap(cerr).WithValue("path", path)
		}
	}()

	info, err := file.Stat()
	if err != nil {
		return merry.Wrap(err).WithValue("path", path)
	}
	if info.Size() == 0 {
		if _, err := fmt.Fprintln(file, resultsHeader); err != nil {
			return merry.Wrap(err).WithValue("path", path)
		}
	}
	if _, err := fmt.Fprintln(file, res.CSVLine()); err != nil {
		return merry.Wrap(err).WithValue("path", path)
	}
	return nil
}
