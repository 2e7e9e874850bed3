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
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ansel1/merry"
	log "github.com/sirupsen/logrus"
	"github.com/willf/bloom"
)

// minFields is the number of columns a data row must carry: album, track
// title, track number, release year, lyrics, writers, Spotify id.
const minFields = 7

// ErrInvalidRow is the root of every malformed-row error; use merry.Is to
// test for it. The "line" value holds the 1-based line number.
var ErrInvalidRow = merry.New("invalid row")

// Dataset is the result of parsing a CSV file.
type Dataset struct {
	Path   string
	Limit  int
	Tracks []Track
	// Skipped counts malformed rows dropped when skipping is enabled.
	Skipped int
	// Exhausted is true when the file ended before Limit rows were read.
	Exhausted bool
}

// LoadTracks reads at most limit data rows from the CSV file at path. A
// limit <= 0 reads the whole file.
func LoadTracks(path string, limit int, skipInvalid bool) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, merry.Errorf("dataset file %s not found", path).WithValue("path", path)
		}
		return nil, merry.Wrap(err).WithValue("path", path)
	}
	defer file.Close()

	ds, err := ParseTracks(file, limit, skipInvalid)
	if err != nil {
		return nil, merry.WithValue(err, "path", path)
	}
	ds.Path = path
	return ds, nil
}

// ParseTracks reads the header line and then up to limit data rows.
func ParseTracks(r io.Reader, limit int, skipInvalid bool) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	ds := &Dataset{Limit: limit}

	// ignore first line (header)
	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			ds.Exhausted = true
			return ds, nil
		}
		return nil, merry.Prependf(err, "read header")
	}

	for limit <= 0 || len(ds.Tracks) < limit {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			ds.Exhausted = true
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) && skipInvalid {
				log.WithField("line", parseErr.Line).WithError(err).Warn("skipping unreadable row")
				ds.Skipped++
				continue
			}
			return nil, merry.Wrap(err)
		}

		line, _ := reader.FieldPos(0)
		track, err := parseTrack(record, line)
		if err != nil {
			if !skipInvalid {
				return nil, err
			}
			log.WithField("line", line).Warn(err.Error())
			ds.Skipped++
			continue
		}
		ds.Tracks = append(ds.Tracks, track)
	}

	log.WithFields(log.Fields{
		"tracks":  len(ds.Tracks),
		"skipped": ds.Skipped,
	}).Debug("parsed dataset")
	return ds, nil
}

func parseTrack(record []string, line int) (Track, error) {
	if len(record) < minFields {
		return Track{}, merry.WithValue(
			merry.Appendf(ErrInvalidRow, "line %d: expected at least %d fields, got %d", line, minFields, len(record)),
			"line", line)
	}
	number, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return Track{}, merry.WithValue(
			merry.Appendf(ErrInvalidRow, "line %d: track number %q is not numeric", line, strings.TrimSpace(record[2])),
			"line", line)
	}
	return Track{
		Album:     strings.TrimSpace(record[0]),
		Title:     strings.TrimSpace(record[1]),
		Number:    number,
		Year:      strings.TrimSpace(record[3]),
		Lyrics:    strings.TrimSpace(record[4]),
		Writers:   strings.TrimSpace(record[5]),
		SpotifyID: strings.TrimSpace(record[6]),
	}, nil
}

// suspectDuplicates runs the Spotify ids through a bloom filter and counts
// the ids the filter has probably seen before. False positives are
// possible; the count is an upper bound.
func suspectDuplicates(tracks []Track) int {
	n := uint(len(tracks))
	if n < 1000 {
		n = 1000
	}
	filter := bloom.NewWithEstimates(n, 0.001)

	suspects := 0
	for _, t := range tracks {
		if t.SpotifyID == "" {
			continue
		}
		if filter.TestAndAdd([]byte(t.SpotifyID)) {
			suspects++
			log.WithFields(log.Fields{
				"id":    t.SpotifyID,
				"track": t.String(),
			}).Warn("possible duplicate identifier")
		}
	}
	return suspects
}
