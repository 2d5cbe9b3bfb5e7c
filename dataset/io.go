// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/princessdata/princess/base/errors"
)

// Delims are the supported field delimiters.
type Delims int32

const (
	// Detect reads the header line and uses whichever of
	// comma, tab or semicolon occurs most often in it.
	Detect Delims = iota

	// Comma is the comma rune delimiter, for CSV comma separated values
	Comma

	// Tab is the tab rune delimiter, for TSV tab separated values
	Tab

	// Semicolon is the semicolon rune delimiter, common in
	// locales that use a decimal comma.
	Semicolon
)

// Rune returns the delimiter rune. Detect returns a comma.
func (dl Delims) Rune() rune {
	switch dl {
	case Tab:
		return '\t'
	case Semicolon:
		return ';'
	}
	return ','
}

// ParseDelims returns the [Delims] for the given name:
// detect, comma, tab or semicolon.
func ParseDelims(s string) (Delims, error) {
	switch strings.ToLower(s) {
	case "", "detect":
		return Detect, nil
	case "comma":
		return Comma, nil
	case "tab":
		return Tab, nil
	case "semicolon":
		return Semicolon, nil
	}
	return Detect, fmt.Errorf("dataset: unknown delimiter %q", s)
}

// DetectDelims returns the delimiter that occurs most often
// in the given header line, preferring comma on ties.
func DetectDelims(header []byte) Delims {
	best, n := Comma, bytes.Count(header, []byte{','})
	for _, dl := range []Delims{Tab, Semicolon} {
		if c := bytes.Count(header, []byte(string(dl.Rune()))); c > n {
			best, n = dl, c
		}
	}
	return best
}

// Open reads a [Table] from the given delimited text file.
// It returns a [*LoadError] if the file does not exist or cannot be
// parsed, and a [*SchemaError] if required columns are absent.
func Open(filename string, delim Delims) (*Table, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, &LoadError{Path: filename, Err: err}
	}
	defer fp.Close()
	return read(fp, delim, filename)
}

// OpenFS is the version of [Open] that uses an [fs.FS] filesystem.
func OpenFS(fsys fs.FS, filename string, delim Delims) (*Table, error) {
	fp, err := fsys.Open(filename)
	if err != nil {
		return nil, &LoadError{Path: filename, Err: err}
	}
	defer fp.Close()
	return read(fp, delim, filename)
}

// Read reads a [Table] from delimited text, which must start with a header
// row naming the columns. Column order does not matter and extra columns
// are ignored. A leading UTF-8 or UTF-16 byte order mark is handled.
//
// Rows without a name or popularity are dropped. Numeric cells that cannot
// be parsed become [Missing] and are recorded as [CoercionWarning]s;
// for popularity this drops the row.
func Read(r io.Reader, delim Delims) (*Table, error) {
	return read(r, delim, "")
}

func read(r io.Reader, delim Delims, path string) (*Table, error) {
	data, err := readText(r)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if delim == Detect {
		hdr, _, _ := bytes.Cut(data, []byte{'\n'})
		delim = DetectDelims(hdr)
	}
	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = delim.Rune()
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &LoadError{Path: path, Err: errors.New("no header row")}
	}
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	cols, missing := columnIndexes(header)
	if len(missing) > 0 {
		return nil, &SchemaError{Path: path, Missing: missing, Similar: similarColumns(cols, missing)}
	}

	dt := &Table{Source: path}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		line, _ := cr.FieldPos(0)
		if len(rec) > len(header) {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("line %d: %d fields, but the header has %d", line, len(rec), len(header))}
		}
		dt.readRow(rec, cols, line)
	}

	for _, w := range dt.warnings {
		slog.Debug("coerced unparseable value to missing", "line", w.Line, "column", w.Column, "value", w.Value)
	}
	if n := len(dt.warnings); n > 0 {
		slog.Warn("numeric values could not be parsed and are treated as missing", "source", path, "count", n)
	}
	slog.Info("loaded dataset", "source", path, "rows", len(dt.rows), "dropped", dt.dropped)
	return dt, nil
}

// readText reads all of r as UTF-8 text, rejecting recognizably
// binary content and converting from UTF-16 if there is a byte order mark.
func readText(r io.Reader) ([]byte, error) {
	br := bufio.NewReaderSize(r, sniffLen)
	head, _ := br.Peek(sniffLen)
	if len(head) > 0 {
		if mt := mimetype.Detect(head); !isText(mt) {
			return nil, fmt.Errorf("%s content is not delimited text", mt)
		}
	}
	return io.ReadAll(transform.NewReader(br, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
}

// sniffLen is the number of leading bytes used to detect the content type.
const sniffLen = 3072

// isText returns whether mt is plain text or one of its subtypes,
// such as text/csv or text/tab-separated-values.
func isText(mt *mimetype.MIME) bool {
	for m := mt; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}

// columnIndexes returns the index of each column name in the header,
// and the [RequiredColumns] that are absent from it.
// The first of duplicated column names is used.
func columnIndexes(header []string) (idx map[string]int, missing []string) {
	idx = make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if _, has := idx[h]; !has {
			idx[h] = i
		}
	}
	for _, c := range RequiredColumns {
		if _, has := idx[c]; !has {
			missing = append(missing, c)
		}
	}
	return idx, missing
}

// SimilarityThreshold is the minimum case-insensitive Levenshtein
// similarity for a header name to be suggested for a missing column.
const SimilarityThreshold = 0.75

// similarColumns returns, for each missing column, the most similar
// header name that is not itself a required column.
func similarColumns(cols map[string]int, missing []string) map[string]string {
	lev := metrics.NewLevenshtein()
	lev.CaseSensitive = false
	var sim map[string]string
	for _, m := range missing {
		best, bestScore := "", SimilarityThreshold
		for h := range cols {
			if slices.Contains(RequiredColumns, h) {
				continue
			}
			score := strutil.Similarity(h, m, lev)
			if score > bestScore || (score == bestScore && (best == "" || h < best)) {
				best, bestScore = h, score
			}
		}
		if best != "" {
			if sim == nil {
				sim = map[string]string{}
			}
			sim[m] = best
		}
	}
	return sim
}

// readRow converts one record, appending it to the table unless
// it lacks a name or popularity.
func (dt *Table) readRow(rec []string, cols map[string]int, line int) {
	cell := func(col string) string {
		if i := cols[col]; i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	number := func(col string) Float {
		s := cell(col)
		f, ok := ParseFloat(s)
		if !ok {
			dt.warnings = append(dt.warnings, CoercionWarning{Line: line, Column: col, Value: s})
		}
		return f
	}
	category := func(col string) string {
		s := cell(col)
		if IsNull(s) {
			return ""
		}
		return s
	}

	name := cell(NameColumn)
	if IsNull(name) || IsNull(cell(PopularityColumn)) {
		dt.dropped++
		return
	}
	pop := number(PopularityColumn)
	if !pop.Valid {
		dt.dropped++
		return
	}
	dt.rows = append(dt.rows, Row{
		Name:        name,
		Popularity:  pop.Value,
		HairColor:   category(HairColorColumn),
		EyeColor:    category(EyeColorColumn),
		Iconic:      category(IconicColumn),
		TikTokViews: number(TikTokViewsColumn),
		BoxOffice:   number(BoxOfficeColumn),
		Line:        line,
	})
}
