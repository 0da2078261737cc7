// Copyright 2025 The similar authors
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

// Package textdiff renders human-readable deltas between sequences of text
// lines.
//
// [UnifiedDiff] and [ContextDiff] produce the two POSIX diff output formats.
// [NDiff] and [Differ] produce a legible line-by-line delta with intraline
// change markers, and [Restore] recovers either input from such a delta.
//
// Lines are compared including their terminators; inputs are expected to be
// already split, for example with [SplitLines]. No normalization of line
// endings or whitespace is performed; use the junk options for that.
package textdiff

import (
	"fmt"
	"strconv"
	"strings"

	"gestalt.dev/similar"
	"gestalt.dev/similar/internal/config"
)

// UnifiedDiff compares two sequences of lines and returns the delta as a
// unified diff, one output line per element.
//
// Unified diffs are a compact way of showing line changes plus a few lines
// of context. By default the diff control lines (those with ---, +++, or @@)
// are created with a trailing newline, matching inputs whose lines keep
// their trailing newlines; pass [LineTerm]("") for inputs without them.
//
// The following options are supported: [FromFile], [ToFile], [FromDate],
// [ToDate], [Context], [LineTerm].
func UnifiedDiff(a, b []string, opts ...Option) []string {
	cfg := config.FromOptions(opts, config.Headers)

	var out []string
	started := false
	m := similar.New(a, b)
	for _, group := range m.GetGroupedOpCodes(cfg.Context) {
		if !started {
			started = true
			fromDate, toDate := headerDates(cfg)
			out = append(out,
				fmt.Sprintf("--- %s%s%s", cfg.FromFile, fromDate, cfg.LineTerm),
				fmt.Sprintf("+++ %s%s%s", cfg.ToFile, toDate, cfg.LineTerm))
		}
		first, last := group[0], group[len(group)-1]
		out = append(out, fmt.Sprintf("@@ -%s +%s @@%s",
			formatRangeUnified(first.I1, last.I2),
			formatRangeUnified(first.J1, last.J2),
			cfg.LineTerm))
		for _, c := range group {
			if c.Tag == similar.OpEqual {
				for _, line := range a[c.I1:c.I2] {
					out = append(out, " "+line)
				}
				continue
			}
			if c.Tag == similar.OpReplace || c.Tag == similar.OpDelete {
				for _, line := range a[c.I1:c.I2] {
					out = append(out, "-"+line)
				}
			}
			if c.Tag == similar.OpReplace || c.Tag == similar.OpInsert {
				for _, line := range b[c.J1:c.J2] {
					out = append(out, "+"+line)
				}
			}
		}
	}
	return out
}

// ContextDiff compares two sequences of lines and returns the delta as a
// context diff, one output line per element.
//
// Context diffs show the changed regions of both inputs in full, each with a
// few lines of context. The same conventions as for [UnifiedDiff] apply to
// line terminators.
//
// The following options are supported: [FromFile], [ToFile], [FromDate],
// [ToDate], [Context], [LineTerm].
func ContextDiff(a, b []string, opts ...Option) []string {
	cfg := config.FromOptions(opts, config.Headers)

	prefix := map[similar.Op]string{
		similar.OpInsert:  "+ ",
		similar.OpDelete:  "- ",
		similar.OpReplace: "! ",
		similar.OpEqual:   "  ",
	}

	var out []string
	started := false
	m := similar.New(a, b)
	for _, group := range m.GetGroupedOpCodes(cfg.Context) {
		if !started {
			started = true
			fromDate, toDate := headerDates(cfg)
			out = append(out,
				fmt.Sprintf("*** %s%s%s", cfg.FromFile, fromDate, cfg.LineTerm),
				fmt.Sprintf("--- %s%s%s", cfg.ToFile, toDate, cfg.LineTerm))
		}
		first, last := group[0], group[len(group)-1]
		out = append(out, "***************"+cfg.LineTerm)

		out = append(out, fmt.Sprintf("*** %s ****%s", formatRangeContext(first.I1, last.I2), cfg.LineTerm))
		if anyTag(group, similar.OpReplace, similar.OpDelete) {
			for _, c := range group {
				if c.Tag == similar.OpInsert {
					continue
				}
				for _, line := range a[c.I1:c.I2] {
					out = append(out, prefix[c.Tag]+line)
				}
			}
		}

		out = append(out, fmt.Sprintf("--- %s ----%s", formatRangeContext(first.J1, last.J2), cfg.LineTerm))
		if anyTag(group, similar.OpReplace, similar.OpInsert) {
			for _, c := range group {
				if c.Tag == similar.OpDelete {
					continue
				}
				for _, line := range b[c.J1:c.J2] {
					out = append(out, prefix[c.Tag]+line)
				}
			}
		}
	}
	return out
}

func headerDates(cfg config.Config) (fromDate, toDate string) {
	if cfg.FromDate != "" {
		fromDate = "\t" + cfg.FromDate
	}
	if cfg.ToDate != "" {
		toDate = "\t" + cfg.ToDate
	}
	return fromDate, toDate
}

func anyTag(group []similar.OpCode, tags ...similar.Op) bool {
	for _, c := range group {
		for _, tag := range tags {
			if c.Tag == tag {
				return true
			}
		}
	}
	return false
}

// formatRangeUnified converts a half-open range to the unified format
// described in the Single Unix Specification: lines are numbered from one,
// a length of one omits the length, and empty ranges begin at the line just
// before the range.
func formatRangeUnified(start, stop int) string {
	beginning := start + 1
	length := stop - start
	if length == 1 {
		return strconv.Itoa(beginning)
	}
	if length == 0 {
		beginning--
	}
	return fmt.Sprintf("%d,%d", beginning, length)
}

// formatRangeContext converts a half-open range to the context format, which
// uses an inclusive end line instead of a length.
func formatRangeContext(start, stop int) string {
	beginning := start + 1
	length := stop - start
	if length == 0 {
		beginning--
	}
	if length <= 1 {
		return strconv.Itoa(beginning)
	}
	return fmt.Sprintf("%d,%d", beginning, beginning+length-1)
}

// SplitLines splits s after each "\n", keeping the terminators, and returns
// the lines in a form suitable for the delta functions in this package. A
// final line without a trailing newline is kept as is.
func SplitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	// SplitAfter adds an empty element after the last "\n"; it doesn't count
	// as a line.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
