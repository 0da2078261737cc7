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

// Package similar computes human-friendly differences between two sequences
// of comparable elements.
//
// The central type is [SequenceMatcher], a Ratcliff/Obershelp style matcher
// extended with support for "junk" elements supplied by the caller. Unlike
// minimal-edit algorithms such as Myers', the fundamental notion here is the
// longest contiguous junk-free matching block: applying that idea recursively
// to the pieces left and right of each match does not yield minimal edit
// sequences, but it tends to yield diffs that look right to people and that
// don't synchronize on blocks of junk (blank lines in text, whitespace inside
// a line).
//
// From the matching blocks, [SequenceMatcher.GetOpCodes] derives edit
// opcodes, [SequenceMatcher.GetGroupedOpCodes] clusters them into hunks with
// bounded context, and [SequenceMatcher.Ratio] measures similarity.
// [GetCloseMatches] ranks a list of candidate strings by similarity to a
// target word.
//
// Performance: worst case is quadratic time; the expected case depends in a
// complicated way on how many elements the sequences have in common. The
// matcher caches detailed information about the second sequence, so comparing
// one sequence against many others is fastest with [SequenceMatcher.SetSeq2]
// called once and [SequenceMatcher.SetSeq1] called per comparison.
//
// Note: For rendering line-by-line text deltas (unified diffs, context
// diffs, ndiff-style deltas with intraline markers), please see
// [gestalt.dev/similar/textdiff].
//
// [gestalt.dev/similar/textdiff]: https://pkg.go.dev/gestalt.dev/similar/textdiff
package similar
