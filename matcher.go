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

package similar

import (
	"cmp"
	"slices"
)

// autoJunkMinLen is the minimum length of the second sequence before the
// automatic junk heuristic considers popular elements.
const autoJunkMinLen = 200

// SequenceMatcher compares two sequences of comparable elements.
//
// The basic algorithm predates, and is a little fancier than, an algorithm
// published in the late 1980's by Ratcliff and Obershelp under the hyperbolic
// name "gestalt pattern matching". The idea is to find the longest contiguous
// matching block that contains no junk elements, then to apply the same idea
// recursively to the pieces to the left and to the right of that block. The
// result is not a minimal edit sequence, but it tends to be one that looks
// right to people, and it is the least vulnerable to synching up on blocks of
// junk lines.
//
// A matcher is not safe for concurrent use: queries memoize their results on
// first call. To compare one sequence against many others from multiple
// goroutines, give each goroutine its own matcher.
type SequenceMatcher[T comparable] struct {
	a, b     []T
	isJunk   func(T) bool
	autoJunk bool

	// Derived from b: element -> ascending positions in b, with junk and
	// popular elements removed.
	b2j      map[T][]int
	bJunk    map[T]struct{}
	bPopular map[T]struct{}

	// Memoization slots. matchingBlocks always ends with the sentinel, and
	// opCodes is always non-nil once computed, so nil reliably means "not
	// computed yet".
	matchingBlocks []Match
	opCodes        []OpCode

	// Lazily materialized element -> multiplicity in b, used by QuickRatio.
	fullBCount map[T]int
}

// New returns a matcher comparing a and b with no junk filter and the
// automatic junk heuristic enabled.
func New[T comparable](a, b []T) *SequenceMatcher[T] {
	m := &SequenceMatcher[T]{autoJunk: true}
	m.SetSeqs(a, b)
	return m
}

// NewWithJunk returns a matcher comparing a and b.
//
// isJunk, if non-nil, reports elements that are uninteresting as the core of
// a match: a matching block never starts or grows through junk, though
// identical junk adjacent to an interesting match is absorbed into it. A
// typical predicate for line sequences tests for blank lines.
//
// autoJunk enables a heuristic that additionally treats an element as junk
// when b has at least 200 elements and the element's occurrences after its
// first account for more than 1% of b. This speeds up
// matching of long sequences with many repeated elements considerably.
func NewWithJunk[T comparable](a, b []T, autoJunk bool, isJunk func(T) bool) *SequenceMatcher[T] {
	m := &SequenceMatcher[T]{isJunk: isJunk, autoJunk: autoJunk}
	m.SetSeqs(a, b)
	return m
}

// SetSeqs sets both sequences to be compared.
func (m *SequenceMatcher[T]) SetSeqs(a, b []T) {
	m.SetSeq1(a)
	m.SetSeq2(b)
}

// SetSeq1 sets the first sequence to be compared; the second is unchanged.
//
// The matcher computes and caches detailed information about the second
// sequence, and SetSeq1 preserves all of it. To compare one sequence against
// many others, set the shared sequence with [SequenceMatcher.SetSeq2] once
// and call SetSeq1 repeatedly.
func (m *SequenceMatcher[T]) SetSeq1(a []T) {
	m.a = a
	m.matchingBlocks = nil
	m.opCodes = nil
}

// SetSeq2 sets the second sequence to be compared; the first is unchanged.
// All information derived from the second sequence is rebuilt.
func (m *SequenceMatcher[T]) SetSeq2(b []T) {
	m.b = b
	m.matchingBlocks = nil
	m.opCodes = nil
	m.fullBCount = nil
	m.chainB()
}

// chainB builds b2j together with the junk and popular element sets.
//
// Junk filtering deliberately runs over the keys of b2j instead of the
// elements of b so that the predicate is called once per distinct element,
// not once per position.
func (m *SequenceMatcher[T]) chainB() {
	b2j := make(map[T][]int, len(m.b))
	for i, elt := range m.b {
		b2j[elt] = append(b2j[elt], i)
	}

	m.bJunk = map[T]struct{}{}
	if m.isJunk != nil {
		for elt := range b2j {
			if m.isJunk(elt) {
				m.bJunk[elt] = struct{}{}
			}
		}
		for elt := range m.bJunk {
			delete(b2j, elt)
		}
	}

	// Purge popular elements that are not junk.
	m.bPopular = map[T]struct{}{}
	if m.autoJunk && len(m.b) >= autoJunkMinLen {
		ntest := len(m.b)/100 + 1
		for elt, idxs := range b2j {
			if len(idxs) > ntest {
				m.bPopular[elt] = struct{}{}
			}
		}
		for elt := range m.bPopular {
			delete(b2j, elt)
		}
	}

	m.b2j = b2j
}

func (m *SequenceMatcher[T]) isBJunk(elt T) bool {
	_, ok := m.bJunk[elt]
	return ok
}

// FindLongestMatch finds the longest matching block in a[alo:ahi] and
// b[blo:bhi].
//
// Without a junk filter, it returns a Match (i, j, k) with a[i:i+k] equal to
// b[j:j+k], where alo <= i <= i+k <= ahi and blo <= j <= j+k <= bhi, and for
// all other candidate triples (i', j', k'): k >= k', and if k == k' then
// i <= i', and if also i == i' then j <= j'. Of all maximal matching blocks,
// this is the one starting earliest in a, and of those, the one starting
// earliest in b.
//
// With a junk filter, the longest block containing no junk element is found
// first, then extended as far as possible by matching junk on both sides. The
// resulting block never matches on junk except where identical junk happens
// to be adjacent to an interesting match.
//
// If no block matches, the result is (alo, blo, 0).
func (m *SequenceMatcher[T]) FindLongestMatch(alo, ahi, blo, bhi int) Match {
	// CAUTION: stripping a common prefix or suffix first would be incorrect.
	// Consider a = "ab", b = "acab": the longest matching block is the
	// trailing "ab", but with the common prefix stripped it degrades to "a"
	// (tied with "b"), and downstream opcodes then claim that "ca" was
	// inserted in the middle. Minimal, but unintuitive: "it's obvious" that
	// someone prepended "ac".
	besti, bestj, bestsize := alo, blo, 0

	// Find the longest junk-free match. During the i-th pass, j2len[j] is
	// the length of the longest junk-free match ending with a[i-1] and b[j].
	// The two maps are swapped and cleared instead of reallocated; the new
	// row must only ever read j2len[j-1] from the previous row, which holds
	// because positions in b2j are ascending.
	j2len := map[int]int{}
	newj2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		// Look at all instances of a[i] in b. b2j has no junk or popular
		// keys, so the loop body is skipped entirely if a[i] is junk.
		for _, j := range m.b2j[m.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len, newj2len = newj2len, j2len
		clear(newj2len)
	}

	// Extend the best match by non-junk elements on each end. "Popular"
	// non-junk elements were purged from b2j, which greatly speeds the inner
	// loop above but also means the best match so far contains neither junk
	// nor popular elements; those can still be soaked up at the edges here.
	for besti > alo && bestj > blo && !m.isBJunk(m.b[bestj-1]) &&
		m.a[besti-1] == m.b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi &&
		!m.isBJunk(m.b[bestj+bestsize]) &&
		m.a[besti+bestsize] == m.b[bestj+bestsize] {
		bestsize++
	}

	// Now that the match is wholly interesting (though possibly empty), suck
	// up adjacent matching junk on both sides too. This avoids the expense
	// of post-processing stray junk later, and for an empty interesting
	// match it is the only kind of match the regions allow.
	for besti > alo && bestj > blo && m.isBJunk(m.b[bestj-1]) &&
		m.a[besti-1] == m.b[bestj-1] {
		besti, bestj, bestsize = besti-1, bestj-1, bestsize+1
	}
	for besti+bestsize < ahi && bestj+bestsize < bhi &&
		m.isBJunk(m.b[bestj+bestsize]) &&
		m.a[besti+bestsize] == m.b[bestj+bestsize] {
		bestsize++
	}

	return Match{A: besti, B: bestj, Size: bestsize}
}

// GetMatchingBlocks returns the list of triples describing the matching
// subsequences.
//
// The triples are monotonically increasing in A and in B, and no two adjacent
// triples describe adjacent equal blocks. The last triple is the sentinel
// (len(a), len(b), 0); it is the only triple with Size == 0.
//
// The result is memoized; callers must not modify it.
func (m *SequenceMatcher[T]) GetMatchingBlocks() []Match {
	if m.matchingBlocks != nil {
		return m.matchingBlocks
	}

	// Divide and conquer with an explicit stack of windows instead of
	// recursion: inputs large enough to overflow the goroutine stack have
	// been observed in practice.
	type window struct {
		alo, ahi, blo, bhi int
	}
	queue := []window{{0, len(m.a), 0, len(m.b)}}
	var matched []Match
	for len(queue) > 0 {
		w := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		match := m.FindLongestMatch(w.alo, w.ahi, w.blo, w.bhi)
		if match.Size == 0 {
			continue
		}
		// a[alo:i] vs b[blo:j] is unexamined to the left of the match and
		// a[i+k:ahi] vs b[j+k:bhi] to the right; examine whichever is
		// non-empty on both sides.
		matched = append(matched, match)
		if w.alo < match.A && w.blo < match.B {
			queue = append(queue, window{w.alo, match.A, w.blo, match.B})
		}
		if match.A+match.Size < w.ahi && match.B+match.Size < w.bhi {
			queue = append(queue, window{match.A + match.Size, w.ahi, match.B + match.Size, w.bhi})
		}
	}
	slices.SortFunc(matched, func(x, y Match) int {
		if c := cmp.Compare(x.A, y.A); c != 0 {
			return c
		}
		if c := cmp.Compare(x.B, y.B); c != 0 {
			return c
		}
		return cmp.Compare(x.Size, y.Size)
	})

	// The junk extension in FindLongestMatch can make two independently
	// discovered matches abut; collapse such adjacent blocks into one.
	nonAdjacent := make([]Match, 0, len(matched)+1)
	i1, j1, k1 := 0, 0, 0
	for _, match := range matched {
		i2, j2, k2 := match.A, match.B, match.Size
		if i1+k1 == i2 && j1+k1 == j2 {
			k1 += k2
		} else {
			// k1 == 0 means the pending block is the dummy we started with.
			if k1 > 0 {
				nonAdjacent = append(nonAdjacent, Match{i1, j1, k1})
			}
			i1, j1, k1 = i2, j2, k2
		}
	}
	if k1 > 0 {
		nonAdjacent = append(nonAdjacent, Match{i1, j1, k1})
	}
	nonAdjacent = append(nonAdjacent, Match{len(m.a), len(m.b), 0})

	m.matchingBlocks = nonAdjacent
	return m.matchingBlocks
}

// GetOpCodes returns the list of opcodes describing how to turn the first
// sequence into the second.
//
// The first opcode has I1 == J1 == 0, each subsequent opcode starts where the
// previous one ended, and the last one ends at (len(a), len(b)).
//
// The result is memoized; callers must not modify it.
func (m *SequenceMatcher[T]) GetOpCodes() []OpCode {
	if m.opCodes != nil {
		return m.opCodes
	}
	blocks := m.GetMatchingBlocks()
	opCodes := make([]OpCode, 0, len(blocks))
	i, j := 0, 0
	for _, block := range blocks {
		// Invariant: correct opcodes for a[:i] -> b[:j] have been emitted
		// and the next matching block is a[ai:ai+size] == b[bj:bj+size], so
		// the gap a[i:ai] -> b[j:bj] needs exactly one opcode before the
		// match itself is emitted.
		ai, bj, size := block.A, block.B, block.Size
		var tag Op
		switch {
		case i < ai && j < bj:
			tag = OpReplace
		case i < ai:
			tag = OpDelete
		case j < bj:
			tag = OpInsert
		}
		if tag != OpEqual {
			opCodes = append(opCodes, OpCode{tag, i, ai, j, bj})
		}
		i, j = ai+size, bj+size
		// The sentinel block has size 0 and emits nothing.
		if size > 0 {
			opCodes = append(opCodes, OpCode{OpEqual, ai, i, bj, j})
		}
	}
	m.opCodes = opCodes
	return m.opCodes
}

// GetGroupedOpCodes isolates change clusters by eliminating ranges with no
// changes, returning groups of opcodes with up to n common elements of
// leading and trailing context. A negative n selects the default of 3.
func (m *SequenceMatcher[T]) GetGroupedOpCodes(n int) [][]OpCode {
	if n < 0 {
		n = 3
	}
	codes := slices.Clone(m.GetOpCodes())
	if len(codes) == 0 {
		codes = []OpCode{{OpEqual, 0, 1, 0, 1}}
	}
	// Clip leading and trailing equal opcodes down to n elements of context.
	if c := codes[0]; c.Tag == OpEqual {
		codes[0] = OpCode{c.Tag, max(c.I1, c.I2-n), c.I2, max(c.J1, c.J2-n), c.J2}
	}
	if c := codes[len(codes)-1]; c.Tag == OpEqual {
		codes[len(codes)-1] = OpCode{c.Tag, c.I1, min(c.I2, c.I1+n), c.J1, min(c.J2, c.J1+n)}
	}

	var groups [][]OpCode
	var group []OpCode
	for _, c := range codes {
		i1, j1 := c.I1, c.J1
		// An equal opcode spanning more than 2n elements ends the current
		// group; its first n elements become trailing context and its last n
		// leading context for the next group.
		if c.Tag == OpEqual && c.I2-c.I1 > 2*n {
			group = append(group, OpCode{c.Tag, i1, min(c.I2, i1+n), j1, min(c.J2, j1+n)})
			groups = append(groups, group)
			group = nil
			i1, j1 = max(i1, c.I2-n), max(j1, c.J2-n)
		}
		group = append(group, OpCode{c.Tag, i1, c.I2, j1, c.J2})
	}
	if len(group) > 0 && !(len(group) == 1 && group[0].Tag == OpEqual) {
		groups = append(groups, group)
	}
	return groups
}

// Ratio returns a measure of the sequences' similarity as a float in [0, 1].
//
// Where T is the total number of elements in both sequences and M is the
// number of matches, this is 2.0*M / T. It is 1.0 if the sequences are
// identical and 0.0 if they have nothing in common.
//
// Ratio is expensive to compute if [SequenceMatcher.GetMatchingBlocks] or
// [SequenceMatcher.GetOpCodes] hasn't already been called, in which case
// [SequenceMatcher.QuickRatio] or [SequenceMatcher.RealQuickRatio] may be
// worth trying first to obtain a cheap upper bound.
func (m *SequenceMatcher[T]) Ratio() float64 {
	matches := 0
	for _, block := range m.GetMatchingBlocks() {
		matches += block.Size
	}
	return calculateRatio(matches, len(m.a)+len(m.b))
}

// QuickRatio returns an upper bound on [SequenceMatcher.Ratio] relatively
// quickly.
func (m *SequenceMatcher[T]) QuickRatio() float64 {
	// Viewing a and b as multisets, count the cardinality of their
	// intersection; this counts matches without regard to order, so is
	// clearly an upper bound.
	if m.fullBCount == nil {
		m.fullBCount = make(map[T]int, len(m.b))
		for _, elt := range m.b {
			m.fullBCount[elt]++
		}
	}

	// avail[elt] is the number of times elt appears in b less the number of
	// times it has been seen in a so far.
	avail := make(map[T]int)
	matches := 0
	for _, elt := range m.a {
		n, seen := avail[elt]
		if !seen {
			n = m.fullBCount[elt]
		}
		avail[elt] = n - 1
		if n > 0 {
			matches++
		}
	}
	return calculateRatio(matches, len(m.a)+len(m.b))
}

// RealQuickRatio returns an upper bound on [SequenceMatcher.Ratio] very
// quickly, considering only the sequence lengths.
func (m *SequenceMatcher[T]) RealQuickRatio() float64 {
	la, lb := len(m.a), len(m.b)
	return calculateRatio(min(la, lb), la+lb)
}

func calculateRatio(matches, length int) float64 {
	if length > 0 {
		return 2.0 * float64(matches) / float64(length)
	}
	return 1.0
}
