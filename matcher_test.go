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
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func isSpace(r rune) bool { return r == ' ' }

func TestFindLongestMatch(t *testing.T) {
	tests := []struct {
		name               string
		a, b               string
		isJunk             func(rune) bool
		alo, ahi, blo, bhi int
		want               Match
	}{
		{
			name: "no-junk",
			a:    " abcd",
			b:    "abcd abcd",
			alo:  0, ahi: 5, blo: 0, bhi: 9,
			want: Match{A: 0, B: 4, Size: 5},
		},
		{
			name:   "space-junk",
			a:      " abcd",
			b:      "abcd abcd",
			isJunk: isSpace,
			alo:    0, ahi: 5, blo: 0, bhi: 9,
			want: Match{A: 1, B: 0, Size: 4},
		},
		{
			name: "empty-windows",
			a:    "abc",
			b:    "abc",
			alo:  1, ahi: 1, blo: 2, bhi: 2,
			want: Match{A: 1, B: 2, Size: 0},
		},
		{
			name: "no-common-prefix-stripping",
			// The intuitive longest match is the trailing "ab"; stripping
			// the common prefix first would settle on "a".
			a:   "ab",
			b:   "acab",
			alo: 0, ahi: 2, blo: 0, bhi: 4,
			want: Match{A: 0, B: 2, Size: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewWithJunk([]rune(tt.a), []rune(tt.b), true, tt.isJunk)
			got := m.FindLongestMatch(tt.alo, tt.ahi, tt.blo, tt.bhi)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FindLongestMatch(...) result is different [-want, +got]:\n%s", diff)
			}
		})
	}
}

func TestGetMatchingBlocks(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		isJunk func(rune) bool
		want   []Match
	}{
		{
			name:   "junk-absorbed-at-edges",
			a:      "private Thread currentThread;",
			b:      "private volatile Thread currentThread;",
			isJunk: isSpace,
			want: []Match{
				{A: 0, B: 0, Size: 8},
				{A: 8, B: 17, Size: 21},
				{A: 29, B: 38, Size: 0},
			},
		},
		{
			name: "interleaved",
			a:    "qabxcd",
			b:    "abycdf",
			want: []Match{
				{A: 1, B: 0, Size: 2},
				{A: 4, B: 3, Size: 2},
				{A: 6, B: 6, Size: 0},
			},
		},
		{
			name: "empty-both",
			a:    "",
			b:    "",
			want: []Match{{A: 0, B: 0, Size: 0}},
		},
		{
			name: "empty-a",
			a:    "",
			b:    "ab",
			want: []Match{{A: 0, B: 2, Size: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewWithJunk([]rune(tt.a), []rune(tt.b), true, tt.isJunk)
			got := m.GetMatchingBlocks()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GetMatchingBlocks() result is different [-want, +got]:\n%s", diff)
			}
		})
	}
}

// Matching blocks are strictly ascending in both coordinates, non-touching,
// element-wise equal, and sentinel-terminated, for arbitrary inputs.
func TestMatchingBlockInvariants(t *testing.T) {
	pairs := []struct{ a, b string }{
		{"abcd", "bcde"},
		{"qabxcd", "abycdf"},
		{"private Thread currentThread;", "private volatile Thread currentThread;"},
		{"", ""},
		{"aaaaabbbbb", "bbbbbaaaaa"},
		{strings.Repeat("ab", 150), strings.Repeat("ba", 150)},
	}
	for _, p := range pairs {
		t.Run(fmt.Sprintf("%.10q-%.10q", p.a, p.b), func(t *testing.T) {
			a, b := []rune(p.a), []rune(p.b)
			blocks := New(a, b).GetMatchingBlocks()
			if len(blocks) == 0 {
				t.Fatal("no sentinel block")
			}
			sentinel := blocks[len(blocks)-1]
			if want := (Match{len(a), len(b), 0}); sentinel != want {
				t.Errorf("sentinel = %v, want %v", sentinel, want)
			}
			prev := Match{A: -1, B: -1}
			for _, blk := range blocks[:len(blocks)-1] {
				if blk.Size <= 0 {
					t.Errorf("non-sentinel block %v has Size <= 0", blk)
				}
				if blk.A <= prev.A+prev.Size-1 || blk.B <= prev.B+prev.Size-1 {
					t.Errorf("block %v not ascending after %v", blk, prev)
				}
				if prev.Size > 0 && prev.A+prev.Size == blk.A && prev.B+prev.Size == blk.B {
					t.Errorf("blocks %v and %v are touching", prev, blk)
				}
				if string(a[blk.A:blk.A+blk.Size]) != string(b[blk.B:blk.B+blk.Size]) {
					t.Errorf("block %v does not describe equal runs", blk)
				}
				prev = blk
			}
		})
	}
}

func TestGetOpCodes(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		isJunk func(rune) bool
		want   []OpCode
	}{
		{
			name: "interleaved",
			a:    "qabxcd",
			b:    "abycdf",
			want: []OpCode{
				{OpDelete, 0, 1, 0, 0},
				{OpEqual, 1, 3, 0, 2},
				{OpReplace, 3, 4, 2, 3},
				{OpEqual, 4, 6, 3, 5},
				{OpInsert, 6, 6, 5, 6},
			},
		},
		{
			name:   "insert-between-equals",
			a:      "private Thread currentThread;",
			b:      "private volatile Thread currentThread;",
			isJunk: isSpace,
			want: []OpCode{
				{OpEqual, 0, 8, 0, 8},
				{OpInsert, 8, 8, 8, 17},
				{OpEqual, 8, 29, 17, 38},
			},
		},
		{
			name: "empty",
			a:    "",
			b:    "",
			want: []OpCode{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewWithJunk([]rune(tt.a), []rune(tt.b), true, tt.isJunk)
			got := m.GetOpCodes()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("GetOpCodes() result is different [-want, +got]:\n%s", diff)
			}
		})
	}
}

// Opcodes tile [0,len(a)) x [0,len(b)) in lockstep with no adjacent equal
// opcodes.
func TestOpCodeInvariants(t *testing.T) {
	pairs := []struct{ a, b string }{
		{"abcd", "bcde"},
		{"qabxcd", "abycdf"},
		{"", "abc"},
		{"abc", ""},
		{"aaaaabbbbb", "bbbbbaaaaa"},
	}
	for _, p := range pairs {
		t.Run(fmt.Sprintf("%q-%q", p.a, p.b), func(t *testing.T) {
			a, b := []rune(p.a), []rune(p.b)
			codes := New(a, b).GetOpCodes()
			i, j := 0, 0
			prevTag := Op(-1)
			for _, c := range codes {
				if c.I1 != i || c.J1 != j {
					t.Errorf("opcode %+v does not start at (%d, %d)", c, i, j)
				}
				switch c.Tag {
				case OpDelete:
					if c.J1 != c.J2 {
						t.Errorf("delete opcode %+v advances b", c)
					}
				case OpInsert:
					if c.I1 != c.I2 {
						t.Errorf("insert opcode %+v advances a", c)
					}
				case OpEqual:
					if c.I2-c.I1 != c.J2-c.J1 {
						t.Errorf("equal opcode %+v has unbalanced spans", c)
					}
					if prevTag == OpEqual {
						t.Errorf("adjacent equal opcodes at %+v", c)
					}
				case OpReplace:
					if c.I1 == c.I2 || c.J1 == c.J2 {
						t.Errorf("replace opcode %+v has an empty span", c)
					}
				}
				prevTag = c.Tag
				i, j = c.I2, c.J2
			}
			if i != len(a) || j != len(b) {
				t.Errorf("opcodes end at (%d, %d), want (%d, %d)", i, j, len(a), len(b))
			}
		})
	}
}

func TestGetGroupedOpCodes(t *testing.T) {
	a := make([]string, 39)
	for i := range a {
		a[i] = strconv.Itoa(i + 1)
	}
	b := append([]string(nil), a[:8]...)
	b = append(b, "i")
	b = append(b, a[8:]...)
	b[20] += "x"
	b = append(b[:23], b[28:]...)
	b[30] += "y"

	want := [][]OpCode{
		{
			{OpEqual, 5, 8, 5, 8},
			{OpInsert, 8, 8, 8, 9},
			{OpEqual, 8, 11, 9, 12},
		},
		{
			{OpEqual, 16, 19, 17, 20},
			{OpReplace, 19, 20, 20, 21},
			{OpEqual, 20, 22, 21, 23},
			{OpDelete, 22, 27, 23, 23},
			{OpEqual, 27, 30, 23, 26},
		},
		{
			{OpEqual, 31, 34, 27, 30},
			{OpReplace, 34, 35, 30, 31},
			{OpEqual, 35, 38, 31, 34},
		},
	}

	m := New(a, b)
	got := m.GetGroupedOpCodes(-1)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetGroupedOpCodes(-1) result is different [-want, +got]:\n%s", diff)
	}

	// Grouping must not clip the memoized opcodes in place: a second call
	// has to see the same result.
	again := m.GetGroupedOpCodes(-1)
	if diff := cmp.Diff(got, again); diff != "" {
		t.Errorf("second GetGroupedOpCodes(-1) differs [-first, +second]:\n%s", diff)
	}
}

func TestGetGroupedOpCodesDegenerate(t *testing.T) {
	// Identical inputs produce no groups at all: the single equal opcode is
	// never worth a hunk. The same holds for empty inputs, where a
	// synthetic equal opcode stands in for the empty opcode list.
	for _, lines := range [][]string{nil, {"a", "b", "c"}} {
		if got := New(lines, lines).GetGroupedOpCodes(-1); len(got) != 0 {
			t.Errorf("GetGroupedOpCodes(-1) on identical inputs %v = %v, want none", lines, got)
		}
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		isJunk func(rune) bool
		want   float64
	}{
		{name: "abcd-bcde", a: "abcd", b: "bcde", want: 0.75},
		{name: "identical", a: "abcd", b: "abcd", want: 1.0},
		{name: "empty-both", a: "", b: "", want: 1.0},
		{name: "empty-one", a: "abcd", b: "", want: 0.0},
		{name: "disjoint", a: "abc", b: "xyz", want: 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewWithJunk([]rune(tt.a), []rune(tt.b), true, tt.isJunk)
			if got := m.Ratio(); got != tt.want {
				t.Errorf("Ratio() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("rounded", func(t *testing.T) {
		m := NewWithJunk(
			[]rune("private Thread currentThread;"),
			[]rune("private volatile Thread currentThread;"),
			true, isSpace)
		if got := fmt.Sprintf("%.3f", m.Ratio()); got != "0.866" {
			t.Errorf("Ratio() = %s, want 0.866", got)
		}
	})
}

// RealQuickRatio >= QuickRatio >= Ratio must hold for every input pair.
func TestRatioBoundsOrdering(t *testing.T) {
	pairs := []struct{ a, b string }{
		{"abcd", "bcde"},
		{"", ""},
		{"", "abc"},
		{"qabxcd", "abycdf"},
		{"aaaaabbbbb", "bbbbbaaaaa"},
		{"the quick brown fox", "the slow brown dog"},
		{strings.Repeat("x", 300), strings.Repeat("xy", 150)},
	}
	for _, p := range pairs {
		t.Run(fmt.Sprintf("%.10q-%.10q", p.a, p.b), func(t *testing.T) {
			m := New([]rune(p.a), []rune(p.b))
			ratio, quick, realQuick := m.Ratio(), m.QuickRatio(), m.RealQuickRatio()
			if realQuick < quick {
				t.Errorf("RealQuickRatio() = %v < QuickRatio() = %v", realQuick, quick)
			}
			if quick < ratio {
				t.Errorf("QuickRatio() = %v < Ratio() = %v", quick, ratio)
			}
		})
	}
}

func TestRatioSymmetry(t *testing.T) {
	pairs := []struct{ a, b string }{
		{"abcd", "bcde"},
		{"qabxcd", "abycdf"},
		{"the quick brown fox", "the slow brown dog"},
	}
	for _, p := range pairs {
		ab := New([]rune(p.a), []rune(p.b)).Ratio()
		ba := New([]rune(p.b), []rune(p.a)).Ratio()
		if ab != ba {
			t.Errorf("Ratio(%q, %q) = %v != Ratio(%q, %q) = %v", p.a, p.b, ab, p.b, p.a, ba)
		}
	}
}

func TestAutoJunk(t *testing.T) {
	a := []rune(strings.Repeat("b", 200))
	b := []rune("a" + strings.Repeat("b", 200))

	// With the heuristic enabled, "b" occurs in more than 1% of the second
	// sequence and is treated as popular: nothing matches.
	if got := New(a, b).Ratio(); got != 0 {
		t.Errorf("Ratio() with autojunk = %v, want 0", got)
	}
	// Disabling the heuristic restores the full match.
	m := NewWithJunk(a, b, false, nil)
	if got, want := fmt.Sprintf("%.4f", m.Ratio()), "0.9975"; got != want {
		t.Errorf("Ratio() without autojunk = %s, want %s", got, want)
	}
}

func TestAutoJunkThreshold(t *testing.T) {
	// The popularity heuristic only kicks in at 200 elements.
	a := []rune(strings.Repeat("b", 199))
	b := []rune(strings.Repeat("b", 199))
	if got := New(a, b).Ratio(); got != 1.0 {
		t.Errorf("Ratio() below autojunk threshold = %v, want 1.0", got)
	}
}

func TestSetSeq1PreservesIndex(t *testing.T) {
	// Compare one sequence against many: SetSeq2 once, SetSeq1 repeatedly.
	// The junk predicate is only consulted while indexing the second
	// sequence, so its call count exposes an index rebuild.
	calls := 0
	junk := func(r rune) bool {
		calls++
		return r == ' '
	}
	m := NewWithJunk([]rune("abcd"), []rune("bcde"), true, junk)
	indexed := calls
	if indexed == 0 {
		t.Fatal("junk predicate not consulted while indexing")
	}

	m.SetSeq1([]rune("bcde"))
	if got := m.Ratio(); got != 1.0 {
		t.Errorf("Ratio() = %v, want 1.0", got)
	}
	if calls != indexed {
		t.Errorf("SetSeq1 rebuilt the second sequence index (%d extra junk calls)", calls-indexed)
	}

	m.SetSeq2([]rune("abcd"))
	if calls == indexed {
		t.Error("SetSeq2 did not rebuild the second sequence index")
	}
}

func TestMemoization(t *testing.T) {
	m := New([]rune("qabxcd"), []rune("abycdf"))
	blocks1 := m.GetMatchingBlocks()
	blocks2 := m.GetMatchingBlocks()
	if &blocks1[0] != &blocks2[0] {
		t.Error("GetMatchingBlocks() recomputed its memoized result")
	}
	codes1 := m.GetOpCodes()
	codes2 := m.GetOpCodes()
	if &codes1[0] != &codes2[0] {
		t.Error("GetOpCodes() recomputed its memoized result")
	}

	// Replacing the first sequence invalidates both caches.
	m.SetSeq1([]rune("qabxcd"))
	codes3 := m.GetOpCodes()
	if diff := cmp.Diff(codes1, codes3); diff != "" {
		t.Errorf("opcodes changed after SetSeq1 with identical content:\n%s", diff)
	}
}

func TestOpString(t *testing.T) {
	for op, want := range map[Op]string{
		OpEqual:   "equal",
		OpDelete:  "delete",
		OpInsert:  "insert",
		OpReplace: "replace",
	} {
		if got := op.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(op), got, want)
		}
	}
}
