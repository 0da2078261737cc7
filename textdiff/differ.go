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

package textdiff

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gestalt.dev/similar"
	"gestalt.dev/similar/internal/config"
)

// Differ compares sequences of text lines and produces a legible delta.
// Each output line begins with a two-letter code:
//
//	"- " line unique to the first sequence
//	"+ " line unique to the second sequence
//	"  " line common to both sequences
//	"? " line not present in either input sequence
//
// "? " guide lines point out intraline differences in the pair of lines
// above them; they, like the note that a matching pair of lines was found
// in the first place, are the result of a similarity heuristic and can be
// surprising for lines that are similar by accident.
type Differ struct {
	lineJunk func(string) bool
	charJunk func(rune) bool
}

// NewDiffer returns a Differ.
//
// The following options are supported: [LineJunk], [CharJunk]. Both default
// to nil, ignoring nothing.
func NewDiffer(opts ...Option) *Differ {
	cfg := config.FromOptions(opts, config.Junk)
	return &Differ{lineJunk: cfg.LineJunk, charJunk: cfg.CharJunk}
}

// Compare two sequences of lines and return the delta, one output line per
// element.
func (d *Differ) Compare(a, b []string) []string {
	cruncher := similar.NewWithJunk(a, b, true, d.lineJunk)
	var out []string
	for _, c := range cruncher.GetOpCodes() {
		switch c.Tag {
		case similar.OpReplace:
			out = d.fancyReplace(out, a, c.I1, c.I2, b, c.J1, c.J2)
		case similar.OpDelete:
			out = dump(out, '-', a, c.I1, c.I2)
		case similar.OpInsert:
			out = dump(out, '+', b, c.J1, c.J2)
		case similar.OpEqual:
			out = dump(out, ' ', a, c.I1, c.I2)
		default:
			panic(fmt.Sprintf("unknown tag %v", c.Tag))
		}
	}
	return out
}

// fancyReplace handles a replace opcode: when a line pair in the replaced
// ranges is similar enough, synchronize on the most similar pair and mark up
// the intraline differences; everything before and after the synch point is
// handled recursively.
//
// For example, the one-line ranges ["abcDefghiJkl\n"] and ["abcdefGhijkl\n"]
// produce
//
//	- abcDefghiJkl
//	?    ^  ^  ^
//	+ abcdefGhijkl
//	?    ^  ^  ^
func (d *Differ) fancyReplace(out []string, a []string, alo, ahi int, b []string, blo, bhi int) []string {
	// Don't synch up unless the lines have a similarity score of at least
	// cutoff; bestRatio tracks the best score seen so far.
	bestRatio, cutoff := 0.74, 0.75
	besti, bestj := alo, blo

	// Search for the pair that matches best, remembering the first
	// identical pair separately: identical lines within a replace range are
	// junk synch candidates and scoring them would be wasted work.
	cruncher := similar.NewWithJunk[rune](nil, nil, true, d.charJunk)
	eqi, eqj := -1, -1
	for j := blo; j < bhi; j++ {
		bj := b[j]
		cruncher.SetSeq2([]rune(bj))
		for i := alo; i < ahi; i++ {
			ai := a[i]
			if ai == bj {
				if eqi < 0 {
					eqi, eqj = i, j
				}
				continue
			}
			cruncher.SetSeq1([]rune(ai))
			// Computing similarity is expensive, so use the cheap upper
			// bounds to weed out hopeless pairs first. Ratio never exceeds
			// either bound, so the checks only save time: the pair that
			// ends up best is the same as with Ratio alone.
			if cruncher.RealQuickRatio() > bestRatio &&
				cruncher.QuickRatio() > bestRatio &&
				cruncher.Ratio() > bestRatio {
				bestRatio, besti, bestj = cruncher.Ratio(), i, j
			}
		}
	}
	if bestRatio < cutoff {
		// No non-identical pair is close enough.
		if eqi < 0 {
			// No identical pair either: a plain replace is all there is.
			return d.plainReplace(out, a, alo, ahi, b, blo, bhi)
		}
		// Synch on the identical pair.
		besti, bestj = eqi, eqj
	} else {
		// There's a close pair; the identical pair, if any, wasn't it.
		eqi = -1
	}

	// Pump out the delta for everything before the synch pair, then the
	// pair itself, then everything after it.
	out = d.fancyHelper(out, a, alo, besti, b, blo, bestj)

	aelt, belt := a[besti], b[bestj]
	if eqi < 0 {
		// The pair is similar but not identical: mark up the intraline
		// differences with a guide line under each side.
		var atags, btags string
		cruncher.SetSeqs([]rune(aelt), []rune(belt))
		for _, c := range cruncher.GetOpCodes() {
			la, lb := c.I2-c.I1, c.J2-c.J1
			switch c.Tag {
			case similar.OpReplace:
				atags += strings.Repeat("^", la)
				btags += strings.Repeat("^", lb)
			case similar.OpDelete:
				atags += strings.Repeat("-", la)
			case similar.OpInsert:
				btags += strings.Repeat("+", lb)
			case similar.OpEqual:
				atags += strings.Repeat(" ", la)
				btags += strings.Repeat(" ", lb)
			default:
				panic(fmt.Sprintf("unknown tag %v", c.Tag))
			}
		}
		out = qformat(out, aelt, belt, atags, btags)
	} else {
		out = append(out, "  "+aelt)
	}

	return d.fancyHelper(out, a, besti+1, ahi, b, bestj+1, bhi)
}

func (d *Differ) fancyHelper(out []string, a []string, alo, ahi int, b []string, blo, bhi int) []string {
	switch {
	case alo < ahi && blo < bhi:
		return d.fancyReplace(out, a, alo, ahi, b, blo, bhi)
	case alo < ahi:
		return dump(out, '-', a, alo, ahi)
	case blo < bhi:
		return dump(out, '+', b, blo, bhi)
	default:
		return out
	}
}

// plainReplace emits a replace as a block of deletions and a block of
// insertions, shorter block first: that reduces the burden on short-term
// memory when the blocks are of very different sizes.
func (d *Differ) plainReplace(out []string, a []string, alo, ahi int, b []string, blo, bhi int) []string {
	if bhi-blo < ahi-alo {
		out = dump(out, '+', b, blo, bhi)
		return dump(out, '-', a, alo, ahi)
	}
	out = dump(out, '-', a, alo, ahi)
	return dump(out, '+', b, blo, bhi)
}

// qformat emits a synch pair with "? " guide lines beneath each side.
//
// Leading tabs common to both lines are reproduced as real tabs at the start
// of the guide lines so the markers stay aligned under tab-indented text;
// anything else would render at an unpredictable width.
func qformat(out []string, aline, bline, atags, btags string) []string {
	common := min(countLeading(aline, '\t'), countLeading(bline, '\t'))
	common = min(common, countLeading(atags[:common], ' '))
	common = min(common, countLeading(btags[:common], ' '))
	atags = strings.TrimRightFunc(atags[common:], unicode.IsSpace)
	btags = strings.TrimRightFunc(btags[common:], unicode.IsSpace)

	out = append(out, "- "+aline)
	if len(atags) > 0 {
		out = append(out, "? "+strings.Repeat("\t", common)+atags+"\n")
	}
	out = append(out, "+ "+bline)
	if len(btags) > 0 {
		out = append(out, "? "+strings.Repeat("\t", common)+btags+"\n")
	}
	return out
}

func dump(out []string, tag byte, lines []string, lo, hi int) []string {
	for _, line := range lines[lo:hi] {
		out = append(out, string(tag)+" "+line)
	}
	return out
}

// countLeading returns the number of bytes at the start of s equal to ch.
func countLeading(s string, ch byte) int {
	i := 0
	for i < len(s) && s[i] == ch {
		i++
	}
	return i
}

// NDiff compares two sequences of lines and returns a [Differ] delta.
//
// The following options are supported: [LineJunk], [CharJunk]. Unlike
// [NewDiffer], the character junk filter defaults to [IsCharacterJunk],
// which treats spaces and tabs as ignorable for intraline synchronization: lines
// that differ only in trailing whitespace, or in indentation, sync up well.
func NDiff(a, b []string, opts ...Option) []string {
	cfg := config.FromOptions(opts, config.Junk)
	if cfg.CharJunk == nil {
		cfg.CharJunk = IsCharacterJunk
	}
	d := &Differ{lineJunk: cfg.LineJunk, charJunk: cfg.CharJunk}
	return d.Compare(a, b)
}

// Restore extracts one of the two compared sequences from a delta produced
// by [NDiff] or [Differ.Compare]: which 1 selects the first sequence, 2 the
// second. Any other value is an error.
func Restore(delta []string, which int) ([]string, error) {
	var tag string
	switch which {
	case 1:
		tag = "- "
	case 2:
		tag = "+ "
	default:
		return nil, fmt.Errorf("unknown delta choice (must be 1 or 2): %v", which)
	}
	var out []string
	for _, line := range delta {
		if len(line) >= 2 && (line[:2] == "  " || line[:2] == tag) {
			out = append(out, line[2:])
		}
	}
	return out, nil
}

var lineJunkPattern = regexp.MustCompile(`^\s*#?\s*$`)

// IsLineJunk reports whether line is ignorable: blank or containing a lone
// '#'. Intended as a [LineJunk] option value.
func IsLineJunk(line string) bool {
	return lineJunkPattern.MatchString(line)
}

// IsCharacterJunk reports whether ch is ignorable: a space or a tab.
// Intended as a [CharJunk] option value; including newline in the junk set
// works badly.
func IsCharacterJunk(ch rune) bool {
	return ch == ' ' || ch == '\t'
}
