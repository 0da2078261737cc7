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
	"fmt"
	"strings"

	"gestalt.dev/similar/internal/nlargest"
)

// GetCloseMatches returns a list of up to n possibilities that score best
// against word, comparing character by character.
//
// Only possibilities scoring at least cutoff (a similarity ratio in
// [0, 1], typically 0.6) are considered; the result is ordered by score
// descending. It returns an error if n is not positive or cutoff is out of
// range.
func GetCloseMatches(word string, possibilities []string, n int, cutoff float64) ([]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("n must be > 0: %v", n)
	}
	if cutoff < 0.0 || cutoff > 1.0 {
		return nil, fmt.Errorf("cutoff must be in [0.0, 1.0]: %v", cutoff)
	}

	type scored struct {
		score float64
		word  string
	}

	// Pin word as the second sequence: its index is built once and reused
	// for every candidate, only the first sequence varies.
	m := New(nil, []rune(word))
	var result []scored
	for _, x := range possibilities {
		m.SetSeq1([]rune(x))
		if m.RealQuickRatio() >= cutoff && m.QuickRatio() >= cutoff {
			if r := m.Ratio(); r >= cutoff {
				result = append(result, scored{r, x})
			}
		}
	}

	best := nlargest.Take(n, result, func(a, b scored) int {
		if c := cmp.Compare(a.score, b.score); c != 0 {
			return c
		}
		return strings.Compare(a.word, b.word)
	})
	if len(best) == 0 {
		return nil, nil
	}
	out := make([]string, len(best))
	for i, s := range best {
		out[i] = s.word
	}
	return out, nil
}
