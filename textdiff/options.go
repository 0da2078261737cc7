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

import "gestalt.dev/similar/internal/config"

// Option configures the behavior of the delta functions in this package.
// Passing an option to a function that does not support it panics.
type Option = config.Option

// FromFile sets the first file name for the header of [UnifiedDiff] and
// [ContextDiff]. The default is the empty string.
func FromFile(name string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.FromFile = name
		return config.FromFile
	}
}

// ToFile sets the second file name for the header of [UnifiedDiff] and
// [ContextDiff]. The default is the empty string.
func ToFile(name string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ToFile = name
		return config.ToFile
	}
}

// FromDate sets the first file's modification date for the header of
// [UnifiedDiff] and [ContextDiff], conventionally in ISO 8601 format. The
// default is the empty string, which omits the date.
func FromDate(date string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.FromDate = date
		return config.FromDate
	}
}

// ToDate sets the second file's modification date for the header of
// [UnifiedDiff] and [ContextDiff]. The default is the empty string, which
// omits the date.
func ToDate(date string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.ToDate = date
		return config.ToDate
	}
}

// Context sets the number of common lines shown before and after each hunk
// in [UnifiedDiff] and [ContextDiff]. The default is 3.
func Context(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Context = max(0, n)
		return config.Context
	}
}

// LineTerm sets the terminator appended to diff control lines (headers and
// range markers). The default is "\n", which suits inputs whose lines keep
// their trailing newlines; set it to "" for inputs without them so the
// output is uniformly newline free.
func LineTerm(term string) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.LineTerm = term
		return config.LineTerm
	}
}

// LineJunk sets the predicate identifying ignorable lines for [NewDiffer]
// and [NDiff]. The default is nil: no lines are ignored.
func LineJunk(junk func(string) bool) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.LineJunk = junk
		return config.LineJunk
	}
}

// CharJunk sets the predicate identifying ignorable characters during
// intraline comparison for [NewDiffer] and [NDiff]. [NDiff] defaults to
// [IsCharacterJunk]; [NewDiffer] defaults to nil.
func CharJunk(junk func(rune) bool) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.CharJunk = junk
		return config.CharJunk
	}
}
