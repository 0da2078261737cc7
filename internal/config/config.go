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

// Package config provides shared configuration mechanisms for packages in
// this module.
//
// This package is an implementation detail, the configuration surface for
// users is provided via textdiff.Option.
package config

// Config collects all configurable parameters for the delta renderers and
// the line differ.
type Config struct {
	// Names and modification dates for the file header lines of unified and
	// context diffs. Dates are conventionally ISO 8601 strings.
	FromFile, ToFile string
	FromDate, ToDate string

	// Context is the number of common elements to include before and after
	// each hunk.
	Context int

	// LineTerm is the terminator appended to diff control lines. Set it to
	// "" for inputs without trailing newlines so the output is uniformly
	// newline free.
	LineTerm string

	// LineJunk filters ignorable lines during line-level matching.
	LineJunk func(string) bool

	// CharJunk filters ignorable characters during intraline matching.
	CharJunk func(rune) bool
}

// Default is the default configuration.
var Default = Config{
	Context:  3,
	LineTerm: "\n",
}

// Flag describes a single config entry. It is used to detect options being
// passed to an entry point that does not support them.
type Flag int

const (
	FromFile Flag = 1 << iota
	ToFile
	FromDate
	ToDate
	Context
	LineTerm
	LineJunk
	CharJunk
)

// Headers is the set of flags accepted by the unified and context renderers.
const Headers = FromFile | ToFile | FromDate | ToDate | Context | LineTerm

// Junk is the set of flags accepted by the line differ.
const Junk = LineJunk | CharJunk

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case FromFile:
		return "textdiff.FromFile"
	case ToFile:
		return "textdiff.ToFile"
	case FromDate:
		return "textdiff.FromDate"
	case ToDate:
		return "textdiff.ToDate"
	case Context:
		return "textdiff.Context"
	case LineTerm:
		return "textdiff.LineTerm"
	case LineJunk:
		return "textdiff.LineJunk"
	case CharJunk:
		return "textdiff.CharJunk"
	default:
		panic("never reached")
	}
}
