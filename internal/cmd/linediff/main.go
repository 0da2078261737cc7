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

// linediff prints the delta between two text files in unified, context, or
// ndiff format. It exists to eyeball the library's output against diff -u
// and diff -c; it is not installed with the library.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gestalt.dev/similar/textdiff"
)

func main() {
	var (
		format  string
		context int
	)

	rootCmd := &cobra.Command{
		Use:          "linediff [flags] <from> <to>",
		Short:        "Compare two text files line by line",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], args[1], format, context)
		},
	}
	rootCmd.Flags().StringVarP(&format, "format", "f", "unified", "output format: unified, context, or ndiff")
	rootCmd.Flags().IntVarP(&context, "context", "C", 3, "number of context lines")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, fromFile, toFile, format string, context int) error {
	from, err := os.ReadFile(fromFile)
	if err != nil {
		return fmt.Errorf("reading from file: %v", err)
	}
	to, err := os.ReadFile(toFile)
	if err != nil {
		return fmt.Errorf("reading to file: %v", err)
	}

	a := textdiff.SplitLines(string(from))
	b := textdiff.SplitLines(string(to))

	var delta []string
	switch format {
	case "unified":
		delta = textdiff.UnifiedDiff(a, b,
			textdiff.FromFile(fromFile), textdiff.ToFile(toFile),
			textdiff.Context(context))
	case "context":
		delta = textdiff.ContextDiff(a, b,
			textdiff.FromFile(fromFile), textdiff.ToFile(toFile),
			textdiff.Context(context))
	case "ndiff":
		delta = textdiff.NDiff(a, b)
	default:
		return fmt.Errorf("unknown format %q (want unified, context, or ndiff)", format)
	}

	out := cmd.OutOrStdout()
	for _, line := range delta {
		fmt.Fprint(out, line)
	}
	return nil
}
