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

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op -linecomment
type Op int

const (
	OpEqual   Op = iota // equal
	OpDelete            // delete
	OpInsert            // insert
	OpReplace           // replace
)

// Match describes a run of Size elements starting at position A in the first
// sequence and B in the second, identical in both.
type Match struct {
	A    int
	B    int
	Size int
}

// OpCode is a single edit instruction transforming a slice of the first
// sequence into the aligned slice of the second. Ranges are half-open.
//
//   - OpReplace: a[I1:I2] should be replaced by b[J1:J2].
//   - OpDelete: a[I1:I2] should be deleted; J1 == J2 in this case.
//   - OpInsert: b[J1:J2] should be inserted at a[I1:I1]; I1 == I2 in this case.
//   - OpEqual: a[I1:I2] == b[J1:J2].
type OpCode struct {
	Tag    Op
	I1, I2 int
	J1, J2 int
}
