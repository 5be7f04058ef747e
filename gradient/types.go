// SPDX-License-Identifier: MIT
// Package: gradient-slice/gradient
//
// types.go - cursor state and the Range value.

package gradient

import "fmt"

// Range is a half-open interval [Start, End) of offsets into the input.
type Range struct {
	Start int // first offset, inclusive
	End   int // last offset, exclusive
}

// Len returns End − Start.
func (r Range) Len() int {
	return r.End - r.Start
}

// String renders the range as "[start,end)".
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

// Gradient is a cursor over every contiguous window of an owned input,
// ordered by width and then by start offset.
//
// Fields:
//   - input    — private copy of the sequence; never written after New.
//   - start    — offset of the current window (inclusive).
//   - end      — offset of the current window (exclusive).
//   - width    — width of the current pass, starts at 1.
//   - wide     — true while the pass still has windows to the right;
//     false once the pass touched the right edge and the next
//     advance has to roll over to width+1.
//   - maxWidth — cap on the width, honored only when capped is set.
//   - done     — terminal state entered by exceeding the cap.
//
// Invariants (after at least one window was produced):
//   - 0 ≤ start ≤ end ≤ len(input)
//   - end − start == width
//   - width never decreases and never exceeds len(input) or the cap.
type Gradient[T any] struct {
	input    []T
	start    int
	end      int
	width    int
	wide     bool
	maxWidth int
	capped   bool
	done     bool
}
