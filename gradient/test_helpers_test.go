// SPDX-License-Identifier: MIT
// Package gradient_test contains shared fixtures for the gradient tests.

package gradient_test

import (
	"testing"

	"github.com/gabrielfalcao/gradient-slice/gradient"
	"github.com/stretchr/testify/require"
)

// Text fixture used across the rune scenarios.
const spacedABC = " abc "

// Expected gradient of spacedABC, widths 1 through 5.
var spacedABCWindows = []string{
	" ", "a", "b", "c", " ",
	" a", "ab", "bc", "c ",
	" ab", "abc", "bc ",
	" abc", "abc ",
	" abc ",
}

// bootSignature is 0x1BADB002 in big-endian byte order.
var bootSignature = []byte{0x1B, 0xAD, 0xB0, 0x02}

// produced records the cursor state right after one successful Next.
type produced struct {
	Window []int
	Range  gradient.Range
	Width  int
}

// drain advances g until exhaustion and records each step.
// It fails the test if the loop does not terminate within limit steps.
func drain(t *testing.T, g *gradient.Gradient[int], limit int) []produced {
	t.Helper()
	var out []produced
	for steps := 0; ; steps++ {
		require.LessOrEqual(t, steps, limit, "gradient did not terminate")
		w, ok := g.Next()
		if !ok {
			return out
		}
		out = append(out, produced{
			Window: append([]int(nil), w...),
			Range:  g.Range(),
			Width:  g.Width(),
		})
	}
}

// sequence returns [0, 1, …, n-1].
func sequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}

	return s
}

// expectedRanges lists the windows of an n-length input in gradient order,
// widths 1..maxWidth (clamped to n).
func expectedRanges(n, maxWidth int) []gradient.Range {
	if maxWidth > n {
		maxWidth = n
	}
	var out []gradient.Range
	for w := 1; w <= maxWidth; w++ {
		for s := 0; s+w <= n; s++ {
			out = append(out, gradient.Range{Start: s, End: s + w})
		}
	}

	return out
}
