// SPDX-License-Identifier: MIT
// Package: gradient-slice/gradient
//
// collect.go - eager helpers built on top of the cursor.
//
// Contract:
//   - Helpers never move the cursor of the gradient they are given.
//   - Collect and Strings return owned data; nothing aliases the buffer.

package gradient

// Collect copies every remaining window of g into its own slice.
//
// Complexity: O(Total()·W) time and memory, W the largest width.
func Collect[T any](g *Gradient[T]) [][]T {
	out := make([][]T, 0, g.Total())
	c := g.Clone()
	for _, ok := c.Next(); ok; _, ok = c.Next() {
		out = append(out, c.WindowCopy())
	}

	return out
}

// Walk calls fn with the range and view of every remaining window, in
// order. If fn returns an error, Walk stops and returns it unchanged.
func Walk[T any](g *Gradient[T], fn func(r Range, window []T) error) error {
	c := g.Clone()
	for w, ok := c.Next(); ok; w, ok = c.Next() {
		if err := fn(c.Range(), w); err != nil {
			return err
		}
	}

	return nil
}

// Runes builds a gradient over the runes of s.
func Runes(s string) *Gradient[rune] {
	return New([]rune(s))
}

// Strings renders every remaining window of a rune gradient as a string.
func Strings(g *Gradient[rune]) []string {
	out := make([]string, 0, g.Total())
	for w := range g.All() {
		out = append(out, string(w))
	}

	return out
}
