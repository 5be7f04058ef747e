// SPDX-License-Identifier: MIT
// Package: gradient-slice/gradient
//
// gradient.go - construction, the advance step and read-only accessors.
//
// Contract:
//   - Every operation is total: no errors, no panics, for any input.
//   - Only Next and Reset mutate the cursor.
//   - Accessors are idempotent between advances.

package gradient

// New returns a gradient over a private copy of input.
// The cursor starts before the first window: Start()==End()==0, Width()==1.
// An empty or nil input yields no windows.
//
// Complexity: O(N) time and memory for the copy.
func New[T any](input []T) *Gradient[T] {
	buf := make([]T, len(input))
	copy(buf, input)

	return &Gradient[T]{
		input: buf,
		width: 1,
		wide:  true,
	}
}

// WithMaxWidth returns an independent copy of g whose passes stop after
// width. The receiver is left untouched, so one base gradient can spawn
// several capped variants.
//
//	width < 1        → the copy yields nothing
//	width ≥ g.Len()  → no effect on the produced windows
//
// Complexity: O(N) time and memory.
func (g *Gradient[T]) WithMaxWidth(width int) *Gradient[T] {
	c := g.Clone()
	c.maxWidth = width
	c.capped = true

	return c
}

// Clone returns a deep copy of g: buffer, cursor and cap.
// Windows already handed out by g keep pointing at g's buffer.
func (g *Gradient[T]) Clone() *Gradient[T] {
	c := *g
	c.input = make([]T, len(g.input))
	copy(c.input, g.input)

	return &c
}

// Reset rewinds the cursor to its initial position. The cap is kept.
func (g *Gradient[T]) Reset() {
	g.start, g.end = 0, 0
	g.width = 1
	g.wide = true
	g.done = false
}

// Next advances to the following window and returns it.
// The second result is false once the gradient is exhausted; from then on
// every call returns (nil, false) and leaves the cursor where the last
// window was produced.
//
// Algorithm:
//  1. Stop if Finished().
//  2. end++.
//  3. If the previous window closed a pass: width++, start=0, end=width.
//  4. start = end − width.
//  5. If end reached len(input), the next call rolls over to a new width.
//  6. If the cap is set and width exceeds it, enter the terminal state
//     without committing the new position.
//  7. Yield input[start:end].
//
// Complexity: O(1) time, no allocation.
func (g *Gradient[T]) Next() ([]T, bool) {
	if g.Finished() {
		return nil, false
	}

	end, width, wide := g.end+1, g.width, g.wide
	if !wide {
		wide = true
		width++
		end = width
	}
	start := end - width
	if end == len(g.input) {
		wide = false
	}
	if g.capped && width > g.maxWidth {
		g.done = true

		return nil, false
	}

	g.start, g.end, g.width, g.wide = start, end, width, wide

	return g.Window(), true
}

// Finished reports whether Next will produce no further windows.
// It holds for an empty input, once the single full-width window has been
// produced, and once the width cap has been exceeded.
func (g *Gradient[T]) Finished() bool {
	n := len(g.input)
	if n == 0 || g.done {
		return true
	}

	return g.end == n && g.width == n
}

// Window returns the current window as a read-only view of the buffer.
// Before the first advance it is empty.
func (g *Gradient[T]) Window() []T {
	return g.input[g.start:g.end:g.end]
}

// WindowCopy returns the current window as a freshly allocated slice.
func (g *Gradient[T]) WindowCopy() []T {
	out := make([]T, g.end-g.start)
	copy(out, g.input[g.start:g.end])

	return out
}

// Input returns a copy of the full input.
func (g *Gradient[T]) Input() []T {
	out := make([]T, len(g.input))
	copy(out, g.input)

	return out
}

// Start returns the inclusive offset of the current window.
func (g *Gradient[T]) Start() int { return g.start }

// End returns the exclusive offset of the current window.
func (g *Gradient[T]) End() int { return g.end }

// Width returns the width of the current pass.
func (g *Gradient[T]) Width() int { return g.width }

// Len returns the length of the full input.
func (g *Gradient[T]) Len() int { return len(g.input) }

// Range returns the current window as [Start, End).
func (g *Gradient[T]) Range() Range {
	return Range{Start: g.start, End: g.end}
}

// MaxWidth returns the width cap and whether one is set.
func (g *Gradient[T]) MaxWidth() (int, bool) {
	return g.maxWidth, g.capped
}

// Total returns how many windows a freshly reset copy of g yields:
// N·(N+1)/2 without a cap, Σ_{w=1..W}(N−w+1) with cap W.
//
// Complexity: O(1).
func (g *Gradient[T]) Total() int {
	n := len(g.input)
	w := n
	if g.capped && g.maxWidth < w {
		w = g.maxWidth
	}
	if w < 1 {
		return 0
	}

	return w*(n+1) - w*(w+1)/2
}
