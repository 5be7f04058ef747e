// Package gradientslice is a small, allocation-light utility that walks
// every contiguous window of a slice, width by width.
//
// 🚀 What is a gradient?
//
//	Given a sequence of length N, the gradient is all N·(N+1)/2
//	contiguous windows, ordered first by width (1 … N) and then by start
//	offset. Windows are produced lazily, one per step, as views into a
//	private copy of the input.
//
// ✨ Why use it?
//
//   - Pure Go, no cgo, no runtime dependencies
//   - Reproducible order, suitable for golden tests
//   - Pull cursor (Next) and Go 1.23 range-over-func adapters (All, Ranges)
//   - Copy-on-configure width cap (WithMaxWidth) to derive bounded variants
//
// Layout:
//
//	gradient/ — the Gradient[T] cursor, Range, and eager helpers
//	            (Collect, Walk, Runes, Strings)
//	examples/ — a runnable demo (repeated substrings)
//
// Quick example:
//
//	g := gradient.Runes(" abc ").WithMaxWidth(2)
//	for w := range g.All() {
//	  fmt.Printf("%q ", string(w))
//	}
//	// " " "a" "b" "c" " " " a" "ab" "bc" "c "
//
//	go get github.com/gabrielfalcao/gradient-slice/gradient
package gradientslice
