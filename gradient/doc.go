// Package gradient enumerates every contiguous window of a slice, width by
// width, without materializing the windows up front.
//
// 🚀 What is a gradient?
//
//	For an input of length N the gradient is the ordered sequence of
//	passes w = 1, 2, …, N. Pass w yields every window input[s : s+w] for
//	s = 0 … N−w, left to right. Passes never interleave.
//
//	  input = " abc "
//	  w=1:  " "  "a"  "b"  "c"  " "
//	  w=2:  " a" "ab" "bc" "c "
//	  w=3:  " ab" "abc" "bc "
//	  w=4:  " abc" "abc "
//	  w=5:  " abc "
//
// ✨ Key features:
//   - pull-based cursor (Next) and range-over-func adapters (All, Ranges)
//   - optional width cap via the copy-on-configure builder WithMaxWidth
//   - zero-copy windows: each window is a sub-slice of the gradient's
//     private buffer
//
// ⚙️ Usage:
//
//	import "github.com/gabrielfalcao/gradient-slice/gradient"
//
//	g := gradient.New([]byte{0x1B, 0xAD, 0xB0, 0x02}).WithMaxWidth(2)
//	for w, ok := g.Next(); ok; w, ok = g.Next() {
//	  fmt.Println(g.Range(), w)
//	}
//
// Window aliasing:
//
//	New copies its input, and the copy is never written afterwards, so a
//	window stays valid for as long as the caller keeps it. Windows share
//	memory with the gradient and with each other: callers must treat them
//	as read-only. Window capacity is clipped to its length, so append on a
//	window reallocates. Use WindowCopy or Collect for owned copies.
//
// Performance:
//
//   - Windows: N·(N+1)/2, or Σ_{w=1..W}(N−w+1) with a cap W
//   - Next:    O(1) time, no allocation
//   - New:     O(N) time and memory (one copy of the input)
//
// A *Gradient is a plain mutable cursor and is not safe for concurrent use;
// Clone gives each goroutine its own.
package gradient
