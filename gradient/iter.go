package gradient

import "iter"

// All returns the windows g has not produced yet as a range-over-func
// sequence. Iteration drives a clone, so g's own cursor does not move and
// All can be ranged over more than once.
//
//	for w := range g.All() {
//	  fmt.Println(string(w))
//	}
//
// The yielded windows alias the clone's buffer; see the package docs.
func (g *Gradient[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		c := g.Clone()
		for w, ok := c.Next(); ok; w, ok = c.Next() {
			if !yield(w) {
				return
			}
		}
	}
}

// Ranges is All without the element views: it yields a 0-based counter and
// the [Start, End) of each remaining window, for callers that index into
// their own copy of the data.
func (g *Gradient[T]) Ranges() iter.Seq2[int, Range] {
	return func(yield func(int, Range) bool) {
		c := g.Clone()
		var idx int
		for _, ok := c.Next(); ok; _, ok = c.Next() {
			if !yield(idx, c.Range()) {
				return
			}
			idx++
		}
	}
}
