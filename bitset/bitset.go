// Package bitset implements a fixed-capacity bit store addressed at bit
// granularity, plus offsetted views into it. A view wraps the whole backing
// store together with a base offset, so a consumer can be handed a private
// sub-range of someone else's store without copying and without caring where
// inside the store that range lives. Offsets compound: a view of a view adds
// the bases up.
package bitset

import "math/bits"

// Set is a fixed-capacity bit store backed by 64-bit words. Capacity is
// rounded up to a whole number of words and never grows.
type Set []uint64

// New returns a store with capacity for n bits, all zero.
func New(n int) Set {
	return make(Set, (n+63)/64)
}

func (s Set) Test(i int) bool { return s[i>>6]&(1<<(uint(i)&63)) != 0 }
func (s Set) Set(i int)       { s[i>>6] |= 1 << (uint(i) & 63) }
func (s Set) Clear(i int)     { s[i>>6] &^= 1 << (uint(i) & 63) }

// Count returns the number of set bits.
func (s Set) Count() int {
	var n int
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

// Reset clears all bits.
func (s Set) Reset() {
	clear(s)
}

// Offset returns a view of s based at the given bit.
func (s Set) Offset(base int) View {
	return View{s, base}
}

// View addresses bits of a Set relative to a base offset. The base is not
// rounded to a word boundary; bit 0 of a view can live in the middle of a
// word.
type View struct {
	words Set
	base  int
}

func (v View) Base() int       { return v.base }
func (v View) Test(i int) bool { return v.words.Test(v.base + i) }
func (v View) Set(i int)       { v.words.Set(v.base + i) }
func (v View) Clear(i int)     { v.words.Clear(v.base + i) }

// Offset returns a further view based at bit k of v.
func (v View) Offset(k int) View {
	return View{v.words, v.base + k}
}
