package enumset

import "iter"

// Iter walks the members of a set in ascending bit-position order. It
// holds its own copy of the set, so mutating or discarding the original
// never invalidates the cursor, and a fresh Iter can be taken from the
// same set at any time.
type Iter[T EnumType[T, R], R Word[R]] struct {
	set Set[T, R]
	pos uint
}

// Iter returns a cursor over the members of the set.
func (s Set[T, R]) Iter() *Iter[T, R] {
	return &Iter[T, R]{set: s}
}

// Next returns the next member of the set, or false when the set is
// exhausted.
func (it *Iter[T, R]) Next() (T, bool) {
	width := BitWidth[T, R]()
	for it.pos < width {
		bit := it.pos
		it.pos++
		if it.set.hasBit(bit) {
			var zero T
			return zero.FromBit(bit), true
		}
	}
	var zero T
	return zero, false
}

// Remaining returns the exact number of members Next has yet to yield. It
// counts the set bits at or above the cursor position, so it is constant
// time rather than a rescan.
func (it *Iter[T, R]) Remaining() int {
	left := partialBits[R](it.pos).Not()
	return it.set.bits.And(left).OnesCount()
}

// Values returns the members of the set as a range-over-func sequence, in
// ascending bit-position order.
func (s Set[T, R]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// FromSeq collects a sequence of members into a set.
func FromSeq[T EnumType[T, R], R Word[R]](seq iter.Seq[T]) Set[T, R] {
	var s Set[T, R]
	for v := range seq {
		s.Insert(v)
	}
	return s
}
