package enumset

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// Bridges to the general-purpose bitset types the wider ecosystem uses.
// Positions in the foreign bitmaps are the domain bit positions, so the
// wire-compatibility contract carries over unchanged.

// ToBitSet returns the set as a bits-and-blooms bitset, one set bit per
// member at that member's bit position.
func (s Set[T, R]) ToBitSet() *bitset.BitSet {
	b := bitset.New(BitWidth[T, R]())
	it := s.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		b.Set(v.Bit())
	}
	return b
}

// FromBitSet builds a set from a bits-and-blooms bitset. It fails if any
// set bit does not correspond to a member of T.
func FromBitSet[T EnumType[T, R], R Word[R]](b *bitset.BitSet) (Set[T, R], error) {
	var s Set[T, R]
	all := All[T, R]()
	width := all.bits.Width()
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		if i >= width || !all.hasBit(i) {
			return Set[T, R]{}, fmt.Errorf("enumset: bit %d is not a valid variant", i)
		}
		s.bits = s.bits.Or(bitMask[R](i))
	}
	return s, nil
}

// FromBitSetTruncated builds a set from a bits-and-blooms bitset, ignoring
// bits that do not correspond to a member of T.
func FromBitSetTruncated[T EnumType[T, R], R Word[R]](b *bitset.BitSet) Set[T, R] {
	var s Set[T, R]
	all := All[T, R]()
	width := all.bits.Width()
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		if i >= width {
			break
		}
		if all.hasBit(i) {
			s.bits = s.bits.Or(bitMask[R](i))
		}
	}
	return s
}

// ToRoaring returns the set as a roaring bitmap, one entry per member at
// that member's bit position.
func (s Set[T, R]) ToRoaring() *roaring.Bitmap {
	b := roaring.New()
	it := s.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		b.Add(uint32(v.Bit()))
	}
	return b
}

// FromRoaring builds a set from a roaring bitmap. It fails if any entry
// does not correspond to a member of T.
func FromRoaring[T EnumType[T, R], R Word[R]](b *roaring.Bitmap) (Set[T, R], error) {
	var s Set[T, R]
	all := All[T, R]()
	width := all.bits.Width()
	rit := b.Iterator()
	for rit.HasNext() {
		i := uint(rit.Next())
		if i >= width || !all.hasBit(i) {
			return Set[T, R]{}, fmt.Errorf("enumset: bit %d is not a valid variant", i)
		}
		s.bits = s.bits.Or(bitMask[R](i))
	}
	return s, nil
}

// FromRoaringTruncated builds a set from a roaring bitmap, ignoring
// entries that do not correspond to a member of T.
func FromRoaringTruncated[T EnumType[T, R], R Word[R]](b *roaring.Bitmap) Set[T, R] {
	var s Set[T, R]
	all := All[T, R]()
	width := all.bits.Width()
	rit := b.Iterator()
	for rit.HasNext() {
		i := uint(rit.Next())
		if i < width && all.hasBit(i) {
			s.bits = s.bits.Or(bitMask[R](i))
		}
	}
	return s
}
