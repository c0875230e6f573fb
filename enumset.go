/*
Package enumset implements compact bit sets over finite enum-like domains
of up to 128 members. A set is a single machine word, giving constant-time
membership, insertion, removal and boolean set algebra.

An enum type joins the package by implementing EnumType, a small descriptor
fixing its bit layout: the mask of valid bit positions and the mapping
between members and bits. The descriptor is typically written by hand or by
a code generator, once per enum type. Bit n of the underlying word always
corresponds to bit position n of the descriptor, so raw integer encodings
and externally produced constants stay wire-compatible.
*/
package enumset

import (
	"fmt"
	"strings"
)

// EnumType is the contract an enum type must satisfy to be stored in a
// Set. R is the word type backing sets of T, the smallest of U8, U16, U32,
// U64 and U128 that fits the highest bit position in use.
//
// All three methods must be callable on the zero value of T; ValidBits and
// FromBit ignore their receiver.
type EnumType[T any, R Word[R]] interface {
	comparable

	// ValidBits returns the mask with exactly one bit set per member of
	// the type, at that member's bit position.
	ValidBits() R

	// Bit returns the receiver's bit position.
	Bit() uint

	// FromBit returns the member at the given bit position. It must
	// panic if the position does not carry a bit in ValidBits. The
	// package only calls it with positions it has verified, so that
	// panic is a defensive boundary, not a code path.
	FromBit(bit uint) T
}

// Set is a bit set of members of the enum type T, stored in a single word
// of type R. It is a plain value: copying it copies the set, the zero
// value is the empty set, and == compares set contents.
//
// Every Set ever observable through this API holds bits only at positions
// in T's ValidBits mask.
type Set[T EnumType[T, R], R Word[R]] struct {
	bits R
}

// validBits returns the ValidBits mask of T.
func validBits[T EnumType[T, R], R Word[R]]() R {
	var zero T
	return zero.ValidBits()
}

// hasBit reports whether the bit at the given position is set.
func (s Set[T, R]) hasBit(bit uint) bool {
	m := bitMask[R](bit)
	return s.bits.And(m) == m
}

// New creates an empty Set. The zero value of Set is also empty and ready
// to use.
func New[T EnumType[T, R], R Word[R]]() Set[T, R] {
	return Set[T, R]{}
}

// Only returns a Set containing the single member v.
func Only[T EnumType[T, R], R Word[R]](v T) Set[T, R] {
	return Set[T, R]{bitMask[R](v.Bit())}
}

// All returns a Set containing every member of T.
func All[T EnumType[T, R], R Word[R]]() Set[T, R] {
	return Set[T, R]{validBits[T, R]()}
}

// Of returns a Set containing the given members. It is the counterpart of
// a set literal and is meant for initializing package-level variables:
//
//	var weekend = enumset.Of[Weekday, enumset.U8](Saturday, Sunday)
func Of[T EnumType[T, R], R Word[R]](vs ...T) Set[T, R] {
	var s Set[T, R]
	for _, v := range vs {
		s.Insert(v)
	}
	return s
}

// BitWidth returns the number of bits the type's bit layout spans: the
// highest used bit position plus one. For enums with sparse bit positions
// this is larger than VariantCount.
func BitWidth[T EnumType[T, R], R Word[R]]() uint {
	all := validBits[T, R]()
	return all.Width() - uint(all.LeadingZeros())
}

// VariantCount returns the number of members of the enum type.
func VariantCount[T EnumType[T, R], R Word[R]]() int {
	return validBits[T, R]().OnesCount()
}

// Len returns the number of members in the set.
func (s Set[T, R]) Len() int {
	return s.bits.OnesCount()
}

// IsEmpty reports whether the set contains no members.
func (s Set[T, R]) IsEmpty() bool {
	return s.bits.IsZero()
}

// Clear removes all members from the set.
func (s *Set[T, R]) Clear() {
	var zero R
	s.bits = zero
}

// Contains reports whether the set contains v.
func (s Set[T, R]) Contains(v T) bool {
	return s.hasBit(v.Bit())
}

// Insert adds v to the set. It reports whether v was absent before.
func (s *Set[T, R]) Insert(v T) bool {
	absent := !s.Contains(v)
	s.bits = s.bits.Or(bitMask[R](v.Bit()))
	return absent
}

// Remove removes v from the set. It reports whether v was present before.
func (s *Set[T, R]) Remove(v T) bool {
	present := s.Contains(v)
	s.bits = s.bits.And(bitMask[R](v.Bit()).Not())
	return present
}

// InsertAll adds every member of o to the set.
func (s *Set[T, R]) InsertAll(o Set[T, R]) {
	s.bits = s.bits.Or(o.bits)
}

// RemoveAll removes every member of o from the set.
func (s *Set[T, R]) RemoveAll(o Set[T, R]) {
	s.bits = s.bits.And(o.bits.Not())
}

// Union returns a set containing the members present in either set.
func (s Set[T, R]) Union(o Set[T, R]) Set[T, R] {
	return Set[T, R]{s.bits.Or(o.bits)}
}

// Intersection returns a set containing the members present in both sets.
func (s Set[T, R]) Intersection(o Set[T, R]) Set[T, R] {
	return Set[T, R]{s.bits.And(o.bits)}
}

// Difference returns a set containing the members present in s but not in o.
func (s Set[T, R]) Difference(o Set[T, R]) Set[T, R] {
	return Set[T, R]{s.bits.And(o.bits.Not())}
}

// SymmetricDifference returns a set containing the members present in
// exactly one of the two sets.
func (s Set[T, R]) SymmetricDifference(o Set[T, R]) Set[T, R] {
	return Set[T, R]{s.bits.Xor(o.bits)}
}

// Complement returns a set containing every member of T not in s. The
// result is masked to ValidBits, so positions that carry no member stay
// clear.
func (s Set[T, R]) Complement() Set[T, R] {
	return Set[T, R]{s.bits.Not().And(validBits[T, R]())}
}

// IsDisjoint reports whether the two sets have no members in common.
func (s Set[T, R]) IsDisjoint(o Set[T, R]) bool {
	return s.Intersection(o).IsEmpty()
}

// IsSuperset reports whether s contains every member of o.
func (s Set[T, R]) IsSuperset(o Set[T, R]) bool {
	return s.bits.And(o.bits) == o.bits
}

// IsSubset reports whether o contains every member of s.
func (s Set[T, R]) IsSubset(o Set[T, R]) bool {
	return o.IsSuperset(s)
}

// Equal reports whether the two sets contain the same members. Sets are
// also comparable with ==.
func (s Set[T, R]) Equal(o Set[T, R]) bool {
	return s.bits == o.bits
}

// Members returns the members of the set in ascending bit-position order.
func (s Set[T, R]) Members() []T {
	members := make([]T, 0, s.Len())
	it := s.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		members = append(members, v)
	}
	return members
}

// String renders the set as EnumSet(A | B | C), formatting each member
// with the fmt package.
func (s Set[T, R]) String() string {
	var b strings.Builder
	b.WriteString("EnumSet(")
	first := true
	it := s.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		if !first {
			b.WriteString(" | ")
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteString(")")
	return b.String()
}
