package enumset

// Conversions between sets and raw integers of the five supported widths.
// Each direction comes in three flavors with distinct failure contracts:
// the plain form panics, the Try form reports failure with a bool, and the
// Truncated form silently drops the offending bits. Exports fail when a
// set bit does not fit the target width; imports fail when the raw integer
// carries a bit outside the type's ValidBits mask.

// tryFromBits builds a set from 64-bit halves, reporting false if any bit
// falls outside the ValidBits mask of T.
func tryFromBits[T EnumType[T, R], R Word[R]](lo, hi uint64) (Set[T, R], bool) {
	allLo, allHi := validBits[T, R]().Bits()
	if lo&^allLo != 0 || hi&^allHi != 0 {
		return Set[T, R]{}, false
	}
	var zero R
	return Set[T, R]{zero.Make(lo, hi)}, true
}

// fromBitsTruncated builds a set from 64-bit halves, masking out bits that
// fall outside the ValidBits mask of T.
func fromBitsTruncated[T EnumType[T, R], R Word[R]](lo, hi uint64) Set[T, R] {
	allLo, allHi := validBits[T, R]().Bits()
	var zero R
	return Set[T, R]{zero.Make(lo&allLo, hi&allHi)}
}

// ToUint8 returns the set as a uint8, panicking if any set bit does not
// fit in 8 bits.
func (s Set[T, R]) ToUint8() uint8 {
	v, ok := s.TryToUint8()
	if !ok {
		panic("enumset: bitset will not fit into a uint8")
	}
	return v
}

// TryToUint8 returns the set as a uint8, reporting false if any set bit
// does not fit in 8 bits.
func (s Set[T, R]) TryToUint8() (uint8, bool) {
	lo, hi := s.bits.Bits()
	if hi != 0 || lo>>8 != 0 {
		return 0, false
	}
	return uint8(lo), true
}

// ToUint8Truncated returns the set as a uint8, dropping bits that do not
// fit in 8 bits.
func (s Set[T, R]) ToUint8Truncated() uint8 {
	lo, _ := s.bits.Bits()
	return uint8(lo)
}

// ToUint16 returns the set as a uint16, panicking if any set bit does not
// fit in 16 bits.
func (s Set[T, R]) ToUint16() uint16 {
	v, ok := s.TryToUint16()
	if !ok {
		panic("enumset: bitset will not fit into a uint16")
	}
	return v
}

// TryToUint16 returns the set as a uint16, reporting false if any set bit
// does not fit in 16 bits.
func (s Set[T, R]) TryToUint16() (uint16, bool) {
	lo, hi := s.bits.Bits()
	if hi != 0 || lo>>16 != 0 {
		return 0, false
	}
	return uint16(lo), true
}

// ToUint16Truncated returns the set as a uint16, dropping bits that do not
// fit in 16 bits.
func (s Set[T, R]) ToUint16Truncated() uint16 {
	lo, _ := s.bits.Bits()
	return uint16(lo)
}

// ToUint32 returns the set as a uint32, panicking if any set bit does not
// fit in 32 bits.
func (s Set[T, R]) ToUint32() uint32 {
	v, ok := s.TryToUint32()
	if !ok {
		panic("enumset: bitset will not fit into a uint32")
	}
	return v
}

// TryToUint32 returns the set as a uint32, reporting false if any set bit
// does not fit in 32 bits.
func (s Set[T, R]) TryToUint32() (uint32, bool) {
	lo, hi := s.bits.Bits()
	if hi != 0 || lo>>32 != 0 {
		return 0, false
	}
	return uint32(lo), true
}

// ToUint32Truncated returns the set as a uint32, dropping bits that do not
// fit in 32 bits.
func (s Set[T, R]) ToUint32Truncated() uint32 {
	lo, _ := s.bits.Bits()
	return uint32(lo)
}

// ToUint64 returns the set as a uint64, panicking if any set bit does not
// fit in 64 bits.
func (s Set[T, R]) ToUint64() uint64 {
	v, ok := s.TryToUint64()
	if !ok {
		panic("enumset: bitset will not fit into a uint64")
	}
	return v
}

// TryToUint64 returns the set as a uint64, reporting false if any set bit
// does not fit in 64 bits.
func (s Set[T, R]) TryToUint64() (uint64, bool) {
	lo, hi := s.bits.Bits()
	if hi != 0 {
		return 0, false
	}
	return lo, true
}

// ToUint64Truncated returns the set as a uint64, dropping bits that do not
// fit in 64 bits.
func (s Set[T, R]) ToUint64Truncated() uint64 {
	lo, _ := s.bits.Bits()
	return lo
}

// ToUint128 returns the set as a U128. A 128-bit export always fits, so
// unlike the narrower widths this cannot panic.
func (s Set[T, R]) ToUint128() U128 {
	lo, hi := s.bits.Bits()
	return U128{Lo: lo, Hi: hi}
}

// TryToUint128 returns the set as a U128. It always reports true and
// exists for symmetry with the narrower widths.
func (s Set[T, R]) TryToUint128() (U128, bool) {
	return s.ToUint128(), true
}

// ToUint128Truncated returns the set as a U128. Nothing is ever truncated
// at 128 bits.
func (s Set[T, R]) ToUint128Truncated() U128 {
	return s.ToUint128()
}

// FromUint8 builds a set from a raw uint8, panicking if any bit does not
// correspond to a member of T.
func FromUint8[T EnumType[T, R], R Word[R]](bits uint8) Set[T, R] {
	s, ok := TryFromUint8[T, R](bits)
	if !ok {
		panic("enumset: bitset contains invalid variants")
	}
	return s
}

// TryFromUint8 builds a set from a raw uint8, reporting false if any bit
// does not correspond to a member of T.
func TryFromUint8[T EnumType[T, R], R Word[R]](bits uint8) (Set[T, R], bool) {
	return tryFromBits[T, R](uint64(bits), 0)
}

// FromUint8Truncated builds a set from a raw uint8, ignoring bits that do
// not correspond to a member of T.
func FromUint8Truncated[T EnumType[T, R], R Word[R]](bits uint8) Set[T, R] {
	return fromBitsTruncated[T, R](uint64(bits), 0)
}

// FromUint16 builds a set from a raw uint16, panicking if any bit does not
// correspond to a member of T.
func FromUint16[T EnumType[T, R], R Word[R]](bits uint16) Set[T, R] {
	s, ok := TryFromUint16[T, R](bits)
	if !ok {
		panic("enumset: bitset contains invalid variants")
	}
	return s
}

// TryFromUint16 builds a set from a raw uint16, reporting false if any bit
// does not correspond to a member of T.
func TryFromUint16[T EnumType[T, R], R Word[R]](bits uint16) (Set[T, R], bool) {
	return tryFromBits[T, R](uint64(bits), 0)
}

// FromUint16Truncated builds a set from a raw uint16, ignoring bits that
// do not correspond to a member of T.
func FromUint16Truncated[T EnumType[T, R], R Word[R]](bits uint16) Set[T, R] {
	return fromBitsTruncated[T, R](uint64(bits), 0)
}

// FromUint32 builds a set from a raw uint32, panicking if any bit does not
// correspond to a member of T.
func FromUint32[T EnumType[T, R], R Word[R]](bits uint32) Set[T, R] {
	s, ok := TryFromUint32[T, R](bits)
	if !ok {
		panic("enumset: bitset contains invalid variants")
	}
	return s
}

// TryFromUint32 builds a set from a raw uint32, reporting false if any bit
// does not correspond to a member of T.
func TryFromUint32[T EnumType[T, R], R Word[R]](bits uint32) (Set[T, R], bool) {
	return tryFromBits[T, R](uint64(bits), 0)
}

// FromUint32Truncated builds a set from a raw uint32, ignoring bits that
// do not correspond to a member of T.
func FromUint32Truncated[T EnumType[T, R], R Word[R]](bits uint32) Set[T, R] {
	return fromBitsTruncated[T, R](uint64(bits), 0)
}

// FromUint64 builds a set from a raw uint64, panicking if any bit does not
// correspond to a member of T.
func FromUint64[T EnumType[T, R], R Word[R]](bits uint64) Set[T, R] {
	s, ok := TryFromUint64[T, R](bits)
	if !ok {
		panic("enumset: bitset contains invalid variants")
	}
	return s
}

// TryFromUint64 builds a set from a raw uint64, reporting false if any bit
// does not correspond to a member of T.
func TryFromUint64[T EnumType[T, R], R Word[R]](bits uint64) (Set[T, R], bool) {
	return tryFromBits[T, R](bits, 0)
}

// FromUint64Truncated builds a set from a raw uint64, ignoring bits that
// do not correspond to a member of T.
func FromUint64Truncated[T EnumType[T, R], R Word[R]](bits uint64) Set[T, R] {
	return fromBitsTruncated[T, R](bits, 0)
}

// FromUint128 builds a set from a raw U128, panicking if any bit does not
// correspond to a member of T.
func FromUint128[T EnumType[T, R], R Word[R]](bits U128) Set[T, R] {
	s, ok := TryFromUint128[T, R](bits)
	if !ok {
		panic("enumset: bitset contains invalid variants")
	}
	return s
}

// TryFromUint128 builds a set from a raw U128, reporting false if any bit
// does not correspond to a member of T.
func TryFromUint128[T EnumType[T, R], R Word[R]](bits U128) (Set[T, R], bool) {
	return tryFromBits[T, R](bits.Lo, bits.Hi)
}

// FromUint128Truncated builds a set from a raw U128, ignoring bits that do
// not correspond to a member of T.
func FromUint128Truncated[T EnumType[T, R], R Word[R]](bits U128) Set[T, R] {
	return fromBitsTruncated[T, R](bits.Lo, bits.Hi)
}
