package enumset

import "math/bits"

// Word is the capability contract the set engine requires of its storage.
// It is implemented by the five word types U8, U16, U32, U64 and U128, one
// of which backs every Set. The enum type's descriptor picks the smallest
// width that fits its highest bit position.
type Word[W any] interface {
	comparable

	// And, Or, Xor and Not are the plain bitwise operations.
	And(W) W
	Or(W) W
	Xor(W) W
	Not() W

	// Shl shifts left by n bits. Shifting by the word width or more
	// yields zero.
	Shl(n uint) W

	// CheckedShl shifts left by n bits, reporting false instead of
	// discarding bits when n is the word width or larger.
	CheckedShl(n uint) (W, bool)

	// SubWrapping subtracts with wraparound on underflow.
	SubWrapping(W) W

	// OnesCount returns the number of set bits.
	OnesCount() int

	// LeadingZeros returns the number of leading zero bits.
	LeadingZeros() int

	// IsZero reports whether the word is zero.
	IsZero() bool

	// Width returns the word width in bits.
	Width() uint

	// Bits decomposes the word into two 64-bit halves. The high half is
	// zero for widths up to 64.
	Bits() (lo, hi uint64)

	// Make builds a word of the receiver's width from two 64-bit halves,
	// keeping only the low bits that fit. The receiver's own value is
	// ignored, so Make is usable on the zero value.
	Make(lo, hi uint64) W
}

// U8 is an 8-bit set representation.
type U8 uint8

func (w U8) And(o U8) U8 { return w & o }
func (w U8) Or(o U8) U8 { return w | o }
func (w U8) Xor(o U8) U8 { return w ^ o }
func (w U8) Not() U8 { return ^w }
func (w U8) Shl(n uint) U8 { return w << n }
func (w U8) SubWrapping(o U8) U8 { return w - o }
func (w U8) OnesCount() int { return bits.OnesCount8(uint8(w)) }
func (w U8) LeadingZeros() int { return bits.LeadingZeros8(uint8(w)) }
func (w U8) IsZero() bool { return w == 0 }
func (w U8) Width() uint { return 8 }
func (w U8) Bits() (lo, hi uint64) { return uint64(w), 0 }
func (w U8) Make(lo, hi uint64) U8 { return U8(lo) }

func (w U8) CheckedShl(n uint) (U8, bool) {
	if n >= 8 {
		return 0, false
	}
	return w << n, true
}

// U16 is a 16-bit set representation.
type U16 uint16

func (w U16) And(o U16) U16 { return w & o }
func (w U16) Or(o U16) U16 { return w | o }
func (w U16) Xor(o U16) U16 { return w ^ o }
func (w U16) Not() U16 { return ^w }
func (w U16) Shl(n uint) U16 { return w << n }
func (w U16) SubWrapping(o U16) U16 { return w - o }
func (w U16) OnesCount() int { return bits.OnesCount16(uint16(w)) }
func (w U16) LeadingZeros() int { return bits.LeadingZeros16(uint16(w)) }
func (w U16) IsZero() bool { return w == 0 }
func (w U16) Width() uint { return 16 }
func (w U16) Bits() (lo, hi uint64) { return uint64(w), 0 }
func (w U16) Make(lo, hi uint64) U16 { return U16(lo) }

func (w U16) CheckedShl(n uint) (U16, bool) {
	if n >= 16 {
		return 0, false
	}
	return w << n, true
}

// U32 is a 32-bit set representation.
type U32 uint32

func (w U32) And(o U32) U32 { return w & o }
func (w U32) Or(o U32) U32 { return w | o }
func (w U32) Xor(o U32) U32 { return w ^ o }
func (w U32) Not() U32 { return ^w }
func (w U32) Shl(n uint) U32 { return w << n }
func (w U32) SubWrapping(o U32) U32 { return w - o }
func (w U32) OnesCount() int { return bits.OnesCount32(uint32(w)) }
func (w U32) LeadingZeros() int { return bits.LeadingZeros32(uint32(w)) }
func (w U32) IsZero() bool { return w == 0 }
func (w U32) Width() uint { return 32 }
func (w U32) Bits() (lo, hi uint64) { return uint64(w), 0 }
func (w U32) Make(lo, hi uint64) U32 { return U32(lo) }

func (w U32) CheckedShl(n uint) (U32, bool) {
	if n >= 32 {
		return 0, false
	}
	return w << n, true
}

// U64 is a 64-bit set representation.
type U64 uint64

func (w U64) And(o U64) U64 { return w & o }
func (w U64) Or(o U64) U64 { return w | o }
func (w U64) Xor(o U64) U64 { return w ^ o }
func (w U64) Not() U64 { return ^w }
func (w U64) Shl(n uint) U64 { return w << n }
func (w U64) SubWrapping(o U64) U64 { return w - o }
func (w U64) OnesCount() int { return bits.OnesCount64(uint64(w)) }
func (w U64) LeadingZeros() int { return bits.LeadingZeros64(uint64(w)) }
func (w U64) IsZero() bool { return w == 0 }
func (w U64) Width() uint { return 64 }
func (w U64) Bits() (lo, hi uint64) { return uint64(w), 0 }
func (w U64) Make(lo, hi uint64) U64 { return U64(lo) }

func (w U64) CheckedShl(n uint) (U64, bool) {
	if n >= 64 {
		return 0, false
	}
	return w << n, true
}

// U128 is a 128-bit set representation built from two 64-bit halves. Bit n
// of the set lives in Lo for n < 64 and in Hi otherwise.
type U128 struct {
	Lo, Hi uint64
}

func (w U128) And(o U128) U128 { return U128{w.Lo & o.Lo, w.Hi & o.Hi} }
func (w U128) Or(o U128) U128 { return U128{w.Lo | o.Lo, w.Hi | o.Hi} }
func (w U128) Xor(o U128) U128 { return U128{w.Lo ^ o.Lo, w.Hi ^ o.Hi} }
func (w U128) Not() U128 { return U128{^w.Lo, ^w.Hi} }

func (w U128) Shl(n uint) U128 {
	switch {
	case n >= 128:
		return U128{}
	case n >= 64:
		return U128{0, w.Lo << (n - 64)}
	case n == 0:
		return w
	default:
		return U128{w.Lo << n, w.Hi<<n | w.Lo>>(64-n)}
	}
}

func (w U128) CheckedShl(n uint) (U128, bool) {
	if n >= 128 {
		return U128{}, false
	}
	return w.Shl(n), true
}

func (w U128) SubWrapping(o U128) U128 {
	lo, borrow := bits.Sub64(w.Lo, o.Lo, 0)
	hi, _ := bits.Sub64(w.Hi, o.Hi, borrow)
	return U128{lo, hi}
}

func (w U128) OnesCount() int {
	return bits.OnesCount64(w.Lo) + bits.OnesCount64(w.Hi)
}

func (w U128) LeadingZeros() int {
	if w.Hi != 0 {
		return bits.LeadingZeros64(w.Hi)
	}
	return 64 + bits.LeadingZeros64(w.Lo)
}

func (w U128) IsZero() bool { return w.Lo == 0 && w.Hi == 0 }
func (w U128) Width() uint { return 128 }
func (w U128) Bits() (lo, hi uint64) { return w.Lo, w.Hi }
func (w U128) Make(lo, hi uint64) U128 { return U128{lo, hi} }

// bitMask returns a word with only the given bit position set.
func bitMask[R Word[R]](bit uint) R {
	var zero R
	return zero.Make(1, 0).Shl(bit)
}

// partialBits returns a word with the low n bits set, saturating to all
// ones when n is the word width or larger.
func partialBits[R Word[R]](n uint) R {
	var zero R
	one := zero.Make(1, 0)
	shifted, ok := one.CheckedShl(n)
	if !ok {
		shifted = zero
	}
	return shifted.SubWrapping(one)
}
