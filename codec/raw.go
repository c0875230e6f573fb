package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/wasmerio/enumset"
)

// RawPolicy controls what Raw.Decode does with bits that do not
// correspond to a member of the enum type.
type RawPolicy int

const (
	// IgnoreUnknown silently drops unknown bits.
	IgnoreUnknown RawPolicy = iota
	// DenyUnknown rejects payloads carrying unknown bits.
	DenyUnknown
)

// Raw encodes a set as its underlying bitset written out as a big-endian
// unsigned integer. Pinning Width keeps the wire format stable even if the
// enum type later grows into a wider storage word.
type Raw[T enumset.EnumType[T, R], R enumset.Word[R]] struct {
	// Width is the wire width in bits: 8, 16, 32, 64 or 128. Zero means
	// the storage width of R.
	Width uint

	// Policy controls how Decode treats unknown bits.
	Policy RawPolicy
}

func (c Raw[T, R]) width() (uint, error) {
	if c.Width == 0 {
		var zero R
		return zero.Width(), nil
	}
	switch c.Width {
	case 8, 16, 32, 64, 128:
		return c.Width, nil
	}
	return 0, fmt.Errorf("enumset: invalid wire width %d", c.Width)
}

// Encode writes the set as a big-endian integer of the configured width.
// It fails if any set bit does not fit that width.
func (c Raw[T, R]) Encode(s enumset.Set[T, R]) ([]byte, error) {
	w, err := c.width()
	if err != nil {
		return nil, err
	}
	u := s.ToUint128()
	fits := w == 128 || (u.Hi == 0 && (w == 64 || u.Lo>>w == 0))
	if !fits {
		return nil, fmt.Errorf("enumset: bitset will not fit into %d bits", w)
	}
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], u.Hi)
	binary.BigEndian.PutUint64(buf[8:], u.Lo)
	return buf[16-w/8:], nil
}

// Decode reads a big-endian integer of the configured width and builds a
// set from it, applying the codec's unknown-bit policy.
func (c Raw[T, R]) Decode(data []byte) (enumset.Set[T, R], error) {
	w, err := c.width()
	if err != nil {
		return enumset.Set[T, R]{}, err
	}
	if uint(len(data)) != w/8 {
		return enumset.Set[T, R]{}, fmt.Errorf("enumset: expected %d bytes, got %d", w/8, len(data))
	}
	var buf [16]byte
	copy(buf[16-len(data):], data)
	u := enumset.U128{
		Hi: binary.BigEndian.Uint64(buf[:8]),
		Lo: binary.BigEndian.Uint64(buf[8:]),
	}
	if c.Policy == DenyUnknown {
		s, ok := enumset.TryFromUint128[T, R](u)
		if !ok {
			return enumset.Set[T, R]{}, fmt.Errorf("enumset: bitset contains invalid variants")
		}
		return s, nil
	}
	return enumset.FromUint128Truncated[T, R](u), nil
}
