// Package codec provides pluggable wire encodings for enum sets. The core
// set type never commits to a format; a Codec supplied alongside the enum
// type's descriptor owns the encoding entirely.
package codec

import (
	"github.com/wasmerio/enumset"
)

// Codec encodes and decodes sets of T. Implementations must be safe for
// concurrent use.
type Codec[T enumset.EnumType[T, R], R enumset.Word[R]] interface {
	Encode(s enumset.Set[T, R]) ([]byte, error)
	Decode(data []byte) (enumset.Set[T, R], error)
}
