package codec

import (
	"encoding/json"
	"fmt"

	"github.com/wasmerio/enumset"
)

// Names encodes a set as a JSON array of member names. Unlike Raw it
// survives reordering or renumbering of the enum's bit positions, at the
// cost of a larger payload.
type Names[T enumset.EnumType[T, R], R enumset.Word[R]] struct {
	// Name renders a member. When nil, the member is formatted with the
	// fmt package.
	Name func(T) string

	// Parse resolves a member from its name. Required for Decode.
	Parse func(string) (T, bool)
}

func (c Names[T, R]) name(v T) string {
	if c.Name != nil {
		return c.Name(v)
	}
	return fmt.Sprintf("%v", v)
}

// Encode writes the set as a JSON array of names in ascending bit-position
// order.
func (c Names[T, R]) Encode(s enumset.Set[T, R]) ([]byte, error) {
	names := make([]string, 0, s.Len())
	it := s.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		names = append(names, c.name(v))
	}
	return json.Marshal(names)
}

// Decode reads a JSON array of names. It fails on a name that does not
// resolve to a member of T.
func (c Names[T, R]) Decode(data []byte) (enumset.Set[T, R], error) {
	if c.Parse == nil {
		return enumset.Set[T, R]{}, fmt.Errorf("enumset: Names codec has no Parse function")
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return enumset.Set[T, R]{}, fmt.Errorf("enumset: could not decode name list: %v", err)
	}
	var s enumset.Set[T, R]
	for _, name := range names {
		v, ok := c.Parse(name)
		if !ok {
			return enumset.Set[T, R]{}, fmt.Errorf("enumset: unknown variant %q", name)
		}
		s.Insert(v)
	}
	return s, nil
}
