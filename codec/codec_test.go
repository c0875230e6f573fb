package codec

import (
	"fmt"

	"github.com/wasmerio/enumset"
)

var (
	_ Codec[color, enumset.U8]     = Raw[color, enumset.U8]{}
	_ Codec[color, enumset.U8]     = Names[color, enumset.U8]{}
	_ Codec[priority, enumset.U16] = Raw[priority, enumset.U16]{}
)

// color is a dense 5-member test enum stored in a U8.
type color int

const (
	red color = iota
	green
	blue
	yellow
	purple
)

var colorNames = [...]string{"red", "green", "blue", "yellow", "purple"}

func (color) ValidBits() enumset.U8 { return 0x1f }
func (c color) Bit() uint           { return uint(c) }

func (color) FromBit(bit uint) color {
	if bit > 4 {
		panic(fmt.Sprintf("enumset: bit %d is not a color", bit))
	}
	return color(bit)
}

func (c color) String() string { return colorNames[c] }

func parseColor(name string) (color, bool) {
	for i, n := range colorNames {
		if n == name {
			return color(i), true
		}
	}
	return 0, false
}

type colorSet = enumset.Set[color, enumset.U8]

// priority is a dense 12-member test enum stored in a U16, for exercising
// wire widths narrower than the storage word.
type priority int

func (priority) ValidBits() enumset.U16 { return 0x0fff }
func (p priority) Bit() uint            { return uint(p) }

func (priority) FromBit(bit uint) priority {
	if bit > 11 {
		panic(fmt.Sprintf("enumset: bit %d is not a priority", bit))
	}
	return priority(bit)
}
