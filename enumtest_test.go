package enumset

import "fmt"

// Hand-written descriptors for the test domains, standing in for what a
// code generator would emit.

// Flag is a dense 7-member test enum at bits 0 through 6, stored in a U8.
type Flag int

const (
	FlagA Flag = iota
	FlagB
	FlagC
	FlagD
	FlagE
	FlagF
	FlagG
)

var flagNames = [...]string{"A", "B", "C", "D", "E", "F", "G"}

func (Flag) ValidBits() U8 { return 0x7f }
func (f Flag) Bit() uint   { return uint(f) }

func (Flag) FromBit(bit uint) Flag {
	if bit > 6 {
		panic(fmt.Sprintf("enumset: bit %d is not a Flag", bit))
	}
	return Flag(bit)
}

func (f Flag) String() string { return flagNames[f] }

type flagSet = Set[Flag, U8]

// Mode is a dense 12-member test enum stored in a U16.
type Mode int

const (
	Mode0 Mode = iota
	Mode1
	Mode2
	Mode3
	Mode4
	Mode5
	Mode6
	Mode7
	Mode8
	Mode9
	Mode10
	Mode11
)

func (Mode) ValidBits() U16 { return 0x0fff }
func (m Mode) Bit() uint    { return uint(m) }

func (Mode) FromBit(bit uint) Mode {
	if bit > 11 {
		panic(fmt.Sprintf("enumset: bit %d is not a Mode", bit))
	}
	return Mode(bit)
}

// Sparse is a test enum with bit positions 10, 20, 30 and 127, stored in
// a U128.
type Sparse int

const (
	Sparse10  Sparse = 10
	Sparse20  Sparse = 20
	Sparse30  Sparse = 30
	Sparse127 Sparse = 127
)

func (Sparse) ValidBits() U128 {
	return U128{Lo: 1<<10 | 1<<20 | 1<<30, Hi: 1 << 63}
}

func (s Sparse) Bit() uint { return uint(s) }

func (Sparse) FromBit(bit uint) Sparse {
	switch bit {
	case 10, 20, 30, 127:
		return Sparse(bit)
	}
	panic(fmt.Sprintf("enumset: bit %d is not a Sparse", bit))
}
