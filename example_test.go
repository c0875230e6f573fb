package enumset

import "fmt"

// Weekday is what a generated descriptor for a user enum looks like.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (Weekday) ValidBits() U8 { return 0x7f }
func (d Weekday) Bit() uint   { return uint(d) }

func (Weekday) FromBit(bit uint) Weekday {
	if bit > 6 {
		panic(fmt.Sprintf("enumset: bit %d is not a Weekday", bit))
	}
	return Weekday(bit)
}

func (d Weekday) String() string { return weekdayNames[d] }

func Example() {
	workweek := Of[Weekday, U8](Monday, Tuesday, Wednesday, Thursday, Friday)
	weekend := workweek.Complement()
	fmt.Println(weekend)
	fmt.Println(weekend.Len())
	fmt.Println(weekend.Contains(Saturday))
	// Output:
	// EnumSet(Sat | Sun)
	// 2
	// true
}

func ExampleSet_Values() {
	days := Of[Weekday, U8](Friday, Monday)
	for d := range days.Values() {
		fmt.Println(d)
	}
	// Output:
	// Mon
	// Fri
}

func ExampleSet_ToUint8() {
	days := Of[Weekday, U8](Monday, Wednesday)
	fmt.Printf("%#x\n", days.ToUint8())
	fmt.Println(FromUint8[Weekday, U8](0x05) == days)
	// Output:
	// 0x5
	// true
}
