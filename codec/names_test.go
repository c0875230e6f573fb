package codec

import (
	"testing"

	"github.com/wasmerio/enumset"
)

func TestNamesEncode(t *testing.T) {
	c := Names[color, enumset.U8]{Parse: parseColor}
	data, err := c.Encode(enumset.Of[color, enumset.U8](blue, red))
	if err != nil {
		t.Fatalf("encode should not fail, got %v", err)
	}
	if string(data) != `["red","blue"]` {
		t.Fatalf("should encode in bit order, got %s", data)
	}
}

func TestNamesEncodeEmpty(t *testing.T) {
	c := Names[color, enumset.U8]{Parse: parseColor}
	data, err := c.Encode(enumset.New[color, enumset.U8]())
	if err != nil {
		t.Fatalf("encode should not fail, got %v", err)
	}
	if string(data) != `[]` {
		t.Fatalf("empty set should encode as [], got %s", data)
	}
}

func TestNamesRoundTrip(t *testing.T) {
	c := Names[color, enumset.U8]{Parse: parseColor}
	s := enumset.Of[color, enumset.U8](green, purple)
	data, err := c.Encode(s)
	if err != nil {
		t.Fatalf("encode should not fail, got %v", err)
	}
	got, err := c.Decode(data)
	if err != nil {
		t.Fatalf("decode should not fail, got %v", err)
	}
	if got != s {
		t.Fatalf("round trip should give %v, got %v", s, got)
	}
}

func TestNamesUnknownVariant(t *testing.T) {
	c := Names[color, enumset.U8]{Parse: parseColor}
	if _, err := c.Decode([]byte(`["red","magenta"]`)); err == nil {
		t.Fatalf("an unknown name should be rejected")
	}
}

func TestNamesBadPayload(t *testing.T) {
	c := Names[color, enumset.U8]{Parse: parseColor}
	if _, err := c.Decode([]byte(`{"red":true}`)); err == nil {
		t.Fatalf("a non-array payload should be rejected")
	}
}

func TestNamesNoParse(t *testing.T) {
	c := Names[color, enumset.U8]{}
	if _, err := c.Decode([]byte(`["red"]`)); err == nil {
		t.Fatalf("decoding without a Parse function should fail")
	}
}

func TestNamesCustomName(t *testing.T) {
	c := Names[color, enumset.U8]{
		Name: func(v color) string { return "color/" + v.String() },
		Parse: func(name string) (color, bool) {
			if len(name) < 6 || name[:6] != "color/" {
				return 0, false
			}
			return parseColor(name[6:])
		},
	}
	s := enumset.Only[color, enumset.U8](yellow)
	data, err := c.Encode(s)
	if err != nil {
		t.Fatalf("encode should not fail, got %v", err)
	}
	if string(data) != `["color/yellow"]` {
		t.Fatalf("should use the custom name, got %s", data)
	}
	got, err := c.Decode(data)
	if err != nil || got != s {
		t.Fatalf("round trip should give %v, got %v, %v", s, got, err)
	}
}
