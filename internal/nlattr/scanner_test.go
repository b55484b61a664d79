package nlattr

import (
	"errors"
	"testing"

	"github.com/mdlayher/netlink"
	"github.com/mdlayher/netlink/nlenc"
)

func TestBufferSlice(t *testing.T) {
	b := NewBuffer([]byte{1, 2, 3, 4})

	s, ok := b.Slice(1, 2)
	if !ok {
		t.Fatal("in-range slice rejected")
	}
	if s.Len() != 2 || s.Bytes()[0] != 2 {
		t.Errorf("slice = %v, want [2 3]", s.Bytes())
	}
	if cap(s.Bytes()) != 2 {
		t.Errorf("cap = %d, want 2", cap(s.Bytes()))
	}

	for _, r := range [][2]int{{-1, 1}, {0, 5}, {5, 0}, {3, 2}, {2, -1}} {
		if _, ok := b.Slice(r[0], r[1]); ok {
			t.Errorf("Slice(%d, %d) accepted", r[0], r[1])
		}
	}

	if tail, ok := b.Tail(4); !ok || tail.Len() != 0 {
		t.Errorf("Tail(4) = %v, %v", tail.Bytes(), ok)
	}
	if _, ok := b.Tail(5); ok {
		t.Error("Tail(5) accepted")
	}
}

func TestScannerConsumesWholeBuffer(t *testing.T) {
	ae := netlink.NewAttributeEncoder()
	ae.Uint8(1, 1) // padded to 8
	ae.Nested(2, func(nae *netlink.AttributeEncoder) error {
		nae.String(1, "abc")
		return nil
	})
	ae.Uint16(3, 3)
	b, err := ae.Encode()
	if err != nil {
		t.Fatal(err)
	}

	s := NewScanner(NewBuffer(b))
	var types []uint16
	for s.Next() {
		types = append(types, s.Type())
		if s.Type() == 2 && !s.NestedFlag() {
			t.Error("nested flag not reported")
		}
	}
	if s.Err() != nil {
		t.Fatalf("err = %v", s.Err())
	}
	if s.Offset() != len(b) {
		t.Errorf("consumed %d, want %d", s.Offset(), len(b))
	}
	if len(types) != 3 || types[0] != 1 || types[1] != 2 || types[2] != 3 {
		t.Errorf("types = %v, want [1 2 3]", types)
	}
}

func TestScannerUnpaddedLastAttribute(t *testing.T) {
	b := append(nlenc.Uint16Bytes(5), nlenc.Uint16Bytes(7)...)
	b = append(b, 0x2a)

	s := NewScanner(NewBuffer(b))
	if !s.Next() {
		t.Fatalf("Next = false, err %v", s.Err())
	}
	if s.Payload().Len() != 1 {
		t.Errorf("payload len = %d, want 1", s.Payload().Len())
	}
	if s.Next() || s.Err() != nil {
		t.Errorf("second Next: err = %v", s.Err())
	}
	if s.Offset() != len(b) {
		t.Errorf("offset = %d, want %d", s.Offset(), len(b))
	}
}

func TestScannerErrors(t *testing.T) {
	hdr := func(n, typ uint16) []byte {
		return append(nlenc.Uint16Bytes(n), nlenc.Uint16Bytes(typ)...)
	}
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short header", []byte{4, 0}, ErrShortHeader},
		{"length below header", hdr(2, 1), ErrBadLength},
		{"length past end", append(hdr(12, 1), 0, 0, 0, 0), ErrTruncated},
	}
	for _, tt := range tests {
		s := NewScanner(NewBuffer(tt.data))
		for s.Next() {
		}
		if !errors.Is(s.Err(), tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, s.Err(), tt.want)
		}
	}
}

func TestCRC16(t *testing.T) {
	if got := CRC16([]byte("123456789")); got != 0xBB3D {
		t.Errorf("CRC16 check = 0x%04X, want 0xBB3D", got)
	}
	if got := CRC16(nil); got != 0 {
		t.Errorf("CRC16(nil) = 0x%04X, want 0", got)
	}
}

func TestMapLookup(t *testing.T) {
	m := Map{
		1:        {Name: "ONE", Type: Uint},
		Wildcard: {Name: "ANY", Type: Flag},
	}
	if def, ok := m.Lookup(1); !ok || def.Name != "ONE" {
		t.Errorf("Lookup(1) = %+v, %v", def, ok)
	}
	if def, ok := m.Lookup(7); !ok || def.Name != "ANY7" || def.Type != Flag {
		t.Errorf("Lookup(7) = %+v, %v", def, ok)
	}
	if m[Wildcard].Name != "ANY" {
		t.Error("Lookup modified the map")
	}
	if _, ok := (Map{1: {Name: "ONE"}}).Lookup(2); ok {
		t.Error("Lookup(2) without wildcard succeeded")
	}
}

func TestMapMerge(t *testing.T) {
	base := Map{
		1: {Name: "A", Type: Uint},
		2: {Name: "N", Type: Nested, Nested: Map{1: {Name: "X"}}},
	}
	overlay := Map{
		2: {Name: "N", Type: Nested, Nested: Map{2: {Name: "Y"}}},
		3: {Name: "C", Type: Flag},
	}

	got := base.Merge(overlay)
	if len(got) != 3 {
		t.Errorf("merged len = %d, want 3", len(got))
	}
	if len(got[2].Nested) != 2 {
		t.Errorf("nested len = %d, want 2", len(got[2].Nested))
	}
	if len(base) != 2 || len(base[2].Nested) != 1 {
		t.Error("Merge modified the receiver")
	}
	if got.Count() != 5 {
		t.Errorf("Count = %d, want 5", got.Count())
	}
}

func TestParseDataType(t *testing.T) {
	for _, dt := range []DataType{Raw, Nested, String, StringNul, Uint, Flag, Struct} {
		got, err := ParseDataType(dt.String())
		if err != nil || got != dt {
			t.Errorf("ParseDataType(%q) = %v, %v", dt.String(), got, err)
		}
	}
	if _, err := ParseDataType("float"); err == nil {
		t.Error("expected error for unknown type")
	}
}
