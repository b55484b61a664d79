package nlattr

import (
	"strings"
	"sync"
	"testing"

	"github.com/mdlayher/netlink"
	"github.com/mdlayher/netlink/nlenc"
)

func encode(t *testing.T, fn func(ae *netlink.AttributeEncoder)) []byte {
	t.Helper()
	ae := netlink.NewAttributeEncoder()
	fn(ae)
	b, err := ae.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return b
}

var testSchema = Map{
	1: {Name: "A", Type: Uint},
	2: {Name: "B", Type: Nested, Nested: Map{
		Wildcard: {Name: "", Type: Uint},
	}},
	3: {Name: "C", Type: Uint},
	4: {Name: "NAME", Type: StringNul},
	5: {Name: "ON", Type: Flag},
	6: {Name: "BLOB"},
	7: {Name: "BIG", Type: Nested, Nested: Map{1: {Name: "X", Type: Uint}}, Verbose: true},
	8: {Name: "TEXT", Type: String},
}

func TestRenderWildcardList(t *testing.T) {
	payload := encode(t, func(ae *netlink.AttributeEncoder) {
		ae.Uint32(1, 1)
		ae.Uint32(2, 2)
	})

	got := Render(NewBuffer(payload), Map{Wildcard: {Type: Uint}}, false)
	if got != "{1, 2}" {
		t.Errorf("got %q, want %q", got, "{1, 2}")
	}

	outer := encode(t, func(ae *netlink.AttributeEncoder) {
		ae.Bytes(2, payload)
	})
	got = Render(NewBuffer(outer), testSchema, false)
	if got != "{B: {1, 2}}" {
		t.Errorf("got %q, want %q", got, "{B: {1, 2}}")
	}
}

func TestRenderNamedWildcard(t *testing.T) {
	m := Map{Wildcard: {Name: "FQ", Type: Uint}}
	b := encode(t, func(ae *netlink.AttributeEncoder) {
		ae.Uint16(3, 2412)
	})
	got := Render(NewBuffer(b), m, false)
	if got != "{FQ3: 2412}" {
		t.Errorf("got %q, want %q", got, "{FQ3: 2412}")
	}
}

func TestRenderScalars(t *testing.T) {
	b := encode(t, func(ae *netlink.AttributeEncoder) {
		ae.Uint8(1, 7)
		ae.Uint64(3, 1<<40)
		ae.String(4, "wlan0")
		ae.Flag(5, true)
		ae.Bytes(8, []byte("a\x01b"))
	})
	got := Render(NewBuffer(b), testSchema, false)
	want := `{A: 7, C: 1099511627776, NAME: "wlan0", ON, TEXT: "ab"}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderOddWidthUint(t *testing.T) {
	v, ok := decodeUint([]byte{0x01, 0x02, 0x03})
	if !ok {
		t.Fatal("3-byte uint rejected")
	}
	want := uint64(0x030201)
	if !nativeLittle {
		want = 0x010203
	}
	if v != want {
		t.Errorf("got 0x%X, want 0x%X", v, want)
	}
	if _, ok := decodeUint(make([]byte, 9)); ok {
		t.Error("9-byte uint accepted")
	}
	if _, ok := decodeUint(nil); ok {
		t.Error("empty uint accepted")
	}
}

func TestRenderRawFingerprint(t *testing.T) {
	data := []byte("123456789")
	b := encode(t, func(ae *netlink.AttributeEncoder) {
		ae.Bytes(6, data)
	})
	got := Render(NewBuffer(b), testSchema, false)
	if got != "{BLOB: {len=9, crc=bb3d}}" {
		t.Errorf("got %q", got)
	}
}

func TestRenderRawWithDecoder(t *testing.T) {
	m := Map{1: {Name: "MAC", Decode: HardwareAddrDecoder}}
	b := encode(t, func(ae *netlink.AttributeEncoder) {
		ae.Bytes(1, []byte{0x02, 0x00, 0x00, 0xaa, 0xbb, 0xcc})
	})
	got := Render(NewBuffer(b), m, false)
	if got != "{MAC: 02:00:00:aa:bb:cc}" {
		t.Errorf("got %q", got)
	}
}

func TestRenderUnknown(t *testing.T) {
	b := encode(t, func(ae *netlink.AttributeEncoder) {
		ae.Bytes(99, []byte{0xde, 0xad, 0xbe, 0xef})
		ae.Bytes(98, nil)
	})
	got := Render(NewBuffer(b), testSchema, false)
	want := "{UNKNOWN(id=99): deadbeef, UNKNOWN(id=98)}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	long := make([]byte, 100)
	b = encode(t, func(ae *netlink.AttributeEncoder) {
		ae.Bytes(99, long)
	})
	got = Render(NewBuffer(b), nil, false)
	if !strings.HasSuffix(got, "...}") {
		t.Errorf("long unknown not capped: %q", got)
	}
	if strings.Count(got, "00") != maxUnknownDump {
		t.Errorf("dumped %d bytes, want %d", strings.Count(got, "00"), maxUnknownDump)
	}
}

func TestRenderVerbosePlaceholder(t *testing.T) {
	b := encode(t, func(ae *netlink.AttributeEncoder) {
		ae.Nested(7, func(nae *netlink.AttributeEncoder) error {
			nae.Uint32(1, 42)
			return nil
		})
	})

	compact := Render(NewBuffer(b), testSchema, false)
	if !strings.HasPrefix(compact, "{BIG: {len=8, crc=") {
		t.Errorf("compact = %q", compact)
	}
	if strings.Contains(compact, "X:") {
		t.Errorf("compact output expanded verbose attribute: %q", compact)
	}

	full := Render(NewBuffer(b), testSchema, true)
	if full != "{BIG: {X: 42}}" {
		t.Errorf("verbose = %q, want %q", full, "{BIG: {X: 42}}")
	}
}

func TestRenderKeepsDuplicatesInOrder(t *testing.T) {
	b := encode(t, func(ae *netlink.AttributeEncoder) {
		ae.Uint32(3, 2)
		ae.Uint32(1, 1)
		ae.Uint32(3, 3)
	})
	got := Render(NewBuffer(b), testSchema, false)
	if got != "{C: 2, A: 1, C: 3}" {
		t.Errorf("got %q", got)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(NewBuffer(nil), testSchema, false); got != "{}" {
		t.Errorf("got %q, want {}", got)
	}
}

// sampleTree is A(8 bytes) + B(4 + 2*8 bytes) + C(8 bytes); top-level
// boundaries at 0, 8, 28 and 36.
func sampleTree(t *testing.T) []byte {
	return encode(t, func(ae *netlink.AttributeEncoder) {
		ae.Uint32(1, 10)
		ae.Nested(2, func(nae *netlink.AttributeEncoder) error {
			nae.Uint32(1, 1)
			nae.Uint32(2, 2)
			return nil
		})
		ae.Uint32(3, 30)
	})
}

func TestRenderTruncatedAtEveryOffset(t *testing.T) {
	full := sampleTree(t)
	if len(full) != 36 {
		t.Fatalf("sample length = %d, want 36", len(full))
	}
	boundaries := map[int]bool{0: true, 8: true, 28: true, 36: true}

	for cut := 0; cut <= len(full); cut++ {
		got := Render(NewBuffer(full[:cut]), testSchema, true)
		n := strings.Count(got, ErrToken)
		want := 1
		if boundaries[cut] {
			want = 0
		}
		if n != want {
			t.Errorf("cut=%d: %d error tokens, want %d (%q)", cut, n, want, got)
		}
	}
}

func TestRenderNestedCorruptionStaysLocal(t *testing.T) {
	inner := encode(t, func(ae *netlink.AttributeEncoder) {
		ae.Uint32(1, 1)
	})
	// Second inner attribute claims 12 bytes but carries 4.
	inner = append(inner, nlenc.Uint16Bytes(12)...)
	inner = append(inner, nlenc.Uint16Bytes(2)...)
	b := encode(t, func(ae *netlink.AttributeEncoder) {
		ae.Bytes(2, inner)
		ae.Uint32(3, 30)
	})
	got := Render(NewBuffer(b), testSchema, false)
	want := "{B: {1, ERR}, C: 30}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderConcurrentReaders(t *testing.T) {
	b := sampleTree(t)
	want := Render(NewBuffer(b), testSchema, true)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := Render(NewBuffer(b), testSchema, true); got != want {
					t.Errorf("got %q, want %q", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
