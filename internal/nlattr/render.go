package nlattr

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/mdlayher/netlink/nlenc"
)

// ErrToken marks the point where a scope stopped because of malformed data.
const ErrToken = "ERR"

// maxUnknownDump caps the hex shown for attributes missing from the schema.
const maxUnknownDump = 64

var nativeLittle = binary.NativeEndian.Uint16([]byte{1, 0}) == 1

// Render decodes the attributes in b with schema m. Malformed data never
// fails the call: the affected scope ends with ErrToken and outer scopes
// carry on.
func Render(b Buffer, m Map, verbose bool) string {
	a := newAssembler()
	s := NewScanner(b)
	for s.Next() {
		a.add(renderEntry(s.Type(), s.Payload(), m, verbose))
	}
	if s.Err() != nil {
		a.add(ErrToken)
	}
	return a.close()
}

func renderEntry(id uint16, p Buffer, m Map, verbose bool) string {
	def, ok := m.Lookup(id)
	if !ok {
		return renderUnknown(id, p)
	}
	if def.Verbose && !verbose {
		return label(def.Name, Fingerprint(p))
	}
	if def.Type == Flag {
		if def.Name == "" {
			return "true"
		}
		return def.Name
	}
	return label(def.Name, renderValue(p, def, verbose))
}

func renderValue(p Buffer, def Definition, verbose bool) string {
	switch def.Type {
	case Uint:
		if v, ok := decodeUint(p.Bytes()); ok {
			return strconv.FormatUint(v, 10)
		}
	case String:
		return quote(p.Bytes())
	case StringNul:
		b := p.Bytes()
		if n := len(b); n > 0 && b[n-1] == 0 {
			b = b[:n-1]
		}
		return quote(b)
	case Nested:
		return Render(p, def.Nested, verbose)
	case Raw, Struct:
		if def.Decode != nil {
			return def.Decode(p, verbose)
		}
	}
	return Fingerprint(p)
}

func renderUnknown(id uint16, p Buffer) string {
	if p.Len() == 0 {
		return fmt.Sprintf("UNKNOWN(id=%d)", id)
	}
	return fmt.Sprintf("UNKNOWN(id=%d): %s", id, hexDump(p.Bytes()))
}

func label(name, value string) string {
	if name == "" {
		return value
	}
	return name + ": " + value
}

// decodeUint reads an unsigned integer of 1 to 8 bytes in host order.
func decodeUint(b []byte) (uint64, bool) {
	switch len(b) {
	case 1:
		return uint64(b[0]), true
	case 2:
		return uint64(nlenc.Uint16(b)), true
	case 4:
		return uint64(nlenc.Uint32(b)), true
	case 8:
		return nlenc.Uint64(b), true
	}
	if len(b) == 0 || len(b) > 8 {
		return 0, false
	}
	var tmp [8]byte
	if nativeLittle {
		copy(tmp[:], b)
	} else {
		copy(tmp[8-len(b):], b)
	}
	return binary.NativeEndian.Uint64(tmp[:]), true
}

// Fingerprint renders opaque bytes as their length and CRC16.
func Fingerprint(b Buffer) string {
	return fmt.Sprintf("{len=%d, crc=%04x}", b.Len(), CRC16(b.Bytes()))
}

// Printable drops every byte outside printable ASCII.
func Printable(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		if c >= 0x20 && c < 0x7f {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func quote(b []byte) string {
	return `"` + Printable(b) + `"`
}

func hexDump(b []byte) string {
	if len(b) > maxUnknownDump {
		return hex.EncodeToString(b[:maxUnknownDump]) + "..."
	}
	return hex.EncodeToString(b)
}
