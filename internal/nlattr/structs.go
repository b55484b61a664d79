package nlattr

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"net"
)

// InvalidStructure replaces a struct payload shorter than the struct.
const InvalidStructure = "invalid structure"

// StructDecoder overlays the fixed-size record T on the leading bytes of a
// payload, in host byte order, and renders the values returned by fields as
// a tuple. Bytes past the record are ignored.
func StructDecoder[T any](fields func(*T) []any) DecodeFunc {
	size := binary.Size(new(T))
	return func(b Buffer, _ bool) string {
		if size < 0 || b.Len() < size {
			return InvalidStructure
		}
		var v T
		if err := binary.Read(bytes.NewReader(b.Bytes()[:size]), binary.NativeEndian, &v); err != nil {
			return InvalidStructure
		}
		a := newAssembler()
		for _, f := range fields(&v) {
			a.add(fmt.Sprint(f))
		}
		return a.close()
	}
}

type fixedInt interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// ArrayDecoder renders a packed array of T in host byte order, each element
// formatted with format. A trailing partial element is ignored.
func ArrayDecoder[T fixedInt](format string) DecodeFunc {
	var zero T
	size := binary.Size(zero)
	return func(b Buffer, _ bool) string {
		vals := make([]T, b.Len()/size)
		if len(vals) > 0 {
			if err := binary.Read(bytes.NewReader(b.Bytes()), binary.NativeEndian, vals); err != nil {
				return InvalidStructure
			}
		}
		a := newAssembler()
		for _, v := range vals {
			a.add(fmt.Sprintf(format, v))
		}
		return a.close()
	}
}

// HardwareAddrDecoder renders a 6-byte payload as a MAC address.
func HardwareAddrDecoder(b Buffer, _ bool) string {
	if b.Len() != 6 {
		return Fingerprint(b)
	}
	return net.HardwareAddr(b.Bytes()).String()
}

// HexDecoder renders the payload as hex, capped like unknown attributes.
func HexDecoder(b Buffer, _ bool) string {
	return hexDump(b.Bytes())
}

var builtinDecoders = map[string]DecodeFunc{
	"ie":  ElementsDecoder,
	"mac": HardwareAddrDecoder,
	"hex": HexDecoder,
}

// BuiltinDecoder returns a decoder by the name schema files refer to it.
func BuiltinDecoder(name string) (DecodeFunc, bool) {
	fn, ok := builtinDecoders[name]
	return fn, ok
}
