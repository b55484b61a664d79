// Package nlattr renders netlink attribute trees as readable text, driven by
// declarative per-family schemas.
package nlattr

import (
	"fmt"
	"maps"
	"strconv"
	"strings"
)

// DataType selects how an attribute payload is rendered.
type DataType uint8

const (
	Raw DataType = iota
	Nested
	String
	StringNul
	Uint
	Flag
	Struct
)

var dataTypeNames = [...]string{
	Raw:       "raw",
	Nested:    "nested",
	String:    "string",
	StringNul: "stringnul",
	Uint:      "uint",
	Flag:      "flag",
	Struct:    "struct",
}

func (t DataType) String() string {
	if int(t) < len(dataTypeNames) {
		return dataTypeNames[t]
	}
	return "DataType(" + strconv.Itoa(int(t)) + ")"
}

// ParseDataType maps a lower-case type name back to its DataType.
func ParseDataType(s string) (DataType, error) {
	for i, name := range dataTypeNames {
		if strings.EqualFold(s, name) {
			return DataType(i), nil
		}
	}
	return Raw, fmt.Errorf("nlattr: unknown data type %q", s)
}

// DecodeFunc renders a payload that needs custom decoding. It must not keep
// b after returning.
type DecodeFunc func(b Buffer, verbose bool) string

// Definition describes one attribute id.
type Definition struct {
	Name string
	Type DataType
	// Nested is the schema of the payload when Type is Nested.
	Nested Map
	// Decode renders Struct payloads, and Raw payloads when set.
	Decode DecodeFunc
	// Verbose definitions are collapsed to a length and checksum unless the
	// caller asked for verbose output.
	Verbose bool
}

// Wildcard is the Map key matching every id without its own entry.
const Wildcard = -1

// Map is a schema: attribute id to definition. A Map must not be modified
// once decoding has started.
type Map map[int]Definition

// Lookup resolves id, trying the exact id before the wildcard. A named
// wildcard match gets the id appended so list entries stay distinguishable.
func (m Map) Lookup(id uint16) (Definition, bool) {
	if def, ok := m[int(id)]; ok {
		return def, true
	}
	def, ok := m[Wildcard]
	if !ok {
		return Definition{}, false
	}
	if def.Name != "" {
		def.Name += strconv.Itoa(int(id))
	}
	return def, true
}

// Merge returns a new Map holding m overlaid with other. Entries present in
// both with nested schemas have those schemas merged recursively; m itself
// is left untouched.
func (m Map) Merge(other Map) Map {
	out := make(Map, len(m)+len(other))
	maps.Copy(out, m)
	for id, def := range other {
		if base, ok := out[id]; ok && base.Nested != nil && def.Nested != nil {
			def.Nested = base.Nested.Merge(def.Nested)
		}
		out[id] = def
	}
	return out
}

// Count returns the number of definitions in m and all nested maps.
func (m Map) Count() int {
	n := 0
	for _, def := range m {
		n++
		if def.Nested != nil {
			n += def.Nested.Count()
		}
	}
	return n
}
