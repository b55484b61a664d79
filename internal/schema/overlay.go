// Package schema loads attribute schemas for generic netlink families from
// YAML files and layers them over the compiled-in ones.
package schema

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"nldump/internal/genl"
	"nldump/internal/nlattr"
)

// maxAttrID is the largest id that survives masking the nlattr flag bits.
const maxAttrID = 0x3fff

// scriptPrefix selects a decoder implemented by a Lua script.
const scriptPrefix = "script:"

// AttributeSpec is one attribute definition in a schema file.
type AttributeSpec struct {
	ID         *int            `yaml:"id"`
	Wildcard   bool            `yaml:"wildcard"`
	Name       string          `yaml:"name"`
	Type       string          `yaml:"type"`
	Verbose    bool            `yaml:"verbose"`
	Decoder    string          `yaml:"decoder"`
	Attributes []AttributeSpec `yaml:"attributes"`
}

// FamilySpec adds to, or defines, one family.
type FamilySpec struct {
	Name       string           `yaml:"name"`
	ID         uint16           `yaml:"id"`
	Version    uint8            `yaml:"version"`
	Commands   map[uint8]string `yaml:"commands"`
	Attributes []AttributeSpec  `yaml:"attributes"`
}

type schemaFile struct {
	Families []FamilySpec `yaml:"families"`
}

// DecoderResolver looks up a script decoder by name.
type DecoderResolver func(name string) (nlattr.DecodeFunc, bool)

// Parse decodes one schema document into family descriptors.
func Parse(data []byte, resolve DecoderResolver) ([]genl.Family, error) {
	var sf schemaFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("schema: parse yaml: %w", err)
	}
	families := make([]genl.Family, 0, len(sf.Families))
	for i, fs := range sf.Families {
		if fs.Name == "" {
			return nil, fmt.Errorf("schema: family #%d has no name", i)
		}
		attrs, err := BuildMap(fs.Attributes, resolve)
		if err != nil {
			return nil, fmt.Errorf("schema: family %s: %w", fs.Name, err)
		}
		families = append(families, genl.Family{
			Name:     fs.Name,
			ID:       fs.ID,
			Version:  fs.Version,
			Commands: fs.Commands,
			Attrs:    attrs,
		})
	}
	return families, nil
}

// BuildMap converts attribute specs into a schema map.
func BuildMap(specs []AttributeSpec, resolve DecoderResolver) (nlattr.Map, error) {
	m := make(nlattr.Map, len(specs))
	for _, s := range specs {
		key, err := s.key()
		if err != nil {
			return nil, err
		}
		def, err := s.definition(resolve)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", s.describe(), err)
		}
		if _, dup := m[key]; dup {
			return nil, fmt.Errorf("attribute %s: duplicate id", s.describe())
		}
		m[key] = def
	}
	return m, nil
}

func (s *AttributeSpec) key() (int, error) {
	switch {
	case s.Wildcard && s.ID != nil:
		return 0, fmt.Errorf("attribute %s: both id and wildcard set", s.describe())
	case s.Wildcard:
		return nlattr.Wildcard, nil
	case s.ID == nil:
		return 0, fmt.Errorf("attribute %s: missing id", s.describe())
	case *s.ID < 0 || *s.ID > maxAttrID:
		return 0, fmt.Errorf("attribute %s: id %d out of range", s.describe(), *s.ID)
	}
	return *s.ID, nil
}

func (s *AttributeSpec) describe() string {
	if s.Name != "" {
		return s.Name
	}
	if s.ID != nil {
		return fmt.Sprintf("id=%d", *s.ID)
	}
	return "*"
}

func (s *AttributeSpec) definition(resolve DecoderResolver) (nlattr.Definition, error) {
	def := nlattr.Definition{Name: s.Name, Verbose: s.Verbose}

	typ := s.Type
	if typ == "" {
		typ = nlattr.Raw.String()
		if len(s.Attributes) > 0 {
			typ = nlattr.Nested.String()
		}
	}
	dt, err := nlattr.ParseDataType(typ)
	if err != nil {
		return def, err
	}
	def.Type = dt

	if len(s.Attributes) > 0 {
		if dt != nlattr.Nested {
			return def, fmt.Errorf("type %s cannot have nested attributes", dt)
		}
		nested, err := BuildMap(s.Attributes, resolve)
		if err != nil {
			return def, err
		}
		def.Nested = nested
	}

	if s.Decoder != "" {
		if dt != nlattr.Raw && dt != nlattr.Struct {
			return def, fmt.Errorf("decoder %q needs type raw or struct, not %s", s.Decoder, dt)
		}
		fn, err := lookupDecoder(s.Decoder, resolve)
		if err != nil {
			return def, err
		}
		def.Decode = fn
	}
	return def, nil
}

func lookupDecoder(name string, resolve DecoderResolver) (nlattr.DecodeFunc, error) {
	if script, ok := strings.CutPrefix(name, scriptPrefix); ok {
		if resolve == nil {
			return nil, fmt.Errorf("decoder %q: scripting disabled", name)
		}
		fn, ok := resolve(script)
		if !ok {
			return nil, fmt.Errorf("decoder %q: no such script", name)
		}
		return fn, nil
	}
	fn, ok := nlattr.BuiltinDecoder(name)
	if !ok {
		return nil, fmt.Errorf("unknown decoder %q", name)
	}
	return fn, nil
}

// LoadDir reads every *.yaml and *.yml file in dir and registers the
// families they describe. A missing or empty directory is not an error.
func LoadDir(dir string, registry *genl.Registry, resolve DecoderResolver, logger *slog.Logger) (int, error) {
	if dir == "" {
		return 0, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		logger.Info("schema dir not found", "dir", dir)
		return 0, nil
	}

	var matches []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		m, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return 0, fmt.Errorf("schema: glob %s: %w", dir, err)
		}
		matches = append(matches, m...)
	}

	count := 0
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			return count, fmt.Errorf("schema: read %s: %w", path, err)
		}
		families, err := Parse(data, resolve)
		if err != nil {
			return count, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		for _, f := range families {
			registry.Register(f)
		}
		count += len(families)
		logger.Info("loaded schema file", "path", filepath.Base(path), "families", len(families))
	}
	return count, nil
}
