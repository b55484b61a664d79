package nlattr

import "strings"

// assembler builds one bracketed, comma separated scope. Child scopes are
// rendered by their own assembler and added as a single token.
type assembler struct {
	sb    strings.Builder
	first bool
}

func newAssembler() *assembler {
	a := &assembler{first: true}
	a.sb.WriteByte('{')
	return a
}

func (a *assembler) add(token string) {
	if !a.first {
		a.sb.WriteString(", ")
	}
	a.first = false
	a.sb.WriteString(token)
}

func (a *assembler) close() string {
	a.sb.WriteByte('}')
	return a.sb.String()
}
