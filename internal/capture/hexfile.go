package capture

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

const maxHexLine = 1 << 20

// HexFile reads one datagram per line of hex. Blank lines and text after
// '#' are skipped; whitespace and ':' separators are ignored.
type HexFile struct {
	name   string
	closer io.Closer
	sc     *bufio.Scanner
	line   int
}

// OpenHexFile opens a hex dump; "-" reads standard input.
func OpenHexFile(path string) (*HexFile, error) {
	if path == "-" {
		return NewHexReader("stdin", os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("capture: open %s: %w", path, err)
	}
	h := NewHexReader(path, f)
	h.closer = f
	return h, nil
}

// NewHexReader reads hex lines from r.
func NewHexReader(name string, r io.Reader) *HexFile {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxHexLine)
	return &HexFile{name: name, sc: sc}
}

func (h *HexFile) Name() string { return "hexfile:" + h.name }

// Next returns the next non-empty line's bytes, or io.EOF at end of input.
func (h *HexFile) Next(ctx context.Context) (Frame, error) {
	for h.sc.Scan() {
		if err := ctx.Err(); err != nil {
			return Frame{}, err
		}
		h.line++
		text := h.sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.Map(func(r rune) rune {
			switch r {
			case ' ', '\t', '\r', ':':
				return -1
			}
			return r
		}, text)
		if text == "" {
			continue
		}
		data, err := hex.DecodeString(text)
		if err != nil {
			return Frame{}, fmt.Errorf("capture: %s:%d: %w", h.name, h.line, err)
		}
		return Frame{Data: data, Time: time.Now()}, nil
	}
	if err := h.sc.Err(); err != nil {
		return Frame{}, fmt.Errorf("capture: %s: %w", h.name, err)
	}
	return Frame{}, io.EOF
}

func (h *HexFile) Close() error {
	if h.closer == nil {
		return nil
	}
	return h.closer.Close()
}
