package nlattr

import (
	"errors"

	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"
)

var (
	ErrShortHeader = errors.New("nlattr: short attribute header")
	ErrBadLength   = errors.New("nlattr: attribute length below header size")
	ErrTruncated   = errors.New("nlattr: attribute exceeds buffer")
)

const (
	headerLen = unix.SizeofNlAttr
	typeMask  = ^uint16(unix.NLA_F_NESTED | unix.NLA_F_NET_BYTEORDER)
)

func align(n int) int {
	return (n + unix.NLA_ALIGNTO - 1) &^ (unix.NLA_ALIGNTO - 1)
}

// Scanner walks the netlink attributes packed in a Buffer, one per call to
// Next. Header fields are read in host byte order.
type Scanner struct {
	buf     Buffer
	off     int
	typ     uint16
	nested  bool
	payload Buffer
	err     error
}

// NewScanner returns a scanner positioned at the start of b.
func NewScanner(b Buffer) *Scanner {
	return &Scanner{buf: b}
}

// Next advances to the next attribute. It returns false at the end of the
// buffer or on a malformed header; Err tells the two apart.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	rest := s.buf.Len() - s.off
	if rest == 0 {
		return false
	}
	if rest < headerLen {
		s.err = ErrShortHeader
		return false
	}

	hdr := s.buf.Bytes()[s.off : s.off+headerLen]
	n := int(nlenc.Uint16(hdr[0:2]))
	typ := nlenc.Uint16(hdr[2:4])
	if n < headerLen {
		s.err = ErrBadLength
		return false
	}
	payload, ok := s.buf.Slice(s.off+headerLen, n-headerLen)
	if !ok {
		s.err = ErrTruncated
		return false
	}

	s.typ = typ & typeMask
	s.nested = typ&unix.NLA_F_NESTED != 0
	s.payload = payload
	// The last attribute may omit its padding.
	s.off += min(align(n), rest)
	return true
}

// Type returns the current attribute type with the NLA_F_* flags removed.
func (s *Scanner) Type() uint16 { return s.typ }

// NestedFlag reports whether the sender marked the attribute NLA_F_NESTED.
func (s *Scanner) NestedFlag() bool { return s.nested }

// Payload returns the current attribute value.
func (s *Scanner) Payload() Buffer { return s.payload }

// Offset returns the number of bytes consumed so far.
func (s *Scanner) Offset() int { return s.off }

// Err returns the error that stopped the scan, or nil at a clean end.
func (s *Scanner) Err() error { return s.err }
