// Package genl splits netlink datagrams into messages and renders generic
// netlink messages with the schema of their family.
package genl

import (
	"errors"
	"fmt"

	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/netlink"
	"github.com/mdlayher/netlink/nlenc"
	"golang.org/x/sys/unix"

	"nldump/internal/nlattr"
)

var (
	ErrShortMessage = errors.New("genl: short netlink message")
	ErrBadLength    = errors.New("genl: netlink message length out of range")
)

const ctrlFamily = "nlctrl"

// Message is one netlink message: its header and the bytes after it.
type Message struct {
	Header netlink.Header
	Data   []byte
	// Raw is the whole message as it appeared in the datagram.
	Raw []byte
}

func nlmsgAlign(n int) int {
	return (n + unix.NLMSG_ALIGNTO - 1) &^ (unix.NLMSG_ALIGNTO - 1)
}

// ParseMessages splits a datagram into netlink messages. Messages parsed
// before a malformed header are returned along with the error.
func ParseMessages(b []byte) ([]Message, error) {
	var msgs []Message
	for len(b) > 0 {
		if len(b) < unix.SizeofNlMsghdr {
			return msgs, fmt.Errorf("%w: %d bytes left", ErrShortMessage, len(b))
		}
		n := int(nlenc.Uint32(b[0:4]))
		if n < unix.SizeofNlMsghdr || n > len(b) {
			return msgs, fmt.Errorf("%w: length %d, %d bytes left", ErrBadLength, n, len(b))
		}
		msgs = append(msgs, Message{
			Header: netlink.Header{
				Length:   uint32(n),
				Type:     netlink.HeaderType(nlenc.Uint16(b[4:6])),
				Flags:    netlink.HeaderFlags(nlenc.Uint16(b[6:8])),
				Sequence: nlenc.Uint32(b[8:12]),
				PID:      nlenc.Uint32(b[12:16]),
			},
			Data: b[unix.SizeofNlMsghdr:n],
			Raw:  b[:n],
		})
		b = b[min(nlmsgAlign(n), len(b)):]
	}
	return msgs, nil
}

// Decoded is the rendered form of one message.
type Decoded struct {
	Family  string         `json:"family"`
	Command string         `json:"command"`
	Seq     uint32         `json:"seq"`
	PID     uint32         `json:"pid"`
	Header  netlink.Header `json:"-"`
	Text    string         `json:"text"`
}

// Decode renders m. It never changes the registry; see Learn.
func (r *Registry) Decode(m Message, verbose bool) Decoded {
	d := Decoded{Seq: m.Header.Sequence, PID: m.Header.PID, Header: m.Header}
	typ := uint16(m.Header.Type)

	if typ < unix.NLMSG_MIN_TYPE {
		d.Family = "netlink"
		d.Command = controlName(typ)
		d.Text = fmt.Sprintf("%s seq=%d pid=%d", d.Command, d.Seq, d.PID)
		if typ == unix.NLMSG_ERROR {
			d.Text += " " + renderError(m.Data)
		}
		return d
	}

	fam, ok := r.ByID(typ)
	if !ok {
		d.Family = fmt.Sprintf("UNKNOWN(type=%d)", typ)
		d.Text = fmt.Sprintf("%s seq=%d pid=%d %s", d.Family, d.Seq, d.PID,
			nlattr.Fingerprint(nlattr.NewBuffer(m.Data)))
		return d
	}
	d.Family = fam.Name

	var gm genetlink.Message
	if err := gm.UnmarshalBinary(m.Data); err != nil {
		d.Text = fmt.Sprintf("%s seq=%d pid=%d %s", fam.Name, d.Seq, d.PID, nlattr.ErrToken)
		return d
	}
	d.Command = fam.CommandName(gm.Header.Command)

	attrs := nlattr.Render(nlattr.NewBuffer(gm.Data), fam.Attrs, verbose)
	d.Text = fmt.Sprintf("%s %s v%d seq=%d pid=%d %s",
		fam.Name, d.Command, gm.Header.Version, d.Seq, d.PID, attrs)
	return d
}

// DecodeDatagram parses and renders every message in b.
func (r *Registry) DecodeDatagram(b []byte, verbose bool) ([]Decoded, error) {
	msgs, err := ParseMessages(b)
	out := make([]Decoded, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, r.Decode(m, verbose))
	}
	return out, err
}

// Learn binds the family id announced by an nlctrl NEWFAMILY message and
// reports whether the registry changed. Only messages observed on the
// wire should be passed here, never one-off decodes.
func (r *Registry) Learn(m Message) bool {
	ctrl, ok := r.ByName(ctrlFamily)
	if !ok || uint16(m.Header.Type) != ctrl.ID {
		return false
	}
	var gm genetlink.Message
	if err := gm.UnmarshalBinary(m.Data); err != nil || gm.Header.Command != unix.CTRL_CMD_NEWFAMILY {
		return false
	}

	var (
		name string
		id   uint16
	)
	s := nlattr.NewScanner(nlattr.NewBuffer(gm.Data))
	for s.Next() {
		p := s.Payload().Bytes()
		switch s.Type() {
		case unix.CTRL_ATTR_FAMILY_NAME:
			name = nlenc.String(p)
		case unix.CTRL_ATTR_FAMILY_ID:
			if len(p) == 2 {
				id = nlenc.Uint16(p)
			}
		}
	}
	if name == "" || id == 0 {
		return false
	}
	if cur, ok := r.ByName(name); ok && cur.ID == id {
		return false
	}
	if !r.Bind(name, id) {
		return false
	}
	r.logger.Info("learned family id", "name", name, "id", id)
	return true
}

func controlName(typ uint16) string {
	switch typ {
	case unix.NLMSG_NOOP:
		return "NOOP"
	case unix.NLMSG_ERROR:
		return "ERROR"
	case unix.NLMSG_DONE:
		return "DONE"
	case unix.NLMSG_OVERRUN:
		return "OVERRUN"
	}
	return fmt.Sprintf("CONTROL(type=%d)", typ)
}

// renderError formats the errno of an NLMSG_ERROR body; 0 is an ack.
func renderError(b []byte) string {
	if len(b) < 4 {
		return nlattr.ErrToken
	}
	errno := nlenc.Int32(b[0:4])
	if errno == 0 {
		return "ack"
	}
	return fmt.Sprintf("errno=%d (%s)", -errno, unix.Errno(-errno).Error())
}
