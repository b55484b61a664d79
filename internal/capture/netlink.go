package capture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/netlink"
	"golang.org/x/sys/unix"

	"nldump/internal/genl"
)

// pollInterval bounds how long Next blocks in the kernel before it looks at
// its context again.
const pollInterval = 500 * time.Millisecond

// Netlink listens on the multicast groups of generic netlink families.
type Netlink struct {
	conn   *genetlink.Conn
	logger *slog.Logger
	groups int
}

// OpenNetlink joins every multicast group of the named families, plus the
// nlctrl notify group so that families registered later get their ids bound.
func OpenNetlink(families []string, registry *genl.Registry, logger *slog.Logger) (*Netlink, error) {
	conn, err := genetlink.Dial(nil)
	if err != nil {
		return nil, fmt.Errorf("capture: dial generic netlink: %w", err)
	}
	n := &Netlink{conn: conn, logger: logger.With("component", "netlink")}

	for _, name := range append([]string{"nlctrl"}, families...) {
		fam, err := conn.GetFamily(name)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("capture: get family %s: %w", name, err)
		}
		if !registry.Bind(fam.Name, fam.ID) {
			registry.Register(genl.Family{Name: fam.Name, ID: fam.ID, Version: fam.Version})
		}
		for _, g := range fam.Groups {
			if name == "nlctrl" && g.Name != "notify" {
				continue
			}
			if err := conn.JoinGroup(g.ID); err != nil {
				conn.Close()
				return nil, fmt.Errorf("capture: join %s/%s: %w", name, g.Name, err)
			}
			n.groups++
			n.logger.Info("joined multicast group", "family", name, "group", g.Name, "id", g.ID)
		}
	}
	return n, nil
}

func (n *Netlink) Name() string { return fmt.Sprintf("netlink:%d groups", n.groups) }

// Next blocks until a datagram arrives. The returned frame holds every
// message of the datagram, re-encoded back to back.
func (n *Netlink) Next(ctx context.Context) (Frame, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Frame{}, err
		}
		if err := n.conn.SetReadDeadline(time.Now().Add(pollInterval)); err != nil {
			return Frame{}, fmt.Errorf("capture: set deadline: %w", err)
		}
		_, msgs, err := n.conn.Receive()
		if err != nil {
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				continue
			}
			return Frame{}, fmt.Errorf("capture: receive: %w", err)
		}
		if len(msgs) == 0 {
			continue
		}
		data, err := encodeMessages(msgs)
		if err != nil {
			return Frame{}, err
		}
		return Frame{Data: data, Time: time.Now()}, nil
	}
}

func (n *Netlink) Close() error {
	return n.conn.Close()
}

// encodeMessages writes msgs back to back in wire format. Each header
// length is set to the padded size, as netlink.Conn does on send.
func encodeMessages(msgs []netlink.Message) ([]byte, error) {
	var b []byte
	for _, m := range msgs {
		m.Header.Length = uint32(nlmsgAlign(unix.SizeofNlMsghdr + len(m.Data)))
		mb, err := m.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("capture: encode message seq=%d: %w", m.Header.Sequence, err)
		}
		b = append(b, mb...)
	}
	return b, nil
}

func nlmsgAlign(n int) int {
	return (n + unix.NLMSG_ALIGNTO - 1) &^ (unix.NLMSG_ALIGNTO - 1)
}
