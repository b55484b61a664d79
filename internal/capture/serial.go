package capture

import (
	"bufio"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.bug.st/serial"

	"nldump/internal/nlattr"
)

// Serial frame layout:
//
//	DE AD | size u16 LE | type | flags | crc8 | crc16 LE | payload
//
// size counts everything after the signature. crc8 covers size, type and
// flags; crc16 covers the payload.
const (
	frameSig0       = 0xDE
	frameSig1       = 0xAD
	frameType       = 0x4E
	frameHeaderSize = 7 // sig(2) + size(2) + type(1) + flags(1) + crc8(1)
	frameCRCSize    = 2
	frameMinSize    = frameHeaderSize - 2 + frameCRCSize
)

// FlagTruncated marks a payload the sender cut short.
const FlagTruncated = 0x01

var crc8Table [256]uint8

// CRC-8/KOOP: reflected poly 0xB2, init and xorout 0xFF.
func init() {
	const poly = 0xB2
	for i := 0; i < 256; i++ {
		crc := uint8(i)
		for bit := 0; bit < 8; bit++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ poly
			} else {
				crc >>= 1
			}
		}
		crc8Table[i] = crc
	}
}

func frameCRC8(data []byte) uint8 {
	crc := uint8(0xFF)
	for _, b := range data {
		crc = crc8Table[crc^b]
	}
	return crc ^ 0xFF
}

// EncodeFrame wraps a datagram for the serial link.
func EncodeFrame(payload []byte, flags uint8) ([]byte, error) {
	size := frameMinSize + len(payload)
	if size > 0xFFFF {
		return nil, fmt.Errorf("capture: payload too large: %d bytes", len(payload))
	}
	frame := make([]byte, 2+size)
	frame[0] = frameSig0
	frame[1] = frameSig1
	binary.LittleEndian.PutUint16(frame[2:4], uint16(size))
	frame[4] = frameType
	frame[5] = flags
	frame[6] = frameCRC8(frame[2:6])
	binary.LittleEndian.PutUint16(frame[7:9], nlattr.CRC16(payload))
	copy(frame[9:], payload)
	return frame, nil
}

// DecodeFrame validates a complete frame and returns its flags and payload.
func DecodeFrame(data []byte) (uint8, []byte, error) {
	if len(data) < frameHeaderSize+frameCRCSize {
		return 0, nil, fmt.Errorf("capture: frame too short: %d bytes", len(data))
	}
	if data[0] != frameSig0 || data[1] != frameSig1 {
		return 0, nil, fmt.Errorf("capture: bad signature: 0x%02X%02X", data[0], data[1])
	}
	if got := frameCRC8(data[2:6]); data[6] != got {
		return 0, nil, fmt.Errorf("capture: header crc8 mismatch: got 0x%02X, want 0x%02X", data[6], got)
	}
	if data[4] != frameType {
		return 0, nil, fmt.Errorf("capture: unexpected frame type: 0x%02X", data[4])
	}
	size := int(binary.LittleEndian.Uint16(data[2:4]))
	if size < frameMinSize || size+2 > len(data) {
		return 0, nil, fmt.Errorf("capture: frame size %d does not fit %d bytes", size, len(data))
	}
	payload := data[frameHeaderSize+frameCRCSize : 2+size]
	want := binary.LittleEndian.Uint16(data[7:9])
	if got := nlattr.CRC16(payload); got != want {
		return 0, nil, fmt.Errorf("capture: payload crc16 mismatch: got 0x%04X, want 0x%04X", got, want)
	}
	return data[5], payload, nil
}

// readRawFrame skips to the next signature with a valid header and reads
// one whole frame. A header that fails its crc8 is not trusted for the body
// size; the search resumes right after its first signature byte.
func readRawFrame(r *bufio.Reader) ([]byte, error) {
	var hdr []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if b != frameSig0 {
			continue
		}
		// sig1 | size | type | flags | crc8
		hdr, err = r.Peek(frameHeaderSize - 1)
		if err != nil {
			return nil, err
		}
		if hdr[0] != frameSig1 || frameCRC8(hdr[1:5]) != hdr[5] {
			continue
		}
		if int(binary.LittleEndian.Uint16(hdr[1:3])) >= frameMinSize {
			break
		}
	}

	size := int(binary.LittleEndian.Uint16(hdr[1:3]))
	frame := make([]byte, 2+size)
	frame[0] = frameSig0
	if _, err := io.ReadFull(r, frame[1:]); err != nil {
		return nil, err
	}
	return frame, nil
}

// Serial reads framed datagrams from a serial port.
type Serial struct {
	name   string
	port   io.ReadCloser
	reader *bufio.Reader
	logger *slog.Logger

	frames    chan Frame
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// OpenSerial opens path at baud (8N1) and starts reading frames.
func OpenSerial(path string, baud int, logger *slog.Logger) (*Serial, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("capture: open %s: %w", path, err)
	}
	// USB CDC ACM adapters only send once DTR is asserted.
	_ = port.SetDTR(true)
	_ = port.SetRTS(true)
	return newSerial(path, port, logger), nil
}

func newSerial(name string, port io.ReadCloser, logger *slog.Logger) *Serial {
	s := &Serial{
		name:   name,
		port:   port,
		reader: bufio.NewReader(port),
		logger: logger.With("component", "serial", "port", name),
		frames: make(chan Frame, 16),
		done:   make(chan struct{}),
	}
	s.wg.Add(1)
	go s.readLoop()
	return s
}

func (s *Serial) Name() string { return "serial:" + s.name }

func (s *Serial) readLoop() {
	defer s.wg.Done()

	backoff := 10 * time.Millisecond
	const maxBackoff = 5 * time.Second

	for {
		select {
		case <-s.done:
			return
		default:
		}

		raw, err := readRawFrame(s.reader)
		if err != nil {
			select {
			case <-s.done:
				return
			default:
			}
			if !errors.Is(err, io.EOF) && !strings.Contains(err.Error(), "closed") {
				s.logger.Error("serial read error", "err", err)
			}
			select {
			case <-time.After(backoff):
			case <-s.done:
				return
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}
		backoff = 10 * time.Millisecond

		flags, payload, err := DecodeFrame(raw)
		if err != nil {
			s.logger.Warn("serial frame dropped", "err", err)
			continue
		}
		if flags&FlagTruncated != 0 {
			s.logger.Debug("serial frame truncated by sender", "len", len(payload))
		}

		select {
		case s.frames <- Frame{Data: payload, Time: time.Now()}:
		case <-s.done:
			return
		}
	}
}

// Next waits for the next frame.
func (s *Serial) Next(ctx context.Context) (Frame, error) {
	select {
	case f := <-s.frames:
		return f, nil
	case <-s.done:
		return Frame{}, ErrClosed
	case <-ctx.Done():
		return Frame{}, ctx.Err()
	}
}

// Close stops the read loop and closes the port.
func (s *Serial) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.port.Close()
		s.wg.Wait()
	})
	return err
}
