// Package capture provides sources of raw netlink datagrams: hex dumps,
// framed serial links and live generic netlink sockets.
package capture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"nldump/internal/genl"
)

// ErrClosed is returned by Next after Close.
var ErrClosed = errors.New("capture: source closed")

// Frame is one captured datagram.
type Frame struct {
	Data []byte
	Time time.Time
}

// Source yields datagrams until it returns io.EOF or an error.
type Source interface {
	Next(ctx context.Context) (Frame, error)
	Name() string
	Close() error
}

// Source types accepted by Open.
const (
	TypeHexFile = "hexfile"
	TypeSerial  = "serial"
	TypeNetlink = "netlink"
)

// Config selects and parameterizes a source.
type Config struct {
	Type     string   `yaml:"type"`
	Path     string   `yaml:"path"`
	Baud     int      `yaml:"baud"`
	Families []string `yaml:"families"`
}

// Open creates the source described by cfg. Netlink sources bind the ids of
// the families they subscribe to in registry.
func Open(cfg Config, registry *genl.Registry, logger *slog.Logger) (Source, error) {
	switch cfg.Type {
	case TypeHexFile:
		return OpenHexFile(cfg.Path)
	case TypeSerial:
		return OpenSerial(cfg.Path, cfg.Baud, logger)
	case TypeNetlink:
		return OpenNetlink(cfg.Families, registry, logger)
	}
	return nil, fmt.Errorf("capture: unknown source type %q", cfg.Type)
}
