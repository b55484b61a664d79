// Package dumper drives a capture source through the decoder and fans the
// results out to the terminal, the event bus and the capture store.
package dumper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"nldump/internal/capture"
	"nldump/internal/genl"
	"nldump/internal/nlattr"
	"nldump/internal/store"
)

// pruneEvery is how many saved captures pass between store prunes.
const pruneEvery = 64

// CaptureStore is the part of store.Store the dumper writes to.
type CaptureStore interface {
	SaveCapture(c *store.Capture) error
	Prune(keep int) (int, error)
}

// Options controls how messages are rendered and kept.
type Options struct {
	Verbose bool
	// Print writes every rendered message to Output, one per line.
	Print  bool
	Output io.Writer
	// MaxCaptures bounds the store; 0 keeps everything.
	MaxCaptures int
}

// Stats counts what a dumper has processed so far.
type Stats struct {
	Source    string    `json:"source"`
	Started   time.Time `json:"started"`
	Datagrams uint64    `json:"datagrams"`
	Messages  uint64    `json:"messages"`
	Malformed uint64    `json:"malformed"`
	Saved     uint64    `json:"saved"`
}

// Dumper reads datagrams from one source.
type Dumper struct {
	src      capture.Source
	registry *genl.Registry
	events   *EventBus
	store    CaptureStore
	opts     Options
	logger   *slog.Logger

	started   time.Time
	datagrams atomic.Uint64
	messages  atomic.Uint64
	malformed atomic.Uint64
	saved     atomic.Uint64

	outMu sync.Mutex
}

// New creates a dumper. st may be nil to skip persistence.
func New(src capture.Source, registry *genl.Registry, events *EventBus, st CaptureStore, opts Options, logger *slog.Logger) *Dumper {
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	return &Dumper{
		src:      src,
		registry: registry,
		events:   events,
		store:    st,
		opts:     opts,
		logger:   logger.With("component", "dumper"),
		started:  time.Now(),
	}
}

// Run processes datagrams until the source ends or ctx is cancelled. A
// source that reaches io.EOF, or a cancelled ctx, ends Run without error.
func (d *Dumper) Run(ctx context.Context) error {
	d.logger.Info("dump started", "source", d.src.Name(), "verbose", d.opts.Verbose)
	defer d.prune()

	for {
		f, err := d.src.Next(ctx)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			d.logger.Info("source exhausted", "source", d.src.Name(), "datagrams", d.datagrams.Load())
			d.events.PublishSource(SourceEvent{Source: d.src.Name(), Stats: d.Stats()})
			return nil
		case ctx.Err() != nil:
			return nil
		default:
			d.events.PublishSource(SourceEvent{Source: d.src.Name(), Error: err.Error(), Stats: d.Stats()})
			return fmt.Errorf("dumper: %s: %w", d.src.Name(), err)
		}
		d.Handle(f)
	}
}

// Handle decodes one datagram and publishes every message in it.
func (d *Dumper) Handle(f capture.Frame) {
	d.datagrams.Add(1)
	if f.Time.IsZero() {
		f.Time = time.Now()
	}

	msgs, err := genl.ParseMessages(f.Data)
	for _, m := range msgs {
		dec := d.registry.Decode(m, d.opts.Verbose)
		// Later messages in the same datagram may use an id announced here.
		d.registry.Learn(m)
		d.publish(f, dec, m.Raw)
	}
	if err != nil {
		d.malformed.Add(1)
		d.logger.Warn("malformed datagram", "source", d.src.Name(), "len", len(f.Data), "err", err)
		consumed := 0
		for _, m := range msgs {
			consumed += (len(m.Raw) + 3) &^ 3
		}
		rest := f.Data[min(consumed, len(f.Data)):]
		d.publish(f, genl.Decoded{
			Family: "netlink",
			Text:   nlattr.ErrToken + " " + nlattr.Fingerprint(nlattr.NewBuffer(rest)),
		}, rest)
	}
}

func (d *Dumper) publish(f capture.Frame, dec genl.Decoded, raw []byte) {
	d.messages.Add(1)
	if d.opts.Print {
		d.outMu.Lock()
		fmt.Fprintln(d.opts.Output, dec.Text)
		d.outMu.Unlock()
	}

	ev := MessageEvent{
		Time:    f.Time,
		Source:  d.src.Name(),
		Family:  dec.Family,
		Command: dec.Command,
		Seq:     dec.Seq,
		PID:     dec.PID,
		Text:    dec.Text,
	}
	if d.store != nil {
		c := &store.Capture{
			Time:    f.Time,
			Source:  ev.Source,
			Family:  dec.Family,
			Command: dec.Command,
			Raw:     append([]byte(nil), raw...),
			Text:    dec.Text,
		}
		if err := d.store.SaveCapture(c); err != nil {
			d.logger.Error("save capture", "err", err)
		} else {
			ev.ID = c.ID
			if d.saved.Add(1)%pruneEvery == 0 {
				d.prune()
			}
		}
	}
	d.events.PublishMessage(ev)
}

func (d *Dumper) prune() {
	if d.store == nil || d.opts.MaxCaptures <= 0 {
		return
	}
	n, err := d.store.Prune(d.opts.MaxCaptures)
	if err != nil {
		d.logger.Error("prune captures", "err", err)
		return
	}
	if n > 0 {
		d.logger.Debug("pruned captures", "removed", n)
	}
}

// Stats returns a snapshot of the counters.
func (d *Dumper) Stats() Stats {
	return Stats{
		Source:    d.src.Name(),
		Started:   d.started,
		Datagrams: d.datagrams.Load(),
		Messages:  d.messages.Load(),
		Malformed: d.malformed.Load(),
		Saved:     d.saved.Load(),
	}
}
