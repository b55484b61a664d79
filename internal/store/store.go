package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a requested entity does not exist in the store.
var ErrNotFound = errors.New("not found")

// Capture is one decoded netlink message as it was seen by a source.
type Capture struct {
	ID      uint64    `json:"id"`
	Time    time.Time `json:"time"`
	Source  string    `json:"source"`
	Family  string    `json:"family"`
	Command string    `json:"command,omitempty"`
	Raw     []byte    `json:"raw"`
	Text    string    `json:"text"`
}

// Store defines the persistence interface.
type Store interface {
	// SaveCapture assigns c.ID and stores it.
	SaveCapture(c *Capture) error
	GetCapture(id uint64) (*Capture, error)
	DeleteCapture(id uint64) error
	// ListCaptures returns up to limit captures, newest first. limit <= 0
	// returns all of them.
	ListCaptures(limit int) ([]*Capture, error)
	CountCaptures() (int, error)
	// Prune deletes the oldest captures until at most keep remain and
	// returns how many were removed.
	Prune(keep int) (int, error)

	// Family ids learned from the kernel, kept for offline decoding.
	SaveFamilyIDs(ids map[string]uint16) error
	FamilyIDs() (map[string]uint16, error)

	Close() error
}
