//go:build no_script

package script

import (
	"errors"
	"log/slog"
	"time"

	"nldump/internal/nlattr"
)

// DefaultTimeout bounds a single decode call.
const DefaultTimeout = 100 * time.Millisecond

var errDisabled = errors.New("script: scripting disabled")

// Engine is a no-op stub when scripting is disabled.
type Engine struct{}

// NewEngine returns a no-op engine.
func NewEngine(_ *slog.Logger, _ time.Duration) *Engine { return &Engine{} }

// LoadDir loads nothing.
func (e *Engine) LoadDir(_ string) (int, error) { return 0, nil }

// Load always fails.
func (e *Engine) Load(_, _ string) error { return errDisabled }

// Names returns nil.
func (e *Engine) Names() []string { return nil }

// Resolve never finds a script.
func (e *Engine) Resolve(_ string) (nlattr.DecodeFunc, bool) { return nil, false }

// Call always fails.
func (e *Engine) Call(_ string, _ []byte, _ bool) (string, error) { return "", errDisabled }

// Close is a no-op.
func (e *Engine) Close() {}
