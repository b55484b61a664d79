//go:build !no_script

// Package script runs attribute decoders written in Lua.
package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"nldump/internal/nlattr"
)

// DefaultTimeout bounds a single decode call.
const DefaultTimeout = 100 * time.Millisecond

var errClosed = errors.New("script: engine closed")

// vm is one loaded script. Lua states are not safe for concurrent use, so
// every call holds mu.
type vm struct {
	name   string
	mu     sync.Mutex
	state  *lua.LState
	decode *lua.LFunction
	closed bool
}

// Engine holds the loaded decoder scripts.
type Engine struct {
	logger  *slog.Logger
	timeout time.Duration

	mu  sync.RWMutex
	vms map[string]*vm
}

// NewEngine creates an engine. A zero timeout selects DefaultTimeout.
func NewEngine(logger *slog.Logger, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Engine{
		logger:  logger.With("component", "script"),
		timeout: timeout,
		vms:     make(map[string]*vm),
	}
}

// LoadDir loads every *.lua file in dir, named after the file stem.
// A missing directory loads nothing.
func (e *Engine) LoadDir(dir string) (int, error) {
	if dir == "" {
		return 0, nil
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		e.logger.Info("scripts dir not found", "dir", dir)
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("script: read dir: %w", err)
	}

	n := 0
	for _, ent := range entries {
		if ent.IsDir() || !strings.HasSuffix(ent.Name(), ".lua") {
			continue
		}
		code, err := os.ReadFile(filepath.Join(dir, ent.Name()))
		if err != nil {
			return n, fmt.Errorf("script: read %s: %w", ent.Name(), err)
		}
		if err := e.Load(strings.TrimSuffix(ent.Name(), ".lua"), string(code)); err != nil {
			return n, err
		}
		n++
	}
	e.logger.Info("scripts loaded", "dir", dir, "count", n)
	return n, nil
}

// Load compiles code and registers it under name, replacing any script of
// the same name. The code must define a global decode(data, verbose).
func (e *Engine) Load(name, code string) error {
	L := newSandbox()
	registerNLModule(L, e.logger.With("script", name))

	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()
	L.SetContext(ctx)
	err := L.DoString(code)
	L.RemoveContext()
	if err != nil {
		L.Close()
		return fmt.Errorf("script: load %s: %w", name, err)
	}

	fn, ok := L.GetGlobal("decode").(*lua.LFunction)
	if !ok {
		L.Close()
		return fmt.Errorf("script: %s does not define decode(data, verbose)", name)
	}

	e.mu.Lock()
	old := e.vms[name]
	e.vms[name] = &vm{name: name, state: L, decode: fn}
	e.mu.Unlock()
	if old != nil {
		old.close()
	}
	e.logger.Debug("script loaded", "name", name)
	return nil
}

// Names returns the loaded script names in order.
func (e *Engine) Names() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	names := make([]string, 0, len(e.vms))
	for name := range e.vms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns a decoder that runs the named script. Script failures
// render as nlattr.ErrToken.
func (e *Engine) Resolve(name string) (nlattr.DecodeFunc, bool) {
	e.mu.RLock()
	_, ok := e.vms[name]
	e.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return func(b nlattr.Buffer, verbose bool) string {
		out, err := e.Call(name, b.Bytes(), verbose)
		if err != nil {
			e.logger.Warn("script decode failed", "name", name, "err", err)
			return nlattr.ErrToken
		}
		return out
	}, true
}

// Call runs the named script's decode function on data.
func (e *Engine) Call(name string, data []byte, verbose bool) (string, error) {
	e.mu.RLock()
	v, ok := e.vms[name]
	e.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("script: %s not loaded", name)
	}
	return v.call(data, verbose, e.timeout)
}

// Close releases every Lua state.
func (e *Engine) Close() {
	e.mu.Lock()
	vms := e.vms
	e.vms = make(map[string]*vm)
	e.mu.Unlock()
	for _, v := range vms {
		v.close()
	}
}

func (v *vm) call(data []byte, verbose bool, timeout time.Duration) (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return "", errClosed
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	L := v.state
	L.SetContext(ctx)
	defer L.RemoveContext()

	if err := L.CallByParam(lua.P{
		Fn:      v.decode,
		NRet:    1,
		Protect: true,
	}, lua.LString(data), lua.LBool(verbose)); err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("script: %s: timeout after %s", v.name, timeout)
		}
		return "", fmt.Errorf("script: %s: %w", v.name, err)
	}
	ret := L.Get(-1)
	L.Pop(1)

	switch ret.Type() {
	case lua.LTString, lua.LTNumber:
		return lua.LVAsString(ret), nil
	}
	return "", fmt.Errorf("script: %s: decode returned %s", v.name, ret.Type())
}

func (v *vm) close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.closed {
		v.closed = true
		v.state.Close()
	}
}

// newSandbox creates a state without file, process or module loading access.
func newSandbox() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: false})
	for _, name := range []string{"os", "io", "loadfile", "dofile", "require", "load", "debug", "package"} {
		L.SetGlobal(name, lua.LNil)
	}
	return L
}
