//go:build !no_script

package script

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mdlayher/netlink/nlenc"

	"nldump/internal/nlattr"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError})), 200*time.Millisecond)
	t.Cleanup(e.Close)
	return e
}

const rateScript = `
function decode(data, verbose)
  local v = nl.u16(data, 0)
  if v == nil then
    return "short"
  end
  if verbose then
    return string.format("{rate=%d, crc=%04x}", v, nl.crc16(data))
  end
  return tostring(v * 100) .. " kbps"
end
`

func TestCallDecode(t *testing.T) {
	e := newTestEngine(t)
	if err := e.Load("rate", rateScript); err != nil {
		t.Fatalf("Load: %v", err)
	}

	data := nlenc.Uint16Bytes(54)

	got, err := e.Call("rate", data, false)
	if err != nil || got != "5400 kbps" {
		t.Errorf("Call = %q, %v", got, err)
	}
	got, _ = e.Call("rate", data, true)
	want := fmt.Sprintf("{rate=54, crc=%04x}", nlattr.CRC16(data))
	if got != want {
		t.Errorf("verbose = %q, want %q", got, want)
	}
	if got, _ := e.Call("rate", []byte{1}, false); got != "short" {
		t.Errorf("short input = %q", got)
	}
}

func TestHelpers(t *testing.T) {
	e := newTestEngine(t)
	code := `
function decode(data, verbose)
  return nl.hex(data) .. "|" .. nl.printable(data) .. "|" .. tostring(nl.u8(data, 1)) .. "|" .. tostring(nl.u32(data, 1))
end`
	if err := e.Load("helpers", code); err != nil {
		t.Fatal(err)
	}
	got, err := e.Call("helpers", []byte("a\x01b"), false)
	if err != nil {
		t.Fatal(err)
	}
	if got != "610162|ab|1|nil" {
		t.Errorf("got %q", got)
	}
}

func TestElementsHelper(t *testing.T) {
	e := newTestEngine(t)
	code := `function decode(data, verbose) return nl.elements(data, not verbose) end`
	if err := e.Load("ies", code); err != nil {
		t.Fatal(err)
	}
	data := []byte{0x00, 2, 'h', 'i'}
	got, _ := e.Call("ies", data, true)
	if got != `{SSID="hi"}` {
		t.Errorf("got %q", got)
	}
}

func TestResolve(t *testing.T) {
	e := newTestEngine(t)
	if err := e.Load("upper", `function decode(data) return string.upper(data) end`); err != nil {
		t.Fatal(err)
	}
	if err := e.Load("broken", `function decode(data) error("boom") end`); err != nil {
		t.Fatal(err)
	}
	if err := e.Load("table", `function decode(data) return {} end`); err != nil {
		t.Fatal(err)
	}

	fn, ok := e.Resolve("upper")
	if !ok {
		t.Fatal("upper not resolved")
	}
	if got := fn(nlattr.NewBuffer([]byte("abc")), false); got != "ABC" {
		t.Errorf("upper = %q", got)
	}

	for _, name := range []string{"broken", "table"} {
		fn, _ := e.Resolve(name)
		if got := fn(nlattr.NewBuffer([]byte("x")), false); got != nlattr.ErrToken {
			t.Errorf("%s = %q, want %q", name, got, nlattr.ErrToken)
		}
	}

	if _, ok := e.Resolve("missing"); ok {
		t.Error("missing script resolved")
	}
}

func TestTimeout(t *testing.T) {
	e := newTestEngine(t)
	code := `
function decode(data)
  if data == "spin" then
    while true do end
  end
  return "ok"
end`
	if err := e.Load("spin", code); err != nil {
		t.Fatal(err)
	}
	start := time.Now()
	_, err := e.Call("spin", []byte("spin"), false)
	if err == nil || !strings.Contains(err.Error(), "timeout") {
		t.Errorf("err = %v, want timeout", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Errorf("timeout took %s", time.Since(start))
	}

	// The same state keeps working after an interrupted call.
	if got, err := e.Call("spin", []byte("x"), false); err != nil || got != "ok" {
		t.Errorf("after timeout = %q, %v", got, err)
	}
}

func TestLoadErrors(t *testing.T) {
	e := newTestEngine(t)
	if err := e.Load("syntax", `function decode(`); err == nil {
		t.Error("syntax error accepted")
	}
	if err := e.Load("nodecode", `x = 1`); err == nil {
		t.Error("script without decode accepted")
	}
	if err := e.Load("sandbox", `os.exit(1)`); err == nil {
		t.Error("os library reachable")
	}
	if len(e.Names()) != 0 {
		t.Errorf("names = %v", e.Names())
	}
}

func TestLoadDir(t *testing.T) {
	e := newTestEngine(t)
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.lua"), []byte(`function decode(d) return "a" end`), 0o644)
	os.WriteFile(filepath.Join(dir, "b.lua"), []byte(`function decode(d) return "b" end`), 0o644)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644)

	n, err := e.LoadDir(dir)
	if err != nil || n != 2 {
		t.Fatalf("LoadDir = %d, %v", n, err)
	}
	if names := e.Names(); len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v", names)
	}

	if n, err := e.LoadDir(filepath.Join(dir, "missing")); n != 0 || err != nil {
		t.Errorf("LoadDir(missing) = %d, %v", n, err)
	}
}

func TestConcurrentCalls(t *testing.T) {
	e := newTestEngine(t)
	if err := e.Load("len", `function decode(d) return #d end`); err != nil {
		t.Fatal(err)
	}
	fn, _ := e.Resolve("len")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if got := fn(nlattr.NewBuffer([]byte("abcd")), false); got != "4" {
					t.Errorf("got %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestClosedEngine(t *testing.T) {
	e := newTestEngine(t)
	e.Load("x", `function decode(d) return "x" end`)
	fn, _ := e.Resolve("x")
	e.Close()
	if got := fn(nlattr.NewBuffer(nil), false); got != nlattr.ErrToken {
		t.Errorf("after close = %q", got)
	}
}
