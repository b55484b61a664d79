package web

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mdlayher/genetlink"
	"github.com/mdlayher/netlink"
	"golang.org/x/sys/unix"

	"nldump/internal/dumper"
	"nldump/internal/genl"
	"nldump/internal/nlattr"
	"nldump/internal/store"
)

const testFamilyID = 0x20

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testRegistry() *genl.Registry {
	r := genl.NewRegistry(testLogger())
	r.Register(genl.Family{
		Name:     "test",
		ID:       testFamilyID,
		Version:  1,
		Commands: map[uint8]string{1: "GET"},
		Attrs: nlattr.Map{
			1: {Name: "A", Type: nlattr.Uint},
			2: {Name: "BIG", Type: nlattr.Nested, Verbose: true, Nested: nlattr.Map{
				1: {Name: "X", Type: nlattr.Uint},
			}},
		},
	})
	return r
}

// testMessage is "test GET" with A=7 and a verbose-only BIG nest.
func testMessage(t *testing.T, seq uint32) []byte {
	t.Helper()
	ae := netlink.NewAttributeEncoder()
	ae.Uint32(1, 7)
	ae.Nested(2, func(nae *netlink.AttributeEncoder) error {
		nae.Uint32(1, 42)
		return nil
	})
	attrs, err := ae.Encode()
	if err != nil {
		t.Fatal(err)
	}
	body, err := (&genetlink.Message{
		Header: genetlink.Header{Command: 1, Version: 1},
		Data:   attrs,
	}).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	b, err := (&netlink.Message{
		Header: netlink.Header{Length: uint32(16 + len(body)), Type: testFamilyID, Sequence: seq},
		Data:   body,
	}).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	return b
}

type testEnv struct {
	srv    *Server
	db     *store.BoltStore
	events *dumper.EventBus
}

func setupTestServer(t *testing.T, opts ...ServerOption) *testEnv {
	t.Helper()
	db, err := store.NewBoltStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	events := dumper.NewEventBus(testLogger())
	opts = append([]ServerOption{WithStore(db), WithVersion("test")}, opts...)
	srv := NewServer(testRegistry(), events, testLogger(), opts...)
	t.Cleanup(srv.Stop)
	return &testEnv{srv: srv, db: db, events: events}
}

func (e *testEnv) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	w := httptest.NewRecorder()
	e.srv.ServeHTTP(w, httptest.NewRequest(method, target, rd))
	return w
}

func seedCapture(t *testing.T, db *store.BoltStore, raw []byte, text string) uint64 {
	t.Helper()
	c := &store.Capture{Time: time.Now(), Source: "test", Family: "test", Command: "GET", Raw: raw, Text: text}
	if err := db.SaveCapture(c); err != nil {
		t.Fatal(err)
	}
	return c.ID
}

func TestAPIStatus(t *testing.T) {
	env := setupTestServer(t, WithStats(func() dumper.Stats {
		return dumper.Stats{Source: "hexfile:-", Messages: 3}
	}))
	seedCapture(t, env.db, nil, "x")

	w := env.do(t, "GET", "/api/status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var resp statusResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Version != "test" {
		t.Errorf("version = %q, want test", resp.Version)
	}
	if resp.Families != 1 {
		t.Errorf("families = %d, want 1", resp.Families)
	}
	if resp.Captures == nil || *resp.Captures != 1 {
		t.Errorf("captures = %v, want 1", resp.Captures)
	}
	if resp.Dumper == nil || resp.Dumper.Messages != 3 {
		t.Errorf("dumper = %+v", resp.Dumper)
	}
}

func TestAPIFamilies(t *testing.T) {
	env := setupTestServer(t)
	w := env.do(t, "GET", "/api/families", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var fams []familyView
	if err := json.NewDecoder(w.Body).Decode(&fams); err != nil {
		t.Fatal(err)
	}
	if len(fams) != 1 {
		t.Fatalf("families = %d, want 1", len(fams))
	}
	f := fams[0]
	if f.Name != "test" || f.ID != testFamilyID || f.Attrs != 3 {
		t.Errorf("family = %+v", f)
	}
	if len(f.Commands) != 1 || f.Commands[0].Name != "GET" {
		t.Errorf("commands = %+v", f.Commands)
	}
}

func TestAPIDecode(t *testing.T) {
	env := setupTestServer(t)
	msg := testMessage(t, 5)

	body, _ := json.Marshal(decodeRequest{Hex: hex.EncodeToString(msg)})
	w := env.do(t, "POST", "/api/decode", string(body))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body = %s", w.Code, http.StatusOK, w.Body.String())
	}
	var resp decodeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Messages) != 1 || resp.Error != "" {
		t.Fatalf("resp = %+v", resp)
	}
	text := resp.Messages[0].Text
	if !strings.HasPrefix(text, "test GET v1 seq=5 pid=0 {A: 7, BIG: {len=") {
		t.Errorf("text = %q", text)
	}

	body, _ = json.Marshal(decodeRequest{Hex: hex.EncodeToString(msg), Verbose: true})
	w = env.do(t, "POST", "/api/decode", string(body))
	resp = decodeResponse{}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	want := "test GET v1 seq=5 pid=0 {A: 7, BIG: {X: 42}}"
	if len(resp.Messages) != 1 || resp.Messages[0].Text != want {
		t.Errorf("verbose = %+v, want %q", resp.Messages, want)
	}
}

// familyAnnouncement is an nlctrl NEWFAMILY message that moves "test" to id.
func familyAnnouncement(t *testing.T, id uint16) []byte {
	t.Helper()
	ae := netlink.NewAttributeEncoder()
	ae.String(unix.CTRL_ATTR_FAMILY_NAME, "test")
	ae.Uint16(unix.CTRL_ATTR_FAMILY_ID, id)
	attrs, err := ae.Encode()
	if err != nil {
		t.Fatal(err)
	}
	body, err := (&genetlink.Message{
		Header: genetlink.Header{Command: unix.CTRL_CMD_NEWFAMILY, Version: 2},
		Data:   attrs,
	}).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	b, err := (&netlink.Message{
		Header: netlink.Header{Length: uint32(16 + len(body)), Type: unix.GENL_ID_CTRL, Sequence: 1},
		Data:   body,
	}).MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func TestAPIDecodeDoesNotRebindFamilies(t *testing.T) {
	env := setupTestServer(t)
	env.srv.registry.Register(genl.Family{
		Name:     "nlctrl",
		ID:       unix.GENL_ID_CTRL,
		Commands: map[uint8]string{unix.CTRL_CMD_NEWFAMILY: "NEWFAMILY"},
	})
	announce := familyAnnouncement(t, 0x99)

	body, _ := json.Marshal(decodeRequest{Hex: hex.EncodeToString(announce)})
	if w := env.do(t, "POST", "/api/decode", string(body)); w.Code != http.StatusOK {
		t.Fatalf("decode status = %d, body = %s", w.Code, w.Body.String())
	}
	id := seedCapture(t, env.db, announce, "nlctrl NEWFAMILY")
	if w := env.do(t, "GET", "/api/captures/"+strconv.FormatUint(id, 10)+"?verbose=1", ""); w.Code != http.StatusOK {
		t.Fatalf("capture status = %d, body = %s", w.Code, w.Body.String())
	}

	if f, _ := env.srv.registry.ByName("test"); f.ID != testFamilyID {
		t.Errorf("test id = 0x%x, want 0x%x", f.ID, testFamilyID)
	}
	msgs, err := env.srv.registry.DecodeDatagram(testMessage(t, 1), false)
	if err != nil || len(msgs) != 1 || msgs[0].Family != "test" {
		t.Errorf("live message = %+v, %v", msgs, err)
	}
}

func TestAPIDecodeSeparatorsAndTrailingGarbage(t *testing.T) {
	env := setupTestServer(t)
	msg := append(testMessage(t, 1), 0xff, 0xff)

	var sb strings.Builder
	for i, c := range msg {
		if i > 0 {
			sb.WriteByte(':')
		}
		sb.WriteString(hex.EncodeToString([]byte{c}))
	}
	body, _ := json.Marshal(decodeRequest{Hex: sb.String()})
	w := env.do(t, "POST", "/api/decode", string(body))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var resp decodeResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Messages) != 1 {
		t.Errorf("messages = %d, want 1", len(resp.Messages))
	}
	if resp.Error == "" {
		t.Error("trailing bytes not reported")
	}
}

func TestAPIDecodeBadRequests(t *testing.T) {
	env := setupTestServer(t)
	tests := []struct {
		name string
		body string
	}{
		{"not json", "nope"},
		{"bad hex", `{"hex": "zz"}`},
		{"odd hex", `{"hex": "abc"}`},
		{"empty", `{"hex": ""}`},
	}
	for _, tt := range tests {
		w := env.do(t, "POST", "/api/decode", tt.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want %d", tt.name, w.Code, http.StatusBadRequest)
		}
	}
}

func TestAPIDecodeBodyLimit(t *testing.T) {
	env := setupTestServer(t)
	big := `{"hex": "` + strings.Repeat("00", 1<<20) + `"}`
	w := env.do(t, "POST", "/api/decode", big)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestAPIListCaptures(t *testing.T) {
	env := setupTestServer(t)
	for i := 0; i < 3; i++ {
		seedCapture(t, env.db, nil, "x")
	}

	w := env.do(t, "GET", "/api/captures?limit=2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var captures []store.Capture
	if err := json.NewDecoder(w.Body).Decode(&captures); err != nil {
		t.Fatal(err)
	}
	if len(captures) != 2 {
		t.Fatalf("captures = %d, want 2", len(captures))
	}
	if captures[0].ID != 3 || captures[1].ID != 2 {
		t.Errorf("ids = %d, %d, want 3, 2", captures[0].ID, captures[1].ID)
	}

	if w := env.do(t, "GET", "/api/captures?limit=x", ""); w.Code != http.StatusBadRequest {
		t.Errorf("bad limit: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestAPIListCapturesEmpty(t *testing.T) {
	env := setupTestServer(t)
	w := env.do(t, "GET", "/api/captures", "")
	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}

func TestAPIGetCaptureVerbose(t *testing.T) {
	env := setupTestServer(t)
	id := seedCapture(t, env.db, testMessage(t, 9), "compact text")

	w := env.do(t, "GET", "/api/captures/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	var plain captureResponse
	if err := json.NewDecoder(w.Body).Decode(&plain); err != nil {
		t.Fatal(err)
	}
	if plain.Capture == nil || plain.ID != id || plain.Text != "compact text" || len(plain.Decoded) != 0 {
		t.Errorf("plain = %+v", plain)
	}

	w = env.do(t, "GET", "/api/captures/1?verbose=1", "")
	var verbose captureResponse
	if err := json.NewDecoder(w.Body).Decode(&verbose); err != nil {
		t.Fatal(err)
	}
	want := "test GET v1 seq=9 pid=0 {A: 7, BIG: {X: 42}}"
	if len(verbose.Decoded) != 1 || verbose.Decoded[0].Text != want {
		t.Errorf("decoded = %+v, want %q", verbose.Decoded, want)
	}
}

func TestAPIGetCaptureErrors(t *testing.T) {
	env := setupTestServer(t)
	if w := env.do(t, "GET", "/api/captures/99", ""); w.Code != http.StatusNotFound {
		t.Errorf("missing: status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if w := env.do(t, "GET", "/api/captures/abc", ""); w.Code != http.StatusBadRequest {
		t.Errorf("bad id: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestAPIDeleteCapture(t *testing.T) {
	env := setupTestServer(t)
	id := seedCapture(t, env.db, nil, "x")

	if w := env.do(t, "DELETE", "/api/captures/1", ""); w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if _, err := env.db.GetCapture(id); err == nil {
		t.Error("expected capture to be deleted")
	}
	if w := env.do(t, "DELETE", "/api/captures/1", ""); w.Code != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestAPICapturesWithoutStore(t *testing.T) {
	srv := NewServer(testRegistry(), nil, testLogger())
	defer srv.Stop()

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest("GET", "/api/captures", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}

	w = httptest.NewRecorder()
	srv.ServeHTTP(w, httptest.NewRequest("GET", "/api/status", nil))
	if strings.Contains(w.Body.String(), `"captures"`) {
		t.Errorf("status reports captures without a store: %s", w.Body.String())
	}
}

func TestAPIKey(t *testing.T) {
	env := setupTestServer(t, WithAPIKey("secret"))

	if w := env.do(t, "GET", "/api/status", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no key: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	req := httptest.NewRequest("GET", "/api/status", nil)
	req.Header.Set("X-API-Key", "wrong")
	w := httptest.NewRecorder()
	env.srv.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong key: status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	req = httptest.NewRequest("GET", "/api/status", nil)
	req.Header.Set("X-API-Key", "secret")
	w = httptest.NewRecorder()
	env.srv.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("header key: status = %d, want %d", w.Code, http.StatusOK)
	}

	if w := env.do(t, "GET", "/api/status?api_key=secret", ""); w.Code != http.StatusOK {
		t.Errorf("query key: status = %d, want %d", w.Code, http.StatusOK)
	}

	// The page stays reachable so the browser can load it.
	if w := env.do(t, "GET", "/", ""); w.Code != http.StatusOK {
		t.Errorf("index: status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestCORS(t *testing.T) {
	env := setupTestServer(t, WithAllowedOrigins([]string{"http://good.example"}))

	req := httptest.NewRequest("OPTIONS", "/api/decode", nil)
	req.Header.Set("Origin", "http://good.example")
	w := httptest.NewRecorder()
	env.srv.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight: status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://good.example" {
		t.Errorf("allow origin = %q", got)
	}

	req = httptest.NewRequest("POST", "/api/decode", bytes.NewBufferString(`{"hex": "00"}`))
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	env.srv.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("foreign origin: status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestIndexAndStatic(t *testing.T) {
	env := setupTestServer(t)

	w := env.do(t, "GET", "/", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "/ws") {
		t.Errorf("index: status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}

	if w := env.do(t, "GET", "/static/style.css", ""); w.Code != http.StatusOK {
		t.Errorf("style: status = %d, want %d", w.Code, http.StatusOK)
	}
}
