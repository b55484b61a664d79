//go:build !no_script

package script

import (
	"encoding/hex"
	"log/slog"

	"github.com/mdlayher/netlink/nlenc"
	lua "github.com/yuin/gopher-lua"

	"nldump/internal/nlattr"
)

// registerNLModule registers the `nl` global table of decoding helpers.
// Offsets are zero-based byte offsets into the string argument.
func registerNLModule(L *lua.LState, logger *slog.Logger) {
	mod := L.NewTable()

	mod.RawSetString("crc16", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(nlattr.CRC16([]byte(L.CheckString(1)))))
		return 1
	}))

	mod.RawSetString("hex", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(hex.EncodeToString([]byte(L.CheckString(1)))))
		return 1
	}))

	mod.RawSetString("u8", L.NewFunction(func(L *lua.LState) int {
		return pushField(L, 1, func(b []byte) uint64 { return uint64(b[0]) })
	}))
	mod.RawSetString("u16", L.NewFunction(func(L *lua.LState) int {
		return pushField(L, 2, func(b []byte) uint64 { return uint64(nlenc.Uint16(b)) })
	}))
	mod.RawSetString("u32", L.NewFunction(func(L *lua.LState) int {
		return pushField(L, 4, func(b []byte) uint64 { return uint64(nlenc.Uint32(b)) })
	}))

	mod.RawSetString("printable", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(nlattr.Printable([]byte(L.CheckString(1)))))
		return 1
	}))

	mod.RawSetString("elements", L.NewFunction(func(L *lua.LState) int {
		data := []byte(L.CheckString(1))
		compact := L.OptBool(2, true)
		L.Push(lua.LString(nlattr.DecodeElements(nlattr.NewBuffer(data), compact)))
		return 1
	}))

	mod.RawSetString("log", L.NewFunction(func(L *lua.LState) int {
		logger.Debug("script log", "msg", L.CheckString(1))
		return 0
	}))

	L.SetGlobal("nl", mod)
}

// pushField reads a width-byte integer at the offset in argument 2 and
// pushes it, or nil when it does not fit.
func pushField(L *lua.LState, width int, read func([]byte) uint64) int {
	data := L.CheckString(1)
	off := L.OptInt(2, 0)
	if off < 0 || off+width > len(data) {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LNumber(read([]byte(data[off : off+width]))))
	return 1
}
