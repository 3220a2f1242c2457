// Package luabind exposes the loader to gopher-lua states as the "fastio"
// module.
//
//	L := lua.NewState()
//	luabind.Preload(L, loader.New(loader.Config{}))
//	L.DoString(`local data = require("fastio").read_chunk("data.bin")`)
//
// Contents cross into Lua as strings built from the buffer's explicit
// length, so embedded NUL bytes survive. The owned buffer is released as
// soon as Lua holds its copy.
package luabind

import (
	"fmt"
	"io/fs"

	"github.com/jmgilman/go/errors"
	lua "github.com/yuin/gopher-lua"

	"github.com/fastio/fastio/internal/loader"
)

// ModuleName is the name Preload registers the module under.
const ModuleName = "fastio"

// Source loads whole files. *loader.Loader satisfies it.
type Source interface {
	Load(path string) (*loader.Buffer, error)
}

// Registry maps Lua function names to their implementations.
type Registry map[string]lua.LGFunction

// NewRegistry builds the fastio function table backed by src.
func NewRegistry(src Source) Registry {
	return Registry{
		"read_chunk": readChunk(src),
		"read_file":  readFile(src),
		"version":    version,
	}
}

// Open pushes a new module table holding the registry's functions. It has
// the lua.LGFunction shape so it can be handed to PreloadModule.
func (r Registry) Open(L *lua.LState) int {
	L.Push(L.SetFuncs(L.NewTable(), r))
	return 1
}

// RegisterGlobals also installs every function as a global named
// fastio_<name>, for hosts that load the library without require.
func (r Registry) RegisterGlobals(L *lua.LState) {
	for name, fn := range r {
		L.SetGlobal(ModuleName+"_"+name, L.NewFunction(fn))
	}
}

// Preload makes require("fastio") return the module in L.
func Preload(L *lua.LState, src Source) {
	L.PreloadModule(ModuleName, NewRegistry(src).Open)
}

// readChunk returns the file contents or raises a Lua error.
func readChunk(src Source) lua.LGFunction {
	return func(L *lua.LState) int {
		path := L.CheckString(1)

		content, err := load(src, path)
		if err != nil {
			L.RaiseError("%s", message(path, err))
			return 0
		}

		L.Push(content)
		return 1
	}
}

// readFile returns content and size, or nil and an error message.
func readFile(src Source) lua.LGFunction {
	return func(L *lua.LState) int {
		path, ok := L.Get(1).(lua.LString)
		if !ok {
			L.Push(lua.LNil)
			L.Push(lua.LString("invalid path argument"))
			return 2
		}

		content, err := load(src, string(path))
		if err != nil {
			L.Push(lua.LNil)
			L.Push(lua.LString(message(string(path), err)))
			return 2
		}

		L.Push(content)
		L.Push(lua.LNumber(len(content)))
		return 2
	}
}

func version(L *lua.LState) int {
	L.Push(lua.LString(ModuleName + " " + loader.Version))
	return 1
}

func load(src Source, path string) (lua.LString, error) {
	buf, err := src.Load(path)
	if err != nil {
		return "", err
	}
	content := lua.LString(buf.String())
	_ = buf.Release()
	return content, nil
}

// message turns a load failure into the text a Lua caller sees.
func message(path string, err error) string {
	switch loader.KindOf(err) {
	case loader.KindNotFound:
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return fmt.Sprintf("cannot open %s: %v", path, pathErr.Err)
		}
		return fmt.Sprintf("cannot open %s", path)
	case loader.KindStatFailed:
		return "cannot determine file size"
	case loader.KindReadFailed:
		return fmt.Sprintf("read error for %s", path)
	case loader.KindAllocationFailed:
		return "memory allocation failed"
	default:
		return err.Error()
	}
}
