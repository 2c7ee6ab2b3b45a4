// Package scraper compiles and installs Lua content scripts.
package scraper

import (
	"sync"

	"github.com/folio-cli/folio/filesystem"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var bytecodeCache sync.Map

// PreCompileAndLoad runs the script at path in L.
// Compiled prototypes are cached by path, so a script is parsed once per process.
func PreCompileAndLoad(L *lua.LState, path string) error {
	if cached, ok := bytecodeCache.Load(path); ok {
		L.Push(L.NewFunctionFromProto(cached.(*lua.FunctionProto)))
		return L.PCall(0, lua.MultRet, nil)
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	chunk, err := parse.Parse(file, path)
	if err != nil {
		return err
	}

	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return err
	}

	bytecodeCache.Store(path, proto)

	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}

// Forget drops the compiled prototype for path, e.g. after the file changed.
func Forget(path string) {
	bytecodeCache.Delete(path)
}
