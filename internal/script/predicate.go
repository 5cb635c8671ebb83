// Package script builds an edit.ConsiderFunc from a small Lua predicate,
// so a caller can decide which edits the processor acts on without
// recompiling a Go program. The teacher's plugin sandbox runs Lua calls
// through an Executor that marshals them across a goroutine boundary;
// this package skips that entirely, since the engine's Apply is already a
// single synchronous call per spec and there is no concurrent caller to
// serialize against.
package script

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	"github.com/halvard/edittree/edit"
)

// Predicate wraps a sandboxed Lua state exposing a global "considered"
// function: considered(kind, offset, length) -> bool.
type Predicate struct {
	L  *lua.LState
	fn *lua.LFunction
}

// LoadFromFile reads path and compiles it into a Predicate.
func LoadFromFile(path string) (*Predicate, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: reading %s: %w", path, err)
	}
	return NewPredicate(string(src))
}

// NewPredicate compiles source, which must define a global function named
// "considered", into a Predicate.
func NewPredicate(source string) (*Predicate, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibs(L)
	removeDangerousGlobals(L)

	if err := L.DoString(source); err != nil {
		L.Close()
		return nil, fmt.Errorf("script: compiling predicate: %w", err)
	}

	fn, ok := L.GetGlobal("considered").(*lua.LFunction)
	if !ok {
		L.Close()
		return nil, fmt.Errorf("script: predicate script must define a global function named considered")
	}

	return &Predicate{L: L, fn: fn}, nil
}

// Func returns an edit.ConsiderFunc backed by the compiled predicate. A
// Lua-side error during a call makes the predicate fail open (return
// true): a broken script should never block an apply that would
// otherwise succeed.
func (p *Predicate) Func() edit.ConsiderFunc {
	return func(e edit.Edit) bool {
		p.L.Push(p.fn)
		p.L.Push(lua.LString(e.Kind().String()))
		p.L.Push(lua.LNumber(e.Offset()))
		p.L.Push(lua.LNumber(e.Length()))

		if err := p.L.PCall(3, 1, nil); err != nil {
			return true
		}
		ret := p.L.Get(-1)
		p.L.Pop(1)
		return lua.LVAsBool(ret)
	}
}

// Close releases the underlying Lua state.
func (p *Predicate) Close() { p.L.Close() }

func openSafeLibs(L *lua.LState) {
	for _, pair := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		L.Push(L.NewFunction(pair.fn))
		L.Push(lua.LString(pair.name))
		L.Call(1, 0)
	}
}

// removeDangerousGlobals strips the functions a predicate script could use
// to escape the sandbox (load arbitrary files or strings, pull in modules
// outside the whitelist above).
func removeDangerousGlobals(L *lua.LState) {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
}
