package content

import (
	"context"
	"fmt"
	"sync"

	"github.com/folio-cli/folio/constant"
	"github.com/folio-cli/folio/internal/scraper"
	"github.com/folio-cli/folio/media"
	"github.com/folio-cli/folio/util"
	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"
)

// Lua is a content source backed by a user script defining FetchAll(kind).
type Lua struct {
	name string
	path string

	// an LState is not safe for concurrent use
	mu    sync.Mutex
	state *lua.LState
}

// LoadLua runs the script at path and checks that it defines FetchAll.
func LoadLua(path string) (*Lua, error) {
	state := lua.NewState()
	libs.Preload(state)

	if err := scraper.PreCompileAndLoad(state, path); err != nil {
		state.Close()
		return nil, err
	}

	name := util.FileStem(path)
	if state.GetGlobal(constant.FetchAllFn).Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("function %s is required but not defined in %s", constant.FetchAllFn, name)
	}

	return &Lua{name: name, path: path, state: state}, nil
}

func (s *Lua) Name() string {
	return s.name
}

// Close releases the interpreter.
func (s *Lua) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Close()
}

func (s *Lua) FetchAll(ctx context.Context, kind media.Kind) ([]*media.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SetContext(ctx)
	defer s.state.RemoveContext()

	val, err := s.call(constant.FetchAllFn, lua.LTTable, lua.LString(kind))
	if err != nil {
		return nil, fetchErr(s.name, kind, err)
	}

	var (
		items []*media.Item
		errs  []error
	)
	val.(*lua.LTable).ForEach(func(k, v lua.LValue) {
		if k.Type() != lua.LTNumber || v.Type() != lua.LTTable {
			return
		}

		item, err := itemFromTable(v.(*lua.LTable), kind, int(k.(lua.LNumber)))
		if err != nil {
			errs = append(errs, err)
			return
		}
		items = append(items, item)
	})

	if len(items) == 0 && len(errs) > 0 {
		return nil, fetchErr(s.name, kind, errs[0])
	}

	return normalize(items, kind), nil
}

func (s *Lua) call(fn string, retType lua.LValueType, args ...lua.LValue) (lua.LValue, error) {
	luaFn := s.state.GetGlobal(fn)
	if luaFn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is not defined", fn)
	}

	err := s.state.CallByParam(lua.P{
		Fn:      luaFn,
		NRet:    1,
		Protect: true,
	}, args...)
	if err != nil {
		return nil, err
	}

	retval := s.state.Get(-1)
	s.state.Pop(1)

	if retval.Type() != retType {
		return nil, fmt.Errorf("%s returned %s, expected %s", fn, retval.Type(), retType)
	}

	return retval, nil
}
