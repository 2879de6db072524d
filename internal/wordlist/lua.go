package wordlist

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// LoadLua runs a Lua script and collects its global words, which is either
// a table of strings or a function returning one.
func LoadLua(path string) ([]string, error) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("failed to run word script %s: %w", path, err)
	}

	value := L.GetGlobal("words")
	if fn, ok := value.(*lua.LFunction); ok {
		if err := L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}); err != nil {
			return nil, fmt.Errorf("failed to call words() in %s: %w", path, err)
		}
		value = L.Get(-1)
		L.Pop(1)
	}

	tbl, ok := value.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("%s: global words must be a table or a function returning one, got %s", path, value.Type())
	}
	var words []string
	tbl.ForEach(func(_, v lua.LValue) {
		if s, ok := v.(lua.LString); ok {
			words = append(words, string(s))
		}
	})
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return words, nil
}
