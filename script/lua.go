package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

type luaRuntime struct {
	vm *lua.LState
}

func newLuaRuntime(src []byte) (*luaRuntime, error) {
	vm := lua.NewState()
	if err := vm.DoString(string(src)); err != nil {
		vm.Close()
		return nil, err
	}
	if fn := vm.GetGlobal("velocity"); fn.Type() != lua.LTFunction {
		vm.Close()
		return nil, fmt.Errorf("lua script does not define function velocity")
	}
	return &luaRuntime{vm: vm}, nil
}

func (rt *luaRuntime) velocity(v view) (float64, error) {
	t := rt.vm.NewTable()
	for k, f := range v.fields() {
		t.RawSetString(k, lua.LNumber(f))
	}

	if err := rt.vm.CallByParam(lua.P{
		Fn:      rt.vm.GetGlobal("velocity"),
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		return 0, err
	}

	result := rt.vm.Get(-1)
	rt.vm.Pop(1)

	n, ok := result.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("velocity returned %s, want a number", result.Type())
	}
	return float64(n), nil
}

func (rt *luaRuntime) close() {
	rt.vm.Close()
}
