package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// The script only defines velocity(view); this tail calls it.
const tengoDispatchScript = `
__result := velocity(__view)
`

type tengoRuntime struct {
	compiled *tengo.Compiled
}

func newTengoRuntime(src []byte) (*tengoRuntime, error) {
	script := tengo.NewScript(append(append([]byte{}, src...), []byte("\n"+tengoDispatchScript)...))
	_ = script.Add("__view", map[string]any{})

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &tengoRuntime{compiled: compiled}, nil
}

func (rt *tengoRuntime) velocity(v view) (float64, error) {
	values := make(map[string]tengo.Object, 12)
	for k, f := range v.fields() {
		values[k] = &tengo.Float{Value: f}
	}
	if err := rt.compiled.Set("__view", &tengo.ImmutableMap{Value: values}); err != nil {
		return 0, err
	}
	if err := rt.compiled.Run(); err != nil {
		return 0, err
	}

	result := rt.compiled.Get("__result").Object()
	f, ok := tengo.ToFloat64(result)
	if !ok {
		return 0, fmt.Errorf("velocity returned %s, want a number", result.TypeName())
	}
	return f, nil
}

func (rt *tengoRuntime) close() {}
