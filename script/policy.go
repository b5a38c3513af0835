package script

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/milk9111/pong/match"
	"github.com/milk9111/pong/prefabs"
	"go.uber.org/zap"
)

type runtime interface {
	velocity(v view) (float64, error)
	close()
}

// Policy is a match.Opponent driven by a tengo or Lua script. A script that
// fails on a tick is logged and the reactive policy answers for that tick.
type Policy struct {
	name     string
	rt       runtime
	fallback match.Opponent
	log      *zap.Logger
	failures int
}

// Load compiles a script from prefabs/scripts (disk first, then embedded).
// The extension picks the runtime.
func Load(name string, log *zap.Logger) (*Policy, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", name, err)
	}
	return New(name, src, log)
}

func New(name string, src []byte, log *zap.Logger) (*Policy, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var (
		rt  runtime
		err error
	)
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".tengo":
		rt, err = newTengoRuntime(src)
	case ".lua":
		rt, err = newLuaRuntime(src)
	default:
		return nil, fmt.Errorf("script: %s: unsupported extension %q", name, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("script: compile %s: %w", name, err)
	}

	return &Policy{
		name:     name,
		rt:       rt,
		fallback: match.Reactive{},
		log:      log.With(zap.String("script", name)),
	}, nil
}

func (p *Policy) Name() string {
	return p.name
}

func (p *Policy) Velocity(s match.State) float64 {
	v, err := p.rt.velocity(newView(s))
	if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
		err = fmt.Errorf("velocity returned %v", v)
	}
	if err != nil {
		p.failures++
		// Log the first failure and then every 60th so a broken script
		// does not flood the log at frame rate.
		if p.failures%60 == 1 {
			p.log.Warn("opponent script failed, using reactive policy",
				zap.Error(err), zap.Int("failures", p.failures), zap.Uint64("tick", s.Tick))
		}
		return p.fallback.Velocity(s)
	}
	return v
}

func (p *Policy) Close() {
	if p == nil || p.rt == nil {
		return
	}
	p.rt.close()
}
