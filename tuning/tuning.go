// Package tuning lets a caller override the canonical shape scorer with
// a Lua script, for experimenting with historical or house-rule scoring
// tables without recompiling the engine.
package tuning

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// Overrider runs a Lua script that defines a shape_score(run, open_ends,
// has_hole) function and exposes it through ShapeScore, which has the
// same signature as eval.ShapeScore. The eval package does not consult
// an Overrider; its evaluators always use eval.ShapeScore.
type Overrider struct {
	state *lua.LState
}

// Load compiles and runs source, which must define a global function
// shape_score(run, open_ends, has_hole) -> (score, is_win).
func Load(source string) (*Overrider, error) {
	l := lua.NewState()
	if err := l.DoString(source); err != nil {
		l.Close()
		return nil, fmt.Errorf("tuning: loading script: %w", err)
	}
	if fn, ok := l.GetGlobal("shape_score").(*lua.LFunction); !ok || fn == nil {
		l.Close()
		return nil, fmt.Errorf("tuning: script does not define shape_score")
	}
	return &Overrider{state: l}, nil
}

// Close releases the underlying Lua state.
func (o *Overrider) Close() {
	o.state.Close()
}

// ShapeScore calls the loaded script's shape_score and returns its two
// results as (score, is_win), the same shape as eval.ShapeScore. It
// panics if the script call fails; there is no fallback to the
// canonical table.
func (o *Overrider) ShapeScore(run, openEnds uint8, hasHole bool) (int32, bool) {
	fn := o.state.GetGlobal("shape_score")
	if err := o.state.CallByParam(lua.P{
		Fn:      fn,
		NRet:    2,
		Protect: true,
	}, lua.LNumber(run), lua.LNumber(openEnds), lua.LBool(hasHole)); err != nil {
		panic(fmt.Sprintf("tuning: shape_score call failed: %v", err))
	}
	defer o.state.Pop(2)

	isWin := lua.LVAsBool(o.state.Get(-1))
	score := int32(lua.LVAsNumber(o.state.Get(-2)))
	return score, isWin
}

// Default renders the canonical table as a Lua script, useful as a
// starting point for a caller who wants to tweak only a few entries.
func Default() string {
	return `
function shape_score(run, open_ends, has_hole)
  if has_hole then
    if run >= 5 then return 40000, false end
    if run == 4 then
      if open_ends <= 1 then return 500, false end
      return 20000, false
    end
    return 0, false
  end
  if run >= 5 then return 100000000, true end
  if run == 4 then
    if open_ends == 0 then return 0, false end
    if open_ends == 1 then return 100000, false end
    return 10000000, false
  end
  if run == 3 then
    if open_ends == 0 then return 0, false end
    if open_ends == 1 then return 10000, false end
    return 5000000, false
  end
  if run == 2 and open_ends == 2 then return 2000, false end
  return 0, false
end
`
}
