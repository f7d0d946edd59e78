package session

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// spoutModules are the only stdlib modules a spout script may import.
var spoutModules = []string{"math", "rand"}

// spoutScript offsets each spawn from the spout. Scripts read the globals
// grain and tick and may assign dx and dy in pixels.
type spoutScript struct {
	compiled *tengo.Compiled
}

func compileSpoutScript(src string) (*spoutScript, error) {
	script := tengo.NewScript([]byte(src))
	script.SetImports(stdlib.GetModuleMap(spoutModules...))
	for name, v := range map[string]any{"grain": 0, "tick": 0, "dx": 0.0, "dy": 0.0} {
		if err := script.Add(name, v); err != nil {
			return nil, fmt.Errorf("spout script: add %s: %w", name, err)
		}
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("spout script: compile: %w", err)
	}
	return &spoutScript{compiled: compiled}, nil
}

// Offset runs the script for one spawn.
func (s *spoutScript) Offset(grain, tick int) (float64, float64, error) {
	if s == nil || s.compiled == nil {
		return 0, 0, nil
	}
	c := s.compiled
	for name, v := range map[string]any{"grain": grain, "tick": tick, "dx": 0.0, "dy": 0.0} {
		if err := c.Set(name, v); err != nil {
			return 0, 0, fmt.Errorf("spout script: set %s: %w", name, err)
		}
	}
	if err := c.Run(); err != nil {
		return 0, 0, fmt.Errorf("spout script: run: %w", err)
	}
	return c.Get("dx").Float(), c.Get("dy").Float(), nil
}
