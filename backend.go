package main

import (
	"fmt"
	"strings"

	"github.com/milk9111/sugarpop/config"
	"github.com/milk9111/sugarpop/physics"
	"github.com/milk9111/sugarpop/physics/box2d"
	"github.com/milk9111/sugarpop/physics/chipmunk"
)

// newWorld builds the physics backend named in cfg.
func newWorld(cfg config.PhysicsConfig) (physics.World, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", "chipmunk", "cp":
		return chipmunk.New(chipmunk.Options{Gravity: cfg.Gravity}), nil
	case "box2d", "b2":
		return box2d.New(box2d.Options{Gravity: cfg.Gravity}), nil
	default:
		return nil, fmt.Errorf("unknown physics backend %q", cfg.Backend)
	}
}
