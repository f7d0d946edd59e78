// Package levels holds level definitions and the loaders that read them.
package levels

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/milk9111/sugarpop/common"
)

var (
	ErrNotFound = errors.New("levels: level not found")
	ErrInvalid  = errors.New("levels: invalid level")
)

// Definition describes one level. It is immutable once loaded.
type Definition struct {
	Name        string      `json:"name,omitempty"`
	SpoutX      float64     `json:"spout_x"`
	SpoutY      float64     `json:"spout_y"`
	GrainGoal   int         `json:"number_sugar_grains"`
	TimeLimit   float64     `json:"time_to_complete_level,omitempty"`
	SpoutScript string      `json:"spout_script,omitempty"`
	Buckets     []BucketDef `json:"buckets"`
	Statics     []StaticDef `json:"statics"`
}

// BucketDef places a bucket by its top-centre point, in screen pixels.
type BucketDef struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	NeededSugar int     `json:"needed_sugar"`
}

// StaticDef is a fixed line obstacle, in screen pixels.
type StaticDef struct {
	X1          float64 `json:"x1"`
	Y1          float64 `json:"y1"`
	X2          float64 `json:"x2"`
	Y2          float64 `json:"y2"`
	Color       string  `json:"color,omitempty"`
	LineWidth   float64 `json:"line_width,omitempty"`
	Friction    float64 `json:"friction"`
	Restitution float64 `json:"restitution"`
}

// rawDefinition detects required fields that are missing from the JSON.
type rawDefinition struct {
	Definition
	SpoutX    *float64 `json:"spout_x"`
	SpoutY    *float64 `json:"spout_y"`
	GrainGoal *int     `json:"number_sugar_grains"`
}

// Parse decodes and validates a level. No partially valid level is returned.
func Parse(data []byte) (*Definition, error) {
	var raw rawDefinition
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if raw.SpoutX == nil || raw.SpoutY == nil {
		return nil, fmt.Errorf("%w: missing spout_x/spout_y", ErrInvalid)
	}
	if raw.GrainGoal == nil {
		return nil, fmt.Errorf("%w: missing number_sugar_grains", ErrInvalid)
	}

	def := raw.Definition
	def.SpoutX = *raw.SpoutX
	def.SpoutY = *raw.SpoutY
	def.GrainGoal = *raw.GrainGoal
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the ranges the session relies on.
func (d *Definition) Validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil definition", ErrInvalid)
	}
	if d.GrainGoal < 0 {
		return fmt.Errorf("%w: number_sugar_grains %d is negative", ErrInvalid, d.GrainGoal)
	}
	if d.TimeLimit < 0 {
		return fmt.Errorf("%w: time_to_complete_level %v is negative", ErrInvalid, d.TimeLimit)
	}
	for i, b := range d.Buckets {
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("%w: bucket %d has size %vx%v", ErrInvalid, i, b.Width, b.Height)
		}
		if b.NeededSugar < 0 {
			return fmt.Errorf("%w: bucket %d needs %d grains", ErrInvalid, i, b.NeededSugar)
		}
	}
	for i, s := range d.Statics {
		if s.LineWidth < 0 {
			return fmt.Errorf("%w: static %d has line_width %v", ErrInvalid, i, s.LineWidth)
		}
		if s.Color != "" {
			if _, err := common.ParseColor(s.Color); err != nil {
				return fmt.Errorf("%w: static %d: %v", ErrInvalid, i, err)
			}
		}
	}
	return nil
}

// TotalNeeded sums the grains every bucket needs.
func (d *Definition) TotalNeeded() int {
	if d == nil {
		return 0
	}
	total := 0
	for _, b := range d.Buckets {
		total += b.NeededSugar
	}
	return total
}

// DisplayName returns the level name, or "Level N".
func (d *Definition) DisplayName(index int) string {
	if d != nil && d.Name != "" {
		return d.Name
	}
	return fmt.Sprintf("Level %d", index)
}
