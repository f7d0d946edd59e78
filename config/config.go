// Package config loads game tunables from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/milk9111/sugarpop/common"
	"gopkg.in/yaml.v3"
)

//go:embed settings.yaml
var defaultSettings []byte

var ErrInvalid = errors.New("config: invalid settings")

type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Timing     TimingConfig     `yaml:"timing"`
	Grain      GrainConfig      `yaml:"grain"`
	Bucket     BucketConfig     `yaml:"bucket"`
	Line       LineConfig       `yaml:"line"`
	Message    MessageConfig    `yaml:"message"`
	Evaluation EvaluationConfig `yaml:"evaluation"`
	Levels     LevelsConfig     `yaml:"levels"`
	Sound      SoundConfig      `yaml:"sound"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type PhysicsConfig struct {
	Backend     string  `yaml:"backend"`
	Scale       float64 `yaml:"scale"`
	Gravity     float64 `yaml:"gravity"`
	MaxTimeStep float64 `yaml:"max_time_step"`
}

// TimingConfig holds delays in seconds and cadences in ticks.
type TimingConfig struct {
	IntroDelay           float64 `yaml:"intro_delay"`
	StartFlowDelay       float64 `yaml:"start_flow_delay"`
	LevelTransitionDelay float64 `yaml:"level_transition_delay"`
	ExitDelay            float64 `yaml:"exit_delay"`
	EvaluateEvery        int     `yaml:"evaluate_every"`
	DrawSampleEvery      int     `yaml:"draw_sample_every"`
}

type GrainConfig struct {
	Size       float64 `yaml:"size"`
	Density    float64 `yaml:"density"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
	Color      Color   `yaml:"color"`
}

type BucketConfig struct {
	WallThickness    float64 `yaml:"wall_thickness"`
	Friction         float64 `yaml:"friction"`
	Color            Color   `yaml:"color"`
	LineWidth        float64 `yaml:"line_width"`
	ExplosionRadius  float64 `yaml:"explosion_radius"`
	ExplosionImpulse float64 `yaml:"explosion_impulse"`
}

type LineConfig struct {
	Thickness      float64 `yaml:"thickness"`
	Friction       float64 `yaml:"friction"`
	Elasticity     float64 `yaml:"elasticity"`
	Width          float64 `yaml:"width"`
	DrawingColor   Color   `yaml:"drawing_color"`
	CommittedColor Color   `yaml:"committed_color"`
}

type MessageConfig struct {
	Scale                 float64 `yaml:"scale"`
	Color                 Color   `yaml:"color"`
	LevelStart            string  `yaml:"level_start"`
	LevelStartDuration    float64 `yaml:"level_start_duration"`
	LevelComplete         string  `yaml:"level_complete"`
	LevelCompleteDuration float64 `yaml:"level_complete_duration"`
	OutOfTime             string  `yaml:"out_of_time"`
	OutOfTimeDuration     float64 `yaml:"out_of_time_duration"`
	GameWon               string  `yaml:"game_won"`
	GameWonDuration       float64 `yaml:"game_won_duration"`
	Intro                 string  `yaml:"intro"`
	IntroDuration         float64 `yaml:"intro_duration"`
}

type EvaluationConfig struct {
	// DeferredExplosion explodes buckets on the previous pass's tally
	// before recounting, delaying explosions by one evaluation pass.
	DeferredExplosion bool `yaml:"deferred_explosion"`
}

type LevelsConfig struct {
	Dir   string `yaml:"dir"`
	Start int    `yaml:"start"`
}

type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
	// Dir may hold <effect>.wav files that replace the built-in effects.
	Dir string `yaml:"dir"`
}

// Color is a YAML scalar colour, either hex or a CSS name.
type Color struct {
	color.NRGBA
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := common.ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.NRGBA = parsed
	return nil
}

// Default returns the embedded settings.
func Default() Config {
	cfg, err := Parse(defaultSettings)
	if err != nil {
		panic("config: embedded settings: " + err.Error())
	}
	return cfg
}

// Load reads settings from path, or the embedded defaults when path is
// empty. Values missing from the file keep their default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := parseOver(Default(), data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes settings from YAML and validates them.
func Parse(data []byte) (Config, error) {
	return parseOver(Config{}, data)
}

func parseOver(base Config, data []byte) (Config, error) {
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that cannot drive a session.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Physics.Scale <= 0:
		return fmt.Errorf("%w: physics.scale must be positive", ErrInvalid)
	case c.Physics.MaxTimeStep < 0 || c.Physics.MaxTimeStep > common.MaxTimeStep:
		return fmt.Errorf("%w: physics.max_time_step must be between 0 and %v", ErrInvalid, common.MaxTimeStep)
	case c.Timing.EvaluateEvery <= 0:
		return fmt.Errorf("%w: timing.evaluate_every must be positive", ErrInvalid)
	case c.Timing.DrawSampleEvery <= 0:
		return fmt.Errorf("%w: timing.draw_sample_every must be positive", ErrInvalid)
	case c.Grain.Size <= 0:
		return fmt.Errorf("%w: grain.size must be positive", ErrInvalid)
	case c.Bucket.ExplosionRadius < 0:
		return fmt.Errorf("%w: bucket.explosion_radius must not be negative", ErrInvalid)
	case c.Sound.Volume < 0 || c.Sound.Volume > 1:
		return fmt.Errorf("%w: sound.volume must be between 0 and 1", ErrInvalid)
	case strings.Contains(c.LevelStartMessage(1), "%!"):
		return fmt.Errorf("%w: message.level_start needs a single %%d verb, got %q", ErrInvalid, c.Message.LevelStart)
	}
	return nil
}

// Seconds converts a seconds setting to a duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// MaxTimeStep returns the physics step cap, falling back to one 60 Hz frame.
// It never exceeds one 60 Hz frame.
func (c Config) MaxTimeStep() float64 {
	if c.Physics.MaxTimeStep <= 0 {
		return common.MaxTimeStep
	}
	return min(c.Physics.MaxTimeStep, common.MaxTimeStep)
}

// LevelStartMessage renders the level start notice for a 1-based level
// index. It is empty when the notice is disabled.
func (c Config) LevelStartMessage(index int) string {
	if c.Message.LevelStart == "" {
		return ""
	}
	return fmt.Sprintf(c.Message.LevelStart, index)
}
