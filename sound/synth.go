package sound

import (
	"encoding/binary"
	"math"
)

// Effect names a sound effect.
type Effect string

const (
	EffectPop     Effect = "pop"
	EffectChime   Effect = "chime"
	EffectBuzz    Effect = "buzz"
	EffectFanfare Effect = "fanfare"
)

// Effects lists every effect Synth can build.
var Effects = []Effect{EffectPop, EffectChime, EffectBuzz, EffectFanfare}

type note struct {
	freq     float64
	start    float64 // seconds
	duration float64
	// sweep is the frequency change per second.
	sweep float64
}

var recipes = map[Effect][]note{
	EffectPop:     {{freq: 660, duration: 0.12, sweep: -3000}},
	EffectChime:   {{freq: 880, duration: 0.25}, {freq: 1320, start: 0.12, duration: 0.35}},
	EffectBuzz:    {{freq: 110, duration: 0.4, sweep: -60}},
	EffectFanfare: {{freq: 523, duration: 0.2}, {freq: 659, start: 0.18, duration: 0.2}, {freq: 784, start: 0.36, duration: 0.5}},
}

// Synth renders e as 16-bit little endian stereo PCM at sampleRate. Unknown
// effects render as nil.
func Synth(e Effect, sampleRate int) []byte {
	notes, ok := recipes[e]
	if !ok || sampleRate <= 0 {
		return nil
	}
	length := 0.0
	for _, n := range notes {
		length = math.Max(length, n.start+n.duration)
	}
	samples := int(length * float64(sampleRate))
	out := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / float64(sampleRate)
		v := 0.0
		for _, n := range notes {
			v += n.sample(t)
		}
		v = math.Max(-1, math.Min(1, v*0.5))
		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out
}

func (n note) sample(t float64) float64 {
	local := t - n.start
	if local < 0 || local >= n.duration {
		return 0
	}
	// Phase of a linear chirp.
	phase := 2 * math.Pi * (n.freq*local + n.sweep*local*local/2)
	env := 1 - local/n.duration
	return math.Sin(phase) * env * env
}
