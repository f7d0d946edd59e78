// Package sound plays the game's short effects.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const SampleRate = 44100

// Player owns the audio context and the decoded clips.
type Player struct {
	ctx    *audio.Context
	clips  map[Effect][]byte
	volume float64
}

// NewPlayer synthesises every effect. A WAV file named <effect>.wav in dir
// replaces the synthesised clip. Only one Player may exist per process.
func NewPlayer(dir string, volume float64) (*Player, error) {
	p := &Player{
		ctx:    audio.NewContext(SampleRate),
		clips:  make(map[Effect][]byte, len(Effects)),
		volume: volume,
	}
	for _, e := range Effects {
		p.clips[e] = Synth(e, SampleRate)
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, string(e)+".wav")
		if _, err := os.Stat(path); err != nil {
			continue
		}
		clip, err := LoadWAV(path, SampleRate)
		if err != nil {
			return nil, err
		}
		p.clips[e] = clip
	}
	return p, nil
}

// LoadWAV decodes a WAV file into PCM at sampleRate.
func LoadWAV(path string, sampleRate int) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode wav %q: %w", path, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read wav %q: %w", path, err)
	}
	return pcm, nil
}

// Play starts e from the beginning. Unknown effects are ignored.
func (p *Player) Play(e Effect) {
	if p == nil || p.ctx == nil {
		return
	}
	clip := p.clips[e]
	if len(clip) == 0 {
		return
	}
	pl := p.ctx.NewPlayerFromBytes(clip)
	pl.SetVolume(p.volume)
	pl.Play()
}
