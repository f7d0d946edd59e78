package sound

import (
	"encoding/binary"
	"math"
	"testing"
)

func peak(pcm []byte, from, to int) int {
	max := 0
	for i := from; i < to && i*4+1 < len(pcm); i++ {
		v := int(int16(binary.LittleEndian.Uint16(pcm[i*4:])))
		if v < 0 {
			v = -v
		}
		if v > max {
			max = v
		}
	}
	return max
}

func TestSynth(t *testing.T) {
	cases := []struct {
		effect  Effect
		seconds float64
	}{
		{EffectPop, 0.12},
		{EffectChime, 0.47},
		{EffectBuzz, 0.4},
		{EffectFanfare, 0.86},
	}
	for _, c := range cases {
		t.Run(string(c.effect), func(t *testing.T) {
			pcm := Synth(c.effect, SampleRate)
			samples := int(c.seconds * SampleRate)
			if got := len(pcm) / 4; got < samples-1 || got > samples+1 || len(pcm)%4 != 0 {
				t.Fatalf("len = %d bytes, want about %d samples", len(pcm), samples)
			}
			for i := 0; i+3 < len(pcm); i += 4 {
				if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
					t.Fatalf("channels differ at sample %d", i/4)
				}
			}
			if peak(pcm, 0, samples/10) == 0 {
				t.Fatalf("effect starts silent")
			}
		})
	}
}

func TestPopDecays(t *testing.T) {
	pcm := Synth(EffectPop, SampleRate)
	n := len(pcm) / 4
	early, late := peak(pcm, 0, n/4), peak(pcm, 3*n/4, n)
	if late >= early {
		t.Fatalf("late peak %d should be below early peak %d", late, early)
	}
	if early > math.MaxInt16 {
		t.Fatalf("clipped: %d", early)
	}
}

func TestSynthUnknown(t *testing.T) {
	if Synth("kazoo", SampleRate) != nil || Synth(EffectPop, 0) != nil {
		t.Fatalf("expected nil")
	}
	var p *Player
	p.Play(EffectPop)
}
