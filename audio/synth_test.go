package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	dur := 50 * time.Millisecond
	got := drain(t, NewOscillator(440, dur, WaveSine, testRate))
	want := testRate.N(dur)
	if len(got) != want {
		t.Errorf("streamed %d samples, want %d", len(got), want)
	}
}

func TestOscillatorAmplitudeBounded(t *testing.T) {
	waves := map[string]WaveType{
		"sine":     WaveSine,
		"square":   WaveSquare,
		"triangle": WaveTriangle,
	}
	for name, wave := range waves {
		t.Run(name, func(t *testing.T) {
			for _, s := range drain(t, NewOscillator(220, 10*time.Millisecond, wave, testRate)) {
				if math.Abs(s[0]) > 1 || math.Abs(s[1]) > 1 {
					t.Fatalf("sample out of range: %v", s)
				}
			}
		})
	}
}

func TestEnvelopeRampsEnds(t *testing.T) {
	dur := 100 * time.Millisecond
	osc := NewOscillator(440, dur, WaveSquare, testRate)
	samples := drain(t, NewEnvelope(osc, dur, 10*time.Millisecond, 10*time.Millisecond, testRate))
	if len(samples) == 0 {
		t.Fatal("envelope produced no samples")
	}

	// The very first and last samples sit at the bottom of the ramps.
	if math.Abs(samples[0][0]) > 0.01 {
		t.Errorf("attack start = %v, want ~0", samples[0][0])
	}
	if last := samples[len(samples)-1][0]; math.Abs(last) > 0.01 {
		t.Errorf("release end = %v, want ~0", last)
	}

	// Mid-stream the square wave passes through at full level.
	mid := samples[len(samples)/2][0]
	if math.Abs(mid) < 0.9 {
		t.Errorf("sustain level = %v, want ~1", mid)
	}
}

func TestEnvelopeStopsAtDuration(t *testing.T) {
	// The source runs longer than the envelope; the envelope cuts it.
	osc := NewOscillator(440, time.Second, WaveSine, testRate)
	env := NewEnvelope(osc, 20*time.Millisecond, time.Millisecond, time.Millisecond, testRate)
	got := drain(t, env)
	want := testRate.N(20 * time.Millisecond)
	if len(got) != want {
		t.Errorf("streamed %d samples, want %d", len(got), want)
	}
}
