package audio

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rotisserie/eris"
)

// Cue identifies a built-in tone the simulation can trigger.
type Cue int

const (
	// CueCollision marks a new solid contact.
	CueCollision Cue = iota
	// CueTrigger marks entry into a trigger volume.
	CueTrigger
	// CueDestroy marks an entity reclamation.
	CueDestroy
)

type cueSpec struct {
	freq     float64
	wave     WaveType
	duration time.Duration
}

var cueTable = map[Cue]cueSpec{
	CueCollision: {freq: 220, wave: WaveSquare, duration: 60 * time.Millisecond},
	CueTrigger:   {freq: 660, wave: WaveSine, duration: 90 * time.Millisecond},
	CueDestroy:   {freq: 110, wave: WaveTriangle, duration: 120 * time.Millisecond},
}

// Player synthesizes short tone cues through the system speaker. A nil Player
// is valid and silent, so callers never branch on audio availability.
type Player struct {
	rate   beep.SampleRate
	volume float64
	muted  atomic.Bool

	mu      sync.Mutex
	started bool
}

// NewPlayer initializes the speaker at the given sample rate. The buffer is
// sized for low cue latency rather than throughput.
func NewPlayer(sampleRate int, masterVolume float64) (*Player, error) {
	if sampleRate <= 0 {
		return nil, eris.Errorf("sample rate must be positive, got %d", sampleRate)
	}
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(time.Millisecond*20)); err != nil {
		return nil, eris.Wrap(err, "init speaker")
	}
	return &Player{
		rate:    rate,
		volume:  masterVolume,
		started: true,
	}, nil
}

// SetMuted toggles cue playback without tearing down the speaker.
func (p *Player) SetMuted(muted bool) {
	if p == nil {
		return
	}
	p.muted.Store(muted)
}

// Play queues a cue for immediate playback. Unknown cues are ignored.
func (p *Player) Play(cue Cue) {
	if p == nil || p.muted.Load() {
		return
	}
	spec, ok := cueTable[cue]
	if !ok {
		return
	}

	osc := NewOscillator(spec.freq, spec.duration, spec.wave, p.rate)
	shaped := NewEnvelope(osc, spec.duration, 5*time.Millisecond, 20*time.Millisecond, p.rate)
	vol := &effects.Volume{
		Streamer: shaped,
		Base:     2,
		Volume:   volumeDb(p.volume),
		Silent:   p.volume == 0,
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	speaker.Play(vol)
}

// Close stops playback. The speaker itself stays initialized; beep owns the
// device for the process lifetime.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started = false
	speaker.Clear()
}

// volumeDb converts a linear [0,1] volume into beep's exponential scale,
// where 0 is unity gain and each unit halves or doubles loudness.
func volumeDb(linear float64) float64 {
	if linear <= 0 {
		return -10
	}
	if linear >= 1 {
		return 0
	}
	return math.Log2(linear)
}
