package scenes

import (
	"encoding/binary"
	"math"
	"sync"

	cfg "github.com/automoto/ashgrove/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

const (
	sampleRate = 44100
	blipVolume = 0.3
)

// Global audio state - created once and shared across all scenes
var (
	audioContext  *audio.Context
	audioInitOnce sync.Once
)

func initAudio() {
	audioInitOnce.Do(func() {
		audioContext = audio.NewContext(sampleRate)
	})
}

type blip struct {
	freq     float64 // Hz
	duration float64 // Seconds
}

// blipFor maps an animation cue to the tone played for it. Cue names are
// tunable so they are matched against the live config.
func blipFor(cue string) (blip, bool) {
	switch cue {
	case cfg.CueJump:
		return blip{freq: 520, duration: 0.06}, true
	case cfg.CueDodge:
		return blip{freq: 330, duration: 0.08}, true
	case cfg.Combat.Light.Cue:
		return blip{freq: 880, duration: 0.05}, true
	case cfg.Combat.Heavy.Cue:
		return blip{freq: 220, duration: 0.12}, true
	case cfg.Combat.DeathCue:
		return blip{freq: 110, duration: 0.35}, true
	}
	return blip{}, false
}

// CueSounds is a host.Animator that plays a short synthesised tone for
// every cue it recognises.
type CueSounds struct {
	mu    sync.Mutex
	cache map[string][]byte
	Muted bool
}

func NewCueSounds() *CueSounds {
	initAudio()
	return &CueSounds{cache: make(map[string][]byte)}
}

func (c *CueSounds) PlayAnimationCue(_ donburi.Entity, cue string) error {
	if c.Muted {
		return nil
	}
	pcm, ok := c.samples(cue)
	if !ok {
		return nil
	}
	player := audioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(blipVolume)
	player.Play()
	return nil
}

func (c *CueSounds) samples(cue string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if pcm, ok := c.cache[cue]; ok {
		return pcm, true
	}
	b, ok := blipFor(cue)
	if !ok {
		return nil, false
	}
	pcm := synthesize(b)
	c.cache[cue] = pcm
	return pcm, true
}

// synthesize renders a decaying sine as 16-bit little-endian stereo.
func synthesize(b blip) []byte {
	n := int(b.duration * sampleRate)
	pcm := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		envelope := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*b.freq*t) * envelope * math.MaxInt16)
		binary.LittleEndian.PutUint16(pcm[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(pcm[i*4+2:], uint16(v))
	}
	return pcm
}
