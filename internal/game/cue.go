package game

import (
	"log"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/quad-path-mover/internal/config"
)

// tone is a beep.Streamer producing a sine wave with a quadratic decay.
type tone struct {
	freq  float64
	rate  beep.SampleRate
	pos   int
	total int
}

func newTone(rate beep.SampleRate, freq float64, d time.Duration) *tone {
	return &tone{freq: freq, rate: rate, total: rate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		env := 1 - float64(t.pos)/float64(t.total)
		v := math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.rate)) * env * env
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// cuePlayer plays a short tone when a node settles. The speaker is
// initialised on first use; if that fails the player stays silent.
type cuePlayer struct {
	cfg     config.CueConfig
	rate    beep.SampleRate
	enabled bool
	volume  float64

	ready  bool
	failed bool
}

func newCuePlayer(cfg config.CueConfig, enabled bool, volume float64) *cuePlayer {
	return &cuePlayer{
		cfg:     cfg,
		rate:    beep.SampleRate(config.CueSampleRate),
		enabled: enabled,
		volume:  clamp01(volume),
	}
}

func (c *cuePlayer) SetEnabled(enabled bool)  { c.enabled = enabled }
func (c *cuePlayer) SetVolume(volume float64) { c.volume = clamp01(volume) }

// streamer builds the cue for node index at the current volume.
func (c *cuePlayer) streamer(index int) beep.Streamer {
	return &effects.Volume{
		Streamer: newTone(c.rate, noteFrequency(c.cfg.BaseFrequency, index), c.cfg.Duration),
		Base:     2,
		Volume:   math.Log2(math.Max(c.volume, 1e-3)),
		Silent:   c.volume == 0,
	}
}

func (c *cuePlayer) Play(index int) {
	if !c.enabled || c.failed {
		return
	}
	if !c.ready {
		if err := speaker.Init(c.rate, c.rate.N(time.Second/20)); err != nil {
			log.Printf("[Cue] Warning: speaker unavailable: %v (sound disabled)", err)
			c.failed = true
			return
		}
		c.ready = true
	}
	speaker.Play(c.streamer(index))
}

func (c *cuePlayer) Close() {
	if !c.ready {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
