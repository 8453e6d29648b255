package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
)

// tone is a sine streamer with a linear attack and release so it starts and
// stops without clicks.
type tone struct {
	freq   float64
	phase  float64
	pos    int
	total  int
	fade   int
	volume float64
	rate   beep.SampleRate
}

func newTone(freq float64, d time.Duration, rate beep.SampleRate, volume float64) *tone {
	total := rate.N(d)
	return &tone{
		freq:   freq,
		total:  total,
		fade:   total / 5,
		volume: volume,
		rate:   rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		v := math.Sin(2*math.Pi*t.phase) * t.volume * t.envelope()
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) envelope() float64 {
	if t.fade == 0 {
		return 1
	}
	if t.pos < t.fade {
		return float64(t.pos) / float64(t.fade)
	}
	if left := t.total - t.pos; left < t.fade {
		return float64(left) / float64(t.fade)
	}
	return 1
}

func (t *tone) Err() error { return nil }

// Pitch maps an integer factor onto a twelve-tone scale starting at base.
// Negative integers wrap the same way as positive ones.
func Pitch(base float64, n int64) float64 {
	step := n % 12
	if step < 0 {
		step += 12
	}
	return base * math.Pow(2, float64(step)/12)
}

// Chime plays a short tone through the default speaker. The speaker is only
// opened the first time the chime is enabled.
type Chime struct {
	rate     beep.SampleRate
	base     float64
	duration time.Duration
	volume   float64

	enabled bool
	ready   bool
}

// NewChime creates a chime; it stays silent until Enable succeeds.
func NewChime(sampleRate int, base float64, duration time.Duration, volume float64) *Chime {
	return &Chime{
		rate:     beep.SampleRate(sampleRate),
		base:     base,
		duration: duration,
		volume:   volume,
	}
}

// Enable opens the speaker if needed.
func (c *Chime) Enable() error {
	if !c.ready {
		if err := speaker.Init(c.rate, c.rate.N(time.Second/20)); err != nil {
			return errors.Wrap(err, "init speaker")
		}
		c.ready = true
	}
	c.enabled = true
	return nil
}

// Disable silences the chime and drops anything still queued.
func (c *Chime) Disable() {
	c.enabled = false
	if c.ready {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
}

// Enabled reports whether Play makes a sound.
func (c *Chime) Enabled() bool {
	return c.enabled
}

// Toggle flips the chime and reports the new setting.
func (c *Chime) Toggle() (bool, error) {
	if c.enabled {
		c.Disable()
		return false, nil
	}
	if err := c.Enable(); err != nil {
		return false, err
	}
	return true, nil
}

// Play sounds the tone for integer n.
func (c *Chime) Play(n int64) {
	if !c.enabled || !c.ready {
		return
	}
	speaker.Play(c.Tone(n))
}

// Tone returns the streamer Play would queue for n.
func (c *Chime) Tone(n int64) beep.Streamer {
	return newTone(Pitch(c.base, n), c.duration, c.rate, c.volume)
}
