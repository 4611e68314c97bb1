// Package sound synthesizes the notification chime. It lives apart from
// package notify so that only the application links the audio backend.
package sound

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const chimeSampleRate = beep.SampleRate(44100)

// Chime is a short two-tone sound played alongside notifications. It is
// synthesized, so no audio assets ship with the binary.
type Chime struct {
	volume float64
	logger *log.Logger

	initOnce    sync.Once
	disabled    bool
	buffer      *beep.Buffer
	speakerLock sync.Mutex
}

// NewChime creates a chime. Volume follows effects.Volume with base 2:
// 0 is unchanged, -1 halves, 1 doubles.
func NewChime(volume float64, logger *log.Logger) *Chime {
	if logger == nil {
		logger = log.Default()
	}
	return &Chime{volume: volume, logger: logger}
}

func (c *Chime) init() {
	if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10)); err != nil {
		c.logger.Warn("audio disabled: failed to initialize speaker", "err", err)
		c.disabled = true
		return
	}

	format := beep.Format{SampleRate: chimeSampleRate, NumChannels: 2, Precision: 2}
	buffer := beep.NewBuffer(format)
	for _, freq := range []float64{880, 660} {
		tone, err := generators.SineTone(chimeSampleRate, freq)
		if err != nil {
			c.logger.Warn("audio disabled: failed to generate tone", "freq", freq, "err", err)
			c.disabled = true
			return
		}
		buffer.Append(beep.Take(chimeSampleRate.N(150*time.Millisecond), tone))
	}
	c.buffer = buffer
}

// Play starts the chime without waiting for it to finish.
func (c *Chime) Play() {
	c.initOnce.Do(c.init)
	if c.disabled {
		return
	}

	c.speakerLock.Lock()
	defer c.speakerLock.Unlock()

	speaker.Play(&effects.Volume{
		Streamer: c.buffer.Streamer(0, c.buffer.Len()),
		Base:     2,
		Volume:   c.volume,
		Silent:   false,
	})
}
