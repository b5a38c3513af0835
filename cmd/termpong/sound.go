package main

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/milk9111/pong/match"
)

const sampleRate = beep.SampleRate(44100)

type blip struct {
	freq float64
	dur  time.Duration
}

var blips = map[match.EventKind]blip{
	match.EventWallBounce: {freq: 440, dur: 30 * time.Millisecond},
	match.EventPaddleHit:  {freq: 880, dur: 50 * time.Millisecond},
	match.EventGoal:       {freq: 220, dur: 200 * time.Millisecond},
	match.EventMatchOver:  {freq: 660, dur: 400 * time.Millisecond},
}

// blipper plays short sine tones through the beep speaker. A zero blipper
// is silent.
type blipper struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func newBlipper() (*blipper, error) {
	b := &blipper{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return b, err
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return b, nil
}

func (b *blipper) play(kind match.EventKind) {
	if b == nil {
		return
	}
	spec, ok := blips[kind]
	if !ok {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return
	}
	sine, err := generators.SineTone(sampleRate, spec.freq)
	if err != nil {
		return
	}
	speaker.Lock()
	b.mixer.Add(beep.Take(sampleRate.N(spec.dur), sine))
	speaker.Unlock()
}

func (b *blipper) close() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.initialized {
		return
	}
	speaker.Lock()
	b.mixer.Clear()
	speaker.Unlock()
	b.initialized = false
}
