package assets

import (
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// AudioContext lazily creates the process-wide audio context. Ebitengine
// allows only one.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

// NewTonePlayer synthesises a short sine blip and wraps it in a player.
func NewTonePlayer(freq float64, d time.Duration, volume float64) *audio.Player {
	p := AudioContext().NewPlayerFromBytes(TonePCM(freq, d))
	p.SetVolume(volume)
	return p
}

// TonePCM renders a sine tone as 16-bit little-endian stereo with a linear
// fade-out so the blip does not click.
func TonePCM(freq float64, d time.Duration) []byte {
	n := int(float64(SampleRate) * d.Seconds())
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		env := 1 - float64(i)/float64(n)
		v := int16(math.Sin(2*math.Pi*freq*float64(i)/SampleRate) * env * 0.3 * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(v))
	}
	return out
}
