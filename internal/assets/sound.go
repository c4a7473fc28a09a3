package assets

import (
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
)

// SampleRate is the output rate of every sound.
const SampleRate beep.SampleRate = 44100

// pcmFormat is 16-bit stereo, the layout ebiten's audio players expect.
var pcmFormat = beep.Format{SampleRate: SampleRate, NumChannels: 2, Precision: 2}

// Zap synthesis parameters.
const (
	zapDuration  = 180 * time.Millisecond
	zapAttack    = 5 * time.Millisecond
	zapRelease   = 140 * time.Millisecond
	zapStartFreq = 1800.0
	zapEndFreq   = 220.0
)

// DecodeWAV reads a WAV stream and returns it as PCM at SampleRate.
func DecodeWAV(r io.Reader) ([]byte, error) {
	s, format, err := wav.Decode(r)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	var stream beep.Streamer = s
	if format.SampleRate != SampleRate {
		stream = beep.Resample(4, format.SampleRate, SampleRate, s)
	}

	pcm := renderPCM(stream)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("assets: stream wav: %w", err)
	}
	return pcm, nil
}

// GenerateZap synthesizes the catch sound: a falling square sweep mixed with
// a noise burst. The seed drives the noise so output is reproducible.
func GenerateZap(seed int64) []byte {
	sweep := newEnvelope(&sweepOscillator{
		from:  zapStartFreq,
		to:    zapEndFreq,
		total: SampleRate.N(zapDuration),
	}, zapDuration, zapAttack, zapRelease)

	noise := newEnvelope(&noiseSource{
		rng:   rand.New(rand.NewSource(seed)),
		total: SampleRate.N(zapDuration / 3),
	}, zapDuration/3, 0, zapDuration/3)

	mixed := beep.Mix(volume(sweep, 0.45), volume(noise, 0.25))
	return renderPCM(beep.Take(SampleRate.N(zapDuration), mixed))
}

// renderPCM drains s into signed 16-bit stereo bytes.
func renderPCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	frame := make([]byte, pcmFormat.Width())
	for {
		n, ok := s.Stream(buf)
		for _, sample := range buf[:n] {
			pcmFormat.EncodeSigned(frame, sample)
			out = append(out, frame...)
		}
		if !ok {
			return out
		}
	}
}

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// sweepOscillator is a square wave whose frequency falls exponentially.
type sweepOscillator struct {
	from, to float64
	phase    float64
	pos      int
	total    int
}

func (o *sweepOscillator) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}
		t := float64(o.pos) / float64(o.total)
		freq := o.from * math.Pow(o.to/o.from, t)

		val := -1.0
		if o.phase < 0.5 {
			val = 1.0
		}
		samples[i] = [2]float64{val, val}

		o.phase += freq / float64(SampleRate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *sweepOscillator) Err() error { return nil }

type noiseSource struct {
	rng   *rand.Rand
	pos   int
	total int
}

func (n *noiseSource) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.pos >= n.total {
			return i, i > 0
		}
		v := n.rng.Float64()*2 - 1
		samples[i] = [2]float64{v, v}
		n.pos++
	}
	return len(samples), true
}

func (n *noiseSource) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	s       beep.Streamer
	pos     int
	attack  int
	release int
	total   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration) beep.Streamer {
	return &envelope{
		s:       s,
		attack:  SampleRate.N(attack),
		release: SampleRate.N(release),
		total:   SampleRate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	n, ok := e.s.Stream(samples)
	for i := range samples[:n] {
		vol := 1.0
		if e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; left < e.release {
			vol = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }
