// Package audio is an offline sound synthesis engine: phase-accurate
// oscillators, FM synthesis, ADSR envelopes, a one-pole lowpass, a
// Schroeder reverb network and a normalize/quantize WAV export stage.
// Everything renders into in-memory float64 buffers; nothing touches
// an audio device.
package audio

import (
	"fmt"
	"math"

	"github.com/simukka/sfxgen/common"
)

// SampleRate is the fixed sample rate used across the whole pipeline.
const SampleRate = 44100

// Synth renders sample buffers at a fixed rate. Noise draws from the
// explicit RNG handed in at construction, so renders are reproducible
// and independent synths can run concurrently.
//
// Invalid parameters (negative or non-finite durations, frequencies,
// cutoffs) are configuration errors: the synth records the first one,
// returns empty buffers from then on, and surfaces it via Err. That
// keeps recipe code free of per-call error plumbing while still
// failing the whole render instead of propagating NaNs.
type Synth struct {
	rate float64
	rng  *common.RNG
	err  error
}

// NewSynth creates a synth rendering at the given sample rate.
func NewSynth(rate float64, rng *common.RNG) *Synth {
	s := &Synth{rate: rate, rng: rng}
	if !(rate > 0) || math.IsInf(rate, 0) {
		s.err = fmt.Errorf("synth: sample rate must be a positive finite number, got %v", rate)
	}
	if rng == nil {
		s.err = fmt.Errorf("synth: nil RNG")
	}
	return s
}

// Rate returns the sample rate.
func (s *Synth) Rate() float64 { return s.rate }

// Err returns the first configuration error recorded during rendering,
// or nil if every call so far was valid.
func (s *Synth) Err() error { return s.err }

// Samples returns the buffer length for a duration in seconds.
func (s *Synth) Samples(dur float64) int {
	return int(math.Round(dur * s.rate))
}

// fail records the first configuration error and yields an empty
// buffer so downstream transforms stay total.
func (s *Synth) fail(format string, args ...interface{}) Buffer {
	if s.err == nil {
		s.err = fmt.Errorf(format, args...)
	}
	return nil
}

func validDur(dur float64) bool {
	return dur >= 0 && !math.IsInf(dur, 0) && !math.IsNaN(dur)
}

func validFreq(freq float64) bool {
	return freq >= 0 && !math.IsInf(freq, 0) && !math.IsNaN(freq)
}
