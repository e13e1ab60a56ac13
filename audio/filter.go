package audio

import (
	"fmt"
	"math"
)

// Lowpass is a one-pole recursive RC lowpass filter:
//
//	y[i] = y[i-1] + alpha * (x[i] - y[i-1])
//
// The recurrence carries state across samples, so a buffer must be
// processed in a single sequential pass.
type Lowpass struct {
	alpha float64
	y     float64
}

// NewLowpass creates a lowpass with the given cutoff in Hz.
func NewLowpass(cutoff, rate float64) (*Lowpass, error) {
	if !(cutoff > 0) || math.IsInf(cutoff, 0) {
		return nil, fmt.Errorf("lowpass: cutoff must be a positive finite frequency, got %v", cutoff)
	}
	rc := 1 / (2 * math.Pi * cutoff)
	dt := 1 / rate
	return &Lowpass{alpha: dt / (rc + dt)}, nil
}

// Reset clears the filter state.
func (f *Lowpass) Reset() {
	f.y = 0
}

// ProcessSample advances the recurrence by one sample.
func (f *Lowpass) ProcessSample(x float64) float64 {
	f.y += f.alpha * (x - f.y)
	return f.y
}

// Process filters the whole buffer, returning a new buffer of the same
// length. Filter state carries over from any previous calls; Reset for
// an independent pass.
func (f *Lowpass) Process(in Buffer) Buffer {
	out := make(Buffer, len(in))
	for i, x := range in {
		out[i] = f.ProcessSample(x)
	}
	return out
}

// Lowpass filters sig with a fresh one-pole lowpass at the given
// cutoff. Used both for tone shaping and for taming noise transients.
func (s *Synth) Lowpass(sig Buffer, cutoff float64) Buffer {
	f, err := NewLowpass(cutoff, s.rate)
	if err != nil {
		return s.fail("%v", err)
	}
	return f.Process(sig)
}
