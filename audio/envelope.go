package audio

import (
	"fmt"
	"math"
)

// ADSR is a four-stage attack/decay/sustain/release amplitude
// envelope. Attack, Decay and Release are in seconds; Sustain is a
// linear amplitude fraction in [0, 1].
type ADSR struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
}

// DefaultADSR returns the library-wide envelope defaults.
func DefaultADSR() ADSR {
	return ADSR{Attack: 0.010, Decay: 0.050, Sustain: 0.70, Release: 0.10}
}

func (e ADSR) validate() error {
	for _, v := range []float64{e.Attack, e.Decay, e.Release} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("adsr: stage times must be finite and non-negative, got %+v", e)
		}
	}
	if e.Sustain < 0 || e.Sustain > 1 || math.IsNaN(e.Sustain) {
		return fmt.Errorf("adsr: sustain level must be in [0, 1], got %v", e.Sustain)
	}
	return nil
}

// Apply multiplies sig elementwise by the envelope curve and returns a
// new buffer of the same length.
//
// Stage lengths are clamped against the buffer: attack first, then
// decay against the remainder, and release against whatever is left
// after the sustain start, so an envelope longer than the buffer
// degenerates gracefully instead of indexing out of bounds. The attack
// ramp is shaped by t^0.5 (snappy rise), decay by a 1.4 power and
// release by a 1.6 power applied to the linearly interpolated level.
func (e ADSR) Apply(sig Buffer, rate float64) Buffer {
	n := len(sig)
	env := make(Buffer, n)

	a := clampStage(e.Attack*rate, n)
	d := clampStage(e.Decay*rate, n-a)
	r := clampStage(e.Release*rate, n)
	sStart := a + d
	sEnd := n - r
	if sEnd < sStart {
		sEnd = sStart
	}

	for i := 0; i < a; i++ {
		env[i] = math.Pow(ramp(i, a, 0, 1), 0.5)
	}
	for i := 0; i < d; i++ {
		env[a+i] = math.Pow(ramp(i, d, 1, e.Sustain), 1.4)
	}
	for i := sStart; i < sEnd; i++ {
		env[i] = e.Sustain
	}
	rem := n - sEnd
	if rem > r {
		rem = r
	}
	for i := 0; i < rem; i++ {
		env[sEnd+i] = math.Pow(ramp(i, rem, e.Sustain, 0), 1.6)
	}

	out := make(Buffer, n)
	for i, v := range sig {
		out[i] = v * env[i]
	}
	return out
}

// ADSR applies an envelope through the synth so invalid parameters are
// recorded as configuration errors.
func (s *Synth) ADSR(sig Buffer, e ADSR) Buffer {
	if err := e.validate(); err != nil {
		return s.fail("%v", err)
	}
	return e.Apply(sig, s.rate)
}

func clampStage(samples float64, limit int) int {
	v := int(samples)
	if v > limit {
		v = limit
	}
	if v < 0 {
		v = 0
	}
	return v
}

// ramp returns the i-th of count values linearly spaced from `from` to
// `to`, both endpoints included. A single-element ramp is just `from`.
func ramp(i, count int, from, to float64) float64 {
	if count <= 1 {
		return from
	}
	if i == count-1 {
		return to
	}
	return from + (to-from)*float64(i)/float64(count-1)
}
