package audio

import "math"

// Pad vibrato: a slow LFO perturbing the carrier frequency by a small
// fraction of itself.
const (
	padVibratoRateHz = 5.5
	padVibratoDepth  = 0.004
)

// FMParams configures phase-modulation synthesis. The modulator runs
// at Ratio times the carrier frequency; Depth is the modulation index.
// Decay is the modulation envelope time constant as a fraction of the
// note duration (percussive tones only, ignored by pads).
type FMParams struct {
	Ratio float64
	Depth float64
	Decay float64
}

// DefaultFM returns the percussive FM defaults.
func DefaultFM() FMParams {
	return FMParams{Ratio: 2.0, Depth: 2.5, Decay: 0.5}
}

// DefaultPad returns the pad FM defaults.
func DefaultPad() FMParams {
	return FMParams{Ratio: 1.5, Depth: 1.0}
}

func (p FMParams) valid() bool {
	for _, v := range []float64{p.Ratio, p.Depth, p.Decay} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return p.Ratio >= 0 && p.Decay >= 0
}

// FMTone renders a percussive phase-modulated tone: the modulation
// depth decays exponentially over the note, so the timbre starts
// bright and mellows out — DX-style bells and mallets.
func (s *Synth) FMTone(carrier, dur float64, p FMParams) Buffer {
	if !validFreq(carrier) || !validDur(dur) {
		return s.fail("fm tone: invalid carrier %v or duration %v", carrier, dur)
	}
	if !p.valid() {
		return s.fail("fm tone: invalid params %+v", p)
	}
	n := s.Samples(dur)
	out := make(Buffer, n)
	modFreq := carrier * p.Ratio
	tau := dur*p.Decay + 1e-9
	for i := range out {
		t := dur * float64(i) / float64(n)
		mod := math.Sin(2*math.Pi*modFreq*t) * p.Depth * math.Exp(-t/tau)
		out[i] = math.Sin(2*math.Pi*carrier*t + mod)
	}
	return out
}

// FMPad renders a sustained pad tone: the carrier frequency carries a
// slow 5.5 Hz vibrato, and a constant-depth modulator (no decay) is
// accumulated independently at carrier×Ratio.
func (s *Synth) FMPad(carrier, dur float64, p FMParams) Buffer {
	if !validFreq(carrier) || !validDur(dur) {
		return s.fail("fm pad: invalid carrier %v or duration %v", carrier, dur)
	}
	if !p.valid() {
		return s.fail("fm pad: invalid params %+v", p)
	}
	n := s.Samples(dur)
	freq := make(Buffer, n)
	for i := range freq {
		t := dur * float64(i) / float64(n)
		freq[i] = carrier + math.Sin(2*math.Pi*padVibratoRateHz*t)*padVibratoDepth*carrier
	}
	carrierPhase := s.phase(freq)
	modPhase := s.constPhase(carrier*p.Ratio, dur)
	out := make(Buffer, n)
	for i := range out {
		out[i] = math.Sin(carrierPhase[i] + math.Sin(modPhase[i])*p.Depth)
	}
	return out
}
