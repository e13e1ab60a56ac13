package audio

import "math"

// Harmonic counts for the band-limited oscillators. Keeping the series
// finite avoids aliasing above the Nyquist frequency.
const (
	squareHarmonics     = 24
	softSquareHarmonics = 8
	sawtoothHarmonics   = 20
)

// Pink noise shaping coefficients, Paul Kellet's economy approximation.
// The exact values matter: tests assume bit-identical output for a
// fixed seed, and the spectral tilt depends on them.
const (
	pinkA0, pinkB0 = 0.99886, 0.0555179
	pinkA1, pinkB1 = 0.99332, 0.0750759
	pinkA2, pinkB2 = 0.96900, 0.1538520
	pinkA3, pinkB3 = 0.86650, 0.3104856
	pinkDirect     = 0.5329522
	pinkGain       = 0.11
)

// phase integrates a per-sample frequency array into instantaneous
// phase in radians: phase[i] = cumsum(freq)[0..i] / rate * 2π.
func (s *Synth) phase(freq Buffer) Buffer {
	out := make(Buffer, len(freq))
	sum := 0.0
	for i, f := range freq {
		sum += f
		out[i] = sum / s.rate * 2 * math.Pi
	}
	return out
}

// constPhase returns the accumulated phase of a constant frequency
// over the given duration.
func (s *Synth) constPhase(freq, dur float64) Buffer {
	n := s.Samples(dur)
	freqs := make(Buffer, n)
	for i := range freqs {
		freqs[i] = freq
	}
	return s.phase(freqs)
}

// Sine renders a pure sine tone.
func (s *Synth) Sine(freq, dur float64) Buffer {
	if !validFreq(freq) || !validDur(dur) {
		return s.fail("sine: invalid frequency %v or duration %v", freq, dur)
	}
	ph := s.constPhase(freq, dur)
	out := make(Buffer, len(ph))
	for i, p := range ph {
		out[i] = math.Sin(p)
	}
	return out
}

// blSquare sums odd harmonics sin(k·phase)/k up to the limit, scaled
// by 4/π — a band-limited square wave.
func blSquare(ph Buffer, harmonics int) Buffer {
	out := make(Buffer, len(ph))
	for i, p := range ph {
		sum := 0.0
		for k := 1; k <= harmonics; k += 2 {
			sum += math.Sin(float64(k)*p) / float64(k)
		}
		out[i] = sum * (4 / math.Pi)
	}
	return out
}

// Square renders a band-limited square wave.
func (s *Synth) Square(freq, dur float64) Buffer {
	if !validFreq(freq) || !validDur(dur) {
		return s.fail("square: invalid frequency %v or duration %v", freq, dur)
	}
	return blSquare(s.constPhase(freq, dur), squareHarmonics)
}

// SoftSquare renders a square with fewer harmonics — a warmer,
// SNES-like timbre.
func (s *Synth) SoftSquare(freq, dur float64) Buffer {
	if !validFreq(freq) || !validDur(dur) {
		return s.fail("soft square: invalid frequency %v or duration %v", freq, dur)
	}
	return blSquare(s.constPhase(freq, dur), softSquareHarmonics)
}

// Sawtooth renders a band-limited sawtooth wave: alternating-sign
// harmonics sin(k·phase)/k for k = 1..20, scaled by 2/π.
func (s *Synth) Sawtooth(freq, dur float64) Buffer {
	if !validFreq(freq) || !validDur(dur) {
		return s.fail("sawtooth: invalid frequency %v or duration %v", freq, dur)
	}
	ph := s.constPhase(freq, dur)
	out := make(Buffer, len(ph))
	for i, p := range ph {
		sum := 0.0
		sign := 1.0
		for k := 1; k <= sawtoothHarmonics; k++ {
			sum += sign * math.Sin(float64(k)*p) / float64(k)
			sign = -sign
		}
		out[i] = sum * (2 / math.Pi)
	}
	return out
}

// Triangle renders a triangle wave by folding the phase into a unit
// ramp and mapping it to 2|2·frac − 1| − 1.
func (s *Synth) Triangle(freq, dur float64) Buffer {
	if !validFreq(freq) || !validDur(dur) {
		return s.fail("triangle: invalid frequency %v or duration %v", freq, dur)
	}
	ph := s.constPhase(freq, dur)
	out := make(Buffer, len(ph))
	for i, p := range ph {
		frac := math.Mod(p/(2*math.Pi), 1)
		out[i] = 2*math.Abs(2*frac-1) - 1
	}
	return out
}

// NoiseWhite renders uniform white noise in [-1, 1) from the synth's
// seeded stream.
func (s *Synth) NoiseWhite(dur float64) Buffer {
	if !validDur(dur) {
		return s.fail("white noise: invalid duration %v", dur)
	}
	out := make(Buffer, s.Samples(dur))
	for i := range out {
		out[i] = s.rng.RandomBipolar()
	}
	return out
}

// NoisePink renders pink (1/f) noise: white noise through Kellet's
// 4-state recursive shaping filter. The recurrence is inherently
// sequential; each output depends on the previous filter state.
func (s *Synth) NoisePink(dur float64) Buffer {
	if !validDur(dur) {
		return s.fail("pink noise: invalid duration %v", dur)
	}
	out := make(Buffer, s.Samples(dur))
	var b0, b1, b2, b3 float64
	for i := range out {
		x := s.rng.RandomBipolar()
		b0 = pinkA0*b0 + x*pinkB0
		b1 = pinkA1*b1 + x*pinkB1
		b2 = pinkA2*b2 + x*pinkB2
		b3 = pinkA3*b3 + x*pinkB3
		out[i] = (b0 + b1 + b2 + b3 + x*pinkDirect) * pinkGain
	}
	return out
}

// Silence renders an all-zero buffer of the requested length.
func (s *Synth) Silence(dur float64) Buffer {
	if !validDur(dur) {
		return s.fail("silence: invalid duration %v", dur)
	}
	return make(Buffer, s.Samples(dur))
}

// FreqEnvelope builds a per-sample frequency array by linear
// interpolation through (time, frequency) breakpoints, with times
// normalized to [0, 1] across the duration. Used for pitch-swept
// effects like the page-turn whoosh.
func (s *Synth) FreqEnvelope(dur float64, times, freqs []float64) Buffer {
	if !validDur(dur) {
		return s.fail("freq envelope: invalid duration %v", dur)
	}
	if len(times) != len(freqs) || len(times) == 0 {
		return s.fail("freq envelope: need matching non-empty breakpoint slices, got %d times and %d freqs",
			len(times), len(freqs))
	}
	for i, f := range freqs {
		if !validFreq(f) {
			return s.fail("freq envelope: invalid frequency %v at breakpoint %d", f, i)
		}
	}
	n := s.Samples(dur)
	out := make(Buffer, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = interp(t, times, freqs)
	}
	return out
}

// interp is piecewise-linear interpolation with end clamping.
func interp(t float64, xs, ys []float64) float64 {
	if t <= xs[0] {
		return ys[0]
	}
	last := len(xs) - 1
	if t >= xs[last] {
		return ys[last]
	}
	for i := 1; i <= last; i++ {
		if t <= xs[i] {
			span := xs[i] - xs[i-1]
			if span == 0 {
				return ys[i]
			}
			frac := (t - xs[i-1]) / span
			return ys[i-1] + (ys[i]-ys[i-1])*frac
		}
	}
	return ys[last]
}

// SineFrom renders a sine following a per-sample frequency array.
func (s *Synth) SineFrom(freq Buffer) Buffer {
	ph := s.phase(freq)
	out := make(Buffer, len(ph))
	for i, p := range ph {
		out[i] = math.Sin(p)
	}
	return out
}
