package audio

import "math"

// NoteParams shapes a single note: an ADSR envelope plus an output
// amplitude. The zero value is silence-shaped; start from DefaultNote
// and override.
type NoteParams struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
	Amp     float64
}

// DefaultNote returns the note-shaping defaults used across the
// recipe library.
func DefaultNote() NoteParams {
	return NoteParams{Attack: 0.005, Decay: 0.05, Sustain: 0.70, Release: 0.08, Amp: 1.0}
}

func (p NoteParams) envelope() ADSR {
	return ADSR{Attack: p.Attack, Decay: p.Decay, Sustain: p.Sustain, Release: p.Release}
}

// Oscillator is any constant-pitch generator, e.g. (*Synth).Sine or
// (*Synth).Triangle as a method value.
type Oscillator func(freq, dur float64) Buffer

// Note renders one enveloped note from an oscillator.
func (s *Synth) Note(osc Oscillator, freq, dur float64, p NoteParams) Buffer {
	if math.IsNaN(p.Amp) || math.IsInf(p.Amp, 0) {
		return s.fail("note: amplitude must be finite, got %v", p.Amp)
	}
	return s.ADSR(osc(freq, dur), p.envelope()).Scale(p.Amp)
}

// FMNote renders one enveloped percussive FM tone.
func (s *Synth) FMNote(freq, dur float64, fm FMParams, p NoteParams) Buffer {
	if math.IsNaN(p.Amp) || math.IsInf(p.Amp, 0) {
		return s.fail("fm note: amplitude must be finite, got %v", p.Amp)
	}
	return s.ADSR(s.FMTone(freq, dur, fm), p.envelope()).Scale(p.Amp)
}

// SweepNote renders an enveloped sine whose pitch glides linearly from
// freqStart to freqEnd over the note.
func (s *Synth) SweepNote(freqStart, freqEnd, dur float64, p NoteParams) Buffer {
	if !validFreq(freqStart) || !validFreq(freqEnd) || !validDur(dur) {
		return s.fail("sweep note: invalid frequencies %v..%v or duration %v", freqStart, freqEnd, dur)
	}
	if math.IsNaN(p.Amp) || math.IsInf(p.Amp, 0) {
		return s.fail("sweep note: amplitude must be finite, got %v", p.Amp)
	}
	n := s.Samples(dur)
	freq := make(Buffer, n)
	for i := range freq {
		t := float64(i) / float64(n)
		freq[i] = freqStart + (freqEnd-freqStart)*t
	}
	return s.ADSR(s.SineFrom(freq), p.envelope()).Scale(p.Amp)
}
