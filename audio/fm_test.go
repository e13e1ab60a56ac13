package audio

import (
	"math"
	"testing"
)

func TestFMTone_Length(t *testing.T) {
	s := newTestSynth(1)
	buf := s.FMTone(440, 0.13, DefaultFM())
	if want := s.Samples(0.13); len(buf) != want {
		t.Errorf("expected %d samples, got %d", want, len(buf))
	}
}

func TestFMTone_ZeroDepthIsPureSine(t *testing.T) {
	s := newTestSynth(1)
	const freq, dur = 440.0, 0.05
	buf := s.FMTone(freq, dur, FMParams{Ratio: 2, Depth: 0, Decay: 0.5})
	n := len(buf)
	for i, v := range buf {
		ts := dur * float64(i) / float64(n)
		want := math.Sin(2 * math.Pi * freq * ts)
		if !floatNear(v, want, 1e-9) {
			t.Fatalf("sample %d: expected %v, got %v", i, want, v)
		}
	}
}

func TestFMTone_ModulationDecays(t *testing.T) {
	s := newTestSynth(1)
	// With heavy modulation the start of the note deviates from a pure
	// sine far more than the tail does.
	const freq, dur = 220.0, 0.5
	fm := s.FMTone(freq, dur, FMParams{Ratio: 2, Depth: 4, Decay: 0.15})
	pure := s.FMTone(freq, dur, FMParams{Ratio: 2, Depth: 0, Decay: 0.15})
	n := len(fm)
	head, tail := 0.0, 0.0
	for i := 0; i < n/10; i++ {
		head += math.Abs(fm[i] - pure[i])
		tail += math.Abs(fm[n-1-i] - pure[n-1-i])
	}
	if head <= tail {
		t.Errorf("modulation should decay over the note: head diff %v, tail diff %v", head, tail)
	}
}

func TestFMPad_DeterministicAndSized(t *testing.T) {
	a := newTestSynth(1).FMPad(98, 0.5, DefaultPad())
	b := newTestSynth(2).FMPad(98, 0.5, DefaultPad())
	if len(a) != newTestSynth(1).Samples(0.5) {
		t.Fatalf("unexpected pad length %d", len(a))
	}
	// Pads use no randomness, so even differently seeded synths agree.
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pad output diverged at sample %d", i)
		}
	}
}

func TestFM_InvalidParams(t *testing.T) {
	s := newTestSynth(1)
	s.FMTone(440, 0.1, FMParams{Ratio: math.NaN(), Depth: 1, Decay: 0.5})
	if s.Err() == nil {
		t.Error("expected an error for NaN modulation ratio")
	}
	s2 := newTestSynth(1)
	s2.FMPad(-440, 0.1, DefaultPad())
	if s2.Err() == nil {
		t.Error("expected an error for a negative carrier")
	}
}
