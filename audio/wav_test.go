package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
)

func TestNormalize_ScalesToCeiling(t *testing.T) {
	buf := Buffer{0.1, -0.5, 0.25}
	out := Normalize(buf, MasterCeiling)
	if !floatNear(out.Peak(), MasterCeiling, 1e-12) {
		t.Errorf("peak after normalize: expected %v, got %v", MasterCeiling, out.Peak())
	}
	if buf[1] != -0.5 {
		t.Error("Normalize mutated its input")
	}
}

func TestNormalize_SilenceStaysSilent(t *testing.T) {
	buf := make(Buffer, 1000)
	out := Normalize(buf, MasterCeiling)
	for i, v := range out {
		if v != 0 || math.IsNaN(v) {
			t.Fatalf("sample %d: expected 0, got %v", i, v)
		}
	}
}

func TestQuantize_Clamps(t *testing.T) {
	out := Quantize(Buffer{2.0, -2.0, 0, 1.0, -1.0})
	want := []int{32767, -32767, 0, 32767, -32767}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("sample %d: expected %d, got %d", i, want[i], out[i])
		}
	}
}

func TestExport_RoundTrip(t *testing.T) {
	s := newTestSynth(1)
	sig := s.Sine(440, 0.05).Scale(0.5)
	path := filepath.Join(t.TempDir(), "tone.wav")
	if err := Export(path, sig, SampleRate); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	d := wav.NewDecoder(f)
	pcm, err := d.FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}

	if d.NumChans != 1 {
		t.Errorf("channels: expected 1, got %d", d.NumChans)
	}
	if d.SampleRate != SampleRate {
		t.Errorf("sample rate: expected %d, got %d", SampleRate, d.SampleRate)
	}
	if d.BitDepth != 16 {
		t.Errorf("bit depth: expected 16, got %d", d.BitDepth)
	}
	if len(pcm.Data) != len(sig) {
		t.Fatalf("sample count: expected %d, got %d", len(sig), len(pcm.Data))
	}

	// The reconstructed peak must sit at the master ceiling, within
	// one quantization step.
	peak := 0
	for _, v := range pcm.Data {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	wantPeak := MasterCeiling * 32767
	if math.Abs(float64(peak)-wantPeak) > 1 {
		t.Errorf("reconstructed peak: expected %v±1, got %d", wantPeak, peak)
	}
}

func TestExport_SilenceProducesZeros(t *testing.T) {
	path := filepath.Join(t.TempDir(), "silence.wav")
	if err := Export(path, make(Buffer, 441), SampleRate); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	pcm, err := wav.NewDecoder(f).FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range pcm.Data {
		if v != 0 {
			t.Fatalf("sample %d: expected 0, got %d", i, v)
		}
	}
}

func TestExport_Idempotent(t *testing.T) {
	s := newTestSynth(5)
	sig := s.NoisePink(0.05)
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.wav")
	p2 := filepath.Join(dir, "b.wav")
	if err := Export(p1, sig, SampleRate); err != nil {
		t.Fatal(err)
	}
	if err := Export(p2, sig, SampleRate); err != nil {
		t.Fatal(err)
	}
	b1, err := os.ReadFile(p1)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := os.ReadFile(p2)
	if err != nil {
		t.Fatal(err)
	}
	if string(b1) != string(b2) {
		t.Error("exporting the same buffer twice produced different files")
	}
}

func TestWriteWAV_BadPath(t *testing.T) {
	err := WriteWAV(filepath.Join(t.TempDir(), "missing", "out.wav"), Buffer{0}, SampleRate)
	if err == nil {
		t.Error("expected an error for an unwritable path")
	}
}
