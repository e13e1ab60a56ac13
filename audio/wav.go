package audio

import (
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// MasterCeiling is the peak amplitude every exported buffer is
// normalized to before quantization.
const MasterCeiling = 0.82

const pcmMax = 32767

// Normalize scales sig so its peak equals ceiling. An all-zero buffer
// is returned as an untouched copy — no divide by zero, no NaNs.
func Normalize(sig Buffer, ceiling float64) Buffer {
	peak := sig.Peak()
	if peak == 0 {
		return sig.Clone()
	}
	return sig.Scale(ceiling / peak)
}

// Quantize converts float samples to signed 16-bit PCM values,
// clamping to [-32767, 32767].
func Quantize(sig Buffer) []int {
	out := make([]int, len(sig))
	for i, v := range sig {
		q := v * pcmMax
		switch {
		case q > pcmMax:
			out[i] = pcmMax
		case q < -pcmMax:
			out[i] = -pcmMax
		default:
			out[i] = int(q)
		}
	}
	return out
}

// WriteWAV writes sig as a mono 16-bit PCM WAV file at the given
// sample rate. The buffer is written as-is; use Export for the full
// normalize/quantize pipeline.
func WriteWAV(path string, sig Buffer, rate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("wav: create %s: %w", path, err)
	}
	enc := wav.NewEncoder(f, rate, 16, 1, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: rate},
		Data:           Quantize(sig),
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("wav: write %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("wav: finalize %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("wav: close %s: %w", path, err)
	}
	return nil
}

// Export peak-normalizes sig to the master ceiling and writes it as a
// mono 16-bit WAV. Idempotent: identical input produces an identical
// file.
func Export(path string, sig Buffer, rate int) error {
	return WriteWAV(path, Normalize(sig, MasterCeiling), rate)
}
