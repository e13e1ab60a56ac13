package audio

import "math"

// Buffer is a mono sample buffer, implicitly indexed by time at the
// synth's sample rate.
type Buffer []float64

// Clone returns a deep copy of the buffer.
func (b Buffer) Clone() Buffer {
	out := make(Buffer, len(b))
	copy(out, b)
	return out
}

// Scale returns a new buffer with every sample multiplied by gain.
func (b Buffer) Scale(gain float64) Buffer {
	out := make(Buffer, len(b))
	for i, v := range b {
		out[i] = v * gain
	}
	return out
}

// Peak returns the largest absolute sample value.
func (b Buffer) Peak() float64 {
	peak := 0.0
	for _, v := range b {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}
	return peak
}

// RMS returns the root-mean-square level of the buffer.
func (b Buffer) RMS() float64 {
	if len(b) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range b {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(b)))
}

// Concat lays buffers end to end. Output length is the sum of the
// input lengths. Inputs are not mutated.
func Concat(bufs ...Buffer) Buffer {
	total := 0
	for _, b := range bufs {
		total += len(b)
	}
	out := make(Buffer, 0, total)
	for _, b := range bufs {
		out = append(out, b...)
	}
	return out
}

// Overlay sums buffers elementwise, zero-padding every operand to the
// length of the longest one. Inputs are not mutated.
func Overlay(bufs ...Buffer) Buffer {
	longest := 0
	for _, b := range bufs {
		if len(b) > longest {
			longest = len(b)
		}
	}
	out := make(Buffer, longest)
	for _, b := range bufs {
		for i, v := range b {
			out[i] += v
		}
	}
	return out
}

// OverlayAt mixes src into base starting at the given sample offset,
// zero-extending the result when src reaches past the end of base.
// A negative offset is treated as 0. Inputs are not mutated.
func OverlayAt(base, src Buffer, offset int) Buffer {
	if offset < 0 {
		offset = 0
	}
	length := len(base)
	if end := offset + len(src); end > length {
		length = end
	}
	out := make(Buffer, length)
	copy(out, base)
	for i, v := range src {
		out[offset+i] += v
	}
	return out
}
