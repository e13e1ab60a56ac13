package sfx

import "math"

// Hz converts a MIDI note number to frequency (A4 = 69 = 440 Hz).
func Hz(midi int) float64 {
	return 440.0 * math.Pow(2, float64(midi-69)/12)
}

// MIDI note numbers used by the recipe library.
const (
	G2 = 43
	A2 = 45
	B2 = 47

	C3  = 48
	D3  = 50
	E3  = 52
	F3  = 53
	G3  = 55
	A3  = 57
	Bb3 = 58
	B3  = 59

	C4 = 60
	D4 = 62
	E4 = 64
	F4 = 65
	G4 = 67
	A4 = 69
	B4 = 71

	C5 = 72
	D5 = 74
	E5 = 76
	F5 = 77
	G5 = 79
	A5 = 81
	B5 = 83

	C6 = 84
)
