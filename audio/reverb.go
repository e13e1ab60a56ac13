package audio

import (
	"fmt"
	"math"
)

// Schroeder network tuning. Four mutually detuned comb delays give the
// echo density; two short allpasses diffuse the tail.
var (
	combDelaySeconds    = [4]float64{0.0297, 0.0371, 0.0411, 0.0437}
	allpassDelaySeconds = [2]float64{0.0051, 0.0127}
)

const allpassCoeff = 0.5

// ReverbParams are the three 0-1 controls of the reverb: Room scales
// the comb delays and their feedback, Damping is the one-pole
// coefficient inside each comb's feedback path, Wet is the final
// dry/wet mix ratio.
type ReverbParams struct {
	Room    float64
	Wet     float64
	Damping float64
}

// Default wet levels for the two preset rooms.
const (
	DefaultLightWet = 0.22
	DefaultHallWet  = 0.38
)

// LightReverbParams is the small-room preset at the given wet mix.
func LightReverbParams(wet float64) ReverbParams {
	return ReverbParams{Room: 0.25, Wet: wet, Damping: 0.50}
}

// HallReverbParams is the large-hall preset at the given wet mix.
func HallReverbParams(wet float64) ReverbParams {
	return ReverbParams{Room: 0.55, Wet: wet, Damping: 0.35}
}

func (p ReverbParams) validate() error {
	for _, v := range []float64{p.Room, p.Wet, p.Damping} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return fmt.Errorf("reverb: room, wet and damping must be in [0, 1], got %+v", p)
		}
	}
	return nil
}

// comb is a feedback comb filter with a one-pole damping filter inside
// the feedback path. The circular buffer is read before it is written,
// so the output is the delayed echo.
type comb struct {
	buffer   []float64
	pos      int
	feedback float64
	damping  float64
	filt     float64
}

func newComb(delay int, feedback, damping float64) comb {
	if delay < 1 {
		delay = 1
	}
	return comb{
		buffer:   make([]float64, delay),
		feedback: feedback,
		damping:  damping,
	}
}

func (c *comb) processSample(x float64) float64 {
	out := c.buffer[c.pos]
	c.filt = out*(1-c.damping) + c.filt*c.damping
	c.buffer[c.pos] = x + c.filt*c.feedback
	c.pos++
	if c.pos >= len(c.buffer) {
		c.pos = 0
	}
	return out
}

func (c *comb) reset() {
	for i := range c.buffer {
		c.buffer[i] = 0
	}
	c.pos = 0
	c.filt = 0
}

// allpass is a Schroeder allpass diffuser with fixed coefficient 0.5.
type allpass struct {
	buffer []float64
	pos    int
}

func newAllpass(delay int) allpass {
	if delay < 1 {
		delay = 1
	}
	return allpass{buffer: make([]float64, delay)}
}

func (a *allpass) processSample(x float64) float64 {
	bv := a.buffer[a.pos]
	a.buffer[a.pos] = x + bv*allpassCoeff
	a.pos++
	if a.pos >= len(a.buffer) {
		a.pos = 0
	}
	return bv - x*allpassCoeff
}

func (a *allpass) reset() {
	for i := range a.buffer {
		a.buffer[i] = 0
	}
	a.pos = 0
}

// Reverb is a Schroeder network: four parallel combs into two cascaded
// allpasses, mixed with the dry signal. State persists across Process
// calls; Reset for an independent pass.
type Reverb struct {
	params    ReverbParams
	combs     [4]comb
	allpasses [2]allpass
}

// NewReverb builds the network for the given parameters and sample
// rate. Room stretches the comb delays by (0.9 + 0.2·room) and raises
// the feedback to 0.55 + 0.40·room. Delay lengths are clamped to a
// minimum of one sample.
func NewReverb(p ReverbParams, rate float64) (*Reverb, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	r := &Reverb{params: p}
	feedback := 0.55 + 0.40*p.Room
	stretch := 0.9 + 0.2*p.Room
	for i, sec := range combDelaySeconds {
		r.combs[i] = newComb(int(sec*rate*stretch), feedback, p.Damping)
	}
	for i, sec := range allpassDelaySeconds {
		r.allpasses[i] = newAllpass(int(sec * rate))
	}
	return r, nil
}

// Reset clears all delay-line and damping-filter state.
func (r *Reverb) Reset() {
	for i := range r.combs {
		r.combs[i].reset()
	}
	for i := range r.allpasses {
		r.allpasses[i].reset()
	}
}

// ProcessSample runs one dry sample through the network and returns
// the dry/wet mix. With Wet == 0 the input comes back unchanged.
func (r *Reverb) ProcessSample(x float64) float64 {
	acc := 0.0
	for i := range r.combs {
		acc += r.combs[i].processSample(x)
	}
	acc /= float64(len(r.combs))
	for i := range r.allpasses {
		acc = r.allpasses[i].processSample(acc)
	}
	return x*(1-r.params.Wet) + acc*r.params.Wet
}

// Process runs the whole buffer through the network, returning a new
// buffer of the same length.
func (r *Reverb) Process(in Buffer) Buffer {
	out := make(Buffer, len(in))
	for i, x := range in {
		out[i] = r.ProcessSample(x)
	}
	return out
}

// Reverb runs sig through a fresh Schroeder network.
func (s *Synth) Reverb(sig Buffer, p ReverbParams) Buffer {
	r, err := NewReverb(p, s.rate)
	if err != nil {
		return s.fail("%v", err)
	}
	return r.Process(sig)
}

// LightReverb applies the small-room preset at the given wet mix.
func (s *Synth) LightReverb(sig Buffer, wet float64) Buffer {
	return s.Reverb(sig, LightReverbParams(wet))
}

// HallReverb applies the large-hall preset at the given wet mix.
func (s *Synth) HallReverb(sig Buffer, wet float64) Buffer {
	return s.Reverb(sig, HallReverbParams(wet))
}
