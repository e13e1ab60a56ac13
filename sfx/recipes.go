package sfx

import "github.com/simukka/sfxgen/audio"

// The recipes aim for 16/32-bit era quality: FM bell tones, pink-noise
// transients, light or hall reverb on almost everything.

func renderCorrect(s *audio.Synth) audio.Buffer {
	note := audio.NoteParams{Attack: 0.005, Decay: 0.04, Sustain: 0.72, Release: 0.07, Amp: 1}
	bell := audio.FMParams{Ratio: 3.0, Depth: 1.8, Decay: 0.9}
	n0 := s.FMNote(Hz(C5), 0.13, bell, note)
	n1 := s.FMNote(Hz(E5), 0.13, bell, note)
	n2 := s.FMNote(Hz(G5), 0.13, bell, note)
	n3 := s.FMNote(Hz(C6), 0.22,
		audio.FMParams{Ratio: 2.5, Depth: 1.4, Decay: 1.2},
		audio.NoteParams{Attack: 0.007, Decay: 0.06, Sustain: 0.78, Release: 0.12, Amp: 1})
	shimmer := s.ADSR(s.SoftSquare(Hz(C6)*2, 0.22).Scale(0.08),
		audio.ADSR{Attack: 0.02, Decay: 0.04, Sustain: 0.3, Release: 0.14})
	seq := audio.Concat(n0, n1, n2, audio.Overlay(n3, shimmer))
	return s.LightReverb(seq, 0.28)
}

func renderWrong(s *audio.Synth) audio.Buffer {
	bend := s.SweepNote(Hz(Bb3)*1.07, Hz(G3)*0.85, 0.28,
		audio.NoteParams{Attack: 0.005, Decay: 0.08, Sustain: 0.45, Release: 0.12, Amp: 1})
	clash := s.SweepNote(Hz(B3)*1.05, Hz(G3), 0.22,
		audio.NoteParams{Attack: 0.010, Decay: 0.07, Sustain: 0.35, Release: 0.10, Amp: 0.45})
	thud := s.ADSR(s.NoisePink(0.18).Scale(0.50),
		audio.ADSR{Attack: 0.002, Decay: 0.09, Sustain: 0.08, Release: 0.08})
	mix := audio.Overlay(bend, clash, thud)
	return s.Lowpass(s.LightReverb(mix, 0.18), 2800)
}

func renderClick(s *audio.Synth) audio.Buffer {
	const dur = 0.065
	body := s.FMNote(Hz(A5), dur,
		audio.FMParams{Ratio: 5.5, Depth: 3.0, Decay: 0.12},
		audio.NoteParams{Attack: 0.001, Decay: 0.012, Sustain: 0.10, Release: 0.035, Amp: 1})
	tick := s.ADSR(s.NoisePink(dur).Scale(0.55),
		audio.ADSR{Attack: 0.001, Decay: 0.010, Sustain: 0, Release: 0.025})
	return s.Lowpass(audio.Overlay(body, tick), 8000)
}

func renderHitEnemy(s *audio.Synth) audio.Buffer {
	body := s.SweepNote(Hz(G4)*1.25, Hz(G4)*0.70, 0.09,
		audio.NoteParams{Attack: 0.002, Decay: 0.032, Sustain: 0.18, Release: 0.04, Amp: 1})
	bite := s.FMNote(Hz(G4), 0.07,
		audio.FMParams{Ratio: 4.0, Depth: 3.5, Decay: 0.15},
		audio.NoteParams{Attack: 0.001, Decay: 0.025, Sustain: 0.05, Release: 0.03, Amp: 0.55})
	crack := s.ADSR(s.NoisePink(0.06).Scale(0.70),
		audio.ADSR{Attack: 0.001, Decay: 0.022, Sustain: 0, Release: 0.025})
	mix := audio.Overlay(body, bite, crack)
	return s.Lowpass(s.LightReverb(mix, 0.14), 7000)
}

func renderHitPlayer(s *audio.Synth) audio.Buffer {
	thud := s.FMNote(Hz(D3)*0.88, 0.16,
		audio.FMParams{Ratio: 1.5, Depth: 4.0, Decay: 0.25},
		audio.NoteParams{Attack: 0.003, Decay: 0.06, Sustain: 0.28, Release: 0.08, Amp: 0.75})
	sub := s.ADSR(s.Sine(Hz(G2), 0.16).Scale(0.45),
		audio.ADSR{Attack: 0.003, Decay: 0.05, Sustain: 0.22, Release: 0.09})
	snap := s.ADSR(s.NoisePink(0.08).Scale(0.80),
		audio.ADSR{Attack: 0.001, Decay: 0.035, Sustain: 0.05, Release: 0.04})
	mix := audio.Overlay(thud, sub, snap)
	return s.Lowpass(s.LightReverb(mix, 0.22), 5500)
}

func renderChestOpen(s *audio.Synth) audio.Buffer {
	note := audio.NoteParams{Attack: 0.006, Decay: 0.06, Sustain: 0.65, Release: 0.14, Amp: 1}
	harp := audio.FMParams{Ratio: 2.0, Depth: 0.8, Decay: 0.8}
	seq := audio.Concat(
		s.FMNote(Hz(C4), 0.14, harp, note),
		s.FMNote(Hz(E4), 0.14, harp, note),
		s.FMNote(Hz(G4), 0.14, harp, note),
		s.FMNote(Hz(C5), 0.14, harp, note),
		s.FMNote(Hz(E5), 0.28,
			audio.FMParams{Ratio: 2.0, Depth: 0.6, Decay: 1.2},
			audio.NoteParams{Attack: 0.008, Decay: 0.08, Sustain: 0.78, Release: 0.22, Amp: 1}),
	)
	sparkle := s.ADSR(s.Triangle(Hz(C6), 0.30).Scale(0.15),
		audio.ADSR{Attack: 0.025, Decay: 0.10, Sustain: 0.35, Release: 0.18})
	out := audio.OverlayAt(seq, sparkle, s.Samples(0.14)*4)
	return s.HallReverb(out, 0.38)
}

func renderBattleStart(s *audio.Synth) audio.Buffer {
	root := s.FMNote(Hz(G3), 0.22,
		audio.FMParams{Ratio: 1.0, Depth: 2.5, Decay: 0.4},
		audio.NoteParams{Attack: 0.008, Decay: 0.06, Sustain: 0.65, Release: 0.10, Amp: 0.60})
	fifth := s.FMNote(Hz(D4), 0.22,
		audio.FMParams{Ratio: 1.0, Depth: 2.0, Decay: 0.4},
		audio.NoteParams{Attack: 0.010, Decay: 0.06, Sustain: 0.55, Release: 0.10, Amp: 0.45})
	kick := s.ADSR(
		audio.Overlay(s.Sine(Hz(G2), 0.18).Scale(0.80), s.NoisePink(0.07).Scale(0.60)),
		audio.ADSR{Attack: 0.002, Decay: 0.07, Sustain: 0.12, Release: 0.10})
	sting := s.FMNote(Hz(G5), 0.16,
		audio.FMParams{Ratio: 2.0, Depth: 1.8, Decay: 0.3},
		audio.NoteParams{Attack: 0.003, Decay: 0.04, Sustain: 0.40, Release: 0.09, Amp: 1})
	body := audio.Overlay(root, fifth, kick)
	seq := audio.Concat(body, s.Silence(0.025), sting)
	return s.LightReverb(seq, 0.25)
}

func renderVictory(s *audio.Synth) audio.Buffer {
	note := audio.NoteParams{Attack: 0.007, Decay: 0.05, Sustain: 0.72, Release: 0.12, Amp: 1}
	bell := audio.FMParams{Ratio: 3.5, Depth: 1.2, Decay: 1.0}
	closing := audio.NoteParams{Attack: 0.008, Decay: 0.07, Sustain: 0.80, Release: 0.22, Amp: 1}
	warm := audio.FMParams{Ratio: 3.5, Depth: 0.9, Decay: 1.4}
	seq := audio.Concat(
		s.FMNote(Hz(C4), 0.10, bell, note),
		s.FMNote(Hz(E4), 0.10, bell, note),
		s.FMNote(Hz(G4), 0.10, bell, note),
		s.Silence(0.030),
		s.FMNote(Hz(G4), 0.09, bell, note),
		s.FMNote(Hz(C5), 0.09, bell, note),
		s.Silence(0.018),
		s.FMNote(Hz(C5), 0.26, warm, closing),
	)
	padStart := s.Samples(0.10)*3 + s.Samples(0.030) + s.Samples(0.09)*2 + s.Samples(0.018)
	harmE := s.FMNote(Hz(E5), 0.26, warm, closing).Scale(0.45)
	harmG := s.FMNote(Hz(G5), 0.26, warm, closing).Scale(0.35)
	full := audio.OverlayAt(seq, harmE, padStart)
	full = audio.OverlayAt(full, harmG, padStart)
	return s.HallReverb(full, 0.36)
}

func renderBossIntro(s *audio.Synth) audio.Buffer {
	low := s.ADSR(s.FMPad(Hz(G2), 0.50, audio.FMParams{Ratio: 1.5, Depth: 1.6}),
		audio.ADSR{Attack: 0.18, Decay: 0.09, Sustain: 0.70, Release: 0.14}).Scale(0.60)
	fifth := s.ADSR(s.FMPad(Hz(D3), 0.50, audio.FMParams{Ratio: 1.5, Depth: 1.4}),
		audio.ADSR{Attack: 0.20, Decay: 0.09, Sustain: 0.62, Release: 0.14}).Scale(0.50)
	crack := s.ADSR(s.Lowpass(s.NoisePink(0.22), 1800),
		audio.ADSR{Attack: 0.001, Decay: 0.07, Sustain: 0.06, Release: 0.14})
	sting := s.FMNote(Hz(G5), 0.14,
		audio.FMParams{Ratio: 2.0, Depth: 2.2, Decay: 0.25},
		audio.NoteParams{Attack: 0.003, Decay: 0.04, Sustain: 0.35, Release: 0.09, Amp: 1})
	swell := audio.Overlay(low, fifth, crack)
	seq := audio.Concat(swell, s.Silence(0.025), sting)
	return s.HallReverb(seq, 0.45)
}

func renderPageTurn(s *audio.Synth) audio.Buffer {
	freq := s.FreqEnvelope(0.16, []float64{0, 0.3, 1.0}, []float64{300, 1400, 600})
	sweep := audio.Overlay(s.SineFrom(freq).Scale(0.35), s.NoisePink(0.16).Scale(0.42))
	sweep = s.ADSR(sweep, audio.ADSR{Attack: 0.010, Decay: 0.055, Sustain: 0.22, Release: 0.08})
	sweep = s.Lowpass(sweep, 4500)
	chime := s.ADSR(
		s.FMTone(Hz(A5), 0.12, audio.FMParams{Ratio: 4.0, Depth: 0.6, Decay: 1.5}).Scale(0.55),
		audio.ADSR{Attack: 0.004, Decay: 0.03, Sustain: 0.45, Release: 0.10})
	return s.LightReverb(audio.Overlay(sweep, chime), 0.20)
}

func renderLevelUp(s *audio.Synth) audio.Buffer {
	note := audio.NoteParams{Attack: 0.006, Decay: 0.05, Sustain: 0.72, Release: 0.10, Amp: 1}
	bell := audio.FMParams{Ratio: 3.0, Depth: 1.4, Decay: 0.9}
	closing := audio.NoteParams{Attack: 0.006, Decay: 0.06, Sustain: 0.82, Release: 0.22, Amp: 1}
	warm := audio.FMParams{Ratio: 2.5, Depth: 1.0, Decay: 1.5}
	seq := audio.Concat(
		s.FMNote(Hz(C4), 0.08, bell, note),
		s.FMNote(Hz(G4), 0.08, bell, note),
		s.FMNote(Hz(E5), 0.08, bell, note),
		s.FMNote(Hz(C5), 0.08, bell, note),
		s.Silence(0.025),
		s.FMNote(Hz(C5), 0.08, bell, note),
		s.FMNote(Hz(E5), 0.08, bell, note),
		s.FMNote(Hz(G5), 0.28, warm, closing),
	)
	padStart := s.Samples(0.08)*6 + s.Samples(0.025)
	padG := s.ADSR(s.FMPad(Hz(G5), 0.36, audio.FMParams{Ratio: 1.5, Depth: 0.7}).Scale(0.35),
		audio.ADSR{Attack: 0.04, Decay: 0.05, Sustain: 0.70, Release: 0.20})
	padE := s.ADSR(s.FMPad(Hz(E5), 0.36, audio.FMParams{Ratio: 1.5, Depth: 0.7}).Scale(0.28),
		audio.ADSR{Attack: 0.04, Decay: 0.05, Sustain: 0.60, Release: 0.20})
	full := audio.OverlayAt(seq, padG, padStart)
	full = audio.OverlayAt(full, padE, padStart)
	return s.HallReverb(full, 0.33)
}

func renderNpcTalk(s *audio.Synth) audio.Buffer {
	note := audio.NoteParams{Attack: 0.004, Decay: 0.020, Sustain: 0.55, Release: 0.06, Amp: 1}
	chirp := audio.FMParams{Ratio: 3.5, Depth: 0.8, Decay: 0.6}
	seq := audio.Concat(
		s.FMNote(Hz(E5), 0.07, chirp, note),
		s.Silence(0.020),
		s.FMNote(Hz(G5), 0.07, chirp, note).Scale(0.90),
	)
	return s.LightReverb(seq, 0.18)
}

func renderDamageCritical(s *audio.Synth) audio.Buffer {
	boom := s.SweepNote(Hz(D3), Hz(G2)*0.65, 0.22,
		audio.NoteParams{Attack: 0.003, Decay: 0.07, Sustain: 0.32, Release: 0.10, Amp: 0.75})
	body := s.FMNote(Hz(D3)*0.80, 0.20,
		audio.FMParams{Ratio: 1.2, Depth: 5.0, Decay: 0.3},
		audio.NoteParams{Attack: 0.002, Decay: 0.06, Sustain: 0.22, Release: 0.12, Amp: 0.55})
	blast := s.ADSR(s.Lowpass(s.NoisePink(0.18), 3500),
		audio.ADSR{Attack: 0.001, Decay: 0.055, Sustain: 0.12, Release: 0.10})
	ring := s.ADSR(
		s.FMTone(Hz(G4), 0.14, audio.FMParams{Ratio: 6.0, Depth: 4.0, Decay: 0.2}).Scale(0.30),
		audio.ADSR{Attack: 0.001, Decay: 0.035, Sustain: 0.10, Release: 0.09})
	mix := audio.Overlay(boom, body, blast, ring)
	return s.LightReverb(mix, 0.28)
}
