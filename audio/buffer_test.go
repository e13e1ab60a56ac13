package audio

import "testing"

func TestConcat_Length(t *testing.T) {
	a := Buffer{1, 2, 3}
	b := Buffer{4, 5}
	c := Concat(a, b)
	if len(c) != len(a)+len(b) {
		t.Fatalf("Concat length: expected %d, got %d", len(a)+len(b), len(c))
	}
	if c[0] != 1 || c[3] != 4 {
		t.Errorf("Concat order wrong: %v", c)
	}
}

func TestOverlay_ZeroPadsShorter(t *testing.T) {
	a := Buffer{1, 1, 1, 1}
	b := Buffer{2, 2}
	out := Overlay(a, b)
	if len(out) != 4 {
		t.Fatalf("Overlay length: expected 4, got %d", len(out))
	}
	want := Buffer{3, 3, 1, 1}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("sample %d: expected %v, got %v", i, want[i], out[i])
		}
	}
}

func TestOverlay_DoesNotMutateInputs(t *testing.T) {
	a := Buffer{1, 1}
	b := Buffer{2, 2, 2}
	Overlay(a, b)
	if a[0] != 1 || b[0] != 2 {
		t.Error("Overlay mutated an input buffer")
	}
}

func TestOverlayAt_ExtendsPastEnd(t *testing.T) {
	base := Buffer{1, 1, 1}
	src := Buffer{2, 2}
	out := OverlayAt(base, src, 2)
	if len(out) != 4 {
		t.Fatalf("OverlayAt length: expected 4, got %d", len(out))
	}
	want := Buffer{1, 1, 3, 2}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("sample %d: expected %v, got %v", i, want[i], out[i])
		}
	}
	if len(base) != 3 || base[2] != 1 {
		t.Error("OverlayAt mutated the base buffer")
	}
}

func TestOverlayAt_NegativeOffsetClamped(t *testing.T) {
	out := OverlayAt(Buffer{1, 1}, Buffer{1}, -5)
	if len(out) != 2 || out[0] != 2 {
		t.Errorf("negative offset should clamp to 0, got %v", out)
	}
}

func TestScale_ReturnsNewBuffer(t *testing.T) {
	a := Buffer{1, -2}
	b := a.Scale(0.5)
	if a[0] != 1 {
		t.Error("Scale mutated its receiver")
	}
	if b[0] != 0.5 || b[1] != -1 {
		t.Errorf("Scale wrong: %v", b)
	}
}

func TestPeak(t *testing.T) {
	if p := (Buffer{0.1, -0.9, 0.5}).Peak(); p != 0.9 {
		t.Errorf("Peak: expected 0.9, got %v", p)
	}
	if p := (Buffer{}).Peak(); p != 0 {
		t.Errorf("empty Peak: expected 0, got %v", p)
	}
}
