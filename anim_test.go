package canvaskit

import "testing"

func TestHighlightPulseOscillates(t *testing.T) {
	s := NewRect("s", 10, 10)
	p := newHighlightPulse(s)

	var peak float32
	for i := 0; i < 60; i++ {
		v, _, _ := p.seq.Update(1.0 / 60.0)
		p.value = v
		if p.value > peak {
			peak = p.value
		}
	}
	if peak < 0.9 {
		t.Errorf("pulse peaked at %v over one period, want near 1", peak)
	}
	// Looping sequence: another period keeps producing values.
	v, _, _ := p.seq.Update(0.1)
	if v < 0 || v > 1 {
		t.Errorf("pulse value %v out of range", v)
	}
}

func TestBandOpacityFades(t *testing.T) {
	f := newFixture(InteractionConfig{RegionSelection: true})

	f.press(100, 100)
	f.move(150, 150)

	for i := 0; i < 30; i++ {
		f.ed.Advance(1.0 / 60.0)
	}
	if f.ed.BandOpacity() != 1 {
		t.Errorf("band opacity %v mid-gesture, want 1", f.ed.BandOpacity())
	}

	f.release(150, 150)
	for i := 0; i < 30; i++ {
		f.ed.Advance(1.0 / 60.0)
	}
	if f.ed.BandOpacity() != 0 {
		t.Errorf("band opacity %v after release, want 0", f.ed.BandOpacity())
	}
}

func TestAdvanceIdleRequestsNoRender(t *testing.T) {
	f := newFixture(InteractionConfig{})
	before := f.render.n
	f.ed.Advance(1.0 / 60.0)
	if f.render.n != before {
		t.Error("idle Advance requested a repaint")
	}
}
