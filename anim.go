package canvaskit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Affordance animations. The editor does not draw anything itself; these
// tweens expose scalar values the host renderer samples each frame
// (highlight strength around a drop candidate, rubber-band opacity).

const (
	dropPulsePeriod = 0.6
	bandFadeTime    = 0.15
)

// HighlightPulse is a looping 0..1..0 intensity for a shape awaiting a drop.
type HighlightPulse struct {
	Target *Shape
	seq    *gween.Sequence
	value  float32
}

// Value reports the current pulse intensity in [0,1].
func (p *HighlightPulse) Value() float32 {
	return p.value
}

func newHighlightPulse(target *Shape) *HighlightPulse {
	seq := gween.NewSequence(
		gween.New(0, 1, dropPulsePeriod/2, ease.InOutQuad),
		gween.New(1, 0, dropPulsePeriod/2, ease.InOutQuad),
	)
	seq.SetLoop(-1)
	return &HighlightPulse{Target: target, seq: seq}
}

// DropHighlight returns the active drop-feedback pulse, or nil when no drop
// candidate is being highlighted.
func (e *Editor) DropHighlight() *HighlightPulse {
	return e.dropPulse
}

// BandOpacity reports the rubber-band overlay opacity in [0,1]. It eases in
// while a region selection is in progress and eases back out after release.
func (e *Editor) BandOpacity() float32 {
	return e.bandOpacity
}

func (e *Editor) showDropFeedback(target *Shape) {
	e.dropPulse = newHighlightPulse(target)
	e.requestRender()
}

func (e *Editor) clearDropFeedback(target *Shape) {
	if e.dropPulse != nil && e.dropPulse.Target == target {
		e.dropPulse = nil
		e.requestRender()
	}
}

// Advance steps the affordance animations by dt seconds. Hosts call it once
// per frame; it is a no-op when nothing is animating.
func (e *Editor) Advance(dt float32) {
	active := false

	if e.dropPulse != nil {
		v, _, _ := e.dropPulse.seq.Update(dt)
		e.dropPulse.value = v
		active = true
	}

	target := float32(0)
	if e.selector != nil {
		target = 1
	}
	if e.bandOpacity != target {
		step := dt / bandFadeTime
		if e.bandOpacity < target {
			e.bandOpacity = min(e.bandOpacity+step, target)
		} else {
			e.bandOpacity = max(e.bandOpacity-step, target)
		}
		active = true
	}

	if active {
		e.requestRender()
	}
}
