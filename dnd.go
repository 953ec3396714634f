package canvaskit

// DragState bridges the platform's native drag protocol to the scene. It
// lives between dragstart and dragend: the drag source, the last drag-over
// lineage (for synthetic enter/leave diffing), and the current drop-target
// candidate.
type DragState struct {
	Source        *Shape
	DropCandidate *Shape
	lastHit       HitResult
	active        bool
}

// DragSource returns the shape currently being natively dragged, or nil.
func (e *Editor) DragSource() *Shape {
	return e.drag.Source
}

// DropCandidate returns the last drop target that accepted the drag, or nil.
func (e *Editor) DropCandidate() *Shape {
	return e.drag.DropCandidate
}

// handleDragStart arms the native drag protocol. The drag proceeds only when
// the active shape explicitly agrees to become a drag source AND the
// canvas-level query agrees; otherwise the native drag is suppressed
// entirely (the return value false tells the host to keep default platform
// semantics) and no dragstart event reaches listeners.
func (e *Editor) handleDragStart(ev *PointerEvent) bool {
	src := e.active
	if src == nil {
		return false
	}
	if src.ShouldBecomeDragSource == nil || !src.ShouldBecomeDragSource(ev) {
		return false
	}
	if e.cfg.StartDragging != nil && !e.cfg.StartDragging(ev) {
		return false
	}

	// The native drag supersedes any pointer-driven session.
	e.clearSession()
	e.drag = DragState{Source: src, active: true}

	ctx := DragEventContext{Event: ev, Source: src, Target: src}
	e.handlers.dragStart.fire(ctx)
	return true
}

// handleDrag forwards source-side drag progress events.
func (e *Editor) handleDrag(ev *PointerEvent) {
	if !e.drag.active {
		return
	}
	ctx := DragEventContext{Event: ev, Source: e.drag.Source, Target: e.drag.Source}
	e.handlers.drag.fire(ctx)
}

// handleDragOver processes a native drag moving across the canvas. Returns
// true so the host calls prevent-default and keeps the platform drop
// protocol alive. The hit target is asked first, then each sub-target in
// hit order, whether it accepts the drop; the last one to accept becomes the
// drop-target candidate. Stale feedback on a previously-remembered candidate
// is cleared before the new feedback is rendered.
func (e *Editor) handleDragOver(ev *PointerEvent) bool {
	hit := e.hitForEvent(ev)

	var candidate *Shape
	ask := func(s *Shape) {
		if s != nil && s.CanAcceptDrop != nil && s.CanAcceptDrop(ev) {
			candidate = s
		}
	}
	ask(hit.Target)
	for _, sub := range hit.SubTargets {
		if sub != hit.Target {
			ask(sub)
		}
	}

	if prev := e.drag.DropCandidate; prev != nil && prev != candidate {
		e.clearDropFeedback(prev)
	}
	if candidate != nil && candidate != e.drag.DropCandidate {
		e.showDropFeedback(candidate)
	}
	e.drag.DropCandidate = candidate

	ctx := DragEventContext{
		Event:      ev,
		Source:     e.drag.Source,
		Target:     hit.Target,
		SubTargets: hit.SubTargets,
	}
	e.handlers.dragOver.fire(ctx)
	if hit.Target != nil && hit.Target.OnDragOver != nil {
		hit.Target.OnDragOver(ctx)
	}
	for _, sub := range hit.SubTargets {
		if sub != hit.Target && sub.OnDragOver != nil {
			sub.OnDragOver(ctx)
		}
	}

	// Synthetic enter/leave for the drag-over lineage, independent of hover.
	e.fireSyntheticTransitions(ev, e.drag.lastHit, hit, e.dragSinks())
	e.drag.lastHit = hit

	e.requestRender()
	return true
}

// handleDrop delivers the drop phases: drop:before (veto), drop (with the
// mutable result the accepting target populates), then drop:after. The
// coordinator only sequences delivery; it never decides the outcome.
func (e *Editor) handleDrop(ev *PointerEvent) *DropResult {
	hit := e.hitForEvent(ev)
	result := &DropResult{}
	ctx := DragEventContext{
		Event:      ev,
		Source:     e.drag.Source,
		Target:     hit.Target,
		SubTargets: hit.SubTargets,
		Result:     result,
	}

	e.handlers.dropBefore.fire(ctx)
	if hit.Target != nil && hit.Target.OnDropBefore != nil {
		hit.Target.OnDropBefore(ctx)
	}

	e.handlers.drop.fire(ctx)
	if hit.Target != nil && hit.Target.OnDrop != nil {
		hit.Target.OnDrop(ctx)
	}
	for _, sub := range hit.SubTargets {
		if sub != hit.Target && sub.OnDrop != nil {
			sub.OnDrop(ctx)
		}
	}

	e.handlers.dropAfter.fire(ctx)
	return result
}

// handleDragEnd completes the drag. The drop effect is read in a deferred
// completion so the platform has populated it first; then completion events
// fire at canvas and source level, and a pointer-up is synthesized so normal
// release bookkeeping runs even though no native mouse-up is guaranteed
// after a drag.
func (e *Editor) handleDragEnd(ev *PointerEvent) {
	// Candidate and feedback state is cleared even when no local drag is
	// active: a drag sourced outside the canvas produced dragover
	// bookkeeping that must not outlive the protocol.
	if prev := e.drag.DropCandidate; prev != nil {
		e.clearDropFeedback(prev)
	}
	if !e.drag.active {
		e.drag = DragState{}
		return
	}
	raw := ev.Raw
	source := e.drag.Source

	e.defer_(func() {
		didDrop := raw.DropEffect != DropEffectNone

		ctx := DragEventContext{
			Event:   ev,
			Source:  source,
			Target:  source,
			DidDrop: didDrop,
		}
		e.handlers.dragEnd.fire(ctx)
		if source != nil && source.OnDragEnd != nil {
			source.OnDragEnd(ctx)
		}

		e.drag = DragState{}

		e.HandleRaw(RawEvent{
			Kind:      EventUp,
			Device:    raw.Device,
			X:         raw.X,
			Y:         raw.Y,
			Button:    raw.Button,
			Modifiers: raw.Modifiers,
			IsPrimary: true,
			When:      raw.When,
		})
	})
}
