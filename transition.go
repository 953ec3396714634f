package canvaskit

// HoverState is the last hover hit, kept only to compute synthetic
// enter/leave transitions. It is superseded wholesale on every move.
type HoverState struct {
	Target     *Shape
	SubTargets []*Shape
}

// transitionSinks parametrizes the broadcaster for one event family: hover
// uses mouse:over/mouse:out, native drag uses drag:enter/drag:leave. The
// editor-level lists are the canvas-scoped variant; shapeEnter/shapeLeave
// select the per-shape callback.
type transitionSinks struct {
	canvasEnter *handlerList[TransitionContext]
	canvasLeave *handlerList[TransitionContext]
	shapeEnter  func(s *Shape) func(TransitionContext)
	shapeLeave  func(s *Shape) func(TransitionContext)
	fireCanvas  bool
}

func (e *Editor) hoverSinks() transitionSinks {
	return transitionSinks{
		canvasEnter: &e.handlers.mouseOver,
		canvasLeave: &e.handlers.mouseOut,
		shapeEnter:  func(s *Shape) func(TransitionContext) { return s.OnMouseOver },
		shapeLeave:  func(s *Shape) func(TransitionContext) { return s.OnMouseOut },
		fireCanvas:  true,
	}
}

func (e *Editor) dragSinks() transitionSinks {
	return transitionSinks{
		canvasEnter: &e.handlers.dragEnter,
		canvasLeave: &e.handlers.dragLeave,
		shapeEnter:  func(s *Shape) func(TransitionContext) { return s.OnDragEnter },
		shapeLeave:  func(s *Shape) func(TransitionContext) { return s.OnDragLeave },
		fireCanvas:  true,
	}
}

// fireSyntheticTransitions diffs an old hit result against a new one and
// fires ordered enter/leave pairs: the top-level target pair is handled
// once, before the loop, then each sub-target slot is compared. A sub-target
// equal to either top-level target is skipped — it has already been handled.
func (e *Editor) fireSyntheticTransitions(ev *PointerEvent, old, now HitResult, sinks transitionSinks) {
	if old.Target != now.Target {
		if old.Target != nil {
			e.fireLeave(ev, old.Target, now.Target, sinks, sinks.fireCanvas)
		}
		if now.Target != nil {
			e.fireEnter(ev, now.Target, old.Target, sinks, sinks.fireCanvas)
		}
	}

	n := max(len(old.SubTargets), len(now.SubTargets))
	for i := 0; i < n; i++ {
		var oldSub, newSub *Shape
		if i < len(old.SubTargets) {
			oldSub = old.SubTargets[i]
		}
		if i < len(now.SubTargets) {
			newSub = now.SubTargets[i]
		}
		if oldSub == newSub {
			continue
		}
		if oldSub != nil && oldSub != old.Target && oldSub != now.Target {
			e.fireLeave(ev, oldSub, newSub, sinks, false)
		}
		if newSub != nil && newSub != old.Target && newSub != now.Target {
			e.fireEnter(ev, newSub, oldSub, sinks, false)
		}
	}
}

func (e *Editor) fireEnter(ev *PointerEvent, target, previous *Shape, sinks transitionSinks, canvas bool) {
	ctx := TransitionContext{Event: ev, Target: target, Previous: previous}
	if canvas {
		sinks.canvasEnter.fire(ctx)
	}
	if fn := sinks.shapeEnter(target); fn != nil {
		fn(ctx)
	}
}

func (e *Editor) fireLeave(ev *PointerEvent, target, next *Shape, sinks transitionSinks, canvas bool) {
	ctx := TransitionContext{Event: ev, Target: target, Next: next}
	if canvas {
		sinks.canvasLeave.fire(ctx)
	}
	if fn := sinks.shapeLeave(target); fn != nil {
		fn(ctx)
	}
}

// fireHoverTransitions diffs the stored hover state against the new hit and
// replaces it.
func (e *Editor) fireHoverTransitions(ev *PointerEvent, now HitResult) {
	old := HitResult{Target: e.hover.Target, SubTargets: e.hover.SubTargets}
	e.fireSyntheticTransitions(ev, old, now, e.hoverSinks())
	e.hover = HoverState{Target: now.Target, SubTargets: now.SubTargets}
}
