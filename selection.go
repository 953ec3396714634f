package canvaskit

// CompositeFactory builds the synthetic aggregate shape representing a
// multi-selection. Injected at Editor construction so tests and hosts can
// substitute their own composite kind; NewActiveSelection is the default.
type CompositeFactory func(members []*Shape) *Shape

// NewActiveSelection is the default CompositeFactory: a group shape that
// references (never reparents) its members and forwards geometric queries
// to them.
func NewActiveSelection(members []*Shape) *Shape {
	g := NewGroup("activeSelection")
	g.isActiveSelection = true
	g.Movable = true
	g.HasControls = true
	g.members = append([]*Shape(nil), members...)
	for _, m := range members {
		m.group = g.ID
	}
	return g
}

// ActiveShape returns the current selection: nil, a single shape, or an
// active-selection composite.
func (e *Editor) ActiveShape() *Shape {
	return e.active
}

// isSelectionKey reports whether the configured multi-select modifier is held.
func (e *Editor) isSelectionKey(ev *PointerEvent) bool {
	return ev.Modifiers&e.cfg.SelectionKey != 0
}

// membersOf expands a selection value into its member list.
func membersOf(s *Shape) []*Shape {
	if s == nil {
		return nil
	}
	if s.isActiveSelection {
		return s.members
	}
	return []*Shape{s}
}

// containsMember reports whether list contains s.
func containsMember(list []*Shape, s *Shape) bool {
	for _, m := range list {
		if m == s {
			return true
		}
	}
	return false
}

// SetActiveShape makes s the selection, firing selection events exactly once
// after the mutation. Passing the current active shape is a no-op.
func (e *Editor) SetActiveShape(s *Shape, ev *PointerEvent) {
	if e.active == s {
		return
	}
	prev := e.active
	prevMembers := membersOf(prev)
	e.dissolveComposite(prev)
	e.active = s

	newMembers := membersOf(s)
	var selected, deselected []*Shape
	for _, m := range newMembers {
		if !containsMember(prevMembers, m) {
			selected = append(selected, m)
		}
	}
	for _, m := range prevMembers {
		if !containsMember(newMembers, m) {
			deselected = append(deselected, m)
		}
	}
	e.fireSelectionChange(ev, prev != nil, prevMembers, selected, deselected)
}

// DiscardActiveShape clears the selection, firing SelectionCleared.
func (e *Editor) DiscardActiveShape(ev *PointerEvent) {
	if e.active == nil {
		return
	}
	prev := e.active
	deselected := membersOf(prev)
	e.dissolveComposite(prev)
	e.active = nil

	ctx := SelectionContext{Event: ev, Previous: deselected, Deselected: deselected}
	e.handlers.selectionCleared.fire(ctx)
	for _, m := range deselected {
		if m.OnDeselected != nil {
			m.OnDeselected(ctx)
		}
	}
	e.requestRender()
}

// dissolveComposite clears member back-references when a composite stops
// being the active selection, so teardown cannot leave dangling links.
func (e *Editor) dissolveComposite(s *Shape) {
	if s == nil || !s.isActiveSelection {
		return
	}
	for _, m := range s.members {
		if m.group == s.ID {
			m.group = 0
		}
	}
	s.members = nil
}

// fireSelectionChange emits created/updated plus per-shape callbacks.
func (e *Editor) fireSelectionChange(ev *PointerEvent, existed bool, previous, selected, deselected []*Shape) {
	ctx := SelectionContext{Event: ev, Previous: previous, Selected: selected, Deselected: deselected}
	if existed {
		e.handlers.selectionUpdated.fire(ctx)
	} else {
		e.handlers.selectionCreated.fire(ctx)
	}
	for _, m := range selected {
		if m.OnSelected != nil {
			m.OnSelected(ctx)
		}
	}
	for _, m := range deselected {
		if m.OnDeselected != nil {
			m.OnDeselected(ctx)
		}
	}
	e.requestRender()
}

// --- Multi-select toggling ---

// shouldGroup decides whether a pointer-down participates in multi-select
// toggling: an active selection exists, the selection modifier is held, the
// target is selectable and distinct from the active shape (or a member of
// an active composite), neither is a structural ancestor of the other, and
// the target does not refuse selection.
func (e *Editor) shouldGroup(ev *PointerEvent, target *Shape) bool {
	active := e.active
	if active == nil || target == nil || !e.isSelectionKey(ev) {
		return false
	}
	if !target.Selectable {
		return false
	}
	if target == active && !active.isActiveSelection {
		return false
	}
	if isAncestor(target, active) || isAncestor(active, target) {
		return false
	}
	if target.OnSelectVeto != nil && target.OnSelectVeto(ev) {
		return false
	}
	return true
}

// handleGrouping runs the multi-select toggle. Preconditions checked by
// shouldGroup.
func (e *Editor) handleGrouping(ev *PointerEvent, target *Shape) {
	active := e.active
	if active.isActiveSelection {
		e.toggleInComposite(ev, active, target)
		return
	}

	// Single active shape: build a fresh composite of exactly {active, target}.
	if active.IsEditing() {
		active.ExitEditing()
	}
	composite := e.factory([]*Shape{active, target})
	e.active = composite
	e.fireSelectionChange(ev, true, []*Shape{active}, []*Shape{target}, nil)
}

// toggleInComposite removes the clicked member from an active composite, or
// adds the target when the click did not land on an existing member. The
// member search is restricted to the composite's own members first, falling
// back to the scene-wide resolved target.
func (e *Editor) toggleInComposite(ev *PointerEvent, composite, target *Shape) {
	previous := append([]*Shape(nil), composite.members...)
	member := e.findMemberAt(composite, ev)
	if member == nil && containsMember(composite.members, target) {
		member = target
	}

	if member != nil {
		// Remove the member; a composite never keeps fewer than two members.
		for i, m := range composite.members {
			if m == member {
				copy(composite.members[i:], composite.members[i+1:])
				composite.members[len(composite.members)-1] = nil
				composite.members = composite.members[:len(composite.members)-1]
				break
			}
		}
		member.group = 0
		if len(composite.members) == 1 {
			sole := composite.members[0]
			e.dissolveComposite(composite)
			e.active = sole
			sole.group = 0
		}
		e.fireSelectionChange(ev, true, previous, nil, []*Shape{member})
		return
	}

	if containsMember(composite.members, target) {
		return
	}
	composite.members = append(composite.members, target)
	target.group = composite.ID
	e.fireSelectionChange(ev, true, previous, []*Shape{target}, nil)
}

// findMemberAt searches the composite's members (top-most in member order
// last, so walk backward) for one containing the event's scene point.
// Members that are themselves groups are treated as atomic.
func (e *Editor) findMemberAt(composite *Shape, ev *PointerEvent) *Shape {
	for i := len(composite.members) - 1; i >= 0; i-- {
		m := composite.members[i]
		if m.ContainsScenePoint(ev.Scene.X, ev.Scene.Y) {
			return m
		}
	}
	return nil
}

// --- Down/up selection triggers ---

// applyDownSelection handles selection at pointer-down: grouping when the
// modifier gesture applies, otherwise down-time activation. Returns the
// shape the transform session should bind to (nil when none).
func (e *Editor) applyDownSelection(ev *PointerEvent, hit HitResult) *Shape {
	target := hit.Target

	if e.shouldGroup(ev, target) {
		e.handleGrouping(ev, target)
		return e.active
	}

	if target == nil || !target.Selectable {
		if !e.isSelectionKey(ev) {
			e.DiscardActiveShape(ev)
		}
		return nil
	}

	// Clicking the active composite keeps it selected and starts its move.
	if e.active != nil && e.active.isActiveSelection &&
		e.active.ContainsScenePoint(ev.Scene.X, ev.Scene.Y) && !e.isSelectionKey(ev) {
		return e.active
	}

	if target.OnSelectVeto != nil && target.OnSelectVeto(ev) {
		return nil
	}

	switch target.ActivationTrigger {
	case ActivateOnDown:
		e.SetActiveShape(target, ev)
		return target
	default:
		// Up-time activation: remember the candidate; transform sessions
		// only bind to the already-active shape.
		e.pendingActivation = target
		if target == e.active {
			return target
		}
		return nil
	}
}

// applyUpSelection completes up-time activation: the candidate must still be
// the resolved target and no drag may have occurred.
func (e *Editor) applyUpSelection(ev *PointerEvent, hit HitResult, dragged bool) {
	pending := e.pendingActivation
	e.pendingActivation = nil
	if pending == nil || dragged {
		return
	}
	if hit.Target != pending {
		return
	}
	e.SetActiveShape(pending, ev)
}
