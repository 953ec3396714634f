package canvaskit

// moveControl is the implicit "drag the body" control used when a
// pointer-down lands on a movable shape but not on any handle.
var moveControl = &Control{Cursor: "move", Action: ActionMove, ActionHandler: actionMove}

// dragCorner is the pseudo corner key for body-move sessions.
const dragCorner = "drag"

// transformSession is the single in-flight manipulation of one shape.
// At most one exists at a time; it is created on pointer-down over a control
// (or a movable shape) and destroyed on the matching pointer-up.
type transformSession struct {
	target    *Shape
	corner    string
	control   *Control
	args      TransformArgs
	pointerID int64

	// actionPerformed accumulates whether any move actually mutated the
	// target; it gates re-renders and distinguishes a drag from a click.
	actionPerformed bool
}

// Session state queries.

// TransformActive reports whether a transform session is in flight.
func (e *Editor) TransformActive() bool {
	return e.session != nil
}

// TransformTarget returns the shape owned by the in-flight session, or nil.
func (e *Editor) TransformTarget() *Shape {
	if e.session == nil {
		return nil
	}
	return e.session.target
}

// startTransform opens a session for target if a control is hit or the shape
// body is movable. No-op (returns false) while a session is already active:
// only one may exist at a time.
func (e *Editor) startTransform(ev *PointerEvent, target *Shape) bool {
	if e.session != nil || target == nil {
		return false
	}

	corner, control, ok := e.resolver.FindControlAt(target, ev)
	if !ok {
		if !target.Movable {
			return false
		}
		corner, control = dragCorner, moveControl
	}

	px, py := target.WorldToParent(ev.Scene.X, ev.Scene.Y)
	sess := &transformSession{
		target:    target,
		corner:    corner,
		control:   control,
		pointerID: ev.PointerID,
		args: TransformArgs{
			Target:       target,
			Corner:       corner,
			Action:       control.Action,
			StartX:       px,
			StartY:       py,
			OffsetX:      px - target.X,
			OffsetY:      py - target.Y,
			LastX:        px,
			LastY:        py,
			OrigX:        target.X,
			OrigY:        target.Y,
			OrigScaleX:   target.ScaleX,
			OrigScaleY:   target.ScaleY,
			OrigRotation: target.Rotation,
			Shift:        ev.Modifiers&ModShift != 0,
			Alt:          ev.Modifiers&ModAlt != 0,
		},
	}
	target.activeControl = corner
	if control.MouseDownHandler != nil {
		control.MouseDownHandler(ev, &sess.args)
	}
	e.session = sess
	return true
}

// updateTransform converts the pointer into the target's parent space and
// dispatches the delta to the control's action handler. The shape's
// coordinate cache is recomputed only when a mutation actually happened.
func (e *Editor) updateTransform(ev *PointerEvent) {
	sess := e.session
	if sess == nil {
		return
	}
	px, py := sess.target.WorldToParent(ev.Scene.X, ev.Scene.Y)

	// A missing handler is not an error; it silently means "no mutation".
	if h := sess.control.ActionHandler; h != nil {
		if h(ev, &sess.args, px, py) {
			sess.actionPerformed = true
			sess.target.SetCoords()
			e.requestRender()
		}
	}
	sess.args.LastX = px
	sess.args.LastY = py
}

// finalizeTransform closes the session on pointer-up. If the user released
// over a different target or control than the one that started the drag, the
// original control's mouse-up handler is replayed so controls with symmetric
// down/up pairs stay consistent. Session and active-corner marker are
// cleared on every exit path.
//
// Returns whether any action was performed (false classifies the gesture as
// a click).
func (e *Editor) finalizeTransform(ev *PointerEvent) bool {
	sess := e.session
	if sess == nil {
		return false
	}
	performed := sess.actionPerformed

	if h := sess.control.MouseUpHandler; h != nil {
		h(ev, &sess.args)
	}

	sess.target.activeControl = ""
	e.session = nil

	if performed {
		e.requestRender()
	}
	return performed
}

// clearSession discards any in-flight session without running handlers.
// Used by teardown paths where no matching pointer-up will arrive.
func (e *Editor) clearSession() {
	if e.session == nil {
		return
	}
	e.session.target.activeControl = ""
	e.session = nil
}
