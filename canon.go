package canvaskit

import "time"

// RawEvent is the platform input event handed to the editor. Hosts (the
// ebiten driver in cmd/sketchpad, the inject queue, tests) fill one per
// physical input and pass it to Editor.HandleRaw.
type RawEvent struct {
	Kind   EventKind
	Device Device

	// Viewport coordinates in host pixels.
	X, Y float64

	Button    MouseButton
	Modifiers KeyModifiers

	// Touch fields (Device == DeviceTouch)
	TouchID          int64
	TouchesRemaining int // valid on EventUp: touches still on the surface

	// IsPrimary marks the event the platform considers primary
	// (pointer-events semantics).
	IsPrimary bool

	// Wheel deltas (Kind == EventWheel)
	WheelDX, WheelDY float64

	// DropEffect is populated by the platform before EventDragEnd.
	DropEffect DropEffect

	// When is the event timestamp; the zero value means "now".
	When time.Time
}

// PointerEvent is the canonical event the interaction logic consumes.
// It is ephemeral: created per dispatch and discarded after handling; the
// coordinate/target cache backing it is reset before HandleRaw returns, so a
// PointerEvent must never be retained across two unrelated raw events.
type PointerEvent struct {
	Raw       *RawEvent
	Viewport  Point
	Scene     Point
	Button    MouseButton
	Modifiers KeyModifiers

	// PointerID is the touch identifier, or 0 for mouse/pointer input.
	PointerID int64

	// IsMain marks the authoritative pointer stream. Secondary events still
	// reach the raw (:before) listeners but are ignored by selection and
	// transform logic.
	IsMain bool
}

// eventCache holds the per-raw-event derived data. Coordinates and the
// resolved target are computed once per physical input so every handler
// triggered by the same input observes identical values even if the scene
// mutates mid-dispatch.
type eventCache struct {
	sceneValid bool
	scene      Point
	hitValid   bool
	hit        HitResult
}

// --- Listener lifecycle ---

// RegisterListeners binds the editor to its input source. Idempotent:
// calling it twice leaves exactly one active listener set. The event family
// (pointer vs. mouse) is decided here, once per session, from the config.
func (e *Editor) RegisterListeners() {
	if e.listenersBound {
		return
	}
	e.listenersBound = true
	e.usePointerEvents = e.cfg.UsePointerEvents
	e.mouseDownArmed = true
	e.mainTouchID = -1
}

// RemoveListeners unbinds the editor from its input source and resets all
// transient interaction state. Idempotent and safe to call during teardown
// regardless of in-flight sessions; the guaranteed cleanup here is what
// keeps a host-side exception from leaving the core stuck.
func (e *Editor) RemoveListeners() {
	if !e.listenersBound {
		return
	}
	e.listenersBound = false
	e.trackingOutside = false
	e.mouseDownArmed = false
	e.rearmMouseAt = time.Time{}
	e.mainTouchID = -1
	e.clearSession()
	e.selector = nil
	e.hover = HoverState{}
	e.drag = DragState{}
	e.resetEventCache()
}

// acceptsDevice reports whether the raw event's family is the one chosen at
// RegisterListeners. Devices that emit both pointer and mouse events for a
// single physical interaction would otherwise double-fire.
func (e *Editor) acceptsDevice(raw *RawEvent) bool {
	switch raw.Device {
	case DeviceTouch:
		return true
	case DevicePointer:
		return e.usePointerEvents
	default:
		return !e.usePointerEvents
	}
}

// --- Main pointer tracking ---

// isMainEvent reports whether raw belongs to the authoritative pointer
// stream: the platform marks it primary, or it is a touch end with no
// remaining touches, or its touch identifier equals the tracked main id.
// Mouse events are always main.
func (e *Editor) isMainEvent(raw *RawEvent) bool {
	if raw.IsPrimary {
		return true
	}
	switch raw.Device {
	case DeviceMouse:
		return true
	case DevicePointer:
		return false
	default:
		if raw.Kind == EventUp && raw.TouchesRemaining == 0 {
			return true
		}
		return raw.TouchID == e.mainTouchID
	}
}

// trackTouch updates the main-touch identifier: the first touch id seen
// since the last full release becomes main. The id is cleared only when a
// touch end reports zero remaining touches.
func (e *Editor) trackTouch(raw *RawEvent) {
	if raw.Device != DeviceTouch {
		return
	}
	switch raw.Kind {
	case EventDown:
		if e.mainTouchID < 0 {
			e.mainTouchID = raw.TouchID
		}
		// A touch sequence unarms the mouse family so the synthesized mouse
		// echo of the tap cannot open a duplicate session or click chain.
		e.mouseDownArmed = false
	case EventUp:
		if raw.TouchesRemaining == 0 {
			e.mainTouchID = -1
			e.scheduleMouseRearm(raw)
		}
	}
}

// scheduleMouseRearm re-arms the mouse family one rebind delay after
// the touch sequence ended. Re-arming is idempotent: a second touch sequence
// simply moves the deadline, so repeated rapid sequences never leave two
// pending timers.
func (e *Editor) scheduleMouseRearm(raw *RawEvent) {
	e.rearmMouseAt = e.eventTime(raw).Add(e.cfg.RebindDelay)
}

// mouseInputAccepted reports whether a mouse-family event may reach the
// interaction state machine. The platform synthesizes a full mouse
// down/move/up echo for a tap, so the whole family stays gated until the
// pending re-arm deadline passes; the re-arm completes lazily on the first
// event at or after the deadline.
func (e *Editor) mouseInputAccepted(raw *RawEvent) bool {
	if e.mouseDownArmed {
		return true
	}
	if !e.rearmMouseAt.IsZero() && !e.eventTime(raw).Before(e.rearmMouseAt) {
		e.mouseDownArmed = true
		e.rearmMouseAt = time.Time{}
		return true
	}
	return false
}

// eventTime returns the event timestamp, defaulting to the editor clock.
func (e *Editor) eventTime(raw *RawEvent) time.Time {
	if !raw.When.IsZero() {
		return raw.When
	}
	return e.now()
}

// --- Normalization ---

// normalize converts a raw platform event into the canonical PointerEvent.
// Scene coordinates are cached once per raw event.
func (e *Editor) normalize(raw *RawEvent) *PointerEvent {
	ev := &PointerEvent{
		Raw:       raw,
		Viewport:  Point{X: raw.X, Y: raw.Y},
		Button:    raw.Button,
		Modifiers: raw.Modifiers,
		IsMain:    e.isMainEvent(raw),
	}
	if raw.Device == DeviceTouch {
		ev.PointerID = raw.TouchID
	}
	ev.Scene = e.scenePoint(raw)
	return ev
}

// scenePoint converts viewport to scene coordinates through the editor's
// view transform, caching the result for the duration of the dispatch.
func (e *Editor) scenePoint(raw *RawEvent) Point {
	if e.cache.sceneValid {
		return e.cache.scene
	}
	x, y := transformPoint(invertAffine(e.viewTransform), raw.X, raw.Y)
	e.cache.scene = Point{X: x, Y: y}
	e.cache.sceneValid = true
	return e.cache.scene
}

// hitForEvent resolves the event's target once per raw event.
func (e *Editor) hitForEvent(ev *PointerEvent) HitResult {
	if e.cache.hitValid {
		return e.cache.hit
	}
	e.cache.hit = e.resolver.ResolveTarget(ev)
	e.cache.hitValid = true
	return e.cache.hit
}

// resetEventCache invalidates the per-event coordinate/target cache. Called
// unconditionally before HandleRaw returns control to the platform loop.
func (e *Editor) resetEventCache() {
	e.cache = eventCache{}
}

// SetViewTransform sets the viewport→scene mapping (zoom/pan of the hosting
// canvas). The matrix maps scene space to viewport space; normalization
// applies its inverse.
func (e *Editor) SetViewTransform(m [6]float64) {
	e.viewTransform = m
}
