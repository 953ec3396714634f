package canvaskit

import (
	"fmt"
	"math"
	"os"
	"time"
)

// RenderRequester is how the editor asks its host to repaint. Hosts that
// redraw every frame can pass nil; state queries are still valid.
type RenderRequester interface {
	RequestRender()
}

// InteractionConfig tunes the editor's gesture recognition. The zero value
// is usable; NewEditor fills in defaults for the timing and distance fields.
type InteractionConfig struct {
	// DragDeadZone is the viewport distance, in pixels, a pointer must
	// travel before a pressed session starts mutating its target. Releases
	// inside the dead zone classify as clicks.
	DragDeadZone float64

	// SelectionKey is the modifier that toggles multi-selection grouping.
	SelectionKey KeyModifiers

	// GroupSelectFullyContained requires shapes to be entirely inside the
	// rubber band, rather than merely intersecting it.
	GroupSelectFullyContained bool

	// RegionSelection enables the rubber-band gesture on empty space.
	RegionSelection bool

	// PreserveObjectStacking keeps paint order stable on selection; when
	// false, activating a shape brings it to the front of its siblings.
	PreserveObjectStacking bool

	// RebindDelay is how long after a touch sequence ends before synthetic
	// mouse events are honored again.
	RebindDelay time.Duration

	// ClickInterval is the maximum gap between releases in a double or
	// triple click chain.
	ClickInterval time.Duration

	// UsePointerEvents selects the pointer event family over the mouse
	// family at RegisterListeners time.
	UsePointerEvents bool

	// TouchCornerPad widens control hit areas for touch input.
	TouchCornerPad float64

	// StartDragging is the canvas-level veto for native drags. Both this
	// and the shape's own query must agree before a drag source arms.
	StartDragging func(*PointerEvent) bool
}

const (
	defaultDragDeadZone  = 4.0
	defaultRebindDelay   = 400 * time.Millisecond
	defaultClickInterval = 500 * time.Millisecond
	defaultTouchPad      = 10.0
)

// Editor is the interaction core for one scene tree. It consumes canonical
// pointer events via HandleRaw and owns every piece of transient interaction
// state: the active selection, the single transform session, hover and drag
// lineages, and the rubber-band selector.
//
// An Editor is single-goroutine: all calls must come from the host's input
// loop.
type Editor struct {
	root     *Shape
	resolver TargetResolver
	factory  CompositeFactory
	renderer RenderRequester
	cfg      InteractionConfig
	handlers handlerRegistry
	store    EntityStore
	arena    map[uint32]*Shape

	active            *Shape
	session           *transformSession
	hover             HoverState
	drag              DragState
	selector          *groupSelector
	pendingActivation *Shape

	cache         eventCache
	viewTransform [6]float64

	listenersBound   bool
	trackingOutside  bool
	usePointerEvents bool
	mouseDownArmed   bool
	rearmMouseAt     time.Time
	mainTouchID      int64

	downViewport Point
	pastDeadZone bool

	lastClickAt  time.Time
	lastClickPos Point
	clickChain   int

	dropPulse   *HighlightPulse
	bandOpacity float32

	deferred    []func()
	injectQueue []RawEvent

	now   func() time.Time
	debug bool
}

// NewEditor creates an editor over the given scene root. Zero-valued timing
// and distance fields in cfg receive defaults; the selection key defaults to
// shift.
func NewEditor(root *Shape, cfg InteractionConfig) *Editor {
	if root == nil {
		panic("canvaskit: NewEditor requires a root shape")
	}
	if cfg.DragDeadZone <= 0 {
		cfg.DragDeadZone = defaultDragDeadZone
	}
	if cfg.SelectionKey == 0 {
		cfg.SelectionKey = ModShift
	}
	if cfg.RebindDelay <= 0 {
		cfg.RebindDelay = defaultRebindDelay
	}
	if cfg.ClickInterval <= 0 {
		cfg.ClickInterval = defaultClickInterval
	}
	if cfg.TouchCornerPad <= 0 {
		cfg.TouchCornerPad = defaultTouchPad
	}
	e := &Editor{
		root:          root,
		resolver:      newTreeResolver(root, cfg.TouchCornerPad),
		factory:       NewActiveSelection,
		cfg:           cfg,
		arena:         make(map[uint32]*Shape),
		viewTransform: identityTransform,
		mainTouchID:   -1,
		now:           time.Now,
	}
	e.registerTree(root)
	return e
}

// Root returns the scene root the editor operates on.
func (e *Editor) Root() *Shape {
	return e.root
}

// Config returns a copy of the effective interaction configuration.
func (e *Editor) Config() InteractionConfig {
	return e.cfg
}

// SetTargetResolver replaces the hit-testing strategy.
func (e *Editor) SetTargetResolver(r TargetResolver) {
	if r == nil {
		panic("canvaskit: nil TargetResolver")
	}
	e.resolver = r
}

// SetCompositeFactory replaces how multi-selections become composites.
func (e *Editor) SetCompositeFactory(f CompositeFactory) {
	if f == nil {
		panic("canvaskit: nil CompositeFactory")
	}
	e.factory = f
}

// SetRenderRequester sets the host repaint hook.
func (e *Editor) SetRenderRequester(r RenderRequester) {
	e.renderer = r
}

// SetDebugMode toggles interaction tracing to stderr.
func (e *Editor) SetDebugMode(enabled bool) {
	e.debug = enabled
}

func (e *Editor) debugf(format string, args ...any) {
	if e.debug {
		fmt.Fprintf(os.Stderr, "canvaskit: "+format+"\n", args...)
	}
}

func (e *Editor) requestRender() {
	if e.renderer != nil {
		e.renderer.RequestRender()
	}
}

// defer_ queues fn to run after the current HandleRaw dispatch completes.
func (e *Editor) defer_(fn func()) {
	e.deferred = append(e.deferred, fn)
}

func (e *Editor) flushDeferred() {
	for len(e.deferred) > 0 {
		queue := e.deferred
		e.deferred = nil
		for _, fn := range queue {
			fn()
		}
	}
}

// --- Shape registry ---

// AddShape attaches child under parent and registers its subtree with the
// editor's lookup arena.
func (e *Editor) AddShape(parent, child *Shape) {
	if parent == nil {
		parent = e.root
	}
	parent.AddChild(child)
	e.registerTree(child)
}

// RemoveShape detaches s from its parent and purges its subtree from every
// piece of interaction state that could reference it.
func (e *Editor) RemoveShape(s *Shape) {
	if s == nil || s == e.root {
		return
	}
	s.RemoveFromParent()
	e.forgetTree(s)
}

// ShapeByID looks up a registered shape by its id.
func (e *Editor) ShapeByID(id uint32) *Shape {
	return e.arena[id]
}

func (e *Editor) registerTree(s *Shape) {
	e.arena[s.ID] = s
	for _, c := range s.children {
		e.registerTree(c)
	}
}

func (e *Editor) forgetTree(s *Shape) {
	e.forgetShape(s)
	for _, c := range s.children {
		e.forgetTree(c)
	}
}

// forgetShape severs s from the selection, hover, drag, and session state so
// a removed shape can never be dispatched to again.
func (e *Editor) forgetShape(s *Shape) {
	delete(e.arena, s.ID)
	if e.session != nil && e.session.target == s {
		e.clearSession()
	}
	if e.active == s {
		e.active = nil
	} else if e.active != nil && e.active.isActiveSelection && containsMember(e.active.members, s) {
		e.toggleMemberOut(s)
	}
	if e.pendingActivation == s {
		e.pendingActivation = nil
	}
	if e.hover.Target == s {
		e.hover = HoverState{}
	}
	if e.drag.Source == s || e.drag.DropCandidate == s {
		e.drag = DragState{}
	}
	e.resetEventCache()
}

// toggleMemberOut removes s from the active composite, collapsing to the
// sole survivor when only one member remains. Listeners hear the same
// update every other membership change emits.
func (e *Editor) toggleMemberOut(s *Shape) {
	g := e.active
	previous := append([]*Shape(nil), g.members...)
	keep := g.members[:0]
	for _, m := range g.members {
		if m != s {
			keep = append(keep, m)
		}
	}
	g.members = keep
	s.group = 0
	if len(g.members) == 1 {
		sole := g.members[0]
		e.dissolveComposite(g)
		e.active = sole
	}
	e.fireSelectionChange(nil, true, previous, nil, []*Shape{s})
}

// Discard tears the editor down: listeners removed, selection dropped, and
// the lookup arena cleared. The scene tree itself is untouched.
func (e *Editor) Discard() {
	e.RemoveListeners()
	if e.active != nil {
		e.dissolveComposite(e.active)
		e.active = nil
	}
	e.pendingActivation = nil
	e.arena = make(map[uint32]*Shape)
}

// --- Dispatch ---

// HandleRaw is the single entry point for platform input. It normalizes the
// raw event, runs the interaction state machine for main-pointer events, and
// dispatches to registered handlers. The return value reports whether the
// host should suppress the platform's default behavior for this event.
func (e *Editor) HandleRaw(raw RawEvent) bool {
	if !e.listenersBound {
		return false
	}
	if !e.acceptsDevice(&raw) {
		return false
	}
	defer e.resetEventCache()

	e.trackTouch(&raw)
	ev := e.normalize(&raw)

	consumed := false
	switch raw.Kind {
	case EventDown:
		e.handleDown(ev)
	case EventMove:
		e.handleMove(ev)
	case EventUp:
		e.handleUp(ev)
	case EventOut:
		e.handleOut(ev)
	case EventEnter:
		e.handleEnter(ev)
	case EventWheel:
		e.handleWheel(ev)
	case EventDblClick:
		e.firePointer(EventDblClick, &e.handlers.dblClick, ev, e.hitForEvent(ev))
	case EventTripleClick:
		e.firePointer(EventTripleClick, &e.handlers.triClick, ev, e.hitForEvent(ev))
	case EventDragStart:
		consumed = e.handleDragStart(ev)
	case EventDrag:
		e.handleDrag(ev)
	case EventDragOver:
		consumed = e.handleDragOver(ev)
	case EventDrop:
		e.handleDrop(ev)
	case EventDragEnd:
		e.handleDragEnd(ev)
	default:
		panic(fmt.Sprintf("canvaskit: unknown event kind %d", raw.Kind))
	}

	e.flushDeferred()
	return consumed
}

func (e *Editor) handleDown(ev *PointerEvent) {
	hit := e.hitForEvent(ev)
	e.handlers.downBefore.fire(PointerEventContext{Event: ev, Target: hit.Target, SubTargets: hit.SubTargets})

	if !ev.IsMain {
		return
	}
	if ev.Raw.Device != DeviceTouch && !e.mouseInputAccepted(ev.Raw) {
		return
	}
	// Re-entrancy guard: a second main down while a session is in flight is
	// a platform glitch, not a new gesture.
	if e.session == nil {
		target := e.activeControlTarget(ev)
		if target == nil {
			target = e.applyDownSelection(ev, hit)
		}
		if target != nil {
			if e.startTransform(ev, target) {
				e.debugf("session start target=%d corner=%s", e.session.target.ID, e.session.corner)
			}
			if !e.cfg.PreserveObjectStacking && !target.isActiveSelection {
				target.BringToFront()
			}
		} else if e.cfg.RegionSelection && !e.isSelectionKey(ev) &&
			(hit.Target == nil || !hit.Target.Selectable) {
			e.startAreaSelect(ev)
		}
		e.downViewport = ev.Viewport
		e.pastDeadZone = false
	}
	e.trackingOutside = true

	e.firePointer(EventDown, &e.handlers.down, ev, hit)
	e.requestRender()
}

// activeControlTarget resolves a down that lands on one of the active
// shape's control handles. Handles can sit outside the shape's own hit
// region (the rotate handle floats above the top edge), so they take
// precedence over the scene hit: the selection is kept and the session
// binds to the active shape.
func (e *Editor) activeControlTarget(ev *PointerEvent) *Shape {
	if e.active == nil || !e.active.HasControls {
		return nil
	}
	if _, _, ok := e.resolver.FindControlAt(e.active, ev); ok {
		return e.active
	}
	return nil
}

func (e *Editor) handleMove(ev *PointerEvent) {
	hit := e.hitForEvent(ev)
	e.handlers.moveBefore.fire(PointerEventContext{Event: ev, Target: hit.Target, SubTargets: hit.SubTargets})

	if !ev.IsMain {
		return
	}
	if ev.Raw.Device != DeviceTouch && !e.mouseInputAccepted(ev.Raw) {
		return
	}
	switch {
	case e.selector != nil:
		e.updateAreaSelect(ev)
	case e.session != nil:
		if !e.pastDeadZone {
			dx := ev.Viewport.X - e.downViewport.X
			dy := ev.Viewport.Y - e.downViewport.Y
			if math.Hypot(dx, dy) < e.cfg.DragDeadZone {
				break
			}
			e.pastDeadZone = true
		}
		e.updateTransform(ev)
	default:
		e.fireHoverTransitions(ev, hit)
	}

	e.firePointer(EventMove, &e.handlers.move, ev, hit)
}

func (e *Editor) handleUp(ev *PointerEvent) {
	hit := e.hitForEvent(ev)
	e.handlers.upBefore.fire(PointerEventContext{Event: ev, Target: hit.Target, SubTargets: hit.SubTargets})

	if !ev.IsMain {
		return
	}
	if ev.Raw.Device != DeviceTouch && !e.mouseInputAccepted(ev.Raw) {
		return
	}
	e.trackingOutside = false

	if e.selector != nil {
		e.finalizeAreaSelect(ev)
		e.firePointer(EventUp, &e.handlers.up, ev, hit)
		return
	}

	performed := e.finalizeTransform(ev)
	if performed {
		e.debugf("session end target=%d", func() uint32 {
			if hit.Target != nil {
				return hit.Target.ID
			}
			return 0
		}())
	}
	e.applyUpSelection(ev, hit, performed)
	if !performed {
		e.classifyClick(ev, hit)
	}

	e.firePointer(EventUp, &e.handlers.up, ev, hit)
	e.requestRender()
}

// classifyClick maintains the click chain and fires double/triple click
// events from release timestamps. The chain breaks when the interval or the
// dead-zone distance between releases is exceeded.
func (e *Editor) classifyClick(ev *PointerEvent, hit HitResult) {
	t := e.eventTime(ev.Raw)
	dx := ev.Viewport.X - e.lastClickPos.X
	dy := ev.Viewport.Y - e.lastClickPos.Y
	within := e.clickChain > 0 &&
		t.Sub(e.lastClickAt) <= e.cfg.ClickInterval &&
		math.Hypot(dx, dy) < e.cfg.DragDeadZone

	if within {
		e.clickChain++
	} else {
		e.clickChain = 1
	}
	e.lastClickAt = t
	e.lastClickPos = ev.Viewport

	switch e.clickChain {
	case 2:
		e.firePointer(EventDblClick, &e.handlers.dblClick, ev, hit)
	case 3:
		e.firePointer(EventTripleClick, &e.handlers.triClick, ev, hit)
		e.clickChain = 0
	}
}

// handleOut fires when the pointer leaves the canvas. Hover state is flushed
// unless a pressed gesture is still being tracked outside the canvas, in
// which case the lineage survives until the release.
func (e *Editor) handleOut(ev *PointerEvent) {
	if e.trackingOutside {
		return
	}
	e.fireHoverTransitions(ev, HitResult{})
	e.requestRender()
}

// handleEnter re-seeds hover state when the pointer re-enters the canvas.
func (e *Editor) handleEnter(ev *PointerEvent) {
	if e.session != nil || e.selector != nil {
		return
	}
	e.fireHoverTransitions(ev, e.hitForEvent(ev))
}

// handleWheel normalizes and broadcasts; the editor takes no scrolling or
// zooming action of its own.
func (e *Editor) handleWheel(ev *PointerEvent) {
	e.firePointer(EventWheel, &e.handlers.wheel, ev, e.hitForEvent(ev))
}

// --- Cursor ---

// CursorFor reports the cursor name the host should show for the pointer
// position: the in-flight session's control cursor wins, then a control
// under the pointer on the active shape, then the hit shape's hover cursor.
func (e *Editor) CursorFor(ev *PointerEvent) string {
	if e.session != nil {
		return e.session.control.Cursor
	}
	if e.active != nil && e.active.HasControls {
		if _, c, ok := e.resolver.FindControlAt(e.active, ev); ok {
			return c.Cursor
		}
	}
	if hit := e.resolver.ResolveTarget(ev); hit.Target != nil {
		if hit.Target.HoverCursor != "" {
			return hit.Target.HoverCursor
		}
		if hit.Target.Movable {
			return "move"
		}
	}
	return "default"
}
