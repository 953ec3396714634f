package canvaskit

// Typed event contracts. Each event family carries a discriminated context
// struct instead of a loosely-typed payload bag; the firing order is always
// canvas level first, then the target, then each distinct sub-target.

// PointerEventContext carries pointer event data (down/move/up/out/enter,
// wheel, multi-click). Wheel deltas live on Event.Raw.
type PointerEventContext struct {
	Event      *PointerEvent
	Target     *Shape
	SubTargets []*Shape
}

// TransitionContext carries a synthetic enter/leave transition. Target is
// the shape entered or left; Previous/Next are the other side of the
// transition (nil when entering from or leaving to empty space).
type TransitionContext struct {
	Event    *PointerEvent
	Target   *Shape
	Previous *Shape
	Next     *Shape
}

// DropResult is the mutable drop outcome. The accepting target populates it
// during the drop event; the coordinator never decides the outcome itself.
type DropResult struct {
	DidDrop    bool
	DropTarget *Shape
}

// DragEventContext carries native drag-and-drop protocol data.
// Result is non-nil only for the drop:before / drop / drop:after phases.
type DragEventContext struct {
	Event      *PointerEvent
	Source     *Shape
	Target     *Shape
	SubTargets []*Shape
	DidDrop    bool
	Result     *DropResult
}

// SelectionContext carries a selection transition: the member list before
// the gesture and the members selected and deselected by it. Fired exactly
// once per gesture, after the mutation.
type SelectionContext struct {
	Event      *PointerEvent
	Previous   []*Shape
	Selected   []*Shape
	Deselected []*Shape
}

// --- Handler registry ---

type handlerEntry[T any] struct {
	id uint32
	fn func(T)
}

// handlerList is an ordered list of callbacks for one event family.
type handlerList[T any] struct {
	entries []handlerEntry[T]
}

func (l *handlerList[T]) remove(id uint32) {
	for i := range l.entries {
		if l.entries[i].id == id {
			copy(l.entries[i:], l.entries[i+1:])
			l.entries[len(l.entries)-1] = handlerEntry[T]{}
			l.entries = l.entries[:len(l.entries)-1]
			return
		}
	}
}

func (l *handlerList[T]) fire(ctx T) {
	for _, h := range l.entries {
		h.fn(ctx)
	}
}

// CallbackHandle allows removing a registered editor-level callback.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}

// register appends fn to list and returns a removable handle.
func register[T any](e *Editor, l *handlerList[T], fn func(T)) CallbackHandle {
	e.handlers.nextID++
	id := e.handlers.nextID
	l.entries = append(l.entries, handlerEntry[T]{id: id, fn: fn})
	return CallbackHandle{remove: func() { l.remove(id) }}
}

// handlerRegistry holds the editor-level callback lists, one per family.
type handlerRegistry struct {
	downBefore handlerList[PointerEventContext]
	down       handlerList[PointerEventContext]
	moveBefore handlerList[PointerEventContext]
	move       handlerList[PointerEventContext]
	upBefore   handlerList[PointerEventContext]
	up         handlerList[PointerEventContext]
	wheel      handlerList[PointerEventContext]
	dblClick   handlerList[PointerEventContext]
	triClick   handlerList[PointerEventContext]

	mouseOver handlerList[TransitionContext]
	mouseOut  handlerList[TransitionContext]
	dragEnter handlerList[TransitionContext]
	dragLeave handlerList[TransitionContext]

	dragStart  handlerList[DragEventContext]
	drag       handlerList[DragEventContext]
	dragOver   handlerList[DragEventContext]
	dropBefore handlerList[DragEventContext]
	drop       handlerList[DragEventContext]
	dropAfter  handlerList[DragEventContext]
	dragEnd    handlerList[DragEventContext]

	selectionCreated handlerList[SelectionContext]
	selectionUpdated handlerList[SelectionContext]
	selectionCleared handlerList[SelectionContext]

	nextID uint32
}

// --- Editor-level event registration ---

// OnDownBefore registers a callback fired before pointer-down handling.
// Before-phase callbacks also receive secondary-pointer events.
func (e *Editor) OnDownBefore(fn func(PointerEventContext)) CallbackHandle {
	return register(e, &e.handlers.downBefore, fn)
}

// OnDown registers a callback for pointer down events.
func (e *Editor) OnDown(fn func(PointerEventContext)) CallbackHandle {
	return register(e, &e.handlers.down, fn)
}

// OnMoveBefore registers a callback fired before pointer-move handling.
func (e *Editor) OnMoveBefore(fn func(PointerEventContext)) CallbackHandle {
	return register(e, &e.handlers.moveBefore, fn)
}

// OnMove registers a callback for pointer move events.
func (e *Editor) OnMove(fn func(PointerEventContext)) CallbackHandle {
	return register(e, &e.handlers.move, fn)
}

// OnUpBefore registers a callback fired before pointer-up handling.
func (e *Editor) OnUpBefore(fn func(PointerEventContext)) CallbackHandle {
	return register(e, &e.handlers.upBefore, fn)
}

// OnUp registers a callback for pointer up events.
func (e *Editor) OnUp(fn func(PointerEventContext)) CallbackHandle {
	return register(e, &e.handlers.up, fn)
}

// OnWheel registers a callback for wheel events. Deltas are on Event.Raw.
func (e *Editor) OnWheel(fn func(PointerEventContext)) CallbackHandle {
	return register(e, &e.handlers.wheel, fn)
}

// OnDblClick registers a callback for double clicks.
func (e *Editor) OnDblClick(fn func(PointerEventContext)) CallbackHandle {
	return register(e, &e.handlers.dblClick, fn)
}

// OnTripleClick registers a callback for triple clicks.
func (e *Editor) OnTripleClick(fn func(PointerEventContext)) CallbackHandle {
	return register(e, &e.handlers.triClick, fn)
}

// OnMouseOver registers a callback for synthetic hover enter transitions.
func (e *Editor) OnMouseOver(fn func(TransitionContext)) CallbackHandle {
	return register(e, &e.handlers.mouseOver, fn)
}

// OnMouseOut registers a callback for synthetic hover leave transitions.
func (e *Editor) OnMouseOut(fn func(TransitionContext)) CallbackHandle {
	return register(e, &e.handlers.mouseOut, fn)
}

// OnDragEnter registers a callback for synthetic drag enter transitions.
func (e *Editor) OnDragEnter(fn func(TransitionContext)) CallbackHandle {
	return register(e, &e.handlers.dragEnter, fn)
}

// OnDragLeave registers a callback for synthetic drag leave transitions.
func (e *Editor) OnDragLeave(fn func(TransitionContext)) CallbackHandle {
	return register(e, &e.handlers.dragLeave, fn)
}

// OnDragStart registers a callback fired when a native drag is accepted.
func (e *Editor) OnDragStart(fn func(DragEventContext)) CallbackHandle {
	return register(e, &e.handlers.dragStart, fn)
}

// OnDrag registers a callback for source-side native drag progress.
func (e *Editor) OnDrag(fn func(DragEventContext)) CallbackHandle {
	return register(e, &e.handlers.drag, fn)
}

// OnDragOver registers a callback for native drag-over events.
func (e *Editor) OnDragOver(fn func(DragEventContext)) CallbackHandle {
	return register(e, &e.handlers.dragOver, fn)
}

// OnDropBefore registers a callback for the drop veto phase.
func (e *Editor) OnDropBefore(fn func(DragEventContext)) CallbackHandle {
	return register(e, &e.handlers.dropBefore, fn)
}

// OnDrop registers a callback for the main drop event. The context's Result
// is mutable and is expected to be populated by the accepting target.
func (e *Editor) OnDrop(fn func(DragEventContext)) CallbackHandle {
	return register(e, &e.handlers.drop, fn)
}

// OnDropAfter registers a callback fired after the drop event.
func (e *Editor) OnDropAfter(fn func(DragEventContext)) CallbackHandle {
	return register(e, &e.handlers.dropAfter, fn)
}

// OnDragEnd registers a callback fired when a native drag finishes,
// whether dropped or cancelled.
func (e *Editor) OnDragEnd(fn func(DragEventContext)) CallbackHandle {
	return register(e, &e.handlers.dragEnd, fn)
}

// OnSelectionCreated registers a callback for new selections.
func (e *Editor) OnSelectionCreated(fn func(SelectionContext)) CallbackHandle {
	return register(e, &e.handlers.selectionCreated, fn)
}

// OnSelectionUpdated registers a callback for selection membership changes.
func (e *Editor) OnSelectionUpdated(fn func(SelectionContext)) CallbackHandle {
	return register(e, &e.handlers.selectionUpdated, fn)
}

// OnSelectionCleared registers a callback for selection discards.
func (e *Editor) OnSelectionCleared(fn func(SelectionContext)) CallbackHandle {
	return register(e, &e.handlers.selectionCleared, fn)
}

// --- Dispatch helpers ---

// firePointer dispatches one pointer-family event: editor-level handlers
// first, then the target's callback, then each distinct sub-target's.
func (e *Editor) firePointer(kind EventKind, l *handlerList[PointerEventContext], ev *PointerEvent, hit HitResult) {
	ctx := PointerEventContext{Event: ev, Target: hit.Target, SubTargets: hit.SubTargets}
	l.fire(ctx)

	cb := func(s *Shape) func(PointerEventContext) {
		switch kind {
		case EventDown:
			return s.OnMouseDown
		case EventUp:
			return s.OnMouseUp
		case EventMove:
			return s.OnMouseMove
		}
		return nil
	}
	if hit.Target != nil {
		if fn := cb(hit.Target); fn != nil {
			fn(ctx)
		}
	}
	for _, sub := range hit.SubTargets {
		if sub == hit.Target {
			continue
		}
		if fn := cb(sub); fn != nil {
			fn(ctx)
		}
	}
	e.emitInteraction(kind, hit.Target, ev)
}

// --- ECS bridge ---

// EntityStore is the interface for optional ECS integration. When set on an
// Editor, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Kind      EventKind
	EntityID  uint32
	SceneX    float64
	SceneY    float64
	ViewportX float64
	ViewportY float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// SetEntityStore sets the optional ECS bridge.
func (e *Editor) SetEntityStore(store EntityStore) {
	e.store = store
}

func (e *Editor) emitInteraction(kind EventKind, target *Shape, ev *PointerEvent) {
	if e.store == nil || target == nil || target.EntityID == 0 {
		return
	}
	e.store.EmitEvent(InteractionEvent{
		Kind:      kind,
		EntityID:  target.EntityID,
		SceneX:    ev.Scene.X,
		SceneY:    ev.Scene.Y,
		ViewportX: ev.Viewport.X,
		ViewportY: ev.Viewport.Y,
		Button:    ev.Button,
		Modifiers: ev.Modifiers,
	})
}
