package canvaskit

// Synthetic input. Injected events queue up and replay through HandleRaw on
// Flush, identical in every respect to platform input: they go through the
// same normalization, device filtering, and state machine. Useful for
// automation and for driving the editor from scripts.

// InjectPress queues a primary mouse press at the given viewport
// coordinates.
func (e *Editor) InjectPress(x, y float64) {
	e.injectQueue = append(e.injectQueue, RawEvent{
		Kind: EventDown, Device: DeviceMouse,
		X: x, Y: y,
		Button: MouseButtonLeft, IsPrimary: true,
	})
}

// InjectMove queues a pointer move at the given viewport coordinates.
func (e *Editor) InjectMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, RawEvent{
		Kind: EventMove, Device: DeviceMouse,
		X: x, Y: y,
		Button: MouseButtonLeft, IsPrimary: true,
	})
}

// InjectRelease queues a primary mouse release at the given viewport
// coordinates.
func (e *Editor) InjectRelease(x, y float64) {
	e.injectQueue = append(e.injectQueue, RawEvent{
		Kind: EventUp, Device: DeviceMouse,
		X: x, Y: y,
		Button: MouseButtonLeft, IsPrimary: true,
	})
}

// InjectClick queues a press followed by a release at the same point.
func (e *Editor) InjectClick(x, y float64) {
	e.InjectPress(x, y)
	e.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), steps-2
// linearly interpolated moves ending exactly at (toX, toY), and release at
// (toX, toY). Minimum steps is 3 (press + move + release): the release alone
// never applies movement, so the last move must land on the destination.
func (e *Editor) InjectDrag(fromX, fromY, toX, toY float64, steps int) {
	if steps < 3 {
		steps = 3
	}
	e.InjectPress(fromX, fromY)
	moves := steps - 2
	for i := 1; i <= moves; i++ {
		t := float64(i) / float64(moves)
		e.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.InjectRelease(toX, toY)
}

// Flush replays every queued synthetic event through HandleRaw in order.
func (e *Editor) Flush() {
	for len(e.injectQueue) > 0 {
		raw := e.injectQueue[0]
		copy(e.injectQueue, e.injectQueue[1:])
		e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]
		e.HandleRaw(raw)
	}
}
