package canvaskit

// Point is a 2D point. The coordinate system has its origin at the top-left,
// with Y increasing downward. Viewport points are in host pixel space; scene
// points are viewport points passed through the editor's view transform.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// ContainsRect reports whether other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.Width <= r.X+r.Width &&
		other.Y+other.Height <= r.Y+r.Height
}

// union returns the smallest rectangle containing both r and other.
func (r Rect) union(other Rect) Rect {
	x0 := min(r.X, other.X)
	y0 := min(r.Y, other.Y)
	x1 := max(r.X+r.Width, other.X+other.Width)
	y1 := max(r.Y+r.Height, other.Y+other.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// EventKind identifies a kind of raw input event delivered to the editor.
type EventKind uint8

const (
	EventDown        EventKind = iota // pointer/mouse button press or touch start
	EventMove                         // pointer/mouse/touch move
	EventUp                           // pointer/mouse button release or touch end
	EventOut                          // pointer left the hosting canvas
	EventEnter                        // pointer entered the hosting canvas
	EventWheel                        // scroll wheel
	EventDblClick                     // platform-delivered double click
	EventTripleClick                  // platform-delivered triple click
	EventDragStart                    // native drag started on the active shape
	EventDrag                         // native drag progress from the source side
	EventDragOver                     // native drag moving over the canvas
	EventDrop                         // native drop on the canvas
	EventDragEnd                      // native drag finished (dropped or cancelled)
)

// Device identifies the input device family a raw event came from.
type Device uint8

const (
	DeviceMouse   Device = iota // mouse events
	DeviceTouch                 // touch events
	DevicePointer               // unified pointer events
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// ActionKind identifies the manipulation a transform session performs.
type ActionKind uint8

const (
	ActionMove   ActionKind = iota // translate the target
	ActionScale                    // scale the target around the opposite corner
	ActionRotate                   // rotate the target around its center
	ActionCustom                   // control-supplied action handler
)

// ActivationTrigger selects when a shape becomes the active selection.
type ActivationTrigger uint8

const (
	ActivateOnDown ActivationTrigger = iota // select immediately on pointer down
	ActivateOnUp                            // select on pointer up if still the target and no drag occurred
)

// DropEffect is the platform-reported outcome of a native drag.
type DropEffect uint8

const (
	DropEffectNone DropEffect = iota // drag cancelled or rejected
	DropEffectMove                   // drop accepted as a move
	DropEffectCopy                   // drop accepted as a copy
)
