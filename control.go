package canvaskit

import (
	"math"
	"sort"
)

// TransformArgs is the live math context of a transform session: the start
// snapshot a control's action handler works against. All pointer coordinates
// are in the target's parent space.
type TransformArgs struct {
	Target *Shape
	Corner string
	Action ActionKind

	// Pointer position at session start.
	StartX, StartY float64

	// Grab offset from the shape's position at start, so the shape does not
	// jump to the cursor on the first move.
	OffsetX, OffsetY float64

	// Last pointer position an action was applied for.
	LastX, LastY float64

	// Shape field snapshot at session start.
	OrigX, OrigY float64
	OrigScaleX   float64
	OrigScaleY   float64
	OrigRotation float64

	// Modifier snapshot at session start.
	Shift, Alt bool
}

// ActionHandler applies one pointer-move delta to the target. (px, py) is
// the pointer in the target's parent space. It returns whether a mutation
// actually occurred; a nil handler silently means "no mutation".
type ActionHandler func(ev *PointerEvent, t *TransformArgs, px, py float64) bool

// SessionHandler runs at the symmetric edges of a transform session.
// Controls that allocate temporary resources on mouse-down release them in
// the matching mouse-up, which the session manager replays on the original
// control if the pointer is released over a different one.
type SessionHandler func(ev *PointerEvent, t *TransformArgs)

// Control is a manipulation handle on a shape. X and Y position the control
// relative to the bounding box center in half-unit coordinates (-0.5 is the
// left/top edge, +0.5 the right/bottom edge); OffsetY shifts it in pixels.
type Control struct {
	X, Y    float64
	OffsetY float64
	Size    float64
	Cursor  string
	Action  ActionKind

	ActionHandler    ActionHandler
	MouseDownHandler SessionHandler
	MouseUpHandler   SessionHandler
}

const (
	defaultControlSize  = 12.0
	rotateHandleOffset  = -24.0
	rotationSnapRadians = 15 * math.Pi / 180
)

var defaultControls = map[string]*Control{
	"tl":  {X: -0.5, Y: -0.5, Size: defaultControlSize, Cursor: "nwse-resize", Action: ActionScale, ActionHandler: actionScale},
	"tr":  {X: 0.5, Y: -0.5, Size: defaultControlSize, Cursor: "nesw-resize", Action: ActionScale, ActionHandler: actionScale},
	"bl":  {X: -0.5, Y: 0.5, Size: defaultControlSize, Cursor: "nesw-resize", Action: ActionScale, ActionHandler: actionScale},
	"br":  {X: 0.5, Y: 0.5, Size: defaultControlSize, Cursor: "nwse-resize", Action: ActionScale, ActionHandler: actionScale},
	"mtr": {X: 0, Y: -0.5, OffsetY: rotateHandleOffset, Size: defaultControlSize, Cursor: "crosshair", Action: ActionRotate, ActionHandler: actionRotate},
}

// DefaultControls returns the standard handle set: four scaling corners and
// a rotation handle above the top edge. The returned map is shared; callers
// customizing controls should build their own map.
func DefaultControls() map[string]*Control {
	return defaultControls
}

// controlKeys returns the map keys in a deterministic order.
func controlKeys(controls map[string]*Control) []string {
	keys := make([]string, 0, len(controls))
	for k := range controls {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// --- Standard action handlers ---

// actionMove translates the target to follow the pointer, preserving the
// grab offset and honoring per-axis movement locks.
func actionMove(_ *PointerEvent, t *TransformArgs, px, py float64) bool {
	nx := px - t.OffsetX
	ny := py - t.OffsetY
	if t.Target.LockMovementX {
		nx = t.Target.X
	}
	if t.Target.LockMovementY {
		ny = t.Target.Y
	}
	if nx == t.Target.X && ny == t.Target.Y {
		return false
	}
	dx, dy := nx-t.Target.X, ny-t.Target.Y
	t.Target.SetPosition(nx, ny)

	// An active-selection composite holds members by reference; translating
	// it translates every member, each in its own parent space.
	if t.Target.isActiveSelection {
		for _, m := range t.Target.members {
			mdx, mdy := deltaToParentSpace(m, dx, dy)
			m.SetPosition(m.X+mdx, m.Y+mdy)
		}
	}
	return true
}

// deltaToParentSpace converts a scene-space translation into the coordinate
// space of s's parent (linear part only; translation deltas ignore origins).
func deltaToParentSpace(s *Shape, dx, dy float64) (float64, float64) {
	if s.Parent == nil {
		return dx, dy
	}
	inv := invertAffine(s.Parent.worldTransform)
	return inv[0]*dx + inv[2]*dy, inv[1]*dx + inv[3]*dy
}

// actionScale resizes the target by dragging a corner; the opposite corner
// stays anchored. Shift forces uniform scaling.
func actionScale(_ *PointerEvent, t *TransformArgs, px, py float64) bool {
	s := t.Target
	w := s.Width * t.OrigScaleX
	h := s.Height * t.OrigScaleY
	if s.Width == 0 || s.Height == 0 || w == 0 || h == 0 {
		return false
	}

	var newW, newH, newX, newY float64
	switch t.Corner {
	case "br":
		newW, newH = px-t.OrigX, py-t.OrigY
		newX, newY = t.OrigX, t.OrigY
	case "tr":
		newW, newH = px-t.OrigX, t.OrigY+h-py
		newX, newY = t.OrigX, py
	case "bl":
		newW, newH = t.OrigX+w-px, py-t.OrigY
		newX, newY = px, t.OrigY
	case "tl":
		newW, newH = t.OrigX+w-px, t.OrigY+h-py
		newX, newY = px, py
	default:
		return false
	}
	if newW <= 0 || newH <= 0 {
		return false
	}
	if t.Shift {
		// Uniform: the larger relative growth wins.
		k := max(newW/w, newH/h)
		grownW, grownH := w*k, h*k
		// Re-anchor the moving corner for the adjusted dimensions.
		if newX != t.OrigX {
			newX -= grownW - newW
		}
		if newY != t.OrigY {
			newY -= grownH - newH
		}
		newW, newH = grownW, grownH
	}

	sx := newW / s.Width
	sy := newH / s.Height
	if sx == s.ScaleX && sy == s.ScaleY && newX == s.X && newY == s.Y {
		return false
	}
	s.SetScale(sx, sy)
	s.SetPosition(newX, newY)
	return true
}

// actionRotate spins the target around its center by the angle swept from
// the session-start pointer direction. Shift snaps to 15° increments.
func actionRotate(_ *PointerEvent, t *TransformArgs, px, py float64) bool {
	s := t.Target
	cx := t.OrigX + s.Width*t.OrigScaleX/2
	cy := t.OrigY + s.Height*t.OrigScaleY/2

	startAngle := math.Atan2(t.StartY-cy, t.StartX-cx)
	angle := math.Atan2(py-cy, px-cx)
	rot := t.OrigRotation + (angle - startAngle)
	if t.Shift {
		rot = math.Round(rot/rotationSnapRadians) * rotationSnapRadians
	}
	if rot == s.Rotation {
		return false
	}
	s.SetRotation(rot)
	return true
}
