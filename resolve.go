package canvaskit

// HitResult is the outcome of resolving a canonical event against the scene:
// the top-most hit shape, every other shape overlapping the point (top-most
// first), and the nearest group ancestor of the target.
type HitResult struct {
	Target     *Shape
	SubTargets []*Shape
	Container  *Shape
}

// TargetResolver answers hit queries for the interaction core. It is queried,
// never mutated; implementations must be synchronous.
type TargetResolver interface {
	// ResolveTarget returns the hit result for the event's scene point.
	ResolveTarget(ev *PointerEvent) HitResult

	// FindControlAt returns the control of s under the event's scene point,
	// with its key, or ok=false when no control is hit. Touch input widens
	// the hit pad.
	FindControlAt(s *Shape, ev *PointerEvent) (key string, c *Control, ok bool)
}

// treeResolver is the default TargetResolver: a reverse paint-order walk of
// the shape tree rooted at the editor's root.
type treeResolver struct {
	root     *Shape
	hitBuf   []*Shape
	touchPad float64
}

// newTreeResolver creates the default resolver for a root shape.
func newTreeResolver(root *Shape, touchPad float64) *treeResolver {
	return &treeResolver{root: root, touchPad: touchPad}
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending interactable hit-testable shapes to buf. Skips Visible=false or
// Interactable=false subtrees.
func (r *treeResolver) collectInteractable(s *Shape, buf []*Shape) []*Shape {
	if !s.Visible || !s.Interactable {
		return buf
	}
	if s.Kind != ShapeGroup || s.Width != 0 || s.Height != 0 {
		buf = append(buf, s)
	}
	for _, child := range s.paintOrderChildren() {
		buf = r.collectInteractable(child, buf)
	}
	return buf
}

// ResolveTarget finds every interactable shape containing the scene point,
// top-most first. The first hit is the target; the remainder are the
// overlapping sub-targets.
func (r *treeResolver) ResolveTarget(ev *PointerEvent) HitResult {
	updateWorldTransform(r.root, identityTransform, false)
	r.hitBuf = r.collectInteractable(r.root, r.hitBuf[:0])

	var res HitResult
	// Iterate backward (reverse painter order): topmost visual shape first.
	for i := len(r.hitBuf) - 1; i >= 0; i-- {
		s := r.hitBuf[i]
		lx, ly := s.WorldToLocal(ev.Scene.X, ev.Scene.Y)
		if !s.containsLocal(lx, ly) {
			continue
		}
		if res.Target == nil {
			res.Target = s
		} else {
			res.SubTargets = append(res.SubTargets, s)
		}
	}
	if res.Target != nil {
		res.Container = nearestGroup(res.Target)
	}
	return res
}

// nearestGroup returns the closest group ancestor of s, excluding the root.
func nearestGroup(s *Shape) *Shape {
	for p := s.Parent; p != nil && p.Parent != nil; p = p.Parent {
		if p.Kind == ShapeGroup {
			return p
		}
	}
	return nil
}

// FindControlAt checks each of the shape's controls (DefaultControls when the
// shape declares none) against the scene point. Touch input widens the
// control's hit radius by the resolver's touch pad.
func (r *treeResolver) FindControlAt(s *Shape, ev *PointerEvent) (string, *Control, bool) {
	if s == nil || !s.HasControls {
		return "", nil, false
	}
	controls := s.Controls
	if controls == nil {
		controls = DefaultControls()
	}
	pad := 0.0
	if ev.Raw != nil && ev.Raw.Device == DeviceTouch {
		pad = r.touchPad
	}
	for _, key := range controlKeys(controls) {
		c := controls[key]
		ax, ay := controlAnchor(s, c)
		dx := ev.Scene.X - ax
		dy := ev.Scene.Y - ay
		reach := c.Size/2 + pad
		if dx*dx+dy*dy <= reach*reach {
			return key, c, true
		}
	}
	return "", nil, false
}

// controlAnchor returns the scene-space position of a control on its shape.
// Active-selection composites anchor controls on the aggregate bounds since
// the composite has no transform of its own.
func controlAnchor(s *Shape, c *Control) (float64, float64) {
	if s.isActiveSelection {
		b := s.Bounds()
		return b.X + (c.X+0.5)*b.Width, b.Y + (c.Y+0.5)*b.Height + c.OffsetY
	}
	s.ensureWorld()
	lx := (c.X + 0.5) * s.Width
	ly := (c.Y+0.5)*s.Height + c.OffsetY
	return s.LocalToWorld(lx, ly)
}
