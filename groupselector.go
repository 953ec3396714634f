package canvaskit

// groupSelector is the transient rubber-band rectangle: an origin scene
// point plus a running delta. It exists only between a pointer-down on
// empty/non-selectable space and the matching pointer-up, produces a
// selection at finalize, and is then discarded.
type groupSelector struct {
	origin Point
	delta  Point
}

// rect returns the normalized rubber-band rectangle.
func (g *groupSelector) rect() Rect {
	x, y := g.origin.X, g.origin.Y
	w, h := g.delta.X, g.delta.Y
	if w < 0 {
		x += w
		w = -w
	}
	if h < 0 {
		y += h
		h = -h
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// degenerate reports whether the box collapsed to a point.
func (g *groupSelector) degenerate() bool {
	return g.delta.X == 0 && g.delta.Y == 0
}

// GroupSelectorRect returns the live rubber-band rectangle and whether one
// is being drawn. Hosts use it to render the selection box.
func (e *Editor) GroupSelectorRect() (Rect, bool) {
	if e.selector == nil {
		return Rect{}, false
	}
	return e.selector.rect(), true
}

// startAreaSelect begins a rubber-band gesture at the event's scene point.
func (e *Editor) startAreaSelect(ev *PointerEvent) {
	e.selector = &groupSelector{origin: ev.Scene}
	e.requestRender()
}

// updateAreaSelect accumulates the pointer delta into the rubber band.
func (e *Editor) updateAreaSelect(ev *PointerEvent) {
	if e.selector == nil {
		return
	}
	e.selector.delta = Point{
		X: ev.Scene.X - e.selector.origin.X,
		Y: ev.Scene.Y - e.selector.origin.Y,
	}
	e.requestRender()
}

// finalizeAreaSelect turns the rubber band into a selection and discards it.
// A degenerate box selects at most the top-most shape under the point; zero
// hits leave the selection unchanged; one hit becomes a plain selection;
// several are wrapped in a composite, top-most first.
func (e *Editor) finalizeAreaSelect(ev *PointerEvent) {
	sel := e.selector
	e.selector = nil
	if sel == nil {
		return
	}
	defer e.requestRender()

	var found []*Shape
	if sel.degenerate() {
		hit := e.hitForEvent(ev)
		if hit.Target != nil && e.regionSelectable(ev, hit.Target) {
			found = []*Shape{hit.Target}
		}
	} else {
		found = e.collectInRegion(ev, sel.rect())
	}

	switch len(found) {
	case 0:
		return
	case 1:
		e.SetActiveShape(found[0], ev)
	default:
		e.SetActiveShape(e.factory(found), ev)
	}
}

// collectInRegion gathers selectable shapes whose bounds fall inside the box
// (or merely intersect it when fully-contained mode is off), in reverse
// paint order so the top-most shape comes first.
func (e *Editor) collectInRegion(ev *PointerEvent, region Rect) []*Shape {
	var found []*Shape
	var walk func(s *Shape)
	walk = func(s *Shape) {
		if !s.Visible || !s.Interactable {
			return
		}
		children := s.paintOrderChildren()
		for i := len(children) - 1; i >= 0; i-- {
			walk(children[i])
		}
		if s == e.root || s.Kind == ShapeGroup && s.Width == 0 && s.Height == 0 {
			return
		}
		if !e.regionSelectable(ev, s) {
			return
		}
		b := s.Bounds()
		if e.cfg.GroupSelectFullyContained {
			if region.ContainsRect(b) {
				found = append(found, s)
			}
		} else if region.Intersects(b) {
			found = append(found, s)
		}
	}
	walk(e.root)
	return found
}

// regionSelectable consults the per-shape selection veto.
func (e *Editor) regionSelectable(ev *PointerEvent, s *Shape) bool {
	if !s.Selectable {
		return false
	}
	if s.OnSelectVeto != nil && s.OnSelectVeto(ev) {
		return false
	}
	return true
}
