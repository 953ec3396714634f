package canvaskit

import "testing"

func sceneEvent(x, y float64) *PointerEvent {
	raw := &RawEvent{Kind: EventMove, Device: DeviceMouse, X: x, Y: y, IsPrimary: true}
	return &PointerEvent{Raw: raw, Viewport: Point{X: x, Y: y}, Scene: Point{X: x, Y: y}, IsMain: true}
}

func touchEvent(x, y float64) *PointerEvent {
	raw := &RawEvent{Kind: EventMove, Device: DeviceTouch, X: x, Y: y}
	return &PointerEvent{Raw: raw, Viewport: Point{X: x, Y: y}, Scene: Point{X: x, Y: y}, IsMain: true}
}

func TestResolveTargetTopmostWins(t *testing.T) {
	root := NewGroup("root")
	bottom := NewRect("bottom", 100, 100)
	top := NewRect("top", 100, 100)
	top.X, top.Y = 50, 50
	root.AddChild(bottom)
	root.AddChild(top)

	r := newTreeResolver(root, 0)
	hit := r.ResolveTarget(sceneEvent(75, 75)) // overlap region

	if hit.Target != top {
		t.Fatalf("target = %v, want top", hit.Target)
	}
	if len(hit.SubTargets) != 1 || hit.SubTargets[0] != bottom {
		t.Errorf("sub-targets = %v, want [bottom]", hit.SubTargets)
	}
}

func TestResolveTargetRespectsZIndex(t *testing.T) {
	root := NewGroup("root")
	a := NewRect("a", 100, 100)
	b := NewRect("b", 100, 100)
	root.AddChild(a)
	root.AddChild(b)
	a.SetZIndex(10) // a paints above b despite insertion order

	r := newTreeResolver(root, 0)
	if hit := r.ResolveTarget(sceneEvent(50, 50)); hit.Target != a {
		t.Errorf("target = %v, want a", hit.Target)
	}
}

func TestResolveTargetSkipsInvisibleSubtree(t *testing.T) {
	root := NewGroup("root")
	g := NewGroup("g")
	child := NewRect("child", 100, 100)
	g.AddChild(child)
	root.AddChild(g)
	g.Visible = false

	r := newTreeResolver(root, 0)
	if hit := r.ResolveTarget(sceneEvent(50, 50)); hit.Target != nil {
		t.Errorf("hit %v inside invisible subtree", hit.Target)
	}
}

func TestResolveTargetSkipsNonInteractable(t *testing.T) {
	root := NewGroup("root")
	a := NewRect("a", 100, 100)
	b := NewRect("b", 100, 100)
	root.AddChild(a)
	root.AddChild(b)
	b.Interactable = false

	r := newTreeResolver(root, 0)
	if hit := r.ResolveTarget(sceneEvent(50, 50)); hit.Target != a {
		t.Errorf("target = %v, want a (b is inert)", hit.Target)
	}
}

func TestResolveTargetContainerIsNearestGroup(t *testing.T) {
	root := NewGroup("root")
	outer := NewGroup("outer")
	inner := NewGroup("inner")
	leaf := NewRect("leaf", 50, 50)
	inner.AddChild(leaf)
	outer.AddChild(inner)
	root.AddChild(outer)

	r := newTreeResolver(root, 0)
	hit := r.ResolveTarget(sceneEvent(25, 25))
	if hit.Target != leaf {
		t.Fatalf("target = %v, want leaf", hit.Target)
	}
	if hit.Container != inner {
		t.Errorf("container = %v, want inner", hit.Container)
	}
}

func TestResolveTargetRootIsNotContainer(t *testing.T) {
	root := NewGroup("root")
	leaf := NewRect("leaf", 50, 50)
	root.AddChild(leaf)

	r := newTreeResolver(root, 0)
	if hit := r.ResolveTarget(sceneEvent(25, 25)); hit.Container != nil {
		t.Errorf("container = %v, want nil for direct root child", hit.Container)
	}
}

func TestFindControlAtCorner(t *testing.T) {
	root := NewGroup("root")
	s := NewRect("s", 100, 100)
	root.AddChild(s)

	r := newTreeResolver(root, 0)

	key, c, ok := r.FindControlAt(s, sceneEvent(100, 100)) // br corner
	if !ok || key != "br" {
		t.Fatalf("got %q (ok=%v), want br", key, ok)
	}
	if c.Action != ActionScale {
		t.Error("br should scale")
	}

	if _, _, ok := r.FindControlAt(s, sceneEvent(50, 50)); ok {
		t.Error("body center is not a control")
	}
}

func TestFindControlAtRotateHandle(t *testing.T) {
	root := NewGroup("root")
	s := NewRect("s", 100, 100)
	root.AddChild(s)

	r := newTreeResolver(root, 0)
	key, _, ok := r.FindControlAt(s, sceneEvent(50, -24))
	if !ok || key != "mtr" {
		t.Errorf("got %q (ok=%v), want mtr", key, ok)
	}
}

func TestFindControlAtTouchPad(t *testing.T) {
	root := NewGroup("root")
	s := NewRect("s", 100, 100)
	root.AddChild(s)

	r := newTreeResolver(root, 10)

	// 12px from the corner: outside the mouse radius (6), inside touch (16).
	if _, _, ok := r.FindControlAt(s, sceneEvent(112, 100)); ok {
		t.Error("mouse hit should miss at 12px")
	}
	if key, _, ok := r.FindControlAt(s, touchEvent(112, 100)); !ok || key != "br" {
		t.Errorf("touch hit got %q (ok=%v), want br", key, ok)
	}
}

func TestFindControlAtDisabled(t *testing.T) {
	root := NewGroup("root")
	s := NewRect("s", 100, 100)
	s.HasControls = false
	root.AddChild(s)

	r := newTreeResolver(root, 0)
	if _, _, ok := r.FindControlAt(s, sceneEvent(100, 100)); ok {
		t.Error("controls disabled; nothing should hit")
	}
}
