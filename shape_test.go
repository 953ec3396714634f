package canvaskit

import (
	"math"
	"testing"
)

func TestAddChildReparents(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	child := NewRect("child", 10, 10)

	a.AddChild(child)
	if child.Parent != a || a.NumChildren() != 1 {
		t.Fatal("child not attached to a")
	}

	b.AddChild(child)
	if child.Parent != b {
		t.Error("child not reparented to b")
	}
	if a.NumChildren() != 0 {
		t.Errorf("a still has %d children", a.NumChildren())
	}
}

func TestAddChildPanics(t *testing.T) {
	t.Run("nil child", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		NewGroup("g").AddChild(nil)
	})

	t.Run("cycle", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		a := NewGroup("a")
		b := NewGroup("b")
		a.AddChild(b)
		b.AddChild(a)
	})
}

func TestShapeIDsUnique(t *testing.T) {
	a := NewRect("a", 1, 1)
	b := NewRect("b", 1, 1)
	if a.ID == b.ID || a.ID == 0 || b.ID == 0 {
		t.Errorf("IDs not unique and nonzero: %d, %d", a.ID, b.ID)
	}
}

func TestPaintOrderZIndex(t *testing.T) {
	g := NewGroup("g")
	a := NewRect("a", 1, 1)
	b := NewRect("b", 1, 1)
	c := NewRect("c", 1, 1)
	g.AddChild(a)
	g.AddChild(b)
	g.AddChild(c)

	b.SetZIndex(10)
	a.SetZIndex(5)

	order := g.paintOrderChildren()
	want := []*Shape{c, a, b} // c zindex 0, a 5, b 10
	for i, s := range want {
		if order[i] != s {
			t.Fatalf("paint order[%d] = %s, want %s", i, order[i].Name, s.Name)
		}
	}
}

func TestBringToFront(t *testing.T) {
	g := NewGroup("g")
	a := NewRect("a", 1, 1)
	b := NewRect("b", 1, 1)
	g.AddChild(a)
	g.AddChild(b)

	a.BringToFront()
	order := g.paintOrderChildren()
	if order[len(order)-1] != a {
		t.Error("a not painted last after BringToFront")
	}
}

func TestContainsLocalEllipse(t *testing.T) {
	e := NewEllipse("e", 100, 50)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 25, true},
		{"right edge", 100, 25, true},
		{"corner of box", 0, 0, false},
		{"outside", 120, 25, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.containsLocal(tt.x, tt.y); got != tt.want {
				t.Errorf("containsLocal(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestContainsScenePointTransformed(t *testing.T) {
	root := NewGroup("root")
	r := NewRect("r", 100, 50)
	r.X, r.Y = 200, 100
	root.AddChild(r)

	if !r.ContainsScenePoint(250, 125) {
		t.Error("center should hit")
	}
	if r.ContainsScenePoint(50, 50) {
		t.Error("far point should miss")
	}
}

func TestBoundsRotated(t *testing.T) {
	root := NewGroup("root")
	r := NewRect("r", 100, 100)
	r.PivotX, r.PivotY = 50, 50
	r.X, r.Y = 50, 50
	r.Rotation = math.Pi / 4
	root.AddChild(r)

	b := r.Bounds()
	wantSide := 100 * math.Sqrt2
	if !almostEqual(b.Width, wantSide) || !almostEqual(b.Height, wantSide) {
		t.Errorf("rotated bounds %vx%v, want %vx%v", b.Width, b.Height, wantSide, wantSide)
	}
	if !almostEqual(b.X+b.Width/2, 50) || !almostEqual(b.Y+b.Height/2, 50) {
		t.Errorf("bounds center (%v, %v), want (50, 50)", b.X+b.Width/2, b.Y+b.Height/2)
	}
}

func TestCompositeBoundsUnion(t *testing.T) {
	root := NewGroup("root")
	a := NewRect("a", 10, 10)
	b := NewRect("b", 10, 10)
	b.X, b.Y = 100, 100
	root.AddChild(a)
	root.AddChild(b)

	g := NewActiveSelection([]*Shape{a, b})
	bounds := g.Bounds()
	want := Rect{X: 0, Y: 0, Width: 110, Height: 110}
	if bounds != want {
		t.Errorf("composite bounds %+v, want %+v", bounds, want)
	}
}

func TestCompositeContainsScenePointForwards(t *testing.T) {
	root := NewGroup("root")
	a := NewRect("a", 10, 10)
	b := NewRect("b", 10, 10)
	b.X = 100
	root.AddChild(a)
	root.AddChild(b)

	g := NewActiveSelection([]*Shape{a, b})
	if !g.ContainsScenePoint(105, 5) {
		t.Error("point inside member b should hit composite")
	}
	if g.ContainsScenePoint(50, 5) {
		t.Error("gap between members should miss")
	}
}

func TestRectIntersectsAndContainsRect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}

	if !a.Intersects(Rect{X: 90, Y: 90, Width: 50, Height: 50}) {
		t.Error("overlapping rects should intersect")
	}
	if a.Intersects(Rect{X: 200, Y: 0, Width: 10, Height: 10}) {
		t.Error("disjoint rects should not intersect")
	}
	if !a.ContainsRect(Rect{X: 10, Y: 10, Width: 20, Height: 20}) {
		t.Error("inner rect should be contained")
	}
	if a.ContainsRect(Rect{X: 90, Y: 90, Width: 50, Height: 50}) {
		t.Error("partially outside rect should not be contained")
	}
}

func TestDisposeClearsCallbacks(t *testing.T) {
	s := NewRect("s", 10, 10)
	s.OnMouseDown = func(PointerEventContext) {}
	s.OnDrop = func(DragEventContext) {}

	s.Dispose()
	if !s.IsDisposed() {
		t.Error("not marked disposed")
	}
	if s.OnMouseDown != nil || s.OnDrop != nil {
		t.Error("callbacks not cleared")
	}
}

func TestDisposeDetachesSubtree(t *testing.T) {
	g := NewGroup("g")
	child := NewRect("child", 10, 10)
	g.AddChild(child)

	g.Dispose()
	if g.NumChildren() != 0 {
		t.Error("children not released")
	}
	if !child.IsDisposed() {
		t.Error("child not disposed")
	}
}
