package canvaskit

import "testing"

func regionFixture() (*fixture, *Shape, *Shape, *Shape) {
	f := newFixture(InteractionConfig{
		RegionSelection:           true,
		GroupSelectFullyContained: true,
	})
	a := f.addRect("a", 10, 10, 30, 30)
	b := f.addRect("b", 60, 10, 30, 30)
	c := f.addRect("c", 300, 300, 30, 30)
	return f, a, b, c
}

func TestRubberBandSelectsContainedShapes(t *testing.T) {
	f, a, b, c := regionFixture()

	// Band covers a and b fully, c not at all.
	f.drag(0, 0, 150, 150)

	active := f.ed.ActiveShape()
	if active == nil || !active.IsActiveSelection() {
		t.Fatalf("active = %v, want composite", active)
	}
	members := active.Members()
	if len(members) != 2 {
		t.Fatalf("members = %v, want {b a}", members)
	}
	// Paint order, top-most first: b was added after a.
	if members[0] != b || members[1] != a {
		t.Errorf("member order = [%s %s], want [b a]", members[0].Name, members[1].Name)
	}
	if containsMember(members, c) {
		t.Error("c selected outside the band")
	}
}

func TestRubberBandStartsOverUnselectableTarget(t *testing.T) {
	f := newFixture(InteractionConfig{RegionSelection: true})
	bg := f.addRect("bg", 0, 0, 500, 500)
	bg.Selectable = false
	a := f.addRect("a", 10, 10, 30, 30)

	// The down lands on the unselectable background, not empty space. It must
	// not block the band.
	f.press(200, 200)
	f.move(260, 260)
	if _, ok := f.ed.GroupSelectorRect(); !ok {
		t.Fatal("band did not start over an unselectable target")
	}
	f.release(260, 260)

	// A band over a selects it; bg stays out despite intersecting the region.
	f.drag(0, 0, 60, 60)
	if f.ed.ActiveShape() != a {
		t.Errorf("active = %v, want a", shapeName(f.ed.ActiveShape()))
	}
}

func TestRubberBandSingleHitIsPlainSelection(t *testing.T) {
	f, a, _, _ := regionFixture()

	f.drag(0, 0, 50, 50) // only a fully inside

	if f.ed.ActiveShape() != a {
		t.Errorf("active = %v, want plain a", f.ed.ActiveShape())
	}
}

func TestRubberBandZeroHitsSelectsNothing(t *testing.T) {
	f, a, _, _ := regionFixture()

	f.click(25, 25) // select a
	// The down on empty space discards the selection; an empty band must not
	// resurrect or invent one at finalize.
	f.drag(150, 150, 200, 200)

	if f.ed.ActiveShape() != nil {
		t.Errorf("active = %v, want none after empty band", f.ed.ActiveShape())
	}
	_ = a
}

func TestRubberBandFullyContainedMode(t *testing.T) {
	f, a, b, _ := regionFixture()

	// Band clips b: contains a fully, intersects b.
	f.drag(0, 0, 70, 150)

	if f.ed.ActiveShape() != a {
		t.Errorf("active = %v, want a only in fully-contained mode", f.ed.ActiveShape())
	}
	_ = b
}

func TestRubberBandIntersectMode(t *testing.T) {
	f := newFixture(InteractionConfig{
		RegionSelection:           true,
		GroupSelectFullyContained: false,
	})
	f.addRect("a", 10, 10, 30, 30)
	f.addRect("b", 60, 10, 30, 30)

	f.drag(0, 0, 70, 150) // clips b

	active := f.ed.ActiveShape()
	if active == nil || !active.IsActiveSelection() || len(active.Members()) != 2 {
		t.Errorf("intersect mode should select both: %v", active)
	}
}

func TestRubberBandDegenerateSelectsTopmostPoint(t *testing.T) {
	f, a, _, _ := regionFixture()

	// Press and release on a without moving: degenerate band over a shape
	// never forms (the down lands on the shape), so force the degenerate path
	// on empty space first.
	f.click(200, 200)
	if f.ed.ActiveShape() != nil {
		t.Error("degenerate band on empty space selected something")
	}

	f.click(25, 25)
	if f.ed.ActiveShape() != a {
		t.Error("click on a should select it")
	}
}

func TestRubberBandLeftwardDragNormalizes(t *testing.T) {
	f, a, _, _ := regionFixture()

	f.drag(50, 50, 0, 0) // dragged up-left

	if f.ed.ActiveShape() != a {
		t.Errorf("active = %v, want a from a normalized band", f.ed.ActiveShape())
	}
}

func TestGroupSelectorRectLive(t *testing.T) {
	f, _, _, _ := regionFixture()

	if _, ok := f.ed.GroupSelectorRect(); ok {
		t.Error("selector live before any gesture")
	}

	f.press(100, 100)
	f.move(180, 160)

	r, ok := f.ed.GroupSelectorRect()
	if !ok {
		t.Fatal("selector not live mid-gesture")
	}
	want := Rect{X: 100, Y: 100, Width: 80, Height: 60}
	if r != want {
		t.Errorf("band = %+v, want %+v", r, want)
	}

	f.release(180, 160)
	if _, ok := f.ed.GroupSelectorRect(); ok {
		t.Error("selector live after release")
	}
}

func TestRegionSelectionDisabled(t *testing.T) {
	f := newFixture(InteractionConfig{RegionSelection: false})
	f.addRect("a", 10, 10, 30, 30)

	f.press(100, 100)
	f.move(0, 0)
	if _, ok := f.ed.GroupSelectorRect(); ok {
		t.Error("selector created with region selection disabled")
	}
	f.release(0, 0)
}

func TestRubberBandRespectsSelectableVeto(t *testing.T) {
	f := newFixture(InteractionConfig{
		RegionSelection:           true,
		GroupSelectFullyContained: true,
	})
	a := f.addRect("a", 10, 10, 30, 30)
	b := f.addRect("b", 60, 10, 30, 30)
	b.Selectable = false

	f.drag(0, 0, 150, 150)

	if f.ed.ActiveShape() != a {
		t.Errorf("active = %v, want a (b unselectable)", f.ed.ActiveShape())
	}
}
