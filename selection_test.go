package canvaskit

import "testing"

func TestShiftClickBuildsComposite(t *testing.T) {
	f := newFixture(InteractionConfig{})
	a := f.addRect("a", 0, 0, 50, 50)
	b := f.addRect("b", 100, 0, 50, 50)

	var updated int
	f.ed.OnSelectionUpdated(func(ctx SelectionContext) {
		updated++
		if len(ctx.Selected) != 1 || ctx.Selected[0] != b {
			t.Errorf("selected = %v, want [b]", ctx.Selected)
		}
		if len(ctx.Previous) != 1 || ctx.Previous[0] != a {
			t.Errorf("previous = %v, want [a]", ctx.Previous)
		}
	})

	f.click(25, 25) // select a
	f.shiftPress(125, 25)
	f.shiftRelease(125, 25)

	active := f.ed.ActiveShape()
	if active == nil || !active.IsActiveSelection() {
		t.Fatalf("active = %v, want composite", active)
	}
	members := active.Members()
	if len(members) != 2 || members[0] != a || members[1] != b {
		t.Fatalf("members = %v, want [a b]", members)
	}
	if a.GroupID() != active.ID || b.GroupID() != active.ID {
		t.Error("member back-references not set")
	}
	if updated != 1 {
		t.Errorf("selection:updated fired %d times, want 1", updated)
	}
}

func TestShiftClickCollapsesToSoleMember(t *testing.T) {
	f := newFixture(InteractionConfig{})
	a := f.addRect("a", 0, 0, 50, 50)
	b := f.addRect("b", 100, 0, 50, 50)

	f.click(25, 25)
	f.shiftPress(125, 25)
	f.shiftRelease(125, 25)
	composite := f.ed.ActiveShape()

	// Shift-click b again: removed from the composite, which collapses to a.
	f.shiftPress(125, 25)
	f.shiftRelease(125, 25)

	if f.ed.ActiveShape() != a {
		t.Fatalf("active = %v, want a after collapse", f.ed.ActiveShape())
	}
	if a.GroupID() != 0 || b.GroupID() != 0 {
		t.Error("back-references survived the collapse")
	}
	if len(composite.Members()) != 0 {
		t.Error("dissolved composite kept members")
	}
}

func TestShiftClickTogglesMemberOutOfLargerComposite(t *testing.T) {
	f := newFixture(InteractionConfig{})
	a := f.addRect("a", 0, 0, 50, 50)
	b := f.addRect("b", 100, 0, 50, 50)
	c := f.addRect("c", 200, 0, 50, 50)

	f.click(25, 25)
	f.shiftPress(125, 25)
	f.shiftRelease(125, 25)
	f.shiftPress(225, 25)
	f.shiftRelease(225, 25)

	active := f.ed.ActiveShape()
	if len(active.Members()) != 3 {
		t.Fatalf("members = %v, want 3", active.Members())
	}

	f.shiftPress(125, 25) // remove b
	f.shiftRelease(125, 25)

	active = f.ed.ActiveShape()
	if !active.IsActiveSelection() || len(active.Members()) != 2 {
		t.Fatalf("active = %v with members %v, want composite {a c}", active, active.Members())
	}
	if containsMember(active.Members(), b) {
		t.Error("b still a member")
	}
	_ = a
	_ = c
}

func TestShiftClickEmptySpaceKeepsSelection(t *testing.T) {
	f := newFixture(InteractionConfig{})
	a := f.addRect("a", 0, 0, 50, 50)

	f.click(25, 25)
	f.shiftPress(400, 400)
	f.shiftRelease(400, 400)

	if f.ed.ActiveShape() != a {
		t.Error("shift-click on empty space dropped the selection")
	}
}

func TestGroupingRefusesAncestors(t *testing.T) {
	f := newFixture(InteractionConfig{})
	g := NewGroup("g")
	g.Width, g.Height = 200, 200 // hit-testable group
	f.ed.AddShape(f.root, g)
	child := NewRect("child", 10, 10)
	child.X, child.Y = 150, 150
	f.ed.AddShape(g, child)

	f.click(50, 50) // select g (child not under point)
	if f.ed.ActiveShape() != g {
		t.Fatal("setup: g not selected")
	}

	f.shiftPress(155, 155) // child of the active shape: no composite
	f.shiftRelease(155, 155)

	if active := f.ed.ActiveShape(); active != nil && active.IsActiveSelection() {
		t.Error("composite built across an ancestry line")
	}
}

func TestGroupingVetoRespected(t *testing.T) {
	f := newFixture(InteractionConfig{})
	f.addRect("a", 0, 0, 50, 50)
	b := f.addRect("b", 100, 0, 50, 50)
	b.OnSelectVeto = func(*PointerEvent) bool { return true }

	f.click(25, 25)
	f.shiftPress(125, 25)
	f.shiftRelease(125, 25)

	if active := f.ed.ActiveShape(); active == nil || active.IsActiveSelection() {
		t.Error("vetoed shape joined a composite")
	}
}

func TestCompositeNeverBelowTwoMembers(t *testing.T) {
	// The default factory accepts any member list, but every editor path that
	// would reduce a composite below two members collapses it first.
	f := newFixture(InteractionConfig{})
	a := f.addRect("a", 0, 0, 50, 50)
	b := f.addRect("b", 100, 0, 50, 50)

	f.click(25, 25)
	f.shiftPress(125, 25)
	f.shiftRelease(125, 25)

	var updated int
	var ctx SelectionContext
	f.ed.OnSelectionUpdated(func(c SelectionContext) { updated++; ctx = c })

	f.ed.RemoveShape(b) // member removal via the registry path
	active := f.ed.ActiveShape()
	if active != a {
		t.Fatalf("active = %v, want a after member removal", active)
	}
	if a.GroupID() != 0 {
		t.Error("collapsed member still back-references the composite")
	}
	if updated != 1 {
		t.Fatalf("selection:updated fired %d times, want 1", updated)
	}
	if len(ctx.Deselected) != 1 || ctx.Deselected[0] != b {
		t.Errorf("deselected = %v, want [b]", ctx.Deselected)
	}
	if len(ctx.Previous) != 2 || !containsMember(ctx.Previous, a) || !containsMember(ctx.Previous, b) {
		t.Errorf("previous = %v, want {a b}", ctx.Previous)
	}
}

func TestCompositeDragMovesAllMembers(t *testing.T) {
	f := newFixture(InteractionConfig{})
	a := f.addRect("a", 0, 0, 50, 50)
	b := f.addRect("b", 100, 0, 50, 50)

	f.click(25, 25)
	f.shiftPress(125, 25)
	f.shiftRelease(125, 25)

	// Drag from inside member a; the whole composite follows.
	f.drag(25, 25, 75, 125)

	if !almostEqual(a.X, 50) || !almostEqual(a.Y, 100) {
		t.Errorf("a at (%v, %v), want (50, 100)", a.X, a.Y)
	}
	if !almostEqual(b.X, 150) || !almostEqual(b.Y, 100) {
		t.Errorf("b at (%v, %v), want (150, 100)", b.X, b.Y)
	}
}

func TestClickInsideCompositeWithoutModifierKeepsIt(t *testing.T) {
	f := newFixture(InteractionConfig{})
	f.addRect("a", 0, 0, 50, 50)
	f.addRect("b", 100, 0, 50, 50)

	f.click(25, 25)
	f.shiftPress(125, 25)
	f.shiftRelease(125, 25)
	composite := f.ed.ActiveShape()

	f.click(25, 25) // plain click inside the composite starts its move
	if f.ed.ActiveShape() != composite {
		t.Error("plain click inside composite replaced it")
	}
}

func TestDiscardActiveShape(t *testing.T) {
	f := newFixture(InteractionConfig{})
	a := f.addRect("a", 0, 0, 50, 50)

	var cleared SelectionContext
	a.OnDeselected = func(ctx SelectionContext) { cleared = ctx }

	f.click(25, 25)
	f.ed.DiscardActiveShape(nil)

	if f.ed.ActiveShape() != nil {
		t.Error("selection not discarded")
	}
	if len(cleared.Deselected) != 1 || cleared.Deselected[0] != a {
		t.Errorf("deselected = %v, want [a]", cleared.Deselected)
	}
	if len(cleared.Previous) != 1 || cleared.Previous[0] != a {
		t.Errorf("previous = %v, want [a]", cleared.Previous)
	}
}

func TestCustomCompositeFactory(t *testing.T) {
	f := newFixture(InteractionConfig{})
	f.addRect("a", 0, 0, 50, 50)
	f.addRect("b", 100, 0, 50, 50)

	var built [][]*Shape
	f.ed.SetCompositeFactory(func(members []*Shape) *Shape {
		built = append(built, members)
		return NewActiveSelection(members)
	})

	f.click(25, 25)
	f.shiftPress(125, 25)
	f.shiftRelease(125, 25)

	if len(built) != 1 || len(built[0]) != 2 {
		t.Errorf("factory calls = %v", built)
	}
}
