package canvaskit

import "sort"

// ShapeKind distinguishes what a Shape represents. The interaction core only
// cares about group vs. leaf; visual kinds exist so hosts can render them.
type ShapeKind uint8

const (
	ShapeRect    ShapeKind = iota // rectangle
	ShapeEllipse                  // ellipse inscribed in the bounding box
	ShapeGroup                    // container / composite selection
)

// --- ID counter ---

// shapeIDCounter is a plain counter (no atomic — canvaskit is single-threaded).
var shapeIDCounter uint32

func nextShapeID() uint32 {
	shapeIDCounter++
	return shapeIDCounter
}

// --- Shape ---

// Shape is the scene graph element the interaction core manipulates. A single
// flat struct is used for all shape kinds to avoid interface dispatch on the
// hot path. The core holds non-owning references to shapes; a shape removed
// from the scene must be cleared from selection, hover, and drag state (see
// Editor.RemoveShape).
type Shape struct {
	// Identity
	ID   uint32
	Name string
	Kind ShapeKind

	// Hierarchy (scene tree)
	Parent   *Shape
	children []*Shape

	// Transform (local, relative to parent)
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
	PivotX, PivotY float64
	Width, Height  float64

	// Computed (updated during refresh)
	worldTransform [6]float64
	transformDirty bool
	coordsDirty    bool

	// Visibility & interaction
	Visible      bool
	Interactable bool
	Selectable   bool
	Movable      bool
	HasControls  bool

	// Movement locks honored by the move action.
	LockMovementX bool
	LockMovementY bool

	// ActivationTrigger selects down-time vs up-time selection.
	ActivationTrigger ActivationTrigger

	// HoverCursor is the cursor the host should show while hovering.
	HoverCursor string

	// Ordering
	ZIndex int

	// Controls keyed by corner name ("tl", "br", "mtr", ...).
	// Nil means DefaultControls at interaction time.
	Controls map[string]*Control

	// Capability queries (nil means the default answer)
	OnSelectVeto           func(ev *PointerEvent) bool // true refuses selection
	ShouldBecomeDragSource func(ev *PointerEvent) bool // agree to start a native drag
	CanAcceptDrop          func(ev *PointerEvent) bool // accept a native drop

	// Per-shape event callbacks (nil by default; zero cost when unused)
	OnMouseDown  func(PointerEventContext)
	OnMouseUp    func(PointerEventContext)
	OnMouseMove  func(PointerEventContext)
	OnMouseOver  func(TransitionContext)
	OnMouseOut   func(TransitionContext)
	OnDragEnter  func(TransitionContext)
	OnDragLeave  func(TransitionContext)
	OnDragOver   func(DragEventContext)
	OnDropBefore func(DragEventContext)
	OnDrop       func(DragEventContext)
	OnDragEnd    func(DragEventContext)
	OnSelected   func(SelectionContext)
	OnDeselected func(SelectionContext)

	// Metadata
	UserData any
	EntityID uint32

	// Composite membership: ID of the owning active-selection composite
	// (0 = none). Kept as an ID rather than a pointer so composite teardown
	// cannot leave a dangling link; resolve via Editor.shapeByID.
	group uint32

	// Composite state (Kind == ShapeGroup, built by a CompositeFactory).
	// Members are referenced, never reparented.
	members           []*Shape
	isActiveSelection bool

	// Interaction state
	activeControl string // "active corner" set while a control drags
	editing       bool   // mid text-edit; exited before regrouping

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Shape // reused buffer for ZIndex-sorted traversal order
}

// shapeDefaults sets the common default field values shared by all constructors.
func shapeDefaults(s *Shape) {
	s.ID = nextShapeID()
	s.ScaleX = 1
	s.ScaleY = 1
	s.Visible = true
	s.Interactable = true
	s.Selectable = true
	s.Movable = true
	s.HasControls = true
	s.transformDirty = true
	s.coordsDirty = true
	s.childrenSorted = true
}

// NewRect creates a rectangular shape with the given local size.
func NewRect(name string, w, h float64) *Shape {
	s := &Shape{Name: name, Kind: ShapeRect, Width: w, Height: h}
	shapeDefaults(s)
	return s
}

// NewEllipse creates an elliptical shape inscribed in a w×h bounding box.
func NewEllipse(name string, w, h float64) *Shape {
	s := &Shape{Name: name, Kind: ShapeEllipse, Width: w, Height: h}
	shapeDefaults(s)
	return s
}

// NewGroup creates a structural group shape with no hit area of its own.
func NewGroup(name string) *Shape {
	s := &Shape{Name: name, Kind: ShapeGroup}
	shapeDefaults(s)
	s.Movable = false
	s.HasControls = false
	return s
}

// --- Tree manipulation ---

// AddChild appends child to this shape's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this shape (cycle).
func (s *Shape) AddChild(child *Shape) {
	if child == nil {
		panic("canvaskit: cannot add nil child")
	}
	if isAncestor(child, s) {
		panic("canvaskit: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = s
	s.children = append(s.children, child)
	s.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this shape.
// Panics if child.Parent != s.
func (s *Shape) RemoveChild(child *Shape) {
	if child.Parent != s {
		panic("canvaskit: child's parent is not this shape")
	}
	s.removeChildByPtr(child)
	child.Parent = nil
	s.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this shape from its parent.
// No-op if this shape has no parent.
func (s *Shape) RemoveFromParent() {
	if s.Parent == nil {
		return
	}
	s.Parent.RemoveChild(s)
}

// ActiveControl returns the key of the control currently dragging this
// shape, or "" outside a transform session.
func (s *Shape) ActiveControl() string {
	return s.activeControl
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (s *Shape) Children() []*Shape {
	return s.children
}

// NumChildren returns the number of children.
func (s *Shape) NumChildren() int {
	return len(s.children)
}

// SetZIndex sets the shape's ZIndex and marks the parent's children as unsorted.
func (s *Shape) SetZIndex(z int) {
	if s.ZIndex == z {
		return
	}
	s.ZIndex = z
	if s.Parent != nil {
		s.Parent.childrenSorted = false
	}
}

// BringToFront moves this shape after all its siblings in paint order.
func (s *Shape) BringToFront() {
	p := s.Parent
	if p == nil {
		return
	}
	top := s.ZIndex
	for _, c := range p.children {
		if c.ZIndex > top {
			top = c.ZIndex
		}
	}
	p.removeChildByPtr(s)
	p.children = append(p.children, s)
	s.ZIndex = top
	p.childrenSorted = false
}

// paintOrderChildren returns children sorted by ZIndex (stable, so insertion
// order breaks ties). The returned slice is an internal buffer.
func (s *Shape) paintOrderChildren() []*Shape {
	if len(s.children) == 0 {
		return nil
	}
	if !s.childrenSorted {
		s.sortedChildren = append(s.sortedChildren[:0], s.children...)
		sort.SliceStable(s.sortedChildren, func(i, j int) bool {
			return s.sortedChildren[i].ZIndex < s.sortedChildren[j].ZIndex
		})
		s.childrenSorted = true
	}
	if s.sortedChildren == nil {
		return s.children
	}
	return s.sortedChildren
}

// --- Geometry queries ---

// containsLocal tests whether (lx, ly) falls inside the shape's hit region.
// Groups without members are not hit-testable themselves.
func (s *Shape) containsLocal(lx, ly float64) bool {
	if s.Width == 0 && s.Height == 0 {
		return false
	}
	switch s.Kind {
	case ShapeEllipse:
		rx := s.Width / 2
		ry := s.Height / 2
		if rx == 0 || ry == 0 {
			return false
		}
		dx := (lx - rx) / rx
		dy := (ly - ry) / ry
		return dx*dx+dy*dy <= 1
	default:
		return lx >= 0 && lx <= s.Width && ly >= 0 && ly <= s.Height
	}
}

// ContainsScenePoint reports whether the scene-space point hits this shape.
// An active-selection composite forwards the query to its members.
func (s *Shape) ContainsScenePoint(wx, wy float64) bool {
	if s.isActiveSelection {
		for _, m := range s.members {
			if m.ContainsScenePoint(wx, wy) {
				return true
			}
		}
		return false
	}
	s.ensureWorld()
	lx, ly := s.WorldToLocal(wx, wy)
	return s.containsLocal(lx, ly)
}

// Bounds returns the shape's scene-space axis-aligned bounding box.
// An active-selection composite reports the union of its members' bounds.
func (s *Shape) Bounds() Rect {
	if s.isActiveSelection {
		var b Rect
		for i, m := range s.members {
			if i == 0 {
				b = m.Bounds()
			} else {
				b = b.union(m.Bounds())
			}
		}
		return b
	}
	s.ensureWorld()
	x0, y0 := s.LocalToWorld(0, 0)
	x1, y1 := s.LocalToWorld(s.Width, 0)
	x2, y2 := s.LocalToWorld(s.Width, s.Height)
	x3, y3 := s.LocalToWorld(0, s.Height)
	minX := min(min(x0, x1), min(x2, x3))
	minY := min(min(y0, y1), min(y2, y3))
	maxX := max(max(x0, x1), max(x2, x3))
	maxY := max(max(y0, y1), max(y2, y3))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// ensureWorld refreshes any dirty world transforms from this shape's scene
// root down. Cheap when nothing is dirty.
func (s *Shape) ensureWorld() {
	root := s
	for root.Parent != nil {
		root = root.Parent
	}
	updateWorldTransform(root, identityTransform, false)
}

// SetCoords recomputes the shape's cached world coordinates. Called by the
// transform session only after an action actually mutated the shape.
func (s *Shape) SetCoords() {
	if s.Parent != nil {
		updateWorldTransform(s, s.Parent.worldTransform, true)
	} else {
		updateWorldTransform(s, identityTransform, true)
	}
	s.coordsDirty = false
}

// --- Composite accessors ---

// Members returns the composite member list, or nil for a plain shape.
// The returned slice MUST NOT be mutated by the caller.
func (s *Shape) Members() []*Shape {
	return s.members
}

// IsActiveSelection reports whether this shape is a synthetic composite
// built by the selection manager.
func (s *Shape) IsActiveSelection() bool {
	return s.isActiveSelection
}

// GroupID returns the ID of the active-selection composite owning this
// shape, or 0 when the shape is not part of one.
func (s *Shape) GroupID() uint32 {
	return s.group
}

// --- Editing ---

// EnterEditing marks the shape as being text-edited. The selection manager
// exits edit mode before folding the shape into a composite.
func (s *Shape) EnterEditing() { s.editing = true }

// ExitEditing clears the editing flag.
func (s *Shape) ExitEditing() { s.editing = false }

// IsEditing reports whether the shape is mid text-edit.
func (s *Shape) IsEditing() bool { return s.editing }

// --- Disposal ---

// Dispose removes this shape from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (s *Shape) Dispose() {
	if s.disposed {
		return
	}
	s.RemoveFromParent()
	s.dispose()
}

func (s *Shape) dispose() {
	s.disposed = true
	s.ID = 0
	for _, child := range s.children {
		child.Parent = nil
		child.dispose()
	}
	s.children = nil
	s.sortedChildren = nil
	s.Parent = nil
	s.members = nil
	s.group = 0
	s.Controls = nil
	s.UserData = nil
	s.OnSelectVeto = nil
	s.ShouldBecomeDragSource = nil
	s.CanAcceptDrop = nil
	s.OnMouseDown = nil
	s.OnMouseUp = nil
	s.OnMouseMove = nil
	s.OnMouseOver = nil
	s.OnMouseOut = nil
	s.OnDragEnter = nil
	s.OnDragLeave = nil
	s.OnDragOver = nil
	s.OnDropBefore = nil
	s.OnDrop = nil
	s.OnDragEnd = nil
	s.OnSelected = nil
	s.OnDeselected = nil
}

// IsDisposed returns true if this shape has been disposed.
func (s *Shape) IsDisposed() bool {
	return s.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of shape (or the shape itself).
func isAncestor(candidate, shape *Shape) bool {
	for p := shape; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from s.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (s *Shape) removeChildByPtr(child *Shape) {
	for i, c := range s.children {
		if c == child {
			copy(s.children[i:], s.children[i+1:])
			s.children[len(s.children)-1] = nil
			s.children = s.children[:len(s.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on shape and all its descendants.
func markSubtreeDirty(shape *Shape) {
	shape.transformDirty = true
	shape.coordsDirty = true
	for _, child := range shape.children {
		markSubtreeDirty(child)
	}
}
