package canvaskit

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the shape's
// transform properties. Returns [a, b, c, d, tx, ty].
//
// Composition order: Translate(-PivotX, -PivotY) -> Scale -> Rotate ->
// Translate(X, Y).
func computeLocalTransform(s *Shape) [6]float64 {
	sin, cos := math.Sincos(s.Rotation)

	a := cos * s.ScaleX
	b := sin * s.ScaleX
	c := -sin * s.ScaleY
	d := cos * s.ScaleY

	tx := -(a*s.PivotX + c*s.PivotY) + s.X
	ty := -(b*s.PivotX + d*s.PivotY) + s.Y
	return [6]float64{a, b, c, d, tx, ty}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform recomputes a shape's worldTransform.
// parentRecomputed indicates whether the parent was recomputed in this
// refresh, which forces recomputation of this shape even if it's not dirty.
func updateWorldTransform(s *Shape, parentTransform [6]float64, parentRecomputed bool) {
	recompute := s.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(s)
		s.worldTransform = multiplyAffine(parentTransform, local)
		s.transformDirty = false
	}

	for _, child := range s.children {
		updateWorldTransform(child, s.worldTransform, recompute)
	}
}

// --- Transform property setters ---

// SetPosition sets the shape's local X and Y and marks it dirty.
func (s *Shape) SetPosition(x, y float64) {
	s.X = x
	s.Y = y
	s.MarkDirty()
}

// SetScale sets the shape's ScaleX and ScaleY and marks it dirty.
func (s *Shape) SetScale(sx, sy float64) {
	s.ScaleX = sx
	s.ScaleY = sy
	s.MarkDirty()
}

// SetRotation sets the shape's rotation (in radians) and marks it dirty.
func (s *Shape) SetRotation(r float64) {
	s.Rotation = r
	s.MarkDirty()
}

// MarkDirty marks the shape's transform and coordinate cache as dirty,
// forcing recomputation on the next refresh. Useful after bulk-setting
// fields directly.
func (s *Shape) MarkDirty() {
	s.transformDirty = true
	s.coordsDirty = true
}

// --- Coordinate conversion ---

// WorldToLocal converts a scene-space point to this shape's local coordinate space.
func (s *Shape) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(s.worldTransform)
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point to scene space.
func (s *Shape) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(s.worldTransform, lx, ly)
}

// WorldToParent converts a scene-space point into the coordinate space of
// this shape's parent. Control action math is defined relative to the
// immediate parent transform, not the scene root.
func (s *Shape) WorldToParent(wx, wy float64) (px, py float64) {
	if s.Parent == nil {
		return wx, wy
	}
	inv := invertAffine(s.Parent.worldTransform)
	return transformPoint(inv, wx, wy)
}
