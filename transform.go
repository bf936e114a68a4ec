package reveal

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// perspective is the viewer distance used to project Z and RotationY.
const perspective = 1000.0

// computeLocalTransform computes the element's affine matrix relative to its
// parent's box. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-w/2, -h/2) -> Scale (with depth and Y-tilt) -> Rotate -> Translate(box center + offsets)
func computeLocalTransform(e *Element) [6]float64 {
	w, h := e.Width, e.Bounds.Height

	depth := 1.0
	if e.Z != 0 && e.Z < perspective {
		depth = perspective / (perspective - e.Z)
	}
	sx := e.ScaleX * depth * math.Cos(e.RotationY*math.Pi/180)
	sy := e.ScaleY * depth

	sin, cos := math.Sincos(e.Rotation * math.Pi / 180)

	preTx := -w / 2 * sx
	preTy := -h / 2 * sy

	ra := cos * sx
	rb := sin * sx
	rc := -sin * sy
	rd := cos * sy
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	var px, py float64
	if e.Parent != nil {
		px, py = e.Parent.Bounds.X, e.Parent.Bounds.Y
	}
	cx := e.Bounds.X - px + w/2 + e.X
	cy := e.Bounds.Y - py + h/2 + e.Y + e.PinOffset
	return [6]float64{ra, rb, rc, rd, rtx + cx, rty + cy}
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
// Returns the identity matrix if the matrix is singular (determinant ~ 0).
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

// updateWorldTransform recomputes an element's worldTransform and worldAlpha.
// parentRecomputed indicates whether the parent was recomputed this frame,
// which forces recomputation of this element even if it's not dirty.
func updateWorldTransform(e *Element, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	recompute := e.dirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(e)
		e.worldTransform = multiplyAffine(parentTransform, local)
		e.worldAlpha = parentAlpha * e.Alpha
		e.dirty = false
	}

	for _, child := range e.children {
		updateWorldTransform(child, e.worldTransform, e.worldAlpha, recompute)
	}
}

// --- Coordinate conversion ---

// WorldToLocal converts a page-space point to this element's box space, as
// of the last render.
func (e *Element) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(e.worldTransform)
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a box-space point to page space, as of the last
// render.
func (e *Element) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(e.worldTransform, lx, ly)
}
