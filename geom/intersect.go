package geom

import "math"

// Geometric queries over lines and planes. Results are exact only up to
// [LengthEps]; degenerate configurations are reported through the returned
// flags, and the accompanying values carry no information when a degeneracy
// is flagged.
//
// A plane is given by its normal n and offset d, containing the points p
// with p.n = d. An infinite line is given either by two points on it or by a
// point and a direction.

// ClosestPointBetweenLines finds the line parameters ta, tb minimizing the
// distance between the points pa + ta*da and pb + tb*db, via the normal
// equations of the closest-point system.
//
// ok is false when the lines are parallel within tolerance (the system has
// no unique minimum); ta and tb are then zero. The parallel test is
// relative: the directions count as parallel when the sine of the angle
// between them falls below [LengthEps].
func ClosestPointBetweenLines(pa, da, pb, db Vector) (ta, tb float64, ok bool) {
	dn := da.Cross(db)
	if dn.MagSquared() <= LengthEps*LengthEps*da.MagSquared()*db.MagSquared() {
		return 0, 0, false
	}

	// Build a semi-orthogonal frame from the two directions; dna is normal
	// to da and dnb is normal to db, neither necessarily unit.
	dna := dn.Cross(da)
	dnb := dn.Cross(db)

	// At the closest approach, pa + ta*da - pb - tb*db is parallel to dn.
	// Dotting that with dna kills the ta term, and with dnb the tb term.
	tb = pa.Minus(pb).Dot(dna) / db.Dot(dna)
	ta = -pa.Minus(pb).Dot(dnb) / da.Dot(dnb)
	return ta, tb, true
}

// LineParameters carries the optional line-parameter outputs of
// [AtIntersectionOfLinesParams].
type LineParameters struct {
	Ta, Tb float64
}

// AtIntersectionOfLines intersects the infinite lines through a0,a1 and
// b0,b1. When the lines meet within tolerance, the returned point is their
// intersection and skew is false. skew is true when the closest points of
// the two lines are farther apart than [LengthEps], including the parallel
// case where no unique closest pair exists; the returned point is then
// meaningless.
func AtIntersectionOfLines(a0, a1, b0, b1 Vector) (pi Vector, skew bool) {
	pi, skew, _ = AtIntersectionOfLinesParams(a0, a1, b0, b1)
	return pi, skew
}

// AtIntersectionOfLinesParams is [AtIntersectionOfLines], additionally
// returning the parameters of the closest points along each line
// (a0 + ta*(a1-a0) and likewise for b).
func AtIntersectionOfLinesParams(a0, a1, b0, b1 Vector) (pi Vector, skew bool, params LineParameters) {
	da := a1.Minus(a0)
	db := b1.Minus(b0)

	ta, tb, ok := ClosestPointBetweenLines(a0, da, b0, db)
	if !ok {
		return Vector{}, true, LineParameters{}
	}
	params = LineParameters{Ta: ta, Tb: tb}

	pi = a0.Plus(da.ScaledBy(ta))

	// The lines intersect only if the closest points on each coincide.
	skew = !pi.Equals(b0.Plus(db.ScaledBy(tb)))
	return pi, skew, params
}

// AtIntersectionOfPlaneAndLine intersects the plane (n, d) with the line
// through p0 and p1. parallel is true when the line direction lies in the
// plane within tolerance, in which case the returned point is meaningless.
func AtIntersectionOfPlaneAndLine(n Vector, d float64, p0, p1 Vector) (pi Vector, parallel bool) {
	dp := p1.Minus(p0)

	if math.Abs(n.Dot(dp)) < LengthEps {
		return Vector{}, true
	}

	// n.(p0 + t*dp) = d
	t := (d - n.Dot(p0)) / n.Dot(dp)
	return p0.Plus(dp.ScaledBy(t)), false
}

// AtIntersectionOfPlanes intersects two planes, returning a point on their
// common line and the line's direction. parallel is true when the planes do
// not meet in a unique line within tolerance.
//
// The point is found by dropping the coordinate in which the line direction
// is largest (the same pivoting rule as [Vector.DivPivoting]) and solving
// the remaining 2x2 system.
func AtIntersectionOfPlanes(n1 Vector, d1 float64, n2 Vector, d2 float64) (pt, dir Vector, parallel bool) {
	dir = n1.Cross(n2)
	if dir.MagSquared() <= LengthEps*LengthEps*n1.MagSquared()*n2.MagSquared() {
		return Vector{}, Vector{}, true
	}

	// Zero the best-pivot coordinate of the sought point; the two plane
	// equations then determine the remaining two coordinates.
	mx, my, mz := math.Abs(dir.X), math.Abs(dir.Y), math.Abs(dir.Z)
	switch {
	case mx > my && mx > mz:
		// Solve for y, z with x = 0.
		y, z := solve2x2(n1.Y, n1.Z, d1, n2.Y, n2.Z, d2, dir.X)
		pt = Vector{Y: y, Z: z}
	case my > mz:
		// Solve for z, x with y = 0.
		z, x := solve2x2(n1.Z, n1.X, d1, n2.Z, n2.X, d2, dir.Y)
		pt = Vector{X: x, Z: z}
	default:
		// Solve for x, y with z = 0.
		x, y := solve2x2(n1.X, n1.Y, d1, n2.X, n2.Y, d2, dir.Z)
		pt = Vector{X: x, Y: y}
	}

	return pt, dir, false
}

// solve2x2 solves a*u + b*v = p, c*u + d*v = q by Cramer's rule. The
// determinant a*d - b*c is passed in by the caller, which has already
// checked it against zero.
func solve2x2(a, b, p, c, d, q, det float64) (u, v float64) {
	u = (p*d - b*q) / det
	v = (a*q - p*c) / det
	return u, v
}

// AtIntersectionOfThreePlanes intersects three planes in their common point.
// parallel is true when the three normals are linearly dependent within
// tolerance (two planes parallel, or all three meeting in a line), in which
// case the returned point is meaningless.
func AtIntersectionOfThreePlanes(na Vector, da float64, nb Vector, db float64, nc Vector, dc float64) (pi Vector, parallel bool) {
	det := na.X*(nb.Y*nc.Z-nb.Z*nc.Y) -
		na.Y*(nb.X*nc.Z-nb.Z*nc.X) +
		na.Z*(nb.X*nc.Y-nb.Y*nc.X)

	if math.Abs(det) < detEps {
		return Vector{}, true
	}

	detx := da*(nb.Y*nc.Z-nb.Z*nc.Y) -
		na.Y*(db*nc.Z-nb.Z*dc) +
		na.Z*(db*nc.Y-nb.Y*dc)

	dety := na.X*(db*nc.Z-nb.Z*dc) -
		da*(nb.X*nc.Z-nb.Z*nc.X) +
		na.Z*(nb.X*dc-db*nc.X)

	detz := na.X*(nb.Y*dc-db*nc.Y) -
		na.Y*(nb.X*dc-db*nc.X) +
		da*(nb.X*nc.Y-nb.Y*nc.X)

	return Vector{X: detx / det, Y: dety / det, Z: detz / det}, false
}

// DistanceToLine returns the perpendicular distance from v to the infinite
// line through p0 with direction dp.
//
// Precondition: dp must not be the zero vector.
func (v Vector) DistanceToLine(p0, dp Vector) float64 {
	m := dp.Magnitude()
	return v.Minus(p0).Cross(dp).Magnitude() / m
}

// ClosestPointOnLine returns the point on the infinite line through p0 with
// direction dp nearest to v.
//
// Precondition: dp must not be the zero vector.
func (v Vector) ClosestPointOnLine(p0, dp Vector) Vector {
	dp = dp.WithMagnitude(1)
	t := v.Minus(p0).Dot(dp)
	return p0.Plus(dp.ScaledBy(t))
}

// OnLineSegment reports whether v lies on the segment from a to b, within
// tol of it.
func (v Vector) OnLineSegment(a, b Vector, tol float64) bool {
	if v.EqualsTol(a, tol) || v.EqualsTol(b, tol) {
		return true
	}

	d := b.Minus(a)
	m := d.MagSquared()
	distsq := v.Minus(a).Cross(d).MagSquared()
	if distsq >= tol*tol*m {
		return false
	}

	t := v.Minus(a).DivPivoting(d)
	// The endpoints were already tested with tolerance above.
	return t >= 0 && t <= 1
}
