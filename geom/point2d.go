package geom

import "math"

// Point2d is a point (or displacement) in the plane, typically the 2D
// projection of a [Vector].
type Point2d struct {
	X, Y float64
}

// P2 is a convenience constructor for a Point2d.
func P2(x, y float64) Point2d {
	return Point2d{X: x, Y: y}
}

// Plus returns p + q.
func (p Point2d) Plus(q Point2d) Point2d {
	return Point2d{X: p.X + q.X, Y: p.Y + q.Y}
}

// Minus returns p - q.
func (p Point2d) Minus(q Point2d) Point2d {
	return Point2d{X: p.X - q.X, Y: p.Y - q.Y}
}

// Negated returns -p.
func (p Point2d) Negated() Point2d {
	return Point2d{X: -p.X, Y: -p.Y}
}

// ScaledBy returns s * p.
func (p Point2d) ScaledBy(s float64) Point2d {
	return Point2d{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product p . q.
func (p Point2d) Dot(q Point2d) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Magnitude returns |p|.
func (p Point2d) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// MagSquared returns |p|^2.
func (p Point2d) MagSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// WithMagnitude returns a point parallel to p with length s.
//
// Precondition: p must not be the zero point; see [Vector.WithMagnitude].
func (p Point2d) WithMagnitude(s float64) Point2d {
	m := p.Magnitude()
	if m == 0 {
		return Point2d{}
	}
	return p.ScaledBy(s / m)
}

// DistanceTo returns the distance between p and q.
func (p Point2d) DistanceTo(q Point2d) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceToLine returns the distance from p to the line through p0 with
// direction dp. If segment is true the line is bounded by p0 and p0+dp and
// the distance to the nearer endpoint is returned when the perpendicular
// foot falls outside it. A degenerate (near zero length) dp yields +Inf.
func (p Point2d) DistanceToLine(p0, dp Point2d, segment bool) float64 {
	m := dp.MagSquared()
	if m < LengthEps*LengthEps {
		return math.Inf(1)
	}

	// Parametrize the line as p0 + t*dp, t in [0, 1] along the segment.
	t := (dp.X*(p.X-p0.X) + dp.Y*(p.Y-p0.Y)) / m

	if segment && (t < 0 || t > 1) {
		d0 := p.DistanceTo(p0)
		d1 := p.DistanceTo(p0.Plus(dp))
		return math.Min(d0, d1)
	}

	closest := p0.Plus(dp.ScaledBy(t))
	return p.DistanceTo(closest)
}

// Normal returns the perpendicular of p, rotated a quarter turn clockwise.
func (p Point2d) Normal() Point2d {
	return Point2d{X: p.Y, Y: -p.X}
}

// DivPivoting returns the scalar t such that p ~ t*delta, for points known
// to be parallel, dividing through the larger-magnitude component of delta.
// Same pivoting rule as [Vector.DivPivoting].
//
// Precondition: delta must not be the zero point.
func (p Point2d) DivPivoting(delta Point2d) float64 {
	if math.Abs(delta.X) > math.Abs(delta.Y) {
		return p.X / delta.X
	}
	return p.Y / delta.Y
}

// Equals reports whether p and q coincide within [LengthEps].
func (p Point2d) Equals(q Point2d) bool {
	return p.EqualsTol(q, LengthEps)
}

// EqualsTol reports whether p and q coincide within tol.
func (p Point2d) EqualsTol(q Point2d, tol float64) bool {
	dp := p.Minus(q)
	if math.Abs(dp.X) > tol || math.Abs(dp.Y) > tol {
		return false
	}
	return dp.MagSquared() < tol*tol
}
