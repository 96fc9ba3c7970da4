package geom

import "math"

// Vector is a real-valued direction or point in 3-space. It is a plain value
// with no identity: operations return new vectors and never mutate their
// receiver.
type Vector struct {
	X, Y, Z float64
}

// V is a convenience constructor for a Vector.
func V(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Element returns the i-th component (0 = X, 1 = Y, 2 = Z).
// It panics for any other index; that is a caller bug, not a runtime
// condition.
func (v Vector) Element(i int) float64 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic("geom: vector element index out of range")
	}
}

// Equals reports whether v and w coincide within the shared length tolerance
// [LengthEps].
func (v Vector) Equals(w Vector) bool {
	return v.EqualsTol(w, LengthEps)
}

// EqualsTol reports whether v and w coincide within tol.
//
// The cheap rejection on individual components keeps the common
// far-apart case free of multiplications.
func (v Vector) EqualsTol(w Vector, tol float64) bool {
	dv := v.Minus(w)
	if math.Abs(dv.X) > tol || math.Abs(dv.Y) > tol || math.Abs(dv.Z) > tol {
		return false
	}
	return dv.MagSquared() < tol*tol
}

// EqualsExactly reports bitwise component equality, with no tolerance.
func (v Vector) EqualsExactly(w Vector) bool {
	return v.X == w.X && v.Y == w.Y && v.Z == w.Z
}

// Plus returns v + w.
func (v Vector) Plus(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Minus returns v - w.
func (v Vector) Minus(w Vector) Vector {
	return Vector{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Negated returns -v.
func (v Vector) Negated() Vector {
	return Vector{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// ScaledBy returns s * v.
func (v Vector) ScaledBy(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product v . w.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v x w.
func (v Vector) Cross(w Vector) Vector {
	return Vector{
		X: -(v.Z*w.Y) + v.Y*w.Z,
		Y: v.Z*w.X - v.X*w.Z,
		Z: -(v.Y*w.X) + v.X*w.Y,
	}
}

// DirectionCosineWith returns the cosine of the angle between v and w.
// Both vectors must be nonzero.
func (v Vector) DirectionCosineWith(w Vector) float64 {
	a := v.WithMagnitude(1)
	b := w.WithMagnitude(1)
	return a.Dot(b)
}

// Magnitude returns |v|.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// MagSquared returns |v|^2, avoiding the square root when only comparisons
// are needed.
func (v Vector) MagSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// WithMagnitude returns a vector parallel to v with length s.
//
// Precondition: v must not be the zero vector; scaling a zero vector to a
// nonzero length is meaningless and the result is the zero vector. Callers
// must guard against zero input themselves.
func (v Vector) WithMagnitude(s float64) Vector {
	m := v.Magnitude()
	if m == 0 {
		return Vector{}
	}
	return v.ScaledBy(s / m)
}

// Normal returns a unit vector perpendicular to v, selected by which
// (0 or 1). The two choices are themselves perpendicular, so together with v
// they form a basis. The selection is deterministic: identical inputs always
// yield the identical perpendicular, which callers rely on when rebuilding a
// frame across calls.
//
// Precondition: v must not be the zero vector.
func (v Vector) Normal(which int) Vector {
	var n Vector

	// Pivot on the smallest component so the subtraction below stays well
	// conditioned.
	xa, ya, za := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case v.Equals(Vector{Z: 1}):
		// Make vectors along the axes work out nicely.
		n = Vector{X: 1}
	case xa < ya && xa < za:
		n = Vector{Y: v.Z, Z: -v.Y}
	case ya < za:
		n = Vector{X: v.Z, Z: -v.X}
	default:
		n = Vector{X: v.Y, Y: -v.X}
	}

	switch which {
	case 0:
		// That is the vector we return.
	case 1:
		n = v.Cross(n)
	default:
		panic("geom: perpendicular selector must be 0 or 1")
	}

	return n.WithMagnitude(1)
}

// RotatedAbout returns v rotated by theta radians about the given axis
// through the origin, using Rodrigues' rotation formula. The axis need not
// be unit length, but must be nonzero.
func (v Vector) RotatedAbout(axis Vector, theta float64) Vector {
	c, s := math.Cos(theta), math.Sin(theta)
	a := axis.WithMagnitude(1)

	return Vector{
		X: v.X*(c+(1-c)*a.X*a.X) +
			v.Y*((1-c)*a.X*a.Y-s*a.Z) +
			v.Z*((1-c)*a.X*a.Z+s*a.Y),
		Y: v.X*((1-c)*a.Y*a.X+s*a.Z) +
			v.Y*(c+(1-c)*a.Y*a.Y) +
			v.Z*((1-c)*a.Y*a.Z-s*a.X),
		Z: v.X*((1-c)*a.Z*a.X-s*a.Y) +
			v.Y*((1-c)*a.Z*a.Y+s*a.X) +
			v.Z*(c+(1-c)*a.Z*a.Z),
	}
}

// RotatedAboutPoint returns v rotated by theta radians about an axis through
// orig rather than through the origin.
func (v Vector) RotatedAboutPoint(orig, axis Vector, theta float64) Vector {
	r := v.Minus(orig)
	r = r.RotatedAbout(axis, theta)
	return r.Plus(orig)
}

// DotInToCsys expresses v in the coordinate frame spanned by u, v, n: the
// result's components are the dot products with the three frame vectors. The
// frame need not be unit length, but must be non-degenerate.
func (v Vector) DotInToCsys(u, vv, n Vector) Vector {
	return Vector{
		X: v.Dot(u),
		Y: v.Dot(vv),
		Z: v.Dot(n),
	}
}

// ScaleOutOfCsys is the inverse of [Vector.DotInToCsys] for orthonormal
// frames: it maps frame-local components back to world coordinates as the
// linear combination x*u + y*v + z*n.
func (v Vector) ScaleOutOfCsys(u, vv, n Vector) Vector {
	return u.ScaledBy(v.X).Plus(vv.ScaledBy(v.Y)).Plus(n.ScaledBy(v.Z))
}

// DivPivoting returns the scalar t such that v ~ t*delta, for vectors known
// to be parallel. It divides through whichever component of delta has the
// largest magnitude, minimizing relative error. Every 2-equation solve in
// this package reuses this rule.
//
// Precondition: delta must not be the zero vector.
func (v Vector) DivPivoting(delta Vector) float64 {
	mx, my, mz := math.Abs(delta.X), math.Abs(delta.Y), math.Abs(delta.Z)
	switch {
	case mx > my && mx > mz:
		return v.X / delta.X
	case my > mz:
		return v.Y / delta.Y
	default:
		return v.Z / delta.Z
	}
}

// ClosestOrtho returns the positive or negative coordinate axis closest in
// direction to v.
func (v Vector) ClosestOrtho() Vector {
	mx, my, mz := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	switch {
	case mx > my && mx > mz:
		if v.X > 0 {
			return Vector{X: 1}
		}
		return Vector{X: -1}
	case my > mz:
		if v.Y > 0 {
			return Vector{Y: 1}
		}
		return Vector{Y: -1}
	default:
		if v.Z > 0 {
			return Vector{Z: 1}
		}
		return Vector{Z: -1}
	}
}

// ClampWithin returns v with each component clamped to [minv, maxv].
func (v Vector) ClampWithin(minv, maxv float64) Vector {
	return Vector{
		X: math.Min(math.Max(v.X, minv), maxv),
		Y: math.Min(math.Max(v.Y, minv), maxv),
		Z: math.Min(math.Max(v.Z, minv), maxv),
	}
}

// MakeMaxMin accumulates v into a component-wise bounding box, returning the
// updated maximum and minimum corners.
func (v Vector) MakeMaxMin(maxv, minv Vector) (newMax, newMin Vector) {
	newMax = Vector{
		X: math.Max(maxv.X, v.X),
		Y: math.Max(maxv.Y, v.Y),
		Z: math.Max(maxv.Z, v.Z),
	}
	newMin = Vector{
		X: math.Min(minv.X, v.X),
		Y: math.Min(minv.Y, v.Y),
		Z: math.Min(minv.Z, v.Z),
	}
	return newMax, newMin
}

// InPerspective projects v through a perspective camera looking down the -n
// axis of the (u, v, n) frame centered at origin, with the given camera
// tangent. The returned vector is in frame coordinates with the perspective
// divide applied.
func (v Vector) InPerspective(u, vv, n, origin Vector, cameraTan float64) Vector {
	r := v.Minus(origin)
	r = r.DotInToCsys(u, vv, n)
	// w goes to zero at the eye; the caller keeps geometry in front of it.
	w := 1 - r.Z*cameraTan
	return r.ScaledBy(1 / w)
}

// Project2d projects v into the plane spanned by u and v, returning the 2D
// coordinates along those two directions.
func (v Vector) Project2d(u, vv Vector) Point2d {
	return Point2d{X: v.Dot(u), Y: v.Dot(vv)}
}

// ProjectXy drops the Z component.
func (v Vector) ProjectXy() Point2d {
	return Point2d{X: v.X, Y: v.Y}
}

// Project4d lifts v to a homogeneous 4-vector with w = 1.
func (v Vector) Project4d() Vector4 {
	return Vector4{W: 1, X: v.X, Y: v.Y, Z: v.Z}
}
