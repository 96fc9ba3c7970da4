package geom

import "math"

// Quaternion represents a rotation (or a scaled rotation) of 3-space, as
// w + vx*i + vy*j + vz*k.
type Quaternion struct {
	W, Vx, Vy, Vz float64
}

// QuaternionIdentity is the identity rotation.
var QuaternionIdentity = Quaternion{W: 1}

// Q is a convenience constructor for a Quaternion.
func Q(w, vx, vy, vz float64) Quaternion {
	return Quaternion{W: w, Vx: vx, Vy: vy, Vz: vz}
}

// QFromAxisAngle returns the unit quaternion rotating by dtheta radians
// about the given axis. The axis need not be unit length, but must be
// nonzero.
func QFromAxisAngle(axis Vector, dtheta float64) Quaternion {
	c, s := math.Cos(dtheta/2), math.Sin(dtheta/2)
	a := axis.WithMagnitude(s)
	return Quaternion{W: c, Vx: a.X, Vy: a.Y, Vz: a.Z}
}

// QFromVectors returns the unit quaternion whose local x and y axes map to
// the direction of u and to the component of v orthogonal to u
// (Gram-Schmidt); the local z axis is the right-handed cross product of the
// two.
//
// Precondition: u and v must be nonzero and not parallel. For parallel
// inputs the orthogonalized second axis vanishes and the result is
// undefined.
func QFromVectors(u, v Vector) Quaternion {
	u = u.WithMagnitude(1)
	v = v.Minus(u.ScaledBy(u.Dot(v))).WithMagnitude(1)
	n := u.Cross(v)

	// Convert the rotation matrix [u' v' n']' to a quaternion, branching on
	// the trace to keep the square root argument well away from zero.
	var q Quaternion
	tr := 1 + u.X + v.Y + n.Z
	if tr > 1e-4 {
		s := 2 * math.Sqrt(tr)
		q.W = s / 4
		q.Vx = (v.Z - n.Y) / s
		q.Vy = (n.X - u.Z) / s
		q.Vz = (u.Y - v.X) / s
	} else {
		switch {
		case u.X > v.Y && u.X > n.Z:
			s := 2 * math.Sqrt(1 + u.X - v.Y - n.Z)
			q.W = (v.Z - n.Y) / s
			q.Vx = s / 4
			q.Vy = (u.Y + v.X) / s
			q.Vz = (n.X + u.Z) / s
		case v.Y > n.Z:
			s := 2 * math.Sqrt(1 - u.X + v.Y - n.Z)
			q.W = (n.X - u.Z) / s
			q.Vx = (u.Y + v.X) / s
			q.Vy = s / 4
			q.Vz = (v.Z + n.Y) / s
		default:
			s := 2 * math.Sqrt(1 - u.X - v.Y + n.Z)
			q.W = (u.Y - v.X) / s
			q.Vx = (n.X + u.Z) / s
			q.Vy = (v.Z + n.Y) / s
			q.Vz = s / 4
		}
	}

	return q.WithMagnitude(1)
}

// Plus returns q + r, component-wise.
func (q Quaternion) Plus(r Quaternion) Quaternion {
	return Quaternion{W: q.W + r.W, Vx: q.Vx + r.Vx, Vy: q.Vy + r.Vy, Vz: q.Vz + r.Vz}
}

// Minus returns q - r, component-wise.
func (q Quaternion) Minus(r Quaternion) Quaternion {
	return Quaternion{W: q.W - r.W, Vx: q.Vx - r.Vx, Vy: q.Vy - r.Vy, Vz: q.Vz - r.Vz}
}

// ScaledBy returns s * q.
func (q Quaternion) ScaledBy(s float64) Quaternion {
	return Quaternion{W: q.W * s, Vx: q.Vx * s, Vy: q.Vy * s, Vz: q.Vz * s}
}

// Magnitude returns |q|.
func (q Quaternion) Magnitude() float64 {
	return math.Sqrt(q.MagSquared())
}

// MagSquared returns |q|^2.
func (q Quaternion) MagSquared() float64 {
	return q.W*q.W + q.Vx*q.Vx + q.Vy*q.Vy + q.Vz*q.Vz
}

// WithMagnitude returns a quaternion parallel to q with magnitude s.
//
// Precondition: q must not be the zero quaternion.
func (q Quaternion) WithMagnitude(s float64) Quaternion {
	m := q.Magnitude()
	if m == 0 {
		return Quaternion{}
	}
	return q.ScaledBy(s / m)
}

// RotationU returns the first row of the rotation matrix [u' v' n']'
// equivalent to q: the image of the local x axis.
func (q Quaternion) RotationU() Vector {
	return Vector{
		X: q.W*q.W + q.Vx*q.Vx - q.Vy*q.Vy - q.Vz*q.Vz,
		Y: 2*q.W*q.Vz + 2*q.Vx*q.Vy,
		Z: 2*q.Vx*q.Vz - 2*q.W*q.Vy,
	}
}

// RotationV returns the second row of the equivalent rotation matrix: the
// image of the local y axis.
func (q Quaternion) RotationV() Vector {
	return Vector{
		X: 2*q.Vx*q.Vy - 2*q.W*q.Vz,
		Y: q.W*q.W - q.Vx*q.Vx + q.Vy*q.Vy - q.Vz*q.Vz,
		Z: 2*q.W*q.Vx + 2*q.Vy*q.Vz,
	}
}

// RotationN returns the third row of the equivalent rotation matrix: the
// image of the local z axis.
func (q Quaternion) RotationN() Vector {
	return Vector{
		X: 2*q.W*q.Vy + 2*q.Vx*q.Vz,
		Y: 2*q.Vy*q.Vz - 2*q.W*q.Vx,
		Z: q.W*q.W - q.Vx*q.Vx - q.Vy*q.Vy + q.Vz*q.Vz,
	}
}

// Rotate applies the rotation to p, computing q * p * q^-1 with p embedded
// as a pure quaternion. For unit q this preserves |p|.
func (q Quaternion) Rotate(p Vector) Vector {
	// Expressing the result in the rotated basis avoids building the products
	// explicitly.
	return q.RotationU().ScaledBy(p.X).
		Plus(q.RotationV().ScaledBy(p.Y)).
		Plus(q.RotationN().ScaledBy(p.Z))
}

// ToThe raises a unit quaternion to the real power p by scaling its rotation
// angle: q is treated as cos(theta/2) + sin(theta/2)*axis, and theta is
// multiplied by p.
func (q Quaternion) ToThe(p float64) Quaternion {
	// Near the identity the axis is undefined and the power is the identity
	// regardless; bail out before the arccos leaves its domain.
	if q.W >= 1-1e-6 {
		return QuaternionIdentity
	}

	theta := math.Acos(q.W) // in [0, pi]
	u := Vector{X: q.Vx, Y: q.Vy, Z: q.Vz}.WithMagnitude(1)
	thetap := theta * p

	s := math.Sin(thetap)
	return Quaternion{
		W:  math.Cos(thetap),
		Vx: u.X * s,
		Vy: u.Y * s,
		Vz: u.Z * s,
	}
}

// Inverse returns the conjugate scaled by 1/|q|^2, so that
// q.Times(q.Inverse()) is the identity for any nonzero q.
func (q Quaternion) Inverse() Quaternion {
	r := Quaternion{W: q.W, Vx: -q.Vx, Vy: -q.Vy, Vz: -q.Vz}
	return r.ScaledBy(1 / r.MagSquared())
}

// Times returns the Hamilton product q * r.
func (q Quaternion) Times(r Quaternion) Quaternion {
	sa, sb := q.W, r.W
	va := Vector{X: q.Vx, Y: q.Vy, Z: q.Vz}
	vb := Vector{X: r.Vx, Y: r.Vy, Z: r.Vz}

	vr := vb.ScaledBy(sa).Plus(va.ScaledBy(sb)).Plus(va.Cross(vb))
	return Quaternion{
		W:  sa*sb - va.Dot(vb),
		Vx: vr.X,
		Vy: vr.Y,
		Vz: vr.Z,
	}
}

// Mirror returns the rotation with its handedness negated: the local x axis
// is reflected and the frame rebuilt around it.
func (q Quaternion) Mirror() Quaternion {
	u := q.RotationU().ScaledBy(-1)
	v := q.RotationV()
	return QFromVectors(u, v)
}
