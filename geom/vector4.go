package geom

// Vector4 is a homogeneous point for perspective projection.
type Vector4 struct {
	W, X, Y, Z float64
}

// V4 is a convenience constructor for a Vector4.
func V4(w, x, y, z float64) Vector4 {
	return Vector4{W: w, X: x, Y: y, Z: z}
}

// V4FromVector lifts a 3-vector to homogeneous coordinates with the given
// weight; the spatial components are pre-multiplied by w so that
// PerspectiveProject recovers v.
func V4FromVector(w float64, v Vector) Vector4 {
	return Vector4{W: w, X: w * v.X, Y: w * v.Y, Z: w * v.Z}
}

// Blend interpolates between a and b: t=0 yields a, t=1 yields b.
func Blend(a, b Vector4, t float64) Vector4 {
	return a.ScaledBy(1 - t).Plus(b.ScaledBy(t))
}

// Plus returns v + w.
func (v Vector4) Plus(w Vector4) Vector4 {
	return Vector4{W: v.W + w.W, X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Minus returns v - w.
func (v Vector4) Minus(w Vector4) Vector4 {
	return Vector4{W: v.W - w.W, X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// ScaledBy returns s * v.
func (v Vector4) ScaledBy(s float64) Vector4 {
	return Vector4{W: v.W * s, X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// PerspectiveProject divides the spatial components by the weight.
//
// Precondition: W must be nonzero; a point at w = 0 is at infinity and has
// no affine image.
func (v Vector4) PerspectiveProject() Vector {
	return Vector{X: v.X / v.W, Y: v.Y / v.W, Z: v.Z / v.W}
}
