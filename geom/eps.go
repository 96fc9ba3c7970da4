package geom

// LengthEps is the shared length tolerance: two geometric quantities closer
// than this are treated as equal/coincident. Every tolerance-aware query in
// this package and its consumers reads this single value.
//
// It may be adjusted once at startup to match the model scale; the package
// itself never mutates it. It is not safe to change while queries are in
// flight.
var LengthEps = 1e-6

// detEps bounds the determinant of three unit plane normals below which the
// 3x3 plane intersection system is treated as singular. The determinant is
// dimensionless, so this is independent of LengthEps.
const detEps = 1e-10
