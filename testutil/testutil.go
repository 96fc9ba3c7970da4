package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/geomcore/geom"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed)) // nolint gosec
}

// Float returns a uniform value in [-scale, scale).
func (r *RNG) Float(scale float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return (2*r.rand.Float64() - 1) * scale
}

// Vector returns a vector with components uniform in [-scale, scale).
func (r *RNG) Vector(scale float64) geom.Vector {
	return geom.V(r.Float(scale), r.Float(scale), r.Float(scale))
}

// UnitVector returns a direction distributed uniformly over the sphere.
func (r *RNG) UnitVector() geom.Vector {
	// Rejection-sample from the cube so directions near the corners are not
	// over-represented.
	for {
		v := r.Vector(1)
		m := v.MagSquared()
		if m > 1e-4 && m <= 1 {
			return v.WithMagnitude(1)
		}
	}
}

// UnitQuaternion returns a uniformly distributed rotation.
func (r *RNG) UnitQuaternion() geom.Quaternion {
	axis := r.UnitVector()
	theta := r.Float(math.Pi)
	return geom.QFromAxisAngle(axis, theta)
}

// Point2d returns a 2D point with components uniform in [-scale, scale).
func (r *RNG) Point2d(scale float64) geom.Point2d {
	return geom.P2(r.Float(scale), r.Float(scale))
}
