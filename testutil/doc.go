// Package testutil provides testing utilities for geomcore.
//
// This package is intended for use in tests and benchmarks only. It
// provides a seeded random generator for geometric values, so that
// property-style tests are reproducible from their seed.
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Vector(10)        // components uniform in [-10, 10)
//	u := rng.UnitVector()      // uniform direction
//	q := rng.UnitQuaternion()  // uniform rotation
package testutil
