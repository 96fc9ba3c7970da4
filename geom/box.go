package geom

import "math"

// Axis-aligned bounding box queries, used for coarse rejection before the
// exact intersection tests. Boxes are given by their maximum and minimum
// corners and all comparisons are padded by [LengthEps], so boxes that
// merely touch still count as overlapping.

// BoundingBoxesDisjoint reports whether the boxes (amax, amin) and
// (bmax, bmin) are separated by more than the tolerance on some axis.
func BoundingBoxesDisjoint(amax, amin, bmax, bmin Vector) bool {
	for i := 0; i < 3; i++ {
		if amax.Element(i) < bmin.Element(i)-LengthEps {
			return true
		}
		if amin.Element(i) > bmax.Element(i)+LengthEps {
			return true
		}
	}
	return false
}

// BoundingBoxIntersectsLine reports whether the line through p0 and p1
// passes through the box (amax, amin), within tolerance. If segment is true
// only the portion between p0 and p1 is considered.
//
// The test walks the three slab directions and checks the line's hit point
// on each face plane against the remaining two extents.
func BoundingBoxIntersectsLine(amax, amin, p0, p1 Vector, segment bool) bool {
	dp := p1.Minus(p0)
	lp := dp.Magnitude()
	dp = dp.ScaledBy(1 / lp)

	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		k := (i + 2) % 3

		if lp*math.Abs(dp.Element(i)) < LengthEps {
			continue // line is parallel to this face pair
		}

		for a := 0; a < 2; a++ {
			d := amax.Element(i)
			if a != 0 {
				d = amin.Element(i)
			}

			// dp.Element(i) is the direction cosine against this face's
			// normal, so t is the arc length to the face plane.
			t := (d - p0.Element(i)) / dp.Element(i)
			p := p0.Plus(dp.ScaledBy(t))

			if segment && (t < -LengthEps || t > lp+LengthEps) {
				continue
			}

			if p.Element(j) > amax.Element(j)+LengthEps {
				continue
			}
			if p.Element(k) > amax.Element(k)+LengthEps {
				continue
			}
			if p.Element(j) < amin.Element(j)-LengthEps {
				continue
			}
			if p.Element(k) < amin.Element(k)-LengthEps {
				continue
			}

			return true
		}
	}
	return false
}

// OutsideAndNotOn reports whether v lies strictly outside the box
// (maxv, minv), by more than the tolerance on at least one axis.
func (v Vector) OutsideAndNotOn(maxv, minv Vector) bool {
	return v.X > maxv.X+LengthEps || v.X < minv.X-LengthEps ||
		v.Y > maxv.Y+LengthEps || v.Y < minv.Y-LengthEps ||
		v.Z > maxv.Z+LengthEps || v.Z < minv.Z-LengthEps
}
