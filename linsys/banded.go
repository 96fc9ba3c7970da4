package linsys

import (
	"fmt"
	"math"
)

// MaxUnknowns is the fixed capacity of a BandedMatrix.
const MaxUnknowns = 16

// PivotEps is the pivot magnitude below which a column is treated as
// unsolvable and the system as singular. It may be adjusted once at startup
// alongside the geometric tolerance; the package never mutates it.
var PivotEps = 1e-12

// SingularError reports that the system has no unique solution: elimination
// found no usable pivot for the given column. It is a runtime condition
// (typically a redundant or inconsistent constraint set), not a caller bug.
type SingularError struct {
	Column int
}

func (e *SingularError) Error() string {
	return fmt.Sprintf("linsys: system is singular, no usable pivot in column %d", e.Column)
}

// InvariantError reports a violated solver precondition: a caller bug, not
// a recoverable runtime condition. It is raised via panic, never returned.
type InvariantError struct {
	msg string
}

func (e *InvariantError) Error() string {
	return "linsys: " + e.msg
}

// BandedMatrix is a transient n-by-n dense system A.X = B with n at most
// [MaxUnknowns]. Instances are filled and solved once per Newton iteration.
//
// Despite the historical name, the solver does not exploit band structure:
// at this size a full elimination with partial pivoting is both cheaper and
// far better behaved on the near-singular systems redundant constraints
// produce.
type BandedMatrix struct {
	A [MaxUnknowns][MaxUnknowns]float64
	B [MaxUnknowns]float64
	X [MaxUnknowns]float64
	N int
}

// Solve solves A.X = B in place by Gaussian elimination with partial
// pivoting and writes the solution to X. A and B are destroyed by the
// elimination whether or not it succeeds.
//
// If some column has no pivot larger than [PivotEps] the system has no
// unique solution; Solve returns a [*SingularError] and leaves X untouched.
//
// N outside [1, MaxUnknowns] is a caller bug and panics with an
// [*InvariantError].
func (m *BandedMatrix) Solve() error {
	if m.N < 1 || m.N > MaxUnknowns {
		panic(&InvariantError{msg: fmt.Sprintf("system size %d out of range [1, %d]", m.N, MaxUnknowns)})
	}

	n := m.N

	// Forward elimination. At each step swap up the row with the largest
	// entry in the current column, then clear the column below it.
	for i := 0; i < n; i++ {
		imax := i
		max := math.Abs(m.A[i][i])
		for ip := i + 1; ip < n; ip++ {
			if v := math.Abs(m.A[ip][i]); v > max {
				max = v
				imax = ip
			}
		}
		if max < PivotEps {
			return &SingularError{Column: i}
		}

		if imax != i {
			m.A[i], m.A[imax] = m.A[imax], m.A[i]
			m.B[i], m.B[imax] = m.B[imax], m.B[i]
		}

		for ip := i + 1; ip < n; ip++ {
			f := m.A[ip][i] / m.A[i][i]
			if f == 0 {
				continue
			}
			for jp := i; jp < n; jp++ {
				m.A[ip][jp] -= f * m.A[i][jp]
			}
			m.B[ip] -= f * m.B[i]
		}
	}

	// Back substitution.
	for i := n - 1; i >= 0; i-- {
		sum := m.B[i]
		for jp := i + 1; jp < n; jp++ {
			sum -= m.A[i][jp] * m.X[jp]
		}
		m.X[i] = sum / m.A[i][i]
	}

	return nil
}
