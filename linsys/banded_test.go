package linsys

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveIdentity(t *testing.T) {
	var m BandedMatrix
	m.N = 3
	for i := 0; i < 3; i++ {
		m.A[i][i] = 1
		m.B[i] = float64(i + 1)
	}

	require.NoError(t, m.Solve())

	assert.InDelta(t, 1, m.X[0], 1e-12)
	assert.InDelta(t, 2, m.X[1], 1e-12)
	assert.InDelta(t, 3, m.X[2], 1e-12)
}

func TestSolveKnownSystem(t *testing.T) {
	// 2x + y = 5
	//  x - y = 1     =>  x = 2, y = 1
	var m BandedMatrix
	m.N = 2
	m.A[0][0], m.A[0][1] = 2, 1
	m.A[1][0], m.A[1][1] = 1, -1
	m.B[0], m.B[1] = 5, 1

	require.NoError(t, m.Solve())

	assert.InDelta(t, 2, m.X[0], 1e-12)
	assert.InDelta(t, 1, m.X[1], 1e-12)
}

func TestSolveNeedsPivoting(t *testing.T) {
	// A zero on the diagonal forces a row swap; without pivoting this
	// system is unsolvable.
	var m BandedMatrix
	m.N = 2
	m.A[0][0], m.A[0][1] = 0, 1
	m.A[1][0], m.A[1][1] = 1, 0
	m.B[0], m.B[1] = 3, 4

	require.NoError(t, m.Solve())

	assert.InDelta(t, 4, m.X[0], 1e-12)
	assert.InDelta(t, 3, m.X[1], 1e-12)
}

func TestSolveSingular(t *testing.T) {
	tests := []struct {
		name string
		fill func(m *BandedMatrix)
	}{
		{
			"DuplicateRows",
			func(m *BandedMatrix) {
				m.N = 2
				m.A[0][0], m.A[0][1] = 1, 2
				m.A[1][0], m.A[1][1] = 1, 2
				m.B[0], m.B[1] = 3, 4
			},
		},
		{
			"ZeroMatrix",
			func(m *BandedMatrix) {
				m.N = 3
			},
		},
		{
			"LinearlyDependentRows",
			func(m *BandedMatrix) {
				m.N = 3
				m.A[0] = [MaxUnknowns]float64{1, 2, 3}
				m.A[1] = [MaxUnknowns]float64{4, 5, 6}
				m.A[2] = [MaxUnknowns]float64{5, 7, 9} // row0 + row1
				m.B[0], m.B[1], m.B[2] = 1, 1, 1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m BandedMatrix
			tt.fill(&m)

			err := m.Solve()

			var se *SingularError
			require.ErrorAs(t, err, &se)

			// X is untouched on failure.
			assert.Equal(t, [MaxUnknowns]float64{}, m.X)
		})
	}
}

func TestSolveSizeBounds(t *testing.T) {
	t.Run("One", func(t *testing.T) {
		var m BandedMatrix
		m.N = 1
		m.A[0][0] = 4
		m.B[0] = 12

		require.NoError(t, m.Solve())
		assert.InDelta(t, 3, m.X[0], 1e-12)
	})

	t.Run("Sixteen", func(t *testing.T) {
		var m BandedMatrix
		m.N = MaxUnknowns
		for i := 0; i < MaxUnknowns; i++ {
			m.A[i][i] = 2
			m.B[i] = 2 * float64(i)
		}

		require.NoError(t, m.Solve())
		for i := 0; i < MaxUnknowns; i++ {
			assert.InDelta(t, float64(i), m.X[i], 1e-12)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		for _, n := range []int{0, -1, MaxUnknowns + 1} {
			var m BandedMatrix
			m.N = n
			assert.Panics(t, func() { _ = m.Solve() }, "N=%d", n)
		}
	})
}

func TestSolveRandomSystemsResidual(t *testing.T) {
	rng := rand.New(rand.NewSource(2)) // nolint gosec

	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(MaxUnknowns) + 1

		var m BandedMatrix
		m.N = n

		// Keep the original system, since Solve destroys A and B.
		var a [MaxUnknowns][MaxUnknowns]float64
		var b [MaxUnknowns]float64
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				a[i][j] = 2*rng.Float64() - 1
			}
			b[i] = 2*rng.Float64() - 1
		}
		m.A, m.B = a, b

		if err := m.Solve(); err != nil {
			continue // a random singular draw is legitimate
		}

		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				sum += a[i][j] * m.X[j]
			}
			assert.InDelta(t, b[i], sum, 1e-8, "row %d of %dx%d system", i, n, n)
		}
	}
}

func TestSolveNearlyRedundantRows(t *testing.T) {
	// Two constraint rows that agree to one part in 1e6, the kind of
	// system nearly-coincident constraints produce. Partial pivoting must
	// still recover the exact solution of the perturbed system.
	var m BandedMatrix
	m.N = 2
	m.A[0][0], m.A[0][1] = 1, 1
	m.A[1][0], m.A[1][1] = 1, 1+1e-6
	m.B[0], m.B[1] = 2, 2+1e-6

	require.NoError(t, m.Solve())

	assert.InDelta(t, 1, m.X[0], 1e-6)
	assert.InDelta(t, 1, m.X[1], 1e-6)
}
