package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/integrators"
	"github.com/san-kum/lorenz/internal/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLyapunovChaoticLorenz(t *testing.T) {
	dyn := physics.NewLorenz()
	lambda, err := LyapunovExponent(dyn, integrators.NewEuler(), dyn.DefaultState(), 0.01, 10000, 1e-8)
	require.NoError(t, err)
	assert.Greater(t, lambda, 0.3, "lorenz with rho=28 should be chaotic")
	assert.Less(t, lambda, 2.0)
}

func TestLyapunovStableLorenz(t *testing.T) {
	dyn := physics.NewLorenz()
	require.NoError(t, dyn.SetParam("rho", 0.5))

	lambda, err := LyapunovExponent(dyn, integrators.NewEuler(), dyn.DefaultState(), 0.01, 5000, 1e-8)
	require.NoError(t, err)
	assert.Less(t, lambda, 0.0, "origin is attracting for rho<1")
}

func TestLyapunovRejectsBadInput(t *testing.T) {
	dyn := physics.NewLorenz()
	integ := integrators.NewEuler()

	_, err := LyapunovExponent(dyn, integ, dynamo.State{}, 0.01, 10, 1e-8)
	assert.ErrorIs(t, err, dynamo.ErrDimensionMismatch)

	_, err = LyapunovExponent(dyn, integ, dynamo.State{1, 0}, 0.01, 10, 1e-8)
	assert.ErrorIs(t, err, dynamo.ErrDimensionMismatch)

	_, err = LyapunovExponent(dyn, integ, dynamo.State{1, 0, 0.1, 2}, 0.01, 10, 1e-8)
	assert.ErrorIs(t, err, dynamo.ErrDimensionMismatch)

	_, err = LyapunovExponent(dyn, integ, dyn.DefaultState(), 0, 10, 1e-8)
	assert.ErrorIs(t, err, dynamo.ErrParameterBounds)

	_, err = LyapunovExponent(dyn, integ, dyn.DefaultState(), 0.01, 10, 0)
	assert.ErrorIs(t, err, dynamo.ErrParameterBounds)
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf([]dynamo.State{
		{1, -2, 0.5},
		{math.NaN(), 4, -1},
		{-3, 0, math.Inf(1)},
	})

	assert.Equal(t, dynamo.State{-3, -2, -1}, b.Min)
	assert.Equal(t, dynamo.State{1, 4, 0.5}, b.Max)
	assert.Equal(t, dynamo.State{4, 6, 1.5}, b.Span())
}

func TestBoundsOfEmpty(t *testing.T) {
	b := BoundsOf(nil)
	assert.Empty(t, b.Min)
	assert.Empty(t, b.Max)
}
