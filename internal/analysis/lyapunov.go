package analysis

import (
	"fmt"
	"math"

	"github.com/san-kum/lorenz/internal/dynamo"
)

// LyapunovExponent estimates the largest Lyapunov exponent by integrating a
// reference trajectory and a neighbour displaced by d0 along the first
// component. After every step the separation is logged and the neighbour is
// pulled back to distance d0 along the current separation direction.
//
//	lambda = sum(ln(d_k / d0)) / (steps * dt)
func LyapunovExponent(
	dyn dynamo.System,
	integ dynamo.Integrator,
	x0 dynamo.State,
	dt float64,
	steps int,
	d0 float64,
) (float64, error) {
	if len(x0) != dyn.StateDim() {
		return 0, fmt.Errorf("%w: initial state has %d components, system needs %d",
			dynamo.ErrDimensionMismatch, len(x0), dyn.StateDim())
	}
	if dt <= 0 || steps <= 0 || d0 <= 0 {
		return 0, fmt.Errorf("%w: dt, steps and perturbation must be positive", dynamo.ErrParameterBounds)
	}

	x := x0.Clone()
	xp := x0.Clone()
	xp[0] += d0

	sumLog := 0.0
	for i := 0; i < steps; i++ {
		t := float64(i) * dt
		x = integ.Step(dyn, x, t, dt)
		xp = integ.Step(dyn, xp, t, dt)

		sep := xp.Sub(x).Norm()
		if math.IsNaN(sep) || math.IsInf(sep, 0) {
			return 0, dynamo.SimError{Time: t, Step: i, Wrapped: dynamo.ErrInvalidState}
		}
		if sep == 0 {
			// The neighbour collapsed onto the reference; restart it.
			xp = x.Clone()
			xp[0] += d0
			continue
		}
		sumLog += math.Log(sep / d0)

		scale := d0 / sep
		for k := range xp {
			xp[k] = x[k] + (xp[k]-x[k])*scale
		}
	}

	return sumLog / (float64(steps) * dt), nil
}
