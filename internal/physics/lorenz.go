package physics

import (
	"fmt"

	"github.com/san-kum/lorenz/internal/dynamo"
)

type Lorenz struct{ sigma, rho, beta float64 }

func NewLorenz() *Lorenz        { return &Lorenz{10.0, 28.0, 8.0 / 3.0} }
func (l *Lorenz) StateDim() int { return 3 }

// Derive evaluates the Lorenz vector field at s.
func (l *Lorenz) Derive(s dynamo.State, _ float64) dynamo.State {
	x, y, z := s[0], s[1], s[2]
	return dynamo.State{
		l.sigma * (y - x),
		x*l.rho - y - x*z,
		x*y - l.beta*z,
	}
}

// DefaultState is the initial condition used for the attractor logo.
func (l *Lorenz) DefaultState() dynamo.State { return dynamo.State{1.0, 0.0, 0.1} }

func (l *Lorenz) GetParams() map[string]float64 {
	return map[string]float64{"sigma": l.sigma, "rho": l.rho, "beta": l.beta}
}

func (l *Lorenz) SetParam(n string, v float64) error {
	switch n {
	case "sigma":
		l.sigma = v
	case "rho":
		l.rho = v
	case "beta":
		l.beta = v
	default:
		return fmt.Errorf("%w: lorenz has no %q", dynamo.ErrUnknownParam, n)
	}
	return nil
}
