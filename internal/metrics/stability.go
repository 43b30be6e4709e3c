package metrics

import (
	"math"

	"github.com/san-kum/lorenz/internal/dynamo"
)

// Stability is the fraction of observed states inside the ball of the given
// radius about the origin. The first escape is remembered so a run that
// blows up can report when it left. Non-finite states are outside.
type Stability struct {
	radius     float64
	inside     int
	samples    int
	escapedAt  float64
	hasEscaped bool
}

func NewStability(radius float64) *Stability {
	return &Stability{radius: radius}
}

func (s *Stability) Name() string { return "stability" }

func (s *Stability) Observe(x dynamo.State, t float64) {
	s.samples++
	if n := x.Norm(); !math.IsNaN(n) && n <= s.radius {
		s.inside++
		return
	}
	if !s.hasEscaped {
		s.escapedAt, s.hasEscaped = t, true
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1
	}
	return float64(s.inside) / float64(s.samples)
}

// FirstEscape returns the time of the first state outside the ball.
func (s *Stability) FirstEscape() (float64, bool) {
	return s.escapedAt, s.hasEscaped
}

func (s *Stability) Reset() {
	*s = Stability{radius: s.radius}
}
