package metrics

import "github.com/san-kum/lorenz/internal/dynamo"

// PeakNorm tracks the largest Euclidean distance from the origin.
type PeakNorm struct {
	peak float64
}

func NewPeakNorm() *PeakNorm {
	return &PeakNorm{}
}

func (p *PeakNorm) Name() string { return "peak_norm" }

func (p *PeakNorm) Observe(x dynamo.State, t float64) {
	if n := x.Norm(); n > p.peak {
		p.peak = n
	}
}

func (p *PeakNorm) Value() float64 { return p.peak }

func (p *PeakNorm) Reset() { p.peak = 0 }
