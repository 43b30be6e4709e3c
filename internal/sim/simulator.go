package sim

import (
	"context"
	"fmt"

	"github.com/san-kum/lorenz/internal/dynamo"
)

type Simulator struct {
	dyn        dynamo.System
	integrator dynamo.Integrator
	metrics    []dynamo.Metric
}

func New(dyn dynamo.System, integrator dynamo.Integrator) *Simulator {
	return &Simulator{
		dyn:        dyn,
		integrator: integrator,
		metrics:    make([]dynamo.Metric, 0),
	}
}

func (s *Simulator) AddMetric(m dynamo.Metric) { s.metrics = append(s.metrics, m) }

// Run integrates cfg.Steps fixed steps from x0. The returned trajectory starts
// with a copy of x0 and holds cfg.Steps+1 states unless ValidateState stops
// it early or ctx is cancelled, in which case the partial result is returned.
func (s *Simulator) Run(ctx context.Context, x0 dynamo.State, cfg dynamo.Config) (*dynamo.Result, error) {
	if err := s.validate(x0, cfg); err != nil {
		return nil, err
	}

	result := &dynamo.Result{
		States:  make([]dynamo.State, 0, cfg.Steps+1),
		Times:   make([]float64, 0, cfg.Steps+1),
		Metrics: make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	result.States = append(result.States, x)
	result.Times = append(result.Times, 0)

	for i := 0; i < cfg.Steps; i++ {
		select {
		case <-ctx.Done():
			s.collect(result)
			return result, fmt.Errorf("%w: %w", dynamo.ErrContextCanceled, ctx.Err())
		default:
		}

		t := float64(i) * cfg.Dt
		for _, m := range s.metrics {
			m.Observe(x, t)
		}

		next := s.integrator.Step(s.dyn, x, t, cfg.Dt)
		if cfg.ValidateState && !next.IsValid() {
			result.Errors = append(result.Errors, dynamo.SimError{Time: t, Step: i, Wrapped: dynamo.ErrInvalidState})
			break
		}

		x = next
		result.StepsTaken++
		result.States = append(result.States, x)
		result.Times = append(result.Times, float64(i+1)*cfg.Dt)
	}

	if result.StepsTaken == cfg.Steps {
		for _, m := range s.metrics {
			m.Observe(x, float64(cfg.Steps)*cfg.Dt)
		}
	}
	s.collect(result)

	return result, nil
}

func (s *Simulator) collect(result *dynamo.Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func (s *Simulator) validate(x0 dynamo.State, cfg dynamo.Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %g", dynamo.ErrParameterBounds, cfg.Dt)
	}
	if cfg.Steps < 0 {
		return fmt.Errorf("%w: steps must not be negative, got %d", dynamo.ErrParameterBounds, cfg.Steps)
	}
	if len(x0) != s.dyn.StateDim() {
		return fmt.Errorf("%w: initial state has %d components, system needs %d",
			dynamo.ErrDimensionMismatch, len(x0), s.dyn.StateDim())
	}
	return nil
}
