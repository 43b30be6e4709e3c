package experiment

import (
	"context"
	"fmt"
	"sort"

	"github.com/san-kum/lorenz/internal/dynamo"
	"github.com/san-kum/lorenz/internal/sim"
)

type Config struct {
	Model         string
	Integrator    string
	InitState     []float64
	Params        map[string]float64
	Dt            float64
	Steps         int
	ValidateState bool
}

type Experiment struct {
	cfg       Config
	dyn       dynamo.System
	simulator *sim.Simulator
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

// Setup applies the configured parameters to dyn and builds the simulator.
// Parameters are applied in name order so failures are reported consistently.
func (e *Experiment) Setup(dyn dynamo.System, integrator dynamo.Integrator, metrics []dynamo.Metric) error {
	if len(e.cfg.Params) > 0 {
		c, ok := dyn.(dynamo.Configurable)
		if !ok {
			return fmt.Errorf("model %s has no parameters", e.cfg.Model)
		}
		names := make([]string, 0, len(e.cfg.Params))
		for name := range e.cfg.Params {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := c.SetParam(name, e.cfg.Params[name]); err != nil {
				return err
			}
		}
	}

	e.dyn = dyn
	e.simulator = sim.New(dyn, integrator)
	for _, m := range metrics {
		e.simulator.AddMetric(m)
	}
	return nil
}

// InitialState returns the configured initial condition, falling back to the
// model's own default when none is set.
func (e *Experiment) InitialState() dynamo.State {
	if len(e.cfg.InitState) > 0 {
		x0 := make(dynamo.State, len(e.cfg.InitState))
		copy(x0, e.cfg.InitState)
		return x0
	}
	if init, ok := e.dyn.(dynamo.Initializer); ok {
		return init.DefaultState()
	}
	return make(dynamo.State, e.dyn.StateDim())
}

func (e *Experiment) Run(ctx context.Context) (*dynamo.Result, error) {
	if e.simulator == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	simCfg := dynamo.Config{
		Dt:            e.cfg.Dt,
		Steps:         e.cfg.Steps,
		ValidateState: e.cfg.ValidateState,
	}

	return e.simulator.Run(ctx, e.InitialState(), simCfg)
}

// System returns the configured model, or nil before Setup.
func (e *Experiment) System() dynamo.System {
	return e.dyn
}

// Prepare resolves the model and integrator by name from r and calls Setup
// with the registry's default metrics.
func Prepare(r *Registry, cfg Config) (*Experiment, error) {
	dyn, err := r.GetModel(cfg.Model)
	if err != nil {
		return nil, err
	}
	integ, err := r.GetIntegrator(cfg.Integrator)
	if err != nil {
		return nil, err
	}
	exp := New(cfg)
	if err := exp.Setup(dyn, integ, r.DefaultMetrics()); err != nil {
		return nil, err
	}
	return exp, nil
}
