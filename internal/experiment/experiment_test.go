package experiment

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/lorenz/internal/dynamo"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	models := r.ListModels()
	if len(models) != 2 || models[0] != "lorenz" || models[1] != "rossler" {
		t.Errorf("unexpected models %v", models)
	}

	if _, err := r.GetModel("pendulum"); err == nil {
		t.Error("expected error for unknown model")
	}
	if _, err := r.GetIntegrator("euler"); err != nil {
		t.Errorf("euler should be registered: %v", err)
	}
	for _, name := range []string{"rk4", "verlet", "rk45"} {
		if _, err := r.GetIntegrator(name); err == nil {
			t.Errorf("integrator %s should not be available", name)
		}
	}
}

func TestExperimentDefaultRun(t *testing.T) {
	exp, err := Prepare(NewRegistry(), Config{
		Model:      "lorenz",
		Integrator: "euler",
		Dt:         0.01,
		Steps:      10000,
	})
	if err != nil {
		t.Fatalf("prepare failed: %v", err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.States) != 10001 {
		t.Fatalf("expected 10001 states, got %d", len(result.States))
	}

	x0 := result.States[0]
	if x0[0] != 1 || x0[1] != 0 || x0[2] != 0.1 {
		t.Errorf("expected default initial condition, got %v", x0)
	}

	if result.Metrics["stability"] != 1.0 {
		t.Errorf("expected bounded attractor, stability %f", result.Metrics["stability"])
	}
	if result.Metrics["peak_norm"] <= 0 {
		t.Error("expected positive peak norm")
	}
}

func TestExperimentParamsAndInitState(t *testing.T) {
	exp, err := Prepare(NewRegistry(), Config{
		Model:      "lorenz",
		Integrator: "euler",
		InitState:  []float64{2, 3, 13},
		Params:     map[string]float64{"sigma": 0},
		Dt:         0.01,
		Steps:      1,
	})
	if err != nil {
		t.Fatalf("prepare failed: %v", err)
	}

	result, err := exp.Run(context.Background())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	// With sigma = 0, x is constant.
	if result.States[1][0] != 2 {
		t.Errorf("expected x to stay at 2, got %v", result.States[1][0])
	}
	wantY := 3 + (2*28-3-2*13)*0.01
	if math.Abs(result.States[1][1]-wantY) > 1e-12 {
		t.Errorf("expected y %v, got %v", wantY, result.States[1][1])
	}
}

func TestExperimentUnknownParam(t *testing.T) {
	_, err := Prepare(NewRegistry(), Config{
		Model:      "rossler",
		Integrator: "euler",
		Params:     map[string]float64{"rho": 1},
		Dt:         0.01,
	})
	if !errors.Is(err, dynamo.ErrUnknownParam) {
		t.Errorf("expected ErrUnknownParam, got %v", err)
	}
}

func TestExperimentNotSetup(t *testing.T) {
	if _, err := New(Config{}).Run(context.Background()); err == nil {
		t.Error("expected error for experiment without setup")
	}
}
