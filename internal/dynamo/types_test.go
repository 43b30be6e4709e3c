package dynamo

import (
	"errors"
	"math"
	"testing"
)

func TestState_IsValid(t *testing.T) {
	tests := []struct {
		name  string
		state State
		valid bool
	}{
		{"empty", State{}, true},
		{"normal", State{1.0, 0.0, 0.1}, true},
		{"with NaN", State{1.0, math.NaN(), 0}, false},
		{"with +Inf", State{math.Inf(1), 0, 0}, false},
		{"with -Inf", State{0, 0, math.Inf(-1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestState_CloneIsIndependent(t *testing.T) {
	src := State{1, 0, 0.1}
	c := src.Clone()
	c[0] = 99
	if src[0] != 1 {
		t.Error("Clone shares backing array with source")
	}
}

func TestState_NormAndSub(t *testing.T) {
	if got := (State{3, 4}).Norm(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Norm = %v, want 5", got)
	}
	diff := State{4, 5, 6}.Sub(State{1, 2, 3})
	if diff[0] != 3 || diff[1] != 3 || diff[2] != 3 {
		t.Errorf("Sub failed: got %v", diff)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Dt != 0.01 {
		t.Errorf("expected dt 0.01, got %v", cfg.Dt)
	}
	if cfg.Steps != 10000 {
		t.Errorf("expected 10000 steps, got %d", cfg.Steps)
	}
	if math.Abs(cfg.Duration()-100) > 1e-9 {
		t.Errorf("expected duration 100, got %v", cfg.Duration())
	}
}

func TestResult_FinalAndComponent(t *testing.T) {
	var empty *Result
	if empty.Final() != nil {
		t.Error("expected nil final state for nil result")
	}

	r := &Result{States: []State{{1, 2, 3}, {4, 5, 6}}}
	if f := r.Final(); f[0] != 4 {
		t.Errorf("Final = %v", f)
	}
	ys := r.Component(1)
	if len(ys) != 2 || ys[0] != 2 || ys[1] != 5 {
		t.Errorf("Component(1) = %v", ys)
	}
}

func TestSimError(t *testing.T) {
	err := SimError{Time: 1.5, Step: 150, Wrapped: ErrInvalidState}
	expected := "step 150 (t=1.5000): dynamo: invalid state (NaN or Inf detected)"
	if err.Error() != expected {
		t.Errorf("SimError.Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, ErrInvalidState) {
		t.Error("SimError should unwrap to ErrInvalidState")
	}
}
