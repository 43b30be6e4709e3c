// Package dynamo provides core simulation primitives for dynamical systems.
//
// The package defines the fundamental interfaces and types for fixed-step
// integration of autonomous ordinary differential equations (dX/dt = f(X)):
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE vector fields
//   - [Integrator]: numerical stepping interface
//   - [Metric]: per-step observer summarised into a scalar
//   - [Result]: the trajectory produced by a run
//
// # Example
//
//	dyn := physics.NewLorenz()
//	s := sim.New(dyn, integrators.NewEuler())
//	result, _ := s.Run(ctx, dyn.DefaultState(), dynamo.DefaultConfig())
//
// A trajectory always holds Steps+1 states, the first being the initial
// condition passed to the run.
package dynamo
