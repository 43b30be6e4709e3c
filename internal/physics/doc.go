// Package physics provides the vector fields integrated by the simulator.
//
// Each model implements [dynamo.System], [dynamo.Configurable] and
// [dynamo.Initializer]:
//
//   - [Lorenz]: the butterfly attractor (sigma=10, rho=28, beta=8/3)
//   - [Rossler]: single-lobe spiral attractor (a=0.2, b=0.2, c=5.7)
//
// Parameters are set by name before a run and stay fixed while it executes:
//
//	dyn := physics.NewLorenz()
//	if err := dyn.SetParam("rho", 99.96); err != nil {
//	    return err
//	}
package physics
