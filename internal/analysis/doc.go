// Package analysis characterises integrated trajectories.
//
//   - [LyapunovExponent]: largest Lyapunov exponent via trajectory separation
//   - [BoundsOf]: per-component extent of a trajectory
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda, _ := analysis.LyapunovExponent(dyn, integ, x0, 0.01, 10000, 1e-8)
//	if lambda > 0 {
//	    // System is chaotic
//	}
package analysis
