// Package analysis post-processes Ising simulation output.
//
//   - [Moments]: mean and variance of a total-energy histogram
//   - [Critical]: peak temperatures of the specific heat and susceptibility
//     curves of a sweep
//   - [Columns]: per-observable series extracted from sweep points
//
// # Example
//
//	points, _ := sweep.Run(ctx, cfg)
//	est, err := analysis.Critical(points)
//	if err == nil {
//	    fmt.Printf("Tc ~ %.3f\n", est.Mean())
//	}
package analysis
