// Package dist implements the distribution calculators: pure functions that
// produce an ordered sample grid, pointwise density and cumulative curves,
// and closed-form moments for continuous probability distributions.
//
// Densities integrate to 1 over the true (possibly infinite) support. The
// finite sampling window is a rendering concern only; for unbounded support
// the window is truncated with a fixed tail multiplier chosen so the density
// beyond it is negligible. Moments always come from closed-form formulas,
// never from numerical integration of the sampled grid, so the displayed
// statistics carry no discretization error.
//
// Every calculator is stateless and safe for concurrent use.
package dist
