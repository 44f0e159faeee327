// Package monodromy builds the linearized period map of a periodic orbit
// for each of the three discretizations:
//
//   - [Shooting]: serial tangent transport through the flow differential
//   - [Poincare]: transport through differential return maps (action only)
//   - [Trapezoid]: implicit trapezoid-rule recurrence around the cycle
//
// Every variant exposes a matrix-free action; [Shooting] and [Trapezoid]
// can also materialize the dense matrix. The recurrences are strictly
// sequential: each step depends on the previous one, so none of them is
// parallelized internally.
package monodromy
