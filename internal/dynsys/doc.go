// Package dynsys provides core primitives for periodic-orbit stability
// analysis.
//
// The package defines the fundamental types shared by the rest of the
// module:
//
//   - [State]: vector representing a point in state space
//   - [Params]: parameter vector of the underlying system
//   - [VectorField]: interface for autonomous ODE systems with Jacobians
//   - [Diag]: injected sink for non-fatal diagnostics
//
// # Diagnostics
//
// Warnings (degenerate spectra, cost warnings) are routed through a [Diag]
// sink supplied by the caller rather than printed directly, so tests can
// assert on emitted diagnostics:
//
//	rec := &dynsys.Recorder{}
//	eng := floquet.Engine{Diag: rec}
package dynsys
