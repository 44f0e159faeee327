// Package systems provides vector fields with analytic Jacobians used by
// the CLI and in end-to-end checks.
//
//   - [HopfCycle]: planar normal form with a known circular limit cycle
//   - [VanDerPol]: the Van der Pol relaxation oscillator
//   - [Duffing]: forced Duffing oscillator in autonomous embedding
//
// HopfCycle has fully analytic Floquet multipliers {1, exp(-4πa/ω)}, which
// anchors the accuracy checks of the whole pipeline.
package systems
