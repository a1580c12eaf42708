// Package beam implements the cantilevered I-beam design objective.
//
// A candidate cross-section (H, h1, b1, b2) is scored by its material
// volume, subject to bending stress and tip deflection limits. The
// flange thickness is discrete: h1 is an index into a fixed table of
// allowed values.
//
// Evaluate follows the penalty convention expected by black-box
// optimizers: malformed or infeasible candidates score [Penalty]
// instead of raising an error, so the objective is a total map from
// candidates to finite values.
package beam
