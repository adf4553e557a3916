// Package remap implements the range propagation engine that pushes integer
// ranges through an ordered sequence of piecewise-affine remapping stages.
//
// Values are never enumerated. A Range is a half-open interval [start, end)
// and every stage rewrites whole sub-ranges at once, splitting inputs at rule
// boundaries as needed.
//
// # Building blocks
//
//   - Range: half-open integer interval, always non-empty
//   - Rule: source interval plus a constant destination offset
//   - Stage: ordered rules for one remapping phase (seed-to-soil, ...)
//   - Pipeline: the seven stages in their fixed order
//
// # Operations
//
//   - Split: partition one Range against one Rule into a mapped piece
//     (in source coordinates) and up to two unmapped fragments
//   - Stage.Apply: push a set of ranges through every rule of a stage
//   - Run / Pipeline.Run: fold Stage.Apply over the pipeline
//   - Minimum: smallest start of a range set
//   - Stage.MapValue / Pipeline.MapValue: single value lookup
//
// # Partition law
//
// For every Range r and Rule g, the mapped piece returned by Split(r, g)
// together with the unmapped fragments covers r exactly, with no overlaps
// and no empty pieces. Everything else in the package relies on it.
//
// Rules within a stage are expected to have pairwise disjoint source
// intervals. The engine does not check this on its own; Stage.Validate and
// Pipeline.Validate can be used to reject malformed input up front.
package remap
