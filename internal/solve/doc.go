// Package solve answers the almanac question: which location is the lowest
// reachable from the seeds.
//
// Seeds are read in one of two ways:
//   - points: every seed is a single value, mapped one by one
//   - ranges: seeds are (start, length) pairs, pushed through the pipeline
//     as whole ranges without enumerating their values
package solve
