// Package diagnostic provides structured errors, warnings and notes produced
// while validating an almanac.
//
// Key capabilities:
//   - Overlapping rule reports naming both rules
//   - Seed list problems that prevent reading seeds as ranges
//   - Notes about stages that map every value to itself
package diagnostic
