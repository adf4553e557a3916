// Package almanac reads and writes almanac documents: the seed list plus the
// seven remapping sections that feed the remap engine.
//
// Two encodings are supported.
//
// # Text listing
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	...
//
// Each rule line is "destination source length". Sections are separated by
// blank lines and may appear in any order, but every one of the seven must be
// present exactly once.
//
// # YAML
//
//	version: "1"
//	seeds: [79, 14, 55, 13]
//	stages:
//	  - name: seed-to-soil
//	    rules:
//	      - [50, 98, 2]
//	      - {destination: 52, source: 50, length: 48}
//
// Rules accept either the three-element flow form or the explicit mapping form.
//
// Parsing only checks shape. Validate reports semantic problems such as
// overlapping rules or an odd seed count.
package almanac
