// Package config turns files into runner requests.
//
// Two formats are accepted:
//
//   - HCL scenarios (LoadScenario, ParseScenario): any number of named run
//     blocks sharing top-level graph blocks, a default speed and locals.
//   - JSON requests (LoadRequest, LoadRequestFile, ParseRequest): a single
//     run, checked against an embedded JSON Schema before decoding.
//
// Graphs are described by GraphSpec, either explicitly or as a seeded random
// connected graph; input arrays may be literal or generated by ArraySpec.
// Every malformed input yields an error wrapping ErrInvalid (and therefore
// step.ErrInvalidInput), or the runner's own validation error.
package config
