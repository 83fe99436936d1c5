// Package watch lets a host react to particular steps of a run without
// touching the algorithms: breakpoint conditions written in expr or CEL,
// and jq projections that reshape events for display.
//
// Conditions and projections see an event as its JSON document:
//
//	{"run_id": "...", "seq": 7, "kind": "swap", "note": "...",
//	 "sort": {"array": [...], "compare": [i, j], ...}}
//
// Sections the event does not carry (sort, search, graph, text) are present
// as empty objects, so `graph.current == 3` evaluates to false on a sort
// event in expr. CEL reports missing keys as errors; guard with the event
// kind (`kind == "visit" && graph.current == 3`) or has().
//
// Handlers built here wrap another step.Handler:
//
//   - Breakpoint pauses a step.Controller after delivering a matching event.
//   - Until cancels the run after delivering a matching event.
//   - Project feeds jq outputs of each event to a sink.
package watch
