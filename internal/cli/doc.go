// Package cli parses the stepviz command line and drives runs from
// scenario or request files, printing events as JSON lines.
package cli
