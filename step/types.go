package step

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/stepviz/core"
)

// Sentinel errors shared by the engine and every algorithm package.
var (
	// ErrCancelled is returned from a checkpoint once the run was cancelled.
	// It is not a failure: callers map it to an incomplete outcome.
	ErrCancelled = errors.New("step: run cancelled")

	// ErrInvalidInput is the root of all precondition violations
	// (unsorted binary-search input, negative weights, bad speed, ...).
	ErrInvalidInput = errors.New("step: invalid input")

	// ErrInvalidSpeed is returned for a speed outside [MinSpeed, MaxSpeed].
	ErrInvalidSpeed = fmt.Errorf("step: speed out of range [%d,%d]: %w", MinSpeed, MaxSpeed, ErrInvalidInput)
)

// None marks an absent index in snapshots (no pivot, no mid, not found...).
const None = -1

// Kind names one observable operation.
type Kind string

// Observable operations.
const (
	KindCompare  Kind = "compare"
	KindSwap     Kind = "swap"
	KindPivot    Kind = "pivot"
	KindWrite    Kind = "write"
	KindProbe    Kind = "probe"
	KindFound    Kind = "found"
	KindEnqueue  Kind = "enqueue"
	KindDequeue  Kind = "dequeue"
	KindPush     Kind = "push"
	KindPop      Kind = "pop"
	KindVisit    Kind = "visit"
	KindFinish   Kind = "finish"
	KindRelax    Kind = "relax"
	KindSkip     Kind = "skip"
	KindAddEdge  Kind = "add-edge"
	KindMatch    Kind = "match"
	KindMismatch Kind = "mismatch"
	KindShift    Kind = "shift"
	KindDone     Kind = "done"
)

// Handler receives every event of a run. Returning an error aborts the run;
// returning (a wrap of) ErrCancelled cancels it.
type Handler func(Event) error

// Event is an immutable snapshot of a run at one observable instant.
// Exactly one of Sort, Search, Graph and Text is set.
type Event struct {
	RunID string `json:"run_id,omitempty"`
	Seq   int    `json:"seq"`
	Kind  Kind   `json:"kind"`
	Note  string `json:"note,omitempty"`

	Sort   *SortState   `json:"sort,omitempty"`
	Search *SearchState `json:"search,omitempty"`
	Graph  *GraphState  `json:"graph,omitempty"`
	Text   *TextState   `json:"text,omitempty"`
}

// Clone deep-copies ev.
func (ev Event) Clone() Event {
	out := ev
	if ev.Sort != nil {
		s := ev.Sort.Clone()
		out.Sort = &s
	}
	if ev.Search != nil {
		s := ev.Search.Clone()
		out.Search = &s
	}
	if ev.Graph != nil {
		s := ev.Graph.Clone()
		out.Graph = &s
	}
	if ev.Text != nil {
		s := ev.Text.Clone()
		out.Text = &s
	}

	return out
}

// SortState is the observable state of a sorting run.
// Index fields hold None when unset.
type SortState struct {
	Array   []int `json:"array"`
	Compare []int `json:"compare,omitempty"`
	Swap    []int `json:"swap,omitempty"`
	Pivot   int   `json:"pivot"`
	Lo      int   `json:"lo"`
	Hi      int   `json:"hi"`
	Write   int   `json:"write"`
	// Final lists indices already holding their sorted value.
	Final []int `json:"final,omitempty"`
}

// Clone deep-copies s.
func (s SortState) Clone() SortState {
	s.Array = slices.Clone(s.Array)
	s.Compare = slices.Clone(s.Compare)
	s.Swap = slices.Clone(s.Swap)
	s.Final = slices.Clone(s.Final)

	return s
}

// SearchState is the observable state of a binary search.
type SearchState struct {
	Array  []int `json:"array"`
	Target int   `json:"target"`
	Low    int   `json:"low"`
	High   int   `json:"high"`
	Mid    int   `json:"mid"`
	Found  int   `json:"found"`
}

// Clone deep-copies s.
func (s SearchState) Clone() SearchState {
	s.Array = slices.Clone(s.Array)

	return s
}

// GraphState is the observable state of a traversal, shortest-path or
// spanning-tree run.
type GraphState struct {
	Current  int             `json:"current"`
	Edge     *core.Edge      `json:"edge,omitempty"`
	Visited  []int           `json:"visited,omitempty"`
	Frontier []int           `json:"frontier,omitempty"`
	Order    []int           `json:"order,omitempty"`
	Parent   map[int]int     `json:"parent,omitempty"`
	Dist     map[int]int64   `json:"dist,omitempty"`
	Score    map[int]float64 `json:"score,omitempty"`
	Tree     []core.Edge     `json:"tree,omitempty"`
	Path     []int           `json:"path,omitempty"`
}

// Clone deep-copies s.
func (s GraphState) Clone() GraphState {
	if s.Edge != nil {
		e := *s.Edge
		s.Edge = &e
	}
	s.Visited = slices.Clone(s.Visited)
	s.Frontier = slices.Clone(s.Frontier)
	s.Order = slices.Clone(s.Order)
	s.Parent = maps.Clone(s.Parent)
	s.Dist = maps.Clone(s.Dist)
	s.Score = maps.Clone(s.Score)
	s.Tree = slices.Clone(s.Tree)
	s.Path = slices.Clone(s.Path)

	return s
}

// TextState is the observable state of a string search.
type TextState struct {
	Text         string `json:"text"`
	Pattern      string `json:"pattern"`
	Offset       int    `json:"offset"`
	TextIndex    int    `json:"text_index"`
	PatternIndex int    `json:"pattern_index"`
	Shift        int    `json:"shift"`
	Matches      []int  `json:"matches,omitempty"`
}

// Clone deep-copies s.
func (s TextState) Clone() TextState {
	s.Matches = slices.Clone(s.Matches)

	return s
}

// SortedKeys returns the keys of a visited-style set in ascending order.
func SortedKeys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for k, ok := range set {
		if ok {
			out = append(out, k)
		}
	}
	slices.Sort(out)

	return out
}
