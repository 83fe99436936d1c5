package runner

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

// Sentinel errors returned by Run and Host.
var (
	// ErrUnknownAlgorithm is returned for an identifier not in Algorithms().
	ErrUnknownAlgorithm = fmt.Errorf("runner: unknown algorithm: %w", step.ErrInvalidInput)

	// ErrMissingInput is returned when the request lacks the input its
	// algorithm family needs (a graph, a goal...).
	ErrMissingInput = fmt.Errorf("runner: missing input: %w", step.ErrInvalidInput)

	// ErrBusy is returned by Host.Start while another goroutine's run is active.
	ErrBusy = errors.New("runner: a run is already active")

	// ErrReentrant is returned by Host.Start when called from the goroutine
	// executing the active run, typically from inside a step handler.
	ErrReentrant = errors.New("runner: start called from inside the active run")
)

// Algorithm identifies one animated algorithm.
type Algorithm string

// Algorithm identifiers.
const (
	QuickSort         Algorithm = "quicksort"
	QuickSortMedian3  Algorithm = "quicksort-median3"
	HeapSort          Algorithm = "heapsort"
	MergeSort         Algorithm = "mergesort"
	MergeSortBottomUp Algorithm = "mergesort-bottomup"
	BubbleSort        Algorithm = "bubblesort"
	SelectionSort     Algorithm = "selectionsort"
	InsertionSort     Algorithm = "insertionsort"
	BinarySearch      Algorithm = "binary-search"
	BFS               Algorithm = "bfs"
	DFS               Algorithm = "dfs"
	DFSIterative      Algorithm = "dfs-iterative"
	Dijkstra          Algorithm = "dijkstra"
	Prim              Algorithm = "prim"
	PrimSimple        Algorithm = "prim-simple"
	Kruskal           Algorithm = "kruskal"
	AStar             Algorithm = "astar"
	BruteForce        Algorithm = "brute-force"
	Horspool          Algorithm = "horspool"
)

// Family groups algorithms by the input they consume.
type Family string

// Input families.
const (
	FamilySequence Family = "sequence"
	FamilySearch   Family = "search"
	FamilyGraph    Family = "graph"
	FamilyText     Family = "text"
)

// Family returns the input family of a, or "" if a is unknown.
func (a Algorithm) Family() Family {
	if d, ok := registry[a]; ok {
		return d.family
	}

	return ""
}

// Algorithms returns every known identifier in lexical order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, 0, len(registry))
	for a := range registry {
		out = append(out, a)
	}
	slices.Sort(out)

	return out
}

// ParseAlgorithm validates s as an algorithm identifier.
func ParseAlgorithm(s string) (Algorithm, error) {
	a := Algorithm(s)
	if _, ok := registry[a]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}

	return a, nil
}

// Request describes one run. Only the fields of the algorithm's family are read.
type Request struct {
	Algorithm Algorithm

	// Sequence and search input. Array is copied; the caller's slice is
	// never mutated.
	Array    []int
	Target   int
	Leftmost bool

	// Graph input. Goal is optional for Dijkstra and required for A*.
	Graph          *core.Graph
	Start          int
	Goal           *int
	HeuristicScale *float64

	// Text input.
	Text        string
	Pattern     string
	Overlapping bool

	// Speed in [1,100]; 0 keeps the tracer default.
	Speed int
}

// Validate checks that r names a known algorithm and carries its input.
func (r Request) Validate() error {
	d, ok := registry[r.Algorithm]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, r.Algorithm)
	}
	if d.family == FamilyGraph && r.Graph == nil {
		return fmt.Errorf("%w: %s needs a graph", ErrMissingInput, r.Algorithm)
	}
	if r.Algorithm == AStar && r.Goal == nil {
		return fmt.Errorf("%w: astar needs a goal", ErrMissingInput)
	}
	if r.Speed != 0 && (r.Speed < step.MinSpeed || r.Speed > step.MaxSpeed) {
		return fmt.Errorf("%w: got %d", step.ErrInvalidSpeed, r.Speed)
	}

	return nil
}

// Status tells whether a run reached its natural end.
type Status string

const (
	// StatusCompleted marks a run that emitted its done event.
	StatusCompleted Status = "completed"
	// StatusIncomplete marks a cancelled run.
	StatusIncomplete Status = "incomplete"
)

// Outcome is the final result of a run. Fields outside the algorithm's
// family stay empty. A cancelled run carries whatever was computed so far.
type Outcome struct {
	RunID     string    `json:"run_id"`
	Algorithm Algorithm `json:"algorithm"`
	Status    Status    `json:"status"`
	Steps     int       `json:"steps"`

	Array []int `json:"array,omitempty"`
	Index *int  `json:"index,omitempty"`

	Order  []int         `json:"order,omitempty"`
	Parent map[int]int   `json:"parent,omitempty"`
	Dist   map[int]int64 `json:"dist,omitempty"`
	Path   []int         `json:"path,omitempty"`
	Cost   int64         `json:"cost,omitempty"` // path cost, or tree weight for spanning trees
	Tree   []core.Edge   `json:"tree,omitempty"`

	Matches []int `json:"matches,omitempty"`
}
